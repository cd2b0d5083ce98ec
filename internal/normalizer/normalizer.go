package normalizer

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/feral-file/ff-catalog-indexer/internal/domain"
	"github.com/feral-file/ff-catalog-indexer/internal/providers"
	"github.com/feral-file/ff-catalog-indexer/internal/providers/objkt"
	"github.com/feral-file/ff-catalog-indexer/internal/providers/opensea"
	"github.com/feral-file/ff-catalog-indexer/internal/registry"
	"github.com/feral-file/ff-catalog-indexer/internal/types"
)

// mutezExponent scales objkt prices, which are integer mutez
const mutezExponent = -6

// Normalizer maps provider records into IndexerData
//
//go:generate mockgen -source=normalizer.go -destination=../mocks/normalizer.go -package=mocks -mock_names=Normalizer=MockNormalizer
type Normalizer interface {
	// Normalize maps one provider record. Missing optional fields are left
	// empty; only a missing token identity is an error.
	Normalize(record providers.ProviderRecord) (*domain.IndexerData, error)
}

type normalizer struct {
	platforms registry.PlatformRegistry
}

// New creates a normalizer. platforms may be nil.
func New(platforms registry.PlatformRegistry) Normalizer {
	return &normalizer{platforms: platforms}
}

func (n *normalizer) Normalize(record providers.ProviderRecord) (*domain.IndexerData, error) {
	var data *domain.IndexerData

	switch record.Source {
	case domain.DataSourceOpenSea:
		if record.OpenSea == nil {
			return nil, fmt.Errorf("opensea record without payload: %w", domain.ErrMissingTokenKey)
		}
		data = n.fromOpenSea(record.OpenSea)
	case domain.DataSourceObjkt:
		if record.Objkt == nil {
			return nil, fmt.Errorf("objkt record without payload: %w", domain.ErrMissingTokenKey)
		}
		data = n.fromObjkt(&record.Objkt.Token)
	case domain.DataSourceManual:
		if record.Manual == nil {
			return nil, fmt.Errorf("manual record without payload: %w", domain.ErrMissingTokenKey)
		}
		data = n.fromManual(record.Manual, record.Blockchain)
	default:
		return nil, fmt.Errorf("%w: unknown data source %q", domain.ErrInvalidRecord, record.Source)
	}

	if data.ContractAddress == "" || data.TokenID == "" {
		return nil, domain.ErrMissingTokenKey
	}
	if err := data.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidRecord, err)
	}
	return data, nil
}

func (n *normalizer) platform(chain domain.Chain, contract string) *registry.PlatformInfo {
	if n.platforms == nil {
		return nil
	}
	return n.platforms.LookupByContract(chain, contract)
}

// title falls back to the placeholder when no name is given
func title(name *string) string {
	if t := strings.TrimSpace(types.SafeString(name)); t != "" {
		return t
	}
	return domain.UNTITLED_PLACEHOLDER
}

// media places candidate URLs into the image and animation slots. A declared
// animation URL is kept unless it is plainly a still image; an image URL that
// classifies as animated also fills an empty animation slot.
func media(image, animation *string, mimeType *string) (img *string, anim *string, kind MediaKind) {
	img = gatewayPtr(image)
	anim = gatewayPtr(animation)

	switch {
	case anim != nil && isStillImage(*anim, mimeType):
		if img == nil {
			img = anim
		}
		return img, nil, MediaKindImage
	case anim != nil:
		kind = ClassifyMedia(*anim, mimeType)
		if !kind.IsAnimated() {
			kind = MediaKindAnimation
		}
		return img, anim, kind
	case img != nil:
		kind = ClassifyMedia(*img, mimeType)
		if kind.IsAnimated() {
			anim = img
		}
		return img, anim, kind
	}
	return nil, nil, ""
}

func (n *normalizer) fromOpenSea(record *opensea.Record) *domain.IndexerData {
	nft := record.NFT
	contract := domain.NormalizeAddress(nft.Contract)

	image, animation, kind := media(
		types.FirstNonEmpty(nft.DisplayImageURL, nft.ImageURL),
		types.FirstNonEmpty(nft.DisplayAnimationURL, nft.AnimationURL),
		nil)

	data := &domain.IndexerData{
		ContractAddress: contract,
		TokenID:         strings.TrimSpace(nft.Identifier),
		Title:           title(nft.Name),
		Description:     types.NonEmptyStringPtr(types.SafeString(nft.Description)),
		ImageURL:        image,
		AnimationURL:    animation,
		ThumbnailURL:    types.NonEmptyStringPtr(types.SafeString(nft.ImageURL)),
		MetadataURL:     gatewayPtr(nft.MetadataURL),
		Blockchain:      domain.BlockchainEthereum,
		TokenStandard:   types.NonEmptyStringPtr(strings.ToLower(nft.TokenStandard)),
		Features:        map[string]interface{}{},
	}

	for _, t := range nft.Traits {
		data.Attributes = append(data.Attributes, domain.Attribute{
			Key:         t.TraitType,
			Value:       t.Value,
			DisplayType: t.DisplayType,
		})
	}

	if kind != "" {
		data.Features["media_kind"] = string(kind)
	}
	if nft.OpenSeaURL != nil {
		data.Features["marketplace_url"] = *nft.OpenSeaURL
	}
	if nft.IsNSFW {
		data.Features["nsfw"] = true
	}
	if len(data.Features) == 0 {
		data.Features = nil
	}

	data.Creator = ResolveCreator(openSeaCreator(record), nil)
	data.Collection = n.openSeaCollection(record, contract)
	return data
}

func (n *normalizer) openSeaCollection(record *opensea.Record, contract string) *domain.Collection {
	c := &domain.Collection{
		Slug:            domain.CollectionSlug(record.NFT.Collection, contract),
		ContractAddress: types.NonEmptyStringPtr(contract),
	}

	if oc := record.Collection; oc != nil {
		c.Title = strings.TrimSpace(types.SafeString(oc.Name))
		c.Description = types.NonEmptyStringPtr(types.SafeString(oc.Description))
		c.ImageURL = types.NonEmptyStringPtr(types.SafeString(oc.ImageURL))
		c.ExternalURL = types.FirstNonEmpty(oc.ProjectURL, oc.OpenSeaURL)
		c.IsGenerative = oc.IsGenerative()
		c.Stats.TotalSupply = oc.TotalSupply
	}

	if s := record.Stats; s != nil {
		if s.Total.NumOwners > 0 {
			c.Stats.OwnerCount = types.Int64Ptr(s.Total.NumOwners)
		}
		c.Stats.FloorPrice = decimalPtr(s.Total.FloorPrice)
		c.Stats.TotalVolume = decimalPtr(s.Total.Volume)
		currency := s.Total.FloorPriceSymbol
		if currency == "" {
			currency = "ETH"
		}
		c.Stats.Currency = types.StringPtr(currency)
	}

	n.applyPlatform(c, domain.ChainEthereumMainnet, contract)
	if c.Title == "" {
		c.Title = c.Slug
	}
	return c
}

func (n *normalizer) fromObjkt(token *objkt.Token) *domain.IndexerData {
	contract := domain.NormalizeAddress(token.FAContract)

	image, animation, kind := media(
		types.FirstNonEmpty(token.DisplayURI, token.ArtifactURI),
		token.ArtifactURI,
		token.Mime)

	data := &domain.IndexerData{
		ContractAddress: contract,
		TokenID:         strings.TrimSpace(token.TokenID),
		Title:           title(token.Name),
		Description:     types.NonEmptyStringPtr(types.SafeString(token.Description)),
		ImageURL:        image,
		AnimationURL:    animation,
		ThumbnailURL:    gatewayPtr(token.ThumbnailURI),
		MetadataURL:     gatewayPtr(token.Metadata),
		Blockchain:      domain.BlockchainTezos,
		TokenStandard:   types.StringPtr(string(domain.StandardFA2)),
		Supply:          types.ParseInt64Ptr(token.Supply.String()),
		MintedAt:        parseTime(token.Timestamp),
		Dimensions:      objktDimensions(token),
	}
	if m := CanonicalMimeType(types.SafeString(token.Mime)); m != "" {
		data.MimeType = &m
	}

	for _, a := range token.Attributes {
		data.Attributes = append(data.Attributes, domain.Attribute{
			Key:   a.Attribute.Name,
			Value: a.Attribute.Value,
		})
	}

	features := map[string]interface{}{}
	if kind != "" {
		features["media_kind"] = string(kind)
	}
	if f := types.SafeString(token.Flag); f != "" && f != "none" {
		features["flag"] = f
	}
	if len(features) > 0 {
		data.Features = features
	}

	data.Creator = ResolveCreator(nil, objktVerifiedCreators(*token))
	data.Collection = n.objktCollection(token, contract)
	return data
}

func (n *normalizer) objktCollection(token *objkt.Token, contract string) *domain.Collection {
	c := &domain.Collection{ContractAddress: types.NonEmptyStringPtr(contract)}

	var slug string
	if fa := token.FA; fa != nil {
		slug = types.SafeString(fa.Slug)
		c.Title = strings.TrimSpace(types.SafeString(fa.Name))
		c.Description = types.NonEmptyStringPtr(types.SafeString(fa.Description))
		c.ImageURL = gatewayPtr(fa.Logo)
		c.ExternalURL = types.NonEmptyStringPtr(types.SafeString(fa.Website))
		c.IsGenerative = fa.IsGenerative()
		c.Stats.TotalSupply = fa.Editions
		c.Stats.OwnerCount = fa.OwnerCount
		c.Stats.FloorPrice = mutezPtr(fa.FloorPrice)
		c.Stats.TotalVolume = mutezPtr(fa.Volume)
		c.Stats.Currency = types.StringPtr("XTZ")
	}
	c.Slug = domain.CollectionSlug(slug, contract)

	n.applyPlatform(c, domain.ChainTezosMainnet, contract)
	if c.Title == "" {
		c.Title = c.Slug
	}
	return c
}

// applyPlatform marks shared-contract and generative platforms
func (n *normalizer) applyPlatform(c *domain.Collection, chain domain.Chain, contract string) {
	p := n.platform(chain, contract)
	if p == nil {
		return
	}
	c.IsSharedContract = c.IsSharedContract || p.Shared
	c.IsGenerative = c.IsGenerative || p.Generative
	if c.Title == "" && p.Shared {
		c.Title = p.Name
	}
}

// fromManual completes a pre-shaped record the way provider records are completed
func (n *normalizer) fromManual(in *domain.IndexerData, blockchain domain.Blockchain) *domain.IndexerData {
	data := *in
	data.ContractAddress = domain.NormalizeAddress(data.ContractAddress)
	data.TokenID = strings.TrimSpace(data.TokenID)
	data.Title = title(&data.Title)

	if data.Blockchain == "" {
		data.Blockchain = blockchain
	}
	if data.Blockchain == "" && data.ContractAddress != "" {
		data.Blockchain = domain.AddressToBlockchain(data.ContractAddress)
	}
	if data.MimeType != nil {
		m := CanonicalMimeType(*data.MimeType)
		data.MimeType = types.NonEmptyStringPtr(m)
	}
	data.ImageURL, data.AnimationURL, _ = media(data.ImageURL, data.AnimationURL, data.MimeType)
	data.ThumbnailURL = gatewayPtr(data.ThumbnailURL)
	data.MetadataURL = gatewayPtr(data.MetadataURL)

	if data.Creator != nil {
		embedded := *data.Creator
		if embedded.ResolutionSource == "" {
			embedded.ResolutionSource = domain.CreatorSourceManual
		}
		data.Creator = ResolveCreator(&embedded, nil)
	}

	if data.Collection != nil {
		c := *data.Collection
		c.Slug = domain.CollectionSlug(c.Slug, types.SafeString(c.ContractAddress))
		if c.Slug == "" {
			c.Slug = domain.CollectionSlug("", data.ContractAddress)
		}
		if c.ContractAddress == nil {
			c.ContractAddress = types.NonEmptyStringPtr(data.ContractAddress)
		}
		n.applyPlatform(&c, domain.ChainOf(data.Blockchain), data.ContractAddress)
		if strings.TrimSpace(c.Title) == "" {
			c.Title = c.Slug
		}
		data.Collection = &c
	}

	return &data
}

func decimalPtr(n json.Number) *decimal.Decimal {
	if n.String() == "" {
		return nil
	}
	d, err := decimal.NewFromString(n.String())
	if err != nil {
		return nil
	}
	return &d
}

func mutezPtr(v *int64) *decimal.Decimal {
	if v == nil {
		return nil
	}
	d := decimal.New(*v, mutezExponent)
	return &d
}

func parseTime(s *string) *time.Time {
	if types.StringNilOrEmpty(s) {
		return nil
	}
	t, err := time.Parse(time.RFC3339, *s)
	if err != nil {
		return nil
	}
	t = t.UTC()
	return &t
}

var dimensionsRegex = regexp.MustCompile(`^(\d+)\s*x\s*(\d+)$`)

// objktDimensions reads the pixel size of the artifact from TZIP-21 formats
func objktDimensions(token *objkt.Token) *domain.Dimensions {
	var fallback *domain.Dimensions
	for _, raw := range token.Formats {
		var f struct {
			URI        string `json:"uri"`
			Dimensions struct {
				Unit  string `json:"unit"`
				Value string `json:"value"`
			} `json:"dimensions"`
		}
		if err := json.Unmarshal(raw, &f); err != nil {
			continue
		}
		if f.Dimensions.Unit != "" && f.Dimensions.Unit != "px" {
			continue
		}
		m := dimensionsRegex.FindStringSubmatch(strings.TrimSpace(f.Dimensions.Value))
		if m == nil {
			continue
		}
		w, _ := strconv.Atoi(m[1])
		h, _ := strconv.Atoi(m[2])
		d := &domain.Dimensions{Width: w, Height: h}
		if f.URI != "" && f.URI == types.SafeString(token.ArtifactURI) {
			return d
		}
		if fallback == nil {
			fallback = d
		}
	}
	return fallback
}

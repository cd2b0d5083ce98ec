package normalizer

import (
	"strings"

	"github.com/feral-file/ff-catalog-indexer/internal/domain"
	"github.com/feral-file/ff-catalog-indexer/internal/providers/objkt"
	"github.com/feral-file/ff-catalog-indexer/internal/providers/opensea"
	"github.com/feral-file/ff-catalog-indexer/internal/types"
)

// ResolveCreator picks the creator of a token. Creator data embedded on the
// token wins, then the first verified creator with an address. A contract-level creator is
// never a candidate: on shared contracts it names the deployer.
func ResolveCreator(embedded *domain.Creator, verified []domain.Creator) *domain.Creator {
	if embedded != nil && embedded.IdentityKey() != "" {
		c := *embedded
		c.Address = domain.NormalizeAddress(c.Address)
		if c.ResolutionSource == "" {
			c.ResolutionSource = domain.CreatorSourceEmbedded
		}
		return &c
	}

	for _, v := range verified {
		if domain.NormalizeAddress(v.Address) == "" {
			continue
		}
		c := v
		c.Address = domain.NormalizeAddress(c.Address)
		c.Verified = true
		c.ResolutionSource = domain.CreatorSourceVerifiedList
		return &c
	}

	return nil
}

// openSeaCreator builds the embedded creator of an NFT detail
func openSeaCreator(record *opensea.Record) *domain.Creator {
	if record.NFT.Creator == nil || strings.TrimSpace(*record.NFT.Creator) == "" {
		return nil
	}

	address := domain.NormalizeAddress(*record.NFT.Creator)
	c := &domain.Creator{
		Address:          address,
		ProfileURL:       types.StringPtr("https://opensea.io/" + address),
		ResolutionSource: domain.CreatorSourceEmbedded,
	}

	// Artist traits name the human behind the address more reliably than a username
	if name := opensea.ExtractArtistFromTraits(record.NFT.Traits); name != "" {
		c.Name = types.StringPtr(name)
	}

	if p := record.CreatorProfile; p != nil {
		if c.Name == nil {
			c.Name = types.NonEmptyStringPtr(types.SafeString(p.Username))
		}
		c.Description = types.NonEmptyStringPtr(types.SafeString(p.Bio))
		c.AvatarURL = types.NonEmptyStringPtr(types.SafeString(p.ProfileImageURL))
		c.WebsiteURL = types.NonEmptyStringPtr(types.SafeString(p.Website))
		for _, s := range p.SocialMedia {
			if s.Platform == "" || s.Username == "" {
				continue
			}
			if c.Socials == nil {
				c.Socials = make(map[string]string)
			}
			c.Socials[strings.ToLower(s.Platform)] = s.Username
		}
	}

	return c
}

// objktVerifiedCreators lists the verified token-level creators in order
func objktVerifiedCreators(token objkt.Token) []domain.Creator {
	var creators []domain.Creator
	for _, tc := range token.Creators {
		if !tc.Verified || tc.CreatorAddress == "" {
			continue
		}
		h := tc.Holder
		c := domain.Creator{
			Address:     tc.CreatorAddress,
			Name:        types.FirstNonEmpty(h.Alias, h.TzDomain),
			Description: types.NonEmptyStringPtr(types.SafeString(h.Description)),
			AvatarURL:   gatewayPtr(h.Logo),
			ProfileURL:  types.StringPtr("https://objkt.com/profile/" + tc.CreatorAddress),
			WebsiteURL:  types.NonEmptyStringPtr(types.SafeString(h.Website)),
			Verified:    true,
		}
		socials := map[string]string{}
		if v := types.SafeString(h.Twitter); v != "" {
			socials["twitter"] = v
		}
		if v := types.SafeString(h.Instagram); v != "" {
			socials["instagram"] = v
		}
		if len(socials) > 0 {
			c.Socials = socials
		}
		creators = append(creators, c)
	}
	return creators
}

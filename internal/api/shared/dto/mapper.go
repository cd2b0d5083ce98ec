package dto

import (
	"encoding/json"

	"github.com/feral-file/ff-catalog-indexer/internal/promotion"
	"github.com/feral-file/ff-catalog-indexer/internal/store/schema"
)

// MapIndexRecord converts a staged record. The payload is only included when withPayload is set.
func MapIndexRecord(r *schema.ArtworkIndex, withPayload bool) IndexRecordResponse {
	resp := IndexRecordResponse{
		ID:              r.ID,
		ContractAddress: r.ContractAddress,
		TokenID:         r.TokenID,
		ObservationType: r.ObservationType,
		DataSource:      r.DataSource,
		Blockchain:      r.Blockchain,
		Wallet:          r.Wallet,
		Title:           r.Title,
		ImportStatus:    r.ImportStatus,
		ArtworkID:       r.ArtworkID,
		LastError:       r.LastError,
		Attempts:        r.Attempts,
		LastSeenAt:      r.LastSeenAt,
		ImportedAt:      r.ImportedAt,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
	if withPayload && len(r.Payload) > 0 {
		resp.Payload = json.RawMessage(r.Payload)
	}
	return resp
}

// MapIndexRecords converts a page of staged records
func MapIndexRecords(records []schema.ArtworkIndex) []IndexRecordResponse {
	out := make([]IndexRecordResponse, 0, len(records))
	for i := range records {
		out = append(out, MapIndexRecord(&records[i], false))
	}
	return out
}

// MapArtist converts an artist
func MapArtist(a *schema.Artist) ArtistResponse {
	resp := ArtistResponse{
		ID:               a.ID,
		IdentityKey:      a.IdentityKey,
		Name:             a.Name,
		Description:      a.Description,
		AvatarURL:        a.AvatarURL,
		ProfileURL:       a.ProfileURL,
		WebsiteURL:       a.WebsiteURL,
		Verified:         a.Verified,
		ResolutionSource: a.ResolutionSource,
	}
	if len(a.Socials) > 0 {
		resp.Socials = map[string]interface{}(a.Socials)
	}
	for _, addr := range a.Addresses {
		resp.Addresses = append(resp.Addresses, addr.Address)
	}
	return resp
}

// MapCollection converts a collection; decimals are rendered as strings
func MapCollection(c *schema.Collection) *CollectionResponse {
	if c == nil {
		return nil
	}
	resp := &CollectionResponse{
		ID:               c.ID,
		Slug:             c.Slug,
		Title:            c.Title,
		Description:      c.Description,
		ImageURL:         c.ImageURL,
		ExternalURL:      c.ExternalURL,
		ContractAddress:  c.ContractAddress,
		Blockchain:       c.Blockchain,
		IsGenerative:     c.IsGenerative,
		IsSharedContract: c.IsSharedContract,
		TotalSupply:      c.TotalSupply,
		OwnerCount:       c.OwnerCount,
		Currency:         c.Currency,
	}
	if c.FloorPrice != nil {
		s := c.FloorPrice.String()
		resp.FloorPrice = &s
	}
	if c.TotalVolume != nil {
		s := c.TotalVolume.String()
		resp.TotalVolume = &s
	}
	return resp
}

// MapArtwork converts an artwork with its preloaded artists and collection
func MapArtwork(a *schema.Artwork) ArtworkResponse {
	resp := ArtworkResponse{
		ID:              a.ID,
		ContractAddress: a.ContractAddress,
		TokenID:         a.TokenID,
		Blockchain:      a.Blockchain,
		Title:           a.Title,
		Description:     a.Description,
		ImageURL:        a.ImageURL,
		AnimationURL:    a.AnimationURL,
		ThumbnailURL:    a.ThumbnailURL,
		MetadataURL:     a.MetadataURL,
		MimeType:        a.MimeType,
		TokenStandard:   a.TokenStandard,
		Supply:          a.Supply,
		MintedAt:        a.MintedAt,
		Width:           a.Width,
		Height:          a.Height,
		DataSource:      a.DataSource,
		Collection:      MapCollection(a.Collection),
		Artists:         make([]ArtistResponse, 0, len(a.Artists)),
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
	if len(a.Attributes) > 0 {
		resp.Attributes = json.RawMessage(a.Attributes)
	}
	if len(a.Features) > 0 {
		resp.Features = json.RawMessage(a.Features)
	}
	for i := range a.Artists {
		resp.Artists = append(resp.Artists, MapArtist(&a.Artists[i]))
	}
	return resp
}

// MapRun converts a persisted run
func MapRun(r *schema.IndexingRun) RunResponse {
	resp := RunResponse{
		ID:              r.ID,
		Trigger:         r.Trigger,
		Status:          r.Status,
		Wallet:          r.Wallet,
		Blockchain:      r.Blockchain,
		ObservationType: r.ObservationType,
		WalletCount:     r.WalletCount,
		Discovered:      r.Discovered,
		Stored:          r.Stored,
		Errored:         r.Errored,
		Error:           r.Error,
		StartedAt:       r.StartedAt,
		FinishedAt:      r.FinishedAt,
	}
	if len(r.Report) > 0 {
		resp.Report = json.RawMessage(r.Report)
	}
	return resp
}

// MapPromotion converts a batch promotion result
func MapPromotion(b *promotion.BatchResult) PromotionResponse {
	if b == nil {
		return PromotionResponse{Results: []promotion.Result{}}
	}
	resp := PromotionResponse{
		Processed: b.Processed,
		Imported:  b.Imported,
		Failed:    b.Failed,
		Results:   b.Results,
	}
	if resp.Results == nil {
		resp.Results = []promotion.Result{}
	}
	return resp
}

// MapImportResult maps the synchronous promotion of a single manual record
func MapImportResult(r *promotion.Result) ImportResponse {
	resp := ImportResponse{PromotionResponse: PromotionResponse{Results: []promotion.Result{}}}
	if r == nil {
		return resp
	}
	resp.Processed = 1
	if r.Success {
		resp.Imported = 1
	} else {
		resp.Failed = 1
	}
	resp.Results = append(resp.Results, *r)
	return resp
}

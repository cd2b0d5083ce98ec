package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/feral-file/ff-catalog-indexer/internal/domain"
	"github.com/feral-file/ff-catalog-indexer/internal/store/schema"
)

// UpsertArtist creates or updates an artist by identity key. Missing profile
// fields never erase known ones, and the address joins the address set.
func (s *pgStore) UpsertArtist(ctx context.Context, input ArtistInput) (*schema.Artist, error) {
	if input.IdentityKey == "" {
		return nil, errors.New("artist identity key is required")
	}

	var socials datatypes.JSONMap
	if len(input.Socials) > 0 {
		socials = make(datatypes.JSONMap, len(input.Socials))
		for k, v := range input.Socials {
			socials[k] = v
		}
	}

	artist := schema.Artist{
		IdentityKey:      input.IdentityKey,
		Name:             input.Name,
		Description:      input.Description,
		AvatarURL:        input.AvatarURL,
		ProfileURL:       input.ProfileURL,
		WebsiteURL:       input.WebsiteURL,
		Verified:         input.Verified,
		Socials:          socials,
		ResolutionSource: input.ResolutionSource,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "identity_key"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"name":              gorm.Expr("COALESCE(EXCLUDED.name, artists.name)"),
				"description":       gorm.Expr("COALESCE(EXCLUDED.description, artists.description)"),
				"avatar_url":        gorm.Expr("COALESCE(EXCLUDED.avatar_url, artists.avatar_url)"),
				"profile_url":       gorm.Expr("COALESCE(EXCLUDED.profile_url, artists.profile_url)"),
				"website_url":       gorm.Expr("COALESCE(EXCLUDED.website_url, artists.website_url)"),
				"verified":          gorm.Expr("artists.verified OR EXCLUDED.verified"),
				"socials":           gorm.Expr("COALESCE(artists.socials, '{}'::jsonb) || COALESCE(EXCLUDED.socials, '{}'::jsonb)"),
				"resolution_source": gorm.Expr("EXCLUDED.resolution_source"),
				"updated_at":        time.Now().UTC(),
			}),
		}).Create(&artist).Error; err != nil {
			return fmt.Errorf("failed to upsert artist: %w", err)
		}

		if address := domain.NormalizeAddress(input.Address); address != "" {
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&schema.ArtistAddress{
				ArtistID:   artist.ID,
				Address:    address,
				Blockchain: input.Blockchain,
			}).Error; err != nil {
				return fmt.Errorf("failed to add artist address: %w", err)
			}
		}

		return tx.Preload("Addresses", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC, address ASC")
		}).Where("id = ?", artist.ID).Take(&artist).Error
	})
	if err != nil {
		return nil, err
	}

	return &artist, nil
}

// UpsertCollection creates or updates a collection by slug
func (s *pgStore) UpsertCollection(ctx context.Context, input CollectionInput) (*schema.Collection, error) {
	c := input.Collection
	if c.Slug == "" {
		return nil, errors.New("collection slug is required")
	}

	collection := schema.Collection{
		Slug:             c.Slug,
		Title:            c.Title,
		Description:      c.Description,
		ImageURL:         c.ImageURL,
		ExternalURL:      c.ExternalURL,
		ContractAddress:  c.ContractAddress,
		Blockchain:       input.Blockchain,
		IsGenerative:     c.IsGenerative,
		IsSharedContract: c.IsSharedContract,
		TotalSupply:      c.Stats.TotalSupply,
		OwnerCount:       c.Stats.OwnerCount,
		FloorPrice:       c.Stats.FloorPrice,
		TotalVolume:      c.Stats.TotalVolume,
		Currency:         c.Stats.Currency,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "slug"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"title":              gorm.Expr("EXCLUDED.title"),
				"description":        gorm.Expr("COALESCE(EXCLUDED.description, collections.description)"),
				"image_url":          gorm.Expr("COALESCE(EXCLUDED.image_url, collections.image_url)"),
				"external_url":       gorm.Expr("COALESCE(EXCLUDED.external_url, collections.external_url)"),
				"contract_address":   gorm.Expr("COALESCE(EXCLUDED.contract_address, collections.contract_address)"),
				"blockchain":         gorm.Expr("EXCLUDED.blockchain"),
				"is_generative":      gorm.Expr("EXCLUDED.is_generative"),
				"is_shared_contract": gorm.Expr("EXCLUDED.is_shared_contract"),
				"total_supply":       gorm.Expr("COALESCE(EXCLUDED.total_supply, collections.total_supply)"),
				"owner_count":        gorm.Expr("COALESCE(EXCLUDED.owner_count, collections.owner_count)"),
				"floor_price":        gorm.Expr("COALESCE(EXCLUDED.floor_price, collections.floor_price)"),
				"total_volume":       gorm.Expr("COALESCE(EXCLUDED.total_volume, collections.total_volume)"),
				"currency":           gorm.Expr("COALESCE(EXCLUDED.currency, collections.currency)"),
				"updated_at":         time.Now().UTC(),
			}),
		}).Create(&collection).Error; err != nil {
			return fmt.Errorf("failed to upsert collection: %w", err)
		}

		links := make([]schema.CollectionArtist, 0, len(input.ArtistIDs))
		for _, artistID := range input.ArtistIDs {
			links = append(links, schema.CollectionArtist{CollectionID: collection.ID, ArtistID: artistID})
		}
		if len(links) > 0 {
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&links).Error; err != nil {
				return fmt.Errorf("failed to link collection artists: %w", err)
			}
		}

		return tx.Preload("Artists").Where("id = ?", collection.ID).Take(&collection).Error
	})
	if err != nil {
		return nil, err
	}

	return &collection, nil
}

// UpsertArtwork creates or updates an artwork by (contract, token). Every
// flattened field takes the new value; the collection is kept when the new
// data has none. Artist links are additive unless ReplaceArtists is set.
func (s *pgStore) UpsertArtwork(ctx context.Context, input ArtworkInput) (*schema.Artwork, error) {
	d := input.Data
	if d.ContractAddress == "" || d.TokenID == "" {
		return nil, domain.ErrMissingTokenKey
	}

	artwork := schema.Artwork{
		ContractAddress: d.ContractAddress,
		TokenID:         d.TokenID,
		Blockchain:      d.Blockchain,
		Title:           d.Title,
		Description:     d.Description,
		ImageURL:        d.ImageURL,
		AnimationURL:    d.AnimationURL,
		ThumbnailURL:    d.ThumbnailURL,
		MetadataURL:     d.MetadataURL,
		MimeType:        d.MimeType,
		TokenStandard:   d.TokenStandard,
		Supply:          d.Supply,
		MintedAt:        d.MintedAt,
		CollectionID:    input.CollectionID,
		DataSource:      input.DataSource,
	}
	if d.Dimensions != nil {
		artwork.Width = &d.Dimensions.Width
		artwork.Height = &d.Dimensions.Height
	}
	if len(d.Attributes) > 0 {
		attributes, err := json.Marshal(d.Attributes)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal attributes: %w", err)
		}
		artwork.Attributes = attributes
	}
	if len(d.Features) > 0 {
		features, err := json.Marshal(d.Features)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal features: %w", err)
		}
		artwork.Features = features
	}

	assignments := clause.AssignmentColumns([]string{
		"blockchain", "title", "description", "image_url", "animation_url", "thumbnail_url",
		"metadata_url", "mime_type", "token_standard", "supply", "minted_at", "width", "height",
		"attributes", "features", "data_source",
	})
	assignments = append(assignments, clause.Assignments(map[string]interface{}{
		"collection_id": gorm.Expr("COALESCE(EXCLUDED.collection_id, artworks.collection_id)"),
		"updated_at":    time.Now().UTC(),
	})...)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "contract_address"}, {Name: "token_id"}},
			DoUpdates: assignments,
		}).Create(&artwork).Error; err != nil {
			return fmt.Errorf("failed to upsert artwork: %w", err)
		}

		if input.ReplaceArtists {
			unlink := tx.Where("artwork_id = ?", artwork.ID)
			if len(input.ArtistIDs) > 0 {
				unlink = unlink.Where("artist_id NOT IN ?", input.ArtistIDs)
			}
			if err := unlink.Delete(&schema.ArtworkArtist{}).Error; err != nil {
				return fmt.Errorf("failed to unlink artwork artists: %w", err)
			}
		}

		links := make([]schema.ArtworkArtist, 0, len(input.ArtistIDs))
		for _, artistID := range input.ArtistIDs {
			links = append(links, schema.ArtworkArtist{ArtworkID: artwork.ID, ArtistID: artistID})
		}
		if len(links) > 0 {
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&links).Error; err != nil {
				return fmt.Errorf("failed to link artwork artists: %w", err)
			}
		}

		return preloadArtwork(tx).Where("id = ?", artwork.ID).Take(&artwork).Error
	})
	if err != nil {
		return nil, err
	}

	return &artwork, nil
}

func preloadArtwork(db *gorm.DB) *gorm.DB {
	return db.Preload("Collection").
		Preload("Artists", func(db *gorm.DB) *gorm.DB {
			return db.Order("artists.id ASC")
		}).
		Preload("Artists.Addresses")
}

// GetArtwork retrieves an artwork with its collection and artists
func (s *pgStore) GetArtwork(ctx context.Context, id int64) (*schema.Artwork, error) {
	var artwork schema.Artwork
	found, err := s.firstOnPrimary(func(db *gorm.DB) error {
		return preloadArtwork(db.WithContext(ctx)).Where("id = ?", id).First(&artwork).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get artwork: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &artwork, nil
}

// GetArtworkByKey retrieves an artwork by (contract, token)
func (s *pgStore) GetArtworkByKey(ctx context.Context, key domain.TokenKey) (*schema.Artwork, error) {
	var artwork schema.Artwork
	found, err := s.firstOnPrimary(func(db *gorm.DB) error {
		return preloadArtwork(db.WithContext(ctx)).
			Where("contract_address = ? AND token_id = ?", key.ContractAddress, key.TokenID).
			First(&artwork).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get artwork: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &artwork, nil
}

// GetArtistByIdentityKey retrieves an artist with its addresses
func (s *pgStore) GetArtistByIdentityKey(ctx context.Context, identityKey string) (*schema.Artist, error) {
	var artist schema.Artist
	found, err := s.firstOnPrimary(func(db *gorm.DB) error {
		return db.WithContext(ctx).Preload("Addresses").Where("identity_key = ?", identityKey).First(&artist).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get artist: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &artist, nil
}

// GetCollectionBySlug retrieves a collection with its artists
func (s *pgStore) GetCollectionBySlug(ctx context.Context, slug string) (*schema.Collection, error) {
	var collection schema.Collection
	found, err := s.firstOnPrimary(func(db *gorm.DB) error {
		return db.WithContext(ctx).Preload("Artists").Where("slug = ?", slug).First(&collection).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get collection: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &collection, nil
}

// ListArtworks lists artworks newest first
func (s *pgStore) ListArtworks(ctx context.Context, limit, offset int) ([]schema.Artwork, int64, error) {
	var total int64
	if err := s.db.WithContext(ctx).Model(&schema.Artwork{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count artworks: %w", err)
	}

	query := preloadArtwork(s.db.WithContext(ctx)).Order("id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var artworks []schema.Artwork
	if err := query.Find(&artworks).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list artworks: %w", err)
	}
	return artworks, total, nil
}

// CountCatalog counts artists, collections and artworks
func (s *pgStore) CountCatalog(ctx context.Context) (int64, int64, int64, error) {
	var artists, collections, artworks int64
	db := s.db.WithContext(ctx)
	if err := db.Model(&schema.Artist{}).Count(&artists).Error; err != nil {
		return 0, 0, 0, fmt.Errorf("failed to count artists: %w", err)
	}
	if err := db.Model(&schema.Collection{}).Count(&collections).Error; err != nil {
		return 0, 0, 0, fmt.Errorf("failed to count collections: %w", err)
	}
	if err := db.Model(&schema.Artwork{}).Count(&artworks).Error; err != nil {
		return 0, 0, 0, fmt.Errorf("failed to count artworks: %w", err)
	}
	return artists, collections, artworks, nil
}

// DeleteArtwork deletes an artwork. Staged records linked to it go back to
// pending with a null reference so a later import can relink them.
func (s *pgStore) DeleteArtwork(ctx context.Context, id int64) ([]int64, error) {
	var decoupled []int64

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var artwork schema.Artwork
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Where("id = ?", id).Take(&artwork).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrArtworkNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to lock artwork: %w", err)
		}

		if err := tx.Model(&schema.ArtworkIndex{}).
			Where("artwork_id = ?", id).
			Order("id ASC").
			Pluck("id", &decoupled).Error; err != nil {
			return fmt.Errorf("failed to find linked staged records: %w", err)
		}

		if len(decoupled) > 0 {
			if err := tx.Model(&schema.ArtworkIndex{}).
				Where("id IN ?", decoupled).
				Updates(map[string]interface{}{
					"artwork_id":    nil,
					"import_status": domain.ImportStatusPending,
					"last_error":    nil,
					"claimed_at":    nil,
				}).Error; err != nil {
				return fmt.Errorf("failed to decouple staged records: %w", err)
			}
		}

		if err := tx.Where("artwork_id = ?", id).Delete(&schema.ArtworkArtist{}).Error; err != nil {
			return fmt.Errorf("failed to unlink artwork artists: %w", err)
		}
		if err := tx.Delete(&schema.Artwork{}, id).Error; err != nil {
			return fmt.Errorf("failed to delete artwork: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return decoupled, nil
}

package rest

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gin-gonic/gin"

	"github.com/feral-file/ff-catalog-indexer/internal/api/shared/constants"
	"github.com/feral-file/ff-catalog-indexer/internal/domain"
	"github.com/feral-file/ff-catalog-indexer/internal/store"
)

// ListIndexQueryParams holds query parameters for GET /index
type ListIndexQueryParams struct {
	Blockchain string `form:"blockchain"`
	Status     string `form:"status"`
	Query      string `form:"q"`

	Limit  int `form:"limit,default=50"`
	Offset int `form:"offset,default=0"`
}

// ListArtworksQueryParams holds query parameters for GET /artworks
type ListArtworksQueryParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// ParseListIndexQuery parses query parameters for GET /index
func ParseListIndexQuery(c *gin.Context) (*ListIndexQueryParams, error) {
	var params ListIndexQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}

	params.Blockchain = strings.ToLower(strings.TrimSpace(params.Blockchain))
	params.Status = strings.ToLower(strings.TrimSpace(params.Status))
	params.Query = strings.TrimSpace(params.Query)

	if params.Limit > constants.MAX_PAGE_SIZE {
		params.Limit = constants.MAX_PAGE_SIZE
	}

	return &params, nil
}

// Validate validates the query parameters
func (p *ListIndexQueryParams) Validate() error {
	return validation.ValidateStruct(p,
		validation.Field(&p.Blockchain, validation.In(string(domain.BlockchainEthereum), string(domain.BlockchainTezos))),
		validation.Field(&p.Status, validation.In(
			string(domain.ImportStatusPending),
			string(domain.ImportStatusProcessing),
			string(domain.ImportStatusImported),
			string(domain.ImportStatusFailed),
		)),
		validation.Field(&p.Limit, validation.Min(1)),
		validation.Field(&p.Offset, validation.Min(0)),
	)
}

// Filter converts the query parameters to a store filter
func (p *ListIndexQueryParams) Filter() store.IndexFilter {
	filter := store.IndexFilter{
		Query:  p.Query,
		Limit:  p.Limit,
		Offset: p.Offset,
	}
	if p.Blockchain != "" {
		blockchain := domain.Blockchain(p.Blockchain)
		filter.Blockchain = &blockchain
	}
	if p.Status != "" {
		status := domain.ImportStatus(p.Status)
		filter.Status = &status
	}
	return filter
}

// ParseListArtworksQuery parses query parameters for GET /artworks
func ParseListArtworksQuery(c *gin.Context) (*ListArtworksQueryParams, error) {
	var params ListArtworksQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}

	if params.Limit > constants.MAX_PAGE_SIZE {
		params.Limit = constants.MAX_PAGE_SIZE
	}

	return &params, nil
}

// Validate validates the query parameters
func (p *ListArtworksQueryParams) Validate() error {
	return validation.ValidateStruct(p,
		validation.Field(&p.Limit, validation.Min(1)),
		validation.Field(&p.Offset, validation.Min(0)),
	)
}

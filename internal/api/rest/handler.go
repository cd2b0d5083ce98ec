package rest

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/feral-file/ff-catalog-indexer/internal/api/shared/dto"
	"github.com/feral-file/ff-catalog-indexer/internal/api/shared/executor"
)

// Handler defines the interface for REST API handlers
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// ImportRecords stages and promotes manual records
	// POST /api/v1/import
	ImportRecords(c *gin.Context)

	// IndexAndImport runs the pipeline; with async=true it starts a workflow instead
	// POST /api/v1/index-and-import?async=<bool>
	IndexAndImport(c *gin.Context)

	// ListIndexRecords lists staged records collapsed to one per token
	// GET /api/v1/index?blockchain=<chain>&status=<status>&q=<text>&limit=<limit>&offset=<offset>
	ListIndexRecords(c *gin.Context)

	// GetIndexRecord retrieves a staged record with its payload
	// GET /api/v1/index/:id
	GetIndexRecord(c *gin.Context)

	// ResetIndexRecord moves a failed record back to pending
	// POST /api/v1/index/:id/reset
	ResetIndexRecord(c *gin.Context)

	// ResetFailedIndexRecords moves every failed record back to pending
	// POST /api/v1/index/reset-failed
	ResetFailedIndexRecords(c *gin.Context)

	// Promote promotes staged records; with async=true it starts a workflow instead
	// POST /api/v1/promote?async=<bool>
	Promote(c *gin.Context)

	// ListArtworks lists catalog artworks
	// GET /api/v1/artworks?limit=<limit>&offset=<offset>
	ListArtworks(c *gin.Context)

	// GetArtwork retrieves an artwork with its artists and collection
	// GET /api/v1/artworks/:id
	GetArtwork(c *gin.Context)

	// DeleteArtwork deletes an artwork and decouples its staged records
	// DELETE /api/v1/artworks/:id
	DeleteArtwork(c *gin.Context)

	// GetRun retrieves an indexing run
	// GET /api/v1/runs/:id
	GetRun(c *gin.Context)

	// Stats summarizes the staging index and the catalog
	// GET /api/v1/stats
	Stats(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	executor executor.Executor
}

// NewHandler creates a new REST API handler using the shared executor
func NewHandler(exec executor.Executor) Handler {
	return &handler{executor: exec}
}

// ImportRecords stages one record or an array of records and promotes them.
// A batch queued for the promotion workflow answers 202.
func (h *handler) ImportRecords(c *gin.Context) {
	var req dto.ImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	if err := req.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	response, err := h.executor.ImportRecords(c.Request.Context(), req.Records)
	if err != nil {
		respondError(c, err, "Failed to import records")
		return
	}

	if response.Queued() {
		c.JSON(http.StatusAccepted, response)
		return
	}
	c.JSON(http.StatusOK, response)
}

// IndexAndImport runs the pipeline. An empty body indexes every configured wallet.
func (h *handler) IndexAndImport(c *gin.Context) {
	var req dto.IndexAndImportRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	if err := req.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	async, err := parseAsync(c)
	if err != nil {
		respondBadRequest(c, "Invalid async parameter", err.Error())
		return
	}

	if async {
		response, err := h.executor.TriggerIndexAndImport(c.Request.Context(), req.ToRequest())
		if err != nil {
			respondError(c, err, "Failed to start index and import")
			return
		}
		c.JSON(http.StatusAccepted, response)
		return
	}

	report, err := h.executor.IndexAndImport(c.Request.Context(), req.ToRequest())
	if err != nil {
		respondError(c, err, "Failed to run index and import")
		return
	}

	c.JSON(http.StatusOK, report)
}

// ListIndexRecords lists staged records with filters and pagination
func (h *handler) ListIndexRecords(c *gin.Context) {
	queryParams, err := ParseListIndexQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	if err := queryParams.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	response, err := h.executor.ListIndexRecords(c.Request.Context(), queryParams.Filter())
	if err != nil {
		respondError(c, err, "Failed to list index records")
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetIndexRecord retrieves a staged record by ID
func (h *handler) GetIndexRecord(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	response, err := h.executor.GetIndexRecord(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to get index record")
		return
	}

	if response == nil {
		respondNotFound(c, "Index record not found")
		return
	}

	c.JSON(http.StatusOK, response)
}

// ResetIndexRecord moves a failed record back to pending
func (h *handler) ResetIndexRecord(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	response, err := h.executor.ResetIndexRecord(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to reset index record")
		return
	}

	c.JSON(http.StatusOK, response)
}

// ResetFailedIndexRecords moves every failed record back to pending
func (h *handler) ResetFailedIndexRecords(c *gin.Context) {
	response, err := h.executor.ResetFailedIndexRecords(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to reset failed index records")
		return
	}

	c.JSON(http.StatusOK, response)
}

// Promote promotes the given records or every pending record
func (h *handler) Promote(c *gin.Context) {
	var req dto.PromoteRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	if err := req.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	async, err := parseAsync(c)
	if err != nil {
		respondBadRequest(c, "Invalid async parameter", err.Error())
		return
	}

	if async {
		response, err := h.executor.TriggerPromote(c.Request.Context(), req.IndexIDs)
		if err != nil {
			respondError(c, err, "Failed to start promotion")
			return
		}
		c.JSON(http.StatusAccepted, response)
		return
	}

	response, err := h.executor.Promote(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to promote records")
		return
	}

	c.JSON(http.StatusOK, response)
}

// ListArtworks lists catalog artworks
func (h *handler) ListArtworks(c *gin.Context) {
	queryParams, err := ParseListArtworksQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	if err := queryParams.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	response, err := h.executor.ListArtworks(c.Request.Context(), queryParams.Limit, queryParams.Offset)
	if err != nil {
		respondError(c, err, "Failed to list artworks")
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetArtwork retrieves an artwork by ID
func (h *handler) GetArtwork(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	response, err := h.executor.GetArtwork(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to get artwork")
		return
	}

	if response == nil {
		respondNotFound(c, "Artwork not found")
		return
	}

	c.JSON(http.StatusOK, response)
}

// DeleteArtwork deletes an artwork
func (h *handler) DeleteArtwork(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	response, err := h.executor.DeleteArtwork(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to delete artwork")
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetRun retrieves an indexing run by ID
func (h *handler) GetRun(c *gin.Context) {
	runID := c.Param("id")
	if runID == "" {
		respondBadRequest(c, "Run ID is required")
		return
	}

	response, err := h.executor.GetRun(c.Request.Context(), runID)
	if err != nil {
		respondError(c, err, "Failed to get run")
		return
	}

	if response == nil {
		respondNotFound(c, "Indexing run not found")
		return
	}

	c.JSON(http.StatusOK, response)
}

// Stats summarizes the staging index and the catalog
func (h *handler) Stats(c *gin.Context) {
	response, err := h.executor.Stats(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to get stats")
		return
	}

	c.JSON(http.StatusOK, response)
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	if err := h.executor.Ready(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":  "unavailable",
			"service": "catalog-api",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "catalog-api",
	})
}

// parseID reads a positive numeric :id path parameter, responding on failure
func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		respondBadRequest(c, "Invalid ID", c.Param("id"))
		return 0, false
	}
	return id, true
}

func parseAsync(c *gin.Context) (bool, error) {
	raw := c.Query("async")
	if raw == "" {
		return false, nil
	}
	return strconv.ParseBool(raw)
}

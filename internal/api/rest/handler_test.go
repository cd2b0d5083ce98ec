package rest_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-catalog-indexer/internal/api/rest"
	"github.com/feral-file/ff-catalog-indexer/internal/api/shared/dto"
	apierrors "github.com/feral-file/ff-catalog-indexer/internal/api/shared/errors"
	"github.com/feral-file/ff-catalog-indexer/internal/domain"
	"github.com/feral-file/ff-catalog-indexer/internal/mocks"
	"github.com/feral-file/ff-catalog-indexer/internal/orchestrator"
	"github.com/feral-file/ff-catalog-indexer/internal/store"
)

const testWallet = "0x1234567890abcdef1234567890abcdef12345678"

func allow(c *gin.Context) { c.Next() }

func setupRouter(t *testing.T) (*gin.Engine, *mocks.MockAPIExecutor) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	exec := mocks.NewMockAPIExecutor(ctrl)

	router := gin.New()
	rest.SetupRoutes(router, rest.NewHandler(exec), allow)
	return router, exec
}

func do(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, _ := json.Marshal(b)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) apierrors.APIError {
	t.Helper()
	var apiErr apierrors.APIError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &apiErr))
	return apiErr
}

func TestHealthCheck(t *testing.T) {
	router, exec := setupRouter(t)

	exec.EXPECT().Ready(gomock.Any()).Return(nil)
	w := do(router, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)

	exec.EXPECT().Ready(gomock.Any()).Return(domain.ErrStorageUnavailable)
	w = do(router, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestImportRecords(t *testing.T) {
	record := map[string]interface{}{
		"contract_address": "0xabc",
		"token_id":         "1",
		"blockchain":       "ethereum",
		"title":            "Untitled",
	}

	t.Run("single object", func(t *testing.T) {
		router, exec := setupRouter(t)
		exec.EXPECT().ImportRecords(gomock.Any(), gomock.Len(1)).
			Return(&dto.ImportResponse{PromotionResponse: dto.PromotionResponse{Processed: 1, Imported: 1}}, nil)

		w := do(router, http.MethodPost, "/api/v1/import", record)
		require.Equal(t, http.StatusOK, w.Code)

		var resp dto.ImportResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 1, resp.Imported)
		assert.Empty(t, resp.WorkflowID)
	})

	t.Run("array promoted in-process", func(t *testing.T) {
		router, exec := setupRouter(t)
		exec.EXPECT().ImportRecords(gomock.Any(), gomock.Len(2)).
			Return(&dto.ImportResponse{PromotionResponse: dto.PromotionResponse{Processed: 2, Imported: 1, Failed: 1}}, nil)

		w := do(router, http.MethodPost, "/api/v1/import", []interface{}{record, record})
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("array queued for promotion", func(t *testing.T) {
		router, exec := setupRouter(t)
		exec.EXPECT().ImportRecords(gomock.Any(), gomock.Len(2)).
			Return(&dto.ImportResponse{StagedIDs: []int64{7, 8}, WorkflowID: "catalog-promote-01h", RunID: "run-1"}, nil)

		w := do(router, http.MethodPost, "/api/v1/import", []interface{}{record, record})
		require.Equal(t, http.StatusAccepted, w.Code)

		var resp dto.ImportResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "catalog-promote-01h", resp.WorkflowID)
		assert.Equal(t, []int64{7, 8}, resp.StagedIDs)
	})

	t.Run("invalid single record", func(t *testing.T) {
		router, exec := setupRouter(t)
		exec.EXPECT().ImportRecords(gomock.Any(), gomock.Len(1)).
			Return(nil, fmt.Errorf("failed to import record: %w", domain.ErrInvalidRecord))

		w := do(router, http.MethodPost, "/api/v1/import", record)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("empty array", func(t *testing.T) {
		router, _ := setupRouter(t)
		w := do(router, http.MethodPost, "/api/v1/import", "[]")
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		router, _ := setupRouter(t)
		w := do(router, http.MethodPost, "/api/v1/import", "{")
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Equal(t, apierrors.ErrCodeValidationFailed, decodeError(t, w).Code)
	})
}

func TestIndexAndImport(t *testing.T) {
	t.Run("sync returns the report", func(t *testing.T) {
		router, exec := setupRouter(t)
		exec.EXPECT().IndexAndImport(gomock.Any(), orchestrator.Request{
			Wallet:  testWallet,
			Trigger: "api",
		}).Return(&orchestrator.RunReport{ID: "run-1", WalletCount: 1}, nil)

		w := do(router, http.MethodPost, "/api/v1/index-and-import", map[string]string{"wallet": testWallet})
		require.Equal(t, http.StatusOK, w.Code)

		var report orchestrator.RunReport
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
		assert.Equal(t, "run-1", report.ID)
	})

	t.Run("empty body indexes everything", func(t *testing.T) {
		router, exec := setupRouter(t)
		exec.EXPECT().IndexAndImport(gomock.Any(), orchestrator.Request{Trigger: "api"}).
			Return(&orchestrator.RunReport{ID: "run-2"}, nil)

		w := do(router, http.MethodPost, "/api/v1/index-and-import", nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("async starts a workflow", func(t *testing.T) {
		router, exec := setupRouter(t)
		exec.EXPECT().TriggerIndexAndImport(gomock.Any(), gomock.Any()).
			Return(&dto.TriggerWorkflowResponse{WorkflowID: "wf", RunID: "r"}, nil)

		w := do(router, http.MethodPost, "/api/v1/index-and-import?async=true", nil)
		require.Equal(t, http.StatusAccepted, w.Code)
		assert.Contains(t, w.Body.String(), `"workflow_id":"wf"`)
	})

	t.Run("async without workflow engine", func(t *testing.T) {
		router, exec := setupRouter(t)
		exec.EXPECT().TriggerIndexAndImport(gomock.Any(), gomock.Any()).
			Return(nil, apierrors.NewServiceUnavailableError("Asynchronous runs are not available"))

		w := do(router, http.MethodPost, "/api/v1/index-and-import?async=1", nil)
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})

	t.Run("invalid wallet", func(t *testing.T) {
		router, _ := setupRouter(t)
		w := do(router, http.MethodPost, "/api/v1/index-and-import", map[string]string{"wallet": "not-a-wallet"})
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("unsupported blockchain", func(t *testing.T) {
		router, _ := setupRouter(t)
		w := do(router, http.MethodPost, "/api/v1/index-and-import", map[string]string{"blockchain": "solana"})
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("invalid async flag", func(t *testing.T) {
		router, _ := setupRouter(t)
		w := do(router, http.MethodPost, "/api/v1/index-and-import?async=maybe", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("storage outage", func(t *testing.T) {
		router, exec := setupRouter(t)
		exec.EXPECT().IndexAndImport(gomock.Any(), gomock.Any()).
			Return(nil, errors.Join(domain.ErrStorageUnavailable, errors.New("connection refused")))

		w := do(router, http.MethodPost, "/api/v1/index-and-import", nil)
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}

func TestListIndexRecords(t *testing.T) {
	router, exec := setupRouter(t)

	blockchain := domain.BlockchainTezos
	status := domain.ImportStatusFailed
	exec.EXPECT().ListIndexRecords(gomock.Any(), store.IndexFilter{
		Blockchain: &blockchain,
		Status:     &status,
		Query:      "kt1",
		Limit:      200,
		Offset:     10,
	}).Return(&dto.ListResponse[dto.IndexRecordResponse]{
		Items: []dto.IndexRecordResponse{{ID: 7}},
		Total: 11,
		Limit: 200,
	}, nil)

	w := do(router, http.MethodGet, "/api/v1/index?blockchain=Tezos&status=failed&q=%20kt1%20&limit=1000&offset=10", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.ListResponse[dto.IndexRecordResponse]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(11), resp.Total)
	assert.Len(t, resp.Items, 1)

	w = do(router, http.MethodGet, "/api/v1/index?status=done", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = do(router, http.MethodGet, "/api/v1/index?limit=abc", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestGetIndexRecord(t *testing.T) {
	router, exec := setupRouter(t)

	exec.EXPECT().GetIndexRecord(gomock.Any(), int64(5)).Return(&dto.IndexRecordResponse{ID: 5}, nil)
	w := do(router, http.MethodGet, "/api/v1/index/5", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	exec.EXPECT().GetIndexRecord(gomock.Any(), int64(6)).Return(nil, nil)
	w = do(router, http.MethodGet, "/api/v1/index/6", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(router, http.MethodGet, "/api/v1/index/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestResetIndexRecord(t *testing.T) {
	router, exec := setupRouter(t)

	exec.EXPECT().ResetIndexRecord(gomock.Any(), int64(3)).
		Return(&dto.IndexRecordResponse{ID: 3, ImportStatus: domain.ImportStatusPending}, nil)
	w := do(router, http.MethodPost, "/api/v1/index/3/reset", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	exec.EXPECT().ResetIndexRecord(gomock.Any(), int64(4)).
		Return(nil, errors.Join(errors.New("failed to reset"), domain.ErrInvalidTransition))
	w = do(router, http.MethodPost, "/api/v1/index/4/reset", nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	exec.EXPECT().ResetIndexRecord(gomock.Any(), int64(9)).Return(nil, domain.ErrIndexNotFound)
	w = do(router, http.MethodPost, "/api/v1/index/9/reset", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestResetFailedIndexRecords(t *testing.T) {
	router, exec := setupRouter(t)

	exec.EXPECT().ResetFailedIndexRecords(gomock.Any()).Return(&dto.ResetFailedResponse{Reset: 4}, nil)
	w := do(router, http.MethodPost, "/api/v1/index/reset-failed", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"reset":4}`, w.Body.String())
}

func TestPromote(t *testing.T) {
	t.Run("by ids", func(t *testing.T) {
		router, exec := setupRouter(t)
		exec.EXPECT().Promote(gomock.Any(), dto.PromoteRequest{IndexIDs: []int64{1, 2}}).
			Return(&dto.PromotionResponse{Processed: 2, Imported: 2}, nil)

		w := do(router, http.MethodPost, "/api/v1/promote", map[string]interface{}{"index_ids": []int64{1, 2}})
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("pending without body", func(t *testing.T) {
		router, exec := setupRouter(t)
		exec.EXPECT().Promote(gomock.Any(), dto.PromoteRequest{}).
			Return(&dto.PromotionResponse{}, nil)

		w := do(router, http.MethodPost, "/api/v1/promote", nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("invalid id", func(t *testing.T) {
		router, _ := setupRouter(t)
		w := do(router, http.MethodPost, "/api/v1/promote", map[string]interface{}{"index_ids": []int64{0}})
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("async", func(t *testing.T) {
		router, exec := setupRouter(t)
		exec.EXPECT().TriggerPromote(gomock.Any(), []int64{5}).
			Return(&dto.TriggerWorkflowResponse{WorkflowID: "catalog-promote-1"}, nil)

		w := do(router, http.MethodPost, "/api/v1/promote?async=true", map[string]interface{}{"index_ids": []int64{5}})
		assert.Equal(t, http.StatusAccepted, w.Code)
	})
}

func TestArtworks(t *testing.T) {
	router, exec := setupRouter(t)

	exec.EXPECT().ListArtworks(gomock.Any(), 20, 0).
		Return(&dto.ListResponse[dto.ArtworkResponse]{Items: []dto.ArtworkResponse{}, Limit: 20}, nil)
	w := do(router, http.MethodGet, "/api/v1/artworks", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	exec.EXPECT().GetArtwork(gomock.Any(), int64(12)).Return(&dto.ArtworkResponse{ID: 12, Title: "Fidenza"}, nil)
	w = do(router, http.MethodGet, "/api/v1/artworks/12", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"title":"Fidenza"`)

	exec.EXPECT().GetArtwork(gomock.Any(), int64(13)).Return(nil, nil)
	w = do(router, http.MethodGet, "/api/v1/artworks/13", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	exec.EXPECT().DeleteArtwork(gomock.Any(), int64(12)).
		Return(&dto.DeleteArtworkResponse{ArtworkID: 12, DecoupledIndexIDs: []int64{1, 2}}, nil)
	w = do(router, http.MethodDelete, "/api/v1/artworks/12", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"artwork_id":12,"decoupled_index_ids":[1,2]}`, w.Body.String())

	exec.EXPECT().DeleteArtwork(gomock.Any(), int64(99)).Return(nil, domain.ErrArtworkNotFound)
	w = do(router, http.MethodDelete, "/api/v1/artworks/99", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetRunAndStats(t *testing.T) {
	router, exec := setupRouter(t)

	exec.EXPECT().GetRun(gomock.Any(), "01HRUN").Return(&dto.RunResponse{ID: "01HRUN"}, nil)
	w := do(router, http.MethodGet, "/api/v1/runs/01HRUN", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	exec.EXPECT().GetRun(gomock.Any(), "missing").Return(nil, nil)
	w = do(router, http.MethodGet, "/api/v1/runs/missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	exec.EXPECT().Stats(gomock.Any()).Return(nil, context.DeadlineExceeded)
	w = do(router, http.MethodGet, "/api/v1/stats", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, apierrors.ErrCodeInternalError, decodeError(t, w).Code)
}

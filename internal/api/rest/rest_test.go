package rest_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/feral-file/ff-catalog-indexer/internal/api/rest"
	"github.com/feral-file/ff-catalog-indexer/internal/mocks"
)

func deny(c *gin.Context) {
	c.AbortWithStatus(http.StatusUnauthorized)
}

func TestSetupRoutes_AdminRoutesRequireAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	handler := mocks.NewMockAPIHandler(ctrl)

	router := gin.New()
	rest.SetupRoutes(router, handler, deny)

	admin := []struct{ method, path string }{
		{http.MethodPost, "/api/v1/import"},
		{http.MethodPost, "/api/v1/index-and-import"},
		{http.MethodPost, "/api/v1/index/reset-failed"},
		{http.MethodPost, "/api/v1/index/1/reset"},
		{http.MethodPost, "/api/v1/promote"},
		{http.MethodDelete, "/api/v1/artworks/1"},
	}
	for _, route := range admin {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(route.method, route.path, nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", route.method, route.path)
	}
}

func TestSetupRoutes_PublicRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	handler := mocks.NewMockAPIHandler(ctrl)

	ok := func(c *gin.Context) { c.Status(http.StatusOK) }
	handler.EXPECT().HealthCheck(gomock.Any()).Do(ok)
	handler.EXPECT().ListArtworks(gomock.Any()).Do(ok)
	handler.EXPECT().GetArtwork(gomock.Any()).Do(ok)
	handler.EXPECT().GetRun(gomock.Any()).Do(ok)
	handler.EXPECT().Stats(gomock.Any()).Do(ok)
	handler.EXPECT().ListIndexRecords(gomock.Any()).Do(ok)
	handler.EXPECT().GetIndexRecord(gomock.Any()).Do(ok)

	router := gin.New()
	rest.SetupRoutes(router, handler, deny)

	for _, path := range []string{
		"/health",
		"/api/v1/artworks",
		"/api/v1/artworks/1",
		"/api/v1/runs/01H",
		"/api/v1/stats",
		"/api/v1/index",
		"/api/v1/index/1",
	} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}

package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/assert/v2"

	"github.com/promoforge/adscript/internal/api/scripts"
	"github.com/promoforge/adscript/internal/generator"
	"github.com/promoforge/adscript/internal/script"
)

type stubFlow struct{}

func (stubFlow) Run(ctx context.Context, in generator.Input) (generator.Result, error) {
	return generator.Result{Script: &script.Output{Headline: "X", VideoScript: "Y"}}, nil
}

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	svc := scripts.NewService(stubFlow{}, nil, "llama3.1:8b")
	SetupRoutes(r, svc, nil)
	return r
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSetupRoutes_Root(t *testing.T) {
	assert.Equal(t, http.StatusOK, get(newRouter(), "/").Code)
}

func TestSetupRoutes_HealthWithoutStore(t *testing.T) {
	w := get(newRouter(), "/health")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSetupRoutes_UnknownPathIs404(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, get(newRouter(), "/nope").Code)
}

//go:build unit

package handler_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"coworking-admin/internal/handler"
	"coworking-admin/internal/handler/api"
	"coworking-admin/internal/handler/middleware"
	"coworking-admin/internal/infra/ws"
	"coworking-admin/internal/pkg/clock"
	"coworking-admin/internal/pkg/config"
	"coworking-admin/internal/pkg/jwt"
	"coworking-admin/internal/usecase"
	"coworking-admin/tests/common/authtest"
	"coworking-admin/tests/common/builder"
	commonhttp "coworking-admin/tests/common/httptest"
	usecasemock "coworking-admin/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newTestRouter(t *testing.T) (*gin.Engine, *usecasemock.MockGateway) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.NewTestConfig()
	ctrl := gomock.NewController(t)
	gateway := usecasemock.NewMockGateway(ctrl)

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	clk := clock.NewFixed(time.Date(2025, time.March, 15, 12, 0, 0, 0, time.Local))

	deskPanel := usecase.NewPanel("desks", usecase.DeskMessages(), gateway, cfg, clk, nil, log)
	standPanel := usecase.NewPanel("stands", usecase.StandMessages(), gateway, cfg, clk, nil, log)

	engine := gin.New()
	handler.NewRouter(
		engine,
		cfg,
		api.NewPanelHandler(deskPanel),
		api.NewPanelHandler(standPanel),
		api.NewWSHandler(ws.NewHub(log)),
		middleware.NewAuthMiddleware(jwt.NewService(cfg.JWT.Secret)),
	)
	return engine, gateway
}

func TestRouter_HealthCheck(t *testing.T) {
	router, _ := newTestRouter(t)

	w := commonhttp.PerformRequest(t, router, http.MethodGet, "/health", nil, "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
}

func TestRouter_CORSHeaders(t *testing.T) {
	router, _ := newTestRouter(t)

	req, err := http.NewRequest(http.MethodOptions, "/api/desks", nil)
	assert.NoError(t, err)
	req.Header.Set("Origin", "http://localhost:4200")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	w := performRaw(router, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	commonhttp.AssertHeaders(t, w, map[string]string{
		"Access-Control-Allow-Origin":      "http://localhost:4200",
		"Access-Control-Allow-Credentials": "true",
	})
}

func TestRouter_MutationsRequireToken(t *testing.T) {
	router, _ := newTestRouter(t)

	body := map[string]any{"number": 3, "name": "Recepção"}

	t.Run("missing token", func(t *testing.T) {
		w := commonhttp.PerformRequest(t, router, http.MethodPost, "/api/desks", body, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("expired token", func(t *testing.T) {
		token := authtest.NewJWTHelper(config.NewTestConfig().JWT).CreateExpiredToken(t, "admin", "admin")
		w := commonhttp.PerformRequest(t, router, http.MethodPost, "/api/desks", body, token)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid token", func(t *testing.T) {
		router, gateway := newTestRouter(t)
		gateway.EXPECT().CreateResource(gomock.Any(), 3, "Recepção").Return("", nil)
		gateway.EXPECT().ListResources(gomock.Any()).Return(builder.Resources(), nil).AnyTimes()
		gateway.EXPECT().ListRentals(gomock.Any()).Return(nil, nil).AnyTimes()

		token := authtest.NewJWTHelper(config.NewTestConfig().JWT).GenerateToken(t, "admin", "admin")
		w := commonhttp.PerformRequest(t, router, http.MethodPost, "/api/desks", body, token)
		assert.Equal(t, http.StatusCreated, w.Code)
	})
}

func TestRouter_PanelsAreIsolated(t *testing.T) {
	router, gateway := newTestRouter(t)
	gateway.EXPECT().ListResources(gomock.Any()).Return(builder.Resources(), nil).AnyTimes()
	gateway.EXPECT().ListRentals(gomock.Any()).Return(nil, nil).AnyTimes()

	for _, path := range []string{"/api/desks", "/api/stands"} {
		w := commonhttp.PerformRequest(t, router, http.MethodGet, path, nil, "")
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}

func performRaw(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

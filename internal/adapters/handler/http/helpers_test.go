package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	adapterHTTP "github.com/comitanigiacomo/kanso-steps/internal/adapters/handler/http"
	"github.com/comitanigiacomo/kanso-steps/internal/adapters/repository"
	"github.com/comitanigiacomo/kanso-steps/internal/core/domain"
	"github.com/comitanigiacomo/kanso-steps/internal/core/quotes"
	"github.com/comitanigiacomo/kanso-steps/internal/core/services"
	"github.com/comitanigiacomo/kanso-steps/internal/core/workers"
	"github.com/comitanigiacomo/kanso-steps/internal/metrics"
)

const ownerPassword = "correct-horse-battery"

// testNow is Sunday 2023-05-07, 18:00 UTC.
var testNow = time.Date(2023, 5, 7, 18, 0, 0, 0, time.UTC)

type testServer struct {
	router *gin.Engine
	svc    *services.DashboardService
	worker *workers.NotificationWorker
	tokens *services.TokenService
}

type serverOptions struct {
	auth bool
}

func newTestServer(t *testing.T, opts serverOptions) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	stepRepo := repository.NewInMemoryStepRepository()
	require.NoError(t, stepRepo.Upsert(ctx, domain.StepEntry{Date: time.Date(2023, 5, 5, 0, 0, 0, 0, time.UTC), Steps: 8000}))
	require.NoError(t, stepRepo.Upsert(ctx, domain.StepEntry{Date: time.Date(2023, 5, 6, 0, 0, 0, 0, time.UTC), Steps: 5432}))

	m, reg := metrics.NewTestManagerAndRegistry()

	worker := workers.NewNotificationWorker(quotes.Default(), time.Minute, m)
	worker.Start(ctx)

	svc := services.NewDashboardService(stepRepo, repository.NewInMemorySettingsRepository(), worker, services.DashboardOptions{
		Location: time.UTC,
		Metrics:  m,
		Now:      func() time.Time { return testNow },
	})
	require.NoError(t, svc.Init(ctx, false))

	deps := adapterHTTP.RouterDependencies{
		DashboardHandler:    adapterHTTP.NewDashboardHandler(svc),
		EntryHandler:        adapterHTTP.NewEntryHandler(svc),
		NotificationHandler: adapterHTTP.NewNotificationHandler(worker),
		Metrics:             m,
		Gatherer:            reg,
		StartTime:           time.Now(),
	}

	s := &testServer{svc: svc, worker: worker}
	if opts.auth {
		hash, err := domain.HashPassword(ownerPassword)
		require.NoError(t, err)

		s.tokens = services.NewTokenService("handler-test-secret", "kanso-test", time.Hour)
		deps.TokenService = s.tokens
		deps.AuthHandler = adapterHTTP.NewAuthHandler(services.NewAuthService(domain.NewOwner(hash), s.tokens))
	}

	s.router = adapterHTTP.NewRouter(deps)
	return s
}

func (s *testServer) do(method, path string, body any, headers ...string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			_ = json.NewEncoder(&buf).Encode(b)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

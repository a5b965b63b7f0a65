package worker

import (
	"encoding/base64"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"contactbook/config"
	"contactbook/internal/delivery/worker/handler"
	"contactbook/internal/domain/entity"
	mockSvc "contactbook/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestWorker(t *testing.T, cfg *config.Config) (*echo.Echo, *mockSvc.MockMailSender) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	sender := mockSvc.NewMockMailSender(t)
	push := handler.NewPushHandler(handler.PushHandlerParams{
		Config: cfg,
		Sender: sender,
		Logger: logger,
	})

	return NewEcho(cfg, logger, push), sender
}

func TestWorkerEcho_DeliversPushedMail(t *testing.T) {
	e, sender := newTestWorker(t, &config.Config{})

	sender.EXPECT().
		Send(mock.Anything, mock.MatchedBy(func(msg *entity.MailMessage) bool {
			return msg.Kind == entity.MailKindPasswordReset && msg.To == "bob@example.com"
		})).
		Return(nil).
		Once()

	payload := `{"kind":"password_reset","to":"bob@example.com","username":"bobby","base_url":"http://localhost:8000/","token":"t"}`
	body := `{"message":{"data":"` + base64.StdEncoding.EncodeToString([]byte(payload)) + `","messageId":"m-9"},"subscription":"s"}`

	req := httptest.NewRequest(http.MethodPost, PushPath, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
}

func TestWorkerEcho_HealthAndMetrics(t *testing.T) {
	cfg := &config.Config{Metrics: &config.MetricsConfig{Enabled: true, Path: "/metrics"}}
	e, _ := newTestWorker(t, cfg)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestWorkerEcho_MetricsDisabled(t *testing.T) {
	e, _ := newTestWorker(t, &config.Config{})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListenPort(t *testing.T) {
	cfg := &config.Config{}
	cfg.HTTP.Port = 8000
	assert.Equal(t, 8000, listenPort(cfg))

	cfg.Worker = &config.WorkerConfig{Port: 8081}
	assert.Equal(t, 8081, listenPort(cfg))
}

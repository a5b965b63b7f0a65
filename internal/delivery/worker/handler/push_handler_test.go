package handler

import (
	"context"
	"encoding/base64"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"contactbook/config"
	deliverycontext "contactbook/internal/delivery/context"
	"contactbook/internal/domain/entity"
	mockSvc "contactbook/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"google.golang.org/api/idtoken"
)

func newTestPushHandler(t *testing.T, worker *config.WorkerConfig) (*PushHandler, *mockSvc.MockMailSender) {
	sender := mockSvc.NewMockMailSender(t)
	cfg := &config.Config{Worker: worker}

	return NewPushHandler(PushHandlerParams{
		Config: cfg,
		Sender: sender,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}), sender
}

func pushBody(payload string) string {
	data := base64.StdEncoding.EncodeToString([]byte(payload))

	return `{"message":{"data":"` + data + `","attributes":{"request_id":"req-1"},"messageId":"m-1"},"subscription":"projects/p/subscriptions/s"}`
}

func push(h *PushHandler, body string, header http.Header) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for key, values := range header {
		req.Header[key] = values
	}
	rec := httptest.NewRecorder()
	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

const confirmationPayload = `{"kind":"confirmation","to":"ann@example.com","username":"annlee","base_url":"http://localhost:8000/","token":"t"}`

func TestPushHandler_SendsMail(t *testing.T) {
	h, sender := newTestPushHandler(t, nil)

	sender.EXPECT().
		Send(mock.Anything, &entity.MailMessage{
			Kind:     entity.MailKindConfirmation,
			To:       "ann@example.com",
			Username: "annlee",
			BaseURL:  "http://localhost:8000/",
			Token:    "t",
		}).
		RunAndReturn(func(ctx context.Context, _ *entity.MailMessage) error {
			assert.Equal(t, "req-1", deliverycontext.GetRequestIDFromContext(ctx))

			return nil
		})

	assert.Equal(t, http.StatusOK, push(h, pushBody(confirmationPayload), nil).Code)
}

func TestPushHandler_SendFailureIsRedelivered(t *testing.T) {
	h, sender := newTestPushHandler(t, nil)

	sender.EXPECT().Send(mock.Anything, mock.Anything).Return(errors.New("smtp down"))

	assert.Equal(t, http.StatusServiceUnavailable, push(h, pushBody(confirmationPayload), nil).Code)
}

func TestPushHandler_MalformedIsAcked(t *testing.T) {
	h, sender := newTestPushHandler(t, nil)

	for _, body := range []string{
		`{"message":{"data":"%%%"}}`,
		pushBody(`not json`),
		pushBody(`{"kind":"newsletter","to":"ann@example.com"}`),
		`{"message":`,
	} {
		assert.Equal(t, http.StatusOK, push(h, body, nil).Code, body)
	}

	sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestPushHandler_VerifiesToken(t *testing.T) {
	h, sender := newTestPushHandler(t, &config.WorkerConfig{VerifyToken: true, Audience: "https://worker.example.com/push"})

	var gotAudience string
	h.validate = func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
		gotAudience = audience
		if token != "valid" {
			return nil, errors.New("bad signature")
		}

		return &idtoken.Payload{Issuer: "https://accounts.google.com", Claims: map[string]any{"email_verified": true}}, nil
	}

	assert.Equal(t, http.StatusUnauthorized, push(h, pushBody(confirmationPayload), nil).Code)
	assert.Equal(t, http.StatusUnauthorized,
		push(h, pushBody(confirmationPayload), http.Header{"Authorization": {"Bearer forged"}}).Code)

	sender.EXPECT().Send(mock.Anything, mock.Anything).Return(nil)

	rec := push(h, pushBody(confirmationPayload), http.Header{"Authorization": {"Bearer valid"}})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "https://worker.example.com/push", gotAudience)
}

func TestPushHandler_RejectsForeignIssuer(t *testing.T) {
	h, _ := newTestPushHandler(t, &config.WorkerConfig{VerifyToken: true})
	h.validate = func(context.Context, string, string) (*idtoken.Payload, error) {
		return &idtoken.Payload{Issuer: "https://evil.example.com"}, nil
	}

	rec := push(h, pushBody(confirmationPayload), http.Header{"Authorization": {"Bearer valid"}})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

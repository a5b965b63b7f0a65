package handler

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	domainerrors "contactbook/internal/domain/errors"
	"contactbook/internal/domain/entity"
	mockUsecase "contactbook/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestUserHandler(t *testing.T, user *entity.User) (*echo.Echo, *mockUsecase.MockProfileUsecase) {
	e := newTestEcho()
	profileUC := mockUsecase.NewMockProfileUsecase(t)
	h := NewUserHandler(UserHandlerParams{ProfileUC: profileUC, Logger: newDiscardLogger()})

	g := e.Group("/api/users", withUser(user))
	g.GET("/me", h.GetMe)
	g.PATCH("/avatar", h.UpdateAvatar)

	return e, profileUC
}

func avatarRequest(t *testing.T, contentType string, content []byte) *http.Request {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="file"; filename="avatar.png"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPatch, "/api/users/avatar", body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())

	return req
}

func TestUserHandler_GetMe(t *testing.T) {
	user := &entity.User{ID: uuid.New(), Username: "annlee", Email: "ann@example.com", Confirmed: true}
	e, _ := createTestUserHandler(t, user)

	rec := doJSON(e, http.MethodGet, "/api/users/me", "")

	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeData[UserResponse](t, rec)
	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, "annlee", got.Username)
	assert.NotContains(t, rec.Body.String(), "refresh")
}

func TestUserHandler_UpdateAvatar(t *testing.T) {
	user := &entity.User{ID: uuid.New(), Email: "ann@example.com"}
	e, profileUC := createTestUserHandler(t, user)
	avatarURL := "http://localhost:8000/static/avatars/a.png"

	profileUC.EXPECT().
		UpdateAvatar(mock.Anything, user.ID, "image/png", mock.Anything).
		Return(&entity.User{ID: user.ID, Email: user.Email, Avatar: &avatarURL}, nil)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, avatarRequest(t, "image/png", []byte("\x89PNG")))

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	got := decodeData[UserResponse](t, rec)
	require.NotNil(t, got.Avatar)
	assert.Equal(t, avatarURL, *got.Avatar)
}

func TestUserHandler_UpdateAvatar_Rejected(t *testing.T) {
	user := &entity.User{ID: uuid.New()}
	e, profileUC := createTestUserHandler(t, user)

	profileUC.EXPECT().
		UpdateAvatar(mock.Anything, user.ID, "text/plain", mock.Anything).
		Return(nil, domainerrors.ErrAvatarUnsupportedType)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, avatarRequest(t, "text/plain", []byte("hello")))
	assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)

	rec = doJSON(e, http.MethodPatch, "/api/users/avatar", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

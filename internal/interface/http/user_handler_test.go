package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ohsung-dev/community-api/internal/domain/entity"
	"github.com/ohsung-dev/community-api/internal/infrastructure/fake"
)

var testTime = time.Date(2023, 3, 11, 10, 31, 13, 0, time.UTC)

// envelope mirrors response.APIResponse with the payload left raw so
// each test can decode its own shape.
type envelope struct {
	Status  int             `json:"status"`
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   any             `json:"error"`
}

func newTestRouter(t *testing.T) (*fake.Container, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	c := fake.NewContainer(
		fake.Clock{T: testTime},
		fake.UUID{Value: "aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa"},
	)

	r := gin.New()
	api := r.Group("/api")
	api.POST("/users", c.UserHandler.Create)
	api.GET("/users/me", c.UserHandler.GetMyInfo)
	api.PUT("/users/me", c.UserHandler.UpdateMyInfo)
	api.GET("/users/:id", c.UserHandler.GetByID)
	api.GET("/users/:id/verify", c.UserHandler.VerifyEmail)
	api.POST("/posts", c.PostHandler.Create)
	api.GET("/posts/:id", c.PostHandler.GetByID)
	api.PUT("/posts/:id", c.PostHandler.Update)
	return c, r
}

func doJSON(r *gin.Engine, method, path string, body any, header map[string]string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func seedActiveUser(t *testing.T, c *fake.Container, email string) entity.User {
	t.Helper()
	user, err := c.Users.Save(context.Background(), entity.User{
		Email:             email,
		Nickname:          "seed",
		Address:           "Seoul",
		Status:            entity.UserStatusActive,
		CertificationCode: "code-seed",
	})
	require.NoError(t, err)
	return user
}

func TestUserSignup(t *testing.T) {
	c, r := newTestRouter(t)

	w := doJSON(r, http.MethodPost, "/api/users", gin.H{
		"email":    "new@x.com",
		"nickname": "new",
		"address":  "Incheon",
	}, nil)

	require.Equal(t, http.StatusCreated, w.Code)
	env := decodeEnvelope(t, w)
	assert.True(t, env.Success)

	var data map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "new@x.com", data["email"])
	assert.Equal(t, "PENDING", data["status"])
	assert.Nil(t, data["last_login_at"])
	// The address is private and never leaks through the public shape.
	assert.NotContains(t, data, "address")

	require.Len(t, c.MailBox.Sent, 1)
	assert.Equal(t, "new@x.com", c.MailBox.Sent[0].To)
}

func TestUserSignupInvalidPayload(t *testing.T) {
	_, r := newTestRouter(t)

	w := doJSON(r, http.MethodPost, "/api/users", gin.H{
		"email":    "not-an-email",
		"nickname": "new",
		"address":  "Incheon",
	}, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	env := decodeEnvelope(t, w)
	assert.False(t, env.Success)
}

func TestUserSignupMailFailure(t *testing.T) {
	c, r := newTestRouter(t)
	c.MailBox.Err = assert.AnError

	w := doJSON(r, http.MethodPost, "/api/users", gin.H{
		"email":    "new@x.com",
		"nickname": "new",
		"address":  "Incheon",
	}, nil)

	// The account is committed even though the mail never went out.
	assert.Equal(t, http.StatusBadGateway, w.Code)
	_, err := c.UserService.GetByIDAny(context.Background(), 1)
	assert.NoError(t, err)
}

func TestUserGetByID(t *testing.T) {
	c, r := newTestRouter(t)
	user := seedActiveUser(t, c, "active@x.com")

	t.Run("active user is public", func(t *testing.T) {
		w := doJSON(r, http.MethodGet, "/api/users/1", nil, nil)
		require.Equal(t, http.StatusOK, w.Code)

		env := decodeEnvelope(t, w)
		var data map[string]any
		require.NoError(t, json.Unmarshal(env.Data, &data))
		assert.Equal(t, float64(user.ID), data["id"])
		assert.Equal(t, "ACTIVE", data["status"])
		assert.NotContains(t, data, "address")
	})

	t.Run("pending user is hidden", func(t *testing.T) {
		doJSON(r, http.MethodPost, "/api/users", gin.H{
			"email":    "pending@x.com",
			"nickname": "pending",
			"address":  "Seoul",
		}, nil)

		w := doJSON(r, http.MethodGet, "/api/users/2", nil, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("bad id", func(t *testing.T) {
		w := doJSON(r, http.MethodGet, "/api/users/abc", nil, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestUserVerifyEmail(t *testing.T) {
	t.Run("valid code redirects to the front end", func(t *testing.T) {
		_, r := newTestRouter(t)
		doJSON(r, http.MethodPost, "/api/users", gin.H{
			"email":    "new@x.com",
			"nickname": "new",
			"address":  "Seoul",
		}, nil)

		w := doJSON(r, http.MethodGet, "/api/users/1/verify?certificationCode=aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa", nil, nil)
		require.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "http://localhost:3000", w.Header().Get("Location"))

		// Certified accounts become publicly visible.
		w = doJSON(r, http.MethodGet, "/api/users/1", nil, nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("wrong code is forbidden", func(t *testing.T) {
		_, r := newTestRouter(t)
		doJSON(r, http.MethodPost, "/api/users", gin.H{
			"email":    "new@x.com",
			"nickname": "new",
			"address":  "Seoul",
		}, nil)

		w := doJSON(r, http.MethodGet, "/api/users/1/verify?certificationCode=wrong", nil, nil)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("replaying a used link is forbidden", func(t *testing.T) {
		_, r := newTestRouter(t)
		doJSON(r, http.MethodPost, "/api/users", gin.H{
			"email":    "new@x.com",
			"nickname": "new",
			"address":  "Seoul",
		}, nil)

		link := "/api/users/1/verify?certificationCode=aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa"
		w := doJSON(r, http.MethodGet, link, nil, nil)
		require.Equal(t, http.StatusFound, w.Code)

		w = doJSON(r, http.MethodGet, link, nil, nil)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("missing code", func(t *testing.T) {
		_, r := newTestRouter(t)
		w := doJSON(r, http.MethodGet, "/api/users/1/verify", nil, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGetMyInfo(t *testing.T) {
	c, r := newTestRouter(t)
	seedActiveUser(t, c, "active@x.com")

	t.Run("returns the profile and stamps the login time", func(t *testing.T) {
		w := doJSON(r, http.MethodGet, "/api/users/me", nil, map[string]string{"EMAIL": "active@x.com"})
		require.Equal(t, http.StatusOK, w.Code)

		env := decodeEnvelope(t, w)
		var data map[string]any
		require.NoError(t, json.Unmarshal(env.Data, &data))
		assert.Equal(t, "Seoul", data["address"])
		assert.NotNil(t, data["last_login_at"])

		saved, err := c.UserService.GetByEmail(context.Background(), "active@x.com")
		require.NoError(t, err)
		assert.Equal(t, testTime, saved.LastLoginAt)
	})

	t.Run("missing header", func(t *testing.T) {
		w := doJSON(r, http.MethodGet, "/api/users/me", nil, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("unknown email", func(t *testing.T) {
		w := doJSON(r, http.MethodGet, "/api/users/me", nil, map[string]string{"EMAIL": "ghost@x.com"})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestUpdateMyInfo(t *testing.T) {
	c, r := newTestRouter(t)
	seedActiveUser(t, c, "active@x.com")

	w := doJSON(r, http.MethodPut, "/api/users/me", gin.H{
		"nickname": "renamed",
	}, map[string]string{"EMAIL": "active@x.com"})
	require.Equal(t, http.StatusOK, w.Code)

	env := decodeEnvelope(t, w)
	var data map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "renamed", data["nickname"])
	// Omitted fields keep their previous value.
	assert.Equal(t, "Seoul", data["address"])

	saved, err := c.UserService.GetByEmail(context.Background(), "active@x.com")
	require.NoError(t, err)
	assert.Equal(t, "renamed", saved.Nickname)
	assert.Equal(t, "Seoul", saved.Address)
}

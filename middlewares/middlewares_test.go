package middlewares

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v8"
	"gotest.tools/assert"
)

func TestValidateToken(t *testing.T) {
	redisDB, redisMock := redismock.NewClientMock()

	_, err := ValidateToken(context.Background(), "", redisDB)
	assert.ErrorContains(t, err, "invalid-token")

	_, err = ValidateToken(context.Background(), "token-1", redisDB)
	assert.ErrorContains(t, err, "invalid-token")

	redisMock.ExpectGet("token-1").SetErr(errors.New("err-redis"))
	_, err = ValidateToken(context.Background(), "Bearer token-1", redisDB)
	assert.ErrorContains(t, err, "err-redis")

	redisMock.ExpectGet("token-1").SetVal("")
	_, err = ValidateToken(context.Background(), "Bearer token-1", redisDB)
	assert.ErrorContains(t, err, "empty-payload")

	redisMock.ExpectGet("token-1").SetVal(`{"user":{"email":"test@gmail.com"}}`)
	payload, err := ValidateToken(context.Background(), "Bearer token-1", redisDB)
	assert.Equal(t, nil, err)
	assert.Equal(t, `{"user":{"email":"test@gmail.com"}}`, payload)
}

func TestAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	redisDB, redisMock := redismock.NewClientMock()

	router := gin.New()
	router.GET("/me", Auth(redisDB), func(c *gin.Context) {
		c.String(http.StatusOK, c.Request.Header.Get("payload"))
	})

	// no token (401)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/me", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, `{"error":"unauthorized"}`, w.Body.String())

	// header token (200)
	redisMock.ExpectGet("token-1").SetVal(`{"user":{"email":"a@gmail.com"}}`)
	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer token-1")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `{"user":{"email":"a@gmail.com"}}`, w.Body.String())

	// cookie wins over header (200)
	redisMock.ExpectGet("token-2").SetVal(`{"user":{"email":"b@gmail.com"}}`)
	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer token-1")
	req.AddCookie(&http.Cookie{Name: "token", Value: "Bearer token-2"})
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `{"user":{"email":"b@gmail.com"}}`, w.Body.String())
}

package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/betselot-m/kindcart/internal/handler/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubVerifier struct{}

func (stubVerifier) VerifyAccessToken(token string) (string, error) {
	if token == "good" {
		return "u1", nil
	}
	return "", errors.New("bad token")
}

func echoUserID(c *gin.Context) {
	userID, _ := c.Get("userID")
	id, _ := userID.(string)
	c.String(http.StatusOK, "user=%s", id)
}

func request(r *gin.Engine, header string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/ping", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ping", middleware.AuthMiddleWare(stubVerifier{}), echoUserID)

	w := request(r, "Bearer good")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user=u1", w.Body.String())

	for _, header := range []string{"", "Bearer bad", "good", "Basic good"} {
		w := request(r, header)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	}
}

func TestOptionalAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ping", middleware.OptionalAuthMiddleWare(stubVerifier{}), echoUserID)

	w := request(r, "Bearer good")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user=u1", w.Body.String())

	// Anonymous and invalid tokens both pass through without an identity.
	for _, header := range []string{"", "Bearer bad"} {
		w := request(r, header)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "user=", w.Body.String())
	}
}

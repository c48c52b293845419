package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MayankMaurya27/Ecommerce/config"
	"github.com/MayankMaurya27/Ecommerce/models"
	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func newRateLimitedRouter(t *testing.T, maxRequests int) *gin.Engine {
	t.Helper()
	mr := miniredis.RunT(t)
	config.RedisClient = redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { config.RedisClient.Close() })

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/ping", RateLimiter(maxRequests, time.Minute), func(c *gin.Context) {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "pong", nil))
	})
	return router
}

func TestRateLimiterAllowsWithinWindow(t *testing.T) {
	router := newRateLimitedRouter(t, 3)

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		router.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("request %d: got status %d, want 200", i+1, w.Code)
		}
	}
}

func TestRateLimiterBlocksOverLimit(t *testing.T) {
	router := newRateLimitedRouter(t, 2)

	var last *httptest.ResponseRecorder
	for i := 0; i < 3; i++ {
		last = httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		router.ServeHTTP(last, req)
	}

	if last.Code != http.StatusTooManyRequests {
		t.Fatalf("third request: got status %d, want 429", last.Code)
	}
	if body := last.Body.String(); !strings.Contains(body, "Too many requests") {
		t.Fatalf("blocked response missing message, body: %s", body)
	}
}

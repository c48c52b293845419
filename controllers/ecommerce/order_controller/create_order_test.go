package order_controller

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func newCheckoutRouter(userID, userEmail string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/store/orders", func(c *gin.Context) {
		if userID != "" {
			c.Set("userID", userID)
		}
		if userEmail != "" {
			c.Set("userEmail", userEmail)
		}
		c.Next()
	}, CreateOrder)
	return router
}

func TestCreateOrderRejectsUnauthenticated(t *testing.T) {
	router := newCheckoutRouter("", "")

	body := `{"email":"someone@example.com","cartItems":[{"title":"x","price":"10","category":"c"}]}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/store/orders", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("got status %d, want 401", w.Code)
	}
}

func TestCreateOrderIgnoresPayloadEmailWithoutClaim(t *testing.T) {
	// A forged body email must not stand in for the claims email: with no
	// email claim the request dies before any order is written.
	router := newCheckoutRouter("user-1", "")

	body := `{"email":"forged@example.com","cartItems":[{"title":"x","price":"10","category":"c"}]}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/store/orders", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("got status %d, want 401", w.Code)
	}
}

func TestCreateOrderRejectsEmptyCart(t *testing.T) {
	router := newCheckoutRouter("user-1", "shopper@example.com")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/store/orders", strings.NewReader(`{"cartItems":[]}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("got status %d, want 400", w.Code)
	}
}

package i18n

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestResolveLocaleFromQuery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/posts?locale=th-TH", nil)

	if got := ResolveLocale(c); got != "th-TH" {
		t.Fatalf("locale want th-TH got %s", got)
	}
}

func TestResolveLocaleFromAcceptLanguage(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/posts", nil)
	c.Request.Header.Set("Accept-Language", "th;q=0.9, en;q=0.8")

	if got := ResolveLocale(c); got != "th-TH" {
		t.Fatalf("locale want th-TH got %s", got)
	}
}

func TestTFallsBackToDefaultLocale(t *testing.T) {
	if got := T("th-TH", "error.unauthorized"); got == "error.unauthorized" {
		t.Fatalf("expected translated message, got key")
	}
	// th 目录缺失的 key 回退英文
	if got := T("th-TH", "error.notification_fetch_failed"); got != T("en-US", "error.notification_fetch_failed") {
		t.Fatalf("expected en-US fallback, got %s", got)
	}
	if got := T("en-US", "error.unknown_key"); got != "error.unknown_key" {
		t.Fatalf("expected key passthrough, got %s", got)
	}
}

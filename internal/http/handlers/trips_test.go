package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func queryContext(t *testing.T, target string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, target, nil)
	return c
}

func TestLegacyQueryAcceptsOldSpelling(t *testing.T) {
	c := queryContext(t, "/api/trips?lorryId=TRK-7")
	if got := legacyQuery(c, "lorryId"); got != "TRK-7" {
		t.Fatalf("legacyQuery = %q, want TRK-7", got)
	}
}

func TestLegacyQueryCanonicalWins(t *testing.T) {
	c := queryContext(t, "/api/trips?truckId=TRK-9&lorryId=TRK-7")
	if got := legacyQuery(c, "lorryId"); got != "TRK-9" {
		t.Fatalf("legacyQuery = %q, want canonical TRK-9", got)
	}
}

func TestDateQueryRejectsBadFormat(t *testing.T) {
	c := queryContext(t, "/api/trips?startDate=03/01/2026")
	if _, ok := dateQuery(c, "startDate"); ok {
		t.Fatal("expected malformed date to be rejected")
	}
}

func TestDateQueryNormalizes(t *testing.T) {
	c := queryContext(t, "/api/trips?startDate=2026-03-01")
	got, ok := dateQuery(c, "startDate")
	if !ok || got != "2026-03-01" {
		t.Fatalf("dateQuery = %q, %v", got, ok)
	}
}

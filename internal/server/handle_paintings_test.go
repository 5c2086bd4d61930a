package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestPaintingsDefaultCount(t *testing.T) {
	r := testRouter(t, &testCatalog{ids: manyIDs(60)})

	req := httptest.NewRequest(http.MethodGet, "/api/paintings", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp PaintingsResponse
	json.NewDecoder(w.Body).Decode(&resp)
	if len(resp.Paintings) != 5 {
		t.Fatalf("got %d paintings, want 5", len(resp.Paintings))
	}
}

func TestPaintingsCountClamped(t *testing.T) {
	r := testRouter(t, &testCatalog{ids: manyIDs(120)})

	req := httptest.NewRequest(http.MethodGet, "/api/paintings?count=100", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp PaintingsResponse
	json.NewDecoder(w.Body).Decode(&resp)
	if len(resp.Paintings) != maxPaintingCount {
		t.Fatalf("got %d paintings, want %d", len(resp.Paintings), maxPaintingCount)
	}
}

func TestPaintingsBadCount(t *testing.T) {
	r := testRouter(t, &testCatalog{ids: manyIDs(60)})

	req := httptest.NewRequest(http.MethodGet, "/api/paintings?count=five", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestPaintingsFallbackSource(t *testing.T) {
	r := testRouter(t, &testCatalog{ids: manyIDs(60)})

	req := httptest.NewRequest(http.MethodGet, "/api/paintings?source=fallback&count=3", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp PaintingsResponse
	json.NewDecoder(w.Body).Decode(&resp)
	if len(resp.Paintings) != 3 {
		t.Fatalf("got %d paintings, want 3", len(resp.Paintings))
	}
	for _, p := range resp.Paintings {
		if p.Source != "fallback" {
			t.Fatalf("painting %s source = %q, want fallback", p.ID, p.Source)
		}
	}
}

package ocr

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/scouter-app/receipt-pipeline/internal/common"
)

func testClient(t *testing.T, handler http.HandlerFunc) (*VisionClient, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c := NewVisionClient(Config{BaseURL: srv.URL, APIKey: "test-key", Timeout: time.Second},
		slog.New(slog.NewTextHandler(io.Discard, nil)))
	return c, srv
}

func annotateBody(text string) []byte {
	resp := map[string]any{
		"responses": []map[string]any{
			{"textAnnotations": []map[string]any{{"description": text}}},
		},
	}
	b, _ := json.Marshal(resp)
	return b
}

func TestExtractTextOK(t *testing.T) {
	var gotPath string
	c, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path + "?" + r.URL.RawQuery
		var req annotateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if len(req.Requests) != 1 || req.Requests[0].Features[0].Type != "TEXT_DETECTION" {
			t.Errorf("unexpected request shape: %+v", req)
		}
		_, _ = w.Write(annotateBody("Corner Deli\nTOTAL 42.50"))
	})

	res, err := c.ExtractText(context.Background(), []byte("fake image"))
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if res.Text != "Corner Deli\nTOTAL 42.50" {
		t.Errorf("unexpected text: %q", res.Text)
	}
	if res.WordCount != 4 {
		t.Errorf("word count = %d, want 4", res.WordCount)
	}
	if gotPath != "/images:annotate?key=test-key" {
		t.Errorf("unexpected request path: %s", gotPath)
	}
}

func TestExtractTextServerErrorIsTransient(t *testing.T) {
	c, _ := testClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	_, err := c.ExtractText(context.Background(), []byte("img"))
	if err == nil {
		t.Fatal("expected an error")
	}
	if !common.IsTransient(err) {
		t.Errorf("5xx should be transient, got %v", err)
	}
}

func TestExtractTextClientErrorIsPermanent(t *testing.T) {
	c, _ := testClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	})

	_, err := c.ExtractText(context.Background(), []byte("img"))
	if err == nil {
		t.Fatal("expected an error")
	}
	if common.IsTransient(err) {
		t.Errorf("4xx should be permanent, got %v", err)
	}
}

func TestExtractTextNoTextFound(t *testing.T) {
	c, _ := testClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"responses":[{}]}`))
	})

	_, err := c.ExtractText(context.Background(), []byte("img"))
	if err == nil {
		t.Fatal("expected an error for an empty annotation")
	}
	if common.IsTransient(err) {
		t.Errorf("empty result should be permanent, got %v", err)
	}
}

func TestExtractTextPerImageError(t *testing.T) {
	c, _ := testClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"responses":[{"error":{"code":3,"message":"bad image"}}]}`))
	})

	_, err := c.ExtractText(context.Background(), []byte("img"))
	if err == nil {
		t.Fatal("expected an error")
	}
	if common.IsTransient(err) {
		t.Errorf("per-image error should be permanent, got %v", err)
	}
}

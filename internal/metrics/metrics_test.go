package metrics

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/brightofhouse/site/internal/storage"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func resetLatency() {
	latencyMu.Lock()
	latencyWindow = nil
	latencyMu.Unlock()
}

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"/api/gallery/550e8400-e29b-41d4-a716-446655440000", "/api/gallery/:id"},
		{"/api/before-after/550E8400-E29B-41D4-A716-446655440000", "/api/before-after/:id"},
		{"/api/lp/slug/aircon-campaign", "/api/lp/slug/:slug"},
		{"/lp/spring", "/lp/:slug"},
		{"/api/lp", "/api/lp"},
		{"/api/home", "/api/home"},
	}
	for _, tt := range tests {
		if got := NormalizePath(tt.in); got != tt.want {
			t.Errorf("NormalizePath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestGetLatencyP95(t *testing.T) {
	resetLatency()
	defer resetLatency()

	if p95 := GetLatencyP95(); p95 != 0 {
		t.Errorf("GetLatencyP95() with empty window = %d, want 0", p95)
	}

	recordLatency(50)
	if p95 := GetLatencyP95(); p95 != 50 {
		t.Errorf("GetLatencyP95() with single value = %d, want 50", p95)
	}

	resetLatency()
	for i := int64(1); i <= 100; i++ {
		recordLatency(i)
	}
	if p95 := GetLatencyP95(); p95 < 95 || p95 > 96 {
		t.Errorf("GetLatencyP95() = %d, want ~95", p95)
	}
}

func TestRecordLatencyEvictsOldest(t *testing.T) {
	resetLatency()
	defer resetLatency()

	for i := 0; i < maxLatencyRecords+100; i++ {
		recordLatency(int64(i))
	}

	latencyMu.Lock()
	count, first := len(latencyWindow), latencyWindow[0]
	latencyMu.Unlock()

	if count != maxLatencyRecords {
		t.Errorf("window has %d items, want %d", count, maxLatencyRecords)
	}
	if first != 100 {
		t.Errorf("oldest item = %d, want 100", first)
	}
}

func TestHTTPMetricsMiddleware(t *testing.T) {
	resetLatency()
	defer resetLatency()

	h := HTTPMetricsMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	path := "/api/gallery/550e8400-e29b-41d4-a716-446655440000"
	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("DELETE", "/api/gallery/:id", "418"))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, path, nil))

	if rec.Code != http.StatusTeapot {
		t.Errorf("status = %d", rec.Code)
	}
	after := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("DELETE", "/api/gallery/:id", "418"))
	if after != before+1 {
		t.Errorf("counter went %v -> %v", before, after)
	}

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))
	latencyMu.Lock()
	n := len(latencyWindow)
	latencyMu.Unlock()
	if n != 1 {
		t.Errorf("health probe should not be recorded, window = %d", n)
	}
}

func TestInstrumentedStorage(t *testing.T) {
	mem := storage.NewMemoryStorage()
	s := NewInstrumentedStorage(mem)
	ctx := context.Background()

	okBefore := testutil.ToFloat64(StorageOperationsTotal.WithLabelValues("upload", "success"))
	errBefore := testutil.ToFloat64(StorageOperationsTotal.WithLabelValues("upload", "error"))

	if err := s.Upload(ctx, "Gallery/a.webp", strings.NewReader("abc"), "image/webp", 3); err != nil {
		t.Fatalf("Upload() error = %v", err)
	}
	mem.FailUploads(errors.New("unreachable"))
	if err := s.Upload(ctx, "Gallery/b.webp", strings.NewReader("abc"), "image/webp", 3); err == nil {
		t.Fatal("Upload() should fail")
	}

	if got := testutil.ToFloat64(StorageOperationsTotal.WithLabelValues("upload", "success")); got != okBefore+1 {
		t.Errorf("success count = %v, want %v", got, okBefore+1)
	}
	if got := testutil.ToFloat64(StorageOperationsTotal.WithLabelValues("upload", "error")); got != errBefore+1 {
		t.Errorf("error count = %v, want %v", got, errBefore+1)
	}

	r, err := s.Download(ctx, "Gallery/a.webp")
	if err != nil {
		t.Fatalf("Download() error = %v", err)
	}
	body, _ := io.ReadAll(r)
	_ = r.Close()
	if string(body) != "abc" {
		t.Errorf("Download() = %q", body)
	}

	list, err := s.List(ctx, "Gallery/")
	if err != nil || len(list) != 1 {
		t.Errorf("List() = %v, %v", list, err)
	}
}

func TestRecordHelpers(t *testing.T) {
	before := testutil.ToFloat64(MediaUploadsTotal.WithLabelValues("gallery", "error"))
	RecordMediaUpload("gallery", 0, errors.New("boom"))
	if got := testutil.ToFloat64(MediaUploadsTotal.WithLabelValues("gallery", "error")); got != before+1 {
		t.Errorf("uploads error = %v, want %v", got, before+1)
	}

	RecordTransform(PipelineVideo, nil, 12.5)
	if n := testutil.CollectAndCount(MediaTransformDuration); n == 0 {
		t.Error("transform histogram has no series")
	}
}

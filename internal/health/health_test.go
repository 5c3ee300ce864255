package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/brightofhouse/site/internal/storage"
)

type pinger struct{ err error }

func (p pinger) Ping(context.Context) error { return p.err }

func TestCheckAll(t *testing.T) {
	down := errors.New("connection refused")

	tests := []struct {
		name    string
		checker *Checker
		want    Status
	}{
		{
			name:    "all healthy",
			checker: NewChecker("test").WithDatabase(pinger{}).WithStorage(storage.NewMemoryStorage()),
			want:    StatusHealthy,
		},
		{
			name:    "database down",
			checker: NewChecker("test").WithDatabase(pinger{down}).WithStorage(storage.NewMemoryStorage()),
			want:    StatusUnhealthy,
		},
		{
			name: "missing ffmpeg degrades",
			checker: NewChecker("test").WithDatabase(pinger{}).
				WithBinary("ffmpeg", func() error { return errors.New("not found") }),
			want: StatusDegraded,
		},
		{
			name: "critical wins over optional",
			checker: NewChecker("test").
				WithBinary("cwebp", func() error { return down }).
				WithDatabase(pinger{down}),
			want: StatusUnhealthy,
		},
		{
			name:    "nothing registered",
			checker: NewChecker("test").WithDatabase(nil).WithRedis(nil),
			want:    StatusHealthy,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := tt.checker.CheckAll(context.Background())
			if resp.Status != tt.want {
				t.Errorf("Status = %s, want %s (%+v)", resp.Status, tt.want, resp.Components)
			}
		})
	}
}

func TestCheckAll_SortedAndReported(t *testing.T) {
	resp := NewChecker("v1").
		WithStorage(storage.NewMemoryStorage()).
		WithDatabase(pinger{errors.New("timeout")}).
		CheckAll(context.Background())

	if len(resp.Components) != 2 || resp.Components[0].Name != "database" || resp.Components[1].Name != "storage" {
		t.Fatalf("Components = %+v", resp.Components)
	}
	if resp.Components[0].Error != "timeout" {
		t.Errorf("Error = %q", resp.Components[0].Error)
	}
	if resp.Version != "v1" {
		t.Errorf("Version = %q", resp.Version)
	}
}

func TestReadinessHandler(t *testing.T) {
	tests := []struct {
		name       string
		checker    *Checker
		wantStatus int
	}{
		{"ready", NewChecker("").WithDatabase(pinger{}), http.StatusOK},
		{"degraded is still ready", NewChecker("").Add("redis", false, func(context.Context) error { return errors.New("x") }), http.StatusOK},
		{"not ready", NewChecker("").WithDatabase(pinger{errors.New("x")}), http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			ReadinessHandler(tt.checker)(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			var body HealthResponse
			if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
				t.Fatalf("decode: %v", err)
			}
		})
	}
}

func TestLivenessHandler(t *testing.T) {
	rec := httptest.NewRecorder()
	LivenessHandler()(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d", rec.Code)
	}
}

package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/skvare/redis-health/internal/domain"
)

func TestStatusPageHandler_ServeHTTP(t *testing.T) {
	tests := []struct {
		name            string
		method          string
		target          string
		monitor         *mockMonitor
		wantStatusCode  int
		wantBodyPart    string
		wantRunCalls    int32
		wantContentType string
	}{
		{
			name:            "serves cached report",
			method:          http.MethodGet,
			target:          "/status",
			monitor:         &mockMonitor{latest: healthyReport()},
			wantStatusCode:  http.StatusOK,
			wantBodyPart:    "Redis health: ok",
			wantRunCalls:    0,
			wantContentType: "text/html; charset=utf-8",
		},
		{
			name:           "refresh forces a fresh run",
			method:         http.MethodGet,
			target:         "/status?refresh=1",
			monitor:        &mockMonitor{latest: healthyReport(), runReport: degradedReport()},
			wantStatusCode: http.StatusOK,
			wantBodyPart:   "Redis health: critical",
			wantRunCalls:   1,
		},
		{
			name:           "cold cache runs synchronously",
			method:         http.MethodGet,
			target:         "/status",
			monitor:        &mockMonitor{latestErr: domain.ErrNoReport, runReport: healthyReport()},
			wantStatusCode: http.StatusOK,
			wantBodyPart:   "Redis health: ok",
			wantRunCalls:   1,
		},
		{
			name:           "collection failure",
			method:         http.MethodGet,
			target:         "/status",
			monitor:        &mockMonitor{latestErr: domain.ErrNoReport, runErr: errors.New("context canceled")},
			wantStatusCode: http.StatusInternalServerError,
		},
		{
			name:           "method not allowed",
			method:         http.MethodPost,
			target:         "/status",
			monitor:        &mockMonitor{latest: healthyReport()},
			wantStatusCode: http.StatusMethodNotAllowed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewStatusPageHandler(tt.monitor, zap.NewNop())

			req := httptest.NewRequest(tt.method, tt.target, nil)
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Fatalf("expected status %d, got %d (body: %s)", tt.wantStatusCode, rec.Code, rec.Body.String())
			}
			if tt.wantBodyPart != "" && !strings.Contains(rec.Body.String(), tt.wantBodyPart) {
				t.Fatalf("body missing %q:\n%s", tt.wantBodyPart, rec.Body.String())
			}
			if got := tt.monitor.runCalls.Load(); got != tt.wantRunCalls {
				t.Fatalf("monitor.Run called %d times, want %d", got, tt.wantRunCalls)
			}
			if tt.wantContentType != "" && rec.Header().Get("Content-Type") != tt.wantContentType {
				t.Fatalf("content type = %q", rec.Header().Get("Content-Type"))
			}
		})
	}
}

func TestReportHandler_ServeHTTP(t *testing.T) {
	monitor := &mockMonitor{latest: degradedReport()}
	handler := NewReportHandler(monitor, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/status.json", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp ReportResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if resp.Status != "critical" {
		t.Fatalf("status = %q, want critical", resp.Status)
	}
	if len(resp.Checks) != 2 {
		t.Fatalf("got %d checks, want 2", len(resp.Checks))
	}
	if resp.Checks[1].Name != "memory" || resp.Checks[1].Severity != "critical" {
		t.Fatalf("unexpected check: %+v", resp.Checks[1])
	}
	if !strings.Contains(resp.Summary, "memory") {
		t.Fatalf("summary %q does not name the failing check", resp.Summary)
	}
}

func TestSummaryHandler_ServeHTTP(t *testing.T) {
	monitor := &mockMonitor{latest: healthyReport()}
	handler := NewSummaryHandler(monitor, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/status/summary", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := rec.Body.String(); got != "redis health ok: 2 checks passed\n" {
		t.Fatalf("body = %q", got)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/plain; charset=utf-8" {
		t.Fatalf("content type = %q", ct)
	}
}

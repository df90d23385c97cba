package app

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"cv-match/internal/delivery/http/middleware"
)

func TestAccessLogRecordsNormalizedStatus(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)

	f := fiber.New(fiber.Config{})
	registerGlobalMiddleware(f, &Container{Logger: zap.New(core)})
	f.Get("/boom", func(c fiber.Ctx) error {
		return middleware.NewAppError(fiber.StatusBadRequest, "bad input", nil, nil)
	})

	resp, err := f.Test(httptest.NewRequest("GET", "/boom", nil))
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}

	// The access log wraps the error normalizer, so it must see the status
	// the client got, not the pre-normalization default.
	var found bool
	for _, entry := range logs.All() {
		if entry.Message != "http access" {
			continue
		}
		found = true
		if got := entry.ContextMap()["status"]; got != int64(fiber.StatusBadRequest) {
			t.Fatalf("access log recorded status %v, want %d", got, fiber.StatusBadRequest)
		}
	}
	if !found {
		t.Fatalf("expected an access log entry")
	}
}

func TestListenAddr(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"8080", ":8080", false},
		{":8080", ":8080", false},
		{" 9000 ", ":9000", false},
		{"", "", true},
		{"   ", "", true},
	}

	for _, tt := range tests {
		got, err := ListenAddr(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Fatalf("ListenAddr(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ListenAddr(%q): unexpected err: %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("ListenAddr(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

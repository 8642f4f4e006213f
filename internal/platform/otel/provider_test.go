package otel_test

import (
	"context"
	"testing"

	"github.com/louisbranch/cortex-dice/internal/platform/otel"
)

func TestSetup_NoopWhenEndpointEmpty(t *testing.T) {
	t.Setenv(otel.EndpointEnv, "")
	t.Setenv(otel.EnabledEnv, "")

	shutdown, err := otel.Setup(context.Background(), "roll")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestSetup_NoopWhenExplicitlyDisabled(t *testing.T) {
	t.Setenv(otel.EndpointEnv, "http://localhost:4318")
	t.Setenv(otel.EnabledEnv, "FALSE")

	shutdown, err := otel.Setup(context.Background(), "roll")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestSetup_CreatesProviderWhenEndpointSet(t *testing.T) {
	// Non-routable address: nothing is exported before shutdown.
	t.Setenv(otel.EndpointEnv, "http://192.0.2.1:4318")
	t.Setenv(otel.EnabledEnv, "")

	shutdown, err := otel.Setup(context.Background(), "mcp")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestSetup_NoopShutdownIgnoresCancelledContext(t *testing.T) {
	t.Setenv(otel.EndpointEnv, "")
	t.Setenv(otel.EnabledEnv, "")

	shutdown, err := otel.Setup(context.Background(), "roll")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := shutdown(ctx); err != nil {
		t.Fatalf("noop shutdown should not error: %v", err)
	}
}

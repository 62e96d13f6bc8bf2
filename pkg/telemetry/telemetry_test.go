package telemetry

import (
	"context"
	"testing"
	"time"
)

func TestConfig_Validate(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Expected default config to be valid, got: %v", err)
	}

	cfg.ServiceName = ""
	if err := cfg.Validate(); err == nil {
		t.Error("Expected error for empty service name, got none")
	}

	cfg = DefaultConfig()
	cfg.Logging.Format = "xml"
	if err := cfg.Validate(); err == nil {
		t.Error("Expected error for unsupported log format, got none")
	}

	cfg = DefaultConfig()
	cfg.Metrics.Enabled = true
	cfg.Metrics.Namespace = ""
	if err := cfg.Validate(); err == nil {
		t.Error("Expected error for enabled metrics without namespace, got none")
	}
}

func TestLogger_FromContext_Fallback(t *testing.T) {
	logger := FromContext(context.Background())
	if logger == nil {
		t.Fatal("Expected a fallback logger, got nil")
	}

	// The fallback logger must be safe to use.
	logger.Z().Info().Msg("discarded")
}

func TestLogger_WithContext_RoundTrip(t *testing.T) {
	logger := NopLogger().NewComponentLogger("test")
	ctx := logger.WithContext(context.Background())

	if FromContext(ctx) != logger {
		t.Error("Expected the logger stored in the context to be returned")
	}
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics

	// None of these may panic.
	m.ObserveSelect("capability", time.Millisecond)
	m.IncEffectiveConflict()
	m.IncDeferredConflict()
	m.AddEliminatedCandidates(3)
	m.IncContradiction()
	m.IncChainRound()

	if m.Handler() != nil {
		t.Error("Expected nil handler for nil metrics")
	}
}

func TestMetrics_DisabledIsNoOp(t *testing.T) {
	m := NewMetrics(MetricsConfig{Enabled: false})

	m.ObserveSelect("capability", time.Millisecond)
	m.IncContradiction()

	if m.Handler() != nil {
		t.Error("Expected nil handler for disabled metrics")
	}
}

func TestMetrics_EnabledCollects(t *testing.T) {
	m := NewMetrics(MetricsConfig{Enabled: true, Namespace: "modweaver"})

	m.ObserveSelect("capability", time.Millisecond)
	m.IncEffectiveConflict()
	m.AddEliminatedCandidates(2)
	m.IncChainRound()

	families, err := m.Gatherer().Gather()
	if err != nil {
		t.Fatalf("Expected no error from gather, got: %v", err)
	}
	if len(families) == 0 {
		t.Fatal("Expected metric families, got none")
	}

	names := make(map[string]bool)
	for _, family := range families {
		names[family.GetName()] = true
	}
	for _, want := range []string{
		"modweaver_resolver_selects_total",
		"modweaver_capability_conflicts_effective_total",
		"modweaver_candidates_eliminated_total",
		"modweaver_chain_rounds_total",
	} {
		if !names[want] {
			t.Errorf("Expected metric %s to be registered", want)
		}
	}

	if m.Handler() == nil {
		t.Error("Expected a handler for enabled metrics")
	}
}

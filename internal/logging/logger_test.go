// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package logging

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	if cfg.Level != "info" || cfg.Format != "json" || cfg.Caller || cfg.Output == nil {
		t.Errorf("DefaultConfig() = %+v", cfg)
	}
}

// Init mutates global state, so these tests do not run in parallel.
func TestInit(t *testing.T) {
	var buf bytes.Buffer
	defer Init(DefaultConfig())

	Init(Config{Level: "debug", Format: "json", Output: &buf})

	l := WithComponent("dataset")
	l.Info().Str("source", "files").Msg("dataset loaded")

	output := buf.String()
	for _, want := range []string{
		`"message":"dataset loaded"`,
		`"level":"info"`,
		`"source":"files"`,
		`"component":"dataset"`,
		`"time":`,
	} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %s: %s", want, output)
		}
	}
}

func TestInit_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	defer Init(DefaultConfig())

	Init(Config{Level: "warn", Output: &buf})

	Info().Msg("hidden")
	Warn().Msg("shown")

	output := buf.String()
	if strings.Contains(output, "hidden") {
		t.Errorf("info message should be filtered at warn level: %s", output)
	}
	if !strings.Contains(output, "shown") {
		t.Errorf("warn message missing: %s", output)
	}
}

func TestInit_UnknownLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	defer Init(DefaultConfig())

	Init(Config{Level: "loud", Output: &buf})

	if zerolog.GlobalLevel() != zerolog.InfoLevel {
		t.Errorf("GlobalLevel() = %v, want info", zerolog.GlobalLevel())
	}
	Error().Msg("still logged")
	if !strings.Contains(buf.String(), "still logged") {
		t.Errorf("error message missing: %s", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input  string
		want   zerolog.Level
		wantOK bool
	}{
		{"trace", zerolog.TraceLevel, true},
		{"debug", zerolog.DebugLevel, true},
		{"info", zerolog.InfoLevel, true},
		{"warn", zerolog.WarnLevel, true},
		{"warning", zerolog.WarnLevel, true},
		{"error", zerolog.ErrorLevel, true},
		{"disabled", zerolog.Disabled, true},
		{"DEBUG", zerolog.DebugLevel, true},
		{" info ", zerolog.InfoLevel, true},
		{"fatal", zerolog.NoLevel, false},
		{"invalid", zerolog.NoLevel, false},
		{"", zerolog.NoLevel, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			got, ok := parseLevel(tt.input)
			if ok != tt.wantOK || (ok && got != tt.want) {
				t.Errorf("parseLevel(%q) = %v, %v, want %v, %v", tt.input, got, ok, tt.want, tt.wantOK)
			}
			if ValidLevel(tt.input) != tt.wantOK {
				t.Errorf("ValidLevel(%q) = %v, want %v", tt.input, !tt.wantOK, tt.wantOK)
			}
		})
	}
}

func TestContextWithRequestID(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	ctx := ContextWithLogger(context.Background(), zerolog.New(&buf))
	ctx = ContextWithRequestID(ctx, "req-42")

	if got := RequestIDFromContext(ctx); got != "req-42" {
		t.Errorf("RequestIDFromContext() = %q, want req-42", got)
	}

	Ctx(ctx).Info().Msg("handled")
	if !strings.Contains(buf.String(), `"request_id":"req-42"`) {
		t.Errorf("expected request_id in output, got: %s", buf.String())
	}
}

func TestContextDefaults(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	if id := RequestIDFromContext(ctx); id != "" {
		t.Errorf("RequestIDFromContext() = %q, want empty", id)
	}
	if Ctx(ctx) == nil {
		t.Error("Ctx() outside a request should fall back to the global logger")
	}

	id := NewRequestID()
	if len(id) != 36 || id == NewRequestID() {
		t.Errorf("NewRequestID() = %q, want distinct UUIDs", id)
	}
}

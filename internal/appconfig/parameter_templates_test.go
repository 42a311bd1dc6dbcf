// internal/appconfig/parameter_templates_test.go
package appconfig

import (
	"strings"
	"testing"
)

func TestParamsForProfile(t *testing.T) {
	tests := []struct {
		name     string
		wantTemp *float64
		wantErr  bool
	}{
		{name: "", wantTemp: nil},
		{name: "none", wantTemp: nil},
		{name: "precise", wantTemp: floatPtr(0.2)},
		{name: " Accuracy ", wantTemp: floatPtr(0.2)},
		{name: "business", wantTemp: floatPtr(0.7)},
		{name: "writer", wantTemp: floatPtr(1.1)},
		{name: "loud", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			params, err := ParamsForProfile(tc.name)
			if tc.wantErr {
				if err == nil || !strings.Contains(err.Error(), "unknown parameterTemplate") {
					t.Fatalf("expected unknown template error, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			switch {
			case tc.wantTemp == nil && params.Temperature != nil:
				t.Fatalf("expected no temperature, got %v", *params.Temperature)
			case tc.wantTemp != nil && (params.Temperature == nil || *params.Temperature != *tc.wantTemp):
				t.Fatalf("expected temperature %v, got %v", *tc.wantTemp, params.Temperature)
			}
		})
	}
}

// TestApplyParameterTemplate verifies that explicit parameters win over the preset.
func TestApplyParameterTemplate(t *testing.T) {
	cfg := Defaults()
	cfg.ParameterTemplate = "precise"
	cfg.Parameters.Temperature = floatPtr(0.5)

	if err := ApplyParameterTemplate(&cfg); err != nil {
		t.Fatalf("ApplyParameterTemplate error: %v", err)
	}
	if *cfg.Parameters.Temperature != 0.5 {
		t.Fatalf("explicit temperature overridden: %v", *cfg.Parameters.Temperature)
	}
	if cfg.Parameters.Seed == nil || *cfg.Parameters.Seed != 42 {
		t.Fatalf("expected template seed, got %v", cfg.Parameters.Seed)
	}
	if err := Validate(cfg); err != nil {
		t.Fatalf("templated config should validate: %v", err)
	}

	plain := Defaults()
	if err := ApplyParameterTemplate(&plain); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if plain.Parameters.Options() != nil {
		t.Fatalf("no template must leave options empty")
	}

	bad := Defaults()
	bad.ParameterTemplate = "nope"
	if err := ApplyParameterTemplate(&bad); err == nil {
		t.Fatal("expected error for unknown template")
	}
}

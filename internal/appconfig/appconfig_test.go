// internal/appconfig/appconfig_test.go
package appconfig

import (
	"bytes"
	"strings"
	"testing"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

// TestDefaults verifies the fallbacks applied when the configuration is empty,
// and that the accessors normalize user supplied values.
func TestDefaults(t *testing.T) {
	var empty Config
	if got := empty.HostURL(); got != DefaultHost {
		t.Fatalf("expected default host, got %q", got)
	}
	if got := empty.ModelName(); got != DefaultModel {
		t.Fatalf("expected default model, got %q", got)
	}
	if got := empty.LogFilePath(); got != "localingo.log" {
		t.Fatalf("expected default log file, got %q", got)
	}

	cfg := Config{Host: " http://gpu-box:11434/ ", Model: " llama3.2 ", LogFile: "logs/app.log"}
	if got := cfg.HostURL(); got != "http://gpu-box:11434" {
		t.Fatalf("expected trimmed host, got %q", got)
	}
	if got := cfg.ModelName(); got != "llama3.2" {
		t.Fatalf("expected trimmed model, got %q", got)
	}
	if got := cfg.LogFilePath(); got != "logs/app.log" {
		t.Fatalf("expected configured log file, got %q", got)
	}

	d := Defaults()
	if d.Host != DefaultHost || d.Model != DefaultModel || d.LogFile == "" {
		t.Fatalf("unexpected defaults: %+v", d)
	}
}

func TestParametersOptions(t *testing.T) {
	if opts := (Parameters{}).Options(); opts != nil {
		t.Fatalf("expected nil options when nothing is set, got %v", opts)
	}

	params := Parameters{Temperature: floatPtr(0.2), TopK: intPtr(40), Seed: intPtr(7)}
	opts := params.Options()
	if len(opts) != 3 {
		t.Fatalf("expected 3 options, got %v", opts)
	}
	if opts["temperature"] != 0.2 || opts["top_k"] != 40 || opts["seed"] != 7 {
		t.Fatalf("unexpected options: %v", opts)
	}
}

// TestValidate runs the schema against valid and invalid configurations.
func TestValidate(t *testing.T) {
	if err := Validate(Defaults()); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}

	withParams := Defaults()
	withParams.Parameters = Parameters{Temperature: floatPtr(0.7), TopP: floatPtr(0.9)}
	if err := Validate(withParams); err != nil {
		t.Fatalf("valid parameters rejected: %v", err)
	}

	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{name: "missing scheme", cfg: Config{Host: "localhost:11434", Model: "m"}, want: "host"},
		{name: "empty model", cfg: Config{Host: DefaultHost, Model: ""}, want: "model"},
		{name: "top_p out of range", cfg: Config{Host: DefaultHost, Model: "m", Parameters: Parameters{TopP: floatPtr(1.5)}}, want: "top_p"},
		{name: "negative temperature", cfg: Config{Host: DefaultHost, Model: "m", Parameters: Parameters{Temperature: floatPtr(-1)}}, want: "temperature"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(tc.cfg)
			if err == nil {
				t.Fatalf("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error mentioning %q, got %v", tc.want, err)
			}
		})
	}
}

func TestShowConfig(t *testing.T) {
	var buf bytes.Buffer
	ShowConfig(&buf, "", Defaults())
	out := buf.String()
	for _, want := range []string{"No config file loaded", "Host:     " + DefaultHost, "Model:    " + DefaultModel, "(model defaults)"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output, got:\n%s", want, out)
		}
	}

	buf.Reset()
	cfg := Defaults()
	cfg.Parameters.Temperature = floatPtr(0.3)
	ShowConfig(&buf, "config/config.json", cfg)
	out = buf.String()
	if !strings.Contains(out, "Config file: config/config.json") {
		t.Fatalf("expected config file line, got:\n%s", out)
	}
	if !strings.Contains(out, "temperature") {
		t.Fatalf("expected parameters dump, got:\n%s", out)
	}
}

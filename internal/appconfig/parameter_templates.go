// internal/appconfig/parameter_templates.go
package appconfig

import (
	"fmt"
	"strings"
)

// ProfileName identifies a sampling preset.
type ProfileName string

const (
	ProfilePrecise  ProfileName = "precise"
	ProfileNatural  ProfileName = "natural"
	ProfileCreative ProfileName = "creative"
)

// ParamsForProfile selects a parameter profile by name.
// An empty name yields no parameters so the model defaults apply.
func ParamsForProfile(name string) (Parameters, error) {
	switch ProfileName(normalizeProfileName(name)) {
	case "":
		return Parameters{}, nil
	case ProfilePrecise:
		return DefaultPreciseParams(), nil
	case ProfileNatural:
		return DefaultNaturalParams(), nil
	case ProfileCreative:
		return DefaultCreativeParams(), nil
	default:
		return Parameters{}, fmt.Errorf("unknown parameterTemplate %q (want precise, natural or creative)", name)
	}
}

// DefaultPreciseParams keeps corrections and translations close to the source.
func DefaultPreciseParams() Parameters {
	return Parameters{
		Temperature:   ptrFloat(0.2),
		TopP:          ptrFloat(0.9),
		TopK:          ptrInt(40),
		RepeatPenalty: ptrFloat(1.05),
		Seed:          ptrInt(42), // deterministic reruns
	}
}

// DefaultNaturalParams is a balanced preset for everyday business text.
func DefaultNaturalParams() Parameters {
	return Parameters{
		Temperature:   ptrFloat(0.7),
		TopP:          ptrFloat(0.95),
		MinP:          ptrFloat(0.05),
		RepeatLastN:   ptrInt(64),
		RepeatPenalty: ptrFloat(1.1),
	}
}

// DefaultCreativeParams widens the variety of the alternative phrasings.
func DefaultCreativeParams() Parameters {
	return Parameters{
		Temperature:      ptrFloat(1.1),
		TopP:             ptrFloat(1.0),
		MinP:             ptrFloat(0.1),
		RepeatLastN:      ptrInt(128),
		PresencePenalty:  ptrFloat(0.5),
		FrequencyPenalty: ptrFloat(0.2),
	}
}

// ApplyParameterTemplate merges the configured profile under the explicit parameters.
func ApplyParameterTemplate(config *Config) error {
	template, err := ParamsForProfile(config.ParameterTemplate)
	if err != nil {
		return err
	}
	config.Parameters = mergeParams(template, config.Parameters)
	return nil
}

func mergeParams(base Parameters, override Parameters) Parameters {
	if override.Temperature != nil {
		base.Temperature = override.Temperature
	}
	if override.TopK != nil {
		base.TopK = override.TopK
	}
	if override.TopP != nil {
		base.TopP = override.TopP
	}
	if override.MinP != nil {
		base.MinP = override.MinP
	}
	if override.RepeatLastN != nil {
		base.RepeatLastN = override.RepeatLastN
	}
	if override.RepeatPenalty != nil {
		base.RepeatPenalty = override.RepeatPenalty
	}
	if override.PresencePenalty != nil {
		base.PresencePenalty = override.PresencePenalty
	}
	if override.FrequencyPenalty != nil {
		base.FrequencyPenalty = override.FrequencyPenalty
	}
	if override.Seed != nil {
		base.Seed = override.Seed
	}
	return base
}

func normalizeProfileName(s string) string {
	s = strings.TrimSpace(strings.ToLower(s))
	// allow a few friendly aliases
	switch s {
	case "", "default", "none":
		return ""
	case "strict", "accurate", "accuracy":
		return string(ProfilePrecise)
	case "balanced", "business":
		return string(ProfileNatural)
	case "creative-writing", "creative_writing", "writer":
		return string(ProfileCreative)
	default:
		return s
	}
}

// Pointer helpers (keeps structs clean + preserves unset vs explicitly set).
func ptrInt(v int) *int           { return &v }
func ptrFloat(v float64) *float64 { return &v }

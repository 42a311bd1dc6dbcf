// internal/pipeline/input.go
package pipeline

import (
	"errors"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// ErrEmptyInput rejects an invocation whose original text is blank.
var ErrEmptyInput = errors.New("入力が空のため処理をスキップしました。")

// Input is the user text captured at invocation time.
type Input struct {
	Context  string
	Original string
}

// NewInput trims both fields and normalizes them to NFC so that visually equal
// text produces identical prompts.
func NewInput(context, original string) Input {
	return Input{
		Context:  norm.NFC.String(strings.TrimSpace(context)),
		Original: norm.NFC.String(strings.TrimSpace(original)),
	}
}

// Validate reports ErrEmptyInput when there is nothing to correct.
func (in Input) Validate() error {
	if strings.TrimSpace(in.Original) == "" {
		return ErrEmptyInput
	}
	return nil
}

// InputSource yields the latest input for a coalesced rerun.
type InputSource func() Input

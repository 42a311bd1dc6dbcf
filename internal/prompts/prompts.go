// Package prompts builds the instruction text for each pipeline stage.
// Every builder is pure: the same input always yields the same prompt.
package prompts

import "strings"

const (
	correctionInstruction = "You are localingo, an English proofreading assistant. " +
		"Fix grammar, spelling, tense, and wording issues while preserving the original structure and intent. " +
		"Do not add explanations. Return only the corrected English text."

	translationInstruction = "You are a professional bilingual translator. " +
		"Translate the following English text into natural, context-aware Japanese suitable for business communication. " +
		"Return only the Japanese translation without explanation."

	variantsInstruction = "You are an English copy expert. " +
		"Using the Japanese text below as the source meaning, produce three alternative English sentences that sound natural and native. " +
		"Keep them concise and faithful to the meaning. Format strictly as:\n" +
		"1. sentence one\n2. sentence two\n3. sentence three"
)

// Section labels that precede embedded user text.
const (
	ContextLabel  = "【関連コンテキスト】"
	OriginalLabel = "【校正対象】"
	EnglishLabel  = "【English】"
	JapaneseLabel = "【Japanese】"
)

// Correction asks the model to proofread original. A non-empty context is
// embedded as a labeled block ahead of the text to correct.
func Correction(context, original string) string {
	var sb strings.Builder
	sb.WriteString(correctionInstruction)
	if context != "" {
		sb.WriteString("\n\n" + ContextLabel + "\n")
		sb.WriteString(context)
	}
	sb.WriteString("\n\n" + OriginalLabel + "\n")
	sb.WriteString(original)
	return sb.String()
}

// Translation asks for a Japanese rendering of original.
func Translation(original string) string {
	return translationInstruction + "\n\n" + EnglishLabel + "\n" + original
}

// Variants asks for three numbered English sentences carrying the meaning of japanese.
func Variants(japanese string) string {
	return variantsInstruction + "\n\n" + JapaneseLabel + "\n" + japanese
}

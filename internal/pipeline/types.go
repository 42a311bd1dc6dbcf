// internal/pipeline/types.go
package pipeline

// State is the phase of the run currently owned by an Orchestrator.
type State int

const (
	StateIdle State = iota
	StateValidating
	StateCorrecting
	StateTranslating
	StateVariants
	StateDone
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateValidating:
		return "validating"
	case StateCorrecting:
		return "correcting"
	case StateTranslating:
		return "translating"
	case StateVariants:
		return "variants"
	case StateDone:
		return "done"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Disposition reports what Run did with one invocation.
type Disposition int

const (
	// Rejected means the input failed validation; nothing was queued.
	Rejected Disposition = iota
	// Queued means a run was in flight and a single rerun was recorded.
	Queued
	// Dropped means a run was in flight and a rerun was already recorded.
	Dropped
	// Executed means this call ran the pipeline, including any reruns queued meanwhile.
	Executed
)

func (d Disposition) String() string {
	switch d {
	case Rejected:
		return "rejected"
	case Queued:
		return "queued"
	case Dropped:
		return "dropped"
	case Executed:
		return "executed"
	default:
		return "unknown"
	}
}

// Region identifies one of the three output areas.
type Region int

const (
	RegionCorrected Region = iota
	RegionJapanese
	RegionVariants
)

// Regions lists every output region in display order.
var Regions = []Region{RegionCorrected, RegionJapanese, RegionVariants}

func (r Region) String() string {
	switch r {
	case RegionCorrected:
		return "corrected"
	case RegionJapanese:
		return "japanese"
	case RegionVariants:
		return "variants"
	default:
		return "unknown"
	}
}

// Tone selects how a status message is styled.
type Tone int

const (
	ToneNormal Tone = iota
	ToneAlert
)

// Stage names used in logs and StageError.
const (
	StageCorrection  = "correction"
	StageTranslation = "translation"
	StageVariants    = "variants"
)

// Status messages shown to the user.
const (
	StatusDefault   = "Ctrl+SでLLMパイプラインを実行します。"
	StatusRunning   = "LLMへ送信中…"
	StatusDone      = "完了: 再度Ctrl+Sで最新の結果に更新できます。"
	StatusCopied    = "コピーしました。"
	StatusNoCopy    = "クリップボードにアクセスできません。"
	PlaceholderGen  = "生成中…"
	PlaceholderErr  = "エラーが発生しました。"
	PlaceholderNone = "候補を生成できませんでした。"
)

// Sink receives every user-visible effect of a run. Run effects arrive from
// the goroutine executing the run; validation rejections arrive from the
// caller of Run, so implementations must be safe for concurrent use.
type Sink interface {
	Status(msg string, tone Tone)
	Generating(region Region)
	Publish(region Region, text string)
	PublishCandidates(candidates []string)
	Errored(region Region)
	StateChanged(state State)
}

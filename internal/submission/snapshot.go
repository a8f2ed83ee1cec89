package submission

import "time"

// Phase is the position of the form in its submit cycle.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseAwaiting
	PhaseSucceeded
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseAwaiting:
		return "awaiting"
	case PhaseSucceeded:
		return "succeeded"
	case PhaseFailed:
		return "failed"
	default:
		return "idle"
	}
}

// Settled reports whether the last request finished and nothing is pending.
func (p Phase) Settled() bool {
	return p == PhaseSucceeded || p == PhaseFailed
}

// Snapshot is a copy of the form state handed to the rendering surface.
type Snapshot struct {
	Input  string
	Result string
	Error  string

	Phase       Phase
	Attempts    uint64
	InFlight    int
	LastSettled time.Time
}

// CanSubmit reports whether the input satisfies the non-empty precondition.
func (s Snapshot) CanSubmit() bool {
	return len(s.Input) > 0
}

// HasResult reports whether a short URL is available to open or copy.
func (s Snapshot) HasResult() bool {
	return len(s.Result) > 0
}

// HasError reports whether a failure message should be shown.
func (s Snapshot) HasError() bool {
	return len(s.Error) > 0
}

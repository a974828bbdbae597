package engine

// Phase tracks how far a render session has progressed. Any failure moves
// the session to PhaseFailed and aborts the remaining work; output already
// written is not rolled back.
type Phase int

const (
	PhaseInit Phase = iota
	PhaseContextResolved
	PhasePlanResolved
	PhaseRendering
	PhaseDone
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseInit:
		return "INIT"
	case PhaseContextResolved:
		return "CONTEXT_RESOLVED"
	case PhasePlanResolved:
		return "PLAN_RESOLVED"
	case PhaseRendering:
		return "RENDERING"
	case PhaseDone:
		return "DONE"
	case PhaseFailed:
		return "FAILED"
	default:
		return "UNKNOWN"
	}
}

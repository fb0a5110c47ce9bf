package phase

// Phase tracks how far one compilation got.
//
// Progression is sequential: NotStarted -> Loaded -> Lexed -> Parsed.
// Type checking and initializer folding happen while parsing, so a unit at
// PhaseParsed is fully checked. Advance enforces the order through
// Prerequisites.
type Phase int

const (
	PhaseNotStarted Phase = iota // nothing done yet
	PhaseLoaded                  // source text available
	PhaseLexed                   // tokens generated
	PhaseParsed                  // AST built and checked
)

// Prerequisites maps each phase to the phase it must follow
var Prerequisites = map[Phase]Phase{
	PhaseLoaded: PhaseNotStarted,
	PhaseLexed:  PhaseLoaded,
	PhaseParsed: PhaseLexed,
}

func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "NotStarted"
	case PhaseLoaded:
		return "Loaded"
	case PhaseLexed:
		return "Lexed"
	case PhaseParsed:
		return "Parsed"
	default:
		return "Unknown"
	}
}

// Advance moves *p to next if next directly follows it.
func (p *Phase) Advance(next Phase) bool {
	prev, ok := Prerequisites[next]
	if !ok || prev != *p {
		return false
	}
	*p = next
	return true
}

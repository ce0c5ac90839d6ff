package scannermodels

type Outcome int

const (
	OutcomeFound Outcome = iota
	OutcomeUnavailable
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeFound:
		return "found"
	case OutcomeUnavailable:
		return "unavailable"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Attempt records what one detection strategy produced.
type Attempt struct {
	Source  string
	Outcome Outcome
	Version string
	Err     error
}

type Resolution struct {
	Package  string
	Version  string
	Source   string
	Found    bool
	Attempts []Attempt
}

// DisplayVersion renders an absent version the way the report prints it.
func (r Resolution) DisplayVersion() string {
	if !r.Found {
		return "None"
	}
	return r.Version
}

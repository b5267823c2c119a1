package pkgmgr

// Status is the result class of a single tool install.
type Status int

const (
	// StatusAlreadyPresent means the probe found the tool and nothing ran.
	StatusAlreadyPresent Status = iota + 1
	// StatusInstalled means the install command exited successfully.
	StatusInstalled
	// StatusFailed means the install command failed; see Outcome.Diagnostic.
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusAlreadyPresent:
		return "already-present"
	case StatusInstalled:
		return "installed"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Outcome is the immutable per-tool install result.
type Outcome struct {
	Status     Status
	Diagnostic string
}

// AlreadyPresent returns the outcome for a tool the probe found.
func AlreadyPresent() Outcome {
	return Outcome{Status: StatusAlreadyPresent}
}

// Installed returns the outcome for a successful install.
func Installed() Outcome {
	return Outcome{Status: StatusInstalled}
}

// Failed returns the outcome for a failed install with display-ready diagnostic text.
func Failed(diagnostic string) Outcome {
	return Outcome{Status: StatusFailed, Diagnostic: diagnostic}
}

// OK reports whether the tool is available after the install attempt.
func (o Outcome) OK() bool {
	return o.Status == StatusAlreadyPresent || o.Status == StatusInstalled
}

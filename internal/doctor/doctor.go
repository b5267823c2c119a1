// Package doctor runs the health checks behind `devsetup doctor`.
package doctor

// Status is the result class of a single check.
type Status string

const (
	// StatusOK means the check passed.
	StatusOK Status = "OK"
	// StatusWarn means setup can still run but something needs attention.
	StatusWarn Status = "WARN"
	// StatusFail means setup will not work until the problem is fixed.
	StatusFail Status = "FAIL"
)

// Result is the outcome of one check.
type Result struct {
	Status         Status
	CheckName      string
	Message        string
	Recommendation string
}

// HasFailure reports whether any result failed.
func HasFailure(results []Result) bool {
	for _, r := range results {
		if r.Status == StatusFail {
			return true
		}
	}
	return false
}

package metrics

import "strconv"

// Attribute keys on exported series.
const (
	AttrProvider    = "provider"
	AttrStatus      = "status"
	AttrStatusClass = "status_class"
	AttrCommand     = "command"
	AttrOutcome     = "outcome"
)

// Command outcomes.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

func outcomeOf(err error) string {
	if err != nil {
		return OutcomeError
	}
	return OutcomeOK
}

// statusClass buckets an HTTP status as "4xx", "5xx" and so on.
func statusClass(status int) string {
	if status < 100 || status > 599 {
		return "unknown"
	}
	return strconv.Itoa(status/100) + "xx"
}

package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// Outcome classifies a single assertion. Severity order: Fail > Warn > Pass.
type Outcome int

const (
	OutcomePass Outcome = iota
	OutcomeWarn
	OutcomeFail
)

func (o Outcome) String() string {
	switch o {
	case OutcomePass:
		return "pass"
	case OutcomeWarn:
		return "warn"
	case OutcomeFail:
		return "fail"
	default:
		return "unknown"
	}
}

func (o Outcome) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.String())
}

func (o *Outcome) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "pass":
		*o = OutcomePass
	case "warn":
		*o = OutcomeWarn
	case "fail":
		*o = OutcomeFail
	default:
		return fmt.Errorf("unknown outcome %q", s)
	}
	return nil
}

// Assertion is one classified validation outcome. Immutable once produced.
type Assertion struct {
	Description string  `json:"description"`
	Outcome     Outcome `json:"outcome"`
	Detail      string  `json:"detail,omitempty"`
}

// Check is a named, ordered group of assertions for one operational concern.
// Assertions are appended in evaluation order and never reordered.
type Check struct {
	ID         string      `json:"id"`
	Title      string      `json:"title"`
	Assertions []Assertion `json:"assertions"`
}

// Run is the complete ordered record of one harness invocation.
type Run struct {
	Checks     []Check   `json:"checks"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
}

// Verdict holds per-severity totals and the resulting exit code.
// It is derived from a Run, never stored independently.
type Verdict struct {
	Pass     int `json:"pass_count"`
	Warn     int `json:"warn_count"`
	Fail     int `json:"fail_count"`
	ExitCode int `json:"exit_code"`
}

// Aggregate reduces a Run to a Verdict. Exit code is 1 iff any assertion
// failed; warnings alone never flip the exit code.
func Aggregate(run *Run) Verdict {
	var v Verdict
	for _, c := range run.Checks {
		for _, a := range c.Assertions {
			switch a.Outcome {
			case OutcomePass:
				v.Pass++
			case OutcomeWarn:
				v.Warn++
			case OutcomeFail:
				v.Fail++
			}
		}
	}
	if v.Fail > 0 {
		v.ExitCode = 1
	}
	return v
}

// AggregateStrict is Aggregate with warnings escalated: the exit code is 1
// when any assertion failed or warned. Opt-in via the --strict flag.
func AggregateStrict(run *Run) Verdict {
	v := Aggregate(run)
	if v.Warn > 0 {
		v.ExitCode = 1
	}
	return v
}

// Label returns the terminal verdict line for a Verdict.
func (v Verdict) Label() string {
	switch {
	case v.Fail > 0:
		return "failed"
	case v.Warn > 0:
		return "passed with warnings"
	default:
		return "all passed"
	}
}

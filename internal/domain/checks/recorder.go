package checks

import "github.com/pipecheck/pipecheck/internal/domain"

// blockedDetail marks an assertion that could not be evaluated because an
// earlier assertion failed to establish the resource it depends on.
const blockedDetail = "dependency unavailable"

// Recorder appends classified assertions to the check under construction.
// Which call sites use Advise instead of Require is the fixed per-check
// policy table: Advise marks the advisory conditions that downgrade to WARN.
type Recorder struct {
	check *domain.Check
}

func NewRecorder(check *domain.Check) *Recorder {
	return &Recorder{check: check}
}

func (r *Recorder) append(desc string, outcome domain.Outcome, detail string) {
	r.check.Assertions = append(r.check.Assertions, domain.Assertion{
		Description: desc,
		Outcome:     outcome,
		Detail:      detail,
	})
}

// Require records a hard assertion: FAIL when ok is false.
// It returns ok so callers can gate follow-on probes.
func (r *Recorder) Require(desc string, ok bool, detail string) bool {
	outcome := domain.OutcomePass
	if !ok {
		outcome = domain.OutcomeFail
	}
	r.append(desc, outcome, detail)
	return ok
}

// Advise records an advisory assertion: WARN when ok is false.
func (r *Recorder) Advise(desc string, ok bool, detail string) bool {
	outcome := domain.OutcomePass
	if !ok {
		outcome = domain.OutcomeWarn
	}
	r.append(desc, outcome, detail)
	return ok
}

// RequireErr records a probe error as a FAIL assertion carrying its cause.
func (r *Recorder) RequireErr(desc string, err error) {
	r.append(desc, domain.OutcomeFail, err.Error())
}

// AdviseErr records a best-effort probe error as a WARN assertion.
func (r *Recorder) AdviseErr(desc string, err error) {
	r.append(desc, domain.OutcomeWarn, err.Error())
}

// Blocked records an assertion that was attempted but is meaningless because
// a prior resource is unavailable.
func (r *Recorder) Blocked(desc string) {
	r.append(desc, domain.OutcomeFail, blockedDetail)
}

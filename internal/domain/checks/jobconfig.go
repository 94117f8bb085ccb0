package checks

import (
	"fmt"
	"strings"
)

// runJobConfig locates the pipeline's job record in the scheduler config and
// asserts its guard tokens and timeout. Record-not-found and parse failures
// surface as failed assertions, never as faults.
func runJobConfig(d Deps, r *Recorder) {
	job, err := d.Jobs.Lookup(d.Cfg.JobID)
	if err != nil {
		r.RequireErr(fmt.Sprintf("job %q found in scheduler config", d.Cfg.JobID), err)
		for _, guard := range d.Cfg.RequiredGuards {
			r.Blocked(fmt.Sprintf("guard %q present in job command", guard))
		}
		r.Blocked("job timeout meets minimum")
		return
	}
	r.Require(fmt.Sprintf("job %q found in scheduler config", d.Cfg.JobID), true, "")

	for _, guard := range d.Cfg.RequiredGuards {
		r.Require(fmt.Sprintf("guard %q present in job command", guard),
			strings.Contains(job.Command, guard),
			fmt.Sprintf("command %q lacks %q", job.Command, guard))
	}

	r.Require("job timeout meets minimum",
		job.TimeoutSeconds >= d.Cfg.MinJobTimeout,
		fmt.Sprintf("timeout below minimum: %d < %d", job.TimeoutSeconds, d.Cfg.MinJobTimeout))
}

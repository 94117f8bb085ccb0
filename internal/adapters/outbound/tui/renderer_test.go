package tui_test

import (
	"strings"
	"testing"

	"github.com/pipecheck/pipecheck/internal/adapters/outbound/tui"
	"github.com/pipecheck/pipecheck/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRun() *domain.Run {
	return &domain.Run{Checks: []domain.Check{
		{
			ID:    "repo-health",
			Title: "Repository health",
			Assertions: []domain.Assertion{
				{Description: "checked out on primary branch", Outcome: domain.OutcomePass},
				{Description: "push dry run succeeds", Outcome: domain.OutcomeFail, Detail: "auth failed"},
			},
		},
		{
			ID:    "provenance",
			Title: "Local/remote provenance",
			Assertions: []domain.Assertion{
				{Description: "local and remote heads match", Outcome: domain.OutcomeWarn, Detail: "needs push"},
			},
		},
	}}
}

func TestRenderRun_ShowsChecksAssertionsAndVerdict(t *testing.T) {
	run := sampleRun()
	verdict := domain.Aggregate(run)
	out := tui.RenderRun(run, verdict)

	assert.Contains(t, out, "Repository health")
	assert.Contains(t, out, "repo-health")
	assert.Contains(t, out, "checked out on primary branch")
	assert.Contains(t, out, "push dry run succeeds")
	assert.Contains(t, out, "auth failed")
	assert.Contains(t, out, "needs push")

	assert.Contains(t, out, "1 passed")
	assert.Contains(t, out, "1 warnings")
	assert.Contains(t, out, "1 failed")
	assert.Contains(t, out, "failed")
}

func TestRenderRun_VerdictLabelVariants(t *testing.T) {
	run := &domain.Run{Checks: []domain.Check{{
		ID:    "c",
		Title: "c",
		Assertions: []domain.Assertion{
			{Description: "ok", Outcome: domain.OutcomePass},
		},
	}}}
	out := tui.RenderRun(run, domain.Aggregate(run))
	assert.Contains(t, out, "all passed")

	run.Checks[0].Assertions = append(run.Checks[0].Assertions,
		domain.Assertion{Description: "meh", Outcome: domain.OutcomeWarn})
	out = tui.RenderRun(run, domain.Aggregate(run))
	assert.Contains(t, out, "passed with warnings")
}

func TestRenderRun_IsPureProjection(t *testing.T) {
	run := sampleRun()
	verdict := domain.Aggregate(run)

	tui.RenderRun(run, verdict)
	after := domain.Aggregate(run)

	require.Equal(t, verdict, after, "rendering must not alter counts")
	assert.Equal(t, 2, len(run.Checks))
}

func TestRenderRun_OnePerAssertionLine(t *testing.T) {
	run := sampleRun()
	out := tui.RenderRun(run, domain.Aggregate(run))

	total := 0
	for _, c := range run.Checks {
		total += len(c.Assertions)
	}
	glyphs := strings.Count(out, "✓") + strings.Count(out, "⚠") + strings.Count(out, "✗")
	assert.Equal(t, total, glyphs)
}

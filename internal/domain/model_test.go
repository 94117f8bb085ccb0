package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/pipecheck/pipecheck/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runWith(outcomes ...domain.Outcome) *domain.Run {
	check := domain.Check{ID: "c1", Title: "check one"}
	for _, o := range outcomes {
		check.Assertions = append(check.Assertions, domain.Assertion{
			Description: "assertion",
			Outcome:     o,
		})
	}
	return &domain.Run{Checks: []domain.Check{check}}
}

func TestAggregate_CountsAndExitCode(t *testing.T) {
	cases := []struct {
		name     string
		outcomes []domain.Outcome
		pass     int
		warn     int
		fail     int
		exit     int
		label    string
	}{
		{"all pass", []domain.Outcome{domain.OutcomePass, domain.OutcomePass}, 2, 0, 0, 0, "all passed"},
		{"warnings only", []domain.Outcome{domain.OutcomePass, domain.OutcomeWarn}, 1, 1, 0, 0, "passed with warnings"},
		{"one failure", []domain.Outcome{domain.OutcomePass, domain.OutcomeFail}, 1, 0, 1, 1, "failed"},
		{"fail beats warn", []domain.Outcome{domain.OutcomeWarn, domain.OutcomeFail}, 0, 1, 1, 1, "failed"},
		{"empty run", nil, 0, 0, 0, 0, "all passed"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v := domain.Aggregate(runWith(tc.outcomes...))
			assert.Equal(t, tc.pass, v.Pass)
			assert.Equal(t, tc.warn, v.Warn)
			assert.Equal(t, tc.fail, v.Fail)
			assert.Equal(t, tc.exit, v.ExitCode)
			assert.Equal(t, tc.label, v.Label())
		})
	}
}

func TestAggregate_WarningsNeverFlipExitCode(t *testing.T) {
	run := runWith(domain.OutcomeWarn, domain.OutcomeWarn, domain.OutcomeWarn)
	v := domain.Aggregate(run)
	assert.Equal(t, 0, v.ExitCode)
	assert.Equal(t, "passed with warnings", v.Label())
}

func TestAggregateStrict_EscalatesWarnings(t *testing.T) {
	v := domain.AggregateStrict(runWith(domain.OutcomePass, domain.OutcomeWarn))
	assert.Equal(t, 1, v.ExitCode)

	v = domain.AggregateStrict(runWith(domain.OutcomePass))
	assert.Equal(t, 0, v.ExitCode)
}

func TestAggregate_SpansMultipleChecks(t *testing.T) {
	run := &domain.Run{Checks: []domain.Check{
		{ID: "a", Assertions: []domain.Assertion{{Outcome: domain.OutcomePass}}},
		{ID: "b", Assertions: []domain.Assertion{{Outcome: domain.OutcomeFail}, {Outcome: domain.OutcomeWarn}}},
	}}
	v := domain.Aggregate(run)
	assert.Equal(t, 1, v.Pass)
	assert.Equal(t, 1, v.Warn)
	assert.Equal(t, 1, v.Fail)
	assert.Equal(t, 1, v.ExitCode)
}

func TestOutcome_JSONRoundTrip(t *testing.T) {
	a := domain.Assertion{Description: "branch matches", Outcome: domain.OutcomeWarn, Detail: "on develop"}
	data, err := json.Marshal(a)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"warn"`)

	var back domain.Assertion
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, a, back)

	var bad domain.Assertion
	err = json.Unmarshal([]byte(`{"description":"x","outcome":"maybe"}`), &bad)
	assert.Error(t, err)
}

package saga

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedStep struct {
	name        string
	failOn      bool
	executed    *[]string
	compensated *[]string
}

func (s *recordedStep) Name() string { return s.name }

func (s *recordedStep) Execute(ctx context.Context) error {
	if s.failOn {
		return errors.New(s.name + " exploded")
	}
	*s.executed = append(*s.executed, s.name)
	return nil
}

func (s *recordedStep) Compensate(ctx context.Context) error {
	*s.compensated = append(*s.compensated, s.name)
	return nil
}

func TestOrchestratorRunsAllSteps(t *testing.T) {
	var executed, compensated []string
	o := NewOrchestrator([]Step{
		&recordedStep{name: "one", executed: &executed, compensated: &compensated},
		&recordedStep{name: "two", executed: &executed, compensated: &compensated},
		&recordedStep{name: "three", executed: &executed, compensated: &compensated},
	})

	require.NoError(t, o.Run(context.Background()))
	assert.Equal(t, []string{"one", "two", "three"}, executed)
	assert.Empty(t, compensated)
}

func TestOrchestratorRollsBackCompletedStepsInReverse(t *testing.T) {
	var executed, compensated []string
	o := NewOrchestrator([]Step{
		&recordedStep{name: "one", executed: &executed, compensated: &compensated},
		&recordedStep{name: "two", executed: &executed, compensated: &compensated},
		&recordedStep{name: "boom", failOn: true, executed: &executed, compensated: &compensated},
		&recordedStep{name: "never", executed: &executed, compensated: &compensated},
	})

	err := o.Run(context.Background())
	require.Error(t, err)
	assert.Equal(t, []string{"one", "two"}, executed)
	assert.Equal(t, []string{"two", "one"}, compensated)
}

func TestOrchestratorFailingFirstStepCompensatesNothing(t *testing.T) {
	var executed, compensated []string
	o := NewOrchestrator([]Step{
		&recordedStep{name: "boom", failOn: true, executed: &executed, compensated: &compensated},
	})

	require.Error(t, o.Run(context.Background()))
	assert.Empty(t, executed)
	assert.Empty(t, compensated)
}

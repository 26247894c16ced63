package saga

import (
	"context"
	"log"
)

// Step is a single unit of work in a multi-step operation. Each step must
// be able to undo its own effects so a failure partway through never
// leaves earlier writes committed.
type Step interface {
	Name() string
	Execute(ctx context.Context) error
	Compensate(ctx context.Context) error
}

// Orchestrator runs steps in order and compensates completed ones, newest
// first, when a later step fails.
type Orchestrator struct {
	steps []Step
}

func NewOrchestrator(steps []Step) *Orchestrator {
	return &Orchestrator{steps: steps}
}

func (o *Orchestrator) Run(ctx context.Context) error {
	var done []Step

	for _, step := range o.steps {
		if err := step.Execute(ctx); err != nil {
			log.Printf("step %s failed: %v, rolling back", step.Name(), err)
			o.rollback(ctx, done)
			return err
		}
		done = append(done, step)
	}
	return nil
}

func (o *Orchestrator) rollback(ctx context.Context, steps []Step) {
	for i := len(steps) - 1; i >= 0; i-- {
		step := steps[i]
		if err := step.Compensate(ctx); err != nil {
			log.Printf("failed to compensate step %s: %v", step.Name(), err)
		}
	}
}

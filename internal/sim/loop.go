// Package sim drives the percept/decision cycle between a market environment
// and a reordering agent for a fixed number of steps.
package sim

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/Safa30/Lab-2-CSE366/internal/model"
)

// Environment is the world the agent acts in. InitialPercept reports the
// state before any step has run; Advance applies one action and returns the
// percept for the next step.
type Environment interface {
	InitialPercept() model.Percept
	Advance(a model.Action) (model.Percept, error)
}

// Agent turns a percept into a decision. Implementations may keep internal
// state across calls; the loop never inspects it.
type Agent interface {
	Decide(p model.Percept) model.Decision
}

// Recorder receives one record per completed decision, in step order. A
// recorder error aborts the run: the archive and the simulation must not
// drift apart.
type Recorder interface {
	RecordStep(ctx context.Context, rec model.StepRecord) error
}

// Loop executes the simulation protocol: observe, decide, record, advance.
type Loop struct {
	logger    zerolog.Logger
	env       Environment
	agent     Agent
	recorders []Recorder
}

// NewLoop wires an environment and an agent to zero or more recorders.
func NewLoop(logger zerolog.Logger, env Environment, agent Agent, recorders ...Recorder) *Loop {
	return &Loop{
		logger:    logger.With().Str("component", "sim").Logger(),
		env:       env,
		agent:     agent,
		recorders: recorders,
	}
}

// Run executes steps decision cycles. Each cycle feeds the current percept to
// the agent, hands the resulting record to every recorder, then advances the
// environment. The percept recorded for step i is the state the agent saw,
// not the state its action produced.
func (l *Loop) Run(ctx context.Context, steps int) error {
	startedAt := time.Now().UTC()
	l.logger.Info().Int("steps", steps).Msg("simulation start")

	percept := l.env.InitialPercept()
	for step := 0; step < steps; step++ {
		decision := l.agent.Decide(percept)

		rec := model.StepRecord{
			Step:          step,
			Price:         percept.Price,
			Stock:         percept.Stock,
			PriceDiscount: decision.PriceDiscount,
			LowStock:      decision.LowStock,
			Buy:           decision.Buy,
			AveragePrice:  decision.AveragePrice,
			Spent:         float64(decision.Buy) * percept.Price,
		}

		l.logger.Debug().
			Int("step", step).
			Float64("price", rec.Price).
			Float64("stock", rec.Stock).
			Bool("price_discount", rec.PriceDiscount).
			Bool("low_stock", rec.LowStock).
			Int("buy", rec.Buy).
			Float64("average_price", rec.AveragePrice).
			Msg("step decided")

		for _, r := range l.recorders {
			if err := r.RecordStep(ctx, rec); err != nil {
				return fmt.Errorf("record step %d: %w", step, err)
			}
		}

		next, err := l.env.Advance(decision.Action)
		if err != nil {
			return fmt.Errorf("advance market after step %d: %w", step, err)
		}
		percept = next
	}

	l.logger.Info().
		Int("steps", steps).
		Dur("duration", time.Since(startedAt)).
		Msg("simulation finished")
	return nil
}

package qsim

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

/*
RunShots executes circuit once per shot, each shot on its own freshly built
register, spread across the pool's workers. It returns one outcome per shot
in shot order; outcomes are not aggregated. The first failing shot aborts the
run.

The circuit is shared read-only by all shots, so any Oracle it contains must
be safe to call from several goroutines.
*/
func (q *Q) RunShots(ctx context.Context, circuit *Circuit, shots int) ([]ClassicalRegister, error) {
	if shots < 0 {
		return nil, fmt.Errorf("%d shots: %w", shots, ErrDimensionMismatch)
	}

	pending := make([]chan ShotValue, shots)

	for shot := range pending {
		source := q.shotSource(shot)

		pending[shot] = q.Schedule(uuid.NewString(), func() (any, error) {
			return circuit.Execute(source)
		})
	}

	outcomes := make([]ClassicalRegister, shots)

	for shot, ch := range pending {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-q.ctx.Done():
			return nil, ErrPoolClosed
		case value := <-ch:
			if value.Error != nil {
				return nil, fmt.Errorf("shot %d: %w", shot+1, value.Error)
			}

			outcome, ok := value.Value.(ClassicalRegister)
			if !ok {
				return nil, fmt.Errorf("shot %d returned %T: %w", shot+1, value.Value, ErrDimensionMismatch)
			}

			outcomes[shot] = outcome
		}
	}

	return outcomes, nil
}

func (q *Q) shotSource(shot int) Source {
	if q.config.Seed == 0 {
		return DefaultSource()
	}

	return NewSource(q.config.Seed + uint64(shot))
}

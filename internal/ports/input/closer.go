package input

import "context"

type CloserUseCase interface {
	// CloseExpired closes every hold event whose end time has passed and
	// returns how many it closed.
	CloseExpired(ctx context.Context) (int, error)
}

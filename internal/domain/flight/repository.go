package flight

import "context"

type Repository interface {
	GetById(ctx context.Context, id string) (*Flight, error)
	// Create inserts a new flight row. A second create with the same id
	// returns common.DuplicateKeyError.
	Create(ctx context.Context, f *Flight) error
	// ApplyPatch updates only the non-nil fields of p. A missing row
	// returns common.NotFoundError.
	ApplyPatch(ctx context.Context, p Patch) error
	Delete(ctx context.Context, id string) error
}

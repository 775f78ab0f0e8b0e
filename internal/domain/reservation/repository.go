package reservation

import "context"

type Repository interface {
	GetById(ctx context.Context, id string) (*Reservation, error)
	// Create inserts a new reservation row. A second create with the
	// same id returns common.DuplicateKeyError.
	Create(ctx context.Context, r *Reservation) error
	// ApplyPatch updates only the non-nil fields of p. A missing row
	// returns common.NotFoundError.
	ApplyPatch(ctx context.Context, p Patch) error
}

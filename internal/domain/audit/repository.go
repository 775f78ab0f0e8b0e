package audit

import "context"

type Repository interface {
	Insert(ctx context.Context, rec *Record) error
}

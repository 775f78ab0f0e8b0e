package common

import (
	"errors"
	"fmt"
)

type NotFoundError struct {
	Entity string
	Key    string
}

func (e NotFoundError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("%s %q not found", e.Entity, e.Key)
	}
	return fmt.Sprintf("%s not found", e.Entity)
}

func NewNotFound(entity, key string) error {
	return NotFoundError{Entity: entity, Key: key}
}

func IsNotFound(err error) bool {
	var nf NotFoundError
	return errors.As(err, &nf)
}

// DuplicateKeyError signals a uniqueness-constraint violation on an
// entity's natural key. Under at-least-once delivery this is how a
// redelivered create announces itself, so callers treat it as a benign
// outcome rather than a storage failure.
type DuplicateKeyError struct {
	Entity string
	Key    string
}

func (e DuplicateKeyError) Error() string {
	return fmt.Sprintf("%s %q already exists", e.Entity, e.Key)
}

func NewDuplicateKey(entity, key string) error {
	return DuplicateKeyError{Entity: entity, Key: key}
}

func IsDuplicateKey(err error) bool {
	var dup DuplicateKeyError
	return errors.As(err, &dup)
}

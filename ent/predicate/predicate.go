// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AuditRecord is the predicate function for auditrecord builders.
type AuditRecord func(*sql.Selector)

// Flight is the predicate function for flight builders.
type Flight func(*sql.Selector)

// Reservation is the predicate function for reservation builders.
type Reservation func(*sql.Selector)

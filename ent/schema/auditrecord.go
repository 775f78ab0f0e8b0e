package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// AuditRecord is the durable trail of consumed messages. Rows are only
// ever inserted; the audit log is the operational signal for consume
// failures, so nothing in the application mutates it.
type AuditRecord struct {
	ent.Schema
}

func (AuditRecord) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("id").
			Unique().
			Immutable(),

		field.String("event").
			NotEmpty().
			Comment("Event type, or \"unknown\" when the envelope was undecodable"),

		field.Bytes("message").
			Comment("Raw envelope snapshot as received"),

		field.Bytes("payload").
			Optional(),

		field.String("error").
			Optional(),

		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (AuditRecord) Edges() []ent.Edge {
	return nil
}

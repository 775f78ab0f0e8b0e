package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

type Reservation struct {
	ent.Schema
}

// Fields of the Reservation.
func (Reservation) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable().
			NotEmpty().
			Comment("Natural reservation id from the producing service"),

		field.String("user_id").
			NotEmpty(),

		field.String("flight_id").
			NotEmpty(),

		field.Float("amount"),

		field.String("currency").
			NotEmpty(),

		field.String("status").
			Default("confirmed"),

		field.Time("reserved_at"),

		field.Time("created_at").
			Default(time.Now).
			Immutable(),

		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (Reservation) Edges() []ent.Edge {
	return nil
}

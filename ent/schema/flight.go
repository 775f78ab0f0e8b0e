package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

type Flight struct {
	ent.Schema
}

// Fields of the Flight.
func (Flight) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable().
			NotEmpty().
			Comment("Natural flight id from the producing service"),

		field.String("flight_number").
			NotEmpty(),

		field.String("airline_code").
			Optional().
			Comment("IATA airline code derived from the flight number prefix"),

		field.String("origin").
			NotEmpty(),

		field.String("destination").
			NotEmpty(),

		field.String("aircraft").
			Optional(),

		field.Time("departure"),

		field.Time("arrival"),

		field.String("status").
			Default("scheduled"),

		field.Float("price"),

		field.String("currency").
			NotEmpty(),

		field.Time("created_at").
			Default(time.Now).
			Immutable(),

		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (Flight) Edges() []ent.Edge {
	return nil
}

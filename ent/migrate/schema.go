// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AuditRecordsColumns holds the columns for the "audit_records" table.
	AuditRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt64, Increment: true},
		{Name: "event", Type: field.TypeString},
		{Name: "message", Type: field.TypeBytes},
		{Name: "payload", Type: field.TypeBytes, Nullable: true},
		{Name: "error", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// AuditRecordsTable holds the schema information for the "audit_records" table.
	AuditRecordsTable = &schema.Table{
		Name:       "audit_records",
		Columns:    AuditRecordsColumns,
		PrimaryKey: []*schema.Column{AuditRecordsColumns[0]},
	}
	// FlightsColumns holds the columns for the "flights" table.
	FlightsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "flight_number", Type: field.TypeString},
		{Name: "airline_code", Type: field.TypeString, Nullable: true},
		{Name: "origin", Type: field.TypeString},
		{Name: "destination", Type: field.TypeString},
		{Name: "aircraft", Type: field.TypeString, Nullable: true},
		{Name: "departure", Type: field.TypeTime},
		{Name: "arrival", Type: field.TypeTime},
		{Name: "status", Type: field.TypeString, Default: "scheduled"},
		{Name: "price", Type: field.TypeFloat64},
		{Name: "currency", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// FlightsTable holds the schema information for the "flights" table.
	FlightsTable = &schema.Table{
		Name:       "flights",
		Columns:    FlightsColumns,
		PrimaryKey: []*schema.Column{FlightsColumns[0]},
	}
	// ReservationsColumns holds the columns for the "reservations" table.
	ReservationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "flight_id", Type: field.TypeString},
		{Name: "amount", Type: field.TypeFloat64},
		{Name: "currency", Type: field.TypeString},
		{Name: "status", Type: field.TypeString, Default: "confirmed"},
		{Name: "reserved_at", Type: field.TypeTime},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ReservationsTable holds the schema information for the "reservations" table.
	ReservationsTable = &schema.Table{
		Name:       "reservations",
		Columns:    ReservationsColumns,
		PrimaryKey: []*schema.Column{ReservationsColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AuditRecordsTable,
		FlightsTable,
		ReservationsTable,
	}
)

func init() {
}

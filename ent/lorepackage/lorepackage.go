// Code generated by ent, DO NOT EDIT.

package lorepackage

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the lorepackage type in the database.
	Label = "lore_package"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "package_id"
	// FieldJobID holds the string denoting the job_id field in the database.
	FieldJobID = "job_id"
	// FieldZoneName holds the string denoting the zone_name field in the database.
	FieldZoneName = "zone_name"
	// FieldDocument holds the string denoting the document field in the database.
	FieldDocument = "document"
	// FieldPublishedAt holds the string denoting the published_at field in the database.
	FieldPublishedAt = "published_at"
	// EdgeJob holds the string denoting the job edge name in mutations.
	EdgeJob = "job"
	// ResearchJobFieldID holds the string denoting the ID field of the ResearchJob.
	ResearchJobFieldID = "job_id"
	// Table holds the table name of the lorepackage in the database.
	Table = "lore_packages"
	// JobTable is the table that holds the job relation/edge.
	JobTable = "lore_packages"
	// JobInverseTable is the table name for the ResearchJob entity.
	// It exists in this package in order to avoid circular dependency with the "researchjob" package.
	JobInverseTable = "research_jobs"
	// JobColumn is the table column denoting the job relation/edge.
	JobColumn = "job_id"
)

// Columns holds all SQL columns for lorepackage fields.
var Columns = []string{
	FieldID,
	FieldJobID,
	FieldZoneName,
	FieldDocument,
	FieldPublishedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultPublishedAt holds the default value on creation for the "published_at" field.
	DefaultPublishedAt func() time.Time
)

// OrderOption defines the ordering options for the LorePackage queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByJobID orders the results by the job_id field.
func ByJobID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldJobID, opts...).ToFunc()
}

// ByZoneName orders the results by the zone_name field.
func ByZoneName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldZoneName, opts...).ToFunc()
}

// ByPublishedAt orders the results by the published_at field.
func ByPublishedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPublishedAt, opts...).ToFunc()
}

// ByJobField orders the results by job field.
func ByJobField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newJobStep(), sql.OrderByField(field, opts...))
	}
}
func newJobStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(JobInverseTable, ResearchJobFieldID),
		sqlgraph.Edge(sqlgraph.O2O, true, JobTable, JobColumn),
	)
}

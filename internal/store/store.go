// internal/store/store.go

// Package store implements relational persistence for the three core
// entities: Company, Job and Application. Each store wraps *sql.DB with
// context-threaded raw SQL; referential integrity (cascade deletes) lives
// in the schema, so single statements are enough in the common case.
package store

import "database/sql"

// Stores bundles the per-entity stores for wiring.
type Stores struct {
	Companies    *CompanyStore
	Jobs         *JobStore
	Applications *ApplicationStore
}

// New builds all entity stores over one shared connection pool.
func New(db *sql.DB) *Stores {
	return &Stores{
		Companies:    NewCompanyStore(db),
		Jobs:         NewJobStore(db),
		Applications: NewApplicationStore(db),
	}
}

func nullableString(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}

func nullableInt(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	i := int(v.Int64)
	return &i
}

func joinClauses(clauses []string) string {
	out := ""
	for i, c := range clauses {
		if i > 0 {
			out += ", "
		}
		out += c
	}
	return out
}

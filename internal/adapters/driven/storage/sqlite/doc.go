// Package sqlite provides the SQLite-backed persistence for remote
// repository sync: stored social credentials (read), remote
// repository/organization mirrors (upsert) and project reads.
//
// A single Store owns the database handle and hands out the driven
// store interfaces as lightweight wrappers. Schema changes ship as
// embedded migrations applied on open.
package sqlite

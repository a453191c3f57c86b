// Package storage defines the Storage interface — a contract that any
// database backend must satisfy to work with this application.
//
// WHY AN INTERFACE?
// ─────────────────
// The menu controller should not know or care where records live. By
// depending only on this interface:
//
//   - Switching backends = implement the interface for the new store,
//     change one line in main.go. Zero menu changes.
//
//   - Writing tests = run the menu against the in-memory SQLite store
//     (or any fake that satisfies the interface). No fixtures on disk.
//
// This is the Dependency Inversion Principle in practice.
package storage

import (
	"errors"

	"github.com/aanand-mishra/school-roster/internal/types"
)

// ErrNotFound is the sentinel returned by lookups that match nothing:
// a record ID that does not exist, or a role filter with no hits.
// Callers branch on it with errors.Is rather than string matching.
var ErrNotFound = errors.New("record not found")

// Storage is the roster's persistence contract.
// Any concrete type that implements ALL of these methods automatically
// satisfies this interface — Go does this implicitly (no "implements"
// keyword required).
type Storage interface {
	// CreateRecord inserts a new record and returns the assigned ID.
	// IDs are strictly increasing from 1 and never reused, even after
	// deletions.
	CreateRecord(rec types.Record) (int64, error)

	// GetRecordByID fetches a single record by its ID.
	// Returns ErrNotFound if no record has that ID.
	GetRecordByID(id int64) (types.Record, error)

	// GetRecords returns every record in insertion order.
	// Returns an empty slice (not nil) when the roster is empty.
	GetRecords() ([]types.Record, error)

	// GetRecordsByRole returns all records whose role matches the given
	// tag case-insensitively, in insertion order. Returns an empty
	// slice when nothing matches; the caller decides how to report it.
	GetRecordsByRole(role string) ([]types.Record, error)

	// UpdateRecord persists the editable fields of an existing record,
	// matched by its ID. The ID and role columns are never written.
	// Returns ErrNotFound if the record no longer exists.
	UpdateRecord(rec types.Record) error

	// DeleteRecordByID removes a record permanently.
	// Returns ErrNotFound if no record has that ID.
	DeleteRecordByID(id int64) error

	// Close releases the underlying store.
	Close() error
}

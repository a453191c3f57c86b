// Package sqlite provides a SQLite-backed implementation of the
// storage.Storage interface using Go's standard database/sql package.
//
// WHY SQLite FOR AN IN-MEMORY ROSTER?
// ───────────────────────────────────
// With the ":memory:" DSN (the default), SQLite keeps the whole
// database in process memory and drops it on exit — exactly the
// process-lifetime collection the roster needs — while still giving us
// real SQL semantics. In particular, INTEGER PRIMARY KEY AUTOINCREMENT
// implements the ID invariant for free: identifiers are assigned in
// strictly increasing order starting at 1 and are never reused after a
// deletion, because SQLite tracks the high-water mark in its internal
// sqlite_sequence table. Pointing storage_path at a file upgrades the
// tool to a durable roster without touching any other package.
//
// The blank import below registers the sqlite3 driver with database/sql.
// The driver's init() function does this automatically when the package
// is loaded — we never call anything from it directly.
package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/aanand-mishra/school-roster/internal/config"
	"github.com/aanand-mishra/school-roster/internal/storage"
	"github.com/aanand-mishra/school-roster/internal/types"

	// Blank import: side-effect only (registers the "sqlite3" driver).
	// Without this the sql.Open("sqlite3", ...) call would fail with
	// "unknown driver".
	_ "github.com/mattn/go-sqlite3"
)

// SQLite is the concrete implementation of storage.Storage.
// It holds a *sql.DB which is a connection pool managed by database/sql.
type SQLite struct {
	Db *sql.DB
}

var _ storage.Storage = (*SQLite)(nil)

// New opens the SQLite database at cfg.StoragePath (":memory:" by
// default), creates the records table if it does not already exist,
// and returns a ready-to-use *SQLite.
func New(cfg *config.Config) (*SQLite, error) {
	db, err := sql.Open("sqlite3", cfg.StoragePath)
	if err != nil {
		return nil, fmt.Errorf("sqlite.New: open db: %w", err)
	}

	// An in-memory SQLite database lives inside ONE connection; if the
	// pool opened a second connection it would see a fresh empty
	// database. Capping the pool at a single connection makes the
	// ":memory:" DSN behave like the single roster it is meant to be.
	// The tool is single-threaded, so this costs nothing.
	db.SetMaxOpenConns(1)

	// One wide table for all three variants. The shared columns are
	// NOT NULL; variant-specific columns are nullable and only filled
	// for the roles that use them. At this scale a single table beats
	// three tables plus joins.
	//
	// AUTOINCREMENT (not just INTEGER PRIMARY KEY) is what guarantees
	// deleted IDs are never handed out again.
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS records (
			id              INTEGER PRIMARY KEY AUTOINCREMENT,
			role            TEXT    NOT NULL,
			name            TEXT    NOT NULL,
			telephone       TEXT    NOT NULL,
			email           TEXT    NOT NULL,
			salary          INTEGER,
			employment_type TEXT,
			working_hours   REAL,
			subject1        TEXT,
			subject2        TEXT,
			subject3        TEXT
		)
	`)
	if err != nil {
		return nil, fmt.Errorf("sqlite.New: create table: %w", err)
	}

	return &SQLite{Db: db}, nil
}

// Close releases the database handle. For ":memory:" this discards the
// roster, which is the documented end-of-process behaviour.
func (s *SQLite) Close() error {
	return s.Db.Close()
}

// ─────────────────────────────────────────────────────────────────────────────
// CreateRecord inserts a new row and returns the auto-generated ID.
//
// The type switch maps each variant onto the wide schema; columns a
// variant does not use are inserted as NULL. Prepared statements with ?
// placeholders keep user-typed text out of the SQL syntax entirely.
// ─────────────────────────────────────────────────────────────────────────────
func (s *SQLite) CreateRecord(rec types.Record) (int64, error) {
	stmt, err := s.Db.Prepare(`
		INSERT INTO records
			(role, name, telephone, email, salary, employment_type, working_hours, subject1, subject2, subject3)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return 0, fmt.Errorf("CreateRecord: prepare: %w", err)
	}
	defer stmt.Close()

	base := rec.Base()

	var (
		salary         any
		employmentType any
		workingHours   any
		subject1       any
		subject2       any
		subject3       any
	)

	switch r := rec.(type) {
	case *types.Teacher:
		salary, subject1, subject2 = r.Salary, r.Subject1, r.Subject2
	case *types.Admin:
		salary, employmentType, workingHours = r.Salary, r.EmploymentType, r.WorkingHours
	case *types.Student:
		subject1, subject2, subject3 = r.Subject1, r.Subject2, r.Subject3
	default:
		return 0, fmt.Errorf("CreateRecord: unsupported record type %T", rec)
	}

	result, err := stmt.Exec(
		string(base.Role), base.Name, base.Telephone, base.Email,
		salary, employmentType, workingHours, subject1, subject2, subject3,
	)
	if err != nil {
		return 0, fmt.Errorf("CreateRecord: exec: %w", err)
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("CreateRecord: last insert id: %w", err)
	}

	base.ID = lastID
	return lastID, nil
}

// recordColumns is the SELECT list every read shares. Scan order must
// match this list exactly, so it lives in one place.
const recordColumns = `id, role, name, telephone, email, salary, employment_type, working_hours, subject1, subject2, subject3`

// scanRecord reads one row into the concrete variant named by its role
// column. Nullable columns come back through sql.Null* wrappers; absent
// values simply leave the zero value in place.
func scanRecord(row interface{ Scan(dest ...any) error }) (types.Record, error) {
	var (
		id             int64
		role           string
		name           string
		telephone      string
		email          string
		salary         sql.NullInt64
		employmentType sql.NullString
		workingHours   sql.NullFloat64
		subject1       sql.NullString
		subject2       sql.NullString
		subject3       sql.NullString
	)

	if err := row.Scan(
		&id, &role, &name, &telephone, &email,
		&salary, &employmentType, &workingHours,
		&subject1, &subject2, &subject3,
	); err != nil {
		return nil, err
	}

	person := types.Person{
		ID:        id,
		Name:      name,
		Telephone: telephone,
		Email:     email,
		Role:      types.Role(role),
	}

	switch person.Role {
	case types.RoleTeacher:
		return &types.Teacher{
			Person:   person,
			Salary:   salary.Int64,
			Subject1: subject1.String,
			Subject2: subject2.String,
		}, nil
	case types.RoleAdmin:
		return &types.Admin{
			Person:         person,
			Salary:         salary.Int64,
			EmploymentType: employmentType.String,
			WorkingHours:   workingHours.Float64,
		}, nil
	case types.RoleStudent:
		return &types.Student{
			Person:   person,
			Subject1: subject1.String,
			Subject2: subject2.String,
			Subject3: subject3.String,
		}, nil
	default:
		return nil, fmt.Errorf("scanRecord: unknown role %q in row %d", role, id)
	}
}

// GetRecordByID fetches exactly one record matched by primary key.
// sql.ErrNoRows (surfaced by Scan, not by QueryRow itself) is mapped to
// the storage.ErrNotFound sentinel the menu layer branches on.
func (s *SQLite) GetRecordByID(id int64) (types.Record, error) {
	stmt, err := s.Db.Prepare(
		`SELECT ` + recordColumns + ` FROM records WHERE id = ? LIMIT 1`,
	)
	if err != nil {
		return nil, fmt.Errorf("GetRecordByID: prepare: %w", err)
	}
	defer stmt.Close()

	rec, err := scanRecord(stmt.QueryRow(id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("GetRecordByID: scan: %w", err)
	}

	return rec, nil
}

// GetRecords returns every record ordered by ID, which is insertion
// order because IDs are assigned monotonically.
func (s *SQLite) GetRecords() ([]types.Record, error) {
	return s.queryRecords(
		`SELECT `+recordColumns+` FROM records ORDER BY id`,
	)
}

// GetRecordsByRole filters on the role tag. COLLATE NOCASE makes the
// comparison case-insensitive inside SQLite, so "teacher" matches rows
// stored as "Teacher".
func (s *SQLite) GetRecordsByRole(role string) ([]types.Record, error) {
	return s.queryRecords(
		`SELECT `+recordColumns+` FROM records WHERE role = ? COLLATE NOCASE ORDER BY id`,
		role,
	)
}

// queryRecords runs a multi-row SELECT and scans each row through
// scanRecord. Always returns a non-nil slice so "no records" is an
// empty listing, never a nil deref waiting to happen.
func (s *SQLite) queryRecords(query string, args ...any) ([]types.Record, error) {
	stmt, err := s.Db.Prepare(query)
	if err != nil {
		return nil, fmt.Errorf("queryRecords: prepare: %w", err)
	}
	defer stmt.Close()

	rows, err := stmt.Query(args...)
	if err != nil {
		return nil, fmt.Errorf("queryRecords: query: %w", err)
	}
	defer rows.Close() // must close rows to free the DB connection

	records := make([]types.Record, 0)

	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("queryRecords: scan row: %w", err)
		}
		records = append(records, rec)
	}

	// rows.Err() captures any error that occurred during iteration —
	// separate from per-row Scan errors.
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("queryRecords: rows iteration: %w", err)
	}

	return records, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// UpdateRecord rewrites the editable columns of an existing row.
// The id and role columns are deliberately absent from the SET list:
// both are immutable for the lifetime of a record.
// ─────────────────────────────────────────────────────────────────────────────
func (s *SQLite) UpdateRecord(rec types.Record) error {
	stmt, err := s.Db.Prepare(`
		UPDATE records SET
			name = ?, telephone = ?, email = ?,
			salary = ?, employment_type = ?, working_hours = ?,
			subject1 = ?, subject2 = ?, subject3 = ?
		WHERE id = ?
	`)
	if err != nil {
		return fmt.Errorf("UpdateRecord: prepare: %w", err)
	}
	defer stmt.Close()

	base := rec.Base()

	var (
		salary         any
		employmentType any
		workingHours   any
		subject1       any
		subject2       any
		subject3       any
	)

	switch r := rec.(type) {
	case *types.Teacher:
		salary, subject1, subject2 = r.Salary, r.Subject1, r.Subject2
	case *types.Admin:
		salary, employmentType, workingHours = r.Salary, r.EmploymentType, r.WorkingHours
	case *types.Student:
		subject1, subject2, subject3 = r.Subject1, r.Subject2, r.Subject3
	default:
		return fmt.Errorf("UpdateRecord: unsupported record type %T", rec)
	}

	result, err := stmt.Exec(
		base.Name, base.Telephone, base.Email,
		salary, employmentType, workingHours,
		subject1, subject2, subject3,
		base.ID,
	)
	if err != nil {
		return fmt.Errorf("UpdateRecord: exec: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("UpdateRecord: rows affected: %w", err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}

	return nil
}

// DeleteRecordByID removes a row by primary key. The freed ID is gone
// for good — AUTOINCREMENT will not assign it to a later insert.
func (s *SQLite) DeleteRecordByID(id int64) error {
	stmt, err := s.Db.Prepare(`DELETE FROM records WHERE id = ?`)
	if err != nil {
		return fmt.Errorf("DeleteRecordByID: prepare: %w", err)
	}
	defer stmt.Close()

	result, err := stmt.Exec(id)
	if err != nil {
		return fmt.Errorf("DeleteRecordByID: exec: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("DeleteRecordByID: rows affected: %w", err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}

	return nil
}

// Package menu contains the interactive controller: a loop that renders
// the main menu, dispatches on single-character selections, and drives
// the add / view / edit / delete flows against the storage interface.
//
// DEPENDENCY INJECTION:
// ─────────────────────
// The controller receives its storage, console, and logger through
// New() rather than reaching for globals. The same pattern the HTTP
// world uses for handlers applies here: construction happens ONCE at
// startup, and every screen the loop produces works through the
// injected dependencies — which is what lets the tests run a whole
// scripted session against an in-memory store and a byte buffer.
package menu

import (
	"errors"
	"log/slog"

	"github.com/go-playground/validator/v10"

	"github.com/aanand-mishra/school-roster/internal/console"
	"github.com/aanand-mishra/school-roster/internal/storage"
	"github.com/aanand-mishra/school-roster/internal/types"
	"github.com/aanand-mishra/school-roster/internal/utils/render"
	"github.com/aanand-mishra/school-roster/internal/validation"
)

// Menu is the interactive controller. One instance runs per process.
type Menu struct {
	store    storage.Storage
	con      *console.Console
	log      *slog.Logger
	validate *validator.Validate
}

// New wires a controller to its dependencies.
func New(store storage.Storage, con *console.Console, log *slog.Logger) *Menu {
	return &Menu{
		store:    store,
		con:      con,
		log:      log,
		validate: validation.New(),
	}
}

// Run renders the main menu and dispatches until the user exits.
//
// Every iteration clears the screen first, so exactly one logical
// screen is ever visible. An unrecognised selection is reported once,
// acknowledged, and falls through to a fresh menu. End of input (a
// closed stdin) is treated as Exit so the loop can never spin.
func (m *Menu) Run() {
	for {
		m.con.Clear()
		m.con.Println("===== School Roster =====")
		m.con.Println("1. Add a record")
		m.con.Println("2. View all records")
		m.con.Println("3. View records by role")
		m.con.Println("4. Edit a record")
		m.con.Println("5. Delete a record")
		m.con.Println("0. Exit")

		choice, err := m.con.ReadLine("\nSelect an option: ")
		if err != nil {
			return
		}

		switch choice {
		case "1":
			m.addRecord()
		case "2":
			m.viewAll()
		case "3":
			m.viewByRole()
		case "4":
			m.editRecord()
		case "5":
			m.deleteRecord()
		case "0":
			m.con.Println("Goodbye.")
			return
		default:
			m.con.Printf("Unrecognised option %q.\n", choice)
			m.con.Ack()
		}
	}
}

// viewAll lists every record in insertion order, or reports an empty
// roster distinctly from an empty listing.
func (m *Menu) viewAll() {
	m.con.Clear()
	m.con.Println("===== All Records =====")

	records, err := m.store.GetRecords()
	if err != nil {
		m.reportStorageError("listing records", err)
		return
	}

	if len(records) == 0 {
		m.con.Println("There are no records yet.")
	} else {
		for _, rec := range records {
			m.con.Println(render.Line(rec))
		}
	}

	m.con.Ack()
}

// viewByRole prompts for a role tag and lists the case-insensitive
// matches. No matches is a terminal outcome of the operation, reported
// once — not retried.
func (m *Menu) viewByRole() {
	m.con.Clear()
	m.con.Println("===== Records by Role =====")

	role := m.con.ReadNonEmpty("Role (Teacher/Admin/Student): ")

	records, err := m.store.GetRecordsByRole(role)
	if err != nil {
		m.reportStorageError("filtering records", err)
		return
	}

	if len(records) == 0 {
		m.con.Printf("No records found with role %q.\n", role)
	} else {
		for _, rec := range records {
			m.con.Println(render.Line(rec))
		}
	}

	m.con.Ack()
}

// deleteRecord lists the roster, asks for a target ID, and removes the
// record only after an explicit y/Y confirmation. Any other response
// cancels and leaves the roster unchanged.
func (m *Menu) deleteRecord() {
	rec, ok := m.selectRecord("Delete a Record")
	if !ok {
		return
	}

	m.con.Println(render.Line(rec))

	if !m.con.Confirm("Delete this record? (y/N): ") {
		m.con.Println("Deletion cancelled.")
		m.con.Ack()
		return
	}

	id := rec.Base().ID
	if err := m.store.DeleteRecordByID(id); err != nil {
		m.reportStorageError("deleting record", err)
		return
	}

	m.log.Info("record deleted",
		slog.Int64("id", id),
		slog.String("role", string(rec.Base().Role)))

	m.con.Printf("Record #%d deleted.\n", id)
	m.con.Ack()
}

// selectRecord implements the shared front half of the edit and delete
// flows: require a non-empty roster, list it, prompt for an ID, and
// look the record up. The boolean is false when the flow should return
// to the main menu (empty roster, unknown ID, or a storage failure —
// each already reported to the user).
func (m *Menu) selectRecord(title string) (types.Record, bool) {
	m.con.Clear()
	m.con.Println("===== " + title + " =====")

	records, err := m.store.GetRecords()
	if err != nil {
		m.reportStorageError("listing records", err)
		return nil, false
	}

	if len(records) == 0 {
		m.con.Println("There are no records yet.")
		m.con.Ack()
		return nil, false
	}

	for _, rec := range records {
		m.con.Println(render.Line(rec))
	}

	id := m.con.ReadInt("\nEnter the record ID: ")

	rec, err := m.store.GetRecordByID(id)
	if errors.Is(err, storage.ErrNotFound) {
		m.con.Printf("No record found with ID %d.\n", id)
		m.con.Ack()
		return nil, false
	}
	if err != nil {
		m.reportStorageError("looking up record", err)
		return nil, false
	}

	return rec, true
}

// checkRecord runs the whole-record validator over a freshly built or
// freshly edited record. The interactive prompts enforce the same rules
// field by field, so a failure here means a bug — but a corrupt record
// must never reach storage, so the result screen reports it and the
// operation is abandoned.
func (m *Menu) checkRecord(rec types.Record) bool {
	err := m.validate.Struct(rec)
	if err == nil {
		return true
	}

	var validateErrs validator.ValidationErrors
	if errors.As(err, &validateErrs) {
		m.con.Println("Invalid record: " + render.ValidationError(validateErrs))
	} else {
		m.con.Println("Invalid record: " + err.Error())
	}
	m.con.Ack()
	return false
}

// reportStorageError logs the failure with context and tells the user
// in one line. Storage errors are not retried; control returns to the
// main menu.
func (m *Menu) reportStorageError(during string, err error) {
	m.log.Error("storage error",
		slog.String("during", during),
		slog.String("error", err.Error()))

	m.con.Println("Something went wrong while " + during + ". See the log for details.")
	m.con.Ack()
}

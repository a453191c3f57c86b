package menu_test

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/aanand-mishra/school-roster/internal/config"
	"github.com/aanand-mishra/school-roster/internal/console"
	"github.com/aanand-mishra/school-roster/internal/menu"
	"github.com/aanand-mishra/school-roster/internal/storage"
	"github.com/aanand-mishra/school-roster/internal/storage/sqlite"
	"github.com/aanand-mishra/school-roster/internal/types"
)

// runSession drives a whole interactive session: the lines are exactly
// the keystrokes a user would type, in order, and the returned buffer
// holds everything they would have seen. The store is returned so tests
// can assert on the roster after the session ends.
func runSession(t *testing.T, lines ...string) (string, storage.Storage) {
	t.Helper()

	store, err := sqlite.New(&config.Config{StoragePath: ":memory:"})
	if err != nil {
		t.Fatalf("open in-memory store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	var out bytes.Buffer
	con := console.New(strings.NewReader(strings.Join(lines, "\n")+"\n"), &out)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	menu.New(store, con, log).Run()

	return out.String(), store
}

// The full round trip from the acceptance scenario: add a Teacher,
// see her listed, delete her with confirmation, see the empty roster.
func TestRoundTripAddListDelete(t *testing.T) {
	out, store := runSession(t,
		"1",             // main menu: add
		"1",             // role: teacher
		"Ana",           // name
		"1112223333",    // telephone
		"ana@gmail.com", // email
		"50000",         // salary
		"Math",          // subject 1
		"Physics",       // subject 2
		"",              // acknowledge the confirmation
		"2",             // main menu: view all
		"",              // acknowledge
		"5",             // main menu: delete
		"1",             // target ID
		"y",             // confirm
		"",              // acknowledge
		"2",             // main menu: view all
		"",              // acknowledge
		"0",             // exit
	)

	wantLine := "#1 [Teacher] Ana | tel 1112223333 | ana@gmail.com | salary $50,000 | subjects: Math, Physics"
	if !strings.Contains(out, wantLine) {
		t.Errorf("listing missing %q\nsession output:\n%s", wantLine, out)
	}
	if !strings.Contains(out, "Teacher added with ID 1.") {
		t.Error("add confirmation missing")
	}
	if !strings.Contains(out, "Record #1 deleted.") {
		t.Error("delete confirmation missing")
	}
	if !strings.Contains(out, "There are no records yet.") {
		t.Error("empty-roster message missing after delete")
	}

	records, err := store.GetRecords()
	if err != nil {
		t.Fatalf("get records: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("roster has %d records after delete, want 0", len(records))
	}
}

// Confirmation with anything but y/Y must leave the roster unchanged.
func TestDeleteCancelledKeepsRecord(t *testing.T) {
	out, store := runSession(t,
		"1", "3", // add student
		"Cara", "777", "cara@gmail.com",
		"History", "Art", "Music",
		"",  // acknowledge
		"5", // delete
		"1", // target ID
		"n", // do NOT confirm
		"",  // acknowledge
		"0", // exit
	)

	if !strings.Contains(out, "Deletion cancelled.") {
		t.Error("cancellation message missing")
	}

	records, err := store.GetRecords()
	if err != nil {
		t.Fatalf("get records: %v", err)
	}
	if len(records) != 1 {
		t.Errorf("roster has %d records after cancelled delete, want 1", len(records))
	}
}

// Editing with blank input on every field keeps every value; typing a
// new name replaces just the name.
func TestEditBlankKeepsCurrent(t *testing.T) {
	_, store := runSession(t,
		"1", "2", // add admin
		"Bob", "555", "bob@gmail.com",
		"60000", "part-time", "20.5",
		"",       // acknowledge
		"4",      // edit
		"1",      // target ID
		"Robert", // new name
		"",       // keep telephone
		"",       // keep email
		"",       // keep salary
		"",       // keep employment type
		"",       // keep working hours
		"",       // acknowledge
		"0",      // exit
	)

	rec, err := store.GetRecordByID(1)
	if err != nil {
		t.Fatalf("fetch edited record: %v", err)
	}

	base := rec.Base()
	if base.Name != "Robert" {
		t.Errorf("name = %q, want %q", base.Name, "Robert")
	}
	if base.Telephone != "555" {
		t.Errorf("telephone = %q, want unchanged %q", base.Telephone, "555")
	}
	if base.Email != "bob@gmail.com" {
		t.Errorf("email = %q, want unchanged %q", base.Email, "bob@gmail.com")
	}

	admin, ok := rec.(*types.Admin)
	if !ok {
		t.Fatalf("edited record has type %T", rec)
	}
	if admin.Salary != 60000 {
		t.Errorf("salary = %d, want unchanged 60000", admin.Salary)
	}
	if admin.EmploymentType != types.EmploymentPartTime {
		t.Errorf("employment type = %q, want unchanged %q", admin.EmploymentType, types.EmploymentPartTime)
	}
	if admin.WorkingHours != 20.5 {
		t.Errorf("working hours = %v, want unchanged 20.5", admin.WorkingHours)
	}
}

// Filtering is case-insensitive on the role tag.
func TestViewByRoleCaseInsensitive(t *testing.T) {
	out, _ := runSession(t,
		"1", "1", // add teacher
		"Ana", "1112223333", "ana@gmail.com",
		"50000", "Math", "Physics",
		"",        // acknowledge
		"3",       // view by role
		"teacher", // lowercase filter
		"",        // acknowledge
		"3",       // view by role again
		"Admin",   // no matches
		"",        // acknowledge
		"0",       // exit
	)

	if !strings.Contains(out, "#1 [Teacher] Ana") {
		t.Errorf("lowercase filter did not match:\n%s", out)
	}
	if !strings.Contains(out, `No records found with role "Admin".`) {
		t.Error("empty filter result not reported")
	}
}

func TestUnrecognisedMenuOption(t *testing.T) {
	out, _ := runSession(t,
		"9", // not a menu option
		"",  // acknowledge
		"0", // exit
	)

	if !strings.Contains(out, `Unrecognised option "9".`) {
		t.Error("invalid selection not reported")
	}
	// The menu must come back after the error.
	if strings.Count(out, "===== School Roster =====") != 2 {
		t.Error("main menu did not redraw after invalid selection")
	}
}

func TestUnrecognisedRoleReturnsToMenu(t *testing.T) {
	out, store := runSession(t,
		"1", // add
		"4", // not a role option
		"",  // acknowledge
		"0", // exit
	)

	if !strings.Contains(out, `Unrecognised role option "4".`) {
		t.Error("invalid role selection not reported")
	}

	records, err := store.GetRecords()
	if err != nil {
		t.Fatalf("get records: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("invalid role selection created %d records", len(records))
	}
}

// Edit and delete demand an existing roster and an existing ID.
func TestEditNotFoundPaths(t *testing.T) {
	out, _ := runSession(t,
		"4", // edit on an empty roster
		"",  // acknowledge
		"1", "1", // add teacher
		"Ana", "1112223333", "ana@gmail.com",
		"50000", "Math", "Physics",
		"",   // acknowledge
		"4",  // edit
		"99", // unknown ID
		"",   // acknowledge
		"0",  // exit
	)

	if !strings.Contains(out, "There are no records yet.") {
		t.Error("empty-roster message missing for edit")
	}
	if !strings.Contains(out, "No record found with ID 99.") {
		t.Error("unknown-ID message missing for edit")
	}
}

// Invalid keystrokes inside the add flow are re-solicited, never fatal:
// bad telephone and email attempts are retried until valid input lands.
func TestAddRetriesInvalidFields(t *testing.T) {
	out, store := runSession(t,
		"1", "1", // add teacher
		"Ana",
		"12a45",       // telephone: letters rejected
		"1112223333",  // telephone: accepted
		"a@yahoo.com", // email: wrong domain
		"ana@gmail.com",
		"lots",  // salary: not a number
		"50000", // salary: accepted
		"Math", "Physics",
		"",  // acknowledge
		"0", // exit
	)

	if !strings.Contains(out, "Telephone must contain only digits.") {
		t.Error("telephone rejection message missing")
	}
	if !strings.Contains(out, "Email must end with @gmail.com.") {
		t.Error("email rejection message missing")
	}
	if !strings.Contains(out, "Please enter a whole number.") {
		t.Error("salary rejection message missing")
	}

	records, err := store.GetRecords()
	if err != nil {
		t.Fatalf("get records: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("roster has %d records, want 1", len(records))
	}
	if got := records[0].Base().Telephone; got != "1112223333" {
		t.Errorf("stored telephone = %q, want the retried value", got)
	}
}

package menu

import (
	"log/slog"

	"github.com/aanand-mishra/school-roster/internal/types"
)

// addRecord runs the Add flow: pick the record kind, collect the shared
// identity fields through the validated helpers, then the kind-specific
// fields, and append the result to the roster.
//
// Subjects are NOT validated here — a record can be added before its
// subjects are settled. The edit flow is where they become mandatory.
func (m *Menu) addRecord() {
	m.con.Clear()
	m.con.Println("===== Add a Record =====")
	m.con.Println("1. Teacher")
	m.con.Println("2. Admin")
	m.con.Println("3. Student")

	choice, err := m.con.ReadLine("\nSelect a role: ")
	if err != nil {
		return
	}

	var role types.Role
	switch choice {
	case "1":
		role = types.RoleTeacher
	case "2":
		role = types.RoleAdmin
	case "3":
		role = types.RoleStudent
	default:
		// Invalid role selection is reported once and sends the user
		// back to the main menu — no retry within this screen.
		m.con.Printf("Unrecognised role option %q.\n", choice)
		m.con.Ack()
		return
	}

	// Shared identity fields, each behind its retry-until-valid helper.
	person := types.Person{
		Name:      m.con.ReadNonEmpty("Name: "),
		Telephone: m.con.ReadTelephone("Telephone: "),
		Email:     m.con.ReadGmail("Email (@gmail.com): "),
		Role:      role,
	}

	var rec types.Record
	switch role {
	case types.RoleTeacher:
		rec = &types.Teacher{
			Person:   person,
			Salary:   m.con.ReadInt("Salary: "),
			Subject1: m.readSubject("First subject: "),
			Subject2: m.readSubject("Second subject: "),
		}
	case types.RoleAdmin:
		rec = &types.Admin{
			Person:         person,
			Salary:         m.con.ReadInt("Salary: "),
			EmploymentType: m.con.ReadEmploymentType("Employment type (Full-time/Part-time): "),
			WorkingHours:   m.con.ReadFloat("Working hours per week: "),
		}
	case types.RoleStudent:
		rec = &types.Student{
			Person:   person,
			Subject1: m.readSubject("First subject: "),
			Subject2: m.readSubject("Second subject: "),
			Subject3: m.readSubject("Third subject: "),
		}
	}

	if !m.checkRecord(rec) {
		return
	}

	id, err := m.store.CreateRecord(rec)
	if err != nil {
		m.reportStorageError("adding record", err)
		return
	}

	m.log.Info("record created",
		slog.Int64("id", id),
		slog.String("role", string(role)))

	m.con.Printf("%s added with ID %d.\n", role, id)
	m.con.Ack()
}

// readSubject accepts anything, including a blank line. Subjects are
// free-form on creation.
func (m *Menu) readSubject(prompt string) string {
	line, err := m.con.ReadLine(prompt)
	if err != nil {
		return ""
	}
	return line
}

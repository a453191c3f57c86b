package menu

import (
	"log/slog"

	"github.com/aanand-mishra/school-roster/internal/types"
	"github.com/aanand-mishra/school-roster/internal/utils/render"
)

// editRecord runs the Edit flow: select a record, then dispatch to the
// variant-specific field prompts via the type switch below. The record
// ID and role are never editable.
//
// Every field uses the blank-keeps-current convention, numeric fields
// included: pressing Enter leaves the stored value in place, anything
// else must satisfy the field's grammar or the prompt repeats. The one
// exception is subjects — blank is only accepted when a current value
// exists, so a subject left empty at creation must be filled in here.
func (m *Menu) editRecord() {
	rec, ok := m.selectRecord("Edit a Record")
	if !ok {
		return
	}

	m.con.Clear()
	m.con.Println("===== Edit Record =====")
	m.con.Println(render.Line(rec))
	m.con.Println("Press Enter on any field to keep its current value.")

	m.editShared(rec.Base())

	switch r := rec.(type) {
	case *types.Teacher:
		r.Salary = m.con.ReadIntDefault(prompt("Salary", render.Money(r.Salary)), r.Salary)
		r.Subject1 = m.con.ReadNonEmptyDefault(prompt("First subject", r.Subject1), r.Subject1)
		r.Subject2 = m.con.ReadNonEmptyDefault(prompt("Second subject", r.Subject2), r.Subject2)
	case *types.Admin:
		r.Salary = m.con.ReadIntDefault(prompt("Salary", render.Money(r.Salary)), r.Salary)
		r.EmploymentType = m.con.ReadEmploymentTypeDefault(
			prompt("Employment type", r.EmploymentType), r.EmploymentType)
		r.WorkingHours = m.con.ReadFloatDefault(
			prompt("Working hours per week", render.Hours(r.WorkingHours)), r.WorkingHours)
	case *types.Student:
		r.Subject1 = m.con.ReadNonEmptyDefault(prompt("First subject", r.Subject1), r.Subject1)
		r.Subject2 = m.con.ReadNonEmptyDefault(prompt("Second subject", r.Subject2), r.Subject2)
		r.Subject3 = m.con.ReadNonEmptyDefault(prompt("Third subject", r.Subject3), r.Subject3)
	}

	if !m.checkRecord(rec) {
		return
	}

	if err := m.store.UpdateRecord(rec); err != nil {
		m.reportStorageError("updating record", err)
		return
	}

	m.log.Info("record updated",
		slog.Int64("id", rec.Base().ID),
		slog.String("role", string(rec.Base().Role)))

	m.con.Println("Record updated:")
	m.con.Println(render.Line(rec))
	m.con.Ack()
}

// editShared prompts for the fields every record kind carries.
func (m *Menu) editShared(p *types.Person) {
	p.Name = m.con.ReadNonEmptyDefault(prompt("Name", p.Name), p.Name)
	p.Telephone = m.con.ReadTelephoneDefault(prompt("Telephone", p.Telephone), p.Telephone)
	p.Email = m.con.ReadGmailDefault(prompt("Email", p.Email), p.Email)
}

// prompt renders an edit prompt with the current value visible, so the
// user knows what pressing Enter will keep.
func prompt(label, current string) string {
	if current == "" {
		return label + ": "
	}
	return label + " [" + current + "]: "
}

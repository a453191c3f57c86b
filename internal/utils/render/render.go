// Package render provides helpers for writing consistent console output.
//
// Every screen in this application prints records and error messages.
// Rather than repeating the same formatting in every menu handler, we
// centralise it here: one line per record, the same monetary format for
// every salary, the same shape for every validation failure.
package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/aanand-mishra/school-roster/internal/types"
)

// Line renders a record as a single descriptive line:
// identifier, role, name, telephone, email, then the variant-specific
// fields. Salaries get monetary formatting, subject lists are
// comma-joined, working hours print with two decimals.
//
//	#3 [Teacher] Ana | tel 1112223333 | ana@gmail.com | salary $50,000 | subjects: Math, Physics
func Line(rec types.Record) string {
	base := rec.Base()

	var b strings.Builder
	fmt.Fprintf(&b, "#%d [%s] %s | tel %s | %s",
		base.ID, base.Role, base.Name, base.Telephone, base.Email)

	switch r := rec.(type) {
	case *types.Teacher:
		fmt.Fprintf(&b, " | salary %s | subjects: %s",
			Money(r.Salary), joinSubjects(r.Subject1, r.Subject2))
	case *types.Admin:
		fmt.Fprintf(&b, " | salary %s | %s | %.2f hrs/week",
			Money(r.Salary), r.EmploymentType, r.WorkingHours)
	case *types.Student:
		fmt.Fprintf(&b, " | subjects: %s",
			joinSubjects(r.Subject1, r.Subject2, r.Subject3))
	}

	return b.String()
}

// Money formats an integer amount with a currency sign and thousands
// separators: 50000 → "$50,000", -1234567 → "-$1,234,567".
func Money(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	digits := strconv.FormatInt(amount, 10)

	// Insert a comma before every group of three digits counted from
	// the right. len%3 gives the size of the leading group.
	var groups []string
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}
	groups = append([]string{digits}, groups...)

	return sign + "$" + strings.Join(groups, ",")
}

// Hours formats a weekly working-hours value with two decimals, the
// same precision Line uses.
func Hours(h float64) string {
	return strconv.FormatFloat(h, 'f', 2, 64)
}

// joinSubjects comma-joins the non-empty subjects. Subjects can be
// blank on freshly added records (they are only required on edit), and
// printing "Math, , " would look broken.
func joinSubjects(subjects ...string) string {
	kept := make([]string, 0, len(subjects))
	for _, s := range subjects {
		if s != "" {
			kept = append(kept, s)
		}
	}
	if len(kept) == 0 {
		return "(none)"
	}
	return strings.Join(kept, ", ")
}

// ValidationError converts a slice of validator.FieldError values into
// a single human-readable message.
//
// The go-playground/validator package returns one FieldError per
// failing struct field. We convert each to a plain English sentence and
// join them with ", " so the user sees one descriptive line.
func ValidationError(errs validator.ValidationErrors) string {
	var errMessages []string

	for _, e := range errs {
		switch e.ActualTag() {
		case "required":
			errMessages = append(errMessages,
				fmt.Sprintf("field %s is required", e.Field()))
		case "gmail":
			errMessages = append(errMessages,
				fmt.Sprintf("field %s must be a @gmail.com address", e.Field()))
		case "telephone":
			errMessages = append(errMessages,
				fmt.Sprintf("field %s must be a digit-only telephone number", e.Field()))
		case "oneof":
			errMessages = append(errMessages,
				fmt.Sprintf("field %s must be one of: %s", e.Field(), e.Param()))
		// Catch-all for any other validation tag (min, max, len, etc.)
		default:
			errMessages = append(errMessages,
				fmt.Sprintf("field %s is invalid", e.Field()))
		}
	}

	return strings.Join(errMessages, ", ")
}

// Package types holds all shared data structures (models) used across
// the application. Keeping them in one place prevents import cycles —
// the menu, storage, and rendering layers can all import types without
// depending on each other.
package types

// Role tags a record as one of the three kinds the roster knows about.
//
// It is a "typed string": the underlying representation is a plain
// string (easy to store and print), but the distinct type stops a bare
// string from being passed where a Role is expected.
type Role string

// The closed set of roles. A record's role is assigned at creation and
// never changes for the lifetime of that record.
const (
	RoleTeacher Role = "Teacher"
	RoleAdmin   Role = "Admin"
	RoleStudent Role = "Student"
)

// Canonical employment types for Admin records. Input is matched
// case-insensitively and normalised to exactly these strings.
const (
	EmploymentFullTime = "Full-time"
	EmploymentPartTime = "Part-time"
)

// Person carries the identity and contact fields shared by every record
// kind. The three variants embed it, so a Teacher "is a" Person plus its
// own fields.
//
// Struct tags serve two purposes:
//
//  1. json:"..."  — controls how the field appears when encoded to JSON
//     (useful for structured log output and debugging dumps).
//
//  2. validate:"..." — rules checked by the go-playground/validator
//     package. "required" means non-zero / non-empty; "telephone" and
//     "gmail" are custom tags registered in internal/validation.
type Person struct {
	// ID is assigned by the storage layer in strictly increasing order
	// starting at 1. IDs are never reused, even after a deletion.
	ID int64 `json:"id"`

	Name      string `json:"name"      validate:"required"`
	Telephone string `json:"telephone" validate:"required,telephone"`
	Email     string `json:"email"     validate:"required,gmail"`

	// Role is fixed at creation. The edit flows never touch it.
	Role Role `json:"role" validate:"required,oneof=Teacher Admin Student"`
}

// Teacher is a salaried record with two taught subjects.
//
// Subjects are accepted as-is when a teacher is first added; the edit
// flow requires them to be non-empty. That asymmetry is deliberate —
// creation favours speed of entry, editing favours completeness.
type Teacher struct {
	Person
	Salary   int64  `json:"salary"`
	Subject1 string `json:"subject1"`
	Subject2 string `json:"subject2"`
}

// Admin is a salaried record with an employment type and weekly hours.
type Admin struct {
	Person
	Salary         int64   `json:"salary"`
	EmploymentType string  `json:"employmentType" validate:"required,oneof=Full-time Part-time"`
	WorkingHours   float64 `json:"workingHours"`
}

// Student is an unsalaried record enrolled in three subjects.
type Student struct {
	Person
	Subject1 string `json:"subject1"`
	Subject2 string `json:"subject2"`
	Subject3 string `json:"subject3"`
}

// Record is the interface the three variants satisfy. Code that doesn't
// care which kind it is holding (the storage layer, the list screens)
// works entirely through this interface; code that does care type-switches
// on the concrete type.
//
// There is no inheritance hierarchy here — embedding Person gives each
// variant the Base() method for free via the shared pointer receiver.
type Record interface {
	// Base returns the embedded Person so shared fields can be read and
	// edited without knowing the concrete variant.
	Base() *Person
}

// Base implements Record for every struct that embeds Person.
func (p *Person) Base() *Person { return p }

// Compile-time proof that all three variants satisfy Record.
// If a variant ever stops embedding Person this line fails to build.
var (
	_ Record = (*Teacher)(nil)
	_ Record = (*Admin)(nil)
	_ Record = (*Student)(nil)
)

package validation

import (
	"testing"

	"github.com/aanand-mishra/school-roster/internal/types"
)

func TestTelephone(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "plain_digits", input: "1234567", wantErr: false},
		{name: "single_digit", input: "7", wantErr: false},
		{name: "letter_in_middle", input: "12a45", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "spaces", input: "123 456", wantErr: true},
		{name: "plus_prefix", input: "+4912345", wantErr: true},
		{name: "max_int64", input: "9223372036854775807", wantErr: false},
		{name: "overflows_int64", input: "9223372036854775808", wantErr: true},
		{name: "25_digits", input: "1111111111111111111111111", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Telephone(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("Telephone(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestGmailAddress(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "lowercase", input: "a@gmail.com", wantErr: false},
		{name: "uppercase_suffix", input: "A@GMAIL.COM", wantErr: false},
		{name: "mixed_case", input: "Ana.B@Gmail.Com", wantErr: false},
		{name: "surrounding_spaces", input: "  a@gmail.com  ", wantErr: false},
		{name: "truncated_tld", input: "a@gmail.co", wantErr: true},
		{name: "other_provider", input: "a@yahoo.com", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "only_spaces", input: "   ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := GmailAddress(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("GmailAddress(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestEmploymentType(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "lowercase_full", input: "full-time", want: "Full-time"},
		{name: "uppercase_part", input: "PART-TIME", want: "Part-time"},
		{name: "canonical_full", input: "Full-time", want: "Full-time"},
		{name: "trimmed", input: "  part-time ", want: "Part-time"},
		{name: "missing_hyphen", input: "fulltime", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "unknown", input: "contractor", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EmploymentType(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("EmploymentType(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("EmploymentType(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// TestNewCustomTags proves the custom tags reach the struct validator:
// a record violating the telephone and gmail grammars must fail
// Struct(), and a clean record must pass.
func TestNewCustomTags(t *testing.T) {
	v := New()

	valid := &types.Teacher{
		Person: types.Person{
			Name:      "Ana",
			Telephone: "1112223333",
			Email:     "ana@gmail.com",
			Role:      types.RoleTeacher,
		},
		Salary: 50000,
	}
	if err := v.Struct(valid); err != nil {
		t.Fatalf("valid record failed validation: %v", err)
	}

	invalid := &types.Teacher{
		Person: types.Person{
			Name:      "Ana",
			Telephone: "12a45",
			Email:     "ana@yahoo.com",
			Role:      types.RoleTeacher,
		},
	}
	if err := v.Struct(invalid); err == nil {
		t.Fatal("record with bad telephone and email passed validation")
	}
}

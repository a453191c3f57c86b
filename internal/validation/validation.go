// Package validation contains the pure field validators shared by the
// interactive prompts and the whole-record checks.
//
// SEPARATION OF CONCERNS:
// ───────────────────────
// The console layer owns the "prompt, read, retry" loop; this package
// owns the grammar of each field. Keeping the grammars here means they
// are plain functions — no I/O — and can be unit-tested directly,
// while the same rules are also registered as custom struct tags with
// go-playground/validator so a whole record can be checked in one call
// before it is stored.
package validation

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/aanand-mishra/school-roster/internal/types"
)

// gmailSuffix is the only accepted email domain. The match is
// case-insensitive but the stored address keeps its original casing.
const gmailSuffix = "@gmail.com"

// Telephone accepts strings made entirely of decimal digits that also
// fit in a signed 64-bit integer. Digit-only is not enough on its own:
// a 25-digit string is all digits but overflows int64, and the storage
// layer treats telephone numbers as integer magnitudes.
func Telephone(s string) error {
	if s == "" {
		return errors.New("telephone must not be empty")
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return errors.New("telephone must contain only digits")
		}
	}
	if _, err := strconv.ParseInt(s, 10, 64); err != nil {
		return errors.New("telephone number is too long")
	}
	return nil
}

// GmailAddress accepts addresses whose trimmed form ends in @gmail.com,
// matched case-insensitively. Everything before the suffix is left
// alone — "A.B@GMAIL.COM" is valid and stored exactly as typed.
func GmailAddress(s string) error {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return errors.New("email must not be empty")
	}
	if !strings.HasSuffix(strings.ToLower(trimmed), gmailSuffix) {
		return fmt.Errorf("email must end with %s", gmailSuffix)
	}
	return nil
}

// EmploymentType matches the input case-insensitively against the two
// canonical employment types and returns the canonical casing, so
// "full-time" and "PART-TIME" are accepted but stored as "Full-time"
// and "Part-time". Anything else (including "fulltime") is rejected.
func EmploymentType(s string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case strings.ToLower(types.EmploymentFullTime):
		return types.EmploymentFullTime, nil
	case strings.ToLower(types.EmploymentPartTime):
		return types.EmploymentPartTime, nil
	default:
		return "", fmt.Errorf("employment type must be %s or %s",
			types.EmploymentFullTime, types.EmploymentPartTime)
	}
}

// New returns a *validator.Validate with the roster's custom tags
// registered:
//
//	telephone — digit-only, int64-sized (Telephone above)
//	gmail     — @gmail.com suffix (GmailAddress above)
//
// Build one per process and reuse it; the validator caches struct
// metadata internally.
func New() *validator.Validate {
	v := validator.New()

	// RegisterValidation adapts our error-returning functions to the
	// boolean signature the validator expects. The error text is
	// reconstructed per-tag in utils/render.
	v.RegisterValidation("telephone", func(fl validator.FieldLevel) bool {
		return Telephone(fl.Field().String()) == nil
	})
	v.RegisterValidation("gmail", func(fl validator.FieldLevel) bool {
		return GmailAddress(fl.Field().String()) == nil
	})

	return v
}

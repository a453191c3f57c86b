// Package console owns every interaction with the terminal: prompting,
// reading lines, the retry-until-valid loops, and the "one screen at a
// time" clearing contract.
//
// TESTABILITY:
// ────────────
// A Console is built from an io.Reader and an io.Writer, not from
// os.Stdin/os.Stdout directly. Tests construct one over a strings.Reader
// scripted with the exact keystrokes a user would type and a
// bytes.Buffer capturing what they would see. Only NewTerminal binds to
// the real terminal and emits the ANSI clear sequence; everywhere else
// Clear is a no-op, which keeps the clear-before-draw contract a
// behaviour of the controller rather than of the tty.
//
// Every Read* helper loops until its input is valid — there is no retry
// limit, matching the interactive contract that bad input is always
// re-solicited. The loops do terminate when the input stream ends, so a
// closed stdin (or an exhausted test script) cannot spin forever.
package console

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/aanand-mishra/school-roster/internal/validation"
)

// ansiClear moves the cursor home and wipes the screen. Supported by
// every terminal this tool is expected to run in.
const ansiClear = "\033[H\033[2J"

// Console couples a line-oriented input source with an output sink.
type Console struct {
	in       *bufio.Scanner
	out      io.Writer
	terminal bool // emit ANSI clear sequences on Clear
}

// New returns a Console over arbitrary reader/writer pairs. Clear
// resets nothing — callers that hand in buffers (tests) see every
// screen appended in order.
func New(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// NewTerminal returns a Console bound to the process terminal.
func NewTerminal() *Console {
	c := New(os.Stdin, os.Stdout)
	c.terminal = true
	return c
}

// Clear erases the visible screen so the next render starts clean.
func (c *Console) Clear() {
	if c.terminal {
		fmt.Fprint(c.out, ansiClear)
	}
}

// Printf and Println write to the console's output sink. The menu layer
// never touches the writer directly.
func (c *Console) Printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

func (c *Console) Println(args ...any) {
	fmt.Fprintln(c.out, args...)
}

// ReadLine prints the prompt and returns the next input line with
// surrounding whitespace trimmed. io.EOF is returned when the input
// stream is exhausted; the retry helpers below treat that as "stop
// asking", and the menu loop treats it as Exit.
func (c *Console) ReadLine(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(c.in.Text()), nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Retry helpers. Each one is "prompt, read, validate, repeat":
// the validation rules live in internal/validation, the loop lives here.
//
// The *Default variants implement the blank-keeps-current convention
// used by every edit flow: pressing Enter on an empty line keeps the
// existing value. The convention is uniform across string, enumerated,
// and numeric fields.
// ─────────────────────────────────────────────────────────────────────────────

// ReadNonEmpty re-prompts until the input has non-whitespace content.
func (c *Console) ReadNonEmpty(prompt string) string {
	return c.ReadNonEmptyDefault(prompt, "")
}

// ReadNonEmptyDefault keeps current on blank input when current is
// itself non-empty; otherwise blank input is rejected and re-prompted.
func (c *Console) ReadNonEmptyDefault(prompt, current string) string {
	for {
		line, err := c.ReadLine(prompt)
		if err != nil {
			return current
		}
		if line != "" {
			return line
		}
		if current != "" {
			return current
		}
		c.Println("Input must not be empty.")
	}
}

// ReadInt re-prompts until the input parses as a signed integer.
func (c *Console) ReadInt(prompt string) int64 {
	for {
		line, err := c.ReadLine(prompt)
		if err != nil {
			return 0
		}
		n, perr := strconv.ParseInt(line, 10, 64)
		if perr == nil {
			return n
		}
		c.Println("Please enter a whole number.")
	}
}

// ReadIntDefault is ReadInt with blank-keeps-current semantics.
func (c *Console) ReadIntDefault(prompt string, current int64) int64 {
	for {
		line, err := c.ReadLine(prompt)
		if err != nil || line == "" {
			return current
		}
		n, perr := strconv.ParseInt(line, 10, 64)
		if perr == nil {
			return n
		}
		c.Println("Please enter a whole number.")
	}
}

// ReadFloat re-prompts until the input parses as a floating-point
// number (standard grammar: optional sign, decimal point).
func (c *Console) ReadFloat(prompt string) float64 {
	for {
		line, err := c.ReadLine(prompt)
		if err != nil {
			return 0
		}
		f, perr := strconv.ParseFloat(line, 64)
		if perr == nil {
			return f
		}
		c.Println("Please enter a number.")
	}
}

// ReadFloatDefault is ReadFloat with blank-keeps-current semantics.
func (c *Console) ReadFloatDefault(prompt string, current float64) float64 {
	for {
		line, err := c.ReadLine(prompt)
		if err != nil || line == "" {
			return current
		}
		f, perr := strconv.ParseFloat(line, 64)
		if perr == nil {
			return f
		}
		c.Println("Please enter a number.")
	}
}

// ReadTelephone re-prompts until the input is a digit-only string that
// fits a 64-bit signed integer.
func (c *Console) ReadTelephone(prompt string) string {
	return c.ReadTelephoneDefault(prompt, "")
}

// ReadTelephoneDefault keeps current on blank input.
func (c *Console) ReadTelephoneDefault(prompt, current string) string {
	for {
		line, err := c.ReadLine(prompt)
		if err != nil {
			return current
		}
		if line == "" && current != "" {
			return current
		}
		if verr := validation.Telephone(line); verr != nil {
			c.Println(capitalise(verr.Error()) + ".")
			continue
		}
		return line
	}
}

// ReadGmail re-prompts until the input ends in @gmail.com
// (case-insensitive suffix, original casing preserved).
func (c *Console) ReadGmail(prompt string) string {
	return c.ReadGmailDefault(prompt, "")
}

// ReadGmailDefault keeps current on blank input.
func (c *Console) ReadGmailDefault(prompt, current string) string {
	for {
		line, err := c.ReadLine(prompt)
		if err != nil {
			return current
		}
		if line == "" && current != "" {
			return current
		}
		if verr := validation.GmailAddress(line); verr != nil {
			c.Println(capitalise(verr.Error()) + ".")
			continue
		}
		return line
	}
}

// ReadEmploymentType re-prompts until the input matches Full-time or
// Part-time case-insensitively, and returns the canonical casing.
func (c *Console) ReadEmploymentType(prompt string) string {
	return c.ReadEmploymentTypeDefault(prompt, "")
}

// ReadEmploymentTypeDefault keeps current on blank input.
func (c *Console) ReadEmploymentTypeDefault(prompt, current string) string {
	for {
		line, err := c.ReadLine(prompt)
		if err != nil {
			return current
		}
		if line == "" && current != "" {
			return current
		}
		canonical, verr := validation.EmploymentType(line)
		if verr == nil {
			return canonical
		}
		c.Println(capitalise(verr.Error()) + ".")
	}
}

// Confirm returns true only for "y" or "Y". Anything else — including
// "yes" — counts as a no, because destructive actions should require
// the exact keystroke they advertise.
func (c *Console) Confirm(prompt string) bool {
	line, err := c.ReadLine(prompt)
	if err != nil {
		return false
	}
	return line == "y" || line == "Y"
}

// Ack blocks until the user presses Enter, so a result screen stays
// visible until they are done reading it.
func (c *Console) Ack() {
	c.ReadLine("\nPress Enter to continue...")
}

// capitalise upper-cases the first byte of a validation message so it
// reads as a sentence on screen. Messages are ASCII by construction.
func capitalise(s string) string {
	if s == "" {
		return s
	}
	if s[0] >= 'a' && s[0] <= 'z' {
		return string(s[0]-'a'+'A') + s[1:]
	}
	return s
}

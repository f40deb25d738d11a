package schema

import (
	"fmt"
	"regexp"
)

// Version selects one supported Rabobank export layout.
type Version string

const (
	Rabo2012 Version = "rabo2012"
	Rabo2013 Version = "rabo2013"
	Rabo2017 Version = "rabo2017"
)

// Field describes one expected column of an export line.
type Field struct {
	Name   string
	MaxLen int    // 0 means unconstrained
	Want   string // human-readable expectation, used in diagnostics

	pattern *regexp.Regexp
}

// Matches reports whether v satisfies the field's format rule.
func (f Field) Matches(v string) bool {
	return f.pattern == nil || f.pattern.MatchString(v)
}

// Schema is the ordered column layout of one export version, plus the
// positions the transformer reads from. A position of -1 means the
// version has no such column.
type Schema struct {
	Version   Version
	HasHeader bool
	Fields    []Field

	Account        int
	Date           int
	Amount         int
	DebitCredit    int
	CounterAccount int
	CounterName    int
	Code           int
	SeqNo          int
	PaymentRef     int
	Descriptions   []int
	Identifiers    []int
}

var registry = map[Version]*Schema{
	Rabo2012: rabo2012,
	Rabo2013: rabo2013,
	Rabo2017: rabo2017,
}

// Get returns the immutable schema for a version tag.
func Get(v Version) (*Schema, error) {
	s, ok := registry[v]
	if !ok {
		return nil, fmt.Errorf("unknown export format %q", v)
	}
	return s, nil
}

// Versions lists the supported version tags.
func Versions() []Version {
	return []Version{Rabo2012, Rabo2013, Rabo2017}
}

// Shared format rules. Account numbers are either a purely numeric BBAN
// or a country code, two check digits and an alphanumeric rest (IBAN).
var (
	reAccount     = regexp.MustCompile(`^$|^[0-9]+$|^[A-Z]{2}[0-9]{2}[0-9A-Za-z]+$`)
	reCurrency    = regexp.MustCompile(`^[A-Z]{3}$`)
	reDate        = regexp.MustCompile(`^$|^[0-9]{8}$|^[0-9]{4}-[0-9]{2}-[0-9]{2}$`)
	reDC          = regexp.MustCompile(`^[DCdc]$`)
	reLetters     = regexp.MustCompile(`^$|^[A-Za-z]{2}$`)
	reBIC         = regexp.MustCompile(`^$|^[A-Z0-9]{8,11}$`)
	reNumeric     = regexp.MustCompile(`^$|^[0-9]+$`)
	reAmountDot   = regexp.MustCompile(`^[+-]?[0-9]+(\.[0-9]+)?$`)
	reAmountCom   = regexp.MustCompile(`^[+-]?[0-9]+(,[0-9]+)?$`)
	reOptAmount   = regexp.MustCompile(`^$|^[+-]?[0-9]+(,[0-9]+)?$`)
	reOptCurrency = regexp.MustCompile(`^$|^[A-Z]{3}$`)
)

func text(name string, maxLen int) Field {
	return Field{Name: name, MaxLen: maxLen, Want: "free text"}
}

func field(name string, maxLen int, want string, pattern *regexp.Regexp) Field {
	return Field{Name: name, MaxLen: maxLen, Want: want, pattern: pattern}
}

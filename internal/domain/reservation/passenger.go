package reservation

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/AeroAndes-Airlines/service-reservation/internal/domain"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	namePattern     = regexp.MustCompile(`^[\p{L}\s]+$`)
	documentPattern = regexp.MustCompile(`^[0-9]{5,12}$`)
)

// titleCase normalizes a name or city to title case ("buenos aires" -> "Buenos Aires").
func titleCase(s string) string {
	return cases.Title(language.Und).String(s)
}

// Passenger is an immutable identity record. Passengers are created through
// the Registry and never updated or deleted afterwards.
type Passenger struct {
	firstName string
	lastName  string
	document  string
}

// NewPassenger creates a Passenger with validated, normalized fields.
// Names accept letters and spaces only and must be at least 2 characters
// after trimming; the document is a 5 to 12 digit string. Construction is
// atomic: either every field is valid or an error is returned.
func NewPassenger(firstName, lastName, document string) (*Passenger, error) {
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	document = strings.TrimSpace(document)

	if utf8.RuneCountInString(firstName) < 2 {
		return nil, domain.NewValidationError("first name must be at least 2 characters")
	}
	if !namePattern.MatchString(firstName) {
		return nil, domain.NewValidationError("first name must contain only letters and spaces")
	}
	if utf8.RuneCountInString(lastName) < 2 {
		return nil, domain.NewValidationError("last name must be at least 2 characters")
	}
	if !namePattern.MatchString(lastName) {
		return nil, domain.NewValidationError("last name must contain only letters and spaces")
	}
	if !documentPattern.MatchString(document) {
		return nil, domain.NewValidationError("document must be a numeric string of 5 to 12 digits")
	}

	return &Passenger{
		firstName: titleCase(firstName),
		lastName:  titleCase(lastName),
		document:  document,
	}, nil
}

// --- Getters ---

// FirstName returns the passenger's normalized first name.
func (p *Passenger) FirstName() string { return p.firstName }

// LastName returns the passenger's normalized last name.
func (p *Passenger) LastName() string { return p.lastName }

// Document returns the passenger's unique document number.
func (p *Passenger) Document() string { return p.document }

// FullName returns the first and last name joined with a space.
func (p *Passenger) FullName() string {
	return p.firstName + " " + p.lastName
}

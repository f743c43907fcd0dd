package domain

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// DateLayout is the only accepted birthday format (DD.MM.YYYY)
const DateLayout = "02.01.2006"

const (
	phoneRule    = "required,len=10,number"
	birthdayRule = "required,datetime=" + DateLayout
)

var validate = validator.New()

// Name identifies a contact and is the key in the directory
type Name struct {
	value string
}

// NewName trims the input and rejects an empty name
func NewName(value string) (Name, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return Name{}, NewValidation("Contact name is required.")
	}
	return Name{value: value}, nil
}

func (n Name) String() string {
	return n.value
}

// Phone is a validated 10-digit phone number
type Phone struct {
	value string
}

// NewPhone validates that value is exactly 10 decimal digits
func NewPhone(value string) (Phone, error) {
	if err := validate.Var(value, phoneRule); err != nil {
		return Phone{}, NewValidation("Phone number must contain exactly 10 digits.")
	}
	return Phone{value: value}, nil
}

func (p Phone) String() string {
	return p.value
}

// Birthday is a calendar date parsed from DD.MM.YYYY
type Birthday struct {
	date time.Time
}

// NewBirthday parses value as DD.MM.YYYY, rejecting dates that do not exist
func NewBirthday(value string) (Birthday, error) {
	invalid := NewValidation("Invalid date format. Use DD.MM.YYYY")
	if err := validate.Var(value, birthdayRule); err != nil {
		return Birthday{}, invalid
	}
	date, err := time.Parse(DateLayout, value)
	if err != nil {
		return Birthday{}, invalid
	}
	return Birthday{date: date}, nil
}

// Date returns the birthday as a UTC midnight time
func (b Birthday) Date() time.Time {
	return b.date
}

func (b Birthday) String() string {
	return b.date.Format(DateLayout)
}

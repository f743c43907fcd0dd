package domain

import (
	"fmt"
	"slices"
	"strings"
)

// NoBirthday is shown in place of a birthday that has not been set
const NoBirthday = "No birthday set"

// Record is one contact: a name, its phones in insertion order and an optional birthday
type Record struct {
	name     Name
	phones   []Phone
	birthday *Birthday
}

// NewRecord creates a record with no phones and no birthday
func NewRecord(name string) (*Record, error) {
	n, err := NewName(name)
	if err != nil {
		return nil, err
	}
	return &Record{name: n}, nil
}

// Name returns the contact name
func (r *Record) Name() string {
	return r.name.String()
}

// Phones returns a copy of the phone list
func (r *Record) Phones() []Phone {
	return slices.Clone(r.phones)
}

// Birthday returns the birthday and whether one is set
func (r *Record) Birthday() (Birthday, bool) {
	if r.birthday == nil {
		return Birthday{}, false
	}
	return *r.birthday, true
}

// AddPhone validates and appends a phone number
func (r *Record) AddPhone(value string) error {
	p, err := NewPhone(value)
	if err != nil {
		return err
	}
	r.phones = append(r.phones, p)
	return nil
}

// ReplacePhone swaps the first phone equal to oldValue for a freshly validated newValue.
// It reports false with a nil error when oldValue is not present.
func (r *Record) ReplacePhone(oldValue, newValue string) (bool, error) {
	i := r.indexOf(oldValue)
	if i < 0 {
		return false, nil
	}
	p, err := NewPhone(newValue)
	if err != nil {
		return false, err
	}
	r.phones[i] = p
	return true, nil
}

// RemovePhone drops the first phone equal to value
func (r *Record) RemovePhone(value string) bool {
	i := r.indexOf(value)
	if i < 0 {
		return false
	}
	r.phones = slices.Delete(r.phones, i, i+1)
	return true
}

func (r *Record) indexOf(value string) int {
	return slices.IndexFunc(r.phones, func(p Phone) bool { return p.value == value })
}

// SetBirthday validates value and overwrites any existing birthday
func (r *Record) SetBirthday(value string) error {
	b, err := NewBirthday(value)
	if err != nil {
		return err
	}
	r.birthday = &b
	return nil
}

// ShowBirthday renders the birthday as DD.MM.YYYY, or NoBirthday
func (r *Record) ShowBirthday() string {
	if r.birthday == nil {
		return NoBirthday
	}
	return r.birthday.String()
}

// String describes the record on one line
func (r *Record) String() string {
	phones := make([]string, len(r.phones))
	for i, p := range r.phones {
		phones[i] = p.String()
	}
	return fmt.Sprintf("Contact name: %s, phones: %s, birthday: %s",
		r.name, strings.Join(phones, "; "), r.ShowBirthday())
}

package repository

import (
	"time"

	"github.com/andy/contactbook/internal/domain"
)

// ContactRepository holds contact records keyed by name
type ContactRepository interface {
	Add(record *domain.Record) // Replaces any record with the same name
	Find(name string) (*domain.Record, bool)
	Delete(name string) bool
	All() []*domain.Record
	Len() int
	UpcomingBirthdays(reference time.Time) []UpcomingBirthday
}

package repository

import (
	"slices"
	"time"

	"github.com/andy/contactbook/internal/domain"
)

// DefaultWindowDays is how far ahead UpcomingBirthdays looks, inclusive
const DefaultWindowDays = 7

// UpcomingBirthday pairs a contact with the date to congratulate them
type UpcomingBirthday struct {
	Name               string
	CongratulationDate time.Time
}

// Directory is an in-memory, insertion-ordered collection of records keyed by name
type Directory struct {
	index   map[string]int
	records []*domain.Record
	window  int
}

var _ ContactRepository = (*Directory)(nil)

// Option configures a Directory
type Option func(*Directory)

// WithWindow sets the number of days UpcomingBirthdays looks ahead
func WithWindow(days int) Option {
	return func(d *Directory) {
		if days >= 0 {
			d.window = days
		}
	}
}

// NewDirectory creates an empty directory
func NewDirectory(opts ...Option) *Directory {
	d := &Directory{
		index:  make(map[string]int),
		window: DefaultWindowDays,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Add stores record under its name, replacing any record already there
func (d *Directory) Add(record *domain.Record) {
	name := record.Name()
	if i, ok := d.index[name]; ok {
		d.records[i] = record
		return
	}
	d.index[name] = len(d.records)
	d.records = append(d.records, record)
}

// Find returns the record stored under name
func (d *Directory) Find(name string) (*domain.Record, bool) {
	i, ok := d.index[name]
	if !ok {
		return nil, false
	}
	return d.records[i], true
}

// Delete removes the record stored under name
func (d *Directory) Delete(name string) bool {
	i, ok := d.index[name]
	if !ok {
		return false
	}
	delete(d.index, name)
	d.records = slices.Delete(d.records, i, i+1)
	for j := i; j < len(d.records); j++ {
		d.index[d.records[j].Name()] = j
	}
	return true
}

// All returns the records in insertion order
func (d *Directory) All() []*domain.Record {
	return slices.Clone(d.records)
}

// Len returns the number of records
func (d *Directory) Len() int {
	return len(d.records)
}

// UpcomingBirthdays lists contacts whose next birthday is within the window of reference,
// with weekend birthdays moved to the following Monday
func (d *Directory) UpcomingBirthdays(reference time.Time) []UpcomingBirthday {
	today := domain.DateOf(reference)

	var upcoming []UpcomingBirthday
	for _, record := range d.records {
		birthday, ok := record.Birthday()
		if !ok {
			continue
		}

		next := birthday.NextOccurrence(today)
		days := domain.DaysBetween(today, next)
		if days < 0 || days > d.window {
			continue
		}

		upcoming = append(upcoming, UpcomingBirthday{
			Name:               record.Name(),
			CongratulationDate: domain.CongratulationDate(next),
		})
	}
	return upcoming
}

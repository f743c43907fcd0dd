package service

import (
	"time"

	"github.com/andy/contactbook/internal/domain"
	"github.com/andy/contactbook/internal/repository"
)

// ContactService implements the operations behind each assistant command.
// Unknown names yield domain.ErrContactNotFound.
type ContactService interface {
	// AddContact appends phone to the named contact, creating it first if needed.
	// created reports whether a new contact was stored.
	AddContact(name, phone string) (created bool, err error)
	ChangePhone(name, oldPhone, newPhone string) (bool, error)
	RemovePhone(name, phone string) (bool, error)
	Phones(name string) ([]domain.Phone, error)
	Contacts() []*domain.Record
	DeleteContact(name string) error

	SetBirthday(name, birthday string) error
	ShowBirthday(name string) (string, error)
	UpcomingBirthdays() []repository.UpcomingBirthday
}

type contactService struct {
	repo repository.ContactRepository
	now  func() time.Time
}

// NewContactService creates a contact service; now defaults to time.Now
func NewContactService(repo repository.ContactRepository, now func() time.Time) ContactService {
	if now == nil {
		now = time.Now
	}
	return &contactService{repo: repo, now: now}
}

func (s *contactService) find(name string) (*domain.Record, error) {
	record, ok := s.repo.Find(name)
	if !ok {
		return nil, domain.ErrContactNotFound
	}
	return record, nil
}

func (s *contactService) AddContact(name, phone string) (bool, error) {
	record, ok := s.repo.Find(name)
	if ok {
		return false, record.AddPhone(phone)
	}

	record, err := domain.NewRecord(name)
	if err != nil {
		return false, err
	}
	// Validate before storing so a bad phone does not leave an empty contact behind
	if err := record.AddPhone(phone); err != nil {
		return false, err
	}
	s.repo.Add(record)
	return true, nil
}

func (s *contactService) ChangePhone(name, oldPhone, newPhone string) (bool, error) {
	record, err := s.find(name)
	if err != nil {
		return false, err
	}
	return record.ReplacePhone(oldPhone, newPhone)
}

func (s *contactService) RemovePhone(name, phone string) (bool, error) {
	record, err := s.find(name)
	if err != nil {
		return false, err
	}
	return record.RemovePhone(phone), nil
}

func (s *contactService) Phones(name string) ([]domain.Phone, error) {
	record, err := s.find(name)
	if err != nil {
		return nil, err
	}
	return record.Phones(), nil
}

func (s *contactService) Contacts() []*domain.Record {
	return s.repo.All()
}

func (s *contactService) DeleteContact(name string) error {
	if !s.repo.Delete(name) {
		return domain.ErrContactNotFound
	}
	return nil
}

func (s *contactService) SetBirthday(name, birthday string) error {
	record, err := s.find(name)
	if err != nil {
		return err
	}
	return record.SetBirthday(birthday)
}

func (s *contactService) ShowBirthday(name string) (string, error) {
	record, err := s.find(name)
	if err != nil {
		return "", err
	}
	return record.ShowBirthday(), nil
}

func (s *contactService) UpcomingBirthdays() []repository.UpcomingBirthday {
	return s.repo.UpcomingBirthdays(s.now())
}

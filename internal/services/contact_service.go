package services

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/diarhyseni/real-estateapp/internal/models"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ContactNotifier receives each stored contact request. Implementations push
// it to whatever channel the back office watches.
type ContactNotifier interface {
	NotifyNewContact(ctx context.Context, contact models.Contact)
}

type ContactStore interface {
	CreateContact(ctx context.Context, contact models.Contact) (models.Contact, error)
	GetContactByID(ctx context.Context, id string) (models.Contact, error)
	GetAllContacts(ctx context.Context) ([]models.Contact, error)
	UpdateContactStatus(ctx context.Context, id, status string) (models.Contact, error)
	DeleteContact(ctx context.Context, id string) error
}

type ContactService struct {
	ContactRepo ContactStore
	Notifiers   []ContactNotifier
	ErrorLog    *log.Logger
}

func (s *ContactService) CreateContact(ctx context.Context, contact models.Contact) (models.Contact, error) {
	var missing []string
	if strings.TrimSpace(contact.FirstName) == "" {
		missing = append(missing, "firstName")
	}
	if strings.TrimSpace(contact.LastName) == "" {
		missing = append(missing, "lastName")
	}
	if strings.TrimSpace(contact.Email) == "" {
		missing = append(missing, "email")
	}
	if strings.TrimSpace(contact.Phone) == "" {
		missing = append(missing, "phone")
	}
	if strings.TrimSpace(contact.Message) == "" {
		missing = append(missing, "message")
	}
	if len(missing) > 0 {
		return models.Contact{}, fmt.Errorf("%w: missing required fields: %s", ErrValidation, strings.Join(missing, ", "))
	}
	if !emailPattern.MatchString(contact.Email) {
		return models.Contact{}, fmt.Errorf("%w: invalid email address", ErrValidation)
	}

	contact.ID = uuid.NewString()
	contact.Status = models.ContactStatusUnread

	created, err := s.ContactRepo.CreateContact(ctx, contact)
	if err != nil {
		return models.Contact{}, err
	}

	// Notification failures never fail the intake itself.
	for _, n := range s.Notifiers {
		n.NotifyNewContact(ctx, created)
	}

	return created, nil
}

func (s *ContactService) GetContacts(ctx context.Context) ([]models.Contact, error) {
	return s.ContactRepo.GetAllContacts(ctx)
}

func (s *ContactService) GetContactByID(ctx context.Context, id string) (models.Contact, error) {
	return s.ContactRepo.GetContactByID(ctx, id)
}

// UpdateStatus moves a contact between unread and contacted. Any other
// status value is rejected.
func (s *ContactService) UpdateStatus(ctx context.Context, id, status string) (models.Contact, error) {
	if status != models.ContactStatusUnread && status != models.ContactStatusContacted {
		return models.Contact{}, fmt.Errorf("%w: status must be %q or %q", ErrValidation, models.ContactStatusUnread, models.ContactStatusContacted)
	}
	return s.ContactRepo.UpdateContactStatus(ctx, id, status)
}

func (s *ContactService) DeleteContact(ctx context.Context, id string) error {
	return s.ContactRepo.DeleteContact(ctx, id)
}

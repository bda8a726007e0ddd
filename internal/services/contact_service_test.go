package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/diarhyseni/real-estateapp/internal/models"
)

type fakeContactStore struct {
	contacts map[string]models.Contact
}

func newFakeContactStore() *fakeContactStore {
	return &fakeContactStore{contacts: make(map[string]models.Contact)}
}

func (s *fakeContactStore) CreateContact(ctx context.Context, contact models.Contact) (models.Contact, error) {
	s.contacts[contact.ID] = contact
	return contact, nil
}

func (s *fakeContactStore) GetContactByID(ctx context.Context, id string) (models.Contact, error) {
	c, ok := s.contacts[id]
	if !ok {
		return models.Contact{}, models.ErrContactNotFound
	}
	return c, nil
}

func (s *fakeContactStore) GetAllContacts(ctx context.Context) ([]models.Contact, error) {
	out := make([]models.Contact, 0, len(s.contacts))
	for _, c := range s.contacts {
		out = append(out, c)
	}
	return out, nil
}

func (s *fakeContactStore) UpdateContactStatus(ctx context.Context, id, status string) (models.Contact, error) {
	c, ok := s.contacts[id]
	if !ok {
		return models.Contact{}, models.ErrContactNotFound
	}
	c.Status = status
	s.contacts[id] = c
	return c, nil
}

func (s *fakeContactStore) DeleteContact(ctx context.Context, id string) error {
	if _, ok := s.contacts[id]; !ok {
		return models.ErrContactNotFound
	}
	delete(s.contacts, id)
	return nil
}

func validContact() models.Contact {
	return models.Contact{
		FirstName: "Diar",
		LastName:  "Hyseni",
		Email:     "diar@example.com",
		Phone:     "+383 44 123 456",
		Message:   "A është ende në shitje?",
	}
}

func TestCreateContactMissingFields(t *testing.T) {
	svc := &ContactService{}

	cases := []struct {
		name    string
		mutate  func(*models.Contact)
		missing string
	}{
		{"no first name", func(c *models.Contact) { c.FirstName = "" }, "firstName"},
		{"no last name", func(c *models.Contact) { c.LastName = " " }, "lastName"},
		{"no email", func(c *models.Contact) { c.Email = "" }, "email"},
		{"no phone", func(c *models.Contact) { c.Phone = "" }, "phone"},
		{"no message", func(c *models.Contact) { c.Message = "" }, "message"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			contact := validContact()
			tc.mutate(&contact)

			_, err := svc.CreateContact(context.Background(), contact)
			if !errors.Is(err, ErrValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if !strings.Contains(err.Error(), tc.missing) {
				t.Fatalf("expected error to name %q, got %q", tc.missing, err)
			}
		})
	}
}

func TestCreateContactRejectsBadEmail(t *testing.T) {
	svc := &ContactService{}

	for _, email := range []string{"not-an-email", "a b@c.com", "nobody@nowhere", "@example.com"} {
		contact := validContact()
		contact.Email = email

		_, err := svc.CreateContact(context.Background(), contact)
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("email %q: expected validation error, got %v", email, err)
		}
	}
}

func TestContactLifecycle(t *testing.T) {
	store := newFakeContactStore()
	svc := &ContactService{ContactRepo: store}

	// A submitted status is ignored; every new contact starts unread.
	submitted := validContact()
	submitted.Status = models.ContactStatusContacted

	created, err := svc.CreateContact(context.Background(), submitted)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected an id to be assigned")
	}
	if created.Status != models.ContactStatusUnread {
		t.Fatalf("expected new contact to be %q, got %q", models.ContactStatusUnread, created.Status)
	}

	if _, err := svc.UpdateStatus(context.Background(), created.ID, models.ContactStatusContacted); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := svc.GetContactByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Status != models.ContactStatusContacted {
		t.Fatalf("expected %q after update, got %q", models.ContactStatusContacted, got.Status)
	}
}

func TestCreateContactNotifiesListeners(t *testing.T) {
	store := newFakeContactStore()
	var notified []models.Contact
	svc := &ContactService{
		ContactRepo: store,
		Notifiers: []ContactNotifier{notifierFunc(func(ctx context.Context, c models.Contact) {
			notified = append(notified, c)
		})},
	}

	created, err := svc.CreateContact(context.Background(), validContact())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(notified) != 1 || notified[0].ID != created.ID {
		t.Fatalf("expected one notification for %q, got %v", created.ID, notified)
	}
}

type notifierFunc func(ctx context.Context, contact models.Contact)

func (f notifierFunc) NotifyNewContact(ctx context.Context, contact models.Contact) {
	f(ctx, contact)
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	svc := &ContactService{}

	_, err := svc.UpdateStatus(context.Background(), "c-1", "archived")
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestNormalizeCategoryLowercasesValue(t *testing.T) {
	category := models.Category{Name: "Banesa", Value: " Banesa "}
	if err := normalizeCategory(&category); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if category.Value != "banesa" {
		t.Fatalf("expected lowercased value, got %q", category.Value)
	}
}

func TestNormalizeTypeUppercasesValue(t *testing.T) {
	typ := models.Type{Name: "Në shitje", Value: "sale"}
	if err := normalizeType(&typ); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if typ.Value != "SALE" {
		t.Fatalf("expected uppercased value, got %q", typ.Value)
	}
}

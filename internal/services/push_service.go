package services

import (
	"context"
	"fmt"
	"log"

	"firebase.google.com/go/messaging"

	"github.com/diarhyseni/real-estateapp/internal/models"
)

// DeviceTokenStore yields the push targets for staff accounts.
type DeviceTokenStore interface {
	GetStaffDeviceTokens(ctx context.Context) ([]string, error)
}

// PushService fans new contact requests out to the registered devices of
// staff accounts over FCM. With no messaging client configured it stays
// silent, so local setups run without Firebase credentials.
type PushService struct {
	Client   *messaging.Client
	UserRepo DeviceTokenStore
	ErrorLog *log.Logger
}

func (s *PushService) NotifyNewContact(ctx context.Context, contact models.Contact) {
	if s.Client == nil {
		return
	}

	tokens, err := s.UserRepo.GetStaffDeviceTokens(ctx)
	if err != nil {
		s.ErrorLog.Printf("fetch staff device tokens: %v", err)
		return
	}

	body := fmt.Sprintf("%s %s: %s", contact.FirstName, contact.LastName, contact.Message)

	for _, token := range tokens {
		message := &messaging.Message{
			Token: token,
			Notification: &messaging.Notification{
				Title: "New contact request",
				Body:  body,
			},
			Data: map[string]string{
				"contactId": contact.ID,
			},
			Android: &messaging.AndroidConfig{
				Priority: "high",
			},
			APNS: &messaging.APNSConfig{
				Headers: map[string]string{
					"apns-priority": "10",
				},
				Payload: &messaging.APNSPayload{
					Aps: &messaging.Aps{
						Alert: &messaging.ApsAlert{
							Title: "New contact request",
							Body:  body,
						},
						Sound: "default",
					},
				},
			},
		}
		if _, err := s.Client.Send(ctx, message); err != nil {
			s.ErrorLog.Printf("send push to %s: %v", token, err)
		}
	}
}

package models

import (
	"time"
)

const (
	ContactStatusUnread    = "unread"
	ContactStatusContacted = "contacted"
)

type Contact struct {
	ID        string    `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Message   string    `json:"message"`
	Source    string    `json:"source,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

type ContactStatusUpdate struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

package models

import (
	"time"
)

type Favorite struct {
	UserID     string    `json:"userId"`
	PropertyID string    `json:"propertyId"`
	CreatedAt  time.Time `json:"createdAt"`
}

type DeviceToken struct {
	UserID string `json:"userId"`
	Token  string `json:"token"`
}

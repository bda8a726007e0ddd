package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/diarhyseni/real-estateapp/internal/models"
	"github.com/diarhyseni/real-estateapp/utils"
)

func feedTestApp(t *testing.T) *application {
	t.Helper()

	app := testApp()
	tm, err := utils.NewManager(app.cfg.Auth.SigningKey)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	app.tokenManager = tm
	app.contactFeed = NewContactFeed(app.errorLog)
	go app.contactFeed.Run()
	return app
}

func TestContactFeedDeliversNewContacts(t *testing.T) {
	app := feedTestApp(t)

	srv := httptest.NewServer(http.HandlerFunc(app.ContactFeedHandler))
	defer srv.Close()

	token, err := app.generateAccessToken(models.User{ID: "u-1", Role: "agent"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "?token=" + token
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	app.contactFeed.NotifyNewContact(context.Background(), models.Contact{
		ID:        "c-1",
		FirstName: "Arta",
		LastName:  "Krasniqi",
		Email:     "arta@example.com",
		Status:    models.ContactStatusUnread,
	})

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var got models.Contact
	if err := conn.ReadJSON(&got); err != nil {
		t.Fatalf("read: %v", err)
	}
	if got.ID != "c-1" || got.Status != models.ContactStatusUnread {
		t.Fatalf("unexpected contact: %+v", got)
	}
}

func TestContactFeedRejectsNonStaff(t *testing.T) {
	app := feedTestApp(t)

	srv := httptest.NewServer(http.HandlerFunc(app.ContactFeedHandler))
	defer srv.Close()

	token, err := app.generateAccessToken(models.User{ID: "u-2", Role: "user"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cases := []struct {
		name  string
		query string
		want  int
	}{
		{"missing token", "", http.StatusUnauthorized},
		{"garbage token", "?token=not-a-jwt", http.StatusUnauthorized},
		{"user role", "?token=" + token, http.StatusForbidden},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := http.Get(srv.URL + tc.query)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			resp.Body.Close()
			if resp.StatusCode != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, resp.StatusCode)
			}
		})
	}
}

package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/diarhyseni/real-estateapp/internal/models"
	"github.com/diarhyseni/real-estateapp/utils"
)

type fakeUserStore struct {
	users    map[string]models.User
	sessions map[string]models.Session
	resets   map[string]models.PasswordResetToken
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{
		users:    make(map[string]models.User),
		sessions: make(map[string]models.Session),
		resets:   make(map[string]models.PasswordResetToken),
	}
}

func (s *fakeUserStore) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	s.users[user.ID] = user
	return user, nil
}

func (s *fakeUserStore) GetUserByID(ctx context.Context, id string) (models.User, error) {
	u, ok := s.users[id]
	if !ok {
		return models.User{}, models.ErrUserNotFound
	}
	return u, nil
}

func (s *fakeUserStore) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, nil
}

func (s *fakeUserStore) GetAllUsers(ctx context.Context) ([]models.User, error) {
	out := make([]models.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, u)
	}
	return out, nil
}

func (s *fakeUserStore) UpdateUser(ctx context.Context, user models.User) (models.User, error) {
	if _, ok := s.users[user.ID]; !ok {
		return models.User{}, models.ErrUserNotFound
	}
	s.users[user.ID] = user
	return user, nil
}

func (s *fakeUserStore) UpdatePassword(ctx context.Context, userID, hashedPassword string) error {
	u, ok := s.users[userID]
	if !ok {
		return models.ErrUserNotFound
	}
	u.Password = hashedPassword
	s.users[userID] = u
	return nil
}

func (s *fakeUserStore) DeleteUser(ctx context.Context, id string) error {
	delete(s.users, id)
	return nil
}

func (s *fakeUserStore) SetSession(ctx context.Context, userID string, session models.Session) error {
	s.sessions[userID] = session
	return nil
}

func (s *fakeUserStore) GetSessionByToken(ctx context.Context, refreshToken string) (models.Session, error) {
	for userID, session := range s.sessions {
		if session.RefreshToken == refreshToken {
			session.UserID = userID
			return session, nil
		}
	}
	return models.Session{}, nil
}

func (s *fakeUserStore) DeleteSession(ctx context.Context, userID string) error {
	delete(s.sessions, userID)
	return nil
}

func (s *fakeUserStore) CreatePasswordResetToken(ctx context.Context, t models.PasswordResetToken) error {
	s.resets[t.Token] = t
	return nil
}

func (s *fakeUserStore) GetPasswordResetToken(ctx context.Context, token string) (models.PasswordResetToken, error) {
	r, ok := s.resets[token]
	if !ok {
		return models.PasswordResetToken{}, models.ErrInvalidResetToken
	}
	return r, nil
}

func (s *fakeUserStore) DeletePasswordResetToken(ctx context.Context, token string) error {
	delete(s.resets, token)
	return nil
}

func (s *fakeUserStore) SaveDeviceToken(ctx context.Context, userID, token string) error {
	return nil
}

func newUserService(t *testing.T, store UserStore) *UserService {
	t.Helper()

	tm, err := utils.NewManager("test-key")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return &UserService{
		UserRepo:     store,
		TokenManager: tm,
		SigningKey:   "test-key",
		AccessTTL:    10 * time.Minute,
	}
}

func storeUser(t *testing.T, store *fakeUserStore, email, password string) models.User {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	user := models.User{ID: "u-1", Name: "Diar", Email: email, Password: string(hashed), Role: "user"}
	store.users[user.ID] = user
	return user
}

func TestLoginWrongPasswordIssuesNoSession(t *testing.T) {
	store := newFakeUserStore()
	storeUser(t, store, "diar@example.com", "sekret123")
	svc := newUserService(t, store)

	_, _, err := svc.Login(context.Background(), models.LoginRequest{Email: "diar@example.com", Password: "gabim"})
	if !errors.Is(err, models.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}
	if len(store.sessions) != 0 {
		t.Fatalf("expected no session for a failed login, got %d", len(store.sessions))
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	store := newFakeUserStore()
	svc := newUserService(t, store)

	_, _, err := svc.Login(context.Background(), models.LoginRequest{Email: "askush@example.com", Password: "sekret123"})
	if !errors.Is(err, models.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}
}

func TestLoginIssuesTokensAndSession(t *testing.T) {
	store := newFakeUserStore()
	storeUser(t, store, "diar@example.com", "sekret123")
	svc := newUserService(t, store)

	user, tokens, err := svc.Login(context.Background(), models.LoginRequest{Email: "diar@example.com", Password: "sekret123"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Password != "" {
		t.Fatal("password hash must not leave the service")
	}
	if tokens.AccessToken == "" || tokens.RefreshToken == "" {
		t.Fatalf("expected both tokens, got %+v", tokens)
	}

	session, ok := store.sessions[user.ID]
	if !ok {
		t.Fatal("expected a stored session")
	}
	if session.RefreshToken != tokens.RefreshToken {
		t.Fatal("stored session must carry the issued refresh token")
	}
}

func TestRefreshSessionRejectsExpired(t *testing.T) {
	store := newFakeUserStore()
	storeUser(t, store, "diar@example.com", "sekret123")
	store.sessions["u-1"] = models.Session{
		RefreshToken: "stale",
		ExpiresAt:    time.Now().Add(-time.Hour),
	}
	svc := newUserService(t, store)

	_, err := svc.RefreshSession(context.Background(), "stale")
	if !errors.Is(err, models.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}
}

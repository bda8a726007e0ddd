package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/diarhyseni/real-estateapp/internal/models"
	"github.com/diarhyseni/real-estateapp/utils"
)

const refreshTTL = 24 * 30 * 2 * time.Hour

type UserStore interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	GetUserByID(ctx context.Context, id string) (models.User, error)
	GetUserByEmail(ctx context.Context, email string) (models.User, error)
	GetAllUsers(ctx context.Context) ([]models.User, error)
	UpdateUser(ctx context.Context, user models.User) (models.User, error)
	UpdatePassword(ctx context.Context, userID, hashedPassword string) error
	DeleteUser(ctx context.Context, id string) error
	SetSession(ctx context.Context, userID string, session models.Session) error
	GetSessionByToken(ctx context.Context, refreshToken string) (models.Session, error)
	DeleteSession(ctx context.Context, userID string) error
	CreatePasswordResetToken(ctx context.Context, t models.PasswordResetToken) error
	GetPasswordResetToken(ctx context.Context, token string) (models.PasswordResetToken, error)
	DeletePasswordResetToken(ctx context.Context, token string) error
	SaveDeviceToken(ctx context.Context, userID, token string) error
}

type UserService struct {
	UserRepo     UserStore
	TokenManager *utils.Manager
	SigningKey   string
	AccessTTL    time.Duration
}

// Register creates a self-service account. The role is always "user";
// elevated roles are only assigned through the admin endpoints.
func (s *UserService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return models.User{}, fmt.Errorf("%w: name, email and password are required", ErrValidation)
	}

	existing, err := s.UserRepo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return models.User{}, err
	}
	if existing.Email != "" {
		return models.User{}, models.ErrDuplicateEmail
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		ID:       uuid.NewString(),
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashed),
		Phone:    req.Phone,
		Role:     "user",
	}
	created, err := s.UserRepo.CreateUser(ctx, user)
	if err != nil {
		return models.User{}, err
	}
	created.Password = ""
	return created, nil
}

func (s *UserService) Login(ctx context.Context, req models.LoginRequest) (models.User, models.Tokens, error) {
	user, err := s.UserRepo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return models.User{}, models.Tokens{}, err
	}
	if user.Email == "" {
		return models.User{}, models.Tokens{}, models.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return models.User{}, models.Tokens{}, models.ErrInvalidCredentials
	}

	tokens, err := s.issueTokens(ctx, user)
	if err != nil {
		return models.User{}, models.Tokens{}, err
	}
	user.Password = ""
	return user, tokens, nil
}

// RefreshSession exchanges a stored refresh token for a fresh access token.
// Expired or unknown refresh tokens fail as invalid credentials.
func (s *UserService) RefreshSession(ctx context.Context, refreshToken string) (models.Tokens, error) {
	session, err := s.UserRepo.GetSessionByToken(ctx, refreshToken)
	if err != nil {
		return models.Tokens{}, err
	}
	if session.RefreshToken == "" || time.Now().After(session.ExpiresAt) {
		return models.Tokens{}, models.ErrInvalidCredentials
	}

	user, err := s.UserRepo.GetUserByID(ctx, session.UserID)
	if err != nil {
		return models.Tokens{}, err
	}
	return s.issueTokens(ctx, user)
}

func (s *UserService) issueTokens(ctx context.Context, user models.User) (models.Tokens, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &models.Claims{
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: now.Add(s.AccessTTL).Unix(),
			IssuedAt:  now.Unix(),
		},
		UserID:  user.ID,
		Role:    user.Role,
		Image:   user.Image,
		Phone:   user.Phone,
		Address: user.Address,
	})

	accessToken, err := token.SignedString([]byte(s.SigningKey))
	if err != nil {
		return models.Tokens{}, err
	}

	refreshToken, err := s.TokenManager.NewRefreshToken()
	if err != nil {
		return models.Tokens{}, err
	}

	session := models.Session{
		RefreshToken: refreshToken,
		ExpiresAt:    now.Add(refreshTTL),
	}
	if err := s.UserRepo.SetSession(ctx, user.ID, session); err != nil {
		return models.Tokens{}, err
	}

	return models.Tokens{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

func (s *UserService) Logout(ctx context.Context, userID string) error {
	return s.UserRepo.DeleteSession(ctx, userID)
}

func (s *UserService) GetUsers(ctx context.Context) ([]models.User, error) {
	return s.UserRepo.GetAllUsers(ctx)
}

func (s *UserService) GetUserByID(ctx context.Context, id string) (models.User, error) {
	user, err := s.UserRepo.GetUserByID(ctx, id)
	if err != nil {
		return models.User{}, err
	}
	user.Password = ""
	return user, nil
}

// CreateUser is the admin path and accepts any role.
func (s *UserService) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if strings.TrimSpace(user.Name) == "" || strings.TrimSpace(user.Email) == "" || user.Password == "" {
		return models.User{}, fmt.Errorf("%w: name, email and password are required", ErrValidation)
	}
	if !validRole(user.Role) {
		return models.User{}, fmt.Errorf("%w: role must be one of user, agent, admin", ErrValidation)
	}

	existing, err := s.UserRepo.GetUserByEmail(ctx, user.Email)
	if err != nil {
		return models.User{}, err
	}
	if existing.Email != "" {
		return models.User{}, models.ErrDuplicateEmail
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}
	user.ID = uuid.NewString()
	user.Password = string(hashed)

	created, err := s.UserRepo.CreateUser(ctx, user)
	if err != nil {
		return models.User{}, err
	}
	created.Password = ""
	return created, nil
}

// UpdateUser leaves the stored password untouched unless the payload carries
// a new one.
func (s *UserService) UpdateUser(ctx context.Context, user models.User) (models.User, error) {
	if user.Role != "" && !validRole(user.Role) {
		return models.User{}, fmt.Errorf("%w: role must be one of user, agent, admin", ErrValidation)
	}

	existing, err := s.UserRepo.GetUserByEmail(ctx, user.Email)
	if err != nil {
		return models.User{}, err
	}
	if existing.Email != "" && existing.ID != user.ID {
		return models.User{}, models.ErrDuplicateEmail
	}

	updated, err := s.UserRepo.UpdateUser(ctx, user)
	if err != nil {
		return models.User{}, err
	}

	if user.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
		if err != nil {
			return models.User{}, err
		}
		if err := s.UserRepo.UpdatePassword(ctx, user.ID, string(hashed)); err != nil {
			return models.User{}, err
		}
	}

	updated.Password = ""
	return updated, nil
}

func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	return s.UserRepo.DeleteUser(ctx, id)
}

// ForgotPassword reports success whether or not the email is registered, so
// the endpoint cannot be used to probe for accounts. The reset token is only
// minted for real ones.
func (s *UserService) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.UserRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user.Email == "" {
		return nil
	}

	token, err := s.TokenManager.NewRefreshToken()
	if err != nil {
		return err
	}
	reset := models.PasswordResetToken{
		UserID:  user.ID,
		Token:   token,
		Expires: time.Now().Add(time.Hour),
	}
	return s.UserRepo.CreatePasswordResetToken(ctx, reset)
}

func (s *UserService) ResetPassword(ctx context.Context, req models.ResetPasswordRequest) error {
	if req.NewPassword == "" {
		return fmt.Errorf("%w: new password is required", ErrValidation)
	}

	reset, err := s.UserRepo.GetPasswordResetToken(ctx, req.Token)
	if err != nil {
		return err
	}
	if time.Now().After(reset.Expires) {
		return models.ErrInvalidResetToken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := s.UserRepo.UpdatePassword(ctx, reset.UserID, string(hashed)); err != nil {
		return err
	}
	return s.UserRepo.DeletePasswordResetToken(ctx, req.Token)
}

func (s *UserService) RegisterDeviceToken(ctx context.Context, userID, token string) error {
	if token == "" {
		return fmt.Errorf("%w: token is required", ErrValidation)
	}
	return s.UserRepo.SaveDeviceToken(ctx, userID, token)
}

func validRole(role string) bool {
	switch role {
	case "user", "agent", "admin":
		return true
	}
	return false
}

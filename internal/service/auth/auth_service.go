package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/Domenick1991/alkawthar/internal/auth"
	"github.com/Domenick1991/alkawthar/internal/domain"
	"github.com/sirupsen/logrus"
)

type AuthUseCase interface {
	Login(ctx context.Context, username, password string) (*Session, error)
}

type UserFinder interface {
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

type Session struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      *domain.User `json:"user"`
}

type AuthService struct {
	users  UserFinder
	tokens *auth.TokenManager
}

func NewAuthService(users UserFinder, tokens *auth.TokenManager) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// Login never tells an unknown user apart from a wrong password.
func (s *AuthService) Login(ctx context.Context, username, password string) (*Session, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, domain.ErrMissingCredential
	}

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}
	if !auth.CheckPassword(user.Password, password) {
		logrus.WithField("username", username).Warn("failed login")
		return nil, domain.ErrInvalidCredentials
	}

	token, expires, err := s.tokens.Issue(user.ID, user.Username, user.IsAdmin)
	if err != nil {
		return nil, err
	}
	logrus.WithFields(logrus.Fields{"user_id": user.ID, "username": user.Username}).Info("user logged in")
	return &Session{Token: token, ExpiresAt: expires, User: user}, nil
}

var _ AuthUseCase = (*AuthService)(nil)

package application

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/rahadian/member-portal/internal/domain/entity"
	repo "github.com/rahadian/member-portal/internal/domain/repository"
	"github.com/rahadian/member-portal/internal/session"
	"github.com/rahadian/member-portal/pkg/helpers"
)

var (
	// ErrDuplicateUser is returned when signup reuses an existing email.
	ErrDuplicateUser = errors.New("user already exists")
	// ErrAuthenticationFailed covers both unknown email and wrong
	// password. The two cases are deliberately indistinguishable to the
	// caller so the response leaks nothing about which one occurred.
	ErrAuthenticationFailed = errors.New("authentication failed")
)

// Service orchestrates signup and login: validation has already happened
// at the binding layer, the store and hasher are collaborators, and the
// session store receives the resulting session record.
type Service struct {
	Repo       repo.UserRepository
	Sessions   session.Store
	Logger     *logrus.Logger
	SessionTTL time.Duration
}

func NewService(r repo.UserRepository, sessions session.Store, logger *logrus.Logger, sessionTTL time.Duration) *Service {
	return &Service{Repo: r, Sessions: sessions, Logger: logger, SessionTTL: sessionTTL}
}

// SignUp creates a user record with role=user and establishes a session
// for the new user. The email duplicate check is exact and case-sensitive.
// If the insert fails no session is created; the check-then-insert pair is
// not atomic against a concurrent signup with the same email (accepted,
// a unique index on the collection is the store-level fix).
func (s *Service) SignUp(ctx context.Context, name, email, password string) (string, error) {
	existing, err := s.Repo.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, repo.ErrNotFound) {
		return "", err
	}
	if existing != nil {
		return "", ErrDuplicateUser
	}

	hash, err := helpers.HashPassword(password)
	if err != nil {
		return "", err
	}

	u := &entity.User{Name: name, Email: email, Password: hash, Role: entity.RoleUser}
	if err := s.Repo.Create(ctx, u); err != nil {
		return "", err
	}
	s.Logger.WithFields(logrus.Fields{"name": name}).Info("user created")

	sid := session.NewID()
	rec := &session.Record{
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		ExpiresAt: time.Now().Add(s.SessionTTL),
	}
	if err := s.Sessions.Put(ctx, sid, rec, s.SessionTTL); err != nil {
		return "", err
	}
	return sid, nil
}

// Login verifies the password for the single record matching email and
// establishes an authenticated session. Zero matches, multiple matches
// and a hash mismatch all collapse into ErrAuthenticationFailed. There is
// no path that marks a session authenticated without the bcrypt
// comparison succeeding first.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	matches, err := s.Repo.FindAllByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if len(matches) != 1 {
		s.Logger.WithFields(logrus.Fields{"matches": len(matches)}).Debug("login lookup did not yield a single record")
		return "", ErrAuthenticationFailed
	}
	u := matches[0]

	if !helpers.CompareHashAndPassword(u.Password, password) {
		return "", ErrAuthenticationFailed
	}

	sid := session.NewID()
	rec := &session.Record{
		Name:          u.Name,
		Email:         u.Email,
		Authenticated: true,
		Role:          u.Role,
		ExpiresAt:     time.Now().Add(s.SessionTTL),
	}
	if err := s.Sessions.Put(ctx, sid, rec, s.SessionTTL); err != nil {
		return "", err
	}
	s.Logger.WithFields(logrus.Fields{"name": u.Name, "role": u.Role}).Info("login successful")
	return sid, nil
}

// Logout destroys the session record. A missing session is not an error.
func (s *Service) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	return s.Sessions.Delete(ctx, sessionID)
}

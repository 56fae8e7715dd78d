package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/rahadian/member-portal/internal/domain/entity"
)

// SetRole promotes or demotes a user. The target is addressed by name,
// which is not guaranteed unique; inherited limitation of the promotion
// flow, kept as-is. The session of an already-logged-in target is not
// touched: the new role takes effect at their next login.
func (s *Service) SetRole(ctx context.Context, name string, role entity.Role) error {
	if err := s.Repo.UpdateRoleByName(ctx, name, role); err != nil {
		return err
	}
	s.Logger.WithFields(logrus.Fields{"name": name, "role": role}).Info("role updated")
	return nil
}

// ListUsers returns every user record for the admin view.
func (s *Service) ListUsers(ctx context.Context) ([]*entity.User, error) {
	return s.Repo.List(ctx)
}

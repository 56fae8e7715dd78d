package repository

import (
	"context"
	"errors"

	"github.com/rahadian/member-portal/internal/domain/entity"
)

// ErrNotFound is returned when a lookup or update matches no record.
var ErrNotFound = errors.New("not found")

// UserRepository defines the interface for user-related store operations.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	// FindAllByEmail returns every record sharing the email. Login treats
	// anything other than exactly one match as an authentication failure,
	// so the full list is needed, not just the first hit.
	FindAllByEmail(ctx context.Context, email string) ([]*entity.User, error)
	// UpdateRoleByName targets by name, not id. Names are not guaranteed
	// unique; inherited data-quality weakness of the promotion flow.
	UpdateRoleByName(ctx context.Context, name string, role entity.Role) error
	List(ctx context.Context) ([]*entity.User, error)
}

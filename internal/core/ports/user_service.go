package ports

import (
	"context"

	"github.com/spaceshare/rental-api/internal/core/domain"
)

// RegisterInput carries the data for creating a user account. ActorRole is
// the role of the authenticated caller, or empty on the public route;
// creating privileged accounts requires a super_admin actor.
type RegisterInput struct {
	Name      string
	Email     string
	Password  string
	Role      string
	ActorRole string
}

// UserService defines account use cases.
type UserService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	// Login verifies credentials and returns a signed JWT plus the user.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}

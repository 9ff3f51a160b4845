package service

import (
	"context"

	"kentkonut/internal/model"
	"kentkonut/internal/types"
)

// AuthService login and token verification
type AuthService interface {
	Login(ctx context.Context, req types.LoginRequest) (*model.LoginResult, error)
	// Authenticate resolves a bearer token to an active user
	Authenticate(ctx context.Context, token string) (*model.User, error)
	ChangePassword(ctx context.Context, userID int64, req types.ChangePasswordRequest) error
}

// UserService admin user management
type UserService interface {
	GetByID(ctx context.Context, id int64) (*model.User, error)
	List(ctx context.Context, p types.Pagination) (*model.Paginated[model.User], error)
	Create(ctx context.Context, req types.CreateUserRequest) (*model.User, error)
	Update(ctx context.Context, id int64, req types.UpdateUserRequest) (*model.User, error)
	// Delete refuses to remove the caller or the last active admin
	Delete(ctx context.Context, actorID, id int64) error
}

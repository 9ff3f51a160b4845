package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"

	"kentkonut/config"
	"kentkonut/internal/constants"
	"kentkonut/internal/model"
	"kentkonut/internal/repository"
	"kentkonut/internal/types"
	"kentkonut/pkg/logger"
)

// Claims JWT payload
type Claims struct {
	UserID int64      `json:"uid"`
	Role   model.Role `json:"role"`
	jwt.RegisteredClaims
}

// AccountService implements AuthService and UserService
type AccountService struct {
	userRepo repository.TransactionalUserRepository
	secret   []byte
	tokenTTL time.Duration
	logger   *logger.Logger
	now      func() time.Time
}

// NewAccountService creates the service behind both AuthService and UserService
func NewAccountService(userRepo repository.TransactionalUserRepository, cfg config.AuthConfig, logger *logger.Logger) *AccountService {
	return &AccountService{
		userRepo: userRepo,
		secret:   []byte(cfg.JWTSecret),
		tokenTTL: cfg.TokenTTL,
		logger:   logger,
		now:      time.Now,
	}
}

// HashPassword bcrypt hash with the default cost
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

func (s *AccountService) Login(ctx context.Context, req types.LoginRequest) (*model.LoginResult, error) {
	user, err := s.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, constants.ErrNotFound) {
			return nil, constants.NewError(constants.ErrUnauthorized, constants.MsgInvalidCredentials)
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, constants.NewError(constants.ErrUnauthorized, constants.MsgInvalidCredentials)
	}
	if !user.IsActive {
		return nil, constants.NewError(constants.ErrForbidden, constants.MsgAccountDisabled)
	}

	now := s.now()
	token, expiresAt, err := s.issueToken(user, now)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.UpdateLastLogin(ctx, user.ID, now.UTC()); err != nil {
		s.logger.Warn("failed to record last login", "user_id", user.ID, "error", err)
	}

	s.logger.Info("user logged in", "user_id", user.ID, "role", user.Role)
	return &model.LoginResult{Token: token, ExpiresAt: expiresAt, User: user}, nil
}

func (s *AccountService) issueToken(user *model.User, now time.Time) (string, time.Time, error) {
	expiresAt := now.Add(s.tokenTTL)
	claims := Claims{
		UserID: user.ID,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprintf("%d", user.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			Issuer:    "kentkonut",
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, expiresAt, nil
}

func (s *AccountService) Authenticate(ctx context.Context, token string) (*model.User, error) {
	token = strings.TrimSpace(strings.TrimPrefix(token, "Bearer "))
	if token == "" {
		return nil, constants.NewError(constants.ErrUnauthorized, constants.MsgUnauthorized)
	}

	claims := &Claims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, constants.NewError(constants.ErrUnauthorized, constants.MsgInvalidToken)
	}

	user, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, constants.ErrNotFound) {
			return nil, constants.NewError(constants.ErrUnauthorized, constants.MsgInvalidToken)
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, constants.NewError(constants.ErrForbidden, constants.MsgAccountDisabled)
	}
	return user, nil
}

func (s *AccountService) ChangePassword(ctx context.Context, userID int64, req types.ChangePasswordRequest) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.CurrentPassword)); err != nil {
		return constants.NewError(constants.ErrBadRequest, "Mevcut şifre hatalı")
	}
	if user.Password, err = HashPassword(req.NewPassword); err != nil {
		return err
	}
	return s.userRepo.Update(ctx, user)
}

func (s *AccountService) GetByID(ctx context.Context, id int64) (*model.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

func (s *AccountService) List(ctx context.Context, p types.Pagination) (*model.Paginated[model.User], error) {
	p = normalize(p)
	total, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	users, err := s.userRepo.List(ctx, p.Offset(), p.PageSize)
	if err != nil {
		return nil, err
	}
	return model.NewPaginated(users, total, p.Page, p.PageSize), nil
}

func (s *AccountService) Create(ctx context.Context, req types.CreateUserRequest) (*model.User, error) {
	hash, err := HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Name:     strings.TrimSpace(req.Name),
		Email:    strings.ToLower(strings.TrimSpace(req.Email)),
		Password: hash,
		Role:     model.RoleEditor,
		IsActive: true,
	}
	if req.Role != "" {
		user.Role = model.Role(req.Role)
	}
	setIf(&user.IsActive, req.IsActive)

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, constants.ErrConflict) {
			return nil, constants.NewError(constants.ErrConflict, constants.MsgEmailExists)
		}
		return nil, err
	}
	return s.userRepo.GetByID(ctx, user.ID)
}

func (s *AccountService) Update(ctx context.Context, id int64, req types.UpdateUserRequest) (*model.User, error) {
	var updated *model.User
	err := s.userRepo.InTx(ctx, func(tx *sqlx.Tx) error {
		repo := s.userRepo.WithTx(tx)
		user, err := repo.GetByID(ctx, id)
		if err != nil {
			return err
		}

		wasActiveAdmin := user.Role == model.RoleAdmin && user.IsActive
		setIf(&user.Name, req.Name)
		if req.Email != nil {
			user.Email = strings.ToLower(strings.TrimSpace(*req.Email))
		}
		if req.Role != nil {
			user.Role = model.Role(*req.Role)
		}
		setIf(&user.IsActive, req.IsActive)
		if req.Password != nil {
			if user.Password, err = HashPassword(*req.Password); err != nil {
				return err
			}
		}

		if wasActiveAdmin && (user.Role != model.RoleAdmin || !user.IsActive) {
			if err := ensureAnotherAdmin(ctx, repo); err != nil {
				return err
			}
		}

		if err := repo.Update(ctx, user); err != nil {
			if errors.Is(err, constants.ErrConflict) {
				return constants.NewError(constants.ErrConflict, constants.MsgEmailExists)
			}
			return err
		}
		updated = user
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *AccountService) Delete(ctx context.Context, actorID, id int64) error {
	if actorID == id {
		return constants.NewError(constants.ErrBadRequest, constants.MsgCannotDeleteSelf)
	}
	return s.userRepo.InTx(ctx, func(tx *sqlx.Tx) error {
		repo := s.userRepo.WithTx(tx)
		user, err := repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if user.Role == model.RoleAdmin && user.IsActive {
			if err := ensureAnotherAdmin(ctx, repo); err != nil {
				return err
			}
		}
		return repo.Delete(ctx, id)
	})
}

// ensureAnotherAdmin fails when the target is the only active admin left
func ensureAnotherAdmin(ctx context.Context, repo repository.UserRepository) error {
	n, err := repo.CountActiveAdmins(ctx)
	if err != nil {
		return err
	}
	if n <= 1 {
		return constants.NewError(constants.ErrBadRequest, "Son yönetici hesabı kaldırılamaz")
	}
	return nil
}

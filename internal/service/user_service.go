package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"personnel/internal/model"
	"personnel/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=user_service.go -destination=../mocks/user_service.go -package=mocks

// DTOs for Request validation
type CreateUserRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"required,oneof=admin hr accountant viewer"`
	Locale   string `json:"locale" binding:"omitempty,oneof=en ru tr"`
}

type LoginUserRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type TokenResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	ExpiresIn    int64        `json:"expires_in"` // seconds
	User         UserResponse `json:"user"`
}

// DTO for returning User without exposing sensitive data (e.g. password)
type UserResponse struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Locale    string `json:"locale"`
	CreatedAt string `json:"created_at"`
}

type AuthOptions struct {
	Secret          string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
}

// UserService covers operator accounts and their sessions
type UserService interface {
	CreateUser(ctx context.Context, req CreateUserRequest) (UserResponse, error)
	Login(ctx context.Context, req LoginUserRequest) (TokenResponse, error)
	Refresh(ctx context.Context, refreshToken string) (TokenResponse, error)
	Logout(ctx context.Context, refreshToken string) error
	GetMe(ctx context.Context, userID string) (UserResponse, error)
	EnsureBootstrapAdmin(ctx context.Context, username, email, password string) error
}

type userService struct {
	repo      repository.UserRepository
	txManager repository.TransactionManager
	log       *slog.Logger
	opts      AuthOptions
	now       func() time.Time
}

// NewUserService returns a new instance of UserService
func NewUserService(repo repository.UserRepository, txManager repository.TransactionManager, log *slog.Logger, opts AuthOptions) UserService {
	return &userService{repo: repo, txManager: txManager, log: log, opts: opts, now: time.Now}
}

func mapToResponse(user *model.User) UserResponse {
	return UserResponse{
		ID:        user.ID.String(),
		Username:  user.Username,
		Email:     user.Email,
		Role:      user.Role,
		Locale:    user.Locale,
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
	}
}

func (s *userService) CreateUser(ctx context.Context, req CreateUserRequest) (UserResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return UserResponse{}, ErrUserExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return UserResponse{}, fmt.Errorf("failed to check email: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	locale := req.Locale
	if locale == "" {
		locale = model.LocaleEnglish
	}

	user := &model.User{
		Username: strings.TrimSpace(req.Username),
		Email:    email,
		Password: string(hashedPassword),
		Role:     req.Role,
		Locale:   locale,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return UserResponse{}, ErrUserExists
		}
		return UserResponse{}, fmt.Errorf("failed to create user: %w", err)
	}

	return mapToResponse(user), nil
}

func (s *userService) Login(ctx context.Context, req LoginUserRequest) (TokenResponse, error) {
	user, err := s.repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return TokenResponse{}, ErrUnauthenticated
		}
		return TokenResponse{}, fmt.Errorf("failed to fetch user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return TokenResponse{}, ErrUnauthenticated
	}

	return s.issueTokens(ctx, user)
}

// Refresh rotates the refresh token: the presented one is consumed and a new pair is issued.
func (s *userService) Refresh(ctx context.Context, refreshToken string) (TokenResponse, error) {
	if refreshToken == "" {
		return TokenResponse{}, ErrUnauthenticated
	}

	var res TokenResponse
	err := s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		stored, err := s.repo.FindRefreshToken(txCtx, refreshToken)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUnauthenticated
			}
			return fmt.Errorf("failed to fetch refresh token: %w", err)
		}

		if err := s.repo.DeleteRefreshToken(txCtx, refreshToken); err != nil {
			return fmt.Errorf("failed to revoke refresh token: %w", err)
		}

		user, err := s.repo.GetByID(txCtx, stored.UserID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUnauthenticated
			}
			return fmt.Errorf("failed to fetch user: %w", err)
		}

		res, err = s.issueTokens(txCtx, user)
		return err
	})
	if err != nil {
		return TokenResponse{}, err
	}
	return res, nil
}

func (s *userService) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	if err := s.repo.DeleteRefreshToken(ctx, refreshToken); err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}
	return nil
}

func (s *userService) GetMe(ctx context.Context, userID string) (UserResponse, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return UserResponse{}, ErrUnauthenticated
	}

	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return UserResponse{}, fmt.Errorf("%w: user %s", ErrNotFound, userID)
		}
		return UserResponse{}, fmt.Errorf("failed to fetch user: %w", err)
	}
	return mapToResponse(user), nil
}

// EnsureBootstrapAdmin creates the first admin account when none exists and credentials are configured.
func (s *userService) EnsureBootstrapAdmin(ctx context.Context, username, email, password string) error {
	if email == "" || password == "" {
		return nil
	}

	count, err := s.repo.CountByRole(ctx, model.RoleAdmin)
	if err != nil {
		return fmt.Errorf("failed to count admins: %w", err)
	}
	if count > 0 {
		return nil
	}

	if _, err := s.CreateUser(ctx, CreateUserRequest{
		Username: username,
		Email:    email,
		Password: password,
		Role:     model.RoleAdmin,
	}); err != nil {
		return fmt.Errorf("failed to create bootstrap admin: %w", err)
	}

	s.log.InfoContext(ctx, "bootstrap admin created", slog.String("email", email))
	return nil
}

func (s *userService) issueTokens(ctx context.Context, user *model.User) (TokenResponse, error) {
	now := s.now()

	access, err := IssueAccessToken(s.opts.Secret, user.ID.String(), user.Role, user.Locale, s.opts.AccessTokenTTL, now)
	if err != nil {
		return TokenResponse{}, fmt.Errorf("failed to generate token: %w", err)
	}

	refresh := &model.RefreshToken{
		UserID:    user.ID,
		Token:     uuid.NewString(),
		ExpiresAt: now.Add(s.opts.RefreshTokenTTL),
	}
	if err := s.repo.SaveRefreshToken(ctx, refresh); err != nil {
		return TokenResponse{}, fmt.Errorf("failed to save refresh token: %w", err)
	}

	return TokenResponse{
		AccessToken:  access,
		RefreshToken: refresh.Token,
		ExpiresIn:    int64(s.opts.AccessTokenTTL.Seconds()),
		User:         mapToResponse(user),
	}, nil
}

package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/interview-express/experience_service/internal/common"
	"github.com/interview-express/experience_service/internal/domain"
	"github.com/interview-express/experience_service/internal/dto"
	"github.com/interview-express/experience_service/internal/helper"
	"github.com/interview-express/experience_service/internal/helper/utils"
	"github.com/interview-express/experience_service/internal/repository"
)

type UserService interface {
	// Auth
	Login(ctx context.Context, input dto.LoginRequest) (*dto.TokenResponse, error)
	DirectLogin(ctx context.Context, phone string) (*dto.TokenResponse, error)
	GetOrCreateUser(phone, requestedUsername string) (*domain.User, error)

	// Profile
	GetProfileByPhone(phone string) (*domain.User, error)
	UpdateProfileByPhone(phone string, input dto.UpdateUserProfile) (*domain.User, error)
}

type userService struct {
	repo         repository.UserRepository
	verification VerificationService
	auth         helper.Auth
}

func NewUserService(
	repo repository.UserRepository,
	verification VerificationService,
	auth helper.Auth,
) UserService {
	return &userService{
		repo:         repo,
		verification: verification,
		auth:         auth,
	}
}

// Login resolves the phone to a user (creating one on first sight) and
// issues a token. When a verification code is supplied it must check
// out; without one the caller is trusted on the phone alone.
func (u *userService) Login(ctx context.Context, input dto.LoginRequest) (*dto.TokenResponse, error) {
	phone := strings.TrimSpace(input.Phone)
	if !utils.IsValidPhone(phone) {
		return nil, fmt.Errorf("%w: phone must be 11 digits", common.ErrInvalidInput)
	}

	if input.Code != "" {
		if !u.verification.VerifyCode(ctx, phone, strings.TrimSpace(input.Code)) {
			return nil, fmt.Errorf("%w: invalid verification code", common.ErrInvalidCredential)
		}
	}

	return u.issueToken(phone, strings.TrimSpace(input.Username))
}

// DirectLogin skips code verification entirely. Any caller knowing a
// well-formed phone obtains a session; keep this behind a trusted edge.
func (u *userService) DirectLogin(_ context.Context, phone string) (*dto.TokenResponse, error) {
	phone = strings.TrimSpace(phone)
	if !utils.IsValidPhone(phone) {
		return nil, fmt.Errorf("%w: phone must be 11 digits", common.ErrInvalidInput)
	}

	log.Printf("direct login (no code check) for %s", utils.MaskPhone(phone))
	return u.issueToken(phone, "")
}

func (u *userService) issueToken(phone, requestedUsername string) (*dto.TokenResponse, error) {
	user, err := u.GetOrCreateUser(phone, requestedUsername)
	if err != nil {
		return nil, err
	}

	token, err := u.auth.GenerateToken(user.Phone)
	if err != nil {
		return nil, errors.New("could not generate token")
	}

	return &dto.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        dto.NewUserResponse(user),
	}, nil
}

// GetOrCreateUser is idempotent per phone: the second call returns the
// user the first call created.
func (u *userService) GetOrCreateUser(phone, requestedUsername string) (*domain.User, error) {
	if !utils.IsValidPhone(phone) {
		return nil, fmt.Errorf("%w: phone must be 11 digits", common.ErrInvalidInput)
	}
	if len(requestedUsername) > 50 {
		return nil, fmt.Errorf("%w: username exceeds 50 characters", common.ErrInvalidInput)
	}

	user, err := u.repo.FindUserByPhone(phone)
	if err == nil && user != nil {
		return user, nil
	}
	if !errors.Is(err, common.ErrNotFound) {
		return nil, err
	}

	username := requestedUsername
	if username == "" {
		username = utils.MaskPhone(phone)
	}

	newUser := &domain.User{
		Phone:    phone,
		Username: username,
		IsActive: true,
	}

	created, err := u.repo.CreateUser(newUser)
	if err != nil {
		return nil, err
	}
	if created == nil || created.ID == 0 {
		return nil, errors.New("failed to create user")
	}

	return created, nil
}

func (u *userService) GetProfileByPhone(phone string) (*domain.User, error) {
	user, err := u.repo.FindUserByPhone(phone)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateProfileByPhone applies a partial patch: unset fields stay
// untouched. Phone itself is immutable.
func (u *userService) UpdateProfileByPhone(phone string, input dto.UpdateUserProfile) (*domain.User, error) {
	user, err := u.repo.FindUserByPhone(phone)
	if err != nil {
		return nil, err
	}

	if input.Username != nil {
		name := strings.TrimSpace(*input.Username)
		if name == "" {
			return nil, fmt.Errorf("%w: username cannot be empty", common.ErrInvalidInput)
		}
		if len(name) > 50 {
			return nil, fmt.Errorf("%w: username exceeds 50 characters", common.ErrInvalidInput)
		}
		user.Username = name
	}

	if input.Avatar != nil {
		user.Avatar = strings.TrimSpace(*input.Avatar)
	}

	if input.Bio != nil {
		user.Bio = *input.Bio
	}

	if err := u.repo.SaveUser(user); err != nil {
		return nil, err
	}

	return user, nil
}

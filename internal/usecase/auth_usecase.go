package usecase

import (
	"fmt"

	"stylefeed/internal/repo/persistent"
	"stylefeed/pkg/jwt"
	"stylefeed/pkg/logger"
	"stylefeed/pkg/models"

	"golang.org/x/crypto/bcrypt"
)

type AuthUseCase interface {
	Register(email, username, password string) (*models.User, string, error)
	Login(email, password string) (*models.User, string, error)
	GetUser(userID string) (*models.User, error)
}

type authUseCase struct {
	userRepo   persistent.UserRepository
	jwtService *jwt.Service
	logger     *logger.Logger
}

func NewAuthUseCase(userRepo persistent.UserRepository, jwtService *jwt.Service, logger *logger.Logger) AuthUseCase {
	return &authUseCase{
		userRepo:   userRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

func (uc *authUseCase) Register(email, username, password string) (*models.User, string, error) {
	if email == "" || username == "" || len(password) < 8 {
		return nil, "", fmt.Errorf("%w: email, username and a password of at least 8 characters are required", ErrValidation)
	}

	if _, err := uc.userRepo.GetByEmail(email); err == nil {
		return nil, "", fmt.Errorf("%w: user with this email already exists", ErrConflict)
	}
	if _, err := uc.userRepo.GetByUsername(username); err == nil {
		return nil, "", fmt.Errorf("%w: username already taken", ErrConflict)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		uc.logger.Error("Failed to hash password: %v", err)
		return nil, "", fmt.Errorf("%w: failed to process registration", ErrUpstream)
	}

	user := &models.User{
		Email:    email,
		Username: username,
		Password: string(hashedPassword),
		IsActive: true,
	}

	if err := uc.userRepo.Create(user); err != nil {
		uc.logger.Error("Failed to create user: %v", err)
		return nil, "", fmt.Errorf("%w: failed to create user", ErrUpstream)
	}

	token, err := uc.jwtService.GenerateToken(user.ID, "user")
	if err != nil {
		uc.logger.Error("Failed to generate token: %v", err)
		return nil, "", fmt.Errorf("%w: failed to generate token", ErrUpstream)
	}

	user.Password = ""
	return user, token, nil
}

func (uc *authUseCase) Login(email, password string) (*models.User, string, error) {
	user, err := uc.userRepo.GetByEmail(email)
	if err != nil {
		return nil, "", fmt.Errorf("%w: invalid credentials", ErrUnauthenticated)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", fmt.Errorf("%w: invalid credentials", ErrUnauthenticated)
	}

	if !user.IsActive {
		return nil, "", fmt.Errorf("%w: account is deactivated", ErrForbidden)
	}

	token, err := uc.jwtService.GenerateToken(user.ID, "user")
	if err != nil {
		uc.logger.Error("Failed to generate token: %v", err)
		return nil, "", fmt.Errorf("%w: failed to generate token", ErrUpstream)
	}

	user.Password = ""
	return user, token, nil
}

func (uc *authUseCase) GetUser(userID string) (*models.User, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: user", ErrNotFound)
	}
	user.Password = ""
	return user, nil
}

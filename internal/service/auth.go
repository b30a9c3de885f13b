package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/jjam103/wedding-platform-v2-sub016/internal/domain"
	"github.com/jjam103/wedding-platform-v2-sub016/internal/repository"
)

var (
	ErrAdminEmailExists = repository.ErrAdminEmailExists
	ErrAdminNotFound    = repository.ErrAdminNotFound
	ErrWrongPassword    = errors.New("wrong password")
)

type AdminUserRepository interface {
	Create(ctx context.Context, user domain.AdminUser) (domain.AdminUser, error)
	FindByID(ctx context.Context, id uint) (domain.AdminUser, error)
	FindByEmail(ctx context.Context, email string) (domain.AdminUser, error)
}

type AuthService struct {
	repo AdminUserRepository
}

func NewAuthService(repo AdminUserRepository) *AuthService {
	return &AuthService{
		repo: repo,
	}
}

func (s *AuthService) Signup(ctx context.Context, user domain.AdminUser) (domain.AdminUser, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.AdminUser{}, err
	}
	user.Password = string(hash)

	if user.Role == "" {
		user.Role = "admin"
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return domain.AdminUser{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (domain.AdminUser, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			return domain.AdminUser{}, ErrAdminNotFound
		}

		return domain.AdminUser{}, fmt.Errorf("s.repo.FindByEmail -> %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return domain.AdminUser{}, ErrWrongPassword
	}

	return user, nil
}

func (s *AuthService) GetAdmin(ctx context.Context, id uint) (domain.AdminUser, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.AdminUser{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return user, nil
}

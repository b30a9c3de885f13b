package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jjam103/wedding-platform-v2-sub016/internal/domain"
	"github.com/jjam103/wedding-platform-v2-sub016/internal/repository"
)

type fakeAdminRepo struct {
	users  map[uint]domain.AdminUser
	nextID uint
}

func newFakeAdminRepo() *fakeAdminRepo {
	return &fakeAdminRepo{users: make(map[uint]domain.AdminUser), nextID: 1}
}

func (f *fakeAdminRepo) Create(_ context.Context, user domain.AdminUser) (domain.AdminUser, error) {
	for _, u := range f.users {
		if u.Email == user.Email {
			return domain.AdminUser{}, repository.ErrAdminEmailExists
		}
	}

	user.ID = f.nextID
	f.nextID++
	f.users[user.ID] = user

	return user, nil
}

func (f *fakeAdminRepo) FindByID(_ context.Context, id uint) (domain.AdminUser, error) {
	user, ok := f.users[id]
	if !ok {
		return domain.AdminUser{}, repository.ErrAdminNotFound
	}

	return user, nil
}

func (f *fakeAdminRepo) FindByEmail(_ context.Context, email string) (domain.AdminUser, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}

	return domain.AdminUser{}, repository.ErrAdminNotFound
}

func TestAuthService_SignupAndLogin(t *testing.T) {
	svc := NewAuthService(newFakeAdminRepo())

	created, err := svc.Signup(context.Background(), domain.AdminUser{
		Email:    "planner@example.com",
		Password: "correct-horse-1",
		Name:     "Planner",
	})
	require.NoError(t, err)
	assert.Equal(t, "admin", created.Role)
	assert.NotEqual(t, "correct-horse-1", created.Password, "password must be stored hashed")

	user, err := svc.Login(context.Background(), "planner@example.com", "correct-horse-1")
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)

	_, err = svc.Login(context.Background(), "planner@example.com", "wrong")
	require.ErrorIs(t, err, ErrWrongPassword)

	_, err = svc.Login(context.Background(), "nobody@example.com", "correct-horse-1")
	require.ErrorIs(t, err, ErrAdminNotFound)
}

func TestAuthService_Signup_DuplicateEmail(t *testing.T) {
	svc := NewAuthService(newFakeAdminRepo())

	_, err := svc.Signup(context.Background(), domain.AdminUser{
		Email:    "planner@example.com",
		Password: "correct-horse-1",
	})
	require.NoError(t, err)

	_, err = svc.Signup(context.Background(), domain.AdminUser{
		Email:    "planner@example.com",
		Password: "another-password-2",
	})
	require.ErrorIs(t, err, ErrAdminEmailExists)
}

func TestAuthService_Signup_KeepsExplicitRole(t *testing.T) {
	svc := NewAuthService(newFakeAdminRepo())

	created, err := svc.Signup(context.Background(), domain.AdminUser{
		Email:    "owner@example.com",
		Password: "correct-horse-1",
		Role:     "owner",
	})
	require.NoError(t, err)
	assert.Equal(t, "owner", created.Role)
}

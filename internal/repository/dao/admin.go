package dao

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrAdminEmailExists = errors.New("admin user already exists")
	ErrAdminNotFound    = errors.New("admin user not found")
)

type AdminUser struct {
	ID uint `gorm:"primaryKey"`

	Email    string `gorm:"unique;not null"`
	Password string `gorm:"not null"`

	Name string `gorm:"not null"`
	Role string `gorm:"not null;default:admin"` // "owner" or "admin"

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type AdminUserDAO struct {
	db *gorm.DB
}

func NewAdminUserDAO(db *gorm.DB) *AdminUserDAO {
	return &AdminUserDAO{
		db: db,
	}
}

func (d *AdminUserDAO) Insert(ctx context.Context, user AdminUser) (AdminUser, error) {
	result := d.db.WithContext(ctx).Create(&user)
	if result.Error != nil {
		var err *pgconn.PgError
		if errors.As(result.Error, &err) &&
			err.Code == pgerrcode.UniqueViolation &&
			strings.Contains(err.Message, `unique constraint "uni_admin_users_email"`) {
			return AdminUser{}, ErrAdminEmailExists
		}

		return AdminUser{}, result.Error
	}

	return user, nil
}

func (d *AdminUserDAO) FindByID(ctx context.Context, id uint) (AdminUser, error) {
	var user AdminUser

	result := d.db.WithContext(ctx).First(&user, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return AdminUser{}, ErrAdminNotFound
		}

		return AdminUser{}, result.Error
	}

	return user, nil
}

func (d *AdminUserDAO) FindByEmail(ctx context.Context, email string) (AdminUser, error) {
	var user AdminUser

	result := d.db.WithContext(ctx).First(&user, "email = ?", email)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return AdminUser{}, ErrAdminNotFound
		}

		return AdminUser{}, result.Error
	}

	return user, nil
}

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
	ErrPageNotFound    = errors.New("content page not found")
	ErrPageSlugExists  = errors.New("content page slug already exists")
	ErrSectionNotFound = errors.New("section not found")
)

type ContentPage struct {
	ID uint `gorm:"primaryKey"`

	Slug   string `gorm:"unique;not null"`
	Title  string `gorm:"not null"`
	Status string `gorm:"not null;default:draft"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// SectionReference mirrors domain.Reference for JSON storage.
type SectionReference struct {
	Type string `json:"type"`
	ID   uint   `json:"id"`
}

type Section struct {
	ID uint `gorm:"primaryKey"`

	PageType     string `gorm:"not null;index:idx_sections_page"`
	PageID       uint   `gorm:"not null;index:idx_sections_page"`
	DisplayOrder int    `gorm:"not null;default:0"`
	Title        string
	Body         string
	References   []SectionReference `gorm:"serializer:json"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

type ContentDAO struct {
	db *gorm.DB
}

func NewContentDAO(db *gorm.DB) *ContentDAO {
	return &ContentDAO{
		db: db,
	}
}

func (d *ContentDAO) InsertPage(ctx context.Context, page ContentPage) (ContentPage, error) {
	result := d.db.WithContext(ctx).Create(&page)
	if result.Error != nil {
		var err *pgconn.PgError
		if errors.As(result.Error, &err) &&
			err.Code == pgerrcode.UniqueViolation &&
			strings.Contains(err.Message, `unique constraint "uni_content_pages_slug"`) {
			return ContentPage{}, ErrPageSlugExists
		}

		return ContentPage{}, result.Error
	}

	return page, nil
}

func (d *ContentDAO) FindPageByID(ctx context.Context, id uint) (ContentPage, error) {
	var page ContentPage

	result := d.db.WithContext(ctx).First(&page, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return ContentPage{}, ErrPageNotFound
		}

		return ContentPage{}, result.Error
	}

	return page, nil
}

func (d *ContentDAO) FindPageBySlug(ctx context.Context, slug string) (ContentPage, error) {
	var page ContentPage

	result := d.db.WithContext(ctx).First(&page, "slug = ?", slug)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return ContentPage{}, ErrPageNotFound
		}

		return ContentPage{}, result.Error
	}

	return page, nil
}

func (d *ContentDAO) UpdatePage(ctx context.Context, page ContentPage) (ContentPage, error) {
	result := d.db.WithContext(ctx).Save(&page)
	if result.Error != nil {
		return ContentPage{}, result.Error
	}

	return page, nil
}

func (d *ContentDAO) DeletePage(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&ContentPage{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPageNotFound
	}

	return nil
}

func (d *ContentDAO) ListPages(ctx context.Context) ([]ContentPage, error) {
	var pages []ContentPage

	result := d.db.WithContext(ctx).Order("slug").Find(&pages)
	if result.Error != nil {
		return nil, result.Error
	}

	return pages, nil
}

func (d *ContentDAO) InsertSection(ctx context.Context, section Section) (Section, error) {
	result := d.db.WithContext(ctx).Create(&section)
	if result.Error != nil {
		return Section{}, result.Error
	}

	return section, nil
}

func (d *ContentDAO) UpdateSection(ctx context.Context, section Section) (Section, error) {
	result := d.db.WithContext(ctx).Save(&section)
	if result.Error != nil {
		return Section{}, result.Error
	}

	return section, nil
}

func (d *ContentDAO) FindSectionByID(ctx context.Context, id uint) (Section, error) {
	var section Section

	result := d.db.WithContext(ctx).First(&section, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Section{}, ErrSectionNotFound
		}

		return Section{}, result.Error
	}

	return section, nil
}

func (d *ContentDAO) DeleteSection(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Section{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSectionNotFound
	}

	return nil
}

// ListSectionsByPage returns the page's sections in display order.
func (d *ContentDAO) ListSectionsByPage(ctx context.Context, pageType string, pageID uint) ([]Section, error) {
	var sections []Section

	result := d.db.WithContext(ctx).
		Where("page_type = ? AND page_id = ?", pageType, pageID).
		Order("display_order").
		Find(&sections)
	if result.Error != nil {
		return nil, result.Error
	}

	return sections, nil
}

// ExistsAlive reports whether the referenced row exists and is not
// soft-deleted. Locations have no soft delete, so existence is enough.
func (d *ContentDAO) ExistsAlive(ctx context.Context, refType string, id uint) (bool, error) {
	var (
		count int64
		err   error
	)

	switch refType {
	case "event":
		err = d.db.WithContext(ctx).Model(&Event{}).Where("id = ?", id).Count(&count).Error
	case "activity":
		err = d.db.WithContext(ctx).Model(&Activity{}).Where("id = ?", id).Count(&count).Error
	case "accommodation":
		err = d.db.WithContext(ctx).Model(&Accommodation{}).Where("id = ?", id).Count(&count).Error
	case "content_page":
		err = d.db.WithContext(ctx).Model(&ContentPage{}).Where("id = ?", id).Count(&count).Error
	case "location":
		err = d.db.WithContext(ctx).Model(&Location{}).Where("id = ?", id).Count(&count).Error
	default:
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

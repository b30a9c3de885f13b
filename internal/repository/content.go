package repository

import (
	"context"
	"fmt"

	"github.com/jjam103/wedding-platform-v2-sub016/internal/domain"
	"github.com/jjam103/wedding-platform-v2-sub016/internal/repository/dao"
)

var (
	ErrPageNotFound    = dao.ErrPageNotFound
	ErrPageSlugExists  = dao.ErrPageSlugExists
	ErrSectionNotFound = dao.ErrSectionNotFound
)

type ContentDAO interface {
	InsertPage(ctx context.Context, page dao.ContentPage) (dao.ContentPage, error)
	FindPageByID(ctx context.Context, id uint) (dao.ContentPage, error)
	FindPageBySlug(ctx context.Context, slug string) (dao.ContentPage, error)
	UpdatePage(ctx context.Context, page dao.ContentPage) (dao.ContentPage, error)
	DeletePage(ctx context.Context, id uint) error
	ListPages(ctx context.Context) ([]dao.ContentPage, error)
	InsertSection(ctx context.Context, section dao.Section) (dao.Section, error)
	UpdateSection(ctx context.Context, section dao.Section) (dao.Section, error)
	FindSectionByID(ctx context.Context, id uint) (dao.Section, error)
	DeleteSection(ctx context.Context, id uint) error
	ListSectionsByPage(ctx context.Context, pageType string, pageID uint) ([]dao.Section, error)
	ExistsAlive(ctx context.Context, refType string, id uint) (bool, error)
}

type ContentRepository struct {
	dao ContentDAO
}

func NewContentRepository(dao ContentDAO) *ContentRepository {
	return &ContentRepository{
		dao: dao,
	}
}

func (r *ContentRepository) pageDaoToDomain(p dao.ContentPage) domain.ContentPage {
	return domain.ContentPage{
		ID:        p.ID,
		Slug:      p.Slug,
		Title:     p.Title,
		Status:    p.Status,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func (r *ContentRepository) sectionDomainToDao(s domain.Section) dao.Section {
	references := make([]dao.SectionReference, len(s.References))
	for i, ref := range s.References {
		references[i] = dao.SectionReference{Type: ref.Type, ID: ref.ID}
	}

	return dao.Section{
		ID:           s.ID,
		PageType:     s.PageType,
		PageID:       s.PageID,
		DisplayOrder: s.DisplayOrder,
		Title:        s.Title,
		Body:         s.Body,
		References:   references,
		CreatedAt:    s.CreatedAt,
	}
}

func (r *ContentRepository) sectionDaoToDomain(s dao.Section) domain.Section {
	references := make([]domain.Reference, len(s.References))
	for i, ref := range s.References {
		references[i] = domain.Reference{Type: ref.Type, ID: ref.ID}
	}

	return domain.Section{
		ID:           s.ID,
		PageType:     s.PageType,
		PageID:       s.PageID,
		DisplayOrder: s.DisplayOrder,
		Title:        s.Title,
		Body:         s.Body,
		References:   references,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}

func (r *ContentRepository) CreatePage(ctx context.Context, page domain.ContentPage) (domain.ContentPage, error) {
	created, err := r.dao.InsertPage(ctx, dao.ContentPage{
		ID:     page.ID,
		Slug:   page.Slug,
		Title:  page.Title,
		Status: page.Status,
	})
	if err != nil {
		return domain.ContentPage{}, fmt.Errorf("r.dao.InsertPage -> %w", err)
	}

	return r.pageDaoToDomain(created), nil
}

func (r *ContentRepository) FindPageByID(ctx context.Context, id uint) (domain.ContentPage, error) {
	page, err := r.dao.FindPageByID(ctx, id)
	if err != nil {
		return domain.ContentPage{}, fmt.Errorf("r.dao.FindPageByID -> %w", err)
	}

	return r.pageDaoToDomain(page), nil
}

func (r *ContentRepository) FindPageBySlug(ctx context.Context, slug string) (domain.ContentPage, error) {
	page, err := r.dao.FindPageBySlug(ctx, slug)
	if err != nil {
		return domain.ContentPage{}, fmt.Errorf("r.dao.FindPageBySlug -> %w", err)
	}

	return r.pageDaoToDomain(page), nil
}

func (r *ContentRepository) UpdatePage(ctx context.Context, page domain.ContentPage) (domain.ContentPage, error) {
	updated, err := r.dao.UpdatePage(ctx, dao.ContentPage{
		ID:        page.ID,
		Slug:      page.Slug,
		Title:     page.Title,
		Status:    page.Status,
		CreatedAt: page.CreatedAt,
	})
	if err != nil {
		return domain.ContentPage{}, fmt.Errorf("r.dao.UpdatePage -> %w", err)
	}

	return r.pageDaoToDomain(updated), nil
}

func (r *ContentRepository) DeletePage(ctx context.Context, id uint) error {
	return r.dao.DeletePage(ctx, id)
}

func (r *ContentRepository) ListPages(ctx context.Context) ([]domain.ContentPage, error) {
	pages, err := r.dao.ListPages(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListPages -> %w", err)
	}

	converted := make([]domain.ContentPage, len(pages))
	for i, p := range pages {
		converted[i] = r.pageDaoToDomain(p)
	}

	return converted, nil
}

func (r *ContentRepository) CreateSection(ctx context.Context, section domain.Section) (domain.Section, error) {
	created, err := r.dao.InsertSection(ctx, r.sectionDomainToDao(section))
	if err != nil {
		return domain.Section{}, fmt.Errorf("r.dao.InsertSection -> %w", err)
	}

	return r.sectionDaoToDomain(created), nil
}

func (r *ContentRepository) UpdateSection(ctx context.Context, section domain.Section) (domain.Section, error) {
	updated, err := r.dao.UpdateSection(ctx, r.sectionDomainToDao(section))
	if err != nil {
		return domain.Section{}, fmt.Errorf("r.dao.UpdateSection -> %w", err)
	}

	return r.sectionDaoToDomain(updated), nil
}

func (r *ContentRepository) FindSectionByID(ctx context.Context, id uint) (domain.Section, error) {
	section, err := r.dao.FindSectionByID(ctx, id)
	if err != nil {
		return domain.Section{}, fmt.Errorf("r.dao.FindSectionByID -> %w", err)
	}

	return r.sectionDaoToDomain(section), nil
}

func (r *ContentRepository) DeleteSection(ctx context.Context, id uint) error {
	return r.dao.DeleteSection(ctx, id)
}

func (r *ContentRepository) ListSectionsByPage(ctx context.Context, pageType string, pageID uint) ([]domain.Section, error) {
	sections, err := r.dao.ListSectionsByPage(ctx, pageType, pageID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListSectionsByPage -> %w", err)
	}

	converted := make([]domain.Section, len(sections))
	for i, s := range sections {
		converted[i] = r.sectionDaoToDomain(s)
	}

	return converted, nil
}

// ReferenceExists reports whether the referenced row is present and not
// soft-deleted.
func (r *ContentRepository) ReferenceExists(ctx context.Context, ref domain.Reference) (bool, error) {
	exists, err := r.dao.ExistsAlive(ctx, ref.Type, ref.ID)
	if err != nil {
		return false, fmt.Errorf("r.dao.ExistsAlive -> %w", err)
	}

	return exists, nil
}

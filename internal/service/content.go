package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jjam103/wedding-platform-v2-sub016/internal/domain"
	"github.com/jjam103/wedding-platform-v2-sub016/internal/repository"
)

var (
	ErrPageNotFound      = repository.ErrPageNotFound
	ErrPageSlugExists    = repository.ErrPageSlugExists
	ErrSectionNotFound   = repository.ErrSectionNotFound
	ErrBrokenReference   = errors.New("section references missing content")
	ErrCircularReference = errors.New("section references form a cycle")
)

type ContentRepository interface {
	CreatePage(ctx context.Context, page domain.ContentPage) (domain.ContentPage, error)
	FindPageByID(ctx context.Context, id uint) (domain.ContentPage, error)
	FindPageBySlug(ctx context.Context, slug string) (domain.ContentPage, error)
	UpdatePage(ctx context.Context, page domain.ContentPage) (domain.ContentPage, error)
	DeletePage(ctx context.Context, id uint) error
	ListPages(ctx context.Context) ([]domain.ContentPage, error)
	CreateSection(ctx context.Context, section domain.Section) (domain.Section, error)
	UpdateSection(ctx context.Context, section domain.Section) (domain.Section, error)
	FindSectionByID(ctx context.Context, id uint) (domain.Section, error)
	DeleteSection(ctx context.Context, id uint) error
	ListSectionsByPage(ctx context.Context, pageType string, pageID uint) ([]domain.Section, error)
	ReferenceExists(ctx context.Context, ref domain.Reference) (bool, error)
}

type ContentService struct {
	repo ContentRepository
}

func NewContentService(repo ContentRepository) *ContentService {
	return &ContentService{
		repo: repo,
	}
}

func (s *ContentService) CreatePage(ctx context.Context, page domain.ContentPage) (domain.ContentPage, error) {
	if page.Status == "" {
		page.Status = "draft"
	}

	created, err := s.repo.CreatePage(ctx, page)
	if err != nil {
		return domain.ContentPage{}, fmt.Errorf("s.repo.CreatePage -> %w", err)
	}

	return created, nil
}

func (s *ContentService) GetPage(ctx context.Context, id uint) (domain.ContentPage, error) {
	page, err := s.repo.FindPageByID(ctx, id)
	if err != nil {
		return domain.ContentPage{}, fmt.Errorf("s.repo.FindPageByID -> %w", err)
	}

	return page, nil
}

func (s *ContentService) GetPageBySlug(ctx context.Context, slug string) (domain.ContentPage, error) {
	page, err := s.repo.FindPageBySlug(ctx, slug)
	if err != nil {
		return domain.ContentPage{}, fmt.Errorf("s.repo.FindPageBySlug -> %w", err)
	}

	return page, nil
}

func (s *ContentService) UpdatePage(ctx context.Context, page domain.ContentPage) (domain.ContentPage, error) {
	existing, err := s.repo.FindPageByID(ctx, page.ID)
	if err != nil {
		return domain.ContentPage{}, fmt.Errorf("s.repo.FindPageByID -> %w", err)
	}

	page.CreatedAt = existing.CreatedAt
	updated, err := s.repo.UpdatePage(ctx, page)
	if err != nil {
		return domain.ContentPage{}, fmt.Errorf("s.repo.UpdatePage -> %w", err)
	}

	return updated, nil
}

func (s *ContentService) DeletePage(ctx context.Context, id uint) error {
	return s.repo.DeletePage(ctx, id)
}

func (s *ContentService) ListPages(ctx context.Context) ([]domain.ContentPage, error) {
	pages, err := s.repo.ListPages(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListPages -> %w", err)
	}

	return pages, nil
}

// CreateSection stores a section after its references check out: every
// referenced row must exist and the new edges must not close a reference
// loop back to the section's own page.
func (s *ContentService) CreateSection(ctx context.Context, section domain.Section) (domain.Section, error) {
	if err := s.checkReferences(ctx, section); err != nil {
		return domain.Section{}, err
	}

	created, err := s.repo.CreateSection(ctx, section)
	if err != nil {
		return domain.Section{}, fmt.Errorf("s.repo.CreateSection -> %w", err)
	}

	return created, nil
}

func (s *ContentService) UpdateSection(ctx context.Context, section domain.Section) (domain.Section, error) {
	existing, err := s.repo.FindSectionByID(ctx, section.ID)
	if err != nil {
		return domain.Section{}, fmt.Errorf("s.repo.FindSectionByID -> %w", err)
	}

	if err := s.checkReferences(ctx, section); err != nil {
		return domain.Section{}, err
	}

	section.CreatedAt = existing.CreatedAt
	updated, err := s.repo.UpdateSection(ctx, section)
	if err != nil {
		return domain.Section{}, fmt.Errorf("s.repo.UpdateSection -> %w", err)
	}

	return updated, nil
}

func (s *ContentService) DeleteSection(ctx context.Context, id uint) error {
	return s.repo.DeleteSection(ctx, id)
}

func (s *ContentService) ListSections(ctx context.Context, pageType string, pageID uint) ([]domain.Section, error) {
	sections, err := s.repo.ListSectionsByPage(ctx, pageType, pageID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListSectionsByPage -> %w", err)
	}

	return sections, nil
}

func (s *ContentService) checkReferences(ctx context.Context, section domain.Section) error {
	validation, err := s.ValidateReferences(ctx, section.References)
	if err != nil {
		return err
	}
	if len(validation.BrokenReferences) > 0 {
		return ErrBrokenReference
	}

	origin := domain.Reference{Type: section.PageType, ID: section.PageID}
	for _, ref := range section.References {
		circular, err := s.referencesReach(ctx, ref, origin)
		if err != nil {
			return err
		}
		if circular {
			return ErrCircularReference
		}
	}

	return nil
}

// ValidateReferences checks each reference against live rows; soft-deleted
// targets count as broken.
func (s *ContentService) ValidateReferences(ctx context.Context, refs []domain.Reference) (domain.ReferenceValidation, error) {
	broken := make([]domain.Reference, 0)
	for _, ref := range refs {
		exists, err := s.repo.ReferenceExists(ctx, ref)
		if err != nil {
			return domain.ReferenceValidation{}, fmt.Errorf("s.repo.ReferenceExists -> %w", err)
		}
		if !exists {
			broken = append(broken, ref)
		}
	}

	return domain.ReferenceValidation{
		Valid:            len(broken) == 0,
		BrokenReferences: broken,
	}, nil
}

// DetectCircularReferences reports whether the reference graph reachable
// from the given page loops back to it.
func (s *ContentService) DetectCircularReferences(ctx context.Context, pageType string, pageID uint) (bool, error) {
	origin := domain.Reference{Type: pageType, ID: pageID}

	sections, err := s.repo.ListSectionsByPage(ctx, pageType, pageID)
	if err != nil {
		return false, fmt.Errorf("s.repo.ListSectionsByPage -> %w", err)
	}

	for _, section := range sections {
		for _, ref := range section.References {
			circular, err := s.referencesReach(ctx, ref, origin)
			if err != nil {
				return false, err
			}
			if circular {
				return true, nil
			}
		}
	}

	return false, nil
}

// referencesReach walks the stored reference graph from start, following
// each page's section references, and reports whether target is reachable.
// Nodes are keyed type:id so an event and a page with the same numeric ID
// stay distinct.
func (s *ContentService) referencesReach(ctx context.Context, start, target domain.Reference) (bool, error) {
	targetKey := refKey(target)
	if refKey(start) == targetKey {
		return true, nil
	}

	visited := map[string]bool{}
	stack := []domain.Reference{start}
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		key := refKey(current)
		if visited[key] {
			continue
		}
		visited[key] = true

		sections, err := s.repo.ListSectionsByPage(ctx, current.Type, current.ID)
		if err != nil {
			return false, fmt.Errorf("s.repo.ListSectionsByPage -> %w", err)
		}

		for _, section := range sections {
			for _, ref := range section.References {
				if refKey(ref) == targetKey {
					return true, nil
				}
				stack = append(stack, ref)
			}
		}
	}

	return false, nil
}

func refKey(ref domain.Reference) string {
	return fmt.Sprintf("%s:%d", ref.Type, ref.ID)
}

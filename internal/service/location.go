package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jjam103/wedding-platform-v2-sub016/internal/domain"
	"github.com/jjam103/wedding-platform-v2-sub016/internal/repository"
)

var (
	ErrLocationNotFound     = repository.ErrLocationNotFound
	ErrCircularLocation     = errors.New("location parent chain would form a cycle")
	ErrLocationSelfParented = errors.New("location cannot be its own parent")
)

type LocationRepository interface {
	Create(ctx context.Context, location domain.Location) (domain.Location, error)
	FindByID(ctx context.Context, id uint) (domain.Location, error)
	Update(ctx context.Context, location domain.Location) (domain.Location, error)
	Delete(ctx context.Context, id uint) error
	ListAll(ctx context.Context) ([]domain.Location, error)
	ListParents(ctx context.Context) ([]repository.LocationParent, error)
}

// LocationTreeNode is a location with its children nested beneath it.
type LocationTreeNode struct {
	domain.Location
	Children []*LocationTreeNode `json:"children"`
}

type LocationService struct {
	repo LocationRepository
}

func NewLocationService(repo LocationRepository) *LocationService {
	return &LocationService{
		repo: repo,
	}
}

func (s *LocationService) CreateLocation(ctx context.Context, location domain.Location) (domain.Location, error) {
	if location.ParentLocationID != nil {
		if _, err := s.repo.FindByID(ctx, *location.ParentLocationID); err != nil {
			if errors.Is(err, repository.ErrLocationNotFound) {
				return domain.Location{}, ErrLocationNotFound
			}

			return domain.Location{}, fmt.Errorf("s.repo.FindByID -> %w", err)
		}
	}

	created, err := s.repo.Create(ctx, location)
	if err != nil {
		return domain.Location{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *LocationService) GetLocation(ctx context.Context, id uint) (domain.Location, error) {
	location, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Location{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return location, nil
}

// UpdateLocation rejects any parent change that would close a loop in the
// hierarchy. When the cycle walk itself fails the update is refused, never
// admitted on a guess.
func (s *LocationService) UpdateLocation(ctx context.Context, location domain.Location) (domain.Location, error) {
	existing, err := s.repo.FindByID(ctx, location.ID)
	if err != nil {
		return domain.Location{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if location.ParentLocationID != nil {
		cycle, err := s.WouldCreateCycle(ctx, location.ID, *location.ParentLocationID)
		if err != nil {
			return domain.Location{}, err
		}
		if cycle {
			if *location.ParentLocationID == location.ID {
				return domain.Location{}, ErrLocationSelfParented
			}

			return domain.Location{}, ErrCircularLocation
		}
	}

	location.CreatedAt = existing.CreatedAt
	updated, err := s.repo.Update(ctx, location)
	if err != nil {
		return domain.Location{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

// WouldCreateCycle reports whether parenting locationID under newParentID
// closes a loop. It walks the parent chain upward from the proposed parent;
// reaching locationID means a cycle. A visited set guards against loops
// already present in stored data.
func (s *LocationService) WouldCreateCycle(ctx context.Context, locationID, newParentID uint) (bool, error) {
	if newParentID == locationID {
		return true, nil
	}

	pairs, err := s.repo.ListParents(ctx)
	if err != nil {
		return false, fmt.Errorf("s.repo.ListParents -> %w", err)
	}

	parents := make(map[uint]*uint, len(pairs))
	for _, p := range pairs {
		parents[p.ID] = p.ParentLocationID
	}

	visited := map[uint]bool{locationID: true}
	current := newParentID
	for {
		if visited[current] {
			return true, nil
		}
		visited[current] = true

		parent, ok := parents[current]
		if !ok || parent == nil {
			return false, nil
		}
		current = *parent
	}
}

// DeleteLocation removes a location; its children are reparented to the root.
func (s *LocationService) DeleteLocation(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

func (s *LocationService) ListLocations(ctx context.Context) ([]domain.Location, error) {
	locations, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListAll -> %w", err)
	}

	return locations, nil
}

// GetTree assembles the full hierarchy as a forest of root locations.
// Orphans whose parent is missing are promoted to roots.
func (s *LocationService) GetTree(ctx context.Context) ([]*LocationTreeNode, error) {
	locations, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListAll -> %w", err)
	}

	nodes := make(map[uint]*LocationTreeNode, len(locations))
	for _, l := range locations {
		nodes[l.ID] = &LocationTreeNode{Location: l, Children: []*LocationTreeNode{}}
	}

	roots := make([]*LocationTreeNode, 0)
	for _, l := range locations {
		node := nodes[l.ID]
		if l.ParentLocationID == nil {
			roots = append(roots, node)
			continue
		}

		parent, ok := nodes[*l.ParentLocationID]
		if !ok {
			roots = append(roots, node)
			continue
		}
		parent.Children = append(parent.Children, node)
	}

	return roots, nil
}

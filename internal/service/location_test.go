package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jjam103/wedding-platform-v2-sub016/internal/domain"
	"github.com/jjam103/wedding-platform-v2-sub016/internal/repository"
)

type fakeLocationRepo struct {
	locations  map[uint]domain.Location
	nextID     uint
	parentsErr error
}

func newFakeLocationRepo() *fakeLocationRepo {
	return &fakeLocationRepo{locations: make(map[uint]domain.Location), nextID: 1}
}

func (f *fakeLocationRepo) add(name string, parentID *uint) domain.Location {
	l := domain.Location{ID: f.nextID, Name: name, ParentLocationID: parentID}
	f.locations[l.ID] = l
	f.nextID++

	return l
}

func (f *fakeLocationRepo) Create(_ context.Context, location domain.Location) (domain.Location, error) {
	location.ID = f.nextID
	f.nextID++
	f.locations[location.ID] = location

	return location, nil
}

func (f *fakeLocationRepo) FindByID(_ context.Context, id uint) (domain.Location, error) {
	location, ok := f.locations[id]
	if !ok {
		return domain.Location{}, repository.ErrLocationNotFound
	}

	return location, nil
}

func (f *fakeLocationRepo) Update(_ context.Context, location domain.Location) (domain.Location, error) {
	if _, ok := f.locations[location.ID]; !ok {
		return domain.Location{}, repository.ErrLocationNotFound
	}
	f.locations[location.ID] = location

	return location, nil
}

func (f *fakeLocationRepo) Delete(_ context.Context, id uint) error {
	delete(f.locations, id)

	return nil
}

func (f *fakeLocationRepo) ListAll(_ context.Context) ([]domain.Location, error) {
	out := make([]domain.Location, 0, len(f.locations))
	for id := uint(1); id < f.nextID; id++ {
		if l, ok := f.locations[id]; ok {
			out = append(out, l)
		}
	}

	return out, nil
}

func (f *fakeLocationRepo) ListParents(_ context.Context) ([]repository.LocationParent, error) {
	if f.parentsErr != nil {
		return nil, f.parentsErr
	}

	out := make([]repository.LocationParent, 0, len(f.locations))
	for _, l := range f.locations {
		out = append(out, repository.LocationParent{ID: l.ID, ParentLocationID: l.ParentLocationID})
	}

	return out, nil
}

func TestLocationService_WouldCreateCycle(t *testing.T) {
	repo := newFakeLocationRepo()
	country := repo.add("Costa Rica", nil)
	region := repo.add("Guanacaste", uintPtr(country.ID))
	town := repo.add("Tamarindo", uintPtr(region.ID))
	venue := repo.add("Beach Club", uintPtr(town.ID))

	svc := NewLocationService(repo)

	tests := []struct {
		name        string
		locationID  uint
		newParentID uint
		want        bool
	}{
		{"self parent", country.ID, country.ID, true},
		{"direct child as parent", country.ID, region.ID, true},
		{"deep descendant as parent", country.ID, venue.ID, true},
		{"ancestor as parent is fine", venue.ID, country.ID, false},
		{"sibling reparent is fine", venue.ID, region.ID, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.WouldCreateCycle(context.Background(), tt.locationID, tt.newParentID)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLocationService_WouldCreateCycle_StoredLoopTerminates(t *testing.T) {
	repo := newFakeLocationRepo()
	a := repo.add("A", nil)
	b := repo.add("B", uintPtr(a.ID))
	// Corrupt stored data: A and B already point at each other.
	bad := repo.locations[a.ID]
	bad.ParentLocationID = uintPtr(b.ID)
	repo.locations[a.ID] = bad
	outsider := repo.add("C", nil)

	svc := NewLocationService(repo)

	// The walk must terminate and report the loop rather than spin forever.
	cycle, err := svc.WouldCreateCycle(context.Background(), outsider.ID, a.ID)
	require.NoError(t, err)
	assert.True(t, cycle)
}

func TestLocationService_WouldCreateCycle_MissingParentStopsWalk(t *testing.T) {
	repo := newFakeLocationRepo()
	orphan := repo.add("Orphan", uintPtr(999))
	other := repo.add("Other", nil)

	svc := NewLocationService(repo)

	cycle, err := svc.WouldCreateCycle(context.Background(), other.ID, orphan.ID)
	require.NoError(t, err)
	assert.False(t, cycle)
}

func TestLocationService_UpdateLocation_RejectsCycle(t *testing.T) {
	repo := newFakeLocationRepo()
	country := repo.add("Costa Rica", nil)
	region := repo.add("Guanacaste", uintPtr(country.ID))

	svc := NewLocationService(repo)

	_, err := svc.UpdateLocation(context.Background(), domain.Location{
		ID:               country.ID,
		Name:             country.Name,
		ParentLocationID: uintPtr(region.ID),
	})
	require.ErrorIs(t, err, ErrCircularLocation)

	_, err = svc.UpdateLocation(context.Background(), domain.Location{
		ID:               country.ID,
		Name:             country.Name,
		ParentLocationID: uintPtr(country.ID),
	})
	require.ErrorIs(t, err, ErrLocationSelfParented)
}

func TestLocationService_UpdateLocation_RefusedWhenWalkFails(t *testing.T) {
	repo := newFakeLocationRepo()
	country := repo.add("Costa Rica", nil)
	region := repo.add("Guanacaste", uintPtr(country.ID))
	repo.parentsErr = errors.New("connection reset")

	svc := NewLocationService(repo)

	_, err := svc.UpdateLocation(context.Background(), domain.Location{
		ID:               region.ID,
		Name:             region.Name,
		ParentLocationID: uintPtr(country.ID),
	})
	require.Error(t, err)

	// The stored row is untouched.
	stored := repo.locations[region.ID]
	require.NotNil(t, stored.ParentLocationID)
	assert.Equal(t, country.ID, *stored.ParentLocationID)
}

func TestLocationService_UpdateLocation_ValidReparent(t *testing.T) {
	repo := newFakeLocationRepo()
	country := repo.add("Costa Rica", nil)
	region := repo.add("Guanacaste", uintPtr(country.ID))
	town := repo.add("Tamarindo", uintPtr(region.ID))

	svc := NewLocationService(repo)

	updated, err := svc.UpdateLocation(context.Background(), domain.Location{
		ID:               town.ID,
		Name:             town.Name,
		ParentLocationID: uintPtr(country.ID),
	})
	require.NoError(t, err)
	require.NotNil(t, updated.ParentLocationID)
	assert.Equal(t, country.ID, *updated.ParentLocationID)
}

func TestLocationService_CreateLocation_MissingParent(t *testing.T) {
	svc := NewLocationService(newFakeLocationRepo())

	_, err := svc.CreateLocation(context.Background(), domain.Location{
		Name:             "Venue",
		ParentLocationID: uintPtr(42),
	})
	require.ErrorIs(t, err, ErrLocationNotFound)
}

func TestLocationService_GetTree(t *testing.T) {
	repo := newFakeLocationRepo()
	country := repo.add("Costa Rica", nil)
	region := repo.add("Guanacaste", uintPtr(country.ID))
	repo.add("Tamarindo", uintPtr(region.ID))
	repo.add("Orphan", uintPtr(999))

	svc := NewLocationService(repo)

	roots, err := svc.GetTree(context.Background())
	require.NoError(t, err)
	require.Len(t, roots, 2)

	assert.Equal(t, "Costa Rica", roots[0].Name)
	require.Len(t, roots[0].Children, 1)
	assert.Equal(t, "Guanacaste", roots[0].Children[0].Name)
	require.Len(t, roots[0].Children[0].Children, 1)
	assert.Equal(t, "Tamarindo", roots[0].Children[0].Children[0].Name)

	// The orphan is promoted to a root rather than dropped.
	assert.Equal(t, "Orphan", roots[1].Name)
}

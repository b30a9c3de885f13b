package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jjam103/wedding-platform-v2-sub016/internal/domain"
	"github.com/jjam103/wedding-platform-v2-sub016/internal/repository"
)

type fakeGuestRepo struct {
	guests map[uint]domain.Guest
	groups map[uint]domain.GuestGroup
	nextID uint
}

func newFakeGuestRepo() *fakeGuestRepo {
	return &fakeGuestRepo{
		guests: make(map[uint]domain.Guest),
		groups: make(map[uint]domain.GuestGroup),
		nextID: 1,
	}
}

func (f *fakeGuestRepo) addGuest(guest domain.Guest) domain.Guest {
	guest.ID = f.nextID
	f.nextID++
	f.guests[guest.ID] = guest

	return guest
}

func (f *fakeGuestRepo) addGroup(name string) domain.GuestGroup {
	group := domain.GuestGroup{ID: f.nextID, Name: name}
	f.nextID++
	f.groups[group.ID] = group

	return group
}

func (f *fakeGuestRepo) Create(_ context.Context, guest domain.Guest) (domain.Guest, error) {
	return f.addGuest(guest), nil
}

func (f *fakeGuestRepo) CreateBatch(_ context.Context, guests []domain.Guest) ([]domain.Guest, error) {
	out := make([]domain.Guest, 0, len(guests))
	for _, g := range guests {
		out = append(out, f.addGuest(g))
	}

	return out, nil
}

func (f *fakeGuestRepo) FindByID(_ context.Context, id uint) (domain.Guest, error) {
	guest, ok := f.guests[id]
	if !ok {
		return domain.Guest{}, repository.ErrGuestNotFound
	}

	return guest, nil
}

func (f *fakeGuestRepo) Update(_ context.Context, guest domain.Guest) (domain.Guest, error) {
	if _, ok := f.guests[guest.ID]; !ok {
		return domain.Guest{}, repository.ErrGuestNotFound
	}
	f.guests[guest.ID] = guest

	return guest, nil
}

func (f *fakeGuestRepo) Delete(_ context.Context, id uint) error {
	if _, ok := f.guests[id]; !ok {
		return repository.ErrGuestNotFound
	}
	delete(f.guests, id)

	return nil
}

func (f *fakeGuestRepo) List(_ context.Context, filter repository.GuestFilter) ([]domain.Guest, int64, error) {
	out := make([]domain.Guest, 0)
	for id := uint(1); id < f.nextID; id++ {
		g, ok := f.guests[id]
		if !ok {
			continue
		}
		if filter.GroupID != 0 && g.GroupID != filter.GroupID {
			continue
		}
		if filter.GuestType != "" && g.GuestType != filter.GuestType {
			continue
		}
		if filter.AgeCategory != "" && g.AgeCategory != filter.AgeCategory {
			continue
		}
		out = append(out, g)
	}

	return out, int64(len(out)), nil
}

func (f *fakeGuestRepo) CreateGroup(_ context.Context, group domain.GuestGroup) (domain.GuestGroup, error) {
	group.ID = f.nextID
	f.nextID++
	f.groups[group.ID] = group

	return group, nil
}

func (f *fakeGuestRepo) FindGroupByID(_ context.Context, id uint) (domain.GuestGroup, error) {
	group, ok := f.groups[id]
	if !ok {
		return domain.GuestGroup{}, repository.ErrGroupNotFound
	}

	return group, nil
}

func (f *fakeGuestRepo) ListGroups(_ context.Context) ([]domain.GuestGroup, error) {
	out := make([]domain.GuestGroup, 0, len(f.groups))
	for _, g := range f.groups {
		out = append(out, g)
	}

	return out, nil
}

func TestGuestService_CreateGuest_UnknownGroup(t *testing.T) {
	svc := NewGuestService(newFakeGuestRepo())

	_, err := svc.CreateGuest(context.Background(), domain.Guest{
		GroupID:   42,
		FirstName: "Ana",
		LastName:  "Mora",
	})
	require.ErrorIs(t, err, ErrGroupNotFound)
}

func TestGuestService_CreateGuest_DefaultsAgeCategory(t *testing.T) {
	repo := newFakeGuestRepo()
	group := repo.addGroup("Bride's family")

	svc := NewGuestService(repo)

	created, err := svc.CreateGuest(context.Background(), domain.Guest{
		GroupID:   group.ID,
		FirstName: "Ana",
		LastName:  "Mora",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.AgeCategoryAdult, created.AgeCategory)
}

func TestGuestService_ImportGuests(t *testing.T) {
	repo := newFakeGuestRepo()
	group := repo.addGroup("College friends")

	svc := NewGuestService(repo)

	imported, err := svc.ImportGuests(context.Background(), []domain.Guest{
		{GroupID: group.ID, FirstName: "Ana", LastName: "Mora"},
		{GroupID: group.ID, FirstName: "Luis", LastName: "Rojas", AgeCategory: domain.AgeCategoryChild},
	})
	require.NoError(t, err)
	require.Len(t, imported, 2)
	assert.NotZero(t, imported[0].ID)
	assert.Equal(t, domain.AgeCategoryAdult, imported[0].AgeCategory)
	assert.Equal(t, domain.AgeCategoryChild, imported[1].AgeCategory)
}

func TestGuestService_ImportGuests_UnknownGroupRejectsBatch(t *testing.T) {
	repo := newFakeGuestRepo()
	group := repo.addGroup("College friends")

	svc := NewGuestService(repo)

	_, err := svc.ImportGuests(context.Background(), []domain.Guest{
		{GroupID: group.ID, FirstName: "Ana", LastName: "Mora"},
		{GroupID: 999, FirstName: "Luis", LastName: "Rojas"},
	})
	require.ErrorIs(t, err, ErrGroupNotFound)
	assert.Empty(t, repo.guests)
}

func TestGuestService_ListGuests_Filters(t *testing.T) {
	repo := newFakeGuestRepo()
	family := repo.addGroup("Family")
	friends := repo.addGroup("Friends")
	repo.addGuest(domain.Guest{GroupID: family.ID, FirstName: "Ana", GuestType: "wedding_party", AgeCategory: domain.AgeCategoryAdult})
	repo.addGuest(domain.Guest{GroupID: family.ID, FirstName: "Sofia", GuestType: "family", AgeCategory: domain.AgeCategoryChild})
	repo.addGuest(domain.Guest{GroupID: friends.ID, FirstName: "Luis", GuestType: "friend", AgeCategory: domain.AgeCategoryAdult})

	svc := NewGuestService(repo)

	guests, total, err := svc.ListGuests(context.Background(), repository.GuestFilter{GroupID: family.ID})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	require.Len(t, guests, 2)

	guests, _, err = svc.ListGuests(context.Background(), repository.GuestFilter{AgeCategory: domain.AgeCategoryChild})
	require.NoError(t, err)
	require.Len(t, guests, 1)
	assert.Equal(t, "Sofia", guests[0].FirstName)
}

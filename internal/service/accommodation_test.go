package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jjam103/wedding-platform-v2-sub016/internal/domain"
)

func newTestAccommodationService() (*AccommodationService, *fakeAccommodationRepo) {
	repo := newFakeAccommodationRepo()

	return NewAccommodationService(repo, newFakeGuestRepo()), repo
}

func TestAccommodationService_CreateRoomType(t *testing.T) {
	svc, repo := newTestAccommodationService()
	ctx := context.Background()

	accommodation, err := repo.Create(ctx, domain.Accommodation{Name: "Playa Resort"})
	require.NoError(t, err)

	roomType, err := svc.CreateRoomType(ctx, domain.RoomType{
		AccommodationID: accommodation.ID,
		Name:            "Ocean View",
		Capacity:        2,
		NightlyCost:     15000,
	})
	require.NoError(t, err)
	assert.NotZero(t, roomType.ID)

	roomTypes, err := svc.ListRoomTypes(ctx, accommodation.ID)
	require.NoError(t, err)
	require.Len(t, roomTypes, 1)
	assert.Equal(t, "Ocean View", roomTypes[0].Name)
}

func TestAccommodationService_CreateRoomType_UnknownAccommodation(t *testing.T) {
	svc, _ := newTestAccommodationService()

	_, err := svc.CreateRoomType(context.Background(), domain.RoomType{
		AccommodationID: 404,
		Name:            "Ocean View",
		Capacity:        2,
	})
	require.ErrorIs(t, err, ErrAccommodationNotFound)
}

func TestAccommodationService_UpdateRoomType_KeepsAccommodationBinding(t *testing.T) {
	svc, repo := newTestAccommodationService()
	ctx := context.Background()

	accommodation, err := repo.Create(ctx, domain.Accommodation{Name: "Playa Resort"})
	require.NoError(t, err)

	roomType, err := svc.CreateRoomType(ctx, domain.RoomType{
		AccommodationID: accommodation.ID,
		Name:            "Ocean View",
		Capacity:        2,
		NightlyCost:     15000,
	})
	require.NoError(t, err)

	// An update never moves the room type to another accommodation.
	updated, err := svc.UpdateRoomType(ctx, domain.RoomType{
		ID:              roomType.ID,
		AccommodationID: 999,
		Name:            "Garden View",
		Capacity:        3,
		NightlyCost:     12000,
	})
	require.NoError(t, err)
	assert.Equal(t, accommodation.ID, updated.AccommodationID)
	assert.Equal(t, "Garden View", updated.Name)
	assert.Equal(t, 12000, updated.NightlyCost)
}

func TestAccommodationService_UpdateRoomType_Unknown(t *testing.T) {
	svc, _ := newTestAccommodationService()

	_, err := svc.UpdateRoomType(context.Background(), domain.RoomType{ID: 404, Name: "Ghost"})
	require.ErrorIs(t, err, ErrRoomTypeNotFound)
}

func TestAccommodationService_DeleteRoomType(t *testing.T) {
	svc, repo := newTestAccommodationService()
	ctx := context.Background()

	accommodation, err := repo.Create(ctx, domain.Accommodation{Name: "Playa Resort"})
	require.NoError(t, err)

	roomType, err := svc.CreateRoomType(ctx, domain.RoomType{
		AccommodationID: accommodation.ID,
		Name:            "Ocean View",
		Capacity:        2,
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteRoomType(ctx, roomType.ID))

	err = svc.DeleteRoomType(ctx, roomType.ID)
	assert.ErrorIs(t, err, ErrRoomTypeNotFound)
}

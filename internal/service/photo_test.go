package service

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jjam103/wedding-platform-v2-sub016/internal/domain"
	"github.com/jjam103/wedding-platform-v2-sub016/internal/objstore"
	"github.com/jjam103/wedding-platform-v2-sub016/internal/repository"
)

type fakePhotoRepo struct {
	photos    map[uint]domain.Photo
	nextID    uint
	insertErr error
}

func newFakePhotoRepo() *fakePhotoRepo {
	return &fakePhotoRepo{photos: make(map[uint]domain.Photo), nextID: 1}
}

func (f *fakePhotoRepo) Create(_ context.Context, photo domain.Photo) (domain.Photo, error) {
	if f.insertErr != nil {
		return domain.Photo{}, f.insertErr
	}

	photo.ID = f.nextID
	f.nextID++
	f.photos[photo.ID] = photo

	return photo, nil
}

func (f *fakePhotoRepo) FindByID(_ context.Context, id uint) (domain.Photo, error) {
	photo, ok := f.photos[id]
	if !ok {
		return domain.Photo{}, repository.ErrPhotoNotFound
	}

	return photo, nil
}

func (f *fakePhotoRepo) Update(_ context.Context, photo domain.Photo) (domain.Photo, error) {
	if _, ok := f.photos[photo.ID]; !ok {
		return domain.Photo{}, repository.ErrPhotoNotFound
	}
	f.photos[photo.ID] = photo

	return photo, nil
}

func (f *fakePhotoRepo) Delete(_ context.Context, id uint) error {
	if _, ok := f.photos[id]; !ok {
		return repository.ErrPhotoNotFound
	}
	delete(f.photos, id)

	return nil
}

func (f *fakePhotoRepo) List(_ context.Context, status string, limit int) ([]domain.Photo, error) {
	out := make([]domain.Photo, 0)
	for id := uint(1); id < f.nextID; id++ {
		p, ok := f.photos[id]
		if !ok {
			continue
		}
		if status != "" && p.Status != status {
			continue
		}
		out = append(out, p)
		if limit > 0 && len(out) == limit {
			break
		}
	}

	return out, nil
}

func TestPhotoService_Upload_GuestStartsPending(t *testing.T) {
	store := objstore.NewMemoryStore()
	svc := NewPhotoService(newFakePhotoRepo(), store)

	photo, err := svc.Upload(context.Background(), uintPtr(7), "image/jpeg", "sunset", strings.NewReader("jpegbytes"))
	require.NoError(t, err)
	assert.Equal(t, domain.PhotoStatusPending, photo.Status)
	require.NotNil(t, photo.GuestID)
	assert.Equal(t, uint(7), *photo.GuestID)
	assert.True(t, strings.HasSuffix(photo.StorageKey, ".jpg"))
	assert.EqualValues(t, len("jpegbytes"), photo.SizeBytes)

	rc, err := store.Get(context.Background(), photo.StorageKey)
	require.NoError(t, err)
	defer rc.Close()
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "jpegbytes", string(data))
}

func TestPhotoService_Upload_AdminIsApproved(t *testing.T) {
	svc := NewPhotoService(newFakePhotoRepo(), objstore.NewMemoryStore())

	photo, err := svc.Upload(context.Background(), nil, "image/png", "", strings.NewReader("pngbytes"))
	require.NoError(t, err)
	assert.Equal(t, domain.PhotoStatusApproved, photo.Status)
	assert.Nil(t, photo.GuestID)
	assert.True(t, strings.HasSuffix(photo.StorageKey, ".png"))
}

func TestPhotoService_Upload_UnsupportedContentType(t *testing.T) {
	svc := NewPhotoService(newFakePhotoRepo(), objstore.NewMemoryStore())

	_, err := svc.Upload(context.Background(), nil, "application/pdf", "", strings.NewReader("%PDF"))
	require.ErrorIs(t, err, ErrUnsupportedContentType)
}

func TestPhotoService_Upload_RowFailureCleansUpObject(t *testing.T) {
	repo := newFakePhotoRepo()
	repo.insertErr = io.ErrUnexpectedEOF
	store := objstore.NewMemoryStore()

	svc := NewPhotoService(repo, store)

	_, err := svc.Upload(context.Background(), nil, "image/webp", "", strings.NewReader("webpbytes"))
	require.Error(t, err)
	assert.Zero(t, store.Len(), "orphaned object must be removed")
}

func TestPhotoService_ModerateAndDelete(t *testing.T) {
	repo := newFakePhotoRepo()
	store := objstore.NewMemoryStore()
	svc := NewPhotoService(repo, store)

	photo, err := svc.Upload(context.Background(), uintPtr(7), "image/jpeg", "", strings.NewReader("jpegbytes"))
	require.NoError(t, err)

	moderated, err := svc.Moderate(context.Background(), photo.ID, domain.PhotoStatusApproved)
	require.NoError(t, err)
	assert.Equal(t, domain.PhotoStatusApproved, moderated.Status)

	require.NoError(t, svc.DeletePhoto(context.Background(), photo.ID))
	assert.Zero(t, store.Len())

	_, err = svc.GetPhoto(context.Background(), photo.ID)
	require.ErrorIs(t, err, ErrPhotoNotFound)
}

func TestPhotoService_Open(t *testing.T) {
	svc := NewPhotoService(newFakePhotoRepo(), objstore.NewMemoryStore())

	uploaded, err := svc.Upload(context.Background(), nil, "image/jpeg", "", strings.NewReader("jpegbytes"))
	require.NoError(t, err)

	photo, rc, err := svc.Open(context.Background(), uploaded.ID)
	require.NoError(t, err)
	defer rc.Close()

	assert.Equal(t, uploaded.StorageKey, photo.StorageKey)
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "jpegbytes", string(data))
}

func TestPhotoService_ListPhotos_ByStatus(t *testing.T) {
	repo := newFakePhotoRepo()
	svc := NewPhotoService(repo, objstore.NewMemoryStore())

	_, err := svc.Upload(context.Background(), uintPtr(1), "image/jpeg", "", strings.NewReader("a"))
	require.NoError(t, err)
	_, err = svc.Upload(context.Background(), nil, "image/jpeg", "", strings.NewReader("b"))
	require.NoError(t, err)

	pending, err := svc.ListPhotos(context.Background(), domain.PhotoStatusPending, 0)
	require.NoError(t, err)
	require.Len(t, pending, 1)

	all, err := svc.ListPhotos(context.Background(), "", 0)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/jjam103/wedding-platform-v2-sub016/internal/domain"
	"github.com/jjam103/wedding-platform-v2-sub016/internal/objstore"
	"github.com/jjam103/wedding-platform-v2-sub016/internal/repository"
)

var (
	ErrPhotoNotFound          = repository.ErrPhotoNotFound
	ErrUnsupportedContentType = errors.New("unsupported photo content type")
)

var photoContentTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

type PhotoRepository interface {
	Create(ctx context.Context, photo domain.Photo) (domain.Photo, error)
	FindByID(ctx context.Context, id uint) (domain.Photo, error)
	Update(ctx context.Context, photo domain.Photo) (domain.Photo, error)
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, status string, limit int) ([]domain.Photo, error)
}

type PhotoService struct {
	repo  PhotoRepository
	store objstore.Store
}

func NewPhotoService(repo PhotoRepository, store objstore.Store) *PhotoService {
	return &PhotoService{
		repo:  repo,
		store: store,
	}
}

// Upload stores the binary first, then the row; a failed row insert cleans
// up the orphaned object. Guest uploads start pending, admin uploads are
// approved immediately.
func (s *PhotoService) Upload(ctx context.Context, guestID *uint, contentType, caption string, r io.Reader) (domain.Photo, error) {
	ext, ok := photoContentTypes[contentType]
	if !ok {
		return domain.Photo{}, ErrUnsupportedContentType
	}

	key := uuid.NewString() + ext
	counted := &countingReader{r: r}
	if err := s.store.Put(ctx, key, counted); err != nil {
		return domain.Photo{}, fmt.Errorf("s.store.Put -> %w", err)
	}

	status := domain.PhotoStatusApproved
	if guestID != nil {
		status = domain.PhotoStatusPending
	}

	created, err := s.repo.Create(ctx, domain.Photo{
		GuestID:     guestID,
		StorageKey:  key,
		ContentType: contentType,
		SizeBytes:   counted.n,
		Caption:     caption,
		Status:      status,
	})
	if err != nil {
		_ = s.store.Delete(ctx, key)
		return domain.Photo{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *PhotoService) GetPhoto(ctx context.Context, id uint) (domain.Photo, error) {
	photo, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Photo{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return photo, nil
}

// Open returns the photo row together with its binary stream. The caller
// closes the reader.
func (s *PhotoService) Open(ctx context.Context, id uint) (domain.Photo, io.ReadCloser, error) {
	photo, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Photo{}, nil, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	rc, err := s.store.Get(ctx, photo.StorageKey)
	if err != nil {
		return domain.Photo{}, nil, fmt.Errorf("s.store.Get -> %w", err)
	}

	return photo, rc, nil
}

func (s *PhotoService) Moderate(ctx context.Context, id uint, status string) (domain.Photo, error) {
	photo, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Photo{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	photo.Status = status
	updated, err := s.repo.Update(ctx, photo)
	if err != nil {
		return domain.Photo{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *PhotoService) DeletePhoto(ctx context.Context, id uint) error {
	photo, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if err = s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	if err = s.store.Delete(ctx, photo.StorageKey); err != nil {
		return fmt.Errorf("s.store.Delete -> %w", err)
	}

	return nil
}

func (s *PhotoService) ListPhotos(ctx context.Context, status string, limit int) ([]domain.Photo, error) {
	photos, err := s.repo.List(ctx, status, limit)
	if err != nil {
		return nil, fmt.Errorf("s.repo.List -> %w", err)
	}

	return photos, nil
}

type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)

	return n, err
}

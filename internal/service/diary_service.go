package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"traveldiary-be/internal/cache"
	"traveldiary-be/internal/entities"
	"traveldiary-be/internal/models"
	"traveldiary-be/internal/repository"
)

const entryCacheTTL = 1 * time.Hour

// DiaryService defines the interface for diary entry business logic.
// Every operation takes the owner's user ID as derived from the verified
// token, never from the request payload.
type DiaryService interface {
	Create(ctx context.Context, ownerID int, req *models.EntryRequest) (*entities.DiaryEntry, error)
	GetAll(ctx context.Context, ownerID int) ([]*entities.DiaryEntry, error)
	GetByID(ctx context.Context, ownerID, entryID int) (*entities.DiaryEntry, error)
	Update(ctx context.Context, ownerID, entryID int, req *models.EntryRequest) error
	Delete(ctx context.Context, ownerID, entryID int) error
}

type diaryService struct {
	repo  repository.DiaryRepository
	cache cache.Cache
}

// NewDiaryService creates a new diary service. cacheClient may be nil, in
// which case every read goes to the database.
func NewDiaryService(repo repository.DiaryRepository, cacheClient cache.Cache) DiaryService {
	svc := &diaryService{
		repo: repo,
	}
	if cacheClient != nil {
		svc.cache = cacheClient
	}
	return svc
}

// entryCacheKey embeds the owner ID so a cached entry can never be served
// to a different user.
func entryCacheKey(ownerID, entryID int) string {
	return fmt.Sprintf("entry:%d:%d", ownerID, entryID)
}

// invalidate removes a cached entry ahead of a write. A failed invalidation
// aborts the write: the cache keeps matching the database instead of serving
// a stale entry until its TTL runs out.
func (s *diaryService) invalidate(ctx context.Context, ownerID, entryID int) error {
	if s.cache == nil {
		return nil
	}
	if err := s.cache.Delete(ctx, entryCacheKey(ownerID, entryID)); err != nil {
		return fmt.Errorf("failed to invalidate cached entry: %w", err)
	}
	return nil
}

// Create inserts a new entry; its date defaults to the creation time
func (s *diaryService) Create(ctx context.Context, ownerID int, req *models.EntryRequest) (*entities.DiaryEntry, error) {
	entry, err := s.repo.Create(ownerID, req.Title, req.Description, req.Location)
	if err != nil {
		return nil, fmt.Errorf("failed to create diary entry: %w", err)
	}
	return entry, nil
}

// GetAll returns every entry owned by the given user
func (s *diaryService) GetAll(ctx context.Context, ownerID int) ([]*entities.DiaryEntry, error) {
	return s.repo.FindByUser(ownerID)
}

// GetByID returns a single entry, ErrEntryNotFound when it doesn't exist
// or is owned by someone else
func (s *diaryService) GetByID(ctx context.Context, ownerID, entryID int) (*entities.DiaryEntry, error) {
	// Try cache first (if available)
	if s.cache != nil {
		var cached entities.DiaryEntry
		if err := s.cache.GetJSON(ctx, entryCacheKey(ownerID, entryID), &cached); err == nil && cached.ID != 0 {
			return &cached, nil
		}
	}

	entry, err := s.repo.FindByID(entryID, ownerID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrEntryNotFound
	}
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.SetJSON(ctx, entryCacheKey(ownerID, entryID), entry, entryCacheTTL)
	}

	return entry, nil
}

// Update overwrites title, description and location of an owned entry
func (s *diaryService) Update(ctx context.Context, ownerID, entryID int, req *models.EntryRequest) error {
	if err := s.invalidate(ctx, ownerID, entryID); err != nil {
		return err
	}

	err := s.repo.Update(entryID, ownerID, req.Title, req.Description, req.Location)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrEntryNotFound
	}
	return err
}

// Delete removes an owned entry
func (s *diaryService) Delete(ctx context.Context, ownerID, entryID int) error {
	if err := s.invalidate(ctx, ownerID, entryID); err != nil {
		return err
	}

	err := s.repo.Delete(entryID, ownerID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrEntryNotFound
	}
	return err
}

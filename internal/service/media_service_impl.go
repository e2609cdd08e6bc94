package service

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/giftforge/giftforge/internal/domain"
	"github.com/giftforge/giftforge/internal/repository"
	"github.com/google/uuid"
)

type mediaService struct {
	media    repository.MediaRepo
	gifts    repository.GiftRepo
	mediaDir string
}

func NewMediaService(media repository.MediaRepo, gifts repository.GiftRepo, mediaDir string) MediaService {
	return &mediaService{media: media, gifts: gifts, mediaDir: mediaDir}
}

func (s *mediaService) Attach(ctx context.Context, giftID, uploaderID string,
	mediaType domain.MediaType, filename string, r io.Reader) (*domain.MediaMessage, error) {
	if !domain.ValidMediaTypes[string(mediaType)] {
		return nil, fmt.Errorf("invalid media type %q", mediaType)
	}
	// The gift must exist before we touch the disk.
	if _, err := s.gifts.GetByID(ctx, giftID); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(s.mediaDir, 0755); err != nil {
		return nil, fmt.Errorf("creating media directory: %w", err)
	}

	id := uuid.New().String()
	path := filepath.Join(s.mediaDir, id+filepath.Ext(filename))
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating media file: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(path)
		return nil, fmt.Errorf("writing media file: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("closing media file: %w", err)
	}

	msg := &domain.MediaMessage{
		ID:         id,
		GiftID:     giftID,
		UploaderID: uploaderID,
		Type:       mediaType,
		FilePath:   path,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.media.Create(ctx, msg); err != nil {
		os.Remove(path)
		return nil, err
	}
	return msg, nil
}

func (s *mediaService) ListForGift(ctx context.Context, giftID string) ([]*domain.MediaMessage, error) {
	return s.media.ListByGift(ctx, giftID)
}

// Package service orchestrates surprise creation and lookup: id
// generation, photo normalization, persistence and link building.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"valentine.share/internal/crypto"
	"valentine.share/internal/models"
	"valentine.share/internal/photo"
	"valentine.share/internal/store"
)

// ErrPhotoCount is returned when a creation request does not carry
// exactly models.PhotoCount photos.
var ErrPhotoCount = errors.New("exactly 5 photos are required")

type SurpriseService struct {
	store   store.Store
	baseURL string // configured override; empty means derive per request
}

func NewSurpriseService(s store.Store, baseURL string) *SurpriseService {
	return &SurpriseService{
		store:   s,
		baseURL: baseURL,
	}
}

// PhotoUpload is one uploaded file before normalization.
type PhotoUpload struct {
	ContentType string
	Data        []byte
}

type CreateInput struct {
	PartnerName string
	SenderName  string
	Photos      []PhotoUpload
	// RequestBase is the scheme://host of the inbound request, used for
	// link building when no base_url override is configured.
	RequestBase string
}

type CreateResult struct {
	ID        string
	SecretKey string
	Link      string
}

// Create validates and normalizes the uploaded photos, assembles the
// surprise document and persists it. Any single undecodable photo
// aborts the whole operation; store errors propagate unchanged.
func (s *SurpriseService) Create(ctx context.Context, in CreateInput) (*CreateResult, error) {
	if len(in.Photos) != models.PhotoCount {
		return nil, ErrPhotoCount
	}

	photos := make([]models.Photo, 0, models.PhotoCount)
	for i, up := range in.Photos {
		normalized, err := photo.Normalize(up.Data, up.ContentType)
		if err != nil {
			return nil, fmt.Errorf("photo %d: %w", i+1, err)
		}
		photos = append(photos, models.NewPhoto(normalized))
	}

	surprise := &models.Surprise{
		ID:          crypto.GenerateID(),
		SecretKey:   crypto.GenerateSecretKey(),
		PartnerName: in.PartnerName,
		SenderName:  in.SenderName,
		Photos:      photos,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.store.Save(ctx, surprise); err != nil {
		return nil, err
	}

	link := s.link(surprise.ID, in.RequestBase)

	log.Ctx(ctx).Info().
		Str("surprise_id", surprise.ID).
		Str("sender", surprise.SenderName).
		Msg("surprise created")

	return &CreateResult{
		ID:        surprise.ID,
		SecretKey: surprise.SecretKey,
		Link:      link,
	}, nil
}

// Get returns the full record or store.ErrNotFound. No secret-key check
// gates this read: whoever holds the id holds the link.
func (s *SurpriseService) Get(ctx context.Context, id string) (*models.Surprise, error) {
	return s.store.FindByID(ctx, id)
}

// Check reports existence plus the sender's name, never photos or the
// secret key. A miss is not an error here.
func (s *SurpriseService) Check(ctx context.Context, id string) (bool, string, error) {
	surprise, err := s.store.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return false, "", nil
		}
		return false, "", err
	}
	return true, surprise.SenderName, nil
}

func (s *SurpriseService) link(id, requestBase string) string {
	base := s.baseURL
	if base == "" {
		base = requestBase
	}
	return base + "/valentine.html?id=" + id
}

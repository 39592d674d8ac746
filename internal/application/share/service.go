// Package share manages public dashboard links and serves the
// read-only views behind them.
package share

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/salespulse/backend/internal/domain/analytics"
	"github.com/salespulse/backend/internal/domain/dataset"
	"github.com/salespulse/backend/internal/domain/shared"
	"github.com/salespulse/backend/internal/infrastructure/cache"
)

// ShareService manages share links and resolves shared views
type ShareService struct {
	shareRepo  dataset.ShareLinkRepository
	recordRepo dataset.RecordRepository
	detector   *analytics.AnomalyDetector
	viewCache  cache.Store
	cacheTTL   time.Duration
	logger     *zap.Logger
}

// NewShareService creates a new ShareService
func NewShareService(
	shareRepo dataset.ShareLinkRepository,
	recordRepo dataset.RecordRepository,
	detector *analytics.AnomalyDetector,
	viewCache cache.Store,
	cacheTTL time.Duration,
	logger *zap.Logger,
) *ShareService {
	return &ShareService{
		shareRepo:  shareRepo,
		recordRepo: recordRepo,
		detector:   detector,
		viewCache:  viewCache,
		cacheTTL:   cacheTTL,
		logger:     logger,
	}
}

// Create issues a new share link for one of the user's datasets.
func (s *ShareService) Create(ctx context.Context, userID string, req CreateShareLinkRequest) (*ShareLinkResponse, error) {
	link, err := dataset.NewShareLink(userID, req.DatasetName, req.ExpiresAt)
	if err != nil {
		return nil, err
	}
	if err := s.shareRepo.Save(ctx, link); err != nil {
		return nil, err
	}
	return toShareLinkResponse(link), nil
}

// List returns the user's share links, newest first.
func (s *ShareService) List(ctx context.Context, userID string) ([]ShareLinkResponse, error) {
	links, err := s.shareRepo.FindAllForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]ShareLinkResponse, 0, len(links))
	for i := range links {
		out = append(out, *toShareLinkResponse(&links[i]))
	}
	return out, nil
}

// Toggle flips a link between active and inactive.
func (s *ShareService) Toggle(ctx context.Context, userID, linkID string) (*ShareLinkResponse, error) {
	id, err := uuid.Parse(linkID)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_ID", "Invalid share link ID")
	}

	link, err := s.shareRepo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	link.Toggle()
	if err := s.shareRepo.Save(ctx, link); err != nil {
		return nil, err
	}
	s.invalidate(ctx, link.Token)
	return toShareLinkResponse(link), nil
}

// Delete removes a share link.
func (s *ShareService) Delete(ctx context.Context, userID, linkID string) error {
	id, err := uuid.Parse(linkID)
	if err != nil {
		return shared.NewDomainError("INVALID_ID", "Invalid share link ID")
	}

	link, err := s.shareRepo.FindByID(ctx, userID, id)
	if err != nil {
		return err
	}
	if err := s.shareRepo.Delete(ctx, userID, id); err != nil {
		return err
	}
	s.invalidate(ctx, link.Token)
	return nil
}

// Resolve serves the read-only dashboard behind a token. Views are
// cached per token so popular links do not reload the dataset on every
// hit.
func (s *ShareService) Resolve(ctx context.Context, token string) (*SharedViewResponse, error) {
	link, err := s.shareRepo.FindByToken(ctx, token)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.ErrShareInactive
		}
		return nil, err
	}
	if err := link.CheckAccess(time.Now()); err != nil {
		return nil, err
	}

	if cached, err := s.viewCache.Get(ctx, token); err == nil {
		var view SharedViewResponse
		if err := json.Unmarshal(cached, &view); err == nil {
			return &view, nil
		}
		s.invalidate(ctx, token)
	}

	rows, err := s.recordRepo.FindByDataset(ctx, link.UserID, link.DatasetName)
	if err != nil {
		return nil, err
	}
	records := dataset.ToAnalyticsRecords(rows)

	view := &SharedViewResponse{
		DatasetName: link.DatasetName,
		RecordCount: len(records),
		Stats:       analytics.ComputeDashboardStats(records),
		Products:    analytics.ComputeProductSummaries(records),
		TimeSeries:  analytics.ComputeTimeSeries(records),
		Categories:  analytics.ComputeCategoryPerformance(records),
		Alerts:      s.detector.Detect(records),
		GeneratedAt: time.Now().UTC(),
	}

	if payload, err := json.Marshal(view); err == nil {
		if err := s.viewCache.Set(ctx, token, payload, s.cacheTTL); err != nil {
			s.logger.Warn("Failed to cache shared view", zap.Error(err))
		}
	}
	return view, nil
}

func (s *ShareService) invalidate(ctx context.Context, token string) {
	if err := s.viewCache.Delete(ctx, token); err != nil {
		s.logger.Warn("Failed to invalidate shared view cache", zap.Error(err))
	}
}

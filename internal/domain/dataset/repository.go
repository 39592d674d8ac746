package dataset

import (
	"context"

	"github.com/google/uuid"
)

// RecordRepository defines the interface for sales record persistence
type RecordRepository interface {
	// SaveBatch inserts records in one transaction
	SaveBatch(ctx context.Context, records []*Record) error

	// ReplaceDataset swaps a dataset's rows for the given records in one
	// transaction; a failed insert leaves the prior rows in place
	ReplaceDataset(ctx context.Context, userID, datasetName string, records []*Record) error

	// FindByDataset returns all records of one dataset owned by the user
	FindByDataset(ctx context.Context, userID, datasetName string) ([]Record, error)

	// ListSummaries returns per-dataset rollups for the user's datasets
	ListSummaries(ctx context.Context, userID string) ([]Summary, error)

	// DeleteDataset removes a dataset and all its records
	DeleteDataset(ctx context.Context, userID, datasetName string) error

	// DeleteRecord removes a single record owned by the user
	DeleteRecord(ctx context.Context, userID string, id uuid.UUID) error
}

// ShareLinkRepository defines the interface for share link persistence
type ShareLinkRepository interface {
	Save(ctx context.Context, link *ShareLink) error
	FindByID(ctx context.Context, userID string, id uuid.UUID) (*ShareLink, error)
	FindByToken(ctx context.Context, token string) (*ShareLink, error)
	FindAllForUser(ctx context.Context, userID string) ([]ShareLink, error)
	Delete(ctx context.Context, userID string, id uuid.UUID) error
}

// GoalRepository defines the interface for goal persistence
type GoalRepository interface {
	Save(ctx context.Context, goal *Goal) error
	FindByID(ctx context.Context, userID string, id uuid.UUID) (*Goal, error)
	FindAllForUser(ctx context.Context, userID string) ([]Goal, error)
	Delete(ctx context.Context, userID string, id uuid.UUID) error
}

// AIReportRepository defines the interface for AI report persistence
type AIReportRepository interface {
	Save(ctx context.Context, report *AIReport) error
	FindByID(ctx context.Context, userID string, id uuid.UUID) (*AIReport, error)
	FindAllForUser(ctx context.Context, userID string) ([]AIReport, error)
	Delete(ctx context.Context, userID string, id uuid.UUID) error
}

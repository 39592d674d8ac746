// Package goal tracks sales targets and computes their progress from
// the underlying records.
package goal

import (
	"context"

	"github.com/google/uuid"

	"github.com/salespulse/backend/internal/domain/dataset"
	"github.com/salespulse/backend/internal/domain/shared"
)

// GoalService manages sales goals
type GoalService struct {
	goalRepo   dataset.GoalRepository
	recordRepo dataset.RecordRepository
}

// NewGoalService creates a new GoalService
func NewGoalService(goalRepo dataset.GoalRepository, recordRepo dataset.RecordRepository) *GoalService {
	return &GoalService{goalRepo: goalRepo, recordRepo: recordRepo}
}

// Create stores a new goal and returns it with current progress.
func (s *GoalService) Create(ctx context.Context, userID string, req CreateGoalRequest) (*GoalResponse, error) {
	goal, err := dataset.NewGoal(userID, req.DatasetName, req.Title,
		dataset.GoalMetric(req.Metric), req.ProductName, req.Category, req.TargetValue, req.Deadline)
	if err != nil {
		return nil, err
	}
	if err := s.goalRepo.Save(ctx, goal); err != nil {
		return nil, err
	}

	current, err := s.currentValue(ctx, userID, goal)
	if err != nil {
		return nil, err
	}
	return toGoalResponse(goal, current), nil
}

// List returns the user's goals with progress, newest first.
func (s *GoalService) List(ctx context.Context, userID string) ([]GoalResponse, error) {
	goals, err := s.goalRepo.FindAllForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	// one record load per distinct dataset
	loaded := make(map[string][]dataset.Record, len(goals))
	out := make([]GoalResponse, 0, len(goals))
	for i := range goals {
		g := &goals[i]
		rows, ok := loaded[g.DatasetName]
		if !ok {
			rows, err = s.recordRepo.FindByDataset(ctx, userID, g.DatasetName)
			if err != nil {
				return nil, err
			}
			loaded[g.DatasetName] = rows
		}
		out = append(out, *toGoalResponse(g, metricTotal(g, rows)))
	}
	return out, nil
}

// Update adjusts a goal's title, target, or deadline.
func (s *GoalService) Update(ctx context.Context, userID, goalID string, req UpdateGoalRequest) (*GoalResponse, error) {
	id, err := uuid.Parse(goalID)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_ID", "Invalid goal ID")
	}

	goal, err := s.goalRepo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		goal.Title = *req.Title
	}
	if req.TargetValue != nil {
		goal.TargetValue = *req.TargetValue
	}
	if req.Deadline != nil {
		goal.Deadline = *req.Deadline
	}
	if goal.Title == "" || goal.TargetValue <= 0 {
		return nil, shared.ErrInvalidInput
	}

	if err := s.goalRepo.Save(ctx, goal); err != nil {
		return nil, err
	}

	current, err := s.currentValue(ctx, userID, goal)
	if err != nil {
		return nil, err
	}
	return toGoalResponse(goal, current), nil
}

// Delete removes a goal.
func (s *GoalService) Delete(ctx context.Context, userID, goalID string) error {
	id, err := uuid.Parse(goalID)
	if err != nil {
		return shared.NewDomainError("INVALID_ID", "Invalid goal ID")
	}
	return s.goalRepo.Delete(ctx, userID, id)
}

func (s *GoalService) currentValue(ctx context.Context, userID string, g *dataset.Goal) (float64, error) {
	rows, err := s.recordRepo.FindByDataset(ctx, userID, g.DatasetName)
	if err != nil {
		return 0, err
	}
	return metricTotal(g, rows), nil
}

// metricTotal sums the goal's metric over the dataset, narrowed to one
// product or category when the goal names one.
func metricTotal(g *dataset.Goal, rows []dataset.Record) float64 {
	var total float64
	for i := range rows {
		if g.ProductName != "" && rows[i].ProductName != g.ProductName {
			continue
		}
		if g.Category != "" && rows[i].Category != g.Category {
			continue
		}
		switch g.Metric {
		case dataset.GoalMetricQuantity:
			total += float64(rows[i].QuantitySold)
		default:
			total += rows[i].Revenue
		}
	}
	return total
}

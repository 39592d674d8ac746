package goal

import (
	"time"

	"github.com/salespulse/backend/internal/domain/dataset"
)

// CreateGoalRequest creates a sales target over a dataset.
type CreateGoalRequest struct {
	DatasetName string  `json:"dataset_name" binding:"required,min=1,max=100"`
	Title       string  `json:"title" binding:"required,min=1,max=200"`
	Metric      string  `json:"metric" binding:"required,oneof=revenue quantity"`
	ProductName string  `json:"product_name" binding:"max=200"`
	Category    string  `json:"category" binding:"max=100"`
	TargetValue float64 `json:"target_value" binding:"required,gt=0"`
	Deadline    string  `json:"deadline" binding:"omitempty,isodate"`
}

// UpdateGoalRequest adjusts an existing goal.
type UpdateGoalRequest struct {
	Title       *string  `json:"title" binding:"omitempty,min=1,max=200"`
	TargetValue *float64 `json:"target_value" binding:"omitempty,gt=0"`
	Deadline    *string  `json:"deadline" binding:"omitempty,isodate"`
}

// GoalResponse represents a goal with its computed progress.
type GoalResponse struct {
	ID           string    `json:"id"`
	DatasetName  string    `json:"dataset_name"`
	Title        string    `json:"title"`
	Metric       string    `json:"metric"`
	ProductName  string    `json:"product_name,omitempty"`
	Category     string    `json:"category,omitempty"`
	TargetValue  float64   `json:"target_value"`
	Deadline     string    `json:"deadline,omitempty"`
	CurrentValue float64   `json:"current_value"`
	Progress     float64   `json:"progress"`
	Achieved     bool      `json:"achieved"`
	CreatedAt    time.Time `json:"created_at"`
}

func toGoalResponse(g *dataset.Goal, current float64) *GoalResponse {
	return &GoalResponse{
		ID:           g.ID.String(),
		DatasetName:  g.DatasetName,
		Title:        g.Title,
		Metric:       string(g.Metric),
		ProductName:  g.ProductName,
		Category:     g.Category,
		TargetValue:  g.TargetValue,
		Deadline:     g.Deadline,
		CurrentValue: current,
		Progress:     g.Progress(current),
		Achieved:     g.Achieved(current),
		CreatedAt:    g.CreatedAt,
	}
}

package dataset

import (
	"strings"

	"github.com/salespulse/backend/internal/domain/shared"
)

// GoalMetric selects which aggregate a goal tracks.
type GoalMetric string

const (
	GoalMetricRevenue  GoalMetric = "revenue"
	GoalMetricQuantity GoalMetric = "quantity"
)

// Goal is a user-defined sales target. A goal tracks either revenue or
// quantity, over a whole dataset or narrowed to one product or category.
type Goal struct {
	shared.BaseEntity
	UserID      string     `gorm:"type:varchar(128);not null;index"`
	DatasetName string     `gorm:"type:varchar(100);not null"`
	Title       string     `gorm:"type:varchar(200);not null"`
	Metric      GoalMetric `gorm:"type:varchar(20);not null"`
	ProductName string     `gorm:"type:varchar(200)"`  // empty tracks the whole dataset
	Category    string     `gorm:"type:varchar(100)"`
	TargetValue float64    `gorm:"type:double precision;not null"`
	Deadline    string     `gorm:"type:varchar(32)"` // YYYY-MM-DD, empty for open-ended
}

// TableName returns the table name for GORM
func (Goal) TableName() string {
	return "goals"
}

// NewGoal creates a goal after validating its target.
func NewGoal(userID, datasetName, title string, metric GoalMetric, productName, category string, targetValue float64, deadline string) (*Goal, error) {
	if err := ValidateName(datasetName); err != nil {
		return nil, err
	}
	if strings.TrimSpace(title) == "" {
		return nil, shared.NewDomainError("INVALID_GOAL", "Goal title is required")
	}
	if metric != GoalMetricRevenue && metric != GoalMetricQuantity {
		return nil, shared.NewDomainError("INVALID_GOAL", "Goal metric must be revenue or quantity")
	}
	if targetValue <= 0 {
		return nil, shared.NewDomainError("INVALID_GOAL", "Goal target must be positive")
	}
	return &Goal{
		BaseEntity:  shared.NewBaseEntity(),
		UserID:      userID,
		DatasetName: datasetName,
		Title:       title,
		Metric:      metric,
		ProductName: productName,
		Category:    category,
		TargetValue: targetValue,
		Deadline:    deadline,
	}, nil
}

// Progress returns the completion percentage for a current value,
// capped at 100.
func (g *Goal) Progress(current float64) float64 {
	if g.TargetValue <= 0 {
		return 0
	}
	pct := current / g.TargetValue * 100
	if pct > 100 {
		return 100
	}
	if pct < 0 {
		return 0
	}
	return pct
}

// Achieved reports whether a current value meets the target.
func (g *Goal) Achieved(current float64) bool {
	return current >= g.TargetValue
}

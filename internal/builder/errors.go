package builder

import "errors"

var (
	ErrClientRequired      = errors.New("builder: wiki client is required")
	ErrTransformerRequired = errors.New("builder: transformer is required")
	ErrPlanMissing         = errors.New("builder: plan folder not found")
)

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidTempID         = errors.New("invalid temp_id")
	ErrInvalidCadetID        = errors.New("cadet id is required")
	ErrInvalidDate           = errors.New("date must be formatted as YYYY-MM-DD")
	ErrInvalidStatus         = errors.New("invalid presence status")
	ErrInvalidUniformType    = errors.New("uniform type is required")
	ErrEmptyCriteriaScores   = errors.New("at least one criterion score is required")
	ErrInvalidCriterionScore = errors.New("invalid criterion score")
	ErrEmptyPresences        = errors.New("presences list cannot be empty")
	ErrDuplicateCadet        = errors.New("cadet listed twice in the same submission")
	ErrInvalidItemType       = errors.New("invalid sync queue item type")
)

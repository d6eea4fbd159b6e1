package validators

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/cadet-sync/models"
)

// Field name constants used to specify which fields should be validated.
const (
	FieldTempID         = "temp_id"
	FieldCadetID        = "cadet_id"
	FieldDate           = "date"
	FieldStatus         = "status"
	FieldUniformType    = "uniform_type"
	FieldCriteriaScores = "criteria_scores"
	FieldPresences      = "presences"
)

// DateLayout is the wire format of every record date.
const DateLayout = "2006-01-02"

var allowedStatuses = []models.PresenceStatus{
	models.PresenceStatusPresent,
	models.PresenceStatusAbsent,
	models.PresenceStatusExcused,
	models.PresenceStatusLate,
}

// RecordValidator implements [Validator] for the attendance and uniform
// inspection payloads written by the offline engine: OfflinePresence,
// OfflineInspection, PresenceRecord, BulkPresenceRequest and SyncQueueItem.
//
// It performs structural checks only; business rules stay with the backend.
// temp_id is not checked by default because the queue assigns it.
type RecordValidator struct {
}

func NewRecordValidator() Validator {
	return &RecordValidator{}
}

// Validate dispatches on the dynamic type of obj. Both value and pointer
// forms are accepted. Returns ErrUnsupportedType for anything else.
func (v *RecordValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.OfflinePresence:
		return v.validatePresence(value, fields...)
	case *models.OfflinePresence:
		return v.validatePresence(*value, fields...)

	case models.OfflineInspection:
		return v.validateInspection(value, fields...)
	case *models.OfflineInspection:
		return v.validateInspection(*value, fields...)

	case models.PresenceRecord:
		return v.validatePresenceRecord(value, fields...)
	case *models.PresenceRecord:
		return v.validatePresenceRecord(*value, fields...)

	case models.BulkPresenceRequest:
		return v.validateBulkPresence(value, fields...)
	case *models.BulkPresenceRequest:
		return v.validateBulkPresence(*value, fields...)

	case models.SyncQueueItem:
		return v.validateQueueItem(ctx, value, fields...)
	case *models.SyncQueueItem:
		return v.validateQueueItem(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *RecordValidator) validatePresence(p models.OfflinePresence, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCadetID, FieldDate, FieldStatus}
	}

	for _, f := range fields {
		switch f {
		case FieldTempID:
			if strings.TrimSpace(p.TempID) == "" {
				return ErrInvalidTempID
			}
		case FieldCadetID:
			if strings.TrimSpace(p.CadetID) == "" {
				return ErrInvalidCadetID
			}
		case FieldDate:
			if !isValidDate(p.Date) {
				return fmt.Errorf("%w: %q", ErrInvalidDate, p.Date)
			}
		case FieldStatus:
			if !isValidStatus(p.Status) {
				return fmt.Errorf("%w: %q", ErrInvalidStatus, p.Status)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RecordValidator) validateInspection(i models.OfflineInspection, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCadetID, FieldDate, FieldUniformType, FieldCriteriaScores}
	}

	for _, f := range fields {
		switch f {
		case FieldTempID:
			if strings.TrimSpace(i.TempID) == "" {
				return ErrInvalidTempID
			}
		case FieldCadetID:
			if strings.TrimSpace(i.CadetID) == "" {
				return ErrInvalidCadetID
			}
		case FieldDate:
			if !isValidDate(i.Date) {
				return fmt.Errorf("%w: %q", ErrInvalidDate, i.Date)
			}
		case FieldUniformType:
			if strings.TrimSpace(i.UniformType) == "" {
				return ErrInvalidUniformType
			}
		case FieldCriteriaScores:
			if len(i.CriteriaScores) == 0 {
				return ErrEmptyCriteriaScores
			}
			for criterion, score := range i.CriteriaScores {
				if strings.TrimSpace(criterion) == "" || score < 0 {
					return fmt.Errorf("%w: %q=%d", ErrInvalidCriterionScore, criterion, score)
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RecordValidator) validatePresenceRecord(r models.PresenceRecord, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCadetID, FieldStatus}
	}

	return v.validatePresence(models.OfflinePresence{CadetID: r.CadetID, Status: r.Status}, fields...)
}

// validateBulkPresence checks the date once and every line, rejecting a cadet
// listed twice.
func (v *RecordValidator) validateBulkPresence(req models.BulkPresenceRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldDate, FieldPresences}
	}

	for _, f := range fields {
		switch f {
		case FieldDate:
			if !isValidDate(req.Date) {
				return fmt.Errorf("%w: %q", ErrInvalidDate, req.Date)
			}
		case FieldPresences:
			if len(req.Presences) == 0 {
				return ErrEmptyPresences
			}
			seen := make(map[string]struct{}, len(req.Presences))
			for idx, r := range req.Presences {
				if err := v.validatePresenceRecord(r); err != nil {
					return fmt.Errorf("presences[%d]: %w", idx, err)
				}
				if _, dup := seen[r.CadetID]; dup {
					return fmt.Errorf("%w: %s", ErrDuplicateCadet, r.CadetID)
				}
				seen[r.CadetID] = struct{}{}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateQueueItem checks that the payload matches the type and carries a
// temp_id, then validates the payload itself.
func (v *RecordValidator) validateQueueItem(_ context.Context, item models.SyncQueueItem, fields ...string) error {
	switch item.Type {
	case models.ItemTypePresence:
		if item.Presence == nil || item.Inspection != nil {
			return fmt.Errorf("%w: presence payload missing", ErrInvalidItemType)
		}
		if len(fields) == 0 {
			fields = []string{FieldTempID, FieldCadetID, FieldDate, FieldStatus}
		}
		return v.validatePresence(*item.Presence, fields...)
	case models.ItemTypeInspection:
		if item.Inspection == nil || item.Presence != nil {
			return fmt.Errorf("%w: inspection payload missing", ErrInvalidItemType)
		}
		if len(fields) == 0 {
			fields = []string{FieldTempID, FieldCadetID, FieldDate, FieldUniformType, FieldCriteriaScores}
		}
		return v.validateInspection(*item.Inspection, fields...)
	default:
		return fmt.Errorf("%w: %q", ErrInvalidItemType, item.Type)
	}
}

func isValidDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

func isValidStatus(s models.PresenceStatus) bool {
	for _, allowed := range allowedStatuses {
		if s == allowed {
			return true
		}
	}
	return false
}

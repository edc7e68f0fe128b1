package validators

import (
	"context"
	"regexp"

	"github.com/MKhiriev/go-park-audit/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldPlateNumber targets the recognised licence plate string.
	FieldPlateNumber = "plate_number"

	// FieldCoordinates targets the GPS latitude/longitude pair.
	FieldCoordinates = "coordinates"

	// FieldConfidence targets the OCR confidence value.
	FieldConfidence = "confidence"

	// FieldStatus targets the payment verdict.
	FieldStatus = "status"

	// FieldZone targets the parking zone identifier.
	FieldZone = "zone"

	// FieldLocalID targets the client-generated record identifier.
	FieldLocalID = "local_id"

	// FieldCapturedAt targets the client-side capture timestamp.
	FieldCapturedAt = "captured_at"

	// FieldPayload targets the nested audit payload of a request.
	FieldPayload = "payload"
)

// platePattern accepts the normalised plate candidates the OCR stage emits:
// uppercase letters, digits, dashes and single spaces, 2 to 12 characters.
var platePattern = regexp.MustCompile(`^[A-Z0-9][A-Z0-9 -]{0,10}[A-Z0-9]$`)

// allowedStatuses is the exhaustive set of AuditStatus values accepted by the
// validator. Any status not present here is rejected.
var allowedStatuses = []models.AuditStatus{
	models.StatusUnknown,
	models.StatusPaid,
	models.StatusUnpaid,
	models.StatusExempt,
	models.StatusFlagged,
}

// AuditValidator implements Validator for the audit domain models:
// AuditPayload and CreateEntryRequest (in both value and pointer form) and
// bare AuditStatus values.
type AuditValidator struct {
}

func NewAuditValidator() Validator {
	return &AuditValidator{}
}

// Validate dispatches to the type-specific method based on the dynamic type
// of obj. Returns ErrUnsupportedType for anything it does not know.
func (v *AuditValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.AuditPayload:
		return v.validatePayload(ctx, value, fields...)
	case *models.AuditPayload:
		return v.validatePayload(ctx, *value, fields...)

	case models.CreateEntryRequest:
		return v.validateCreateRequest(ctx, value, fields...)
	case *models.CreateEntryRequest:
		return v.validateCreateRequest(ctx, *value, fields...)

	case models.AuditStatus:
		if !isValidStatus(value) {
			return ErrInvalidStatus
		}
		return nil

	default:
		return ErrUnsupportedType
	}
}

func isValidStatus(st models.AuditStatus) bool {
	for _, s := range allowedStatuses {
		if st == s {
			return true
		}
	}
	return false
}

// validatePayload validates a single AuditPayload.
//
// Default validated fields (when none specified):
// PlateNumber, Coordinates, Confidence, Status, Zone.
func (v *AuditValidator) validatePayload(_ context.Context, payload models.AuditPayload, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPlateNumber, FieldCoordinates, FieldConfidence, FieldStatus, FieldZone}
	}

	for _, f := range fields {
		switch f {
		case FieldPlateNumber:
			if payload.PlateNumber == "" {
				return ErrEmptyPlateNumber
			}
			if !platePattern.MatchString(payload.PlateNumber) {
				return ErrInvalidPlateNumber
			}
		case FieldCoordinates:
			if payload.Latitude < -90 || payload.Latitude > 90 {
				return ErrInvalidCoordinates
			}
			if payload.Longitude < -180 || payload.Longitude > 180 {
				return ErrInvalidCoordinates
			}
		case FieldConfidence:
			if payload.Confidence < 0 || payload.Confidence > 1 {
				return ErrInvalidConfidence
			}
		case FieldStatus:
			if !isValidStatus(payload.Status) {
				return ErrInvalidStatus
			}
		case FieldZone:
			if payload.Zone == "" {
				return ErrEmptyZone
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateCreateRequest validates a CreateEntryRequest as received by the
// server: a non-empty local id, a set capture timestamp, and a valid payload.
func (v *AuditValidator) validateCreateRequest(ctx context.Context, request models.CreateEntryRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldLocalID, FieldCapturedAt, FieldPayload}
	}

	for _, f := range fields {
		switch f {
		case FieldLocalID:
			if request.LocalID == "" {
				return ErrInvalidLocalID
			}
		case FieldCapturedAt:
			if request.CapturedAt.IsZero() {
				return ErrInvalidCapturedAt
			}
		case FieldPayload:
			if err := v.validatePayload(ctx, request.Payload); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

package validators

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-park-audit/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPayload() models.AuditPayload {
	return models.AuditPayload{
		PlateNumber: "AB-123-CD",
		Latitude:    55.75,
		Longitude:   37.61,
		Zone:        "Z-14",
		Confidence:  0.92,
		Status:      models.StatusUnpaid,
	}
}

func TestAuditValidator_Payload(t *testing.T) {
	v := NewAuditValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(*models.AuditPayload)
		wantErr error
	}{
		{name: "valid", mutate: func(p *models.AuditPayload) {}},
		{
			name:    "empty plate",
			mutate:  func(p *models.AuditPayload) { p.PlateNumber = "" },
			wantErr: ErrEmptyPlateNumber,
		},
		{
			name:    "lowercase plate rejected",
			mutate:  func(p *models.AuditPayload) { p.PlateNumber = "ab123" },
			wantErr: ErrInvalidPlateNumber,
		},
		{
			name:    "latitude out of range",
			mutate:  func(p *models.AuditPayload) { p.Latitude = 95 },
			wantErr: ErrInvalidCoordinates,
		},
		{
			name:    "longitude out of range",
			mutate:  func(p *models.AuditPayload) { p.Longitude = -200 },
			wantErr: ErrInvalidCoordinates,
		},
		{
			name:    "confidence above one",
			mutate:  func(p *models.AuditPayload) { p.Confidence = 1.5 },
			wantErr: ErrInvalidConfidence,
		},
		{
			name:    "unknown status",
			mutate:  func(p *models.AuditPayload) { p.Status = "towed" },
			wantErr: ErrInvalidStatus,
		},
		{
			name:    "empty zone",
			mutate:  func(p *models.AuditPayload) { p.Zone = "" },
			wantErr: ErrEmptyZone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := validPayload()
			tt.mutate(&payload)

			err := v.Validate(ctx, payload)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAuditValidator_PayloadPointer(t *testing.T) {
	v := NewAuditValidator()
	payload := validPayload()

	require.NoError(t, v.Validate(context.Background(), &payload))
}

func TestAuditValidator_FieldScoping(t *testing.T) {
	v := NewAuditValidator()
	payload := validPayload()
	payload.Zone = "" // невалидная зона, но проверяем только номер

	err := v.Validate(context.Background(), payload, FieldPlateNumber)
	assert.NoError(t, err)
}

func TestAuditValidator_UnknownField(t *testing.T) {
	v := NewAuditValidator()

	err := v.Validate(context.Background(), validPayload(), "no_such_field")
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestAuditValidator_CreateRequest(t *testing.T) {
	v := NewAuditValidator()
	ctx := context.Background()

	req := models.CreateEntryRequest{
		LocalID:    "0195c9aa-0000-7000-8000-000000000001",
		Payload:    validPayload(),
		CapturedAt: time.Now(),
	}
	require.NoError(t, v.Validate(ctx, req))

	req.LocalID = ""
	assert.ErrorIs(t, v.Validate(ctx, req), ErrInvalidLocalID)

	req.LocalID = "some-id"
	req.CapturedAt = time.Time{}
	assert.ErrorIs(t, v.Validate(ctx, req), ErrInvalidCapturedAt)
}

func TestAuditValidator_UnsupportedType(t *testing.T) {
	v := NewAuditValidator()

	err := v.Validate(context.Background(), 42)
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

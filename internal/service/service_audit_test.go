package service

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-park-audit/internal/logger"
	"github.com/MKhiriev/go-park-audit/internal/mock"
	"github.com/MKhiriev/go-park-audit/internal/store"
	"github.com/MKhiriev/go-park-audit/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func validCreateRequest() models.CreateEntryRequest {
	return models.CreateEntryRequest{
		LocalID: "0191b2c3-aaaa-7bbb-8ccc-0123456789ab",
		Payload: models.AuditPayload{
			PlateNumber: "AB123CD",
			Latitude:    55.7558,
			Longitude:   37.6173,
			Zone:        "Z-14",
			Confidence:  0.92,
			Status:      models.StatusUnpaid,
		},
		CapturedAt: time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
	}
}

func TestCreateEntry_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	entries := mock.NewMockAuditEntryRepository(ctrl)

	req := validCreateRequest()
	entries.EXPECT().CreateEntry(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry models.AuditEntry) (models.AuditEntry, error) {
			assert.Equal(t, int64(7), entry.AgentID)
			assert.Equal(t, req.LocalID, entry.LocalID)
			entry.ID = 100
			return entry, nil
		})

	svc := NewAuditService(entries, logger.Nop())
	got, err := svc.CreateEntry(context.Background(), 7, req)

	require.NoError(t, err)
	assert.Equal(t, int64(100), got.ID)
}

// повторная отправка того же local id возвращает уже сохранённую запись
func TestCreateEntry_DuplicateReplayReturnsExisting(t *testing.T) {
	ctrl := gomock.NewController(t)
	entries := mock.NewMockAuditEntryRepository(ctrl)

	req := validCreateRequest()
	existing := models.AuditEntry{ID: 100, AgentID: 7, LocalID: req.LocalID, Payload: req.Payload}

	entries.EXPECT().CreateEntry(gomock.Any(), gomock.Any()).
		Return(models.AuditEntry{}, store.ErrDuplicateLocalID)
	entries.EXPECT().GetEntryByLocalID(gomock.Any(), int64(7), req.LocalID).
		Return(existing, nil)

	svc := NewAuditService(entries, logger.Nop())
	got, err := svc.CreateEntry(context.Background(), 7, req)

	require.NoError(t, err)
	assert.Equal(t, existing.ID, got.ID)
}

func TestCreateEntry_InvalidRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	entries := mock.NewMockAuditEntryRepository(ctrl)

	req := validCreateRequest()
	req.LocalID = ""

	svc := NewAuditService(entries, logger.Nop())
	_, err := svc.CreateEntry(context.Background(), 7, req)

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestCreateEntry_StorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	entries := mock.NewMockAuditEntryRepository(ctrl)

	entries.EXPECT().CreateEntry(gomock.Any(), gomock.Any()).
		Return(models.AuditEntry{}, errors.New("connection refused"))

	svc := NewAuditService(entries, logger.Nop())
	_, err := svc.CreateEntry(context.Background(), 7, validCreateRequest())

	require.Error(t, err)
}

func TestListEntries(t *testing.T) {
	ctrl := gomock.NewController(t)
	entries := mock.NewMockAuditEntryRepository(ctrl)

	filter := models.EntryFilter{Zone: "Z-14"}
	entries.EXPECT().ListEntries(gomock.Any(), int64(7), filter).
		Return([]models.AuditEntry{{ID: 1}, {ID: 2}}, nil)

	svc := NewAuditService(entries, logger.Nop())
	got, err := svc.ListEntries(context.Background(), 7, filter)

	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestUpdateEntry_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	entries := mock.NewMockAuditEntryRepository(ctrl)

	status := models.StatusPaid
	update := models.UpdateEntryRequest{Status: &status}
	entries.EXPECT().UpdateEntry(gomock.Any(), int64(7), int64(100), update).Return(nil)

	svc := NewAuditService(entries, logger.Nop())
	require.NoError(t, svc.UpdateEntry(context.Background(), 7, 100, update))
}

func TestUpdateEntry_EmptyUpdate(t *testing.T) {
	ctrl := gomock.NewController(t)
	entries := mock.NewMockAuditEntryRepository(ctrl)

	svc := NewAuditService(entries, logger.Nop())
	err := svc.UpdateEntry(context.Background(), 7, 100, models.UpdateEntryRequest{})

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestUpdateEntry_InvalidStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	entries := mock.NewMockAuditEntryRepository(ctrl)

	status := models.AuditStatus("bogus")
	err := NewAuditService(entries, logger.Nop()).
		UpdateEntry(context.Background(), 7, 100, models.UpdateEntryRequest{Status: &status})

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestUpdateEntry_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	entries := mock.NewMockAuditEntryRepository(ctrl)

	notes := "spotted again"
	update := models.UpdateEntryRequest{Notes: &notes}
	entries.EXPECT().UpdateEntry(gomock.Any(), int64(7), int64(100), update).
		Return(store.ErrEntryNotFound)

	svc := NewAuditService(entries, logger.Nop())
	err := svc.UpdateEntry(context.Background(), 7, 100, update)

	assert.ErrorIs(t, err, store.ErrEntryNotFound)
}

func TestDeleteEntry(t *testing.T) {
	ctrl := gomock.NewController(t)
	entries := mock.NewMockAuditEntryRepository(ctrl)

	entries.EXPECT().SoftDeleteEntry(gomock.Any(), int64(7), int64(100)).Return(nil)

	svc := NewAuditService(entries, logger.Nop())
	require.NoError(t, svc.DeleteEntry(context.Background(), 7, 100))
}

func TestExportCSV(t *testing.T) {
	ctrl := gomock.NewController(t)
	entries := mock.NewMockAuditEntryRepository(ctrl)

	entries.EXPECT().ListEntries(gomock.Any(), int64(7), models.EntryFilter{}).
		Return([]models.AuditEntry{
			{
				ID:      1,
				LocalID: "local-1",
				Payload: models.AuditPayload{
					PlateNumber: "AB123CD",
					Zone:        "Z-14",
					Latitude:    55.7558,
					Longitude:   37.6173,
					Confidence:  0.92,
					Status:      models.StatusUnpaid,
					Notes:       "meter expired",
				},
				CapturedAt: time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
			},
		}, nil)

	var buf bytes.Buffer
	svc := NewAuditService(entries, logger.Nop())
	require.NoError(t, svc.ExportCSV(context.Background(), 7, models.EntryFilter{}, &buf))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "plate_number")
	assert.Contains(t, lines[1], "AB123CD")
	assert.Contains(t, lines[1], "2026-08-30T12:00:00Z")
}

func TestExportCSV_ListFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	entries := mock.NewMockAuditEntryRepository(ctrl)

	entries.EXPECT().ListEntries(gomock.Any(), int64(7), models.EntryFilter{}).
		Return(nil, errors.New("connection refused"))

	var buf bytes.Buffer
	svc := NewAuditService(entries, logger.Nop())
	require.Error(t, svc.ExportCSV(context.Background(), 7, models.EntryFilter{}, &buf))
}

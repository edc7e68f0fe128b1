package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-park-audit/internal/adapter"
	"github.com/MKhiriev/go-park-audit/internal/app"
	"github.com/MKhiriev/go-park-audit/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestMapAdapterError_TableTest(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{
			name: "nil passes through",
			err:  nil,
			want: nil,
		},
		{
			name: "bad request with validation body → ErrInvalidDataProvided",
			err:  fmt.Errorf("%w: %s", adapter.ErrBadRequest, app.MsgInvalidDataProvided),
			want: ErrInvalidDataProvided,
		},
		{
			name: "bad request with entry body → ErrInvalidDataProvided",
			err:  fmt.Errorf("%w: %s", adapter.ErrBadRequest, app.MsgInvalidEntryData),
			want: ErrInvalidDataProvided,
		},
		{
			name: "unauthorized with login body → ErrWrongPassword",
			err:  fmt.Errorf("%w: %s", adapter.ErrUnauthorized, app.MsgInvalidLoginPassword),
			want: ErrWrongPassword,
		},
		{
			name: "unauthorized with token body → ErrTokenIsExpiredOrInvalid",
			err:  fmt.Errorf("%w: %s", adapter.ErrUnauthorized, "token is expired"),
			want: ErrTokenIsExpiredOrInvalid,
		},
		{
			name: "not found → store.ErrEntryNotFound",
			err:  fmt.Errorf("%w: %s", adapter.ErrNotFound, app.MsgEntryNotFound),
			want: store.ErrEntryNotFound,
		},
		{
			name: "conflict with login body → store.ErrLoginAlreadyExists",
			err:  fmt.Errorf("%w: %s", adapter.ErrConflict, app.MsgLoginAlreadyExists),
			want: store.ErrLoginAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, mapAdapterError(tt.err))
		})
	}
}

func TestMapAdapterError_UnknownErrorsPassThrough(t *testing.T) {
	err := errors.New("connection refused")
	assert.Equal(t, err, mapAdapterError(err))

	wrapped := fmt.Errorf("%w: %s", adapter.ErrInternalServerError, "error creating audit entry")
	assert.Equal(t, wrapped, mapAdapterError(wrapped))
}

package connectivity

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-park-audit/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeProber возвращает заранее заданную ошибку; потокобезопасен
type fakeProber struct {
	mu  sync.Mutex
	err error
}

func (f *fakeProber) Ping(_ context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.err
}

func (f *fakeProber) setErr(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.err = err
}

func TestMonitor_InitialStateUnknown(t *testing.T) {
	m := NewMonitor(&fakeProber{}, time.Minute, logger.Nop())
	assert.Equal(t, StateUnknown, m.State())
}

func TestMonitor_ForceCheckOnline(t *testing.T) {
	m := NewMonitor(&fakeProber{}, time.Minute, logger.Nop())

	got := m.ForceCheck(context.Background())

	assert.Equal(t, StateOnline, got)
	assert.Equal(t, StateOnline, m.State())
}

func TestMonitor_ForceCheckOffline(t *testing.T) {
	p := &fakeProber{err: errors.New("connection refused")}
	m := NewMonitor(p, time.Minute, logger.Nop())

	got := m.ForceCheck(context.Background())

	assert.Equal(t, StateOffline, got)
}

func TestMonitor_TransitionNotifiesSubscribers(t *testing.T) {
	p := &fakeProber{err: errors.New("connection refused")}
	m := NewMonitor(p, time.Minute, logger.Nop())
	sub := m.Subscribe()

	m.ForceCheck(context.Background()) // unknown -> offline
	p.setErr(nil)
	m.ForceCheck(context.Background()) // offline -> online

	tr := <-sub
	assert.Equal(t, StateUnknown, tr.From)
	assert.Equal(t, StateOffline, tr.To)

	tr = <-sub
	assert.Equal(t, StateOffline, tr.From)
	assert.Equal(t, StateOnline, tr.To)
	assert.False(t, tr.At.IsZero())
}

func TestMonitor_NoNotificationWithoutChange(t *testing.T) {
	m := NewMonitor(&fakeProber{}, time.Minute, logger.Nop())
	sub := m.Subscribe()

	m.ForceCheck(context.Background()) // unknown -> online
	m.ForceCheck(context.Background()) // online, без изменений
	m.ForceCheck(context.Background())

	<-sub // первый переход
	select {
	case tr := <-sub:
		t.Fatalf("unexpected transition: %+v", tr)
	default:
	}
}

func TestMonitor_SlowSubscriberDoesNotBlock(t *testing.T) {
	p := &fakeProber{}
	m := NewMonitor(p, time.Minute, logger.Nop())
	_ = m.Subscribe() // никто не читает

	// больше переходов, чем вмещает буфер канала
	for i := 0; i < 20; i++ {
		p.setErr(nil)
		m.ForceCheck(context.Background())
		p.setErr(errors.New("down"))
		m.ForceCheck(context.Background())
	}

	assert.Equal(t, StateOffline, m.State())
}

func TestMonitor_StartProbesImmediately(t *testing.T) {
	m := NewMonitor(&fakeProber{}, time.Hour, logger.Nop())
	sub := m.Subscribe()

	m.Start(context.Background())
	defer m.Stop()

	select {
	case tr := <-sub:
		assert.Equal(t, StateOnline, tr.To)
	case <-time.After(2 * time.Second):
		t.Fatal("no transition observed after Start")
	}
}

func TestMonitor_StopIsIdempotent(t *testing.T) {
	m := NewMonitor(&fakeProber{}, time.Hour, logger.Nop())

	m.Start(context.Background())
	m.Stop()
	m.Stop()

	require.Equal(t, StateOnline, m.State())
}

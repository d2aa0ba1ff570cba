package listener

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/fekuna/omnipos-catalog-service/internal/category"
	"github.com/fekuna/omnipos-catalog-service/pkg/logger"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type chanReader struct {
	msgs chan kafka.Message
	errs chan error
}

func newChanReader() *chanReader {
	return &chanReader{msgs: make(chan kafka.Message, 8), errs: make(chan error, 8)}
}

func (r *chanReader) ReadMessage(ctx context.Context) (kafka.Message, error) {
	select {
	case <-ctx.Done():
		return kafka.Message{}, ctx.Err()
	case err := <-r.errs:
		return kafka.Message{}, err
	case m := <-r.msgs:
		return m, nil
	}
}

// invalidations records InvalidateTree calls; the other UseCase methods are not used.
type invalidations struct {
	category.UseCase
	mu    sync.Mutex
	calls int
	done  chan struct{}
}

func (u *invalidations) InvalidateTree(context.Context) error {
	u.mu.Lock()
	u.calls++
	u.mu.Unlock()
	u.done <- struct{}{}
	return nil
}

func (u *invalidations) count() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.calls
}

func event(t *testing.T, eventType, source string) kafka.Message {
	t.Helper()
	b, err := json.Marshal(category.ChangedEvent{
		EventID:   "e-1",
		EventType: eventType,
		Source:    source,
		Payload:   category.ChangedPayload{CategoryID: 7, Action: category.ActionUpdated},
	})
	require.NoError(t, err)
	return kafka.Message{Value: b}
}

func TestCategoryListener(t *testing.T) {
	reader := newChanReader()
	uc := &invalidations{done: make(chan struct{}, 8)}
	l := NewCategoryListener(reader, uc, logger.NewNop())
	l.retryDelay = time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	go func() {
		l.Start(ctx)
		close(stopped)
	}()

	// Skipped: own events, other event types, garbage, read errors.
	reader.msgs <- event(t, category.EventCategoryChanged, category.EventSource)
	reader.msgs <- event(t, "OrderCreated", "omnipos-order-service")
	reader.msgs <- kafka.Message{Value: []byte("{not json")}
	reader.errs <- errors.New("broker unavailable")

	reader.msgs <- event(t, category.EventCategoryChanged, "omnipos-backoffice")

	select {
	case <-uc.done:
	case <-time.After(5 * time.Second):
		t.Fatal("listener did not invalidate the tree")
	}
	assert.Equal(t, 1, uc.count())

	cancel()
	select {
	case <-stopped:
	case <-time.After(5 * time.Second):
		t.Fatal("listener did not stop")
	}
}

type recordingWriter struct {
	key, value []byte
}

func (w *recordingWriter) Publish(_ context.Context, key, value []byte) error {
	w.key, w.value = key, value
	return nil
}

func TestKafkaPublisher(t *testing.T) {
	w := &recordingWriter{}
	p := NewKafkaPublisher(w)

	in := &category.ChangedEvent{
		EventID:   "e-2",
		EventType: category.EventCategoryChanged,
		Source:    category.EventSource,
		Payload:   category.ChangedPayload{CategoryID: 42, Action: category.ActionDeleted, Version: 9},
	}
	require.NoError(t, p.PublishCategoryChanged(context.Background(), in))

	assert.Equal(t, "42", string(w.key))
	var out category.ChangedEvent
	require.NoError(t, json.Unmarshal(w.value, &out))
	assert.Equal(t, in.Payload, out.Payload)
	assert.Equal(t, category.EventSource, out.Source)
}

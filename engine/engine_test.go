package engine_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"k8s.io/utils/clock"
	testingclock "k8s.io/utils/clock/testing"

	"github.com/krisalay/ttl-cache/engine"
	"github.com/krisalay/ttl-cache/mock"
	"github.com/krisalay/ttl-cache/types"
)

func TestNewCacheEngineDefaults(t *testing.T) {
	e := engine.NewCacheEngine(0, nil, nil, nil, logr.Logger{})

	assert.Equal(t, engine.DefaultTTL, e.TTL)
	assert.Equal(t, clock.RealClock{}, e.Clock)
	assert.Equal(t, types.NoopMetrics{}, e.Metrics)
	assert.Nil(t, e.Notifier)

	// A discarded logger must still be usable.
	e.OnInsert(&types.CacheEntry{Key: "k"}, false)
}

func TestOnReadRecordsHitsAndMisses(t *testing.T) {
	ctrl := gomock.NewController(t)
	metrics := mock.NewMockMetrics(ctrl)

	e := engine.NewCacheEngine(time.Second, nil, nil, metrics, logr.Discard())

	gomock.InOrder(
		metrics.EXPECT().Hit(),
		metrics.EXPECT().Miss(),
	)
	e.OnRead(true)
	e.OnRead(false)
}

func TestOnExpire(t *testing.T) {
	ctx := context.Background()
	ent := &types.CacheEntry{Key: "k", Value: "v"}

	t.Run("notifies", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		metrics := mock.NewMockMetrics(ctrl)
		notifier := mock.NewMockNotifier(ctrl)

		e := engine.NewCacheEngine(time.Second, testingclock.NewFakeClock(time.Now()), notifier, metrics, logr.Discard())

		metrics.EXPECT().Expire()
		notifier.EXPECT().Evicted(ctx, ent).Return(nil)

		require.NoError(t, e.OnExpire(ctx, ent))
	})

	t.Run("returns notifier failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		metrics := mock.NewMockMetrics(ctrl)
		notifier := mock.NewMockNotifier(ctrl)
		boom := errors.New("sink down")

		e := engine.NewCacheEngine(time.Second, nil, notifier, metrics, logr.Discard())

		metrics.EXPECT().Expire()
		notifier.EXPECT().Evicted(ctx, ent).Return(boom)

		assert.ErrorIs(t, e.OnExpire(ctx, ent), boom)
	})

	t.Run("without notifier", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		metrics := mock.NewMockMetrics(ctrl)

		e := engine.NewCacheEngine(time.Second, nil, nil, metrics, logr.Discard())

		metrics.EXPECT().Expire()
		require.NoError(t, e.OnExpire(ctx, ent))
	})
}

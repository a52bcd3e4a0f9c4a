package channel_test

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/sahil-kale/voyager-comm-lib/core/channel"
)

func TestSynchronized_Basic(t *testing.T) {
	t.Parallel()

	ch := channel.NewSynchronized[TestMessage](channel.WithName("sync"))
	assert.Equal(t, "sync", ch.Name())
	assert.NotEmpty(t, ch.ID())

	sub := &fakeSubscriber{}
	res := ch.Subscribe(channel.Bind(sub, (*fakeSubscriber).Callback))
	require.Equal(t, channel.StatusSuccess, res.Status)
	assert.True(t, ch.Subscribed(res.Handle))

	var fnCalls int
	fnRes := ch.SubscribeNoContext(func(TestMessage) { fnCalls++ })
	require.Equal(t, channel.StatusSuccess, fnRes.Status)
	assert.Equal(t, 2, ch.NumCallbacks())

	assert.Equal(t, channel.StatusSuccess, ch.Publish(TestMessage{Data: 0x42}))
	assert.Equal(t, 1, sub.numMessages)
	assert.Equal(t, uint32(0x42), sub.mostRecentMsg.Data)
	assert.Equal(t, 1, fnCalls)

	unsub := ch.Unsubscribe(res.Handle)
	assert.Equal(t, channel.StatusSuccess, unsub.Status)
	assert.Equal(t, 1, unsub.NumSubscribers)
	assert.Equal(t, channel.StatusInvalidParameters, ch.Unsubscribe(res.Handle).Status)

	ch.Reset()
	assert.Equal(t, 0, ch.NumCallbacks())
	assert.False(t, ch.Subscribed(fnRes.Handle))
}

func TestSynchronized_ConcurrentUse(t *testing.T) {
	t.Parallel()

	ch := channel.NewSynchronized[TestMessage]()

	var delivered atomic.Int64
	var g errgroup.Group

	const workers = 8
	const rounds = 200

	for range workers {
		g.Go(func() error {
			for i := range rounds {
				res := ch.SubscribeNoContext(func(TestMessage) { delivered.Add(1) })
				if res.Status == channel.StatusFull {
					continue
				}
				if err := res.Status.Err(); err != nil {
					return err
				}

				ch.Publish(TestMessage{Data: uint32(i)})

				if err := ch.Unsubscribe(res.Handle).Status.Err(); err != nil {
					return err
				}
			}
			return nil
		})
	}

	require.NoError(t, g.Wait())
	assert.Equal(t, 0, ch.NumCallbacks())
	assert.GreaterOrEqual(t, delivered.Load(), int64(workers*rounds))
}

func TestSynchronized_NeverExceedsCapacity(t *testing.T) {
	t.Parallel()

	ch := channel.NewSynchronized[TestMessage]()

	var accepted, rejected atomic.Int64
	var g errgroup.Group

	for range channel.Capacity * 2 {
		g.Go(func() error {
			switch ch.SubscribeNoContext(func(TestMessage) {}).Status {
			case channel.StatusSuccess:
				accepted.Add(1)
			case channel.StatusFull:
				rejected.Add(1)
			}
			return nil
		})
	}

	require.NoError(t, g.Wait())
	assert.Equal(t, int64(channel.Capacity), accepted.Load())
	assert.Equal(t, int64(channel.Capacity), rejected.Load())
	assert.Equal(t, channel.Capacity, ch.NumCallbacks())
}

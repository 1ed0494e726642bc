package broadcast

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/KoboSteruS/atii/pkg/channels/gochannel"
	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBroadcaster(t *testing.T) (*WatermillBroadcaster, *WatermillBroadcaster) {
	t.Helper()

	pub, sub, err := gochannel.CreateTestChannel(watermill.NewSlogLogger(slog.Default()))
	require.NoError(t, err)

	// Both broadcasters share one channel, standing in for two processes on
	// the same data origin.
	sender := NewWatermillBroadcaster(pub, sub, slog.Default())
	receiver := NewWatermillBroadcaster(pub, sub, slog.Default())

	return sender, receiver
}

func TestWatermillBroadcaster_DeliversToPeer(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sender, receiver := newTestBroadcaster(t)

	received := make(chan ChangeEvent, 1)

	require.NoError(t, receiver.Subscribe(ctx, func(_ context.Context, event ChangeEvent) error {
		received <- event

		return nil
	}))

	event := ChangeEvent{Key: "atii_websites", NewValue: `[{"id":"1"}]`}
	require.NoError(t, sender.Publish(ctx, event))

	select {
	case got := <-received:
		assert.Equal(t, event, got)
	case <-time.After(5 * time.Second):
		t.Fatal("peer never received the change event")
	}
}

func TestWatermillBroadcaster_SkipsOwnEvents(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sender, receiver := newTestBroadcaster(t)

	senderReceived := make(chan ChangeEvent, 1)
	peerReceived := make(chan ChangeEvent, 1)

	require.NoError(t, sender.Subscribe(ctx, func(_ context.Context, event ChangeEvent) error {
		senderReceived <- event

		return nil
	}))
	require.NoError(t, receiver.Subscribe(ctx, func(_ context.Context, event ChangeEvent) error {
		peerReceived <- event

		return nil
	}))

	require.NoError(t, sender.Publish(ctx, ChangeEvent{Key: "atii_settings", NewValue: `{}`}))

	select {
	case <-peerReceived:
	case <-time.After(5 * time.Second):
		t.Fatal("peer never received the change event")
	}

	select {
	case <-senderReceived:
		t.Fatal("sender received its own change event")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestWatermillBroadcaster_AcksMalformedPayloads(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pub, sub, err := gochannel.CreateTestChannel(watermill.NewSlogLogger(slog.Default()))
	require.NoError(t, err)

	receiver := NewWatermillBroadcaster(pub, sub, slog.Default())

	received := make(chan ChangeEvent, 1)

	require.NoError(t, receiver.Subscribe(ctx, func(_ context.Context, event ChangeEvent) error {
		received <- event

		return nil
	}))

	// Raw publish bypassing the broadcaster, as a buggy peer would.
	malformed := message.NewMessage("msg-1", []byte(`{not json`))
	require.NoError(t, pub.Publish(Topic, malformed))

	valid := message.NewMessage("msg-2", []byte(`{"key":"atii_pages","newValue":"[]"}`))
	require.NoError(t, pub.Publish(Topic, valid))

	// The valid event arriving proves the malformed one was acked, not stuck.
	select {
	case got := <-received:
		assert.Equal(t, "atii_pages", got.Key)
	case <-time.After(5 * time.Second):
		t.Fatal("valid event never delivered after malformed one")
	}
}

func TestWatermillBroadcaster_HandlerErrorDoesNotStopSubscription(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sender, receiver := newTestBroadcaster(t)

	received := make(chan ChangeEvent, 2)

	require.NoError(t, receiver.Subscribe(ctx, func(_ context.Context, event ChangeEvent) error {
		received <- event

		return assert.AnError
	}))

	require.NoError(t, sender.Publish(ctx, ChangeEvent{Key: "atii_websites", NewValue: "[]"}))
	require.NoError(t, sender.Publish(ctx, ChangeEvent{Key: "atii_pages", NewValue: "[]"}))

	for range 2 {
		select {
		case <-received:
		case <-time.After(5 * time.Second):
			t.Fatal("subscription stopped after handler error")
		}
	}
}

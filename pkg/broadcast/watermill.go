package broadcast

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
)

// Topic is the single pub/sub topic change events travel on.
const Topic = "atii.storage"

const (
	keyMetadata    = "key"
	senderMetadata = "sender"
)

// WatermillBroadcaster implements Broadcaster on top of a watermill
// publisher/subscriber pair. Each instance tags outbound messages with its own
// id and drops inbound messages carrying that id, mirroring the browser
// storage event that fires only in tabs other than the writer.
type WatermillBroadcaster struct {
	publisher  message.Publisher
	subscriber message.Subscriber
	instanceID string
	logger     *slog.Logger
}

func NewWatermillBroadcaster(pub message.Publisher, sub message.Subscriber, logger *slog.Logger) *WatermillBroadcaster {
	return &WatermillBroadcaster{
		publisher:  pub,
		subscriber: sub,
		instanceID: watermill.NewULID(),
		logger:     logger,
	}
}

func (b *WatermillBroadcaster) Publish(_ context.Context, event ChangeEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	msg := message.NewMessage("msg-"+watermill.NewULID(), payload)
	msg.Metadata.Set(keyMetadata, event.Key)
	msg.Metadata.Set(senderMetadata, b.instanceID)

	return b.publisher.Publish(Topic, msg)
}

func (b *WatermillBroadcaster) Subscribe(ctx context.Context, handler Handler) error {
	messages, err := b.subscriber.Subscribe(ctx, Topic)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			if msg.Metadata.Get(senderMetadata) == b.instanceID {
				msg.Ack()

				continue
			}

			var event ChangeEvent

			err := json.Unmarshal(msg.Payload, &event)
			if err != nil {
				// Malformed notifications count as no data. Ack so the
				// channel does not redeliver them forever.
				b.logger.Warn("ignoring malformed change event", "error", err)
				msg.Ack()

				continue
			}

			if err := handler(ctx, event); err != nil {
				b.logger.Warn("change event handler failed", "key", event.Key, "error", err)
			}

			msg.Ack()
		}
	}()

	return nil
}

func (b *WatermillBroadcaster) Close() error {
	err := b.publisher.Close()
	if err != nil {
		return err
	}

	return b.subscriber.Close()
}

package sync

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

const changeChannelPrefix = "partfinder:events:" // Pub/Sub channel per user: partfinder:events:{uid}

// ChangeEvent is published after every durable ledger write. Version is a
// monotonically increasing stamp per user; subscribers compare it against
// their last-seen version and skip reloads for events they already applied.
type ChangeEvent struct {
	Version   int64     `json:"version"`
	ChangedAt time.Time `json:"changed_at"`
}

// Notifier propagates ledger changes to every open browsing context bound to
// the same user. It is the only mechanism keeping multiple views consistent;
// there is no locking and no merge, last write wins.
type Notifier struct {
	client *redis.Client
}

func NewNotifier(client *redis.Client) *Notifier {
	return &Notifier{client: client}
}

// Channel returns the pub/sub channel name for a user.
func Channel(userID string) string {
	return changeChannelPrefix + userID
}

// Publish emits a change event for the user's ledger. Publish failures are
// logged, not returned: the write itself already succeeded and open views
// will catch up on their next full load.
func (n *Notifier) Publish(ctx context.Context, userID string, event ChangeEvent) {
	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("Failed to marshal change event for user %s: %v", userID, err)
		return
	}
	if err := n.client.Publish(ctx, Channel(userID), data).Err(); err != nil {
		log.Printf("Failed to publish change event for user %s: %v", userID, err)
	}
}

// Subscription delivers decoded change events for one user.
type Subscription struct {
	pubsub *redis.PubSub
	events chan ChangeEvent
}

// Events returns the channel change events arrive on. The channel closes
// when the subscription is closed or the context is cancelled.
func (s *Subscription) Events() <-chan ChangeEvent {
	return s.events
}

// Close tears down the underlying pub/sub connection.
func (s *Subscription) Close() error {
	return s.pubsub.Close()
}

// Subscribe starts listening for the user's ledger changes.
func (n *Notifier) Subscribe(ctx context.Context, userID string) (*Subscription, error) {
	pubsub := n.client.Subscribe(ctx, Channel(userID))

	// Confirm the subscription before handing it out so no event published
	// after Subscribe returns can be missed.
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, fmt.Errorf("failed to subscribe to ledger changes: %w", err)
	}

	sub := &Subscription{
		pubsub: pubsub,
		events: make(chan ChangeEvent, 8),
	}

	go func() {
		defer close(sub.events)
		for msg := range pubsub.Channel() {
			var event ChangeEvent
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				log.Printf("Failed to decode change event for user %s: %v", userID, err)
				continue
			}
			select {
			case sub.events <- event:
			case <-ctx.Done():
				return
			}
		}
	}()

	return sub, nil
}

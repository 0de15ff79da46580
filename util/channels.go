package util

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

var (
	CHANNEL_TABLE = "CHAN_TABLE"

	// Table events
	MESSAGE_TABLE_HALVE  = "MESG_TABLE_HALVE"
	MESSAGE_TABLE_ADD    = "MESG_TABLE_ADD"
	MESSAGE_TABLE_DELETE = "MESG_TABLE_DELETE"
	MESSAGE_TABLE_SORT   = "MESG_TABLE_SORT"
)

// Event formats a broker message as trackID#message#payload.
func Event(trackID string, message string, payload string) string {
	return fmt.Sprintf("%s#%s#%s", trackID, message, payload)
}

func Pub(r *redis.Client, ctx context.Context, channel string, trackID string, message string, payload string) {
	err := r.Publish(ctx, channel, Event(trackID, message, payload)).Err()
	if err != nil {
		logrus.WithField("channel", channel).WithField("messsage", message).WithError(err).Error("unable to publish message")
	}
}

// RedisPublisher publishes table events on a redis broker.
type RedisPublisher struct {
	Client *redis.Client
}

func (p *RedisPublisher) Publish(ctx context.Context, channel string, trackID string, message string, payload string) {
	Pub(p.Client, ctx, channel, trackID, message, payload)
}

// NopPublisher drops every event, used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, string, string, string, string) {}

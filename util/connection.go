package util

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

// Connection struct to pass into the service
type Connection struct {
	Broker *redis.Client
}

// Publisher returns the event publisher for this connection, nil when no
// broker is configured.
func (c *Connection) Publisher() *RedisPublisher {
	if c == nil || c.Broker == nil {
		return nil
	}
	return &RedisPublisher{Client: c.Broker}
}

// Close releases the broker connection if one was opened.
func (c *Connection) Close() {
	if c == nil || c.Broker == nil {
		return
	}
	if err := c.Broker.Close(); err != nil {
		logrus.WithError(err).Error("unable to close message broker connection")
	}
}

// Connect opens the broker connection. An empty url leaves the broker unset.
func Connect(ctx context.Context, url string, port int) *Connection {
	conn := &Connection{}
	if url == "" {
		return conn
	}

	client := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%d", url, port),
		DB:   0, // use default DB
	})
	err := client.Ping(ctx).Err()
	if err != nil {
		logrus.WithError(err).Error("invalid message broker connection, table events are disabled")
		_ = client.Close()
		return conn
	}

	logrus.WithField("addr", fmt.Sprintf("%s:%d", url, port)).Info("Connected to message broker")
	conn.Broker = client
	return conn
}

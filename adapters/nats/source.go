// Package nats bridges NATS subjects into process inboxes, so remote
// messages become selectively receivable like any local message.
package nats

import (
	"context"
	"fmt"
	"log/slog"

	natsgo "github.com/nats-io/nats.go"

	"github.com/jvantuyl/extra-enum/internal/codec"
)

// Msg is the default shape delivered into an inbox for each NATS message.
type Msg struct {
	Subject string
	Data    []byte
}

// Target is the delivery side of a process inbox. *actor.Proc satisfies it.
type Target interface {
	Send(ctx context.Context, msg any) error
}

// DecodeFunc turns a raw NATS message into the value pushed to the inbox.
type DecodeFunc func(m Msg) (any, error)

// DecodeJSON decodes payloads into T. Handy as FeedConfig.Decode when a
// subject carries one message type.
func DecodeJSON[T any]() DecodeFunc {
	var c codec.JSONCodec
	return func(m Msg) (any, error) {
		var v T
		if err := c.Unmarshal(m.Data, &v); err != nil {
			return nil, fmt.Errorf("decode %s: %w", m.Subject, err)
		}
		return v, nil
	}
}

type FeedConfig struct {
	// Connect is used to create the underlying NATS connection.
	// If nil, ConnectDefault() is used.
	Connect Connector
	// Subject to subscribe to. Required.
	Subject string
	// Decode maps raw messages to inbox values. If nil, the raw Msg is
	// delivered as-is.
	Decode DecodeFunc
	// Log for diagnostics (optional).
	Log *slog.Logger
}

// Feed is a live subscription delivering into one inbox.
type Feed struct {
	nc      *natsgo.Conn
	closeNc closeFunc
	sub     *natsgo.Subscription
	log     *slog.Logger
}

// NewFeed subscribes to cfg.Subject and pushes every received message
// into target. Messages that fail to decode or deliver are logged and
// dropped; NATS subjects offer at-most-once delivery anyway.
func NewFeed(ctx context.Context, cfg FeedConfig, target Target) (*Feed, error) {
	if cfg.Subject == "" {
		return nil, fmt.Errorf("nats: subject required")
	}
	doConnect := cfg.Connect
	if doConnect == nil {
		doConnect = ConnectDefault()
	}
	log := cfg.Log
	if log == nil {
		log = slog.Default()
	}
	log = log.With(slog.String("subject", cfg.Subject))

	nc, closeNc, err := doConnect()
	if err != nil {
		return nil, fmt.Errorf("nats: connect: %w", err)
	}

	f := &Feed{nc: nc, closeNc: closeNc, log: log}

	f.sub, err = nc.Subscribe(cfg.Subject, func(m *natsgo.Msg) {
		v := any(Msg{Subject: m.Subject, Data: m.Data})
		if cfg.Decode != nil {
			var err error
			if v, err = cfg.Decode(Msg{Subject: m.Subject, Data: m.Data}); err != nil {
				log.Warn("dropping message", slog.Any("error", err))
				return
			}
		}
		if err := target.Send(ctx, v); err != nil {
			log.Warn("delivery failed", slog.Any("error", err))
		}
	})
	if err != nil {
		closeNc()
		return nil, fmt.Errorf("nats: subscribe %s: %w", cfg.Subject, err)
	}

	return f, nil
}

// Close drains the subscription and releases the connection.
func (f *Feed) Close() error {
	err := f.sub.Drain()
	f.closeNc()
	return err
}

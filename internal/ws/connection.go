package ws

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"

	"storefront/internal/app"
	"storefront/internal/i18n"
	"storefront/internal/models"
	"storefront/internal/shell"
)

const outboxSize = 16

type wsConnection interface {
	Close() error
	WriteJSON(v interface{}) error
	ReadMessage() (messageType int, p []byte, err error)
}

type sessionHub interface {
	Open(lang i18n.Language, animator shell.Animator) *app.App
	Close(id string)
	Touch(session *app.App)
}

// Connection serves one websocket. Events are handled one at a time on the
// main loop, in the order they were read.
type Connection struct {
	ws         wsConnection
	hub        sessionHub
	session    *app.App
	fromClient chan models.ClientEvent
	outbox     chan models.ServerMessage
	errorCh    chan error
}

func NewConnection(
	hub sessionHub,
	ws wsConnection,
	lang i18n.Language,
) *Connection {
	c := &Connection{
		ws:         ws,
		hub:        hub,
		fromClient: make(chan models.ClientEvent),
		outbox:     make(chan models.ServerMessage, outboxSize),
		errorCh:    make(chan error, 2),
	}
	c.session = hub.Open(lang, c)
	return c
}

func (c *Connection) SessionID() string {
	return c.session.ID()
}

// Animate queues a transition frame. It never blocks; when the outbox is
// full the transition is dropped.
func (c *Connection) Animate(t shell.Transition) {
	msg := models.ServerMessage{
		Type:       models.ServerMessageTransition,
		SessionID:  c.session.ID(),
		Tab:        string(t.To),
		Transition: t.Model(),
	}
	select {
	case c.outbox <- msg:
	default:
		slog.Debug("transition dropped", "session_id", c.session.ID())
	}
}

func (c *Connection) Handle(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer func() {
		close(c.fromClient)
		close(c.errorCh)
		c.hub.Close(c.session.ID())
	}()

	var wg sync.WaitGroup
	wg.Go(func() {
		c.errorCh <- c.pumpMessages(ctx)
		cancel()
	})

	wg.Go(func() {
		c.errorCh <- c.mainLoop(ctx)
		cancel()
	})

	var err error
	select {
	case err = <-c.errorCh:
	case <-ctx.Done():
	}
	_ = c.ws.Close()
	wg.Wait()

	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	return nil
}

func (c *Connection) pumpMessages(ctx context.Context) error {
	for {
		_, data, err := c.ws.ReadMessage()
		if err != nil {
			return err
		}

		var ev models.ClientEvent
		if err := json.Unmarshal(data, &ev); err != nil {
			// A malformed frame is answered but does not end the session.
			slog.Warn("malformed client event", "session_id", c.session.ID(), "error", err)
			select {
			case c.outbox <- c.errorFrame(err):
			case <-ctx.Done():
				return ctx.Err()
			}
			continue
		}

		select {
		case c.fromClient <- ev:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (c *Connection) mainLoop(ctx context.Context) error {
	frame, err := c.session.Render()
	if err != nil {
		return err
	}
	if err := c.ws.WriteJSON(frame); err != nil {
		return err
	}

	for {
		select {
		case ev := <-c.fromClient:
			if err := c.processClientEvent(ev); err != nil {
				return err
			}
		case msg := <-c.outbox:
			if err := c.ws.WriteJSON(msg); err != nil {
				return err
			}
		case <-ctx.Done():
			return nil
		}
	}
}

func (c *Connection) processClientEvent(ev models.ClientEvent) error {
	c.hub.Touch(c.session)

	frame, err := c.session.Handle(ev)
	if err != nil {
		slog.Warn("client event rejected", "session_id", c.session.ID(), "event", ev.Type, "error", err)
		return c.ws.WriteJSON(c.errorFrame(err))
	}

	return c.ws.WriteJSON(frame)
}

func (c *Connection) errorFrame(err error) models.ServerMessage {
	return models.ServerMessage{
		Type:      models.ServerMessageError,
		SessionID: c.session.ID(),
		Error:     err.Error(),
	}
}

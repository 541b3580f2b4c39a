package ws

import (
	"context"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

const maxFrameSize = 64 * 1024

// Timeouts configure keepalive behaviour of a connection.
type Timeouts struct {
	Ping  time.Duration
	Read  time.Duration
	Write time.Duration
}

// Connection is one live calculator session.
type Connection struct {
	id        string
	lang      language.Tag
	ws        *websocket.Conn
	send      chan []byte
	done      chan struct{}
	closeOnce sync.Once
	processor MessageProcessor
	timeouts  Timeouts
	logger    *zap.Logger
	onClose   func(id string)
}

// NewConnection builds connection wrapper.
func NewConnection(id string, lang language.Tag, ws *websocket.Conn, processor MessageProcessor, timeouts Timeouts, logger *zap.Logger, onClose func(string)) *Connection {
	return &Connection{
		id:        id,
		lang:      lang,
		ws:        ws,
		send:      make(chan []byte, 16),
		done:      make(chan struct{}),
		processor: processor,
		timeouts:  timeouts,
		logger:    logger.With(zap.String("conn_id", id)),
		onClose:   onClose,
	}
}

// ID returns identifier.
func (c *Connection) ID() string {
	return c.id
}

// Start launches the write pump and blocks in the read pump.
func (c *Connection) Start(ctx context.Context) {
	go c.writePump(ctx)
	c.readPump(ctx)
}

func (c *Connection) readPump(ctx context.Context) {
	defer c.cleanup()
	c.ws.SetReadLimit(maxFrameSize)
	_ = c.ws.SetReadDeadline(time.Now().Add(c.timeouts.Read))
	c.ws.SetPongHandler(func(string) error {
		return c.ws.SetReadDeadline(time.Now().Add(c.timeouts.Read))
	})

	for {
		messageType, message, err := c.ws.ReadMessage()
		if err != nil {
			c.logger.Debug("connection read closed", zap.Error(err))
			return
		}
		if messageType != websocket.TextMessage {
			continue
		}
		_ = c.ws.SetReadDeadline(time.Now().Add(c.timeouts.Read))
		if !c.Send(ctx, c.processor.Process(ctx, c.lang, message)) {
			return
		}
	}
}

func (c *Connection) writePump(ctx context.Context) {
	ticker := time.NewTicker(c.timeouts.Ping)
	defer func() {
		ticker.Stop()
		c.cleanup()
	}()

	for {
		select {
		case <-ctx.Done():
			_ = c.write(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutdown"))
			return
		case <-c.done:
			return
		case msg := <-c.send:
			if err := c.write(websocket.TextMessage, msg); err != nil {
				c.logger.Debug("connection write failed", zap.Error(err))
				return
			}
		case <-ticker.C:
			if err := c.write(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// Send queues msg for the write pump, waiting for buffer space. It reports
// false once the connection or ctx is done.
func (c *Connection) Send(ctx context.Context, msg []byte) bool {
	select {
	case c.send <- msg:
		return true
	case <-c.done:
		return false
	case <-ctx.Done():
		return false
	}
}

func (c *Connection) write(messageType int, data []byte) error {
	_ = c.ws.SetWriteDeadline(time.Now().Add(c.timeouts.Write))
	return c.ws.WriteMessage(messageType, data)
}

func (c *Connection) cleanup() {
	c.closeOnce.Do(func() {
		close(c.done)
		_ = c.ws.Close()
		if c.onClose != nil {
			c.onClose(c.id)
		}
	})
}

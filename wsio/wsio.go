// Package wsio adapts a websocket connection into the contiguous byte stream
// form the framing loops consume. Binary messages are concatenated on read;
// every Write becomes one binary message.
package wsio

import (
	"errors"
	"io"
	"time"

	"github.com/gorilla/websocket"
)

const closeTimeout = time.Second

// Conn presents a websocket connection as an io.ReadWriteCloser. A normal
// close from the peer surfaces as io.EOF.
type Conn struct {
	ws  *websocket.Conn
	msg io.Reader
}

// New wraps ws. The caller must not use ws directly afterwards.
func New(ws *websocket.Conn) *Conn {
	return &Conn{ws: ws}
}

func (c *Conn) Read(p []byte) (int, error) {
	for {
		if c.msg == nil {
			mt, r, err := c.ws.NextReader()
			if err != nil {
				var closeErr *websocket.CloseError
				if errors.As(err, &closeErr) &&
					(closeErr.Code == websocket.CloseNormalClosure || closeErr.Code == websocket.CloseGoingAway) {
					return 0, io.EOF
				}
				return 0, err
			}
			if mt != websocket.BinaryMessage {
				continue
			}
			c.msg = r
		}

		n, err := c.msg.Read(p)
		if errors.Is(err, io.EOF) {
			c.msg = nil
			if n > 0 {
				return n, nil
			}
			continue
		}
		return n, err
	}
}

func (c *Conn) Write(p []byte) (int, error) {
	if err := c.ws.WriteMessage(websocket.BinaryMessage, p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Close sends a normal close frame and closes the underlying connection.
func (c *Conn) Close() error {
	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
	_ = c.ws.WriteControl(websocket.CloseMessage, msg, time.Now().Add(closeTimeout))
	return c.ws.Close()
}

package websocket

import (
	"fmt"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/iamasit07/connect4-hotseat/internal/domain"
	"github.com/iamasit07/connect4-hotseat/internal/render"
)

const writeWait = 10 * time.Second

// Client is the browser side of one session. It mirrors moves and the game
// outcome into the page by pushing JSON messages.
type Client struct {
	conn *websocket.Conn

	// gorilla connections allow one concurrent writer
	writeMu sync.Mutex
}

func NewClient(conn *websocket.Conn) *Client {
	return &Client{conn: conn}
}

func (c *Client) SendMessage(message any) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := c.conn.WriteJSON(message); err != nil {
		return fmt.Errorf("write %T: %w", message, err)
	}
	return nil
}

func (c *Client) Ping() error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait))
}

func (c *Client) PlacePiece(move domain.Move) error {
	return c.SendMessage(PiecePlacedMessage{
		Type:   TypePiecePlaced,
		Row:    move.Row,
		Column: move.Column,
		Player: int(move.Player),
	})
}

func (c *Client) EndGame(outcome render.Outcome) error {
	return c.SendMessage(GameOverMessage{
		Type:    TypeGameOver,
		Message: outcome.Message,
		Winner:  int(outcome.Winner),
		Line:    outcome.Line,
	})
}

func (c *Client) Close() error {
	return c.conn.Close()
}

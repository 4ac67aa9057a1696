package http

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/iamasit07/connect4-hotseat/internal/domain"
	"github.com/iamasit07/connect4-hotseat/internal/render"
	"github.com/iamasit07/connect4-hotseat/internal/service/game"
)

// BoardHandler serves the game page and read-only session state.
type BoardHandler struct {
	SessionManager *game.SessionManager
}

func NewBoardHandler(sm *game.SessionManager) *BoardHandler {
	return &BoardHandler{SessionManager: sm}
}

// NewGame starts a fresh session on every page load.
func (h *BoardHandler) NewGame(c *gin.Context) {
	session, err := h.SessionManager.CreateSession()
	if errors.Is(err, game.ErrTooManySessions) {
		c.String(http.StatusServiceUnavailable, "too many games in progress, try again later")
		return
	}
	if err != nil {
		log.Printf("[HTTP] Failed to create session: %v", err)
		c.String(http.StatusInternalServerError, "failed to start a game")
		return
	}
	h.renderPage(c, session)
}

// ResumeGame redraws an existing session, e.g. after a dropped connection.
func (h *BoardHandler) ResumeGame(c *gin.Context) {
	session, exists := h.SessionManager.GetSession(c.Param("id"))
	if !exists {
		c.Redirect(http.StatusFound, "/")
		return
	}
	h.renderPage(c, session)
}

func (h *BoardHandler) renderPage(c *gin.Context, session *game.Session) {
	state := session.Snapshot()

	view := render.NewBoardView(domain.Rows, domain.Columns)
	for _, move := range state.Moves {
		view.Place(move)
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"SessionID":     session.ID,
		"CurrentPlayer": state.CurrentPlayer,
		"Board":         view,
	})
}

// GetState serves GET /api/sessions/:id
func (h *BoardHandler) GetState(c *gin.Context) {
	session, exists := h.SessionManager.GetSession(c.Param("id"))
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}
	c.JSON(http.StatusOK, session.Snapshot())
}

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

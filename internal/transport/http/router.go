package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/iamasit07/connect4-hotseat/internal/config"
	"github.com/iamasit07/connect4-hotseat/internal/service/game"
	"github.com/iamasit07/connect4-hotseat/internal/transport/http/middleware"
	"github.com/iamasit07/connect4-hotseat/internal/transport/websocket"
	"github.com/iamasit07/connect4-hotseat/web"
)

// NewRouter wires every route the browser uses.
func NewRouter(cfg *config.Config, sm *game.SessionManager) (*gin.Engine, error) {
	tmpl, err := web.Templates()
	if err != nil {
		return nil, err
	}

	boardHandler := NewBoardHandler(sm)
	wsHandler := websocket.NewHandler(sm, cfg.AllowedOrigins, cfg.WSReadTimeout, cfg.WSPingInterval)

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(middleware.SecurityHeadersMiddleware())
	router.SetHTMLTemplate(tmpl)

	router.GET("/", boardHandler.NewGame)
	router.GET("/games/:id", boardHandler.ResumeGame)
	router.GET("/healthz", Health)
	router.StaticFS("/static", http.FS(web.Static()))

	api := router.Group("/api")
	api.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))
	{
		api.GET("/sessions/:id", boardHandler.GetState)
	}

	// origin is checked by the upgrader itself
	router.GET("/ws", wsHandler.HandleWebSocket)

	return router, nil
}

package api

import (
	"net/http"

	"github.com/coder/websocket"
	"github.com/gin-gonic/gin"
)

// wsHandler upgrades the connection and hands it to the ConnectionManager,
// which blocks until the WebSocket closes.
func (s *Server) wsHandler(c *gin.Context) {
	if s.connManager == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "WebSocket not available"})
		return
	}

	conn, err := websocket.Accept(c.Writer, c.Request, &websocket.AcceptOptions{
		OriginPatterns: originPatterns(s.cfg.Server.AllowedOrigins),
	})
	if err != nil {
		return
	}

	s.connManager.HandleConnection(c.Request.Context(), conn)
}

// originPatterns strips schemes from configured origins; the websocket
// library matches against host patterns.
func originPatterns(origins []string) []string {
	patterns := make([]string, 0, len(origins))
	for _, o := range origins {
		if o == "*" {
			return []string{"*"}
		}
		for _, prefix := range []string{"http://", "https://"} {
			if len(o) > len(prefix) && o[:len(prefix)] == prefix {
				o = o[len(prefix):]
				break
			}
		}
		patterns = append(patterns, o)
	}
	return patterns
}

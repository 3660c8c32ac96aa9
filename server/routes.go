package server

import (
	"net/http"
	"slices"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const headerRequestID = "X-Request-ID"

func (server *Server) setupRoutes() *gin.Engine {
	router := gin.New()
	router.Use(
		requestID(),
		server.logging(),
		gin.CustomRecovery(server.recovery),
		cors(server.config.AllowedOrigins),
	)

	api := router.Group("/api")
	api.GET("/health", server.handleHealth)
	api.POST("/identify", server.handleIdentify)
	api.GET("/lyrics", server.handleLyrics)
	api.POST("/translate_lyrics", server.handleTranslate)
	api.POST("/explain_meaning", server.handleExplainMeaning)
	api.POST("/similar_songs", server.handleSimilarSongs)
	api.GET("/debug/gemini_status", server.handleGeminiStatus)
	return router
}

// requestID tags every request with an identifier, honoring the one
// sent by the client, if any
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(headerRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(headerRequestID, id)
		c.Header(headerRequestID, id)
		c.Next()
	}
}

func (server *Server) logging() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		entry := server.log.WithFields(logrus.Fields{
			"request_id": c.GetString(headerRequestID),
			"status":     c.Writer.Status(),
			"latency":    time.Since(start).Round(time.Millisecond),
		})
		if c.Writer.Status() >= http.StatusInternalServerError {
			entry.Errorf("%s %s from %s", c.Request.Method, c.Request.URL.Path, c.ClientIP())
			return
		}
		entry.Infof("%s %s from %s", c.Request.Method, c.Request.URL.Path, c.ClientIP())
	}
}

func (server *Server) recovery(c *gin.Context, recovered any) {
	server.log.WithField("request_id", c.GetString(headerRequestID)).Errorf("panic: %v", recovered)
	c.AbortWithStatusJSON(http.StatusInternalServerError, errorResponse{
		Status:  statusError,
		Message: "Internal server error",
	})
}

// cors allows any origin if the list is empty or holds only "*",
// echoing the request origin back if it is listed otherwise
func cors(allowedOrigins []string) gin.HandlerFunc {
	allowAny := len(allowedOrigins) == 0 || (len(allowedOrigins) == 1 && allowedOrigins[0] == "*")
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		allowed := allowAny || slices.Contains(allowedOrigins, origin)
		if allowAny {
			c.Header("Access-Control-Allow-Origin", "*")
		} else if allowed {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Vary", "Origin")
		}

		if allowed {
			c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With, "+headerRequestID)
			c.Header("Access-Control-Max-Age", "3600")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/streambinder/lyrika/config"
	"github.com/streambinder/lyrika/entity"
	"github.com/streambinder/lyrika/gemini"
	"github.com/streambinder/lyrika/pipeline"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 5 * time.Second
)

// Service is what the routes delegate to
type Service interface {
	ResolveSongAndLyrics(ctx context.Context, sample entity.Sample) (*pipeline.Resolution, error)
	FetchLyrics(ctx context.Context, title, artist string) (*entity.Lyrics, error)
	Translate(ctx context.Context, lyrics, sourceLang, targetLang string) (*entity.Translation, error)
	ExplainMeaning(ctx context.Context, title, artist, lyrics string) (*entity.Meaning, error)
	RecommendSimilar(ctx context.Context, title, artist, lyrics string) (*entity.Recommendations, error)
}

type Server struct {
	service Service
	config  config.ServerConfig
	status  gemini.Status
	log     *logrus.Entry
	router  *gin.Engine
}

func New(service Service, cfg config.ServerConfig, status gemini.Status, log *logrus.Entry) *Server {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	gin.SetMode(gin.ReleaseMode)

	server := &Server{service: service, config: cfg, status: status, log: log}
	server.router = server.setupRoutes()
	return server
}

func (server *Server) Handler() http.Handler {
	return server.router
}

// Start serves requests until ctx is done, then shuts down gracefully
func (server *Server) Start(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", server.config.Port),
		Handler:           server.router,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	served := make(chan error, 1)
	go func() {
		server.log.Infof("listening on %s (origins: %v)", httpServer.Addr, server.config.AllowedOrigins)
		served <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-served:
		return err
	case <-ctx.Done():
	}

	server.log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-served; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

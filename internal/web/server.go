// Package web serves the browser front-end: the home page, the searchable
// job list, job details and the post-a-job form.
package web

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jimezsa/jobboard/internal/export"
	"github.com/jimezsa/jobboard/internal/models"
	"github.com/rs/zerolog"
)

//go:embed templates/*.html
var templateFS embed.FS

const shutdownTimeout = 10 * time.Second

// Backend reads and writes the job collection. *api.Client satisfies it.
type Backend interface {
	List(ctx context.Context) ([]models.JobPosting, error)
	Create(ctx context.Context, posting models.JobPosting) error
}

// Server renders pages over a Backend. Every request builds its own listing
// engine or form, so handlers share nothing but the backend.
type Server struct {
	backend Backend
	logger  zerolog.Logger
	engine  *gin.Engine
}

func NewServer(backend Backend, logger zerolog.Logger) (*Server, error) {
	if backend == nil {
		return nil, fmt.Errorf("web server requires a backend")
	}

	templates, err := parseTemplates()
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.SetHTMLTemplate(templates)

	s := &Server{
		backend: backend,
		logger:  logger.With().Str("component", "web").Logger(),
		engine:  engine,
	}
	engine.Use(gin.Recovery(), requestLogger(s.logger))
	s.SetupRoutes(engine)
	return s, nil
}

func parseTemplates() (*template.Template, error) {
	funcs := template.FuncMap{
		"snippet": func(value string) string { return export.Snippet(value, 160) },
		"plain":   export.PlainText,
	}
	return template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
}

// SetupRoutes registers every page on router.
func (s *Server) SetupRoutes(router *gin.Engine) {
	router.GET("/", s.home)
	router.GET("/jobs", s.jobs)
	router.GET("/jobs/:id", s.jobDetail)
	router.GET("/postjob", s.postForm)
	router.POST("/postjob", s.submitJob)
	router.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	router.NoRoute(func(c *gin.Context) {
		c.HTML(http.StatusNotFound, "notfound.html", page{Title: "Not found"})
	})
}

func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", addr).Msg("starting web server")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
		close(errChan)
	}()

	select {
	case err, ok := <-errChan:
		if ok {
			return fmt.Errorf("web server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	s.logger.Info().Str("addr", addr).Msg("shutting down web server")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("web server shutdown failed: %w", err)
	}
	return nil
}

// requestLogger writes one zerolog line per request.
func requestLogger(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		event := logger.Info()
		if status >= http.StatusInternalServerError {
			event = logger.Warn()
		}
		event.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("client_ip", c.ClientIP()).
			Msg("request")
	}
}

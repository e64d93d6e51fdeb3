package httpserver

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const serviceName = "randomuser-bot"

// Pinger reports whether the session backend is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// HTTPServer serves the liveness and readiness endpoints
type HTTPServer struct {
	gin    *gin.Engine
	addr   string
	store  Pinger
	logger *zap.Logger
}

// New wires the routes. store may be nil when sessions live in memory.
func New(addr string, store Pinger, logger *zap.Logger) *HTTPServer {
	gin.SetMode(gin.ReleaseMode)

	srv := &HTTPServer{
		gin:    gin.New(),
		addr:   addr,
		store:  store,
		logger: logger,
	}

	srv.gin.Use(gin.Recovery())
	srv.mapHandlers()

	return srv
}

func (srv *HTTPServer) mapHandlers() {
	srv.gin.GET("/live", srv.liveCheck)
	srv.gin.GET("/ready", srv.readyCheck)
}

func (srv *HTTPServer) Handler() http.Handler {
	return srv.gin
}

// Run serves until ctx is cancelled, then shuts down gracefully
func (srv *HTTPServer) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:              srv.addr,
		Handler:           srv.gin,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		srv.logger.Info("HTTP server started", zap.String("addr", srv.addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	srv.logger.Info("stopping HTTP server...")
	return server.Shutdown(shutdownCtx)
}

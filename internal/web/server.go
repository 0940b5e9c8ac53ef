package web

import (
	"context"
	stderrors "errors"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"todo-app/internal/config"
	"todo-app/internal/logging"
	"todo-app/internal/services"
	"todo-app/internal/views"
)

// Server serves the task pages and operational endpoints
type Server struct {
	engine          *gin.Engine
	httpServer      *http.Server
	shutdownTimeout time.Duration
}

// NewServer builds the gin engine and the HTTP server around it
func NewServer(cfg *config.Config, tasks services.TaskService) *Server {
	gin.SetMode(ginMode(cfg.Environment))

	engine := gin.New()
	engine.Use(RequestID(), RequestLogger(), Metrics(), Recovery())
	RegisterRoutes(engine, NewTaskHandler(tasks, cfg), NewHealthHandler(tasks))

	return &Server{
		engine: engine,
		httpServer: &http.Server{
			Addr:         cfg.Server.Addr,
			Handler:      engine,
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
		},
		shutdownTimeout: cfg.Server.ShutdownTimeout,
	}
}

// RegisterRoutes wires the task and health handlers onto r
func RegisterRoutes(r *gin.Engine, tasks *TaskHandler, health *HealthHandler) {
	for _, path := range []string{views.ListPath, "/home"} {
		r.GET(path, tasks.Index)
		r.POST(path, tasks.Create)
	}
	r.GET("/edit/:id", tasks.Edit)
	r.POST("/update/:id", tasks.Update)
	r.GET("/cancel/:id", tasks.Cancel)
	r.DELETE("/delete/:id", tasks.Delete)

	r.GET("/healthz", health.Liveness)
	r.GET("/readyz", health.Readiness)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// Handler returns the HTTP handler serving every route
func (s *Server) Handler() http.Handler {
	return s.engine
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	errCh := make(chan error, 1)
	go func() {
		logging.Info("server started", "addr", ln.Addr().String())
		if err := s.httpServer.Serve(ln); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logging.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return err
	}

	logging.Info("server exited")
	return nil
}

func ginMode(env config.Environment) string {
	switch env {
	case config.Development:
		return gin.DebugMode
	case config.Testing:
		return gin.TestMode
	default:
		return gin.ReleaseMode
	}
}

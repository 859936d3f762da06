// Package httpapi exposes the note-taking operations as a JSON-over-HTTP API.
package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/dmitrijs2005/notekeeper/internal/logging"
	"github.com/dmitrijs2005/notekeeper/internal/server/models"
	"github.com/dmitrijs2005/notekeeper/internal/server/services"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 3 * time.Second
)

// UserService is the authentication surface the API depends on.
type UserService interface {
	Register(ctx context.Context, username string, password []byte) (*models.User, error)
	Login(ctx context.Context, username string, password []byte) (*services.TokenPair, error)
	RefreshToken(ctx context.Context, refreshToken string) (*services.TokenPair, error)
}

// NoteService is the note surface the API depends on.
type NoteService interface {
	List(ctx context.Context, userID string) ([]*models.Note, error)
	Get(ctx context.Context, userID, id string) (*models.Note, error)
	Create(ctx context.Context, userID string, input services.CreateNoteInput) (*models.Note, error)
	Update(ctx context.Context, userID, id string, patch services.NotePatch) (*models.Note, error)
	Delete(ctx context.Context, userID, id string) error
	Search(ctx context.Context, userID, query string) ([]*models.Note, error)
}

// FolderService is the folder surface the API depends on.
type FolderService interface {
	List(ctx context.Context, userID string) ([]*models.Folder, error)
	Create(ctx context.Context, userID, name, color string) (*models.Folder, error)
	Delete(ctx context.Context, userID, folderID string) (int64, error)
}

// ExportService produces snapshot download URLs.
type ExportService interface {
	ExportNotes(ctx context.Context, userID string) (string, error)
}

// Server routes HTTP requests to the services.
type Server struct {
	address        string
	allowedOrigins []string
	logger         logging.Logger
	users          UserService
	notes          NoteService
	folders        FolderService
	export         ExportService
	jwtSecret      []byte
}

// NewServer constructs a Server. allowedOrigins is the CORS allow-list.
func NewServer(address string, allowedOrigins []string, l logging.Logger,
	us UserService, ns NoteService, fs FolderService, es ExportService, secretKey string) *Server {
	return &Server{
		address:        address,
		allowedOrigins: allowedOrigins,
		logger:         l.With("module", "http_server"),
		users:          us,
		notes:          ns,
		folders:        fs,
		export:         es,
		jwtSecret:      []byte(secretKey),
	}
}

// Handler builds the route table. Split out of Run for tests.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/auth/register", s.handleRegister)
	mux.HandleFunc("POST /api/auth/login", s.handleLogin)
	mux.HandleFunc("POST /api/auth/refresh", s.handleRefresh)

	mux.HandleFunc("GET /api/notes", s.authenticated(s.handleListNotes))
	mux.HandleFunc("POST /api/notes", s.authenticated(s.handleCreateNote))
	mux.HandleFunc("GET /api/notes/search", s.authenticated(s.handleSearchNotes))
	mux.HandleFunc("GET /api/notes/{id}", s.authenticated(s.handleGetNote))
	mux.HandleFunc("PUT /api/notes/{id}", s.authenticated(s.handleUpdateNote))
	mux.HandleFunc("DELETE /api/notes/{id}", s.authenticated(s.handleDeleteNote))

	mux.HandleFunc("GET /api/folders", s.authenticated(s.handleListFolders))
	mux.HandleFunc("POST /api/folders", s.authenticated(s.handleCreateFolder))
	mux.HandleFunc("DELETE /api/folders/{id}", s.authenticated(s.handleDeleteFolder))

	mux.HandleFunc("POST /api/export", s.authenticated(s.handleExport))

	mux.HandleFunc("GET /", s.handleHealth)

	return s.corsMiddleware(s.loggingMiddleware(mux))
}

// Run serves the API until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.address,
		Handler:           s.Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("listen and serve: %w", err)
	}

	return nil
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, messageResponse{Message: "Notes API is running!"})
}

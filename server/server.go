package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/ksym/mikanz/pkg/logger"
	"github.com/ksym/mikanz/pkg/media"
	"github.com/ksym/mikanz/pkg/pagination"
	"go.uber.org/zap"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

type GenericResponse struct {
	Error    *string `json:"error,omitempty"`
	Response any     `json:"response"`
}

// EpisodesResponse is one page of a series' episode list.
type EpisodesResponse struct {
	Episodes []media.Episode `json:"episodes"`
	Meta     pagination.Meta `json:"meta"`
}

// MediaManager is the orchestration surface the server exposes over HTTP.
type MediaManager interface {
	GetCalendar(ctx context.Context) ([]media.CalendarDay, error)
	SearchSeries(ctx context.Context, keyword string) ([]media.Series, error)
	GetSeries(ctx context.Context, id string) (*media.Series, error)
	ListEpisodes(ctx context.Context, id string, params pagination.Params) ([]media.Episode, pagination.Meta, error)
	ClearSeenCache()
}

// Server houses all dependencies for the api server to work such as loggers, the manager, configurations, etc.
type Server struct {
	baseLogger *zap.SugaredLogger
	manager    MediaManager
}

// New creates a new api server
func New(logger *zap.SugaredLogger, manager MediaManager) Server {
	return Server{
		baseLogger: logger,
		manager:    manager,
	}
}

func writeErrorResponse(w http.ResponseWriter, status int, err error) error {
	msg := err.Error()
	return writeResponse(w, status, GenericResponse{
		Error: &msg,
	})
}

func writeResponse(w http.ResponseWriter, status int, body any) error {
	b, err := json.Marshal(body)
	if err != nil {
		return err
	}

	w.Header().Set("content-type", "application/json")
	if status != http.StatusOK {
		w.WriteHeader(status)
	}

	w.Write(b)
	return nil
}

// Router wires every route; split out of Serve so tests can mount it on a
// test server.
func (s Server) Router() http.Handler {
	rtr := mux.NewRouter()
	rtr.Use(s.LogMiddleware())
	rtr.HandleFunc("/healthz", s.Healthz()).Methods(http.MethodGet)

	api := rtr.PathPrefix("/api").Subrouter()

	v1 := api.PathPrefix("/v1").Subrouter()

	v1.HandleFunc("/calendar", s.GetCalendar()).Methods(http.MethodGet)
	v1.HandleFunc("/search", s.SearchSeries()).Methods(http.MethodGet)
	v1.HandleFunc("/series/{id}", s.GetSeries()).Methods(http.MethodGet)
	v1.HandleFunc("/series/{id}/episodes", s.ListEpisodes()).Methods(http.MethodGet)
	v1.HandleFunc("/cache/clear", s.ClearCache()).Methods(http.MethodPost)

	return handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
	)(rtr)
}

// Serve starts the http server and is a blocking call
func (s Server) Serve(port int) error {
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: s.Router(),
	}

	go func() {
		s.baseLogger.Info("serving...", zap.Int("port", port))
		if err := srv.ListenAndServe(); err != nil {
			s.baseLogger.Error(err.Error())
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	<-c

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*3)
	defer cancel()

	return srv.Shutdown(ctx)
}

// Healthz is an endpoint that can be used for probes
func (s Server) Healthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response := GenericResponse{
			Response: "ok",
		}
		writeResponse(w, http.StatusOK, response)
	}
}

// GetCalendar returns the weekly airing calendar
func (s Server) GetCalendar() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())
		days, err := s.manager.GetCalendar(r.Context())
		if err != nil {
			log.Error("failed to fetch calendar", zap.Error(err))
			writeErrorResponse(w, http.StatusBadGateway, err)
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{Response: days})
	}
}

// SearchSeries searches the tracker for series matching a keyword
func (s Server) SearchSeries() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())
		query := r.URL.Query().Get("query")
		if query == "" {
			http.Error(w, "query is empty", http.StatusBadRequest)
			return
		}

		results, err := s.manager.SearchSeries(r.Context(), query)
		if err != nil {
			log.Error("failed to search series", zap.Error(err))
			writeErrorResponse(w, http.StatusBadGateway, err)
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{Response: results})
	}
}

// GetSeries returns the assembled view of one series
func (s Server) GetSeries() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())
		id := mux.Vars(r)["id"]

		series, err := s.manager.GetSeries(r.Context(), id)
		if err != nil {
			log.Error("failed to fetch series", zap.String("id", id), zap.Error(err))
			writeErrorResponse(w, http.StatusBadGateway, err)
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{Response: series})
	}
}

// ListEpisodes returns one page of a series' episode list with download links
func (s Server) ListEpisodes() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())
		id := mux.Vars(r)["id"]

		params, err := ParsePaginationParams(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		episodes, meta, err := s.manager.ListEpisodes(r.Context(), id, params)
		if err != nil {
			log.Error("failed to list episodes", zap.String("id", id), zap.Error(err))
			writeErrorResponse(w, http.StatusBadGateway, err)
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{Response: EpisodesResponse{
			Episodes: episodes,
			Meta:     meta,
		}})
	}
}

// ClearCache drops the feed dedup cache
func (s Server) ClearCache() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.manager.ClearSeenCache()
		writeResponse(w, http.StatusOK, GenericResponse{Response: "cleared"})
	}
}

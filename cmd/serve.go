package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jsphweid/chordex/constants"
	"github.com/jsphweid/chordex/live"
	"github.com/jsphweid/chordex/model"
	"github.com/jsphweid/chordex/progression"
	"github.com/jsphweid/chordex/scale"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

var (
	servePort     int
	serveMidiPort int
)

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", constants.GetPort(), "http port")
	serveCmd.Flags().IntVar(&serveMidiPort, "midi-port", -1, "midi input port streamed to /live, -1 for none")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the engine over HTTP",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()
		return serve(ctx, servePort, serveMidiPort)
	},
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("could not write response", "err", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, model.ErrorResponse{Error: err.Error()})
}

func HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	var body model.AnalyzeRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("could not read request body: %w", err))
		return
	}
	res, err := analyze(body)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func HandleScale(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	root := q.Get("root")
	if root == "" {
		writeError(w, http.StatusBadRequest, errors.New("root is required"))
		return
	}
	scaleType := q.Get("type")
	if scaleType == "" {
		scaleType = "major"
	}
	res, err := scaleFor(root, scaleType)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func HandleChords(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	key := q.Get("key")
	if key == "" {
		writeError(w, http.StatusBadRequest, errors.New("key is required"))
		return
	}
	res, err := chordsFor(key, q.Get("type"), q.Get("mode"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func HandleTranspose(w http.ResponseWriter, r *http.Request) {
	var body model.TransposeRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("could not read request body: %w", err))
		return
	}
	writeJSON(w, http.StatusOK, progression.Transpose(body.Progression, body.Semitones))
}

func HandleNashville(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	key := q.Get("key")
	if key == "" {
		writeError(w, http.StatusBadRequest, errors.New("key is required"))
		return
	}
	var symbols []string
	if c := q.Get("chords"); c != "" {
		symbols = splitNotes(strings.Split(c, ","))
	}
	res, err := nashvilleFor(key, q.Get("type"), symbols)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func HandleFretboard(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	p := fretboardParams{
		Instrument: q.Get("instrument"),
		Key:        q.Get("key"),
		ScaleType:  q.Get("type"),
		Chord:      q.Get("chord"),
	}
	if p.Instrument == "" {
		p.Instrument = "guitar"
	}
	if p.ScaleType == "" {
		p.ScaleType = "major"
	}
	if f := q.Get("frets"); f != "" {
		frets, err := strconv.Atoi(f)
		if err != nil {
			writeError(w, http.StatusBadRequest, fmt.Errorf("frets must be a number: %w", err))
			return
		}
		p.Frets = frets
	}
	res, err := fretboardFor(p)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func HandleCircle(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, scale.CircleOfFifths())
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(status int) {
	s.status = status
	s.ResponseWriter.WriteHeader(status)
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set("X-Request-Id", id)
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		slog.Info("request",
			"id", id,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"took", time.Since(start))
	})
}

// NewRouter wires every endpoint. /live is only routed when hub is not nil.
func NewRouter(hub *live.Hub) http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	if hub != nil {
		// not logged, the upgrade hijacks the conn
		router.HandleFunc("/live", hub.ServeWS).Methods("GET")
	}
	api := router.NewRoute().Subrouter()
	api.Use(logRequests)
	api.HandleFunc("/analyze", HandleAnalyze).Methods("POST")
	api.HandleFunc("/scale", HandleScale).Methods("GET")
	api.HandleFunc("/chords", HandleChords).Methods("GET")
	api.HandleFunc("/transpose", HandleTranspose).Methods("POST")
	api.HandleFunc("/nashville", HandleNashville).Methods("GET")
	api.HandleFunc("/fretboard", HandleFretboard).Methods("GET")
	api.HandleFunc("/circle", HandleCircle).Methods("GET")

	c := cors.New(cors.Options{
		AllowedOrigins: constants.GetCorsOrigins(),
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type"},
	})
	return c.Handler(router)
}

func serve(ctx context.Context, port, midiPort int) error {
	hub := live.NewHub(constants.GetCorsOrigins())
	if midiPort >= 0 {
		events := make(chan model.LiveEvent)
		go hub.Run(ctx, events)
		listenInBackground(ctx, midiPort, events)
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%v", port),
		Handler:           NewRouter(hub),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("shutdown failed", "err", err)
		}
	}()

	slog.Info("serving", "addr", srv.Addr, "midi_port", midiPort)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

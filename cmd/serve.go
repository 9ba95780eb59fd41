package cmd

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/spf13/cobra"

	"github.com/RyanBlaney/scale-sonar/algorithms/tonal"
	"github.com/RyanBlaney/scale-sonar/logging"
)

var serveAddr string

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "listen address")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the classifier over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(serveAddr)
	},
}

type classifyRequest struct {
	Notes     []any     `json:"notes"`
	Durations []float64 `json:"durations"`
}

type errorResponse struct {
	Error string `json:"detail"`
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorResponse{Error: message})
}

// normalizeNotes fixes up JSON decoding: numbers arrive as float64 and must
// be integral to count as pitches.
func normalizeNotes(raw []any) ([]any, error) {
	notes := make([]any, len(raw))
	for i, v := range raw {
		switch n := v.(type) {
		case float64:
			if n != math.Trunc(n) {
				return nil, fmt.Errorf("note %v is not an integer", n)
			}
			notes[i] = int(n)
		case string:
			notes[i] = n
		default:
			notes[i] = v
		}
	}
	return notes, nil
}

func handleClassify(w http.ResponseWriter, r *http.Request) {
	var req classifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "could not parse request body: "+err.Error())
		return
	}

	notes, err := normalizeNotes(req.Notes)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	match, err := tonal.NewScaleEstimator().Classify(notes, req.Durations)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(match.Result())
}

func serve(addr string) error {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/classify", handleClassify).Methods("POST")

	handler := cors.Default().Handler(router)
	logging.Info("listening", logging.Fields{"addr": addr})
	return http.ListenAndServe(addr, handler)
}

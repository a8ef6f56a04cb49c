package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jsphweid/voicegen/constants"
	"github.com/jsphweid/voicegen/midi"
	"github.com/jsphweid/voicegen/model"
	"github.com/jsphweid/voicegen/progression"
	"github.com/jsphweid/voicegen/symbol"
	"github.com/jsphweid/voicegen/voicing"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the voicing API",
	Long:  `Serves the voicing API`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: msg})
}

func voiceRequest(input model.VoicingRequestBody) (model.VoicingResponse, error) {
	var res model.VoicingResponse
	var chords []voicing.Chord

	for _, text := range input.Chords {
		sym, err := symbol.Parse(text)
		if err != nil {
			return res, err
		}
		req := voicing.Request{
			Root:     fmt.Sprintf("%s%d", sym.Root, progression.RootOctave),
			Anchor:   input.Anchor,
			MaxNotes: input.MaxNotes,
			OmitRoot: input.OmitRoot,
		}
		if sym.Bass != "" {
			req.Bass = fmt.Sprintf("%s%d", sym.Bass, progression.RootOctave)
		}
		chord, err := voicing.Generate(sym.Quality, req)
		if err != nil {
			return res, err
		}
		chords = append(chords, chord)
		res.Chords = append(res.Chords, model.VoicedChord{
			Symbol: sym.String(),
			Notes:  chord.Names(),
			Midi:   chord.Midis(),
		})
	}

	if input.Render {
		id := uuid.New().String()
		dir := constants.GetRenderDir()
		if err := os.MkdirAll(dir, 0777); err != nil {
			return res, fmt.Errorf("could not create render dir %s: %s", dir, err.Error())
		}
		if err := midi.WriteFile(filepath.Join(dir, id+".mid"), chords); err != nil {
			return res, err
		}
		res.RenderId = id
	}
	return res, nil
}

func HandleVoicings(w http.ResponseWriter, r *http.Request) {
	reqBody, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, 400, "could not read request body")
		return
	}

	var input model.VoicingRequestBody
	if err = json.Unmarshal(reqBody, &input); err != nil {
		writeError(w, 400, "could not unmarshal request body: "+err.Error())
		return
	}
	if len(input.Chords) == 0 {
		writeError(w, 400, "need at least one chord symbol")
		return
	}

	res, err := voiceRequest(input)
	if err != nil {
		writeError(w, 400, err.Error())
		return
	}
	json.NewEncoder(w).Encode(res)
}

func HandleQualities(w http.ResponseWriter, r *http.Request) {
	json.NewEncoder(w).Encode(model.QualitiesResponse{Suffixes: symbol.Suffixes()})
}

func serve() {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/voicings", HandleVoicings).Methods("POST")
	router.HandleFunc("/qualities", HandleQualities).Methods("GET")
	handler := cors.Default().Handler(router)
	log.Fatal(http.ListenAndServe(":8080", handler))
}

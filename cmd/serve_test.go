package cmd

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/jsphweid/chordex/live"
	"github.com/jsphweid/chordex/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func do(t *testing.T, method, target string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	w := httptest.NewRecorder()
	NewRouter(nil).ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	var res T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	return res
}

func TestHandleAnalyze(t *testing.T) {
	w := do(t, http.MethodPost, "/analyze", model.AnalyzeRequestBody{Notes: []string{"E", "G", "C"}})
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-Id"))

	res := decode[model.AnalyzeResponse](t, w)
	require.NotEmpty(t, res.Candidates)
	assert.Equal(t, "C/E", res.Candidates[0].Symbol)
	assert.True(t, res.Candidates[0].IsInversion)
	assert.LessOrEqual(t, len(res.Candidates), 7)
}

func TestHandleAnalyzeOptions(t *testing.T) {
	w := do(t, http.MethodPost, "/analyze", model.AnalyzeRequestBody{
		Notes: []string{"C", "E", "G", "A"},
		Root:  "A",
		Limit: 1,
	})
	require.Equal(t, http.StatusOK, w.Code)
	res := decode[model.AnalyzeResponse](t, w)
	require.Len(t, res.Candidates, 1)
	assert.Equal(t, "Am7/C", res.Candidates[0].Symbol)
}

func TestHandleAnalyzeErrors(t *testing.T) {
	w := do(t, http.MethodPost, "/analyze", model.AnalyzeRequestBody{Notes: []string{"C", "Z"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	res := decode[model.ErrorResponse](t, w)
	assert.Contains(t, res.Error, "invalid note name")

	req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	HandleAnalyze(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	w = do(t, http.MethodGet, "/analyze", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestHandleAnalyzeTooFewNotes(t *testing.T) {
	w := do(t, http.MethodPost, "/analyze", model.AnalyzeRequestBody{Notes: []string{"C"}})
	require.Equal(t, http.StatusOK, w.Code)
	res := decode[model.AnalyzeResponse](t, w)
	assert.NotNil(t, res.Candidates)
	assert.Empty(t, res.Candidates)
}

func TestHandleScale(t *testing.T) {
	w := do(t, http.MethodGet, "/scale?root=C", nil)
	require.Equal(t, http.StatusOK, w.Code)
	res := decode[model.ScaleResponse](t, w)
	assert.Equal(t, []string{"C", "D", "E", "F", "G", "A", "B"}, res.Notes)
	assert.Equal(t, "major", res.Type)

	w = do(t, http.MethodGet, "/scale?root=Dm&type=minor", nil)
	require.Equal(t, http.StatusOK, w.Code)
	res = decode[model.ScaleResponse](t, w)
	assert.Equal(t, []string{"D", "E", "F", "G", "A", "B♭", "C"}, res.Notes)

	assert.Equal(t, http.StatusBadRequest, do(t, http.MethodGet, "/scale", nil).Code)
	assert.Equal(t, http.StatusBadRequest, do(t, http.MethodGet, "/scale?root=C&type=bebop", nil).Code)
	assert.Equal(t, http.StatusBadRequest, do(t, http.MethodGet, "/scale?root=H", nil).Code)
}

func TestHandleChords(t *testing.T) {
	w := do(t, http.MethodGet, "/chords?key=Am", nil)
	require.Equal(t, http.StatusOK, w.Code)
	res := decode[model.ChordsResponse](t, w)
	assert.Equal(t, "minor", res.Type)
	assert.Equal(t, "triads", res.Mode)
	require.Len(t, res.Chords, 7)
	assert.Equal(t, "Am", res.Chords[0].Symbol)
	assert.Equal(t, "i", res.Chords[0].RomanNumeral)

	w = do(t, http.MethodGet, "/chords?key=C&mode=secondary", nil)
	require.Equal(t, http.StatusOK, w.Code)
	res = decode[model.ChordsResponse](t, w)
	assert.Equal(t, "V7/ii", res.Chords[0].RomanNumeral)
	assert.Equal(t, "D", res.Chords[0].Target)

	assert.Equal(t, http.StatusBadRequest, do(t, http.MethodGet, "/chords?key=C&mode=ninths", nil).Code)
	assert.Equal(t, http.StatusBadRequest, do(t, http.MethodGet, "/chords", nil).Code)
	assert.Equal(t, http.StatusBadRequest, do(t, http.MethodGet, "/chords?key=C&type=bogus", nil).Code)
}

func TestHandleTranspose(t *testing.T) {
	body := model.TransposeRequestBody{
		Semitones: -2,
		Progression: model.Progression{
			Key: "D",
			Chords: []model.ProgressionChord{
				{Symbol: "D", RomanNumeral: "I"},
				{Symbol: "Bm7", RomanNumeral: "vi7"},
			},
		},
	}
	w := do(t, http.MethodPost, "/transpose", body)
	require.Equal(t, http.StatusOK, w.Code)
	res := decode[model.Progression](t, w)
	assert.Equal(t, "C", res.Key)
	assert.Equal(t, "C", res.Chords[0].Symbol)
	assert.Equal(t, "Am7", res.Chords[1].Symbol)
	assert.Equal(t, "vi7", res.Chords[1].RomanNumeral)
}

func TestHandleNashville(t *testing.T) {
	w := do(t, http.MethodGet, "/nashville?key=G&chords=G,C,D,Em", nil)
	require.Equal(t, http.StatusOK, w.Code)
	res := decode[model.NashvilleResponse](t, w)
	assert.Equal(t, []string{"1", "2", "3", "4", "5", "6", "7"}, res.Numbers)
	assert.Equal(t, []string{"G", "C", "D", "Em"}, res.Symbols)
	assert.Equal(t, []string{"1", "4", "5", "6m"}, res.Chords)

	// order and repeats survive
	w = do(t, http.MethodGet, "/nashville?key=G&chords=G,C,D,G", nil)
	require.Equal(t, http.StatusOK, w.Code)
	res = decode[model.NashvilleResponse](t, w)
	assert.Equal(t, []string{"1", "4", "5", "1"}, res.Chords)

	assert.Equal(t, http.StatusBadRequest, do(t, http.MethodGet, "/nashville?key=X", nil).Code)
	assert.Equal(t, http.StatusBadRequest, do(t, http.MethodGet, "/nashville?key=G&type=bogus", nil).Code)
}

func TestHandleFretboard(t *testing.T) {
	w := do(t, http.MethodGet, "/fretboard?instrument=ukulele&key=C&chord=Am&frets=3", nil)
	require.Equal(t, http.StatusOK, w.Code)
	res := decode[model.FretboardResponse](t, w)
	assert.Equal(t, "Ukulele", res.Instrument)
	assert.Equal(t, []string{"G", "C", "E", "A"}, res.Tuning)
	require.Len(t, res.Cells, 4)
	require.Len(t, res.Cells[3], 4)
	// open A string
	assert.True(t, res.Cells[3][0].IsChordRoot)
	assert.True(t, res.Cells[1][0].IsKeyRoot)

	assert.Equal(t, http.StatusBadRequest, do(t, http.MethodGet, "/fretboard?instrument=kazoo", nil).Code)
	assert.Equal(t, http.StatusBadRequest, do(t, http.MethodGet, "/fretboard?frets=many", nil).Code)
	assert.Equal(t, http.StatusBadRequest, do(t, http.MethodGet, "/fretboard?chord=Cwhat", nil).Code)
	assert.Equal(t, http.StatusBadRequest, do(t, http.MethodGet, "/fretboard?key=C&type=bogus", nil).Code)
}

func TestHandleFretboardBoundsFrets(t *testing.T) {
	w := do(t, http.MethodGet, "/fretboard?frets=100000000", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decode[model.ErrorResponse](t, w).Error, "too many frets")

	// ukulele has 15
	assert.Equal(t, http.StatusBadRequest, do(t, http.MethodGet, "/fretboard?instrument=ukulele&frets=16", nil).Code)

	w = do(t, http.MethodGet, "/fretboard?instrument=ukulele&frets=15", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[model.FretboardResponse](t, w).Cells[0], 16)
}

func TestHandleCircle(t *testing.T) {
	w := do(t, http.MethodGet, "/circle", nil)
	require.Equal(t, http.StatusOK, w.Code)
	res := decode[[]model.KeyInfo](t, w)
	require.Len(t, res, 12)
	assert.Equal(t, model.KeyInfo{Major: "C", Minor: "Am", Accidentals: 0}, res[0])
	assert.Equal(t, 1, res[1].Accidentals)
	assert.Equal(t, -1, res[11].Accidentals)
}

func TestLiveRoute(t *testing.T) {
	hub := live.NewHub([]string{"*"})
	srv := httptest.NewServer(NewRouter(hub))
	defer srv.Close()

	ws, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http")+"/live", nil)
	require.NoError(t, err)
	defer ws.Close()
	require.Eventually(t, func() bool { return hub.Count() == 1 }, time.Second, 10*time.Millisecond)

	hub.Broadcast(model.LiveEvent{Keys: []int{57, 60, 64}, Notes: []string{"A", "C", "E"}})

	require.NoError(t, ws.SetReadDeadline(time.Now().Add(time.Second)))
	var evt model.LiveEvent
	require.NoError(t, ws.ReadJSON(&evt))
	assert.Equal(t, []string{"A", "C", "E"}, evt.Notes)
}

func TestNoLiveRouteWithoutHub(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, do(t, http.MethodGet, "/live", nil).Code)
}

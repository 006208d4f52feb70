package web

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/poi5en/termfolio/internal/config"
	"github.com/poi5en/termfolio/internal/storage"
	"github.com/poi5en/termfolio/internal/terminal"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestServer(t *testing.T, scores Scoreboard) *Server {
	t.Helper()
	return NewServer(config.DefaultConfig(), scores, log.New(io.Discard))
}

func do(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

// wire mirrors the JSON the API emits; kinds arrive as their text names.
type wireLine struct {
	Kind string `json:"kind"`
	Text string `json:"text"`
	Help []struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	} `json:"help"`
}

type wireEffect struct {
	Kind  string `json:"kind"`
	Value string `json:"value"`
}

type wireSubmit struct {
	Lines   []wireLine   `json:"lines"`
	Effects []wireEffect `json:"effects"`
	Log     []wireLine   `json:"log"`
	Color   string       `json:"color"`
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
	return v
}

func createSession(t *testing.T, h http.Handler) string {
	t.Helper()
	w := do(t, h, http.MethodPost, "/api/sessions", nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("create session: status %d", w.Code)
	}
	resp := decode[struct {
		ID  string     `json:"id"`
		Log []wireLine `json:"log"`
	}](t, w)
	if resp.ID == "" {
		t.Fatal("expected a session id")
	}
	return resp.ID
}

func submit(t *testing.T, h http.Handler, id, line string) wireSubmit {
	t.Helper()
	w := do(t, h, http.MethodPost, "/api/sessions/"+id+"/submit", gin.H{"line": line})
	if w.Code != http.StatusOK {
		t.Fatalf("submit %q: status %d body %s", line, w.Code, w.Body.String())
	}
	return decode[wireSubmit](t, w)
}

func TestCommandsListsTable(t *testing.T) {
	s := newTestServer(t, nil)
	w := do(t, s.Handler(), http.MethodGet, "/api/commands", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}

	resp := decode[struct {
		Commands []terminal.HelpEntry `json:"commands"`
	}](t, w)
	if len(resp.Commands) == 0 || resp.Commands[0].Name != "help" {
		t.Fatalf("unexpected commands: %+v", resp.Commands)
	}
}

func TestCreateSessionReturnsWelcome(t *testing.T) {
	s := newTestServer(t, nil)
	w := do(t, s.Handler(), http.MethodPost, "/api/sessions", nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("status %d", w.Code)
	}

	resp := decode[struct {
		ID     string     `json:"id"`
		Prompt string     `json:"prompt"`
		Log    []wireLine `json:"log"`
	}](t, w)
	if len(resp.Log) != 2 || resp.Log[0].Kind != "info" {
		t.Errorf("expected two welcome info lines, got %+v", resp.Log)
	}
	if resp.Prompt == "" {
		t.Error("expected a prompt")
	}
	if s.Sessions().Len() != 1 {
		t.Errorf("expected 1 stored session, got %d", s.Sessions().Len())
	}
}

func TestSubmitReturnsNewLines(t *testing.T) {
	s := newTestServer(t, nil)
	h := s.Handler()
	id := createSession(t, h)

	resp := submit(t, h, id, "echo hello world")
	if len(resp.Lines) != 2 {
		t.Fatalf("expected command + response, got %+v", resp.Lines)
	}
	if resp.Lines[0].Kind != "command" || resp.Lines[0].Text != "echo hello world" {
		t.Errorf("unexpected command line %+v", resp.Lines[0])
	}
	if resp.Lines[1].Kind != "response" || resp.Lines[1].Text != "hello world" {
		t.Errorf("unexpected response line %+v", resp.Lines[1])
	}
	if len(resp.Log) != 4 {
		t.Errorf("expected welcome + 2 lines in log, got %d", len(resp.Log))
	}
	if len(resp.Effects) != 0 {
		t.Errorf("expected no effects, got %+v", resp.Effects)
	}
}

func TestSubmitUnknownCommand(t *testing.T) {
	s := newTestServer(t, nil)
	h := s.Handler()
	id := createSession(t, h)

	resp := submit(t, h, id, "frobnicate")
	last := resp.Lines[len(resp.Lines)-1]
	if last.Kind != "error" || last.Text != "Command not found: frobnicate. Type 'help' for list." {
		t.Errorf("unexpected line %+v", last)
	}
}

func TestSubmitEffects(t *testing.T) {
	s := newTestServer(t, nil)
	h := s.Handler()
	id := createSession(t, h)

	resp := submit(t, h, id, "github")
	if len(resp.Effects) != 1 || resp.Effects[0].Kind != "open_external" || resp.Effects[0].Value != "https://github.com/Poi5eN" {
		t.Errorf("unexpected effects %+v", resp.Effects)
	}

	resp = submit(t, h, id, "snake")
	if len(resp.Effects) != 1 || resp.Effects[0].Kind != "enter_game" || resp.Effects[0].Value != terminal.SnakeGameID {
		t.Errorf("unexpected effects %+v", resp.Effects)
	}

	resp = submit(t, h, id, "color red")
	if resp.Color != "red" {
		t.Errorf("expected color red, got %q", resp.Color)
	}
	if len(resp.Effects) != 0 {
		t.Errorf("color should not reach the client as an effect, got %+v", resp.Effects)
	}
}

func TestSubmitFullscreenExit(t *testing.T) {
	s := newTestServer(t, nil)
	h := s.Handler()
	id := createSession(t, h)

	w := do(t, h, http.MethodPost, "/api/sessions/"+id+"/submit", gin.H{"line": "exit", "fullscreen": true})
	resp := decode[wireSubmit](t, w)
	if len(resp.Effects) != 1 || resp.Effects[0].Kind != "exit_fullscreen" {
		t.Fatalf("unexpected effects %+v", resp.Effects)
	}

	resp = submit(t, h, id, "exit")
	if got := resp.Lines[len(resp.Lines)-1].Text; got != "Already in embedded mode." {
		t.Errorf("unexpected reply %q", got)
	}
}

func TestSubmitClearEmptiesLog(t *testing.T) {
	s := newTestServer(t, nil)
	h := s.Handler()
	id := createSession(t, h)

	submit(t, h, id, "about")
	resp := submit(t, h, id, "clear")
	if resp.Log == nil || len(resp.Log) != 0 {
		t.Errorf("expected empty log, got %+v", resp.Log)
	}
	if resp.Lines == nil || len(resp.Lines) != 0 {
		t.Errorf("expected no new lines, got %+v", resp.Lines)
	}
}

func TestSubmitBadBody(t *testing.T) {
	s := newTestServer(t, nil)
	h := s.Handler()
	id := createSession(t, h)

	req := httptest.NewRequest(http.MethodPost, "/api/sessions/"+id+"/submit", bytes.NewBufferString("{"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestComplete(t *testing.T) {
	s := newTestServer(t, nil)
	h := s.Handler()
	id := createSession(t, h)

	tests := []struct {
		partial string
		want    string
		ok      bool
	}{
		{"wh", "whoami", true},
		{"sn", "snake", true},
		{"s", "", false},
		{"zzz", "", false},
	}

	for _, tt := range tests {
		w := do(t, h, http.MethodGet, "/api/sessions/"+id+"/complete?partial="+tt.partial, nil)
		got := decode[completeResponse](t, w)
		if got.Completion != tt.want || got.OK != tt.ok {
			t.Errorf("complete(%q) = %+v, want %q/%v", tt.partial, got, tt.want, tt.ok)
		}
	}
}

func TestHistoryRecall(t *testing.T) {
	s := newTestServer(t, nil)
	h := s.Handler()
	id := createSession(t, h)

	submit(t, h, id, "about")
	submit(t, h, id, "skills")

	prev := func() recallResponse {
		return decode[recallResponse](t, do(t, h, http.MethodPost, "/api/sessions/"+id+"/history/prev", nil))
	}
	next := func() recallResponse {
		return decode[recallResponse](t, do(t, h, http.MethodPost, "/api/sessions/"+id+"/history/next", nil))
	}

	if got := prev(); got.Input != "skills" || got.Index != 1 {
		t.Errorf("first prev = %+v", got)
	}
	if got := prev(); got.Input != "about" || got.Index != 0 {
		t.Errorf("second prev = %+v", got)
	}
	if got := prev(); got.Input != "about" || got.Index != 0 {
		t.Errorf("prev at floor = %+v", got)
	}
	if got := next(); got.Input != "skills" || got.Index != 1 {
		t.Errorf("next = %+v", got)
	}
	if got := next(); got.Input != "skills" || got.Index != 1 {
		t.Errorf("next at ceiling = %+v", got)
	}
}

func TestUnknownSession(t *testing.T) {
	s := newTestServer(t, nil)
	h := s.Handler()

	for _, tc := range []struct{ method, path string }{
		{http.MethodPost, "/api/sessions/nope/submit"},
		{http.MethodGet, "/api/sessions/nope/complete"},
		{http.MethodPost, "/api/sessions/nope/history/prev"},
		{http.MethodDelete, "/api/sessions/nope"},
	} {
		w := do(t, h, tc.method, tc.path, gin.H{"line": "help"})
		if w.Code != http.StatusNotFound {
			t.Errorf("%s %s: expected 404, got %d", tc.method, tc.path, w.Code)
		}
	}
}

func TestDeleteSession(t *testing.T) {
	s := newTestServer(t, nil)
	h := s.Handler()
	id := createSession(t, h)

	if w := do(t, h, http.MethodDelete, "/api/sessions/"+id, nil); w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
	if w := do(t, h, http.MethodPost, "/api/sessions/"+id+"/submit", gin.H{"line": "help"}); w.Code != http.StatusNotFound {
		t.Errorf("deleted session should be gone, got %d", w.Code)
	}
}

func TestScores(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer store.Close()

	for _, sc := range []int{30, 120, 70} {
		if _, err := store.SaveScore(terminal.SnakeGameID, "ada", sc); err != nil {
			t.Fatalf("save: %v", err)
		}
	}

	s := newTestServer(t, store)
	w := do(t, s.Handler(), http.MethodGet, "/api/scores?limit=2", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}
	resp := decode[struct {
		Scores []scoreDTO `json:"scores"`
	}](t, w)
	if len(resp.Scores) != 2 || resp.Scores[0].Score != 120 || resp.Scores[1].Score != 70 {
		t.Errorf("unexpected scores %+v", resp.Scores)
	}

	if w := do(t, s.Handler(), http.MethodGet, "/api/scores?limit=x", nil); w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for bad limit, got %d", w.Code)
	}

	id := createSession(t, s.Handler())
	out := submit(t, s.Handler(), id, "scores")
	if out.Lines[1].Text != "1.   120  ada" {
		t.Errorf("unexpected scores line %q", out.Lines[1].Text)
	}
}

func TestScoresUnavailable(t *testing.T) {
	s := newTestServer(t, nil)
	w := do(t, s.Handler(), http.MethodGet, "/api/scores", nil)
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("expected 503, got %d", w.Code)
	}
}

func TestSessionStoreExpiry(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	store := NewSessionStore(time.Minute, func() *terminal.Interpreter {
		return terminal.New(terminal.DefaultTable(config.DefaultConfig().Profile, nil))
	})
	store.now = func() time.Time { return now }

	idle, _ := store.Create()
	busy, _ := store.Create()

	now = now.Add(45 * time.Second)
	if _, ok := store.Get(busy); !ok {
		t.Fatal("busy session should exist")
	}

	now = now.Add(30 * time.Second)
	if n := store.Sweep(); n != 1 {
		t.Fatalf("expected 1 expired session, got %d", n)
	}
	if _, ok := store.Get(idle); ok {
		t.Error("idle session should have expired")
	}
	if _, ok := store.Get(busy); !ok {
		t.Error("busy session should still exist")
	}
}

func TestSessionStoreNoTTL(t *testing.T) {
	now := time.Now()
	store := NewSessionStore(0, func() *terminal.Interpreter {
		return terminal.New(terminal.DefaultTable(config.DefaultConfig().Profile, nil))
	})
	store.now = func() time.Time { return now }

	id, _ := store.Create()
	now = now.Add(24 * time.Hour)
	if n := store.Sweep(); n != 0 {
		t.Errorf("expected nothing swept, got %d", n)
	}
	if _, ok := store.Get(id); !ok {
		t.Error("session should survive without a TTL")
	}
}

package web_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"

	"github.com/questgate/steamqual/internal/factory"
	"github.com/questgate/steamqual/internal/web"
)

// steamStub is a fake Steam Web API upstream for web interface tests
type steamStub struct {
	mu sync.Mutex

	// games served from the owned-games endpoint; empty means private
	games []stubGame
	// stats maps appid to unlocked achievement count; missing means the
	// stats endpoint returns 400 for that game
	stats map[string]int
	// down makes every endpoint return 500
	down bool
}

type stubGame struct {
	AppID           int    `json:"appid"`
	Name            string `json:"name"`
	PlaytimeForever int    `json:"playtime_forever"`
}

func newSteamStub() *steamStub {
	return &steamStub{
		stats: make(map[string]int),
	}
}

func (s *steamStub) setLibrary(games []stubGame, stats map[string]int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.games = games
	s.stats = stats
}

func (s *steamStub) setDown(down bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.down = down
}

func (s *steamStub) handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/IPlayerService/GetOwnedGames/v0001/", func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.down {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		response := map[string]any{"response": map[string]any{}}
		if len(s.games) > 0 {
			response["response"] = map[string]any{
				"game_count": len(s.games),
				"games":      s.games,
			}
		}
		_ = json.NewEncoder(w).Encode(response)
	})

	mux.HandleFunc("/ISteamUserStats/GetUserStatsForGame/v0002/", func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.down {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		count, ok := s.stats[r.URL.Query().Get("appid")]
		if !ok {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		achievements := make([]map[string]any, 0, count)
		for i := 0; i < count; i++ {
			achievements = append(achievements, map[string]any{"name": "ach", "achieved": 1})
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"playerstats": map[string]any{"achievements": achievements},
		})
	})

	return mux
}

// webTestServer provides a test server for web interface testing
type webTestServer struct {
	t       *testing.T
	handler http.Handler
	app     *factory.App
	steam   *steamStub
	cookies *cookieJar
}

// newWebTestServer creates a new test server with all dependencies wired
// against a stubbed Steam upstream
func newWebTestServer(t *testing.T) *webTestServer {
	t.Helper()

	stub := newSteamStub()
	upstream := httptest.NewServer(stub.handler())
	t.Cleanup(upstream.Close)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	app, err := factory.New(factory.Config{
		SteamAPIKey:  "test-key",
		SteamBaseURL: upstream.URL,
		Logger:       logger,
	})
	require.NoError(t, err)

	router := web.NewRouter(web.RouterConfig{
		Logger:         logger,
		AuthService:    app.AuthService,
		CheckerService: app.CheckerService,
		StaticDir:      "", // No static files in tests
	})

	return &webTestServer{
		t:       t,
		handler: router,
		app:     app,
		steam:   stub,
		cookies: newCookieJar(),
	}
}

// request makes an HTTP request and returns the response
func (ts *webTestServer) request(method, path string, form url.Values) *httptest.ResponseRecorder {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}

	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	// Add cookies from jar
	ts.cookies.addTo(req)

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)

	// Extract Set-Cookie headers into jar
	ts.cookies.extract(rr)

	return rr
}

// get makes a GET request
func (ts *webTestServer) get(path string) *httptest.ResponseRecorder {
	return ts.request(http.MethodGet, path, nil)
}

// post makes a POST request with form data
func (ts *webTestServer) post(path string, form url.Values) *httptest.ResponseRecorder {
	return ts.request(http.MethodPost, path, form)
}

// parseHTML parses the response body as HTML
func parseHTML(r io.Reader) *goquery.Document {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		panic(err)
	}
	return doc
}

// cookieJar maintains cookies across requests (like a browser would)
type cookieJar struct {
	cookies map[string]*http.Cookie
}

func newCookieJar() *cookieJar {
	return &cookieJar{
		cookies: make(map[string]*http.Cookie),
	}
}

// addTo adds all cookies to the request
func (j *cookieJar) addTo(req *http.Request) {
	for _, cookie := range j.cookies {
		req.AddCookie(cookie)
	}
}

// extract extracts Set-Cookie headers from response
func (j *cookieJar) extract(rr *httptest.ResponseRecorder) {
	for _, cookie := range rr.Result().Cookies() {
		if cookie.MaxAge < 0 {
			// Cookie being deleted
			delete(j.cookies, cookie.Name)
		} else {
			j.cookies[cookie.Name] = cookie
		}
	}
}

// hasSession returns true if the session cookie is set
func (j *cookieJar) hasSession() bool {
	_, ok := j.cookies["session"]
	return ok
}

// Helper functions for common test operations

// qualifyingLibrary configures the stub with a library that passes all four
// criteria
func (ts *webTestServer) qualifyingLibrary() {
	ts.steam.setLibrary(
		[]stubGame{
			{AppID: 10, Name: "Alpha", PlaytimeForever: 3000},
			{AppID: 20, Name: "Beta", PlaytimeForever: 2000},
			{AppID: 30, Name: "Gamma", PlaytimeForever: 1100},
		},
		map[string]int{"10": 8, "20": 4},
	)
}

// signInManually signs in with a raw SteamID and asserts the session cookie
// gets set
func (ts *webTestServer) signInManually(steamID string) {
	ts.t.Helper()
	form := url.Values{"steam_id": {steamID}}
	rr := ts.post("/manual-auth", form)
	require.Equal(ts.t, http.StatusSeeOther, rr.Code, "Expected redirect after manual sign-in")
	require.True(ts.t, ts.cookies.hasSession(), "Expected session cookie to be set")
}

// followRedirect follows a redirect and returns the response
func (ts *webTestServer) followRedirect(rr *httptest.ResponseRecorder) *httptest.ResponseRecorder {
	ts.t.Helper()
	location := rr.Header().Get("Location")
	require.NotEmpty(ts.t, location, "Expected Location header for redirect")
	return ts.get(location)
}

// Assertion helpers

// assertContainsElement asserts that the document contains an element matching the selector
func assertContainsElement(t *testing.T, doc *goquery.Document, selector string) {
	t.Helper()
	if doc.Find(selector).Length() == 0 {
		t.Errorf("Expected to find element matching %q, but none found", selector)
	}
}

// assertNotContainsElement asserts that the document does not contain an element matching the selector
func assertNotContainsElement(t *testing.T, doc *goquery.Document, selector string) {
	t.Helper()
	if doc.Find(selector).Length() > 0 {
		t.Errorf("Expected NOT to find element matching %q, but found %d", selector, doc.Find(selector).Length())
	}
}

// assertContainsText asserts that the element matching the selector contains the text
func assertContainsText(t *testing.T, doc *goquery.Document, selector, text string) {
	t.Helper()
	el := doc.Find(selector)
	if el.Length() == 0 {
		t.Errorf("Expected to find element matching %q, but none found", selector)
		return
	}
	if !strings.Contains(el.Text(), text) {
		t.Errorf("Expected element %q to contain %q, but got %q", selector, text, el.Text())
	}
}

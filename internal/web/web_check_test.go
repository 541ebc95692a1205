package web_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckPageQualifyingAccount(t *testing.T) {
	ts := newWebTestServer(t)
	ts.qualifyingLibrary()
	ts.signInManually("76561197960287930")

	rr := ts.get("/check")
	assert.Equal(t, http.StatusOK, rr.Code)

	doc := parseHTML(rr.Body)
	assertContainsElement(t, doc, ".verdict-valid")
	assertNotContainsElement(t, doc, ".verdict-invalid")

	// All four criteria pass
	assert.Equal(t, 4, doc.Find(".criteria li.pass").Length())
	assert.Equal(t, 0, doc.Find(".criteria li.fail").Length())

	// Totals are rendered; nothing to make up, so no shortfall annotations
	assertContainsText(t, doc, ".criteria", "101.7 hours")
	assertContainsText(t, doc, ".criteria", "12 achievements")
	assertContainsText(t, doc, ".criteria", "3 games")
	assertNotContainsElement(t, doc, ".criteria .shortfall")
}

func TestCheckPageConcentratedAccount(t *testing.T) {
	ts := newWebTestServer(t)
	// One game dominates the playtime
	ts.steam.setLibrary(
		[]stubGame{
			{AppID: 10, Name: "Alpha", PlaytimeForever: 6000},
			{AppID: 20, Name: "Beta", PlaytimeForever: 120},
			{AppID: 30, Name: "Gamma", PlaytimeForever: 90},
		},
		map[string]int{"10": 12},
	)
	ts.signInManually("76561197960287930")

	rr := ts.get("/check")
	assert.Equal(t, http.StatusOK, rr.Code)

	doc := parseHTML(rr.Body)
	assertContainsElement(t, doc, ".verdict-invalid")
	assert.Equal(t, 3, doc.Find(".criteria li.pass").Length())
	assert.Equal(t, 1, doc.Find(".criteria li.fail").Length())
	// The dominant game is named, with how far it overshoots the cap
	assertContainsText(t, doc, ".criteria", "Alpha")
	assertContainsText(t, doc, ".criteria li.fail .shortfall", "Over by 46.6%")
}

func TestCheckPageShortfallAmounts(t *testing.T) {
	ts := newWebTestServer(t)
	// A barely-used account missing every criterion
	ts.steam.setLibrary(
		[]stubGame{
			{AppID: 10, Name: "Alpha", PlaytimeForever: 300},
		},
		map[string]int{"10": 2},
	)
	ts.signInManually("76561197960287930")

	rr := ts.get("/check")
	assert.Equal(t, http.StatusOK, rr.Code)

	doc := parseHTML(rr.Body)
	assertContainsElement(t, doc, ".verdict-invalid")
	assert.Equal(t, 4, doc.Find(".criteria li.fail").Length())

	// Each failed criterion says how far it missed
	shortfalls := doc.Find(".criteria .shortfall")
	assert.Equal(t, 4, shortfalls.Length())
	assertContainsText(t, doc, ".criteria", "Need 95.0 more")
	assertContainsText(t, doc, ".criteria", "Need 8 more")
	assertContainsText(t, doc, ".criteria", "Need 2 more")
	assertContainsText(t, doc, ".criteria", "Over by 50.0%")
}

func TestCheckPagePrivateProfile(t *testing.T) {
	ts := newWebTestServer(t)
	// No library configured: the stub reports an empty response, which is
	// what Steam returns for private game details
	ts.signInManually("76561197960287930")

	rr := ts.get("/check")
	assert.Equal(t, http.StatusOK, rr.Code)

	doc := parseHTML(rr.Body)
	assertContainsText(t, doc, "body", "private")
	assertNotContainsElement(t, doc, ".verdict-valid")
}

func TestCheckPageSteamDown(t *testing.T) {
	ts := newWebTestServer(t)
	ts.steam.setDown(true)
	ts.signInManually("76561197960287930")

	rr := ts.get("/check")
	assert.Equal(t, http.StatusBadGateway, rr.Code)

	doc := parseHTML(rr.Body)
	assertContainsText(t, doc, "body", "Steam is not responding")
}

func TestRefreshRedirectsToResults(t *testing.T) {
	ts := newWebTestServer(t)
	ts.qualifyingLibrary()
	ts.signInManually("76561197960287930")

	rr := ts.post("/check/refresh", nil)
	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/check", rr.Header().Get("Location"))

	rr = ts.followRedirect(rr)
	assert.Equal(t, http.StatusOK, rr.Code)
	doc := parseHTML(rr.Body)
	assertContainsElement(t, doc, ".verdict-valid")
}

func TestRefreshPicksUpLibraryChanges(t *testing.T) {
	ts := newWebTestServer(t)
	ts.qualifyingLibrary()
	ts.signInManually("76561197960287930")

	rr := ts.get("/check")
	doc := parseHTML(rr.Body)
	assertContainsElement(t, doc, ".verdict-valid")

	// The profile goes private; a plain GET keeps serving the cached result
	ts.steam.setLibrary(nil, nil)
	rr = ts.get("/check")
	doc = parseHTML(rr.Body)
	assertContainsElement(t, doc, ".verdict-valid")

	// A forced refresh sees the change
	rr = ts.post("/check/refresh", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	doc = parseHTML(rr.Body)
	assertContainsText(t, doc, "body", "private")
}

// Package templates renders the HTML pages of the web interface.
//
// Pages are parsed from embedded files at startup so a bad template fails
// the process immediately rather than the first request.
package templates

import (
	"embed"
	"html/template"
	"io"

	"github.com/questgate/steamqual/internal/model"
	"github.com/questgate/steamqual/internal/services/qualify"
)

//go:embed *.html
var files embed.FS

// FlashMessage is a one-shot notice carried across a redirect
type FlashMessage struct {
	Type    string // "success", "error" or "info"
	Message string
}

// PageData holds the fields every page needs
type PageData struct {
	Title    string
	SteamID  model.SteamID
	LoggedIn bool
	Flash    *FlashMessage
}

// HomeData is the data for the landing page
type HomeData struct {
	PageData
	SteamIDInput string
	Error        string
}

// ResultsData is the data for the qualification results page
type ResultsData struct {
	PageData
	Result *model.CheckResult
}

// The shortfall helpers below say how far a failed criterion missed its
// threshold; the results page renders them only on failing rows.

// HoursShortfall returns how many more hours of playtime are needed
func (d ResultsData) HoursShortfall() float64 {
	return qualify.MinTotalHours - d.Result.Verdict.TotalHours
}

// AchievementsShortfall returns how many more achievements are needed
func (d ResultsData) AchievementsShortfall() int {
	return qualify.MinAchievements - d.Result.Verdict.TotalAchievements
}

// DiversityShortfall returns how many more games over an hour are needed
func (d ResultsData) DiversityShortfall() int {
	return qualify.MinGamesOverOneHour - d.Result.Verdict.GamesOverOneHour
}

// ConcentrationExcess returns how far the most-played share exceeds the cap
func (d ResultsData) ConcentrationExcess() float64 {
	return d.Result.Verdict.MostPlayedPercentage - qualify.MaxMostPlayedPercentage
}

// ErrorData is the data for the error page
type ErrorData struct {
	PageData
	Heading  string
	Detail   string
	CanRetry bool
}

func mustPage(name string) *template.Template {
	return template.Must(template.ParseFS(files, "layout.html", name))
}

var (
	homePage    = mustPage("home.html")
	resultsPage = mustPage("results.html")
	errorPage   = mustPage("error.html")
)

// Home renders the landing page
func Home(w io.Writer, data HomeData) error {
	return homePage.ExecuteTemplate(w, "layout", data)
}

// Results renders the qualification results page
func Results(w io.Writer, data ResultsData) error {
	return resultsPage.ExecuteTemplate(w, "layout", data)
}

// Error renders the error page
func Error(w io.Writer, data ErrorData) error {
	return errorPage.ExecuteTemplate(w, "layout", data)
}

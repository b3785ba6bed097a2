package main

import (
	"html/template"
	"net/http"

	"github.com/VpkDevs/Tax-Filing-Tool/internal/logger"
)

// Page-serving endpoints: plain content delivery, separate from the
// calculation core.

type pageLink struct {
	Name        string
	Description string
	URL         string
}

var toolsList = []pageLink{
	{Name: "Calculator", Description: "Advanced financial calculator", URL: "/tools/calculator"},
}

var gamesList = []pageLink{
	{Name: "Tic Tac Toe", Description: "Classic game of X's and O's", URL: "/games/tictactoe"},
	{Name: "Snake", Description: "Classic snake game", URL: "/games/snake"},
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head><title>{{.Title}}</title></head>
<body>
<h1>{{.Title}}</h1>
{{if .Links}}<ul>
{{range .Links}}<li><a href="{{.URL}}">{{.Name}}</a> - {{.Description}}</li>
{{end}}</ul>{{end}}
{{if .Body}}<p>{{.Body}}</p>{{end}}
</body>
</html>
`))

type pageData struct {
	Title string
	Links []pageLink
	Body  string
}

func renderPage(w http.ResponseWriter, status int, data pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := pageTemplate.Execute(w, data); err != nil {
		logger.Error("failed to render page", "title", data.Title, "error", err)
	}
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	logger.Info("home page accessed")
	renderPage(w, http.StatusOK, pageData{
		Title: "Home",
		Links: []pageLink{
			{Name: "Tools", Description: "Calculators and utilities", URL: "/tools"},
			{Name: "Games", Description: "Simple browser games", URL: "/games"},
		},
	})
}

func (s *Server) handleTools(w http.ResponseWriter, r *http.Request) {
	renderPage(w, http.StatusOK, pageData{Title: "Tools", Links: toolsList})
}

func (s *Server) handleCalculatorPage(w http.ResponseWriter, r *http.Request) {
	logger.Info("calculator page accessed")
	renderPage(w, http.StatusOK, pageData{
		Title: "Calculator",
		Body:  "POST an expression to /api/calculate to evaluate it.",
	})
}

func (s *Server) handleGames(w http.ResponseWriter, r *http.Request) {
	renderPage(w, http.StatusOK, pageData{Title: "Games", Links: gamesList})
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	logger.Warn("page not found", "path", r.URL.Path)
	renderPage(w, http.StatusNotFound, pageData{Title: "Page Not Found", Body: "The requested page does not exist."})
}

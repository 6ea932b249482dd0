package web

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static/*
var staticFS embed.FS

// PageTemplate is the name of the hangman page template
const PageTemplate = "hangman.html"

// PageData is rendered into the hangman page
type PageData struct {
	Title    string
	WordURL  string
	Attempts int
	Seconds  int
}

// DefaultPageData returns the page settings used by GET /
func DefaultPageData() PageData {
	return PageData{
		Title:    "Hangman",
		WordURL:  "/get-word",
		Attempts: 7,
		Seconds:  60,
	}
}

// Templates parses the embedded page templates
func Templates() (*template.Template, error) {
	return template.ParseFS(templateFS, "templates/*.html")
}

// StaticFS returns the embedded static assets rooted at static/
func StaticFS() http.FileSystem {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic("Failed to create embedded static filesystem: " + err.Error())
	}
	return http.FS(sub)
}

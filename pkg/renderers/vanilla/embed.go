package vanilla

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

//go:embed assets/*
var embeddedAssets embed.FS

const (
	// TrialTemplate is the entry template rendered for every trial.
	TrialTemplate     = "templates/trial.tmpl"
	StylesheetName    = "surveyslider.css"
	RuntimeScriptName = "surveyslider.js"
)

// TemplatesFS exposes the embedded template bundle so callers can copy or
// extend it.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}

// AssetsFS exposes the runtime script and stylesheet so callers can serve
// them over HTTP instead of inlining them.
func AssetsFS() fs.FS {
	sub, err := fs.Sub(embeddedAssets, "assets")
	if err != nil {
		return embeddedAssets
	}
	return sub
}

func readAsset(name string) string {
	data, err := fs.ReadFile(embeddedAssets, "assets/"+name)
	if err != nil {
		return ""
	}
	return string(data)
}

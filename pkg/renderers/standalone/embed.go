package standalone

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tpl
var embeddedTemplates embed.FS

//go:embed assets/*
var embeddedAssets embed.FS

const (
	// DocumentTemplate is the page shell every export is rendered through.
	DocumentTemplate = "templates/document.tpl"
	// StylesheetName is the stylesheet inlined into every export.
	StylesheetName = "standalone.css"
)

// TemplatesFS exposes the embedded template bundle so callers can start a
// custom bundle from it.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}

// AssetsFS exposes the embedded stylesheet bundle.
func AssetsFS() fs.FS {
	sub, err := fs.Sub(embeddedAssets, "assets")
	if err != nil {
		return embeddedAssets
	}
	return sub
}

func defaultStylesheet() string {
	data, err := fs.ReadFile(embeddedAssets, "assets/"+StylesheetName)
	if err != nil {
		return ""
	}
	return string(data)
}

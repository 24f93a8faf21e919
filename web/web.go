// Package web embeds the browser client served at the site root.
package web

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed static
var files embed.FS

// IndexHTML returns the client page.
func IndexHTML() []byte {
	page, err := files.ReadFile("static/index.html")
	if err != nil {
		panic(err)
	}
	return page
}

// Assets serves the files under static/.
func Assets() http.FileSystem {
	sub, err := fs.Sub(files, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}

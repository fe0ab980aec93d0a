package web

import (
	"embed"
	"io/fs"
	"log"
)

// content holds the page templates and static assets compiled into the
// binary, so the server runs from a single file.
//
//go:embed static templates
var content embed.FS

// StaticFS returns the embedded static assets rooted at static/.
func StaticFS() fs.FS {
	return mustSub("static")
}

// TemplatesFS returns the embedded page templates rooted at templates/.
func TemplatesFS() fs.FS {
	return mustSub("templates")
}

func mustSub(dir string) fs.FS {
	sub, err := fs.Sub(content, dir)
	if err != nil {
		log.Fatalf("failed to create %s sub-filesystem: %v", dir, err)
	}
	return sub
}

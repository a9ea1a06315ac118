package webserv

import (
	"net/http"
	"path/filepath"
	"strings"

	"statichost/mod/utils"
)

/* CORS response headers, injected into every response */
const (
	corsAllowOrigin  = "*"
	corsAllowMethods = "GET, POST, OPTIONS"
	corsAllowHeaders = "Content-Type"
)

// corsMiddleware injects the CORS header triple into every response.
// Preflight OPTIONS requests are answered directly with an empty 200
// without touching the file system.
func (ws *WebServer) corsMiddleware(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", corsAllowOrigin)
		w.Header().Set("Access-Control-Allow-Methods", corsAllowMethods)
		w.Header().Set("Access-Control-Allow-Headers", corsAllowHeaders)

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		h.ServeHTTP(w, r)
	})
}

// File server middleware to handle directory listing (and future expansion)
func (ws *WebServer) fsMiddleware(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !ws.option.EnableDirectoryListing && strings.HasSuffix(r.URL.Path, "/") {
			//This is a folder. Only continue if an index page exists,
			//otherwise the file server will generate a listing for it
			if !ws.folderHasIndexPage(r.URL.Path) {
				http.NotFound(w, r)
				return
			}
		}

		h.ServeHTTP(w, r)
	})
}

// Convert a request path (e.g. /index.html) into physical path on disk
func (ws *WebServer) resolveFileDiskPath(requestPath string) string {
	fileDiskpath := filepath.Join(ws.option.WebRoot, requestPath)

	//Force convert it to slash even if the host OS is on Windows
	fileDiskpath = filepath.Clean(fileDiskpath)
	return strings.ReplaceAll(fileDiskpath, "\\", "/")
}

// Check if the folder of the given request path contains an index page
func (ws *WebServer) folderHasIndexPage(requestPath string) bool {
	for _, indexName := range []string{"index.html", "index.htm"} {
		if utils.FileExists(filepath.Join(ws.resolveFileDiskPath(requestPath), indexName)) {
			return true
		}
	}
	return false
}

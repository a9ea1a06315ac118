package webserv

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"golang.org/x/net/webdav"
)

/*
	WebDAV manager

	This script provides a WebDAV server for managing the files
	in the static web server root folder. The WebDAV server binds
	to loopback only so it is never reachable from the network.
*/

type WebdavServer struct {
	server    *http.Server
	handler   *webdav.Handler
	options   *WebServerOptions
	isRunning bool
	mu        sync.Mutex
}

// NewWebdavServer creates a new WebDAV server over the web root
func NewWebdavServer(options *WebServerOptions) *WebdavServer {
	handler := &webdav.Handler{
		FileSystem: webdav.Dir(options.WebRoot),
		LockSystem: webdav.NewMemLS(),
	}

	return &WebdavServer{
		handler:   handler,
		options:   options,
		isRunning: false,
		mu:        sync.Mutex{},
	}
}

// Start starts the WebDAV server on the given loopback port
func (wd *WebdavServer) Start(port string) error {
	wd.mu.Lock()
	defer wd.mu.Unlock()

	if wd.isRunning {
		return fmt.Errorf("WebDAV server is already running")
	}

	//Check if the port is usable
	if IsPortInUse(port) {
		return errors.New("port already in use or access denied by host OS")
	}

	mux := http.NewServeMux()
	mux.Handle("/", wd.handler)

	wd.server = &http.Server{
		Addr:    "127.0.0.1:" + port,
		Handler: mux,
	}

	go func() {
		if err := wd.server.ListenAndServe(); err != nil {
			if err != http.ErrServerClosed {
				wd.options.Logger.PrintAndLog("webdav", "WebDAV server failed to start", err)
			}
		}
	}()

	wd.isRunning = true
	wd.options.Logger.PrintAndLog("webdav", "WebDAV server started. Listening on 127.0.0.1:"+port, nil)
	return nil
}

// Stop stops the WebDAV server
func (wd *WebdavServer) Stop() error {
	wd.mu.Lock()
	defer wd.mu.Unlock()

	if !wd.isRunning {
		return fmt.Errorf("WebDAV server is not running")
	}

	if err := wd.server.Shutdown(context.Background()); err != nil {
		return err
	}

	wd.isRunning = false
	wd.options.Logger.PrintAndLog("webdav", "WebDAV server stopped", nil)
	return nil
}

// IsRunning returns the running state of the WebDAV server
func (wd *WebdavServer) IsRunning() bool {
	wd.mu.Lock()
	defer wd.mu.Unlock()
	return wd.isRunning
}

// Close stops the WebDAV server without returning an error
func (wd *WebdavServer) Close() {
	wd.Stop()
}

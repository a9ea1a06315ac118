package webserv

import (
	"embed"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"sync"

	"statichost/mod/database"
	"statichost/mod/info/logger"
	"statichost/mod/utils"
)

/*
	Static Web Server package

	This module hosts the CORS enabled static web server.
	Every response served by this module carries the permissive
	CORS header triple so browser scripts from any origin can
	read the hosted content.
*/

//go:embed templates/*
var templates embed.FS

type WebServerOptions struct {
	Port                   string             //Port for listening
	WebRoot                string             //Folder storing the static web content
	EnableDirectoryListing bool               //Enable listing of directory without an index page
	Sysdb                  *database.Database //Database for storing configs
	Logger                 *logger.Logger     //System wide logger
}

type WebServer struct {
	mux       *http.ServeMux
	server    *http.Server
	option    *WebServerOptions
	isRunning bool
	mu        sync.Mutex
}

// NewWebServer creates a new WebServer instance. One instance only
func NewWebServer(options *WebServerOptions) *WebServer {
	if !utils.FileExists(options.WebRoot) {
		//Web root folder not exists. Create one with the default landing page
		os.MkdirAll(options.WebRoot, 0775)
		indexTemplate, err := templates.ReadFile("templates/index.html")
		if err == nil {
			os.WriteFile(filepath.Join(options.WebRoot, "index.html"), indexTemplate, 0775)
		}
	}

	//Create a new table to store the runtime changeable settings
	options.Sysdb.NewTable("webserv")
	return &WebServer{
		mux:       http.NewServeMux(),
		option:    options,
		isRunning: false,
		mu:        sync.Mutex{},
	}
}

// Restore the configuration to the previous state recorded in database
// and start hosting if the server was running before
func (ws *WebServer) RestorePreviousState() {
	//Set the port
	port := ws.option.Port
	ws.option.Sysdb.Read("webserv", "port", &port)
	ws.option.Port = port

	//Set the enable directory list
	enableDirList := ws.option.EnableDirectoryListing
	ws.option.Sysdb.Read("webserv", "dirlist", &enableDirList)
	ws.option.EnableDirectoryListing = enableDirList

	//Check the running state
	webservRunning := true
	ws.option.Sysdb.Read("webserv", "enabled", &webservRunning)
	if webservRunning {
		ws.Start()
	}
}

// Handler returns the assembled handler chain of the static web server,
// for testing or embedding into an external mux
func (ws *WebServer) Handler() http.Handler {
	fs := http.FileServer(http.Dir(ws.option.WebRoot))
	return ws.corsMiddleware(ws.fsMiddleware(fs))
}

// ChangePort changes the server's port
func (ws *WebServer) ChangePort(port string) error {
	if IsPortInUse(port) {
		return errors.New("selected port is used by another process")
	}

	if ws.IsRunning() {
		if err := ws.Stop(); err != nil {
			return err
		}
	}

	ws.mu.Lock()
	ws.option.Port = port
	ws.mu.Unlock()

	if err := ws.Start(); err != nil {
		return err
	}

	ws.option.Sysdb.Write("webserv", "port", port)
	return nil
}

// Get current using port in options
func (ws *WebServer) GetListeningPort() string {
	return ws.option.Port
}

// Options returns the options of this web server instance
func (ws *WebServer) Options() *WebServerOptions {
	return ws.option
}

// IsRunning returns the hosting state of the web server
func (ws *WebServer) IsRunning() bool {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	return ws.isRunning
}

// Start starts the web server
func (ws *WebServer) Start() error {
	ws.mu.Lock()
	defer ws.mu.Unlock()

	//Check if server already running
	if ws.isRunning {
		return fmt.Errorf("web server is already running")
	}

	//Check if the port is usable
	if IsPortInUse(ws.option.Port) {
		return errors.New("port already in use or access denied by host OS")
	}

	//Dispose the old mux and create a new one
	ws.mux = http.NewServeMux()
	ws.mux.Handle("/", ws.Handler())

	ws.server = &http.Server{
		Addr:    ":" + ws.option.Port,
		Handler: ws.mux,
	}

	go func() {
		if err := ws.server.ListenAndServe(); err != nil {
			if err != http.ErrServerClosed {
				ws.log("Web server exited unexpectedly", err)
			}
		}
	}()

	ws.log("Static web server started. Listening on :"+ws.option.Port, nil)
	ws.isRunning = true
	ws.option.Sysdb.Write("webserv", "enabled", true)
	return nil
}

// Stop stops the web server
func (ws *WebServer) Stop() error {
	ws.mu.Lock()
	defer ws.mu.Unlock()

	if !ws.isRunning {
		return fmt.Errorf("web server is not running")
	}

	if err := ws.server.Close(); err != nil {
		return err
	}

	ws.log("Static web server stopped", nil)
	ws.isRunning = false
	ws.option.Sysdb.Write("webserv", "enabled", false)
	return nil
}

// UpdateDirectoryListing enables or disables directory listing
func (ws *WebServer) UpdateDirectoryListing(enable bool) {
	ws.option.EnableDirectoryListing = enable
	ws.option.Sysdb.Write("webserv", "dirlist", enable)
}

// Close stops the web server without returning an error
func (ws *WebServer) Close() {
	ws.Stop()
}

func (ws *WebServer) log(message string, err error) {
	if ws.option.Logger == nil {
		return
	}
	ws.option.Logger.PrintAndLog("webserv", message, err)
}

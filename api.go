package main

import (
	"net/http"
)

/*
	API.go

	This file contains the loopback management API for
	inspecting and changing the hosting state at runtime
*/

// Register the management APIs and start the management
// web server on loopback interface only
func startManagementAPI(port string) error {
	mgmtMux := http.NewServeMux()

	/* Static web server control */
	mgmtMux.HandleFunc("/api/webserv/status", staticWebServer.HandleGetStatus)
	mgmtMux.HandleFunc("/api/webserv/start", staticWebServer.HandleStartServer)
	mgmtMux.HandleFunc("/api/webserv/stop", staticWebServer.HandleStopServer)
	mgmtMux.HandleFunc("/api/webserv/setPort", staticWebServer.HandlePortChange)
	mgmtMux.HandleFunc("/api/webserv/setDirList", staticWebServer.HandleSetDirectoryListing)

	mgmtServer := &http.Server{
		Addr:    "127.0.0.1:" + port,
		Handler: mgmtMux,
	}

	go func() {
		if err := mgmtServer.ListenAndServe(); err != nil {
			if err != http.ErrServerClosed {
				SystemWideLogger.PrintAndLog("api", "Management API server exited", err)
			}
		}
	}()

	SystemWideLogger.PrintAndLog("api", "Management API started. Listening on 127.0.0.1:"+port, nil)
	return nil
}

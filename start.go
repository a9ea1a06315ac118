package main

import (
	"log"
	"strconv"

	"statichost/mod/database"
	"statichost/mod/info/logger"
	"statichost/mod/webserv"
)

/*
	Startup Sequence

	This function starts the startup sequence of all
	required modules
*/

func startupSequence() {
	//Create the system wide logger
	l, err := logger.NewLogger(LOG_PREFIX, *path_logFile)
	if err != nil {
		log.Fatal(err)
	}
	SystemWideLogger = l

	//Create database for runtime changeable settings
	db, err := database.NewDatabase(DB_FILE_PATH)
	if err != nil {
		log.Fatal(err)
	}
	sysdb = db

	//Create the static web server
	staticWebServer = webserv.NewWebServer(&webserv.WebServerOptions{
		Port:                   strconv.Itoa(*webservPort),
		WebRoot:                *path_webroot,
		EnableDirectoryListing: *enableDirList,
		Sysdb:                  sysdb,
		Logger:                 SystemWideLogger,
	})

	//Restore the previous settings and start hosting
	staticWebServer.RestorePreviousState()
	if !staticWebServer.IsRunning() {
		//First launch or previously stopped by management API
		if err := staticWebServer.Start(); err != nil {
			log.Fatal(err)
		}
	}

	//Create the loopback WebDAV manager if enabled
	if *enableWebdav {
		webdavServer = webserv.NewWebdavServer(staticWebServer.Options())
		if err := webdavServer.Start(strconv.Itoa(*webdavPort)); err != nil {
			SystemWideLogger.PrintAndLog("webdav", "Unable to start WebDAV manager", err)
		}
	}

	//Start the loopback management API if enabled
	if *enableMgmt {
		if err := startManagementAPI(strconv.Itoa(*mgmtPort)); err != nil {
			SystemWideLogger.PrintAndLog("api", "Unable to start management API", err)
		}
	}
}

/* Shutdown Sequence, closes all modules in reverse startup order */
func ShutdownSeq() {
	if webdavServer != nil {
		SystemWideLogger.PrintAndLog("system", "Shutting down WebDAV manager", nil)
		webdavServer.Close()
	}

	if staticWebServer != nil {
		SystemWideLogger.PrintAndLog("system", "Shutting down static web server", nil)
		staticWebServer.Close()
	}

	//Close database and logger last
	if sysdb != nil {
		sysdb.Close()
	}
	if SystemWideLogger != nil {
		SystemWideLogger.Close()
	}
}

package main

/*
	Type and flag definations

	This file contains all the constant, flag and global
	handler definations for StaticHost
*/

import (
	"flag"

	"statichost/mod/database"
	"statichost/mod/info/logger"
	"statichost/mod/webserv"
)

const (
	/* Build Constants */
	SYSTEM_NAME    = "StaticHost"
	SYSTEM_VERSION = "1.0.0"

	/* System Constants */
	WEBSERV_DEFAULT_PORT = 8080
	LOG_PREFIX           = "sh"
	DB_FILE_PATH         = "./sys.db"
)

/* System Startup Flags */
var (
	webservPort   = flag.Int("port", WEBSERV_DEFAULT_PORT, "Static web server listening port")
	path_webroot  = flag.String("webroot", "./www", "Static web server root folder")
	path_logFile  = flag.String("log", "./log", "Log folder path")
	enableDirList = flag.Bool("dirlist", true, "Enable directory listing for folders without an index page")
	enableWebdav  = flag.Bool("webdav", false, "Enable loopback WebDAV access to the web root")
	webdavPort    = flag.Int("webdavport", 8081, "Loopback WebDAV listening port")
	enableMgmt    = flag.Bool("mgmt", false, "Enable loopback management API")
	mgmtPort      = flag.Int("mgmtport", 8082, "Loopback management API listening port")
	showver       = flag.Bool("version", false, "Show version of this server")
)

/* Global Variables and Handlers */
var (
	/*
		Handler Modules
	*/
	sysdb            *database.Database    //System database for runtime changeable settings
	staticWebServer  *webserv.WebServer    //The CORS enabled static web server
	webdavServer     *webserv.WebdavServer //Loopback WebDAV manager for the web root
	SystemWideLogger *logger.Logger        //Logger for StaticHost
)

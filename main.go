package main

/*
   _____ __        __  _      __  __           __
  / ___// /_____ _/ /_(_)____/ / / /___  _____/ /_
  \__ \/ __/ __ `/ __/ / ___/ /_/ / __ \/ ___/ __/
 ___/ / /_/ /_/ / /_/ / /__/ __  / /_/ (__  ) /_
/____/\__/\__,_/\__/_/\___/_/ /_/\____/____/\__/

StaticHost - A CORS enabled static web server
for hosting single page web applications during development

*/

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
)

/* SIGTERM handler, do shutdown sequences before closing */
func SetupCloseHandler() {
	c := make(chan os.Signal, 2)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	go func() {
		<-c
		ShutdownSeq()
		os.Exit(0)
	}()
}

// Print the startup information lines to console. The port is taken
// from the web server as the persisted setting may differ from the flag
func printStartupMessage() {
	color.Cyan("%s - CORS enabled static web server", SYSTEM_NAME)
	color.Green("Server running at http://localhost:%s/", staticWebServer.GetListeningPort())
	color.Yellow("Press Ctrl+C to stop")
	fmt.Println()
}

func main() {
	//Load optional .env overrides before parsing startup flags
	godotenv.Load()
	applyEnvOverrides()
	flag.Parse()

	if *showver {
		fmt.Println(SYSTEM_NAME + " - Version " + SYSTEM_VERSION)
		os.Exit(0)
	}

	SetupCloseHandler()

	//Startup all modules, see start.go
	startupSequence()

	printStartupMessage()

	//Block main thread until SIGINT or SIGTERM
	select {}
}

// Seed flag defaults from environment variables when present,
// so a .env file can configure the server without startup flags
func applyEnvOverrides() {
	if port, err := strconv.Atoi(os.Getenv("STATICHOST_PORT")); err == nil {
		flag.Set("port", strconv.Itoa(port))
	}
	if webroot := os.Getenv("STATICHOST_WEBROOT"); webroot != "" {
		flag.Set("webroot", webroot)
	}
	if dirlist := os.Getenv("STATICHOST_DIRLIST"); dirlist != "" {
		flag.Set("dirlist", dirlist)
	}
}

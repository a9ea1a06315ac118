package webserv_test

import (
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"statichost/mod/database"
	"statichost/mod/info/logger"
	"statichost/mod/webserv"
)

func TestWebdavServerLifecycle(t *testing.T) {
	webroot := t.TempDir()
	if err := os.WriteFile(filepath.Join(webroot, "hello.txt"), []byte("hello world"), 0775); err != nil {
		t.Fatal(err)
	}

	db, err := database.NewDatabase(filepath.Join(t.TempDir(), "sys.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	options := &webserv.WebServerOptions{
		Port:    "8080",
		WebRoot: webroot,
		Sysdb:   db,
		Logger:  logger.NewFmtLogger(),
	}

	wd := webserv.NewWebdavServer(options)
	port := getFreePort(t)
	if err := wd.Start(port); err != nil {
		t.Fatal(err)
	}
	defer wd.Close()

	if !wd.IsRunning() {
		t.Fatal("WebDAV server not running after start")
	}

	//Read an existing file through the WebDAV endpoint
	resp, err := http.Get("http://127.0.0.1:" + port + "/hello.txt")
	if err != nil {
		t.Fatal(err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if string(body) != "hello world" {
		t.Fatal("unexpected file content: " + string(body))
	}

	//Upload a new file into the web root
	req, _ := http.NewRequest("PUT", "http://127.0.0.1:"+port+"/uploaded.txt", strings.NewReader("uploaded"))
	resp, err = http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()

	uploaded, err := os.ReadFile(filepath.Join(webroot, "uploaded.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if string(uploaded) != "uploaded" {
		t.Fatal("unexpected uploaded content: " + string(uploaded))
	}

	if err := wd.Stop(); err != nil {
		t.Fatal(err)
	}
	if wd.IsRunning() {
		t.Fatal("WebDAV server still running after stop")
	}
}

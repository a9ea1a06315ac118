package logger

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

/*
	StaticHost Logger

	Managed logging for the server core. Log lines are written to a
	month-partitioned log file and optionally mirrored to STDOUT.
*/

type Logger struct {
	Prefix         string //Prefix for log files
	LogFolder      string //Folder to store the log file
	CurrentLogFile string //Current writing filename
	logger         *log.Logger
	file           *os.File
}

// Create a new logger that logs to file
func NewLogger(logFilePrefix string, logFolder string) (*Logger, error) {
	err := os.MkdirAll(logFolder, 0775)
	if err != nil {
		return nil, err
	}

	thisLogger := Logger{
		Prefix:    logFilePrefix,
		LogFolder: logFolder,
	}

	logFilePath := thisLogger.getLogFilepath()
	f, err := os.OpenFile(logFilePath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0755)
	if err != nil {
		return nil, err
	}
	thisLogger.CurrentLogFile = logFilePath
	thisLogger.file = f
	thisLogger.logger = log.New(f, "", 0)
	return &thisLogger, nil
}

// Create a logger that only logs to STDOUT, for testing
func NewFmtLogger() *Logger {
	return &Logger{}
}

func (l *Logger) getLogFilepath() string {
	year, month, _ := time.Now().Date()
	return filepath.Join(l.LogFolder, l.Prefix+"_"+strconv.Itoa(year)+"-"+strconv.Itoa(int(month))+".log")
}

// PrintAndLog will log the message to file and print the log to STDOUT
func (l *Logger) PrintAndLog(title string, message string, originalError error) {
	l.Log(title, message, originalError, true)
}

// Println is a fast snap-in replacement for log.Println
func (l *Logger) Println(v ...interface{}) {
	l.Log("internal", fmt.Sprint(v...), nil, true)
}

func (l *Logger) Log(title string, message string, originalError error, copyToSTDOUT bool) {
	l.validateAndUpdateLogFilepath()

	line := "[" + time.Now().Format("2006-01-02 15:04:05.000000") + "] [" + title + "] [system:info] " + message
	if originalError != nil {
		line = "[" + time.Now().Format("2006-01-02 15:04:05.000000") + "] [" + title + "] [system:error] " + message + ": " + originalError.Error()
	}

	if l.logger == nil || copyToSTDOUT {
		fmt.Println(line)
	}
	if l.logger != nil {
		l.logger.Println(line)
	}
}

// Validate if the logging target is still valid (detect any month change)
func (l *Logger) validateAndUpdateLogFilepath() {
	if l.file == nil {
		return
	}
	expectedCurrentLogFilepath := l.getLogFilepath()
	if l.CurrentLogFile == expectedCurrentLogFilepath {
		return
	}

	//Change of month. Roll over to a new log file
	l.file.Close()
	l.file = nil

	f, err := os.OpenFile(expectedCurrentLogFilepath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0755)
	if err != nil {
		log.Println("Unable to create new log. Logging to file is disabled: ", err.Error())
		l.logger = nil
		return
	}
	l.CurrentLogFile = expectedCurrentLogFilepath
	l.file = f
	l.logger = log.New(f, "", 0)
}

func (l *Logger) Close() {
	if l.file != nil {
		l.file.Close()
	}
}

// Package log provides the levelled loggers used across swipeview. The TUI
// owns the terminal, so the host usually redirects Output to a file.
package log

import (
	"io"
	"log"
	"os"
	"sync"

	"github.com/logrusorgru/aurora"
)

var (
	Flags = log.Ltime | log.Lmicroseconds

	PrefixPanic  = "PANIC! "
	PrefixError  = "Error: "
	PrefixInfo   = "Info:  "
	PrefixDebug  = "Debug: "
	DebugGreyLvl = uint8(11)

	EnableDebug = false
)

var (
	mu     sync.Mutex
	output io.Writer = os.Stderr

	logPanic *log.Logger
	logError *log.Logger
	logInfo  *log.Logger
	logDebug *log.Logger
)

func init() {
	ResetLoggers()
}

func newLogger(prefix aurora.Value) *log.Logger {
	return log.New(output, prefix.Bold().String(), Flags)
}

// SetOutput points every logger at w.
func SetOutput(w io.Writer) {
	mu.Lock()
	output = w
	mu.Unlock()
	ResetLoggers()
}

func ResetLoggers() {
	mu.Lock()
	defer mu.Unlock()
	logPanic = newLogger(aurora.BgRed(aurora.White(PrefixPanic)))
	logError = newLogger(aurora.Red(PrefixError))
	logInfo = newLogger(aurora.Blue(PrefixInfo))
	logDebug = newLogger(aurora.Gray(DebugGreyLvl, PrefixDebug))
}

func Infof(f string, v ...interface{}) {
	logInfo.Printf(f, v...)
}
func Infoln(v ...interface{}) {
	logInfo.Println(v...)
}

func Debugf(f string, v ...interface{}) {
	if !EnableDebug {
		return
	}
	logDebug.Printf(f, v...)
}
func Debugln(v ...interface{}) {
	if !EnableDebug {
		return
	}
	logDebug.Println(v...)
}

func Errorf(f string, v ...interface{}) {
	logError.Printf(f, v...)
}
func Errorln(v ...interface{}) {
	logError.Println(v...)
}

func Fatalf(f string, v ...interface{}) {
	logPanic.Fatalf(f, v...)
}
func Fatalln(v ...interface{}) {
	logPanic.Fatalln(v...)
}

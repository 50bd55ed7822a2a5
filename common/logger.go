package common

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"sync"
	"time"
)

var (
	logsource  = make(logwriters)
	logbarrier = sync.WaitGroup{}

	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
	outMu  sync.RWMutex
)

// Redirect replaces the writers used for Stdout and log output. Passing nil
// for either keeps the current writer. The returned function restores the
// previous writers.
func Redirect(out, errors io.Writer) func() {
	outMu.Lock()
	defer outMu.Unlock()
	previousOut, previousErr := stdout, stderr
	if out != nil {
		stdout = out
	}
	if errors != nil {
		stderr = errors
	}
	return func() {
		outMu.Lock()
		stdout, stderr = previousOut, previousErr
		outMu.Unlock()
	}
}

func currentOut() io.Writer {
	outMu.RLock()
	defer outMu.RUnlock()
	return stdout
}

func currentErr() io.Writer {
	outMu.RLock()
	defer outMu.RUnlock()
	return stderr
}

type logwriter func() (io.Writer, string)
type logwriters chan logwriter

func loggerLoop(writers logwriters) {
	var stamp string
	line := uint64(0)
	for {
		line += 1
		todo, ok := <-writers
		if !ok {
			continue
		}
		out, message := todo()

		if TraceFlag() {
			stamp = time.Now().Format("02.150405.000 ")
		} else if LogLinenumbers() {
			stamp = fmt.Sprintf("%3d ", line)
		} else {
			stamp = ""
		}
		fmt.Fprintf(out, "%s%s\n", stamp, message)
		if syncer, ok := out.(interface{ Sync() error }); ok {
			syncer.Sync()
		}
		logbarrier.Done()
	}
}

func init() {
	go loggerLoop(logsource)
}

func AcceptableOutput(message string) bool {
	for _, fragment := range logHidden() {
		if strings.Contains(message, fragment) {
			return false
		}
	}
	return true
}

func printout(out io.Writer, message string) {
	if AcceptableOutput(message) {
		logbarrier.Add(1)
		logsource <- func() (io.Writer, string) {
			return out, message
		}
	}
}

func Fatal(context string, err error) {
	if err != nil {
		printout(currentErr(), fmt.Sprintf("Fatal [%s]: %v", context, err))
	}
}

func Error(context string, err error) {
	if err != nil {
		Log("Error [%s]: %v", context, err)
	}
}

func Uncritical(context string, err error) {
	if err != nil {
		Log("Warning [%s; not critical]: %v", context, err)
	}
}

func Log(format string, details ...interface{}) {
	if !Silent() {
		prefix := ""
		if DebugFlag() || TraceFlag() {
			prefix = "[N] "
		}
		printout(currentErr(), fmt.Sprintf(prefix+format, details...))
	}
}

func Debug(format string, details ...interface{}) error {
	if DebugFlag() {
		printout(currentErr(), fmt.Sprintf("[D] "+format, details...))
	}
	return nil
}

func Trace(format string, details ...interface{}) error {
	if TraceFlag() {
		printout(currentErr(), fmt.Sprintf("[T] "+format, details...))
	}
	return nil
}

// Stdout writes directly (unbuffered, unstamped) to standard output. Prompt
// rendering goes through here so escape sequences reach the device in order.
func Stdout(format string, details ...interface{}) {
	message := format
	if len(details) > 0 {
		message = fmt.Sprintf(format, details...)
	}
	if AcceptableOutput(message) {
		out := currentOut()
		fmt.Fprint(out, message)
		if syncer, ok := out.(interface{ Sync() error }); ok {
			syncer.Sync()
		}
	}
}

func WaitLogs() {
	defer Timeline("wait logs done")

	runtime.Gosched()
	logbarrier.Wait()
}

package report

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Enumeration of log levels.
const (
	LogLevelSilent = iota
	LogLevelError
	LogLevelWarn
	LogLevelVerbose
)

// logLevelNames maps the names accepted on the command line and in config
// files to log levels.
var logLevelNames = map[string]int{
	"silent":  LogLevelSilent,
	"error":   LogLevelError,
	"warn":    LogLevelWarn,
	"verbose": LogLevelVerbose,
}

// LogLevelByName returns the log level with the given name.
func LogLevelByName(name string) (int, bool) {
	level, ok := logLevelNames[name]
	return level, ok
}

// reporter is the shared state behind all report functions.
type reporter struct {
	m        *sync.Mutex
	logLevel int
	out      io.Writer

	errorCount, warningCount int
}

// rep is the global reporter.
var rep = reporter{
	m:        &sync.Mutex{},
	logLevel: LogLevelVerbose,
	out:      os.Stdout,
}

// InitReporter initializes the global reporter with the provided log level and
// clears any counts left over from a previous run.
func InitReporter(logLevel int) {
	rep.m.Lock()
	defer rep.m.Unlock()

	rep.logLevel = logLevel
	rep.errorCount = 0
	rep.warningCount = 0
}

// SetOutput redirects all reporter output to w.
func SetOutput(w io.Writer) {
	rep.m.Lock()
	defer rep.m.Unlock()

	rep.out = w
}

// -----------------------------------------------------------------------------

// ReportICE reports an internal compiler error: a bug in atomc rather than in
// the user's program.  These are always displayed regardless of log level.
func ReportICE(message string, args ...interface{}) {
	rep.m.Lock()
	defer rep.m.Unlock()

	displayICE(fmt.Sprintf(message, args...))

	os.Exit(-1)
}

// ReportFatal reports an error that stops atomc immediately: an unreadable
// input file, a malformed config file, etc.
func ReportFatal(message string, args ...interface{}) {
	if rep.logLevel > LogLevelSilent {
		rep.m.Lock()
		defer rep.m.Unlock()

		displayFatal(fmt.Sprintf(message, args...))
	}

	os.Exit(1)
}

// ReportCompileError reports an error in the user's program.  The reprPath is
// the path displayed to the user and source is the full text of the file so
// the offending line can be shown.
func ReportCompileError(reprPath, source string, cerr *CompileError) {
	rep.m.Lock()
	defer rep.m.Unlock()

	rep.errorCount++

	if rep.logLevel > LogLevelSilent {
		displayCompileMessage(ErrorStyleBG, "error", reprPath, source, cerr)
	}
}

// ReportCompileWarning reports a warning.  The arguments are of the same form
// as those to ReportCompileError.
func ReportCompileWarning(reprPath, source string, cerr *CompileError) {
	rep.m.Lock()
	defer rep.m.Unlock()

	rep.warningCount++

	if rep.logLevel >= LogLevelWarn {
		displayCompileMessage(WarnStyleBG, "warning", reprPath, source, cerr)
	}
}

// ReportStdError reports a non-fatal, standard Go error.
func ReportStdError(reprPath string, err error) {
	rep.m.Lock()
	defer rep.m.Unlock()

	rep.errorCount++

	if rep.logLevel > LogLevelSilent {
		displayStdError(reprPath, err)
	}
}

// ReportInfo displays an informational message.  It is only shown at the
// verbose log level.
func ReportInfo(tag, message string) {
	rep.m.Lock()
	defer rep.m.Unlock()

	if rep.logLevel == LogLevelVerbose {
		displayInfo(tag, message)
	}
}

// ReportWarning displays a warning that is not attached to the user's program,
// such as a problem with a config file.  It does not count towards the
// warnings of the current check.
func ReportWarning(tag, message string) {
	rep.m.Lock()
	defer rep.m.Unlock()

	if rep.logLevel >= LogLevelWarn {
		displayWarning(tag, message)
	}
}

// ReportCompilationFinished displays the concluding message for a check.
func ReportCompilationFinished(reprPath string) {
	rep.m.Lock()
	defer rep.m.Unlock()

	if rep.logLevel == LogLevelVerbose {
		displayCompilationFinished(reprPath, rep.errorCount, rep.warningCount)
	}
}

// -----------------------------------------------------------------------------

// AnyErrors returns whether or not any errors were reported.
func AnyErrors() bool {
	return rep.errorCount > 0
}

// ErrorCount returns the number of errors reported since InitReporter.
func ErrorCount() int {
	return rep.errorCount
}

// WarningCount returns the number of warnings reported since InitReporter.
func WarningCount() int {
	return rep.warningCount
}

// CatchErrors catches any panic raised while checking a file and reports it as
// an internal compiler error.
// NB: This function must ALWAYS be deferred.
func CatchErrors(reprPath string) {
	if x := recover(); x != nil {
		ReportICE("%s: %v", reprPath, x)
	}
}

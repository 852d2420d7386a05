package report

import (
	"bytes"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func captureReports(t *testing.T, logLevel int) *bytes.Buffer {
	buff := &bytes.Buffer{}

	DisableColor()
	SetOutput(buff)
	InitReporter(logLevel)

	t.Cleanup(func() {
		SetOutput(os.Stdout)
		InitReporter(LogLevelVerbose)
	})

	return buff
}

func TestCompileErrorPosition(t *testing.T) {
	cerr := Raise(&TextSpan{StartLine: 3, StartCol: 7, EndLine: 3, EndCol: 8}, "undefined symbol: %s", "y")

	assert.Equal(t, 3, cerr.Line())
	assert.Equal(t, 7, cerr.Column())
	assert.Equal(t, "3:7: undefined symbol: y", cerr.Error())
	assert.False(t, cerr.IsWarning)

	noPos := Raise(nil, "bad")
	assert.Equal(t, 0, noPos.Line())
	assert.Equal(t, "bad", noPos.Error())

	assert.True(t, Warn(nil, "careful").IsWarning)
}

func TestAsCompileError(t *testing.T) {
	var err error = Raise(nil, "boom")

	cerr, ok := AsCompileError(err)
	assert.True(t, ok)
	assert.Equal(t, "boom", cerr.Message)

	_, ok = AsCompileError(errors.New("plain"))
	assert.False(t, ok)
}

func TestLogLevelByName(t *testing.T) {
	testData := []struct {
		name  string
		level int
		ok    bool
	}{
		{"silent", LogLevelSilent, true},
		{"error", LogLevelError, true},
		{"warn", LogLevelWarn, true},
		{"verbose", LogLevelVerbose, true},
		{"loud", 0, false},
	}

	for _, data := range testData {
		level, ok := LogLevelByName(data.name)
		assert.Equal(t, data.ok, ok, data.name)
		if data.ok {
			assert.Equal(t, data.level, level, data.name)
		}
	}
}

func TestReportCompileErrorShowsSource(t *testing.T) {
	buff := captureReports(t, LogLevelVerbose)

	source := "int x;\n  y = 1;\n"
	ReportCompileError("prog.c", source, Raise(&TextSpan{StartLine: 2, StartCol: 3, EndLine: 2, EndCol: 4}, "undefined symbol: y"))

	out := buff.String()
	assert.Contains(t, out, "prog.c:2:3: undefined symbol: y")
	assert.Contains(t, out, "2 |   y = 1;")
	assert.Contains(t, out, "  |   ^\n")
	assert.True(t, AnyErrors())
	assert.Equal(t, 1, ErrorCount())
}

func TestWarningsFollowLogLevel(t *testing.T) {
	buff := captureReports(t, LogLevelError)

	ReportCompileWarning("prog.c", "break;", Warn(&TextSpan{StartLine: 1, StartCol: 1, EndLine: 1, EndCol: 6}, "break outside of a loop"))

	assert.Empty(t, buff.String())
	assert.Equal(t, 1, WarningCount())
	assert.False(t, AnyErrors())
}

func TestSilentStillCounts(t *testing.T) {
	buff := captureReports(t, LogLevelSilent)

	ReportCompileError("prog.c", "", Raise(nil, "bad"))
	ReportStdError("prog.c", errors.New("cannot read"))

	assert.Empty(t, buff.String())
	assert.Equal(t, 2, ErrorCount())
}

func TestCompilationFinished(t *testing.T) {
	buff := captureReports(t, LogLevelVerbose)

	ReportCompilationFinished("prog.c")
	assert.Contains(t, buff.String(), "All done!")
	assert.Contains(t, buff.String(), "0 errors, 0 warnings")

	buff.Reset()
	ReportCompileError("prog.c", "", Raise(nil, "bad"))
	buff.Reset()
	ReportCompilationFinished("prog.c")
	assert.Contains(t, buff.String(), "Oh no!")
	assert.Contains(t, buff.String(), "1 error, 0 warnings")
}

func TestReportWarningIsNotCounted(t *testing.T) {
	buff := captureReports(t, LogLevelWarn)

	ReportWarning("config", "version mismatch")
	assert.Contains(t, buff.String(), "config version mismatch")
	assert.Equal(t, 0, WarningCount())

	buff = captureReports(t, LogLevelError)
	ReportWarning("config", "version mismatch")
	assert.Empty(t, buff.String())
}

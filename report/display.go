package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
)

var (
	SuccessColorFG = pterm.FgLightGreen
	SuccessStyleBG = pterm.NewStyle(pterm.BgLightGreen, pterm.FgBlack)
	WarnColorFG    = pterm.FgYellow
	WarnStyleBG    = pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	ErrorColorFG   = pterm.FgRed
	ErrorStyleBG   = pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
	InfoColorFG    = pterm.FgLightBlue
	InfoStyleBG    = pterm.NewStyle(pterm.BgLightBlue, pterm.FgBlack)
)

// DisableColor turns off all colored output.
func DisableColor() {
	pterm.DisableColor()
}

// displayICE displays an internal compiler error message.
func displayICE(message string) {
	fmt.Fprint(rep.out, ErrorStyleBG.Sprint("internal compiler error"))
	fmt.Fprintf(rep.out, " %s\n", message)
	fmt.Fprint(rep.out, "This error was not supposed to happen: please open an issue.\n\n")
}

// displayFatal displays a fatal error message.
func displayFatal(message string) {
	fmt.Fprint(rep.out, ErrorStyleBG.Sprint("fatal error"))
	fmt.Fprintf(rep.out, " %s\n\n", message)
}

// displayInfo displays an informational message.
func displayInfo(tag, message string) {
	fmt.Fprint(rep.out, InfoStyleBG.Sprint(tag))
	fmt.Fprintf(rep.out, " %s\n", message)
}

// displayWarning displays a warning outside of any source text.
func displayWarning(tag, message string) {
	fmt.Fprint(rep.out, WarnStyleBG.Sprint(tag))
	fmt.Fprintf(rep.out, " %s\n", message)
}

// displayCompileMessage displays a compilation error or warning.  The label is
// the string to prefix the message with: eg. if we want to display an error,
// the label is "error".
func displayCompileMessage(style *pterm.Style, label, reprPath, source string, cerr *CompileError) {
	fmt.Fprint(rep.out, style.Sprint(label))

	if cerr.Span == nil {
		fmt.Fprintf(rep.out, " %s: %s\n\n", reprPath, cerr.Message)
	} else {
		fmt.Fprintf(rep.out, " %s:%d:%d: %s\n", reprPath, cerr.Span.StartLine, cerr.Span.StartCol, cerr.Message)
		displaySourceText(source, cerr.Span)
	}
}

// displayStdError displays a standard Go error.
func displayStdError(reprPath string, err error) {
	fmt.Fprint(rep.out, ErrorStyleBG.Sprint("error"))
	fmt.Fprintf(rep.out, " %s: %s\n\n", reprPath, err)
}

// displayCompilationFinished displays the closing line of a check.
func displayCompilationFinished(reprPath string, errorCount, warningCount int) {
	if errorCount == 0 {
		fmt.Fprint(rep.out, SuccessStyleBG.Sprint("All done!"))
	} else {
		fmt.Fprint(rep.out, ErrorStyleBG.Sprint("Oh no!"))
	}

	fmt.Fprintf(
		rep.out,
		" %s: %s, %s\n",
		reprPath,
		ErrorColorFG.Sprint(pluralize(errorCount, "error")),
		WarnColorFG.Sprint(pluralize(warningCount, "warning")),
	)
}

// pluralize formats a count with its noun.
func pluralize(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}

	return strconv.Itoa(n) + " " + noun + "s"
}

// -----------------------------------------------------------------------------

// displaySourceText displays the first line of the span along with a line
// number and carets underlining the spanned text.
func displaySourceText(source string, span *TextSpan) {
	lines := strings.Split(source, "\n")
	if span.StartLine < 1 || span.StartLine > len(lines) {
		fmt.Fprintln(rep.out)
		return
	}

	// Tabs count as a single column in the lexer so they are displayed as a
	// single space to keep the carets aligned.
	line := strings.ReplaceAll(strings.TrimRight(lines[span.StartLine-1], "\r"), "\t", " ")

	lineNum := strconv.Itoa(span.StartLine)
	fmt.Fprintf(rep.out, "%s | %s\n", lineNum, line)

	caretStart := span.StartCol - 1
	if caretStart < 0 {
		caretStart = 0
	} else if caretStart > len(line) {
		caretStart = len(line)
	}

	// Multi-line spans are underlined until the end of the first line.
	caretEnd := len(line)
	if span.EndLine == span.StartLine && span.EndCol-1 < caretEnd {
		caretEnd = span.EndCol - 1
	}

	caretCount := caretEnd - caretStart
	if caretCount < 1 {
		caretCount = 1
	}

	fmt.Fprintf(
		rep.out,
		"%s | %s%s\n\n",
		strings.Repeat(" ", len(lineNum)),
		strings.Repeat(" ", caretStart),
		ErrorColorFG.Sprint(strings.Repeat("^", caretCount)),
	)
}

package cmd

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"atomc/common"
	"atomc/config"
	"atomc/depm"
	"atomc/report"
	"atomc/syntax"
)

// Compiler runs the front end over AtomC source files and reports the results.
type Compiler struct {
	conf *config.Config

	// debug prints the raw symbol table of each accepted file.
	debug bool

	// out is where symbol tables are written.
	out io.Writer
}

// NewCompiler creates a new compiler.  Reporting must already be initialized.
func NewCompiler(conf *config.Config, debug bool, out io.Writer) *Compiler {
	return &Compiler{
		conf:  conf,
		debug: debug,
		out:   out,
	}
}

// Check checks the file or every source file of the directory at path.  It
// returns whether every file was accepted.
func (c *Compiler) Check(path string) bool {
	files, err := collectSourceFiles(path)
	if err != nil {
		report.ReportStdError(path, err)
		return false
	}

	failures := 0
	for _, file := range files {
		if !c.CheckFile(file) {
			failures++

			if c.conf.MaxErrors > 0 && failures >= c.conf.MaxErrors {
				report.ReportInfo("stopping", fmt.Sprintf("%d files failed to check", failures))
				break
			}
		}
	}

	report.ReportCompilationFinished(path)
	return failures == 0
}

// CheckFile checks a single source file.  It returns whether the file was
// accepted.
func (c *Compiler) CheckFile(path string) bool {
	defer report.CatchErrors(path)

	buff, err := ioutil.ReadFile(path)
	if err != nil {
		report.ReportStdError(path, err)
		return false
	}

	src := string(buff)

	p, err := checkSource(src)
	if err != nil {
		if cerr, ok := report.AsCompileError(err); ok {
			report.ReportCompileError(path, src, cerr)
		} else {
			report.ReportStdError(path, err)
		}

		return false
	}

	ok := true
	for _, warning := range p.Warnings() {
		if c.conf.WarningsAsErrors {
			report.ReportCompileError(path, src, report.Raise(warning.Span, "%s", warning.Message))
			ok = false
		} else {
			report.ReportCompileWarning(path, src, warning)
		}
	}

	if !ok {
		return false
	}

	if c.conf.DumpSymbols {
		fmt.Fprintf(c.out, "%s:\n", path)
		if err := depm.Dump(c.out, p.Symbols(), false); err != nil {
			report.ReportStdError(path, err)
			return false
		}
	}

	if c.debug {
		fmt.Fprintln(c.out, depm.DebugString(p.Symbols()))
	}

	return true
}

// checkSource tokenizes and parses a whole unit.  The parser is returned even
// when parsing fails so callers can inspect why it failed.
func checkSource(src string) (*syntax.Parser, error) {
	toks, err := syntax.Tokenize(strings.NewReader(src))
	if err != nil {
		return nil, err
	}

	p := syntax.NewParser(toks)
	if _, err := p.Unit(); err != nil {
		return p, err
	}

	return p, nil
}

// collectSourceFiles returns path itself if it is a file or the source files
// directly inside it, in name order, if it is a directory.
func collectSourceFiles(path string) ([]string, error) {
	finfo, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	if !finfo.IsDir() {
		return []string{path}, nil
	}

	finfos, err := ioutil.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %s", err)
	}

	var files []string
	for _, finfo := range finfos {
		if !finfo.IsDir() && filepath.Ext(finfo.Name()) == common.SrcFileExtension {
			files = append(files, filepath.Join(path, finfo.Name()))
		}
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("directory contains no %s files", common.SrcFileExtension)
	}

	sort.Strings(files)
	return files, nil
}

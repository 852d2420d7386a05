package cmd

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"

	"atomc/common"
	"atomc/config"
	"atomc/report"
	"atomc/syntax"

	"github.com/ComedicChimera/olive"
)

// Execute runs the main `atomc` application.
func Execute() {
	// set up the argument parser and all its commands and arguments
	cli := olive.NewCLI("atomc", "atomc checks AtomC programs", true)
	cli.AddSelectorArg("loglevel", "ll", "the checker log level", false, []string{"silent", "error", "warn", "verbose"})
	cli.AddFlag("no-color", "nc", "disable colored output")

	checkCmd := cli.AddSubcommand("check", "check a source file or every source file in a directory", true)
	checkCmd.AddPrimaryArg("path", "the path to the file or directory to check", true)
	checkCmd.AddStringArg("config", "c", "the path to the config file", false)
	checkCmd.AddFlag("dump", "d", "print the global symbols of each accepted file")
	checkCmd.AddFlag("debug", "db", "print the raw symbol table of each accepted file")

	tokensCmd := cli.AddSubcommand("tokens", "print the tokens of a source file", true)
	tokensCmd.AddPrimaryArg("path", "the path to the file to tokenize", true)

	cli.AddSubcommand("repl", "start an interactive session", false)

	initCmd := cli.AddSubcommand("init", "create a default config file", true)
	initCmd.AddPrimaryArg("dir", "the directory to create the config file in", false)

	cli.AddSubcommand("version", "print the atomc version", false)

	// run the argument parser
	result, err := olive.ParseArgs(cli, os.Args)
	if err != nil {
		report.ReportFatal("CLI usage error: %s", err)
	}

	if result.HasFlag("no-color") {
		report.DisableColor()
	}

	logLevelName := ""
	if arg, ok := result.Arguments["loglevel"]; ok {
		logLevelName = arg.(string)
	}

	// process the inputted command line
	subcmdName, subResult, _ := result.Subcommand()
	switch subcmdName {
	case "check":
		if !execCheckCommand(subResult, logLevelName) {
			os.Exit(1)
		}
	case "tokens":
		initLogLevel(logLevelName, report.LogLevelVerbose)
		execTokensCommand(subResult)
	case "repl":
		initLogLevel(logLevelName, report.LogLevelVerbose)
		runREPL()
	case "init":
		initLogLevel(logLevelName, report.LogLevelVerbose)
		execInitCommand(subResult)
	case "version":
		initLogLevel(logLevelName, report.LogLevelVerbose)
		report.ReportInfo("atomc version", common.AtomCVersion)
	}
}

// initLogLevel initializes the reporter with the named log level or with
// fallback if no log level was named.
func initLogLevel(name string, fallback int) {
	if level, ok := report.LogLevelByName(name); ok {
		report.InitReporter(level)
	} else {
		report.InitReporter(fallback)
	}
}

// execCheckCommand executes the check subcommand.  It returns whether every
// checked file was accepted.
func execCheckCommand(result *olive.ArgParseResult, logLevelName string) bool {
	path, _ := result.PrimaryArg()

	// The config is loaded before the log level is known so any warnings it
	// produces are shown.
	initLogLevel(logLevelName, report.LogLevelVerbose)

	var conf *config.Config
	var err error
	if confPath, ok := result.Arguments["config"]; ok {
		conf, err = config.Load(confPath.(string))
	} else {
		conf, err = config.Find(configDir(path))
	}

	if err != nil {
		report.ReportFatal("failed to load config: %s", err)
	}

	initLogLevel(logLevelName, conf.ReporterLogLevel())

	if !conf.Color {
		report.DisableColor()
	}

	if result.HasFlag("dump") {
		conf.DumpSymbols = true
	}

	c := NewCompiler(conf, result.HasFlag("debug"), os.Stdout)
	return c.Check(path)
}

// configDir returns the directory searched for a config file when checking
// path.
func configDir(path string) string {
	if finfo, err := os.Stat(path); err == nil && finfo.IsDir() {
		return path
	}

	return filepath.Dir(path)
}

// execTokensCommand executes the tokens subcommand.
func execTokensCommand(result *olive.ArgParseResult) {
	path, _ := result.PrimaryArg()

	buff, err := ioutil.ReadFile(path)
	if err != nil {
		report.ReportFatal("failed to read %s: %s", path, err)
	}

	toks, err := syntax.Tokenize(bytes.NewReader(buff))
	if err != nil {
		if cerr, ok := report.AsCompileError(err); ok {
			report.ReportCompileError(path, string(buff), cerr)
		} else {
			report.ReportStdError(path, err)
		}

		return
	}

	if err := dumpTokens(os.Stdout, toks); err != nil {
		report.ReportStdError(path, err)
	}
}

// execInitCommand executes the init subcommand.
func execInitCommand(result *olive.ArgParseResult) {
	dir, ok := result.PrimaryArg()
	if !ok {
		dir = "."
	}

	path, err := config.Init(dir)
	if err != nil {
		report.ReportFatal("failed to create config file: %s", err)
	}

	report.ReportInfo("created", path)
}

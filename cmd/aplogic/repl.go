package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/google/shlex"

	"github.com/aplogic/manual/eval"
	"github.com/aplogic/manual/history"
	"github.com/aplogic/manual/hostconfig"
	"github.com/aplogic/manual/logic"
	"github.com/aplogic/manual/parser"
	"github.com/aplogic/manual/world"
)

// session holds the state one REPL invocation mutates: the currently
// held items and the session history, which is flushed to disk on
// "quit". This is deliberately minimal (no line editing, no history
// search, per SPEC_FULL.md's Non-goals for this companion CLI); it
// exists to give every core package a concrete caller.
type session struct {
	tables       *world.Tables
	yamlOptions  *hostconfig.YamlOptions
	currentItems map[string]int
	hist         history.History
	historyPath  string
}

func newSession(data world.Data, yamlOptions *hostconfig.YamlOptions, hist history.History, historyPath string) *session {
	tables := world.LoadWorld(data, parseErrorLogger{})
	return &session{
		tables:       tables,
		yamlOptions:  yamlOptions,
		currentItems: map[string]int{},
		hist:         hist,
		historyPath:  historyPath,
	}
}

// parseErrorLogger routes parse diagnostics to the log package rather
// than dropping them, matching the teacher's preference for logging
// over silent failure while keeping the sink optional for callers that
// don't care (spec.md §6).
type parseErrorLogger struct{}

func (parseErrorLogger) ReportParseError(err *parser.ParseError) {
	log.Printf("parse error: %v\n", err)
}

func (s *session) runREPL(in io.Reader, out io.Writer) {
	fmt.Fprintln(out, "aplogic REPL. Commands: hold <item>, unhold <item>, check <location>, opt <location>, quit")
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		args, err := shlex.Split(line)
		if err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
			continue
		}
		if len(args) == 0 {
			continue
		}

		if s.dispatch(args, out) {
			return
		}
	}
}

// dispatch executes one command and reports whether the REPL should
// exit.
func (s *session) dispatch(args []string, out io.Writer) bool {
	switch args[0] {
	case "quit", "exit":
		if err := s.hist.Save(s.historyPath); err != nil {
			fmt.Fprintf(out, "error saving history: %v\n", err)
		}
		return true

	case "hold":
		if len(args) < 2 {
			fmt.Fprintln(out, "usage: hold <item>")
			return false
		}
		s.currentItems[args[1]]++
		return false

	case "unhold":
		if len(args) < 2 {
			fmt.Fprintln(out, "usage: unhold <item>")
			return false
		}
		if s.currentItems[args[1]] > 0 {
			s.currentItems[args[1]]--
		}
		return false

	case "check":
		s.reportReachability(args[1:], out, false)
		return false

	case "opt":
		s.reportReachability(args[1:], out, true)
		return false

	default:
		fmt.Fprintf(out, "unknown command: %s\n", args[0])
		return false
	}
}

func (s *session) reportReachability(args []string, out io.Writer, opt bool) {
	if len(args) < 1 {
		fmt.Fprintln(out, "usage: check <location>")
		return
	}
	loc := strings.Join(args, " ")

	node, ok := s.tables.LocationsToLogic[loc]
	if !ok {
		fmt.Fprintf(out, "unknown location: %s\n", loc)
		return
	}

	e := eval.New(s.tables, s.yamlOptions.Options(), s.currentItems)
	var res logic.Node
	var sat bool
	if opt {
		res, sat = e.InspectOpt(node)
	} else {
		res, sat = e.Inspect(node)
	}

	if sat {
		fmt.Fprintln(out, "reachable")
		return
	}
	fmt.Fprintf(out, "not reachable: %s\n", logic.CanonicalString(res))
}

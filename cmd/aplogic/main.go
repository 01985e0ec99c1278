// Command aplogic is a small interactive front end over the logic
// engine, grounded on the teacher's main.go: the same -log flag shape,
// the same exitWithError pattern, logging to io.Discard unless a log
// file is named.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/aplogic/manual/history"
	"github.com/aplogic/manual/hostconfig"
)

var (
	worldDir = flag.String("world", "", "path to a Manual world's extracted data directory")
	yamlPath = flag.String("yaml", "", "path to the player's YAML settings file")
	logpath  = flag.String("log", "", "log to file")
)

func main() {
	flag.Usage = printUsage
	flag.Parse()

	log.SetFlags(log.Ltime | log.Lmicroseconds | log.Lshortfile)
	if *logpath != "" {
		logFile, err := os.Create(*logpath)
		if err != nil {
			exitWithError(err)
		}
		defer logFile.Close()
		log.SetOutput(logFile)
	} else {
		log.SetOutput(io.Discard)
	}

	if *worldDir == "" || *yamlPath == "" {
		printUsage()
		os.Exit(1)
	}

	if err := run(*worldDir, *yamlPath); err != nil {
		exitWithError(err)
	}
}

func run(worldDir, yamlPath string) error {
	log.Printf("loading world data from %q\n", worldDir)
	data, err := hostconfig.LoadWorldData(worldDir)
	if err != nil {
		return err
	}

	log.Printf("loading yaml settings from %q\n", yamlPath)
	yamlOptions, err := hostconfig.LoadYamlOptions(yamlPath)
	if err != nil {
		return err
	}

	historyPath, err := history.DefaultPath()
	if err != nil {
		return err
	}
	log.Printf("history path: %q\n", historyPath)
	hist, err := history.Load(historyPath)
	if err != nil {
		return err
	}

	session := newSession(data, yamlOptions, hist, historyPath)
	session.runREPL(os.Stdin, os.Stdout)
	return nil
}

func printUsage() {
	f := flag.CommandLine.Output()
	fmt.Fprintf(f, "Usage: %s -world <dir> -yaml <player.yaml> [-log <file>]\n", os.Args[0])
	flag.PrintDefaults()
}

func exitWithError(err error) {
	fmt.Fprintf(os.Stderr, "%v\n", err)
	os.Exit(1)
}

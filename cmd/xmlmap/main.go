// Package main provides the xmlmap CLI tool.
//
// Usage:
//
//	xmlmap <command> [arguments]
//
// Commands:
//
//	convert     Convert between XML and JSON, JSONC, YAML or TOML
//	help        Show help for a command
//	version     Show version information
package main

import (
	"fmt"
	"os"

	"github.com/test47-web/go-xmlmap/internal/cli"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "convert":
		if err := cli.Run(args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "help":
		if len(args) > 0 {
			printCommandHelp(args[0])
		} else {
			printUsage()
		}
	case "version":
		fmt.Printf("xmlmap version %s\n", version)
	case "-h", "--help":
		printUsage()
	case "-v", "--version":
		fmt.Printf("xmlmap version %s\n", version)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", cmd)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`xmlmap - Convert between XML documents and ordered JSON-like data

Usage:
  xmlmap <command> [arguments]

Commands:
  convert     Convert between XML and JSON, JSONC, YAML or TOML
  help        Show help for a command
  version     Show version information

Use "xmlmap help <command>" for more information about a command.`)
}

func printCommandHelp(cmd string) {
	switch cmd {
	case "convert":
		cli.PrintHelp()
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", cmd)
		os.Exit(1)
	}
}

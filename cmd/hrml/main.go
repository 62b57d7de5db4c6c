// Command hrml is the framework CLI: project scaffolding, the development
// and production servers, and project validation.
package main

import (
	"fmt"
	"log"
	"os"
)

const version = "0.1.0"

func printHelp() {
	fmt.Println("HRML - Minimal Web Framework v" + version)
	fmt.Println()
	fmt.Println("Usage: hrml <command> [options]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  new <name>          Create a new HRML project")
	fmt.Println("  dev [path]          Run development server (in-memory store)")
	fmt.Println("  serve [path]        Run production server")
	fmt.Println("  check [path]        Validate templates and configuration")
	fmt.Println("  version             Show version information")
	fmt.Println("  help                Show this help message")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  hrml new myapp              Create new project 'myapp'")
	fmt.Println("  hrml dev                    Start dev server in current directory")
	fmt.Println("  hrml serve ./myapp          Serve project from ./myapp")
	fmt.Println("  hrml check                  Validate current project")
}

func pathArg(args []string) string {
	if len(args) > 1 {
		return args[1]
	}
	return "."
}

func main() {
	log.SetFlags(0)
	args := os.Args[1:]
	if len(args) == 0 {
		printHelp()
		return
	}

	switch args[0] {
	case "help", "--help", "-h":
		printHelp()
	case "version", "--version", "-v":
		fmt.Println("HRML " + version)
	case "new":
		name := ""
		if len(args) > 1 {
			name = args[1]
		}
		if err := createProject(name); err != nil {
			log.Fatalf("Error creating project: %v", err)
		}
	case "dev":
		if err := runServer(pathArg(args), true); err != nil {
			log.Fatalf("Error: %v", err)
		}
	case "serve":
		if err := runServer(pathArg(args), false); err != nil {
			log.Fatalf("Error: %v", err)
		}
	case "check":
		if err := checkProject(pathArg(args)); err != nil {
			log.Fatalf("Validation failed: %v", err)
		}
		fmt.Println("Project is valid!")
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", args[0])
		printHelp()
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"os"
	"strings"

	"inkwell/cli"
)

const CliVersion = "1.0.0"

var exit = os.Exit

func main() {
	RealMain()
}

// RealMain is the testable entry point.
func RealMain() {
	if len(os.Args) < 2 {
		cli.PrintHelp()
		exit(1)
		return
	}

	cmd := strings.ToLower(os.Args[1])
	switch cmd {
	case "help":
		cli.PrintHelp()
	case "version":
		fmt.Printf("inkwell version %s\n", CliVersion)
	default:
		cli.HandleCommand(os.Args[1:])
	}
}

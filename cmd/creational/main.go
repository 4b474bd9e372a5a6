package main

import (
	"fmt"
	"os"

	"github.com/galaplate/creational/bootstrap"
	"github.com/galaplate/creational/console"
	"github.com/galaplate/creational/logger"
)

func main() {
	if err := bootstrap.Init(); err != nil {
		logger.Fatal("Failed to bootstrap application", map[string]any{"error": err.Error()})
	}

	kernel := console.NewKernel(os.Stdin, os.Stdout)
	if err := kernel.Run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}
}

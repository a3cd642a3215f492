package main

import (
	"log"
	"os"

	"github.com/katalvlaran/labyrinth/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		log.Printf("[APP] [FATAL] %v", err)
		os.Exit(1)
	}
}

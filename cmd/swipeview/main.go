package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kyaoi/swipeview/internal/app"
	"github.com/kyaoi/swipeview/internal/config"
	"github.com/kyaoi/swipeview/internal/log"
	"github.com/kyaoi/swipeview/internal/ui"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: swipeview <deck-directory> [filter]")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	ui.Init()

	target := filepath.Clean(os.Args[1])
	query := strings.Join(os.Args[2:], " ")
	if query != "" {
		err = app.RunFiltered(target, cfg, query)
	} else {
		err = app.Run(target, cfg)
	}
	if err != nil {
		log.Fatalln(err)
	}
}

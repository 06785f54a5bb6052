package main

import (
	"flag"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/SamiraSamrose/intelligent-board-games/internal/config"
	"github.com/SamiraSamrose/intelligent-board-games/internal/logger"
	"github.com/SamiraSamrose/intelligent-board-games/internal/ui"
)

func main() {
	configPath := flag.String("config", "config.yaml", "configuration file path")
	apiURL := flag.String("api", "", "API base URL override")
	wsURL := flag.String("ws", "", "WebSocket URL override")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}
	if *apiURL != "" {
		cfg.Server.APIBaseURL = *apiURL
	}
	if *wsURL != "" {
		cfg.Server.WebSocketURL = *wsURL
	}

	if err := logger.Init(); err != nil {
		log.Printf("file logging disabled: %v", err)
	}
	defer logger.Close()
	defer func() {
		if r := recover(); r != nil {
			logger.LogPanic(r)
			panic(r)
		}
	}()

	model := ui.NewAppModel(cfg)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatalf("client exited with error: %v", err)
	}
}

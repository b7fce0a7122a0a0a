package main

import (
	"os"
	"os/user"

	"github.com/tomz197/roids/internal/config"
	"github.com/tomz197/roids/internal/desktop"
	gameconfig "github.com/tomz197/roids/internal/loop/config"
	"github.com/tomz197/roids/internal/storage"
)

func main() {
	logger := config.NewLogger(os.Stderr, "desktop")

	username := "player"
	if u, err := user.Current(); err == nil {
		username = u.Username
	}
	scoreDir := config.ScoreDir()
	logger.Info("Starting", "score_dir", scoreDir, "user", username)

	game := desktop.New(desktop.Options{
		Game:   gameconfig.FromEnv(),
		Store:  storage.NewFileStore(scoreDir, username),
		Logger: logger,
		Mute:   config.GetEnv("ASTEROIDS_MUTE", "") != "",
	})
	if err := game.Run(); err != nil {
		logger.Fatal("Game failed", "err", err)
	}
}

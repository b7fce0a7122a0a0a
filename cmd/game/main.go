package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"os/user"
	"syscall"

	"golang.org/x/term"

	"github.com/tomz197/roids/internal/config"
	"github.com/tomz197/roids/internal/loop/client"
	gameconfig "github.com/tomz197/roids/internal/loop/config"
	"github.com/tomz197/roids/internal/storage"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	out, closeLog, err := config.LogOutput()
	if err != nil {
		return err
	}
	defer closeLog()
	logger := config.NewLogger(out, "game")

	username := "player"
	if u, err := user.Current(); err == nil {
		username = u.Username
	}

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("failed to enable raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c := client.NewClient(bufio.NewReader(os.Stdin), os.Stdout, client.Options{
		Username: username,
		Store:    storage.NewFileStore(config.ScoreDir(), username),
		Logger:   logger,
		Game:     gameconfig.FromEnv(),
	})
	if err := c.Run(ctx); err != nil {
		logger.Error("Game stopped", "err", err)
		return err
	}
	return nil
}

package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/spirilis/ircbot"
)

func main() {
	configPath := flag.String("config", "ircbot.yaml", "path to the bot configuration")
	flag.Parse()

	logger := hclog.New(&hclog.LoggerOptions{
		Name:  "ircbot",
		Level: hclog.Info,
	})

	cfg, err := loadConfig(*configPath)
	if err != nil {
		logger.Error("unable to load config", "error", err)
		os.Exit(1)
	}
	logger.SetLevel(hclog.LevelFromString(cfg.LogLevel))

	transport := &ircbot.TCPTransport{
		Timeout:      cfg.ConnectTimeout,
		WriteTimeout: 10 * time.Second,
	}

	cfg.Logger = hclogLogger{logger: logger.Named("bot")}
	bot := ircbot.NewBot(transport, cfg.Config)

	bot.AttachOnConnect(ircbot.EventHandlerFunc(func(b *ircbot.Bot) {
		logger.Info("connected", "server", cfg.Server, "port", cfg.Port)
	}))
	bot.AttachOnDisconnect(ircbot.EventHandlerFunc(func(b *ircbot.Bot) {
		logger.Warn("disconnected", "server", cfg.Server)
	}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	quit := make(chan struct{})
	if err := registerCommands(bot, cfg.Admins, func() { close(quit) }); err != nil {
		logger.Error("unable to register commands", "error", err)
		os.Exit(1)
	}

	runner := ircbot.NewRunner(bot, cfg.PollInterval)
	runner.Start(ctx)

	select {
	case <-ctx.Done():
		logger.Info("shutting down")
	case <-quit:
		logger.Info("quit requested")
	case <-runner.Dying():
	}

	if err := runner.Stop(); err != nil {
		logger.Error("runner failed", "error", err)
		os.Exit(1)
	}
}

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"ctchen222/tictactoe/internal/config"
	"ctchen222/tictactoe/internal/game"
	"ctchen222/tictactoe/internal/logger"
	"ctchen222/tictactoe/internal/play"
	"ctchen222/tictactoe/internal/telemetry"
	"ctchen222/tictactoe/pkg/proto"
)

func main() {
	asJSON := flag.Bool("json", false, "print the final game as JSON instead of a board")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [-json] [player:]row,col ...\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Initialize telemetry
	providers, err := telemetry.InitOtel(ctx, telemetry.Options{
		ServiceName:    cfg.ServiceName,
		ServiceVersion: cfg.ServiceVersion,
		Endpoint:       cfg.OTLPEndpoint,
	})
	if err != nil {
		log.Fatalf("failed to initialize telemetry: %v", err)
	}
	defer func() {
		if err := providers.Shutdown(context.Background()); err != nil {
			log.Printf("Error shutting down telemetry: %v", err)
		}
	}()

	slogger := logger.Init(cfg.LogLevel)

	g := game.New(game.Player(cfg.Player1), game.Player(cfg.Player2))
	session, err := play.NewSession(g, slogger)
	if err != nil {
		log.Fatalf("failed to create session: %v", err)
	}

	res, err := session.Run(ctx, play.NewArgsSource(flag.Args()))
	if err != nil {
		slogger.Error("game aborted", "error", err)
	}

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(proto.NewGameSnapshot(session.ID, g, res)); err != nil {
			log.Printf("failed to encode game: %v", err)
		}
		return
	}

	fmt.Print(g.String())
	if next, ok := g.NextTurn(); ok {
		fmt.Printf("%q moves next.\n", string(next))
		return
	}
	fmt.Println(res.String())
}

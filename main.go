package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"tictactoe/config"
	"tictactoe/console"
	"tictactoe/engine"
	"tictactoe/experiments"
	"tictactoe/game"
	"tictactoe/player"
	"tictactoe/searcher"
)

func main() {
	player1 := flag.String("player1", "human", "first player: human, minimax or random")
	player2 := flag.String("player2", "minimax", "second player: human, minimax or random")
	startingMark := flag.String("starting-mark", "cross", "mark that moves first: cross or naught")
	selfplay := flag.Int("selfplay", 0, "run this many self-play games instead of an interactive game")
	configPath := flag.String("config", "", "path to a yaml config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fatal(err)
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		fatal(fmt.Errorf("unknown log level %q", cfg.LogLevel))
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level)

	if *selfplay > 0 {
		runSelfPlay(*selfplay, cfg.ResultsDir)
		return
	}

	mark, err := parseMark(*startingMark)
	if err != nil {
		fatal(err)
	}
	runInteractive(*player1, *player2, mark)
}

func runSelfPlay(games int, resultsDir string) {
	result, err := experiments.SelfPlay(games, experiments.WithResultsDir(resultsDir))
	if err != nil {
		fatal(err)
	}

	summary := result.Summary
	fmt.Printf("Played %d games (%d searches).\n", len(result.GameRecords), summary.Searches)
	fmt.Printf("Nodes per search: mean %.1f, stddev %.1f\n", summary.MeanNodes, summary.StdDevNodes)
	fmt.Printf("Search duration: mean %s, stddev %s\n", summary.MeanDuration, summary.StdDevDuration)
	fmt.Printf("Records stored under %s\n", result.ResultsDir)
}

func runInteractive(kind1, kind2 string, startingMark game.Mark) {
	p1, err := makePlayer(kind1, game.Cross)
	if err != nil {
		fatal(err)
	}
	p2, err := makePlayer(kind2, game.Naught)
	if err != nil {
		fatal(err)
	}

	renderer := console.NewRenderer(os.Stdout, console.WithClearScreen())
	e, err := engine.New(p1, p2, renderer, engine.WithErrorHandler(func(err error) {
		fmt.Fprintln(os.Stderr, err)
	}))
	if err != nil {
		fatal(err)
	}

	if _, err := e.Run(startingMark); err != nil {
		fatal(err)
	}
}

func makePlayer(kind string, mark game.Mark) (player.Player, error) {
	switch kind {
	case "human":
		return console.NewHuman(mark, os.Stdin, os.Stdout), nil
	case "minimax":
		return player.NewSearch(mark, searcher.New()), nil
	case "random":
		return player.NewRandom(mark), nil
	default:
		return nil, fmt.Errorf("unknown player kind %q", kind)
	}
}

func parseMark(name string) (game.Mark, error) {
	switch name {
	case "cross":
		return game.Cross, nil
	case "naught":
		return game.Naught, nil
	default:
		return game.NoMark, fmt.Errorf("unknown starting mark %q", name)
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

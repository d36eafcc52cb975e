package main

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"wizard-game/internal/config"
	"wizard-game/internal/console"
	"wizard-game/internal/game"
	"wizard-game/internal/server"
	"wizard-game/internal/shared"
)

// computerNames seat the computer players, in order.
var computerNames = []string{"Merlin", "Oz", "Sarumon", "Gandalf", "Kvothe", "Morgana"}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "wizard: %v\n", err)
		os.Exit(2)
	}

	closeLog, err := setupLog(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "wizard: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	if err := run(cfg, os.Stdin, os.Stdout); err != nil {
		log.Printf("Match aborted: %v", err)
		fmt.Fprintf(os.Stderr, "wizard: %v\n", err)
		closeLog()
		os.Exit(1)
	}
}

func run(cfg config.Config, in io.Reader, out io.Writer) error {
	decider := console.NewDecider(in, out)
	renderer := console.NewRenderer(out)

	name := cfg.HumanName
	if name == "" && !cfg.Autoplay {
		fmt.Fprintln(out, "Welcome to Wizard!")
		var err error
		if name, err = decider.AskName(); err != nil {
			return err
		}
	}

	players := seatPlayers(name, cfg.Players, cfg.Autoplay)
	matchCfg := game.Config{
		Human:      decider,
		Rand:       game.NewRand(cfg.Seed),
		ThinkDelay: cfg.ThinkDelay,
		Observers:  []game.Observer{renderer.Observe},
	}

	var hub *server.Hub
	if cfg.WatchAddr != "" {
		hub = startSpectators(cfg.WatchAddr)
		matchCfg.Observers = append(matchCfg.Observers, hub.Publish)
	}

	match, err := game.NewMatch(players, matchCfg)
	if err != nil {
		return err
	}
	if _, err := match.Run(); err != nil {
		return err
	}

	if hub != nil {
		fmt.Fprintf(out, "Spectators can still watch on %s. Press Ctrl-C to quit.\n", cfg.WatchAddr)
		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
		<-stop
		hub.Close()
	}
	return nil
}

// seatPlayers returns the human (a computer in autoplay) followed by enough
// computers to fill n seats. Computer names never clash with the human's.
func seatPlayers(name string, n int, autoplay bool) []*shared.Player {
	operator := shared.Human
	if autoplay {
		operator = shared.Computer
	}
	if name == "" {
		name = "Player"
	}

	players := []*shared.Player{shared.NewPlayer(name, operator)}
	for _, cn := range computerNames {
		if len(players) == n {
			break
		}
		if cn == name {
			continue
		}
		players = append(players, shared.NewPlayer(cn, shared.Computer))
	}
	return players
}

// setupLog points the standard logger at the configured destination. The
// interactive table owns stdout and stderr, so its log is dropped by default.
func setupLog(cfg config.Config) (func(), error) {
	switch {
	case cfg.LogFile != "":
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("opening log file: %w", err)
		}
		log.SetOutput(f)
		return func() { f.Close() }, nil
	case cfg.Autoplay:
		log.SetOutput(os.Stderr)
	default:
		log.SetOutput(io.Discard)
	}
	return func() {}, nil
}

func startSpectators(addr string) *server.Hub {
	hub := server.NewHub()
	go hub.Run()

	mux := http.NewServeMux()
	server.HandleRoutes(mux, hub)

	go func() {
		log.Printf("Spectator feed listening on %s", addr)
		if err := http.ListenAndServe(addr, mux); err != nil {
			log.Printf("Spectator server stopped: %v", err)
		}
	}()
	return hub
}

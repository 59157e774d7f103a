package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/spacehole-rogue/supertrek/internal/config"
	"github.com/spacehole-rogue/supertrek/internal/console"
	"github.com/spacehole-rogue/supertrek/internal/game"
	"github.com/spacehole-rogue/supertrek/internal/render"
	"github.com/spacehole-rogue/supertrek/internal/render/term"
)

// defaultLogFile keeps log output off the terminal the game is drawn on.
const defaultLogFile = "supertrek.log"

const commsMax = 30

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "supertrek: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cfg.Logging.File == "" {
		cfg.Logging.File = defaultLogFile
	}
	closer, err := config.InitLogger(cfg.Logging)
	if err != nil {
		return err
	}
	defer closer.Close()

	rules, err := cfg.Rules()
	if err != nil {
		return fmt.Errorf("load rules: %w", err)
	}
	opts := []game.Option{game.WithRules(rules)}
	if cfg.Game.Seed != 0 {
		opts = append(opts, game.WithSeed(cfg.Game.Seed))
	}
	session := game.NewSession(opts...)
	slog.Info("session started", "component", "main", "session", session.ID, "seed", cfg.Game.Seed)

	s, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer s.Fini()
	s.SetStyle(term.Style(render.Cell{FG: render.ColorWhite, BG: render.ColorBlack}))

	loop(s, session, console.New(session))
	return nil
}

// loop redraws after every event until the player quits.
func loop(s tcell.Screen, session *game.Session, con *console.Console) {
	buf := render.NewCellBuffer(render.Cols, render.Rows)
	for {
		render.DrawScreen(buf, session, session.Log.Recent(commsMax), con.Input())
		s.Clear()
		term.Blit(s, buf)
		s.Show()

		switch ev := s.PollEvent().(type) {
		case *tcell.EventResize:
			s.Sync()
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEscape, tcell.KeyCtrlC:
				return
			case tcell.KeyEnter:
				con.Submit()
			case tcell.KeyBackspace, tcell.KeyBackspace2:
				con.Backspace()
			case tcell.KeyRune:
				con.Type(ev.Rune())
			}
		case nil:
			return
		}
	}
}

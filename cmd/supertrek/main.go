package main

import (
	"log"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/spacehole-rogue/supertrek/internal/config"
	"github.com/spacehole-rogue/supertrek/internal/console"
	"github.com/spacehole-rogue/supertrek/internal/game"
	"github.com/spacehole-rogue/supertrek/internal/render"
	"github.com/spacehole-rogue/supertrek/internal/render/window"
)

const (
	title    = "Super Star Trek"
	commsMax = 30
)

// Game is the Ebitengine game struct. It owns rendering and input.
// All gameplay state lives in session.
type Game struct {
	renderer *window.GridRenderer
	buffer   *render.CellBuffer
	session  *game.Session
	console  *console.Console
	chars    []rune
}

func NewGame(cfg *config.Config) *Game {
	rules, err := cfg.Rules()
	if err != nil {
		log.Fatalf("load rules: %v", err)
	}
	opts := []game.Option{game.WithRules(rules)}
	if cfg.Game.Seed != 0 {
		opts = append(opts, game.WithSeed(cfg.Game.Seed))
	}
	session := game.NewSession(opts...)
	slog.Info("session started", "component", "main", "session", session.ID, "seed", cfg.Game.Seed)

	cell := window.GlyphWidth * cfg.Display.Scale / 2
	g := &Game{
		renderer: window.NewGridRenderer(window.NewFontAtlas(), cell, cell),
		buffer:   render.NewCellBuffer(render.Cols, render.Rows),
		session:  session,
		console:  console.New(session),
	}
	g.drawScreen()
	return g
}

func (g *Game) drawScreen() {
	render.DrawScreen(g.buffer, g.session, g.session.Log.Recent(commsMax), g.console.Input())
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	g.chars = ebiten.AppendInputChars(g.chars[:0])
	for _, r := range g.chars {
		g.console.Type(r)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		g.console.Backspace()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter) {
		g.console.Submit()
	}

	g.drawScreen()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.buffer)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.renderer.ScreenSize(g.buffer)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	closer, err := config.InitLogger(cfg.Logging)
	if err != nil {
		log.Fatal(err)
	}
	defer closer.Close()

	g := NewGame(cfg)
	w, h := g.renderer.ScreenSize(g.buffer)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}

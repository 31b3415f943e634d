// Package ui runs a game on ebiten: it feeds input into the engine, drives the
// engine's timers from the frame loop and draws each frame from Engine.View.
package ui

import (
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/BaoChess/internal/common"
	"github.com/mitchelldurbincs/BaoChess/internal/config"
	"github.com/mitchelldurbincs/BaoChess/internal/game"
	"github.com/mitchelldurbincs/BaoChess/internal/game/states"
	"github.com/mitchelldurbincs/BaoChess/internal/ui/input"
	"github.com/mitchelldurbincs/BaoChess/internal/ui/renderer"
)

const (
	shakeFrames    = 12
	shakeAmplitude = 6
	confettiCount  = 120
)

// Options configure the window contents
type Options struct {
	TileSize        int
	Theme           renderer.Theme
	Fonts           renderer.Fonts
	ShowCoordinates bool
	Logger          zerolog.Logger

	// Now supplies frame time; nil means time.Now
	Now func() time.Time

	// Reloads delivers hot-reloaded config. It is drained on the UI thread.
	Reloads <-chan *config.Config
}

// UIGame holds the game engine instance and UI-specific state
type UIGame struct {
	engine  *game.Engine
	layout  renderer.Layout
	board   *renderer.BoardRenderer
	hud     *renderer.HUDRenderer
	effects *renderer.EffectRenderer
	input   *input.Handler
	logger  zerolog.Logger

	now     func() time.Time
	rng     *rand.Rand
	reloads <-chan *config.Config

	canvas   *ebiten.Image
	shake    renderer.Shake
	confetti *renderer.Confetti

	lastCaptures int
	lastGameID   string
	lastStatus   states.Status
}

// NewUIGame creates a new Ebitengine game instance.
func NewUIGame(engine *game.Engine, opts Options) *UIGame {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Fonts.Small == nil {
		opts.Fonts = renderer.DefaultFonts()
	}
	layout := renderer.NewLayout(opts.TileSize)
	logger := opts.Logger.With().Str("component", "ui").Logger()

	board := renderer.NewBoardRenderer(layout, opts.Theme, opts.Fonts, logger)
	board.SetShowCoordinates(opts.ShowCoordinates)

	v := engine.View()
	return &UIGame{
		engine:       engine,
		layout:       layout,
		board:        board,
		hud:          renderer.NewHUDRenderer(layout, opts.Fonts, board.Sprites()),
		effects:      renderer.NewEffectRenderer(layout),
		input:        input.NewHandler(layout),
		logger:       logger,
		now:          opts.Now,
		rng:          rand.New(rand.NewSource(opts.Now().UnixNano())),
		reloads:      opts.Reloads,
		lastCaptures: v.Captures,
		lastGameID:   v.GameID,
		lastStatus:   v.Status,
	}
}

// Update proceeds the game state.
func (g *UIGame) Update() error {
	g.drainReloads()
	for _, a := range g.input.Update() {
		g.Apply(a)
	}
	g.step(g.now())
	return nil
}

// Apply performs one player action against the engine
func (g *UIGame) Apply(a input.Action) {
	switch a.Kind {
	case input.ActionClickCell:
		out := g.engine.ClickCell(a.Cell)
		g.logger.Debug().
			Str("cell", a.Cell.String()).
			Str("result", out.Result.String()).
			Msg("Cell clicked")
	case input.ActionNewGame:
		if err := g.engine.NewGame(); err != nil {
			g.logger.Error().Err(err).Msg("Failed to start new game")
		}
	case input.ActionFlip:
		g.engine.ToggleOrientation()
	case input.ActionToggleAutoFlip:
		enabled := g.engine.ToggleAutoFlip()
		g.logger.Info().Bool("auto_flip", enabled).Msg("Auto-flip toggled")
	case input.ActionClearSelection:
		g.engine.ClearSelection()
	}
}

// step runs timers due by now, retires finished effects and starts the
// frame-level reactions to what changed
func (g *UIGame) step(now time.Time) {
	g.engine.Advance(now)

	v := g.engine.View()
	for _, id := range g.effects.Update(now, v.Effects) {
		g.engine.CompleteEffect(id)
	}

	if v.GameID != g.lastGameID {
		g.lastGameID = v.GameID
		g.lastCaptures = v.Captures
		g.lastStatus = v.Status
		g.confetti = nil
		return
	}
	if v.Captures > g.lastCaptures {
		g.shake.Trigger(shakeFrames, shakeAmplitude)
	}
	g.lastCaptures = v.Captures

	if !g.lastStatus.IsTerminal() && v.Status.IsTerminal() && v.StatusReason == states.ReasonCheckmate {
		g.confetti = renderer.NewConfetti(g.rng, confettiCount, g.layout.Width(), g.layout.Height())
	}
	g.lastStatus = v.Status

	if g.confetti != nil && !g.confetti.Step() {
		g.confetti = nil
	}
}

func (g *UIGame) drainReloads() {
	for {
		select {
		case c, ok := <-g.reloads:
			if !ok {
				g.reloads = nil
				return
			}
			g.ApplyConfig(c)
		default:
			return
		}
	}
}

// ApplyConfig pushes reloaded settings into the engine and renderers. The
// tile size and window only change on restart.
func (g *UIGame) ApplyConfig(c *config.Config) {
	g.engine.ApplySettings(game.Settings{
		StartingSeconds: c.Game.StartingSeconds,
		TickInterval:    c.Game.TickInterval(),
		FlipDelay:       c.Orientation.FlipDelay(),
	})
	if theme, err := ThemeFromConfig(c); err == nil {
		g.board.SetTheme(theme)
	} else {
		g.logger.Warn().Err(err).Msg("Keeping previous board colors")
	}
	g.board.SetShowCoordinates(c.Development.ShowCoordinates)
}

// ThemeFromConfig parses the configured square colors
func ThemeFromConfig(c *config.Config) (renderer.Theme, error) {
	light, err := common.ParseHexColor(c.Colors.Board.Light)
	if err != nil {
		return renderer.Theme{}, err
	}
	dark, err := common.ParseHexColor(c.Colors.Board.Dark)
	if err != nil {
		return renderer.Theme{}, err
	}
	return renderer.Theme{Light: light, Dark: dark}, nil
}

// Draw renders the game screen.
func (g *UIGame) Draw(screen *ebiten.Image) {
	if g.canvas == nil {
		g.canvas = ebiten.NewImage(g.layout.Width(), g.layout.Height())
	}
	g.canvas.Fill(common.BackgroundColor)

	v := g.engine.View()
	g.board.Draw(g.canvas, v)
	g.effects.Draw(g.canvas, g.now(), v.Effects)
	g.hud.Draw(g.canvas, v)
	g.hud.DrawGameOver(g.canvas, v)
	if g.confetti != nil {
		g.confetti.Draw(g.canvas)
	}

	dx, dy := g.shake.Next(g.rng)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(dx, dy)
	screen.Fill(common.BackgroundColor)
	screen.DrawImage(g.canvas, op)
}

// Layout defines the Ebitengine screen size.
func (g *UIGame) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.layout.Width(), g.layout.Height()
}

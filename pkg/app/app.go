// Package app wires the animation engine to a window and to the terminal
// tracer. Session runs the engine headless; App adds ebiten drawing,
// input, sound cues and config hot reload.
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"os"

	"github.com/gameblabla/Cannonballs/internal/audio"
	"github.com/gameblabla/Cannonballs/pkg/config"
	"github.com/gameblabla/Cannonballs/pkg/game"
	"github.com/gameblabla/Cannonballs/pkg/road"
	"github.com/gameblabla/Cannonballs/pkg/systems"
	"github.com/gameblabla/Cannonballs/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
	ebitenaudio "github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// SampleRate of the audio context
const SampleRate = 48000

// Config defines how the viewer starts.
type Config struct {
	// Verbose enables logging
	Verbose bool
	Session SessionConfig
	Moment  Moment
	// ConfigPath is the engine config file; files on disk are reloaded when
	// they change
	ConfigPath string
	// VoicePath is an optional .au sample played for the congratulations cue
	VoicePath string
	// Settings may be nil
	Settings *game.SettingsManager
}

// App plays one moment at a time in a window. It implements ebiten.Game.
type App struct {
	session  *Session
	render   *systems.RenderSystem
	audio    *game.AudioManager
	settings *game.SettingsManager
	watcher  *config.Watcher

	configPath string
	labels     bool

	pendingWindowSizeReset   bool
	windowSizeResetCountdown int
}

// NewApp creates the viewer and starts cfg.Moment.
//
// Call embedded.Init() first so the built-in config can be read.
func NewApp(cfg Config) (*App, error) {
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	audioManager := game.NewAudioManager(ebitenaudio.NewContext(SampleRate), cfg.Settings)
	if cfg.VoicePath != "" {
		if err := registerVoice(audioManager, cfg.VoicePath); err != nil {
			return nil, err
		}
	}

	sessionCfg := cfg.Session
	sessionCfg.Cues = audioManager
	session, err := NewSession(sessionCfg)
	if err != nil {
		return nil, err
	}
	if err := session.Restart(cfg.Moment); err != nil {
		return nil, err
	}

	a := &App{
		session:    session,
		render:     systems.NewRenderSystem(session.Order),
		audio:      audioManager,
		settings:   cfg.Settings,
		configPath: cfg.ConfigPath,
		labels:     true,
	}

	if cfg.ConfigPath != "" && cfg.ConfigPath != config.DefaultAnimSeqConfigPath {
		w, err := config.NewWatcher(cfg.ConfigPath)
		if err != nil {
			log.Printf("[App] Warning: config hot reload disabled: %v", err)
		} else {
			a.watcher = w
		}
	}

	log.Printf("[App] Viewer ready")
	return a, nil
}

func registerVoice(am *game.AudioManager, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open voice sample: %w", err)
	}
	defer f.Close()

	voice, err := audio.DecodeAU(f, SampleRate)
	if err != nil {
		return fmt.Errorf("failed to decode voice sample %s: %w", path, err)
	}
	return am.RegisterCue(types.CueVoiceCongrats, voice)
}

// Session returns the running session.
func (a *App) Session() *Session {
	return a.session
}

// Update runs one frame.
func (a *App) Update() error {
	a.pollConfig()

	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(systems.ScreenWidth*3, systems.ScreenHeight*3)
			a.pendingWindowSizeReset = false
		}
	}

	if err := a.handleKeys(); err != nil {
		return err
	}

	a.session.Step()
	a.audio.Update()
	return nil
}

// pollConfig applies config file changes without blocking.
func (a *App) pollConfig() {
	if a.watcher == nil {
		return
	}
	select {
	case path, ok := <-a.watcher.Events:
		if !ok {
			a.watcher = nil
			return
		}
		cfg, err := config.LoadAnimSeqConfig(path)
		if err != nil {
			log.Printf("[App] Keeping previous config: %v", err)
			return
		}
		a.session.SetConfig(cfg)
		log.Printf("[App] Reloaded %s", path)
	case err, ok := <-a.watcher.Errors:
		if ok {
			log.Printf("[App] Config watcher error: %v", err)
		}
	default:
	}
}

func (a *App) handleKeys() error {
	restart := func(m Moment) error {
		if err := a.session.Restart(m); err != nil {
			return fmt.Errorf("failed to restart: %w", err)
		}
		return nil
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		return restart(a.session.Moment())
	case inpututil.IsKeyJustPressed(ebiten.Key1):
		return restart(MomentFlag)
	case inpututil.IsKeyJustPressed(ebiten.Key2):
		return restart(MomentIntro)
	case inpututil.IsKeyJustPressed(ebiten.Key3):
		return restart(MomentEnd)
	case inpututil.IsKeyJustPressed(ebiten.KeyV):
		variant := (a.session.Variant() + 1) % types.EndSeqVariants
		a.session.SetVariant(variant)
		if a.settings != nil {
			a.settings.SetEndSeqVariant(variant)
		}
		return restart(MomentEnd)
	case inpututil.IsKeyJustPressed(ebiten.KeyM):
		mode := types.ModeEnhanced
		if a.session.State.Mode == types.ModeEnhanced {
			mode = types.ModeOriginal
		}
		a.session.SetMode(mode)
		if a.settings != nil {
			a.settings.SetOperatingMode(mode)
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		view := road.ViewInCar
		if a.session.Road.InCarView() {
			view = road.ViewNormal
		}
		a.session.Road.SetView(view)
	case inpututil.IsKeyJustPressed(ebiten.KeyL):
		a.labels = !a.labels
		a.render.SetShowLabels(a.labels)
	case inpututil.IsKeyJustPressed(ebiten.KeyF11):
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
		} else {
			ebiten.SetFullscreen(true)
		}
	}
	return nil
}

var (
	skyColor    = color.RGBA{R: 0x58, G: 0x98, B: 0xF0, A: 0xFF}
	groundColor = color.RGBA{R: 0xD8, G: 0xC8, B: 0x90, A: 0xFF}
	roadColor   = color.RGBA{R: 0x70, G: 0x70, B: 0x70, A: 0xFF}
)

// Draw renders the road, the ordered sprites and the status line.
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(skyColor)
	vector.DrawFilledRect(screen, 0, roadHorizon, systems.ScreenWidth, systems.ScreenHeight-roadHorizon, groundColor, false)
	// road edges widen towards the camera
	for y := float32(roadHorizon); y < systems.ScreenHeight; y += 4 {
		half := (y - roadHorizon) * 1.2
		vector.DrawFilledRect(screen, systems.ScreenWidth/2-half, y, half*2, 4, roadColor, false)
	}

	a.render.Draw(screen)

	ebitenutil.DebugPrintAt(screen, a.session.Status(), 2, 2)
	ebitenutil.DebugPrintAt(screen, "1/2/3 moment  R restart  V variant  M mode  C view", 2, systems.ScreenHeight-16)
}

// DrawFinalScreen letterboxes the scaled screen in black.
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	screen.DrawImage(offscreen, op)
}

// Layout returns the arcade screen size.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return systems.ScreenWidth, systems.ScreenHeight
}

// Close stops the watcher and saves the settings.
func (a *App) Close() error {
	if a.watcher != nil {
		a.watcher.Close()
	}
	if a.settings != nil {
		if err := a.settings.Save(); err != nil {
			return fmt.Errorf("failed to save settings: %w", err)
		}
	}
	return nil
}

// Command animseq_trace runs the animation engine in a terminal and shows
// every actor's playback state as it changes.
//
// Usage:
//
//	go run ./cmd/animseq_trace [flags]
//
// Flags:
//
//	-moment <name>   flag, intro or end (default: end)
//	-variant <n>     end sequence 0-4 (default: 0)
//	-mode <name>     original or enhanced (default: original)
//	-fps <n>         display frames per second (default: 60)
//
// Controls:
//
//	Space    pause / resume
//	.        step one frame while paused
//	1/2/3    play flag / intro / end
//	v        next end sequence variant
//	r        restart
//	q, Esc   quit
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/gameblabla/Cannonballs/internal/rom/romtest"
	"github.com/gameblabla/Cannonballs/pkg/app"
	"github.com/gameblabla/Cannonballs/pkg/types"
	"github.com/gdamore/tcell/v2"
)

var (
	momentFlag  = flag.String("moment", "end", "Moment to play: flag, intro or end")
	variantFlag = flag.Int("variant", 0, "End sequence variant 0-4")
	modeFlag    = flag.String("mode", "original", "Operating mode: original or enhanced")
	fpsFlag     = flag.Int("fps", 60, "Display frames per second")
)

var (
	styleTitle   = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleEnabled = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleIdle    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleHelp    = tcell.StyleDefault.Foreground(tcell.ColorBlue)
)

// Tracer draws a session into a terminal screen.
type Tracer struct {
	screen  tcell.Screen
	session *app.Session
	paused  bool
}

func newTracer(session *app.Session) (*Tracer, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to init screen: %w", err)
	}
	return &Tracer{screen: screen, session: session}, nil
}

func (tr *Tracer) print(x, y int, style tcell.Style, text string) {
	for i, r := range text {
		tr.screen.SetContent(x+i, y, r, nil, style)
	}
}

func (tr *Tracer) draw() {
	tr.screen.Clear()
	s := tr.session

	status := s.Status()
	if tr.paused {
		status += "  [paused]"
	}
	tr.print(0, 0, styleTitle, status)

	for i, info := range s.Actors() {
		style := styleIdle
		if info.Actor.Sprite.Enabled() {
			style = styleEnabled
		}
		tr.print(0, i+2, style, app.FormatActor(info))
	}

	_, h := tr.screen.Size()
	tr.print(0, h-1, styleHelp, "space pause  . step  1/2/3 moment  v variant  r restart  q quit")
	tr.screen.Show()
}

// handleKey returns false when the tracer should exit.
func (tr *Tracer) handleKey(ev *tcell.EventKey) (bool, error) {
	if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
		return false, nil
	}
	if ev.Key() != tcell.KeyRune {
		return true, nil
	}

	s := tr.session
	switch ev.Rune() {
	case 'q':
		return false, nil
	case ' ':
		tr.paused = !tr.paused
	case '.':
		if tr.paused {
			s.Step()
		}
	case '1':
		return true, s.Restart(app.MomentFlag)
	case '2':
		return true, s.Restart(app.MomentIntro)
	case '3':
		return true, s.Restart(app.MomentEnd)
	case 'v':
		s.SetVariant((s.Variant() + 1) % types.EndSeqVariants)
		return true, s.Restart(app.MomentEnd)
	case 'r':
		return true, s.Restart(s.Moment())
	}
	return true, nil
}

func (tr *Tracer) run() error {
	ticker := time.NewTicker(time.Second / time.Duration(*fpsFlag))
	defer ticker.Stop()

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			events <- tr.screen.PollEvent()
		}
	}()

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				cont, err := tr.handleKey(ev)
				if err != nil {
					return err
				}
				if !cont {
					return nil
				}
			case *tcell.EventResize:
				tr.screen.Sync()
			}
		case <-ticker.C:
			if !tr.paused && !tr.session.Done() {
				tr.session.Step()
			}
		}
		tr.draw()
	}
}

func main() {
	flag.Parse()
	// the engine logs would scroll the terminal
	log.SetOutput(io.Discard)

	moment, err := app.ParseMoment(*momentFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if *fpsFlag <= 0 {
		*fpsFlag = 60
	}

	image, addr := romtest.BuildDemo()
	session, err := app.NewSession(app.SessionConfig{
		ROM:         image,
		Addresses:   addr,
		Mode:        types.ParseOperatingMode(*modeFlag),
		Variant:     *variantFlag,
		ScrollSpeed: 1,
	})
	if err == nil {
		err = session.Restart(moment)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	tracer, err := newTracer(session)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	err = tracer.run()
	tracer.screen.Fini()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

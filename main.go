// Command Cannonballs plays the OutRun animation sequences in a window: the
// flag waving marshal, the intro drive-in and the five end sequences.
//
// Usage:
//
//	go run . [flags]
//
// Flags:
//
//	-rom <file>       program data image (default: built-in demo image)
//	-addr <file>      address map YAML for -rom
//	-config <file>    engine config (default: data/animseq.yaml, built in)
//	-moment <name>    flag, intro or end (default: end)
//	-variant <n>      end sequence 0-4 (default: saved setting)
//	-mode <name>      original or enhanced (default: saved setting)
//	-voice <file>     .au sample for the congratulations cue
//	-speed <n>        scroll speed column of the zoom table (default: 1)
//	-verbose          enable logging
package main

import (
	"flag"
	"log"

	"github.com/gameblabla/Cannonballs/internal/rom"
	"github.com/gameblabla/Cannonballs/internal/rom/romtest"
	"github.com/gameblabla/Cannonballs/pkg/app"
	"github.com/gameblabla/Cannonballs/pkg/config"
	"github.com/gameblabla/Cannonballs/pkg/embedded"
	"github.com/gameblabla/Cannonballs/pkg/game"
	"github.com/gameblabla/Cannonballs/pkg/systems"
	"github.com/gameblabla/Cannonballs/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata/v2"
)

var (
	romFlag     = flag.String("rom", "", "Program data image (default: built-in demo image)")
	addrFlag    = flag.String("addr", "", "Address map YAML for -rom")
	configFlag  = flag.String("config", config.DefaultAnimSeqConfigPath, "Engine config file")
	momentFlag  = flag.String("moment", "end", "Moment to play: flag, intro or end")
	variantFlag = flag.Int("variant", -1, "End sequence variant 0-4 (default: saved setting)")
	modeFlag    = flag.String("mode", "", "Operating mode: original or enhanced (default: saved setting)")
	voiceFlag   = flag.String("voice", "", ".au sample for the congratulations cue")
	speedFlag   = flag.Uint("speed", 1, "Scroll speed column of the zoom table")
	verboseFlag = flag.Bool("verbose", false, "Enable verbose logging")
)

func main() {
	flag.Parse()

	embedded.Init(dataFS)

	moment, err := app.ParseMoment(*momentFlag)
	if err != nil {
		log.Fatal(err)
	}

	engineCfg, err := config.LoadAnimSeqConfig(*configFlag)
	if err != nil {
		log.Fatal(err)
	}

	image, addr, err := loadImage(*romFlag, *addrFlag)
	if err != nil {
		log.Fatal(err)
	}

	settings := openSettings()
	mode := settings.OperatingMode()
	if *modeFlag != "" {
		mode = types.ParseOperatingMode(*modeFlag)
		settings.SetOperatingMode(mode)
	}
	variant := settings.GetSettings().EndSeqVariant
	if *variantFlag >= 0 {
		variant = *variantFlag
		settings.SetEndSeqVariant(variant)
	}

	viewer, err := app.NewApp(app.Config{
		Verbose: *verboseFlag,
		Session: app.SessionConfig{
			ROM:         image,
			Addresses:   addr,
			Engine:      engineCfg,
			Mode:        mode,
			Variant:     variant,
			ScrollSpeed: uint32(*speedFlag),
		},
		Moment:     moment,
		ConfigPath: *configFlag,
		VoicePath:  *voiceFlag,
		Settings:   settings,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer func() {
		if err := viewer.Close(); err != nil {
			log.Printf("[Main] %v", err)
		}
	}()

	ebiten.SetWindowSize(systems.ScreenWidth*3, systems.ScreenHeight*3)
	ebiten.SetWindowTitle("Cannonballs - animation sequences")

	if err := ebiten.RunGame(viewer); err != nil {
		log.Printf("[Main] %v", err)
	}
}

// loadImage loads the program data image and its address map, or builds
// the demo image when no file is given.
func loadImage(romPath, addrPath string) (*rom.ROM, *config.AddressMap, error) {
	if romPath == "" {
		image, addr := romtest.BuildDemo()
		return image, addr, nil
	}

	image, err := rom.Load(romPath)
	if err != nil {
		return nil, nil, err
	}
	addr, err := config.LoadAddressMap(addrPath)
	if err != nil {
		return nil, nil, err
	}
	if err := addr.Validate(uint32(image.Size())); err != nil {
		return nil, nil, err
	}
	return image, addr, nil
}

// openSettings opens persistent settings, falling back to in-memory ones.
func openSettings() *game.SettingsManager {
	manager, err := gdata.Open(gdata.Config{AppName: "cannonballs_animseq"})
	if err != nil {
		log.Printf("[Main] Warning: settings storage unavailable: %v", err)
		manager = nil
	}
	settings, _ := game.NewSettingsManager(manager)
	return settings
}

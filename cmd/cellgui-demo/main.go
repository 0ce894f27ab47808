package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/lixenwraith/cellgui/audio"
	"github.com/lixenwraith/cellgui/terminal"
	"github.com/lixenwraith/cellgui/terminal/tui"
)

var (
	debugFlag       = flag.Bool("debug", false, "Write logs to logs/cellgui.log")
	monoFlag        = flag.Bool("mono", false, "Disable colors")
	mouseFlag       = flag.Bool("mouse", true, "Enable mouse reporting")
	bellFlag        = flag.Bool("bell", false, "Play alert tones for error and info dialogs")
	escapeDelayFlag = flag.Duration("escape-delay", tui.DefaultConfig().EscapeDelay, "Wait after Escape for an Alt chord")
)

func main() {
	// Restore the terminal even if a handler panics
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mCELLGUI CRASHED: %v\x1b[0m\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	cfg := tui.DefaultConfig()
	cfg.DisableColor = *monoFlag
	cfg.Mouse = *mouseFlag
	cfg.Bell = *bellFlag
	cfg.EscapeDelay = *escapeDelayFlag

	drv, err := terminal.NewScreenDriver()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cellgui: %v\n", err)
		os.Exit(1)
	}
	drv.EnableMouse(cfg.Mouse)

	var opts []tui.Option
	if cfg.Bell {
		player := audio.NewPlayer(audio.LoadConfig())
		if err := player.Initialize(); err != nil {
			// terminal bell still works
			log.Printf("Audio initialization failed: %v", err)
		} else {
			defer player.Cleanup()
			opts = append(opts, tui.WithAlerts(player))
		}
	}

	app := tui.New(drv, cfg, opts...)
	d := newDemo(app)
	defer d.close()

	if err := app.Run(app.Root()); err != nil {
		fmt.Fprintf(os.Stderr, "cellgui: %v\n", err)
		os.Exit(1)
	}
}

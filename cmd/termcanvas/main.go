package main

import (
	"fmt"
	"log"
	"os"

	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/lixenwraith/termcanvas/config"
	"github.com/lixenwraith/termcanvas/engine"
	"github.com/lixenwraith/termcanvas/terminal"
)

var (
	cli = kingpin.New("termcanvas", "Terminal rendering engine demos")

	configPath = cli.Flag("config", "YAML config file").Short('c').ExistingFile()
	fps        = cli.Flag("fps", "Target frames per second").Short('f').Float64()
	cellWidth  = cli.Flag("cell-width", "Terminal columns per logical cell").Short('w').Uint()
	backend    = cli.Flag("backend", "Output backend").Short('b').Enum(config.BackendANSI, config.BackendTcell)
	showCursor = cli.Flag("show-cursor", "Keep the terminal cursor visible").Bool()
	debug      = cli.Flag("debug", "Write logs to "+logDir+"/"+logFileName).Short('d').Bool()

	shapesCmd   = cli.Command("shapes", "Rotating and translating polygons").Default()
	gradientCmd = cli.Command("gradient", "Per-cell color animation on an entity store")

	gifCmd       = cli.Command("gif", "Play an animated GIF")
	gifFile      = gifCmd.Arg("file", "GIF file").Required().ExistingFile()
	gifGrayscale = gifCmd.Flag("grayscale", "Render as ASCII density ramp").Short('g').Bool()

	grayCmd  = cli.Command("grayscale", "Show an image as tinted ASCII art")
	grayFile = grayCmd.Arg("file", "PNG, JPEG or GIF file").Required().ExistingFile()
)

func main() {
	cli.Version("0.1.0")
	cli.HelpFlag.Short('h')
	cmd := kingpin.MustParse(cli.Parse(os.Args[1:]))

	logFile := setupLogging(*debug)
	if logFile != nil {
		defer logFile.Close()
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "termcanvas: %v\n", err)
		os.Exit(2)
	}

	var app engine.Application
	switch cmd {
	case shapesCmd.FullCommand():
		app = newShapesApp()
	case gradientCmd.FullCommand():
		app = newGradientApp()
	case gifCmd.FullCommand():
		app, err = newGIFApp(*gifFile, *gifGrayscale)
	case grayCmd.FullCommand():
		app, err = newGrayscaleApp(*grayFile)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "termcanvas: %v\n", err)
		os.Exit(2)
	}

	b, err := newBackend(cfg.Backend)
	if err != nil {
		fmt.Fprintf(os.Stderr, "termcanvas: %v\n", err)
		os.Exit(1)
	}

	if err := engine.Run(cfg, b, app); err != nil {
		log.Printf("run failed: %v", err)
		fmt.Fprintf(os.Stderr, "termcanvas: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig layers the config file, if any, under explicit command line flags
func loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
		log.Printf("config loaded from %s", *configPath)
	}

	if *fps > 0 {
		cfg.WithFPS(*fps)
	}
	if *cellWidth > 0 {
		cfg.WithCellWidth(*cellWidth)
	}
	if *backend != "" {
		cfg.WithBackend(*backend)
	}
	if *showCursor {
		cfg.WithHideCursor(false)
	}
	cfg.Debug = *debug

	return cfg, cfg.Validate()
}

func newBackend(name string) (terminal.Backend, error) {
	if name == config.BackendTcell {
		return terminal.NewTcellBackend()
	}
	return terminal.NewUnixBackend(), nil
}

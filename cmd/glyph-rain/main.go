package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/glyph-rain/audio"
	"github.com/lixenwraith/glyph-rain/config"
	"github.com/lixenwraith/glyph-rain/content"
	"github.com/lixenwraith/glyph-rain/engine"
	"github.com/lixenwraith/glyph-rain/journal"
	"github.com/lixenwraith/glyph-rain/render"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg, err := config.Load("glyph-rain", args, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		return 1
	}

	logFile := setupLogging(cfg.Debug)
	if logFile != nil {
		defer logFile.Close()
	}

	dict, err := content.LoadDictionary(cfg.DictPath, cfg.MinLen, cfg.MaxLen)
	if err != nil {
		switch {
		case errors.Is(err, content.ErrDictionaryMissing):
			fmt.Fprintf(os.Stderr, "Dictionary file %q not found\n", cfg.DictPath)
		case errors.Is(err, content.ErrDictionaryEmpty):
			fmt.Fprintf(os.Stderr, "Dictionary %q has no words of %d-%d characters\n", cfg.DictPath, cfg.MinLen, cfg.MaxLen)
		default:
			fmt.Fprintf(os.Stderr, "Failed to load dictionary: %v\n", err)
		}
		return 1
	}

	sink, err := openJournal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open journal: %v\n", err)
		return 1
	}
	defer func() {
		if err := sink.Close(); err != nil {
			log.Printf("Journal close failed: %v", err)
		}
	}()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		return 1
	}
	screen.SetStyle(render.StyleFor(render.ColorDefault, false))

	// Panic Recovery: restore the terminal before printing the crash
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mGLYPH-RAIN CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	surface := render.NewTerminalRenderer(screen)
	defer surface.Fini()

	audioCfg := audio.DefaultAudioConfig()
	audioCfg.Muted = cfg.Mute
	sounds := audio.NewSoundManager(audioCfg, surface.Beep)
	if err := sounds.Initialize(); err != nil {
		log.Printf("Audio initialization failed: %v (falling back to terminal bell)", err)
	}
	defer sounds.Cleanup()

	seed := cfg.Seed
	if seed == 0 {
		if seed, err = engine.NewSeed(); err != nil {
			log.Printf("Seed generation failed: %v", err)
		}
	}
	log.Printf("Session start: words=%d target=%d seed=%d", len(dict.Words), cfg.Target, seed)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	scheduler := engine.NewScheduler(cfg.ToEngine(dict.Words), surface,
		engine.WithRand(engine.NewRand(seed)),
		engine.WithJournal(sink),
		engine.WithAlerter(sounds),
	)
	res := scheduler.Run(ctx)
	stop()

	log.Printf("Session end: found=%d frames=%d elapsed=%v", len(res.Found), res.Frames, res.Elapsed)
	return 0
}

// openJournal opens the append-only log file and, when configured, the SQLite journal
func openJournal(cfg config.Config) (journal.Sink, error) {
	file, err := journal.OpenFile(cfg.LogPath)
	if err != nil {
		return nil, err
	}
	if cfg.JournalDB == "" {
		return file, nil
	}

	db, err := journal.OpenSQLite(cfg.JournalDB)
	if err != nil {
		file.Close()
		return nil, err
	}
	return journal.MultiSink{file, db}, nil
}

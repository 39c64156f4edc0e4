package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/orbitalquark/rubyedit/internal/buffer"
	"github.com/orbitalquark/rubyedit/internal/config"
	"github.com/orbitalquark/rubyedit/internal/ctags"
	"github.com/orbitalquark/rubyedit/internal/server"
	"github.com/orbitalquark/rubyedit/internal/snippets"
	"github.com/orbitalquark/rubyedit/internal/watcher"
)

func main() {
	var (
		configPath string
		logFile    string
		debug      bool
		tagsFlag   string
	)

	flag.StringVar(&configPath, "config", ".", "Directory containing rubyedit.env")
	flag.StringVar(&logFile, "log", "", "Log file path (defaults to stderr)")
	flag.BoolVar(&debug, "debug", false, "Enable debug logging")
	flag.StringVar(&tagsFlag, "tags", "", "Comma-separated tags files (overrides config)")
	flag.Parse()

	// Setup logging
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			log.Fatalf("failed to open log file: %v", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	if debug {
		log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds | log.Lshortfile)
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if tagsFlag != "" {
		cfg.TagsFiles = tagsFlag
	}

	eol, err := buffer.ParseEOLMode(cfg.EOLMode)
	if err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	log.Printf("rubyedit starting, tab_width=%d eol=%s", cfg.TabWidth, eol)

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Println("shutdown signal received")
		cancel()
	}()

	// Snippet library, with user overrides when configured
	snips := snippets.New()
	if cfg.SnippetDir != "" {
		if err := snips.LoadDir(cfg.SnippetDir); err != nil {
			log.Printf("failed to load snippet dir %s: %v", cfg.SnippetDir, err)
		}
	}

	// Load the tags files and keep them current
	tags := ctags.New()
	tagsFiles := cfg.TagsList()
	if len(tagsFiles) > 0 {
		if err := tags.Load(ctx, tagsFiles); err != nil {
			log.Fatalf("failed to load tags: %v", err)
		}

		w, err := watcher.New(tagsFiles, func(changed, removed []string) {
			for _, path := range removed {
				tags.Remove(path)
			}
			for _, path := range changed {
				if err := tags.Reload(path); err != nil {
					log.Printf("failed to reload tags file %s: %v", path, err)
				}
			}
		})
		if err != nil {
			log.Fatalf("failed to create watcher: %v", err)
		}
		defer w.Close()

		if err := w.Start(); err != nil {
			log.Fatalf("failed to start watcher: %v", err)
		}
	}

	// Serve on stdio
	docs := server.NewDocumentStore(cfg.TabWidth, eol)
	srv := server.New(docs, tags, snips)
	if err := srv.Serve(ctx, os.Stdin, os.Stdout); err != nil {
		log.Fatalf("server error: %v", err)
	}

	log.Println("rubyedit shutdown complete")
}

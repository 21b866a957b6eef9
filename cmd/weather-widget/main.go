package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"

	"github.com/i474232898/weather-search/internal/client"
	"github.com/i474232898/weather-search/internal/config"
	"github.com/i474232898/weather-search/internal/prefs"
	"github.com/i474232898/weather-search/internal/widget"
)

func main() {
	cfg, err := config.LoadWidget()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	apiURL := flag.String("api", cfg.APIURL, "Base URL of the weather-search backend")
	dbPath := flag.String("db", cfg.DBPath, "Path of the local storage database")
	htmlPath := flag.String("html", "", "Also write every rendered state as HTML to this file")
	flag.Parse()

	storage, err := prefs.NewSQLite(*dbPath)
	if err != nil {
		log.Fatalf("failed to open local storage: %v", err)
	}
	defer storage.Close()

	api := client.New(*apiURL, nil)
	worker := widget.NewHeartbeatWorker(api, cfg.HeartbeatInterval)
	defer worker.Stop()

	ctrl := widget.NewController(api, storage,
		widget.WithRegistrar(worker),
		widget.WithObserver(func(s widget.State) {
			if err := widget.RenderText(os.Stdout, s); err != nil {
				log.Printf("render failed: %v", err)
			}
			if *htmlPath != "" {
				writeHTML(*htmlPath, s)
			}
		}),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ctrl.Initialize(ctx)
	// A typed line replaces the input field. /last submits the field as is,
	// which after startup holds the restored last search.
	fmt.Println("Enter a city name and press Enter (/last repeats the last search, /quit exits).")

	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()

	var wg sync.WaitGroup
	defer wg.Wait()

	for {
		select {
		case <-ctx.Done():
			return
		case line, ok := <-lines:
			if !ok || strings.TrimSpace(line) == "/quit" {
				stop()
				return
			}
			// Searches run in the background so a new city can be typed meanwhile.
			wg.Add(1)
			go func() {
				defer wg.Done()
				var err error
				if strings.TrimSpace(line) == "/last" {
					err = ctrl.Resubmit(ctx)
				} else {
					err = ctrl.ExecuteSearch(ctx, line)
				}
				if errors.Is(err, widget.ErrSuperseded) {
					return
				}
				var reqErr *widget.RequestError
				if errors.As(err, &reqErr) {
					log.Printf("search for %q failed: %v", strings.TrimSpace(line), reqErr.Err)
				}
			}()
		}
	}
}

func writeHTML(path string, s widget.State) {
	f, err := os.Create(path)
	if err != nil {
		log.Printf("html snapshot: %v", err)
		return
	}
	defer f.Close()

	if err := widget.RenderHTML(f, s); err != nil {
		log.Printf("html snapshot: %v", err)
	}
}

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/tradewatch/alibaba-scraper/internal/browser"
	"github.com/tradewatch/alibaba-scraper/internal/config"
	"github.com/tradewatch/alibaba-scraper/internal/export"
	"github.com/tradewatch/alibaba-scraper/internal/models"
	"github.com/tradewatch/alibaba-scraper/internal/queue"
	"github.com/tradewatch/alibaba-scraper/internal/ratelimit"
	"github.com/tradewatch/alibaba-scraper/internal/scraper"
	"github.com/tradewatch/alibaba-scraper/internal/selectors"
	"github.com/tradewatch/alibaba-scraper/pkg/logger"
)

func main() {
	var (
		queries      = flag.String("query", "", "Comma-separated list of text search queries")
		images       = flag.String("image", "", "Comma-separated list of image file paths to search by")
		inputFile    = flag.String("file", "", "File containing queries, one per line (prefix a line with image: for image search)")
		selectorFile = flag.String("selectors", "", "YAML file overriding the built-in selector table")
		headless     = flag.Bool("headless", true, "Run browser in headless mode")
		output       = flag.String("output", "stdout", "Output format: stdout, json, csv")
		outPath      = flag.String("out", "products", "Output file path without extension (json/csv output)")
	)
	flag.Parse()

	godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	lg := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	lg.Info("Starting Alibaba product scraper")

	tbl := selectors.Default()
	if *selectorFile != "" {
		tbl, err = selectors.Load(*selectorFile)
		if err != nil {
			lg.Error("Failed to load selector file", "path", *selectorFile, "error", err)
			os.Exit(1)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		lg.Info("Shutdown signal received")
		cancel()
	}()

	taskQueue := queue.NewInMemoryQueue()
	if err := loadTasks(taskQueue, *queries, *images, *inputFile); err != nil {
		lg.Error("Failed to load tasks", "error", err)
		os.Exit(1)
	}

	if taskQueue.Size() == 0 {
		fmt.Println("No searches to run. Use -query, -image, or -file.")
		flag.Usage()
		os.Exit(1)
	}

	browserOpts := &browser.Options{
		Headless:       *headless && cfg.Browser.Headless,
		Timeout:        cfg.Browser.Timeout,
		UserAgent:      cfg.Browser.UserAgent,
		ViewportWidth:  cfg.Browser.ViewportWidth,
		ViewportHeight: cfg.Browser.ViewportHeight,
		AcceptLanguage: cfg.Browser.AcceptLanguage,
		Locale:         cfg.Browser.Locale,
	}

	rateLimiter := ratelimit.NewSimpleRateLimiter(
		cfg.Scraper.RateLimitMin,
		cfg.Scraper.RateLimitMax,
	)

	var records []models.ProductRecord

	err = browser.WithSession(browserOpts, func(sess *browser.Session) error {
		s := scraper.New(sess, tbl, cfg, lg)

		pending := taskQueue.Size()
		lg.Info("Running searches", "tasks", pending)

		for i := 0; i < pending; i++ {
			select {
			case <-ctx.Done():
				lg.Info("Context cancelled, stopping")
				return nil
			default:
			}

			task, err := taskQueue.Pop(ctx)
			if err != nil {
				return err
			}

			if err := rateLimiter.Wait(ctx); err != nil {
				return nil
			}

			lg.Info("Running search", "id", task.ID, "kind", string(task.Kind))

			var found []models.ProductRecord
			switch task.Kind {
			case queue.TaskImage:
				found, err = s.SearchByImage(ctx, task.ImagePath)
			default:
				found, err = s.SearchByText(ctx, task.Query)
			}
			if err != nil {
				return err
			}

			lg.Info("Search finished", "id", task.ID, "products", len(found))
			records = append(records, found...)
		}

		return nil
	})
	if err != nil {
		lg.Error("Scrape run failed", "error", err)
		os.Exit(1)
	}

	if err := outputResults(records, *output, *outPath); err != nil {
		lg.Error("Failed to output results", "error", err)
		os.Exit(1)
	}

	lg.Info("Done", "products", len(records))
}

func loadTasks(q queue.Queue, queries, images, inputFile string) error {
	var lines []string

	if queries != "" {
		for _, query := range strings.Split(queries, ",") {
			lines = append(lines, strings.TrimSpace(query))
		}
	}

	if images != "" {
		for _, path := range strings.Split(images, ",") {
			lines = append(lines, "image:"+strings.TrimSpace(path))
		}
	}

	if inputFile != "" {
		data, err := os.ReadFile(inputFile)
		if err != nil {
			return fmt.Errorf("failed to read input file: %w", err)
		}
		for _, line := range strings.Split(string(data), "\n") {
			line = strings.TrimSpace(line)
			if line != "" && !strings.HasPrefix(line, "#") {
				lines = append(lines, line)
			}
		}
	}

	for _, line := range lines {
		if line == "" {
			continue
		}

		task := &queue.Task{
			ID:        uuid.NewString(),
			Kind:      queue.TaskText,
			Query:     line,
			CreatedAt: time.Now(),
		}
		if path, ok := strings.CutPrefix(line, "image:"); ok {
			task.Kind = queue.TaskImage
			task.Query = ""
			task.ImagePath = strings.TrimSpace(path)
		}

		q.Push(task)
	}

	return nil
}

func outputResults(records []models.ProductRecord, format, outPath string) error {
	switch format {
	case "json":
		return export.WriteJSON(outPath+".json", records)
	case "csv":
		return export.WriteCSV(outPath+".csv", records)
	default:
		export.PrintSummary(os.Stdout, records)
		return nil
	}
}

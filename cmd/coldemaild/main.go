package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	redislib "github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	coldemail "github.com/thakurdishanttt/cold-email-gen"
	"github.com/thakurdishanttt/cold-email-gen/echo"
	"github.com/thakurdishanttt/cold-email-gen/gemini"
	"github.com/thakurdishanttt/cold-email-gen/gmail"
	"github.com/thakurdishanttt/cold-email-gen/goquery"
	coldhttp "github.com/thakurdishanttt/cold-email-gen/http"
	"github.com/thakurdishanttt/cold-email-gen/inmem"
	"github.com/thakurdishanttt/cold-email-gen/redis"
	"github.com/thakurdishanttt/cold-email-gen/scrape"
	coldslog "github.com/thakurdishanttt/cold-email-gen/slog"
	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the server with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Optional; deployments usually configure through real env vars.
	_ = godotenv.Load()

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("coldemaild"),
		kong.Description("Cold email generation service"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(stderr, nil))

	// Scraping pipeline: rate-limited HTTP fetcher, goquery extractor,
	// crawl controller, with logging decorators around both ends.
	var fetcher coldemail.Fetcher = coldhttp.NewFetcher(
		coldhttp.WithRateLimit(rate.Limit(cli.RateLimit), 1),
	)
	fetcher = coldslog.NewLoggingFetcher(fetcher, logger)

	var scraper coldemail.Scraper = scrape.NewScraper(fetcher, goquery.NewExtractor(), logger)
	scraper = coldslog.NewLoggingScraper(scraper, logger)

	genaiClient, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cli.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return fmt.Errorf("failed to create gemini client: %w", err)
	}
	generator := gemini.NewGenerator(genaiClient)

	var sender coldemail.MailSender
	if cli.GmailFrom != "" {
		gmailSender, err := gmail.NewSender(ctx, cli.GmailFrom)
		if err != nil {
			return fmt.Errorf("failed to create gmail sender: %w", err)
		}
		sender = gmailSender
	} else {
		logger.Warn("GMAIL_FROM not set, email sending disabled")
	}

	var cache coldemail.ProfileCache
	if cli.RedisAddr != "" {
		client := redislib.NewClient(&redislib.Options{
			Addr:     cli.RedisAddr,
			Password: cli.RedisPassword,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("failed to connect to redis: %w", err)
		}
		cache = redis.NewCache(client)
	} else {
		cache = inmem.NewCache()
	}

	server := echo.NewServer(cli.Addr, logger)
	server.Scraper = scraper
	server.Generator = generator
	server.Sender = sender
	server.Cache = cache
	server.DefaultSender = coldemail.SenderInfo{
		Name:           cli.SenderName,
		Company:        cli.SenderCompany,
		Specialization: cli.SenderSpecialization,
		Phone:          cli.SenderPhone,
		Website:        cli.SenderWebsite,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		logger.Info("shutting down", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

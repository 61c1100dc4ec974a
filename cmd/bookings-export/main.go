// Command bookings-export writes the normalized booking list to a JSON file,
// the same document the console's "export" button downloads.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/spf13/pflag"

	"console/internal/backend"
	"console/internal/bookingview"
	"console/internal/services"
)

type options struct {
	backend string
	token   string
	search  string
	outDir  string
	prefix  string
	timeout time.Duration
}

func main() {
	var opts options
	pflag.StringVar(&opts.backend, "backend", envOr("BACKEND_URL", "http://localhost:5000/api"), "booking backend base URL")
	pflag.StringVar(&opts.token, "token", os.Getenv("ADMIN_TOKEN"), "admin bearer token")
	pflag.StringVarP(&opts.search, "search", "q", "", "only export bookings matching this term")
	pflag.StringVarP(&opts.outDir, "out-dir", "o", ".", "directory to write the export into")
	pflag.StringVar(&opts.prefix, "prefix", bookingview.PrefixBookings, "file name prefix")
	pflag.DurationVar(&opts.timeout, "timeout", 30*time.Second, "backend request timeout")
	pflag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	path, n, err := run(ctx, opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, "bookings-export:", err)
		os.Exit(1)
	}
	fmt.Printf("wrote %d bookings to %s\n", n, path)
}

func run(ctx context.Context, opts options) (string, int, error) {
	if opts.token == "" {
		return "", 0, fmt.Errorf("an admin token is required (--token or ADMIN_TOKEN)")
	}
	svc := services.BookingService{
		Source:    backend.New(opts.backend, opts.timeout, 0),
		RequestID: "cli",
	}
	payload, _, err := svc.Export(ctx, opts.token, opts.search)
	if err != nil {
		return "", 0, err
	}

	if err := os.MkdirAll(opts.outDir, 0o755); err != nil {
		return "", 0, err
	}
	path := filepath.Join(opts.outDir, bookingview.ExportFilename(opts.prefix, time.Now()))
	f, err := os.Create(path)
	if err != nil {
		return "", 0, err
	}
	if err := bookingview.ExportJSON(f, payload); err != nil {
		f.Close()
		return "", 0, err
	}
	if err := f.Close(); err != nil {
		return "", 0, err
	}
	return path, len(payload.Bookings), nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

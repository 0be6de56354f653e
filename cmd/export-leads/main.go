package main

import (
	"bytes"
	"context"
	"facttech_landing_go/config"
	"facttech_landing_go/db"
	"facttech_landing_go/models"
	"facttech_landing_go/services"
	"facttech_landing_go/services/i18n"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"gorm.io/gorm"
)

// exportOptions are the parsed command line flags
type exportOptions struct {
	Format string
	Since  time.Time
	Until  time.Time
	Filter string
	Lang   string
	Upload  bool
	LinkTTL time.Duration
	Out     string
}

// defaultLinkTTL is how long a signed link to a private upload stays valid
const defaultLinkTTL = 7 * 24 * time.Hour

func parseFlags(args []string) (exportOptions, error) {
	fs := flag.NewFlagSet("export-leads", flag.ContinueOnError)
	format := fs.String("format", "xlsx", "export format: xlsx or pdf")
	since := fs.String("since", "", "first day to include (YYYY-MM-DD)")
	until := fs.String("until", "", "last day to include (YYYY-MM-DD)")
	outcome := fs.String("outcome", "", "only this outcome: success, rejected, transport, malformed, aborted")
	lang := fs.String("lang", i18n.DefaultLanguage, "language of the headers")
	upload := fs.Bool("upload", false, "upload to R2 (or EXPORT_DIR when R2 is not configured)")
	linkTTL := fs.Duration("link-ttl", defaultLinkTTL, "validity of the signed link to an upload in a private bucket")
	out := fs.String("out", "", "output file when not uploading (default: generated name in the current directory)")
	if err := fs.Parse(args); err != nil {
		return exportOptions{}, err
	}

	opts := exportOptions{Format: *format, Filter: *outcome, Lang: *lang, Upload: *upload, LinkTTL: *linkTTL, Out: *out}
	if opts.Format != "xlsx" && opts.Format != "pdf" {
		return opts, fmt.Errorf("unsupported format %q", opts.Format)
	}
	if opts.Filter != "" && !models.IsValidOutcome(opts.Filter) {
		return opts, fmt.Errorf("unknown outcome %q", opts.Filter)
	}
	if opts.LinkTTL <= 0 {
		return opts, fmt.Errorf("link-ttl must be positive")
	}
	if !i18n.IsSupported(opts.Lang) {
		return opts, fmt.Errorf("unsupported language %q", opts.Lang)
	}

	var err error
	if opts.Since, opts.Until, err = services.DayRange(*since, *until, time.Local); err != nil {
		return opts, err
	}
	return opts, nil
}

func main() {
	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		log.Fatalf("Invalid arguments: %v", err)
	}

	// Load configuration
	cfg := config.Load()

	if err := i18n.Load(); err != nil {
		log.Fatalf("Failed to load translations: %v", err)
	}

	// Initialize database
	if err := db.Initialize(cfg.DBPath, cfg.Environment); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	if err := db.AutoMigrate(&models.LeadSubmission{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	var storage services.StorageProvider
	if opts.Upload {
		storage = services.NewStorage(ctx, cfg)
	}

	location, err := runExport(ctx, db.DB, cfg, opts, storage, time.Now())
	if err != nil {
		log.Fatalf("Export failed: %v", err)
	}
	fmt.Println(location)
}

// runExport builds the export and stores it. It returns the file path or URL.
func runExport(ctx context.Context, dbConn *gorm.DB, cfg *config.Config, opts exportOptions, storage services.StorageProvider, now time.Time) (string, error) {
	filter := services.SubmissionFilter{Since: opts.Since, Until: opts.Until, Outcome: opts.Filter}
	submissions, err := services.ListSubmissions(ctx, dbConn, filter)
	if err != nil {
		return "", err
	}
	log.Printf("[INFO] Exporting %d submissions as %s", len(submissions), opts.Format)

	content, err := buildExport(ctx, dbConn, cfg, opts, filter, submissions, now)
	if err != nil {
		return "", err
	}

	key := services.GenerateExportKey(now, "."+opts.Format)
	if storage != nil {
		result, err := storage.UploadReader(ctx, bytes.NewReader(content), key, services.ContentTypeForKey(key), int64(len(content)))
		if err != nil {
			return "", fmt.Errorf("failed to upload export: %w", err)
		}
		return exportLink(ctx, storage, result.Key, opts.LinkTTL)
	}

	path := opts.Out
	if path == "" {
		path = filepath.Base(key)
	}
	if err := writeFile(path, bytes.NewReader(content)); err != nil {
		return "", err
	}
	return path, nil
}

// exportLink returns the public address of an uploaded export, or a signed
// link valid for ttl when the bucket is private
func exportLink(ctx context.Context, storage services.StorageProvider, key string, ttl time.Duration) (string, error) {
	if url := storage.GetPublicURL(key); url != "" {
		return url, nil
	}
	url, err := storage.GetSignedURL(ctx, key, ttl)
	if err != nil {
		return "", fmt.Errorf("export uploaded as %s but signing failed: %w", key, err)
	}
	log.Printf("[INFO] Signed link expires in %s", ttl)
	return url, nil
}

func buildExport(ctx context.Context, dbConn *gorm.DB, cfg *config.Config, opts exportOptions, filter services.SubmissionFilter, submissions []models.LeadSubmission, now time.Time) ([]byte, error) {
	if opts.Format == "xlsx" {
		buf, err := services.BuildLeadsWorkbook(opts.Lang, submissions, time.Local)
		if err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}

	// The summary ignores the outcome filter so the report shows the full split
	counts, err := services.CountSubmissionsByOutcome(ctx, dbConn, services.SubmissionFilter{Since: filter.Since, Until: filter.Until})
	if err != nil {
		return nil, err
	}
	reportHTML, err := services.BuildLeadsReportHTML(opts.Lang, submissions, counts, now)
	if err != nil {
		return nil, err
	}
	pdfOpts := services.DefaultPDFOptions()
	pdfOpts.ChromePath = cfg.ChromePath
	return services.GenerateLeadsReportPDF(ctx, reportHTML, pdfOpts)
}

func writeFile(path string, r io.Reader) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()
	if _, err := io.Copy(f, r); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

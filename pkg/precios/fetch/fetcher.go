// Package fetch downloads the yearly price workbooks from the MAPA listing page.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// Listing page defaults.
const (
	DefaultListingURL     = "https://www.mapa.gob.es/es/estadistica/temas/estadisticas-agrarias/economia/precios-medios-nacionales/"
	DefaultSectionHeading = "Concepto"
	DefaultLinkText       = "Precios Medios Nacionales"
	DefaultFilePattern    = "precios_medios_%d.xlsx"
	DefaultUserAgent      = "agro-precios/1.0 (+https://github.com/carloss4dv/agro-precios)"
)

var linkYearRe = regexp.MustCompile(`\d{4}`)

// Options configures a Fetcher.
type Options struct {
	// ListingURL is the page holding the yearly download links.
	ListingURL string
	// SectionHeading is the h3 text preceding the list of links.
	SectionHeading string
	// LinkText must appear in a link's text for it to be considered.
	LinkText string
	// FilePattern names the saved file; it receives the year.
	FilePattern string
	UserAgent   string
	Retry       RetryPolicy
	// Client overrides the HTTP client. Nil builds one from Retry.
	Client *http.Client
	Logger *slog.Logger
}

// DefaultOptions returns the settings for the public MAPA site.
func DefaultOptions() Options {
	return Options{
		ListingURL:     DefaultListingURL,
		SectionHeading: DefaultSectionHeading,
		LinkText:       DefaultLinkText,
		FilePattern:    DefaultFilePattern,
		UserAgent:      DefaultUserAgent,
		Retry:          DefaultRetryPolicy(),
	}
}

// Fetcher resolves years to workbook links and downloads them.
type Fetcher struct {
	opts   Options
	client *http.Client
	log    *slog.Logger
}

// New creates a Fetcher. Zero-valued fields of opts take their defaults.
func New(opts Options) *Fetcher {
	def := DefaultOptions()
	if opts.ListingURL == "" {
		opts.ListingURL = def.ListingURL
	}
	if opts.SectionHeading == "" {
		opts.SectionHeading = def.SectionHeading
	}
	if opts.LinkText == "" {
		opts.LinkText = def.LinkText
	}
	if opts.FilePattern == "" {
		opts.FilePattern = def.FilePattern
	}
	if opts.UserAgent == "" {
		opts.UserAgent = def.UserAgent
	}
	if opts.Retry.MaxAttempts < 1 {
		opts.Retry = def.Retry
	}

	client := opts.Client
	if client == nil {
		client = &http.Client{Timeout: opts.Retry.Timeout()}
	}
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Fetcher{opts: opts, client: client, log: log}
}

// Links scrapes the listing page and returns the absolute download URL of
// each year. Links under the section heading are preferred; when that
// section is missing every anchor on the page is considered.
func (f *Fetcher) Links(ctx context.Context) (map[int]string, error) {
	resp, err := f.get(ctx, f.opts.ListingURL)
	if err != nil {
		return nil, fmt.Errorf("failed to load listing page: %w", err)
	}
	defer resp.Body.Close()

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse listing page: %w", err)
	}

	base, err := url.Parse(f.opts.ListingURL)
	if err != nil {
		return nil, fmt.Errorf("invalid listing url: %w", err)
	}

	selector := fmt.Sprintf("h3:contains(%q)", f.opts.SectionHeading)
	links := f.collectLinks(doc.Find(selector).Next().Find("a"), base)
	if len(links) == 0 {
		f.log.Debug("section heading not found, scanning all links", "heading", f.opts.SectionHeading)
		links = f.collectLinks(doc.Find("a"), base)
	}

	return links, nil
}

func (f *Fetcher) collectLinks(anchors *goquery.Selection, base *url.URL) map[int]string {
	links := make(map[int]string)
	anchors.Each(func(_ int, a *goquery.Selection) {
		text := strings.TrimSpace(a.Text())
		href, ok := a.Attr("href")
		if !ok || href == "" || !strings.Contains(text, f.opts.LinkText) {
			return
		}
		year, err := strconv.Atoi(linkYearRe.FindString(text))
		if err != nil {
			return
		}
		ref, err := url.Parse(href)
		if err != nil {
			return
		}
		if _, seen := links[year]; !seen {
			links[year] = base.ResolveReference(ref).String()
		}
	})
	return links
}

// FetchSourceFile downloads the workbook for year into dir and returns the
// saved path. It fails with a YearNotFoundError when the listing page has no
// link for that year.
func (f *Fetcher) FetchSourceFile(ctx context.Context, year int, dir string) (string, error) {
	links, err := f.Links(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %d workbook: %w", year, err)
	}
	link, ok := links[year]
	if !ok {
		return "", &YearNotFoundError{Year: year}
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create download dir: %w", err)
	}

	target := f.targetPath(year, dir)
	if err := f.download(ctx, link, target); err != nil {
		return "", fmt.Errorf("failed to download %d workbook: %w", year, err)
	}

	f.log.Info("workbook downloaded", "year", year, "url", link, "path", target)
	return target, nil
}

// FetchOrReuse returns the existing file for year in dir, downloading it
// only when absent.
func (f *Fetcher) FetchOrReuse(ctx context.Context, year int, dir string) (string, error) {
	target := f.targetPath(year, dir)
	info, err := os.Stat(target)
	switch {
	case err == nil && info.Size() > 0:
		f.log.Debug("reusing workbook", "year", year, "path", target)
		return target, nil
	case err != nil && !errors.Is(err, fs.ErrNotExist):
		return "", err
	}
	return f.FetchSourceFile(ctx, year, dir)
}

func (f *Fetcher) targetPath(year int, dir string) string {
	return filepath.Join(dir, fmt.Sprintf(f.opts.FilePattern, year))
}

// download streams link into a temporary file next to target and renames it
// once complete, so target never holds a partial workbook.
func (f *Fetcher) download(ctx context.Context, link, target string) error {
	resp, err := f.get(ctx, link)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	tmp, err := os.CreateTemp(filepath.Dir(target), ".download-*.part")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write response body: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), target)
}

// get issues a GET request, retrying transport errors and temporary HTTP
// statuses according to the retry policy. The caller closes the body.
func (f *Fetcher) get(ctx context.Context, link string) (*http.Response, error) {
	var lastErr error
	attempts := f.opts.Retry.MaxAttempts

	for attempt := 1; attempt <= attempts; attempt++ {
		if delay := f.opts.Retry.Delay(attempt); delay > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, link, http.NoBody)
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("User-Agent", f.opts.UserAgent)

		resp, err := f.client.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			lastErr = fmt.Errorf("request failed (attempt %d/%d): %w", attempt, attempts, err)
			f.log.Debug("request failed", "url", link, "attempt", attempt, "error", err)
			continue
		}

		if resp.StatusCode == http.StatusOK {
			return resp, nil
		}
		resp.Body.Close()

		lastErr = fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
		if !isRetryableStatus(resp.StatusCode) {
			break
		}
		f.log.Debug("retryable status", "url", link, "attempt", attempt, "status", resp.StatusCode)
	}

	return nil, lastErr
}

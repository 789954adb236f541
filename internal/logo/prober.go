// Package logo checks whether a logo URL loads as an image and produces
// thumbnails for the preview. Failures are reported, never fatal.
package logo

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/netip"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/ridwanfathin/whatsapp-billing/internal/imageutil"
)

var (
	// ErrEmptySource is returned when no logo URL is set
	ErrEmptySource = errors.New("no logo url")
	// ErrUnsupportedSource is returned for URLs that are neither http(s) nor a local path
	ErrUnsupportedSource = errors.New("unsupported logo url")
	// ErrTooLarge is returned when the logo exceeds the configured size limit
	ErrTooLarge = errors.New("logo exceeds size limit")
	// ErrForbiddenAddress is returned when a logo host resolves to a
	// loopback, private or link-local address
	ErrForbiddenAddress = errors.New("logo address not allowed")
)

// Config holds configuration for the prober
type Config struct {
	StaticDir string
	Timeout   time.Duration
	MaxBytes  int64
	// CacheTTL is how long remote check results are reused. Negative disables caching.
	CacheTTL time.Duration
	// CacheEntries caps how many URLs the result cache holds
	CacheEntries int
	// MaxConcurrentFetches bounds outbound logo downloads across all sessions
	MaxConcurrentFetches int
	// AllowPrivateNetworks lets remote logos come from loopback and private
	// addresses. Off by default.
	AllowPrivateNetworks bool
}

// Result is the outcome of a logo check
type Result struct {
	URL    string `json:"url"`
	Valid  bool   `json:"valid"`
	Format string `json:"format,omitempty"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
	Reason string `json:"reason,omitempty"`
}

// Prober loads logos from http(s) URLs or from the static directory
type Prober struct {
	httpClient *http.Client
	staticDir  string
	maxBytes   int64
	cache      *resultCache
	fetchSlots chan struct{}
}

// NewProber creates a new logo prober
func NewProber(cfg Config) *Prober {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Second
	}
	if cfg.MaxBytes <= 0 {
		cfg.MaxBytes = 5 * 1024 * 1024
	}
	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = defaultCacheTTL
	}
	if cfg.MaxConcurrentFetches <= 0 {
		cfg.MaxConcurrentFetches = 4
	}
	p := &Prober{
		httpClient: newHTTPClient(cfg.Timeout, cfg.AllowPrivateNetworks),
		staticDir:  cfg.StaticDir,
		maxBytes:   cfg.MaxBytes,
		fetchSlots: make(chan struct{}, cfg.MaxConcurrentFetches),
	}
	if cfg.CacheTTL > 0 {
		p.cache = newResultCache(cfg.CacheTTL, cfg.CacheEntries)
	}
	return p
}

// newHTTPClient checks every dialed address, so redirects and DNS answers
// that point inside the network are refused too.
func newHTTPClient(timeout time.Duration, allowPrivate bool) *http.Client {
	dialer := &net.Dialer{Timeout: timeout}
	if !allowPrivate {
		dialer.Control = publicAddressOnly
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.Proxy = nil
	transport.DialContext = dialer.DialContext

	return &http.Client{Timeout: timeout, Transport: transport}
}

func publicAddressOnly(_, address string, _ syscall.RawConn) error {
	host, _, err := net.SplitHostPort(address)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrForbiddenAddress, address)
	}
	ip, err := netip.ParseAddr(host)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrForbiddenAddress, host)
	}

	ip = ip.Unmap()
	if ip.IsLoopback() || ip.IsPrivate() || ip.IsUnspecified() ||
		ip.IsLinkLocalUnicast() || ip.IsLinkLocalMulticast() ||
		ip.IsInterfaceLocalMulticast() || ip.IsMulticast() ||
		sharedAddressSpace.Contains(ip) {
		return fmt.Errorf("%w: %s", ErrForbiddenAddress, ip)
	}
	return nil
}

// carrier-grade NAT range, RFC 6598
var sharedAddressSpace = netip.MustParsePrefix("100.64.0.0/10")

// Check loads raw and reports whether it decodes as an image. Results for
// remote URLs are cached.
func (p *Prober) Check(ctx context.Context, raw string) Result {
	remote := isRemote(raw)
	if remote && p.cache != nil {
		if res, ok := p.cache.get(raw); ok {
			return res
		}
	}

	res := p.check(ctx, raw)
	if remote && p.cache != nil && ctx.Err() == nil {
		p.cache.put(raw, res)
	}
	return res
}

func (p *Prober) check(ctx context.Context, raw string) Result {
	res := Result{URL: raw}

	data, err := p.Load(ctx, raw)
	if err != nil {
		res.Reason = err.Error()
		return res
	}

	info, err := imageutil.Inspect(data)
	if err != nil {
		res.Reason = err.Error()
		return res
	}

	res.Valid = true
	res.Format = info.Format
	res.Width = info.Width
	res.Height = info.Height
	return res
}

// Thumbnail loads raw and fits it into a maxDimension square as PNG
func (p *Prober) Thumbnail(ctx context.Context, raw string, maxDimension int) ([]byte, error) {
	data, err := p.Load(ctx, raw)
	if err != nil {
		return nil, err
	}
	return imageutil.ResizeImage(data, &imageutil.ResizeConfig{
		MaxDimension: maxDimension,
		OutputFormat: "png",
	})
}

// Load returns the raw bytes behind a logo URL
func (p *Prober) Load(ctx context.Context, raw string) ([]byte, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, ErrEmptySource
	}

	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedSource, err)
	}

	switch {
	case u.Scheme == "http" || u.Scheme == "https":
		return p.fetch(ctx, u.String())
	case u.Scheme == "" && u.Host == "" && strings.HasPrefix(u.Path, "/"):
		return p.readLocal(u.Path)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedSource, raw)
	}
}

func (p *Prober) fetch(ctx context.Context, target string) ([]byte, error) {
	// Acquire a fetch slot
	select {
	case p.fetchSlots <- struct{}{}:
		defer func() { <-p.fetchSlots }()
	case <-ctx.Done():
		return nil, fmt.Errorf("waiting for fetch slot: %w", ctx.Err())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "image/*")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch logo: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("logo server returned status %d", resp.StatusCode)
	}

	return p.readLimited(resp.Body)
}

func (p *Prober) readLocal(path string) ([]byte, error) {
	if p.staticDir == "" {
		return nil, fmt.Errorf("%w: no static directory configured", ErrUnsupportedSource)
	}

	// Clean against a rooted path so ".." cannot escape the static directory.
	full := filepath.Join(p.staticDir, filepath.FromSlash(filepath.Clean("/"+path)))
	f, err := os.Open(full)
	if err != nil {
		return nil, fmt.Errorf("failed to open logo: %w", err)
	}
	defer f.Close()

	return p.readLimited(f)
}

func (p *Prober) readLimited(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, p.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read logo: %w", err)
	}
	if int64(len(data)) > p.maxBytes {
		return nil, ErrTooLarge
	}
	return data, nil
}

func isRemote(raw string) bool {
	raw = strings.ToLower(strings.TrimSpace(raw))
	return strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://")
}

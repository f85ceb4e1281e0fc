package images

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"time"

	"gera_wallet/internal/observability"
	"gera_wallet/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var ErrImageTooLarge = errors.New("image exceeds maximum response size")

// FetcherConfig bounds a thumbnail download.
type FetcherConfig struct {
	MaxBytes        int64
	ResponseTimeout time.Duration // time to first response byte
	Deadline        time.Duration // whole request, body included
}

// HTTPFetcher downloads thumbnails over HTTP(S).
type HTTPFetcher struct {
	client *http.Client
	cfg    FetcherConfig
	logger *zap.Logger
}

var _ interfaces.IImageFetcher = (*HTTPFetcher)(nil)

func NewHTTPFetcher(cfg FetcherConfig, logger *zap.Logger) *HTTPFetcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HTTPFetcher{
		client: &http.Client{
			Transport: &http.Transport{
				Proxy:                 http.ProxyFromEnvironment,
				DialContext:           (&net.Dialer{Timeout: cfg.ResponseTimeout}).DialContext,
				ResponseHeaderTimeout: cfg.ResponseTimeout,
				TLSHandshakeTimeout:   cfg.ResponseTimeout,
				MaxIdleConns:          20,
				IdleConnTimeout:       90 * time.Second,
			},
		},
		cfg:    cfg,
		logger: logger,
	}
}

func (f *HTTPFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	start := time.Now()
	body, status, err := f.fetch(ctx, url)
	observability.ImageFetchDuration.WithLabelValues(status).Observe(time.Since(start).Seconds())
	if err != nil {
		f.logger.Warn("[image][fetcher] fetch failed", zap.String("url", url), zap.String("status", status), zap.Error(err))
		return nil, err
	}
	f.logger.Debug("[image][fetcher] fetch success", zap.String("url", url), zap.Int("bytes", len(body)))
	return body, nil
}

func (f *HTTPFetcher) fetch(ctx context.Context, url string) ([]byte, string, error) {
	if f.cfg.Deadline > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.cfg.Deadline)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "invalid", err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, "error", err
	}
	defer resp.Body.Close()

	status := strconv.Itoa(resp.StatusCode)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, status, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	if f.cfg.MaxBytes > 0 && resp.ContentLength > f.cfg.MaxBytes {
		return nil, status, ErrImageTooLarge
	}

	reader := io.Reader(resp.Body)
	if f.cfg.MaxBytes > 0 {
		reader = io.LimitReader(resp.Body, f.cfg.MaxBytes+1)
	}
	body, err := io.ReadAll(reader)
	if err != nil {
		return nil, status, err
	}
	if f.cfg.MaxBytes > 0 && int64(len(body)) > f.cfg.MaxBytes {
		return nil, status, ErrImageTooLarge
	}
	return body, status, nil
}

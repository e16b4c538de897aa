package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/u0927156/MBTAProject/config"
	"github.com/u0927156/MBTAProject/internal/logging"
	"github.com/u0927156/MBTAProject/metrics"
	"github.com/u0927156/MBTAProject/network"
)

const maxResponseSize = 16 * 1024 * 1024

// MBTAClient fetches rail lines and their stops from the MBTA v3 API.
type MBTAClient struct {
	BaseURL    string
	HTTPClient *http.Client
	Metrics    *metrics.Metrics // optional

	apiKey      string
	routeTypes  []int
	concurrency int
	limiter     *rate.Limiter
	logger      *slog.Logger
}

// NewMBTAClient creates a client. apiKey may be empty.
func NewMBTAClient(cfg config.MBTAConfig, apiKey string) *MBTAClient {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = config.DefaultMBTABaseURL
	}
	routeTypes := cfg.RouteTypes
	if len(routeTypes) == 0 {
		routeTypes = config.DefaultRouteTypes
	}
	concurrency := cfg.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}
	timeout := time.Duration(cfg.TimeoutMS) * time.Millisecond
	if timeout <= 0 {
		timeout = time.Duration(config.DefaultTimeoutMS) * time.Millisecond
	}

	limit := rate.Inf
	if cfg.RequestsPerMinute > 0 {
		limit = rate.Every(time.Minute / time.Duration(cfg.RequestsPerMinute))
	}

	return &MBTAClient{
		BaseURL:     baseURL,
		HTTPClient:  &http.Client{Timeout: timeout},
		apiKey:      apiKey,
		routeTypes:  append([]int(nil), routeTypes...),
		concurrency: concurrency,
		limiter:     rate.NewLimiter(limit, concurrency),
		logger:      logging.Component("mbta_client"),
	}
}

func (c *MBTAClient) Name() string { return "mbta:" + c.BaseURL }

// GetRailLines lists routes whose type is one of the configured route types.
func (c *MBTAClient) GetRailLines(ctx context.Context) ([]network.Line, error) {
	types := make([]string, 0, len(c.routeTypes))
	for _, t := range c.routeTypes {
		types = append(types, strconv.Itoa(t))
	}
	params := url.Values{}
	params.Set("filter[type]", strings.Join(types, ","))

	var resp routesResponse
	if err := c.getJSON(ctx, "routes", params, &resp); err != nil {
		return nil, err
	}

	lines := make([]network.Line, 0, len(resp.Data))
	for _, r := range resp.Data {
		line, ok := r.toLine()
		if !ok || !containsInt(c.routeTypes, line.Type) {
			continue
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// GetStops lists the stops served by one line.
func (c *MBTAClient) GetStops(ctx context.Context, lineID string) ([]network.Stop, error) {
	params := url.Values{}
	params.Set("filter[route]", lineID)

	var resp stopsResponse
	if err := c.getJSON(ctx, "stops", params, &resp); err != nil {
		return nil, fmt.Errorf("stops for %s: %w", lineID, err)
	}

	stops := make([]network.Stop, 0, len(resp.Data))
	for _, s := range resp.Data {
		if stop, ok := s.toStop(); ok {
			stops = append(stops, stop)
		}
	}
	return stops, nil
}

// Fetch lists rail lines and then fetches every line's stops concurrently.
// It returns only once all requests have finished.
func (c *MBTAClient) Fetch(ctx context.Context) (*Snapshot, error) {
	started := time.Now()
	lines, err := c.GetRailLines(ctx)
	if err != nil {
		return nil, fmt.Errorf("rail lines: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency)
	for i := range lines {
		g.Go(func() error {
			stops, err := c.GetStops(gctx, lines[i].ID)
			if err != nil {
				return err
			}
			lines[i].Stops = stops
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	logging.LogOperation(c.logger, "mbta_snapshot_fetched",
		slog.Int("lines", len(lines)),
		slog.Duration("elapsed", time.Since(started)))

	return &Snapshot{Source: c.Name(), FetchedAt: time.Now().UTC(), Lines: lines}, nil
}

func (c *MBTAClient) getJSON(ctx context.Context, endpoint string, params url.Values, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	u := c.BaseURL + "/" + endpoint
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.api+json")
	if c.apiKey != "" {
		req.Header.Set("x-api-key", c.apiKey)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Metrics.ObserveProviderRequest(endpoint, "error")
		return fmt.Errorf("failed to fetch %s: %w", endpoint, err)
	}
	defer logging.SafeCloseWithLogging(resp.Body, c.logger, "http_response_body")
	c.Metrics.ObserveProviderRequest(endpoint, strconv.Itoa(resp.StatusCode))

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return fmt.Errorf("error reading %s response: %w", endpoint, err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr errorResponse
		_ = json.Unmarshal(body, &apiErr)
		if detail := apiErr.String(); detail != "" {
			return fmt.Errorf("%w: %d from %s (%s)", ErrUnexpectedStatus, resp.StatusCode, endpoint, detail)
		}
		return fmt.Errorf("%w: %d from %s", ErrUnexpectedStatus, resp.StatusCode, endpoint)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("error decoding %s response: %w", endpoint, err)
	}
	return nil
}

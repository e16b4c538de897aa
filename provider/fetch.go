package provider

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/u0927156/MBTAProject/internal/logging"
)

const maxStaticSize = 200 * 1024 * 1024

func isRemote(urlOrPath string) bool {
	return strings.HasPrefix(urlOrPath, "http://") || strings.HasPrefix(urlOrPath, "https://")
}

// fetchSource reads a local file, or downloads urlOrPath when it is an
// http(s) URL.
func fetchSource(ctx context.Context, client *http.Client, urlOrPath string) ([]byte, error) {
	if !isRemote(urlOrPath) {
		b, err := os.ReadFile(urlOrPath)
		if err != nil {
			return nil, fmt.Errorf("error reading local GTFS file: %w", err)
		}
		return b, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlOrPath, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating GTFS request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", urlOrPath, err)
	}
	defer logging.SafeCloseWithLogging(resp.Body, logging.Component("gtfs_downloader"), "http_response_body")

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %d from %s", ErrUnexpectedStatus, resp.StatusCode, urlOrPath)
	}
	b, err := io.ReadAll(io.LimitReader(resp.Body, maxStaticSize+1))
	if err != nil {
		return nil, fmt.Errorf("error reading GTFS data: %w", err)
	}
	if int64(len(b)) > maxStaticSize {
		return nil, fmt.Errorf("static GTFS response exceeds size limit of %d bytes", maxStaticSize)
	}
	return b, nil
}

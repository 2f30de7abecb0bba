// Package updatefeed talks to the Melovue backend's client-update
// endpoint: version gating and installer downloads.
package updatefeed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/melovue/shell/internal/application/port"
	"github.com/melovue/shell/internal/domain/entity"
	"github.com/melovue/shell/internal/domain/version"
	"github.com/melovue/shell/internal/logging"
)

const (
	// Path of the version-and-installer endpoint, relative to the
	// shell's base address.
	updatePath = "/api/client/update"

	// Header carrying the build-time client credential.
	clientHeader = "x-mv-client"

	// HTTP client timeout for the version check.
	checkTimeout = 10 * time.Second

	// Maximum accepted response body. The endpoint returns a tiny JSON
	// object; anything larger is malformed.
	maxBodySize = 64 * 1024
)

// updateResponse is the wire format of the update endpoint.
type updateResponse struct {
	RequiredVersion string `json:"requiredVersion"`
	APKURL          string `json:"apkUrl"`
}

// Client implements port.VersionAuthority against the Melovue backend.
type Client struct {
	client   *http.Client
	endpoint string
	secret   string
}

// NewClient creates a version authority client for the given base
// address. secret may be empty; when present it is sent as the
// x-mv-client header and never logged.
func NewClient(baseURL, secret string) *Client {
	return &Client{
		client:   &http.Client{Timeout: checkTimeout},
		endpoint: strings.TrimRight(baseURL, "/") + updatePath,
		secret:   secret,
	}
}

// FetchUpdateInfo performs the single startup request to the update
// endpoint. Every failure mode is wrapped in port.ErrUpdateCheckFailed
// so the gate can fail closed uniformly.
func (c *Client) FetchUpdateInfo(ctx context.Context) (*entity.UpdateInfo, error) {
	log := logging.FromContext(ctx)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("%w: create request: %w", port.ErrUpdateCheckFailed, err)
	}
	req.Header.Set("Accept", "application/json")
	if c.secret != "" {
		req.Header.Set(clientHeader, c.secret)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", port.ErrUpdateCheckFailed, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("%w: backend returned status %d", port.ErrUpdateCheckFailed, resp.StatusCode)
	}

	var body updateResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodySize)).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: decode response: %w", port.ErrUpdateCheckFailed, err)
	}

	// Normalize keeps an absent tag absent, so "not enforced" survives.
	info := &entity.UpdateInfo{
		RequiredVersion: version.Normalize(body.RequiredVersion),
		InstallerURL:    body.APKURL,
	}

	log.Debug().
		Str("required", info.RequiredVersion).
		Bool("installer_offered", info.InstallerURL != "").
		Msg("update check completed")

	return info, nil
}

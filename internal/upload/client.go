// Package upload posts captured screenshots to the recognition endpoint.
package upload

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net"
	"net/http"
	"net/textproto"
	"time"

	"github.com/xurxogr/foxhole-stockpiles-client/internal/config"
)

// Client uploads screenshots to the configured server.
type Client struct {
	httpClient *http.Client
}

// NewClient builds the upload client. Certificate verification is disabled:
// community-hosted recognition servers commonly run on self-signed
// certificates.
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 10 * time.Second,
				}).DialContext,
				TLSClientConfig:     &tls.Config{InsecureSkipVerify: true},
				TLSHandshakeTimeout: 10 * time.Second,
			},
		},
	}
}

// Send posts a PNG screenshot as a multipart request and returns the server's
// response text. A non-200 status is an error carrying the status code and
// the server's message.
func (c *Client) Send(ctx context.Context, server config.ServerSettings, webhook config.WebhookSettings, png []byte) (string, error) {
	body, contentType, err := buildBody(png)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, server.URL, body)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	applyAuth(req, server, webhook)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("send screenshot: %w", err)
	}
	defer resp.Body.Close()

	text := responseText(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("status_code: %d, error: %s", resp.StatusCode, text)
	}
	return text, nil
}

// buildBody assembles the multipart form: a single "image" part named
// screenshot.png with an explicit image/png content type.
func buildBody(png []byte) (*bytes.Buffer, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="image"; filename="screenshot.png"`)
	h.Set("Content-Type", "image/png")
	part, err := w.CreatePart(h)
	if err != nil {
		return nil, "", fmt.Errorf("build multipart body: %w", err)
	}
	if _, err := part.Write(png); err != nil {
		return nil, "", fmt.Errorf("build multipart body: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("build multipart body: %w", err)
	}
	return &buf, w.FormDataContentType(), nil
}

func applyAuth(req *http.Request, server config.ServerSettings, webhook config.WebhookSettings) {
	switch {
	case server.AuthType == nil:
	case *server.AuthType == config.AuthBearer && server.Token != nil:
		req.Header.Set("Authorization", "Bearer "+*server.Token)
	case *server.AuthType == config.AuthBasic && server.Username != nil && server.Password != nil:
		req.SetBasicAuth(*server.Username, *server.Password)
	}
	if webhook.Token != nil && webhook.Header != nil && *webhook.Token != "" && *webhook.Header != "" {
		req.Header.Set(*webhook.Header, *webhook.Token)
	}
}

// responseText extracts the "message" field from a JSON response, falling
// back to the raw body for non-JSON replies.
func responseText(r io.Reader) string {
	data, err := io.ReadAll(r)
	if err != nil {
		return ""
	}
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &payload); err == nil && payload.Message != "" {
		return payload.Message
	}
	return string(data)
}

package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/donaldgifford/competitive-price-monitor/internal/metrics"
	domain "github.com/donaldgifford/competitive-price-monitor/pkg/types"
)

// Discord caps a webhook message at ten embeds.
const discordMaxEmbeds = 10

const (
	colorRed    = 0xE74C3C
	colorOrange = 0xE67E22
	colorYellow = 0xF1C40F
	colorGray   = 0x95A5A6
)

var severityColors = map[domain.Severity]int{
	domain.SeverityCritical: colorRed,
	domain.SeverityHigh:     colorOrange,
	domain.SeverityMedium:   colorYellow,
	domain.SeverityLow:      colorGray,
}

// DiscordNotifier posts alerts as embeds to a Discord webhook.
type DiscordNotifier struct {
	webhookURL string
	username   string
	client     *http.Client
}

// DiscordOption configures a DiscordNotifier.
type DiscordOption func(*DiscordNotifier)

// WithHTTPClient replaces http.DefaultClient.
func WithHTTPClient(c *http.Client) DiscordOption {
	return func(d *DiscordNotifier) { d.client = c }
}

// WithUsername overrides the webhook's display name.
func WithUsername(name string) DiscordOption {
	return func(d *DiscordNotifier) { d.username = name }
}

// NewDiscordNotifier creates a DiscordNotifier for webhookURL.
func NewDiscordNotifier(webhookURL string, opts ...DiscordOption) *DiscordNotifier {
	d := &DiscordNotifier{
		webhookURL: webhookURL,
		username:   "Competitive Price Monitor",
		client:     http.DefaultClient,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DiscordRateLimitError is returned on a 429. RetryAfter is zero when
// Discord did not say how long to back off.
type DiscordRateLimitError struct {
	RetryAfter time.Duration
}

func (e *DiscordRateLimitError) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("discord rate limited (429), retry after %s", e.RetryAfter)
	}
	return "discord rate limited (429)"
}

type discordMessage struct {
	Username string         `json:"username,omitempty"`
	Embeds   []discordEmbed `json:"embeds"`
}

type discordEmbed struct {
	Title       string         `json:"title"`
	Color       int            `json:"color"`
	Description string         `json:"description,omitempty"`
	Fields      []discordField `json:"fields,omitempty"`
	Footer      *discordFooter `json:"footer,omitempty"`
	Timestamp   string         `json:"timestamp,omitempty"`
}

type discordField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

type discordFooter struct {
	Text string `json:"text"`
}

// Name returns "discord".
func (d *DiscordNotifier) Name() string { return "discord" }

// SendAlert posts one alert as a single embed.
func (d *DiscordNotifier) SendAlert(ctx context.Context, alert *AlertPayload) error {
	return d.post(ctx, []discordEmbed{alertEmbed(alert)})
}

// SendBatchAlert posts up to ten alerts in one message. Anything past the
// embed cap is summarized in a trailing embed.
func (d *DiscordNotifier) SendBatchAlert(ctx context.Context, alerts []AlertPayload, title string) error {
	shown := min(len(alerts), discordMaxEmbeds)
	embeds := make([]discordEmbed, 0, shown+1)
	for i := range shown {
		embeds = append(embeds, alertEmbed(&alerts[i]))
	}

	if rest := len(alerts) - shown; rest > 0 {
		embeds = append(embeds, discordEmbed{
			Title:       fmt.Sprintf("... and %d more alerts from %s", rest, title),
			Color:       colorGray,
			Description: "Check the alerts API for the full list.",
		})
	}
	return d.post(ctx, embeds)
}

func alertEmbed(a *AlertPayload) discordEmbed {
	kind := "Price"
	if a.IsRank() {
		kind = "Rank"
	}

	e := discordEmbed{
		Title:       kind + " Alert: " + a.ProductName,
		Color:       priorityColor(a.Priority),
		Description: a.Message,
	}

	for _, f := range [][2]string{
		{"ASIN", a.ASIN},
		{"Priority", a.Priority},
		{"Type", a.AlertType},
		{"Ours", a.OldValue},
		{"Competitor", a.NewValue},
		{"Change", a.ChangePercent},
	} {
		e.Fields = append(e.Fields, discordField{Name: f[0], Value: f[1], Inline: true})
	}
	if a.Competitor != "" {
		e.Fields = append(e.Fields, discordField{Name: "Competitor ASIN", Value: a.Competitor})
	}

	if a.SellerSKU != "" {
		e.Footer = &discordFooter{Text: "SKU " + a.SellerSKU}
	}
	if !a.CreatedAt.IsZero() {
		e.Timestamp = a.CreatedAt.UTC().Format(time.RFC3339)
	}
	return e
}

func priorityColor(priority string) int {
	if c, ok := severityColors[domain.Severity(priority)]; ok {
		return c
	}
	return colorGray
}

func (d *DiscordNotifier) post(ctx context.Context, embeds []discordEmbed) error {
	start := time.Now()
	defer func() {
		metrics.NotificationDuration.Observe(time.Since(start).Seconds())
	}()

	body, err := json.Marshal(discordMessage{Username: d.username, Embeds: embeds})
	if err != nil {
		return fmt.Errorf("marshaling discord payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.webhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("creating discord request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("sending discord webhook: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return &DiscordRateLimitError{RetryAfter: retryAfter(resp)}
	case resp.StatusCode >= 300:
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<10))
		return fmt.Errorf("discord returned %d: %s", resp.StatusCode, bytes.TrimSpace(msg))
	}
	return nil
}

// retryAfter reads the backoff from the JSON body, falling back to the
// Retry-After header. Both are in seconds.
func retryAfter(resp *http.Response) time.Duration {
	var body struct {
		RetryAfter float64 `json:"retry_after"`
	}
	if json.NewDecoder(resp.Body).Decode(&body) == nil && body.RetryAfter > 0 {
		return time.Duration(body.RetryAfter * float64(time.Second))
	}
	if secs, err := strconv.ParseFloat(resp.Header.Get("Retry-After"), 64); err == nil && secs > 0 {
		return time.Duration(secs * float64(time.Second))
	}
	return 0
}

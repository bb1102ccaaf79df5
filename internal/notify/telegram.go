package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/mohammad516/lc-website/internal/logger"
	"github.com/mohammad516/lc-website/internal/order"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
)

const defaultAPIBase = "https://api.telegram.org"

// TelegramClient posts order summaries to a Telegram chat via the Bot
// API. It implements order.Notifier.
type TelegramClient struct {
	botToken   string
	chatID     string
	httpClient *http.Client
	apiBase    string
}

type Option func(*TelegramClient)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(t *TelegramClient) { t.httpClient = c }
}

// WithAPIBase points the client at a different API host, used in tests.
func WithAPIBase(base string) Option {
	return func(t *TelegramClient) { t.apiBase = base }
}

func NewTelegramClient(botToken, chatID string, opts ...Option) *TelegramClient {
	t := &TelegramClient{
		botToken:   botToken,
		chatID:     chatID,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		apiBase:    defaultAPIBase,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

type sendMessageRequest struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

// OrderCreated sends the formatted order summary, retrying transient
// failures with exponential backoff for up to 20 seconds.
func (t *TelegramClient) OrderCreated(ctx context.Context, o *order.Order) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "notify"),
		zap.String("order_number", o.OrderNumber),
	)

	text := FormatOrderMessage(o)

	operation := func() error {
		return t.send(ctx, text)
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = 500 * time.Millisecond
	policy.MaxElapsedTime = 20 * time.Second

	err := backoff.Retry(operation, backoff.WithContext(policy, ctx))
	if err != nil {
		log.Warn("telegram delivery failed", zap.Error(err))
		return err
	}

	log.Info("order summary sent to telegram")
	return nil
}

func (t *TelegramClient) send(ctx context.Context, text string) error {
	body, err := json.Marshal(sendMessageRequest{
		ChatID:    t.chatID,
		Text:      text,
		ParseMode: "Markdown",
	})
	if err != nil {
		return backoff.Permanent(err)
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", t.apiBase, t.botToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return backoff.Permanent(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 500 {
		return fmt.Errorf("telegram api returned %d", resp.StatusCode)
	}
	if resp.StatusCode != http.StatusOK {
		// 4xx means the request itself is wrong; retrying won't help.
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return backoff.Permanent(fmt.Errorf("telegram api returned %d: %s", resp.StatusCode, payload))
	}

	return nil
}

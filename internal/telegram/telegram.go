package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/neuroscale/neuroscale-site/internal/logger"
	"github.com/neuroscale/neuroscale-site/internal/utils"
)

// Notifier delivers operator notifications for new leads. The degenerate
// no-config case is represented by a nil *Client; callers treat that as a
// delivery failure, not a crash.
type Notifier interface {
	Send(ctx context.Context, text string, disableNotification bool) (*SendResult, error)
}

// SendResult separates "the API answered" from "the API accepted". A
// transport error never produces a SendResult.
type SendResult struct {
	OK          bool
	MessageID   int64
	Description string
}

type Config struct {
	BotToken string
	ChatID   string
	BaseURL  string
}

func ConfigFromEnv(log *logger.Logger) Config {
	return Config{
		BotToken: utils.GetEnv("TELEGRAM_BOT_TOKEN", "", log),
		ChatID:   utils.GetEnv("TELEGRAM_CHAT_ID", "", log),
		BaseURL:  utils.GetEnv("TELEGRAM_API_BASE_URL", "https://api.telegram.org", log),
	}
}

type Client struct {
	log  *logger.Logger
	cfg  Config
	http *http.Client
}

// New returns nil when the bot is not configured; the site keeps running and
// lead submissions report the relay as failed.
func New(log *logger.Logger, cfg Config) *Client {
	if cfg.BotToken == "" || cfg.ChatID == "" {
		log.Warn("Telegram notifier disabled: missing TELEGRAM_BOT_TOKEN or TELEGRAM_CHAT_ID")
		return nil
	}
	return &Client{
		log:  log.With("service", "TelegramClient"),
		cfg:  cfg,
		http: &http.Client{Timeout: 10 * time.Second},
	}
}

type sendMessageRequest struct {
	ChatID              string `json:"chat_id"`
	Text                string `json:"text"`
	ParseMode           string `json:"parse_mode"`
	DisableNotification bool   `json:"disable_notification"`
}

type sendMessageResponse struct {
	OK     bool `json:"ok"`
	Result struct {
		MessageID int64 `json:"message_id"`
	} `json:"result"`
	Description string `json:"description"`
}

// Send posts one HTML-formatted message to the configured chat.
func (c *Client) Send(ctx context.Context, text string, disableNotification bool) (*SendResult, error) {
	body, err := json.Marshal(sendMessageRequest{
		ChatID:              c.cfg.ChatID,
		Text:                text,
		ParseMode:           "HTML",
		DisableNotification: disableNotification,
	})
	if err != nil {
		return nil, fmt.Errorf("Failed to encode message: %w", err)
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", c.cfg.BaseURL, c.cfg.BotToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("Failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("Telegram unreachable: %w", err)
	}
	defer resp.Body.Close()

	var parsed sendMessageResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("Failed to decode Telegram response: %w", err)
	}

	if !parsed.OK {
		c.log.Warn("Telegram rejected message", "description", parsed.Description)
		return &SendResult{OK: false, Description: parsed.Description}, nil
	}
	return &SendResult{OK: true, MessageID: parsed.Result.MessageID}, nil
}

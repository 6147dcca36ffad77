package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/neuroscale/neuroscale-site/internal/cmsclient"
	"github.com/neuroscale/neuroscale-site/internal/logger"
	"github.com/neuroscale/neuroscale-site/internal/telegram"
	"github.com/neuroscale/neuroscale-site/internal/types"
)

// LeadRequest is what the public contact form submits.
type LeadRequest struct {
	Name                string `json:"name"`
	Phone               string `json:"phone"`
	Question            string `json:"question"`
	ContactMethod       string `json:"contactMethod"`
	DisableNotification bool   `json:"disableNotification"`
}

// LeadResult reports the two relay legs separately: persistence always
// succeeded when a result exists; the Telegram leg may still have failed.
type LeadResult struct {
	Client          *types.Client
	TelegramOK      bool
	TelegramMessage int64
	TelegramError   string
}

// ValidationError marks client mistakes so the handler can answer 400
// instead of 500.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

type LeadService interface {
	Submit(ctx context.Context, req LeadRequest) (*LeadResult, error)
}

type leadService struct {
	log      *logger.Logger
	cms      *cmsclient.Client
	notifier telegram.Notifier
}

func NewLeadService(log *logger.Logger, cms *cmsclient.Client, notifier telegram.Notifier) LeadService {
	return &leadService{
		log:      log.With("service", "LeadService"),
		cms:      cms,
		notifier: notifier,
	}
}

// Submit persists the lead first, then notifies the operator chat. Only a
// persistence failure is an error; a notification failure comes back in the
// result so the handler can answer with partial success.
func (s *leadService) Submit(ctx context.Context, req LeadRequest) (*LeadResult, error) {
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Phone) == "" {
		return nil, &ValidationError{Message: "name and phone are required"}
	}

	client, err := s.cms.CreateClient(ctx, types.Client{
		Name:          req.Name,
		Phone:         req.Phone,
		Question:      req.Question,
		ContactMethod: req.ContactMethod,
	})
	if err != nil {
		s.log.Error("Lead persistence failed", "error", err)
		return nil, fmt.Errorf("Failed to store lead: %w", err)
	}

	result := &LeadResult{Client: client}

	if s.notifier == nil {
		result.TelegramError = "Telegram notifier not configured"
		return result, nil
	}

	text := buildTelegramMessage(req)
	sent, err := s.notifier.Send(ctx, text, req.DisableNotification)
	if err != nil {
		s.log.Warn("Telegram delivery failed", "error", err)
		result.TelegramError = err.Error()
		return result, nil
	}
	if !sent.OK {
		result.TelegramError = sent.Description
		if result.TelegramError == "" {
			result.TelegramError = "Telegram API error"
		}
		return result, nil
	}

	result.TelegramOK = true
	result.TelegramMessage = sent.MessageID
	return result, nil
}

const telegramMessageLimit = 4096

var contactMethodLabels = map[string]string{
	"call":     "Позвонить",
	"telegram": "Telegram",
	"max":      "Max",
	"whatsapp": "WhatsApp",
}

func htmlEscape(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, `"`, "&quot;")
	return s
}

func buildTelegramMessage(req LeadRequest) string {
	lines := []string{
		"📩 <b>Новая заявка</b>\n",
		"👤 <b>Имя:</b> " + htmlEscape(req.Name),
		"📞 <b>Телефон:</b> " + htmlEscape(req.Phone),
	}
	if label, ok := contactMethodLabels[req.ContactMethod]; ok {
		lines = append(lines, "📱 <b>Способ связи:</b> "+label)
	}
	if req.Question != "" {
		lines = append(lines, "💬 <b>Вопрос:</b>\n"+htmlEscape(req.Question))
	}

	text := strings.Join(lines, "\n")
	if len([]rune(text)) > telegramMessageLimit {
		runes := []rune(text)
		text = string(runes[:telegramMessageLimit-3]) + "..."
	}
	return text
}

// Package itinerary writes day-by-day trip itineraries with an LLM.
package itinerary

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/heartmarshall/tripplanner-backend/internal/config"
	"github.com/heartmarshall/tripplanner-backend/internal/domain"
	"github.com/heartmarshall/tripplanner-backend/internal/provider"
)

const providerName = "itinerary"

// Messages returned instead of an itinerary when generation is not possible.
const (
	MessageRateLimited = "Sorry, we've hit our AI request limit. Please try again later."
	MessageFailed      = "Sorry, I couldn't generate an itinerary at this time."
	MessageNoKey       = "Itinerary generation is unavailable due to missing API credentials."
)

// Completer sends a prompt to a text model and returns its reply.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Generator produces itineraries. It never fails: every problem is turned
// into one of the Message constants.
type Generator struct {
	completer Completer
	timeout   time.Duration
	log       *slog.Logger
}

// NewGenerator creates a Generator backed by the Anthropic Messages API.
// Without an API key every call returns MessageNoKey.
func NewGenerator(cfg config.ItineraryConfig, logger *slog.Logger) *Generator {
	log := logger.With("adapter", providerName)

	var completer Completer
	if cfg.APIKey == "" {
		log.Warn("ANTHROPIC_API_KEY is missing, AI-generated itineraries will not work")
	} else {
		completer = &anthropicCompleter{
			client:    anthropic.NewClient(option.WithAPIKey(cfg.APIKey), option.WithMaxRetries(1)),
			model:     cfg.Model,
			maxTokens: cfg.MaxTokens,
		}
	}

	return &Generator{completer: completer, timeout: cfg.Timeout, log: log}
}

// NewGeneratorWith creates a Generator around any Completer. A nil completer
// behaves like a missing API key.
func NewGeneratorWith(completer Completer, timeout time.Duration, logger *slog.Logger) *Generator {
	return &Generator{completer: completer, timeout: timeout, log: logger.With("adapter", providerName)}
}

// Generate returns the formatted itinerary text for req.
func (g *Generator) Generate(ctx context.Context, req provider.ItineraryRequest) string {
	if g.completer == nil {
		provider.Observe(providerName, provider.OutcomeNoKey)
		return MessageNoKey
	}

	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	g.log.InfoContext(ctx, "generating itinerary",
		slog.String("city", req.City),
		slog.String("country", req.Country),
	)

	text, err := g.completer.Complete(ctx, buildPrompt(req))
	if err == nil && strings.TrimSpace(text) == "" {
		err = errors.New("empty model response")
	}
	if err != nil {
		provider.Observe(providerName, provider.OutcomeUnavailable)
		g.log.ErrorContext(ctx, "itinerary generation failed",
			slog.String("city", req.City),
			slog.String("country", req.Country),
			slog.String("start_date", req.Start.Format(domain.DateLayout)),
			slog.String("end_date", req.End.Format(domain.DateLayout)),
			slog.String("error", err.Error()),
		)
		if isRateLimit(err) {
			return MessageRateLimited
		}
		return MessageFailed
	}

	provider.Observe(providerName, provider.OutcomeOK)
	return format(text)
}

type anthropicCompleter struct {
	client    anthropic.Client
	model     string
	maxTokens int64
}

func (c *anthropicCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	msg, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: c.maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("anthropic messages: %w", err)
	}

	var sb strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	return sb.String(), nil
}

func isRateLimit(err error) bool {
	var apiErr *anthropic.Error
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusTooManyRequests {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "quota") || strings.Contains(msg, "limit")
}

package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
	"github.com/yukikurage/worklog-api/internal/constants"
	"github.com/yukikurage/worklog-api/internal/models"
)

var (
	ErrDigestNotConfigured = errors.New("digest service is not configured")
	ErrDigestEmpty         = errors.New("no digest returned by the model")
)

// DigestService writes a short narrative summary of a period's work log
// using the OpenAI chat completions API.
type DigestService struct {
	client *openai.Client
	model  string
}

// NewDigestService creates a DigestService for the public OpenAI endpoint.
func NewDigestService(apiKey, model string) *DigestService {
	return NewDigestServiceWithConfig(openai.DefaultConfig(apiKey), model)
}

// NewDigestServiceWithConfig creates a DigestService with a custom client
// configuration, e.g. a different base URL.
func NewDigestServiceWithConfig(cfg openai.ClientConfig, model string) *DigestService {
	return &DigestService{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

// Summarize asks the model for a digest of the activities in rng.
// A nil receiver reports ErrDigestNotConfigured.
func (s *DigestService) Summarize(ctx context.Context, rng DateRange, activities []models.Activity, stats *Statistics) (string, error) {
	if s == nil || s.client == nil {
		return "", ErrDigestNotConfigured
	}

	resp, err := s.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: s.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: "You summarize a person's work log. Answer in at most five sentences, mention total hours and earnings, and highlight recurring themes from the notes.",
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: buildDigestPrompt(rng, activities, stats),
				},
			},
			Temperature: 0.3,
		},
	)
	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", ErrDigestEmpty
	}

	summary := strings.TrimSpace(resp.Choices[0].Message.Content)
	if summary == "" {
		return "", ErrDigestEmpty
	}
	return summary, nil
}

func buildDigestPrompt(rng DateRange, activities []models.Activity, stats *Statistics) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Period: %s to %s\n", rng.From.Format(constants.ISODateLayout), rng.To.Format(constants.ISODateLayout))
	fmt.Fprintf(&b, "Total hours: %.2f, total salary: %.2f\n", stats.TotalHours, stats.TotalSalary)
	fmt.Fprintf(&b, "Longest day: %.2f h, shortest day: %.2f h\n\n", stats.MaxHours, stats.MinHours)

	if len(activities) == 0 {
		b.WriteString("No work was logged in this period.\n")
		return b.String()
	}

	b.WriteString("Entries:\n")
	for _, a := range activities {
		notes := a.Notes
		if notes == "" {
			notes = "-"
		}
		fmt.Fprintf(&b, "- %s %s-%s salary %.2f: %s\n", a.Date.Format(constants.ISODateLayout), a.StartTime, a.EndTime, a.Salary, notes)
	}
	return b.String()
}

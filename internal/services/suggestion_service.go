package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
	"github.com/yukikurage/hero-task-tracker/internal/constants"
	"github.com/yukikurage/hero-task-tracker/internal/models"
)

var (
	ErrAIServiceNotConfigured = errors.New("AI service is not configured")
	ErrSuggestionTextRequired = kindError(ErrValidation, "text is required")
	ErrAINoValidTasks         = errors.New("no valid tasks could be extracted from the text")
)

// SuggestedTask is a task extracted from free text. It is never persisted;
// clients create the ones they keep through the normal task endpoint.
type SuggestedTask struct {
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Priority    models.TaskPriority `json:"priority"`
}

// SuggestionService turns notes or messages into task suggestions using an
// OpenAI chat model.
type SuggestionService struct {
	client *openai.Client
	model  string
}

// NewSuggestionService returns nil when apiKey is empty, which callers treat
// as "not configured". baseURL overrides the API endpoint when set.
func NewSuggestionService(apiKey, baseURL string) *SuggestionService {
	if apiKey == "" {
		return nil
	}
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &SuggestionService{
		client: openai.NewClientWithConfig(cfg),
		model:  openai.GPT4o,
	}
}

// Suggest extracts up to MaxAIGeneratedTasks suggestions from text.
func (s *SuggestionService) Suggest(ctx context.Context, text string) ([]SuggestedTask, error) {
	if s == nil || s.client == nil {
		return nil, ErrAIServiceNotConfigured
	}
	if strings.TrimSpace(text) == "" {
		return nil, ErrSuggestionTextRequired
	}

	currentTime := time.Now().Format("2006-01-02 15:04:05")
	prompt := fmt.Sprintf(`You extract actionable tasks for a small team task board.

Current time: %s

Text:
%s

Reply with a JSON array only, no prose:
[
  {
    "title": "short task title",
    "description": "details needed to do the task",
    "priority": "one of low, medium, high, urgent"
  }
]

Return [] when the text contains no tasks.`, currentTime, text)

	resp, err := s.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: s.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			Temperature: 0.3,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no response from OpenAI")
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")

	var raw []SuggestedTask
	if err := json.Unmarshal([]byte(strings.TrimSpace(content)), &raw); err != nil {
		return nil, fmt.Errorf("failed to parse AI response: %w", err)
	}

	suggestions := make([]SuggestedTask, 0, len(raw))
	for _, task := range raw {
		task.Title = strings.TrimSpace(task.Title)
		if task.Title == "" {
			continue
		}
		if !task.Priority.Valid() {
			task.Priority = models.PriorityMedium
		}
		suggestions = append(suggestions, task)
		if len(suggestions) == constants.MaxAIGeneratedTasks {
			break
		}
	}

	if len(suggestions) == 0 {
		return nil, ErrAINoValidTasks
	}
	return suggestions, nil
}

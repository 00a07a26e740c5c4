package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"finance-dashboard/internal/models"

	"github.com/google/uuid"
)

var (
	ErrAssistantUnavailable = errors.New("categorization unavailable")
	ErrNoDescriptions       = errors.New("no transaction descriptions to categorize")
	ErrInvalidSuggestion    = errors.New("assistant returned an invalid mapping")
)

const systemPromptTemplate = "You are a financial advisor and the user's habits are: %s. " +
	"If the habits are unintelligible, ignore them and assume an average user. " +
	"You are designed to output JSON with the following schema: `{ [key: string]: string[] }`."

const suggestPromptTemplate = "Based on these descriptions of transactions from a personal bank statement, " +
	"group them into categories by type, for example Accommodation or Transport. " +
	"Category names are usually one word; when two words are needed write them separated by a space, such as \"Online Services\". " +
	"Use each description exactly as given and do not put the same description in more than one category. " +
	"Every description must appear in the result. The categories can be biased towards the user's habits. " +
	"These are the transaction descriptions: %s"

const amendPromptTemplate = "Based on these categories and keywords created for the user from a bank statement, " +
	"amend them and try to minimise the number of keywords in the Uncategorised section. " +
	"Keep every keyword exactly as given and do not put a keyword in more than one category. " +
	"Format is: `{ [key: string]: string[] }`. Categories: %s"

type assistantService struct {
	client  AssistantClientInterface
	breaker CircuitBreakerInterface
	store   CategoryStoreInterface
	metrics MetricsRecorderInterface
	logger  *slog.Logger
	timeout time.Duration
}

func NewAssistantService(
	client AssistantClientInterface,
	breaker CircuitBreakerInterface,
	store CategoryStoreInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
	timeout time.Duration,
) AssistantServiceInterface {
	return &assistantService{
		client:  client,
		breaker: breaker,
		store:   store,
		metrics: metrics,
		logger:  logger,
		timeout: timeout,
	}
}

// Suggest asks the model to categorise descriptions and merges a valid answer
// into the store. Any failure leaves the store untouched.
func (s *assistantService) Suggest(ctx context.Context, userID uuid.UUID, descriptions []string, habits string) (models.CategoryMap, error) {
	unique := UniqueDescriptions(descriptions)
	if len(unique) == 0 {
		return models.CategoryMap{}, ErrNoDescriptions
	}

	listing, err := json.Marshal(unique)
	if err != nil {
		return models.CategoryMap{}, fmt.Errorf("marshal descriptions: %w", err)
	}

	suggestion, err := s.ask(ctx, "suggest", habits, fmt.Sprintf(suggestPromptTemplate, listing))
	if err != nil {
		return models.CategoryMap{}, err
	}
	if err := ValidateCoverage(suggestion, unique, true); err != nil {
		s.fail(ctx, "suggest", err)
		return models.CategoryMap{}, fmt.Errorf("%w: %w", ErrAssistantUnavailable, err)
	}

	merged, err := s.store.Merge(ctx, userID, suggestion)
	if err != nil {
		return models.CategoryMap{}, err
	}

	s.succeed(ctx, "suggest", len(unique))
	return merged, nil
}

// Amend sends the stored mapping, with any uncovered descriptions under
// Uncategorised, and replaces the stored mapping with a valid answer.
func (s *assistantService) Amend(ctx context.Context, userID uuid.UUID, descriptions []string, habits string) (models.CategoryMap, error) {
	current := s.store.Get(ctx, userID).WithUncategorised()

	covered := make(map[string]struct{})
	for _, e := range current.Entries() {
		for _, k := range e.Keywords {
			covered[models.NormalizeKeyword(k)] = struct{}{}
		}
	}
	for _, d := range UniqueDescriptions(descriptions) {
		if _, ok := covered[models.NormalizeKeyword(d)]; !ok {
			_, _ = current.AddKeyword(models.UncategorisedCategory, d)
		}
	}

	keywords := allKeywords(current)
	if len(keywords) == 0 {
		return models.CategoryMap{}, ErrNoDescriptions
	}

	payload, err := json.Marshal(current)
	if err != nil {
		return models.CategoryMap{}, fmt.Errorf("marshal categories: %w", err)
	}

	amended, err := s.ask(ctx, "amend", habits, fmt.Sprintf(amendPromptTemplate, payload))
	if err != nil {
		return models.CategoryMap{}, err
	}
	if err := ValidateCoverage(amended, keywords, false); err != nil {
		s.fail(ctx, "amend", err)
		return models.CategoryMap{}, fmt.Errorf("%w: %w", ErrAssistantUnavailable, err)
	}

	amended = amended.WithUncategorised()
	if err := s.store.Put(ctx, userID, amended); err != nil {
		return models.CategoryMap{}, err
	}

	s.succeed(ctx, "amend", len(keywords))
	return amended, nil
}

// ask runs one model call behind the circuit breaker and decodes the answer.
// Every error it returns wraps ErrAssistantUnavailable.
func (s *assistantService) ask(ctx context.Context, operation, habits, userPrompt string) (models.CategoryMap, error) {
	if s.breaker.IsOpen() {
		s.fail(ctx, operation, ErrCircuitBreakerOpen)
		return models.CategoryMap{}, fmt.Errorf("%w: %w", ErrAssistantUnavailable, ErrCircuitBreakerOpen)
	}

	if strings.TrimSpace(habits) == "" {
		habits = "none given"
	}

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	raw, err := s.client.Complete(callCtx, fmt.Sprintf(systemPromptTemplate, habits), userPrompt)
	s.metrics.RecordProcessingTime("assistant.request", time.Since(start))
	if err != nil {
		s.breaker.RecordFailure()
		s.fail(ctx, operation, err)
		return models.CategoryMap{}, fmt.Errorf("%w: %w", ErrAssistantUnavailable, err)
	}
	s.breaker.RecordSuccess()

	var categories models.CategoryMap
	if err := json.Unmarshal([]byte(CleanModelJSON(raw)), &categories); err != nil {
		s.fail(ctx, operation, err)
		return models.CategoryMap{}, fmt.Errorf("%w: %w: %v", ErrAssistantUnavailable, ErrInvalidSuggestion, err)
	}
	return categories, nil
}

func (s *assistantService) succeed(ctx context.Context, operation string, descriptions int) {
	s.metrics.IncrementCounter("assistant.request", map[string]string{
		"provider":  s.client.Name(),
		"operation": operation,
		"status":    "success",
	})
	s.logger.InfoContext(ctx, "assistant mapping accepted",
		"provider", s.client.Name(),
		"operation", operation,
		"descriptions", descriptions,
	)
}

func (s *assistantService) fail(ctx context.Context, operation string, err error) {
	s.metrics.IncrementCounter("assistant.request", map[string]string{
		"provider":  s.client.Name(),
		"operation": operation,
		"status":    "failed",
	})
	s.logger.WarnContext(ctx, "assistant call failed",
		"provider", s.client.Name(),
		"operation", operation,
		"error", err,
	)
}

// UniqueDescriptions drops blank and repeated descriptions, comparing the
// same way the classifier does. The first spelling wins.
func UniqueDescriptions(descriptions []string) []string {
	seen := make(map[string]struct{}, len(descriptions))
	out := make([]string, 0, len(descriptions))
	for _, d := range descriptions {
		key := models.NormalizeKeyword(d)
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, strings.TrimSpace(d))
	}
	return out
}

// ValidateCoverage checks that no description appears in more than one
// category and, when exact is set, that every description appears.
func ValidateCoverage(categories models.CategoryMap, descriptions []string, exact bool) error {
	if categories.IsEmpty() {
		return fmt.Errorf("%w: mapping is empty", ErrInvalidSuggestion)
	}

	owners := make(map[string][]string)
	for _, e := range categories.Entries() {
		for _, k := range e.Keywords {
			key := models.NormalizeKeyword(k)
			owners[key] = append(owners[key], e.Name)
		}
	}

	for _, d := range descriptions {
		found := owners[models.NormalizeKeyword(d)]
		switch {
		case len(found) > 1:
			return fmt.Errorf("%w: %q appears in %s", ErrInvalidSuggestion, d, strings.Join(found, ", "))
		case len(found) == 0 && exact:
			return fmt.Errorf("%w: %q is missing", ErrInvalidSuggestion, d)
		}
	}
	return nil
}

// CleanModelJSON strips Markdown code fences and any text around the outermost
// JSON object.
func CleanModelJSON(raw string) string {
	s := strings.TrimSpace(raw)

	if strings.HasPrefix(s, "```") {
		if idx := strings.Index(s, "\n"); idx != -1 {
			s = s[idx+1:]
		} else {
			return s
		}
	}
	if idx := strings.LastIndex(s, "```"); idx != -1 {
		s = s[:idx]
	}
	s = strings.TrimSpace(s)

	if start := strings.Index(s, "{"); start != -1 {
		if end := strings.LastIndex(s, "}"); end > start {
			s = s[start : end+1]
		}
	}
	return s
}

func allKeywords(categories models.CategoryMap) []string {
	var out []string
	for _, e := range categories.Entries() {
		out = append(out, e.Keywords...)
	}
	return UniqueDescriptions(out)
}

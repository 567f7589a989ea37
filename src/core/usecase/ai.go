package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"unicode/utf8"

	"inkpress/src/core/domain"
	"inkpress/src/core/ports"
)

const aiUnavailableMessage = "AI features are temporarily unavailable. Please try again later."

var (
	errInvalidEnhancement = errors.New("invalid AI response structure")
	errEmptyResponse      = errors.New("empty AI response")

	jsonFence  = regexp.MustCompile("```json\\n?")
	plainFence = regexp.MustCompile("```\\n?")
)

// Enhancement is the structured result of an enhance request.
type Enhancement struct {
	RefinedContent  string   `json:"refinedContent"`
	SuggestedTitle  string   `json:"suggestedTitle"`
	Keywords        []string `json:"keywords"`
	MetaDescription string   `json:"metaDescription"`
}

// Summary is the result of a summarize request.
type Summary struct {
	Summary string `json:"summary"`
}

// AIService proxies editor requests to the AI provider. Each call makes
// exactly one upstream request.
type AIService struct {
	ai   ports.AIProvider
	auth ports.Authenticator
	log  *slog.Logger
}

func NewAIService(ai ports.AIProvider, auth ports.Authenticator, log *slog.Logger) *AIService {
	return &AIService{ai: ai, auth: auth, log: log}
}

// Enhance asks the model to refine a draft and suggest a title, keywords and
// a meta description.
func (s *AIService) Enhance(ctx context.Context, content string) (*Enhancement, error) {
	if err := s.checkRequest(ctx, content); err != nil {
		return nil, err
	}

	raw, err := s.ai.Generate(ctx, EnhancementPrompt(content))
	if err != nil {
		return nil, s.upstreamFailure("AI Enhancement", err)
	}

	enhancement, err := ParseEnhancement(raw)
	if err != nil {
		return nil, s.upstreamFailure("AI Enhancement", err)
	}
	return enhancement, nil
}

// Summarize asks the model for a two to three sentence summary.
func (s *AIService) Summarize(ctx context.Context, content string) (*Summary, error) {
	if err := s.checkRequest(ctx, content); err != nil {
		return nil, err
	}

	raw, err := s.ai.Generate(ctx, SummaryPrompt(content))
	if err != nil {
		return nil, s.upstreamFailure("AI Summarization", err)
	}

	summary := strings.TrimSpace(raw)
	if summary == "" {
		return nil, s.upstreamFailure("AI Summarization", errEmptyResponse)
	}
	return &Summary{Summary: summary}, nil
}

// Authorize fails when the request carries no valid identity. Bindings call
// it before reading the body so anonymous callers learn nothing about input
// rules.
func (s *AIService) Authorize(ctx context.Context) error {
	user, err := s.auth.CurrentUser(ctx)
	if err != nil || user == nil {
		return domain.NewUnauthorizedError("Please log in to use AI features")
	}
	return nil
}

func (s *AIService) checkRequest(ctx context.Context, content string) error {
	if err := s.Authorize(ctx); err != nil {
		return err
	}
	return ValidateAIContent(content)
}

func (s *AIService) upstreamFailure(service string, err error) error {
	s.log.Error("AI provider call failed", "service", service, "error", err)
	return domain.NewExternalServiceError(aiUnavailableMessage, fmt.Errorf("%s: %w", service, err))
}

// ValidateAIContent checks that content is present and within the AI limit.
func ValidateAIContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return domain.NewValidationError(domain.FieldContent, "Content is required and must be a non-empty string")
	}
	if utf8.RuneCountInString(content) > domain.MaxAIContentLength {
		return domain.NewValidationError(domain.FieldContent, "Content is too long. Maximum 50,000 characters allowed.")
	}
	return nil
}

// StripCodeFences removes Markdown code fence markers that models often wrap
// around JSON output.
func StripCodeFences(s string) string {
	s = jsonFence.ReplaceAllString(s, "")
	s = plainFence.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// ParseEnhancement decodes a model response into an Enhancement. The
// refinedContent and suggestedTitle fields are required.
func ParseEnhancement(raw string) (*Enhancement, error) {
	var e Enhancement
	if err := json.Unmarshal([]byte(StripCodeFences(raw)), &e); err != nil {
		return nil, fmt.Errorf("decode enhancement: %w", err)
	}
	if e.RefinedContent == "" || e.SuggestedTitle == "" {
		return nil, errInvalidEnhancement
	}
	if e.Keywords == nil {
		e.Keywords = []string{}
	}
	return &e, nil
}

// EnhancementPrompt builds the editing prompt around a draft.
func EnhancementPrompt(draft string) string {
	return `You are a professional blog editor and writing coach.
Given this user's draft:

` + draft + `

Please provide your response in the following JSON format:
{
  "refinedContent": "The improved version of the content",
  "suggestedTitle": "A catchy and SEO-friendly title",
  "keywords": ["keyword1", "keyword2", "keyword3"],
  "metaDescription": "A one-sentence meta description for SEO"
}

Keep the tone professional yet conversational.`
}

// SummaryPrompt builds the summarization prompt around a post.
func SummaryPrompt(content string) string {
	return `Summarize this blog post in 2-3 sentences that capture its main idea and tone:

` + content + `

Provide only the summary text without any additional formatting.`
}

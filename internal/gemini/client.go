// Package gemini is the gateway to the generative-language API. It owns the
// prompt text for every content-generation feature and a thin client over the
// Google GenAI SDK. The store and assessment engine never call this package;
// only the view layer does.
package gemini

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
	"google.golang.org/genai"

	"github.com/Mny978/track-and-treat/internal/model"
)

// Default models: flash for everyday generation, pro for medical-report
// interpretation.
const (
	DefaultFlashModel = "gemini-2.5-flash"
	DefaultProModel   = "gemini-3-pro-preview"
)

// WebSource is one grounding source attached to a grounded search result.
type WebSource struct {
	URI   string
	Title string
}

// SearchResult is a grounded search answer with its web sources.
type SearchResult struct {
	Text    string
	Sources []WebSource
}

// Client wraps the GenAI SDK for the application's content-generation calls.
type Client struct {
	client     *genai.Client
	flashModel string
	proModel   string
}

// New creates a Client using the given API key and default models.
func New(ctx context.Context, apiKey string) (*Client, error) {
	return NewWithModels(ctx, apiKey, DefaultFlashModel, DefaultProModel)
}

// NewWithModels creates a Client with explicit model names.
func NewWithModels(ctx context.Context, apiKey, flashModel, proModel string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	c, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("creating genai client: %w", err)
	}
	if flashModel == "" {
		flashModel = DefaultFlashModel
	}
	if proModel == "" {
		proModel = DefaultProModel
	}
	return &Client{client: c, flashModel: flashModel, proModel: proModel}, nil
}

// generate runs one prompt against the given model and returns the response
// text.
func (c *Client) generate(ctx context.Context, mdl string, p Prompt) (string, error) {
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(p.System, genai.RoleUser),
	}
	resp, err := c.client.Models.GenerateContent(ctx, mdl, genai.Text(p.Text), cfg)
	if err != nil {
		return "", fmt.Errorf("generating content: %w", err)
	}
	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("empty response from model %s", mdl)
	}
	return text, nil
}

// HealthSummary interprets a computed assessment in plain language.
func (c *Client) HealthSummary(ctx context.Context, a model.Assessment) (string, error) {
	return c.generate(ctx, c.flashModel, HealthSummaryPrompt(a))
}

// MealPlan generates a 3-day meal plan tailored to the profile.
func (c *Client) MealPlan(ctx context.Context, p model.Profile) (string, error) {
	return c.generate(ctx, c.flashModel, MealPlanPrompt(p))
}

// AnalyzeMealLog reviews today's meal log against the profile's target.
func (c *Client) AnalyzeMealLog(ctx context.Context, entries []model.MealLogEntry, p model.Profile) (string, error) {
	if len(entries) == 0 {
		return "", fmt.Errorf("meal log is empty")
	}
	return c.generate(ctx, c.flashModel, MealLogPrompt(entries, p))
}

// RecipesByCondition generates recipes suited to a medical condition.
func (c *Client) RecipesByCondition(ctx context.Context, condition string) (string, error) {
	return c.generate(ctx, c.flashModel, RecipesByConditionPrompt(condition))
}

// RecipesByIngredient generates recipes built around one ingredient.
func (c *Client) RecipesByIngredient(ctx context.Context, ingredient string) (string, error) {
	return c.generate(ctx, c.flashModel, RecipesByIngredientPrompt(ingredient))
}

// AnalyzeReport interprets medical findings. Uses the pro model.
func (c *Client) AnalyzeReport(ctx context.Context, findings string) (string, error) {
	return c.generate(ctx, c.proModel, ReportPrompt(findings))
}

// Guidance generates one nutritional-guidance section.
func (c *Client) Guidance(ctx context.Context, input string, kind GuidanceKind) (string, error) {
	return c.generate(ctx, c.flashModel, GuidancePrompt(input, kind))
}

// GuidanceBundle holds all three guidance sections for one condition.
type GuidanceBundle struct {
	NutrientsAndAvoid string
	FoodSources       string
	Interactions      string
}

// GuidanceAll fetches the three guidance sections concurrently.
func (c *Client) GuidanceAll(ctx context.Context, input string) (GuidanceBundle, error) {
	var bundle GuidanceBundle

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(3)

	g.Go(func() error {
		out, err := c.Guidance(gCtx, input, GuidanceNutrientsAndAvoid)
		bundle.NutrientsAndAvoid = out
		return err
	})
	g.Go(func() error {
		out, err := c.Guidance(gCtx, input, GuidanceFoodSources)
		bundle.FoodSources = out
		return err
	})
	g.Go(func() error {
		out, err := c.Guidance(gCtx, input, GuidanceInteractions)
		bundle.Interactions = out
		return err
	})

	if err := g.Wait(); err != nil {
		return GuidanceBundle{}, err
	}
	return bundle, nil
}

// GroundedSearch answers a query with Google Search grounding and returns
// the web sources the model cited.
func (c *Client) GroundedSearch(ctx context.Context, query string) (SearchResult, error) {
	cfg := &genai.GenerateContentConfig{
		Tools: []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}},
	}
	resp, err := c.client.Models.GenerateContent(ctx, c.flashModel, genai.Text(query), cfg)
	if err != nil {
		return SearchResult{}, fmt.Errorf("grounded search: %w", err)
	}

	result := SearchResult{Text: resp.Text()}
	if len(resp.Candidates) > 0 && resp.Candidates[0].GroundingMetadata != nil {
		for _, chunk := range resp.Candidates[0].GroundingMetadata.GroundingChunks {
			if chunk.Web == nil {
				continue
			}
			result.Sources = append(result.Sources, WebSource{
				URI:   chunk.Web.URI,
				Title: chunk.Web.Title,
			})
		}
	}
	return result, nil
}

// ChatSession is a history-carrying assistant conversation.
type ChatSession struct {
	chat *genai.Chat
}

// StartChat opens a chat session seeded with prior history.
func (c *Client) StartChat(ctx context.Context, history []model.ChatMessage) (*ChatSession, error) {
	contents := make([]*genai.Content, 0, len(history))
	for _, m := range history {
		role := genai.Role(genai.RoleUser)
		if m.Role == model.RoleModel {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(m.Text, role))
	}

	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(chatSystemInstruction, genai.RoleUser),
	}
	chat, err := c.client.Chats.Create(ctx, c.flashModel, cfg, contents)
	if err != nil {
		return nil, fmt.Errorf("creating chat session: %w", err)
	}
	return &ChatSession{chat: chat}, nil
}

// Send sends one user message and returns the model's reply.
func (s *ChatSession) Send(ctx context.Context, message string) (string, error) {
	resp, err := s.chat.SendMessage(ctx, genai.Part{Text: message})
	if err != nil {
		return "", fmt.Errorf("sending chat message: %w", err)
	}
	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("empty chat response")
	}
	return text, nil
}

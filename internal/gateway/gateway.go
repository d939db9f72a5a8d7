package gateway

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"sync"
	"time"

	"spotfinder-ai/internal/config"
	"spotfinder-ai/internal/shared"
	"spotfinder-ai/internal/spot"

	"github.com/google/generative-ai-go/genai"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
)

// Client is the AI gateway consumed by the application controller and the
// profile store. Every call is a single attempt against the model; failures
// carry a user-readable German message.
type Client interface {
	FindPhotoSpots(ctx context.Context, criteria spot.SearchCriteria, location shared.Coordinates) ([]spot.PhotoSpot, error)
	GeneratePhotoshootPlan(ctx context.Context, criteria spot.PlannerCriteria, dateTime string) (*spot.PhotoshootPlan, error)
	GetTimeSlotSuggestions(ctx context.Context, criteria spot.PlannerCriteria) ([]spot.TimeSlotSuggestion, error)
	GeocodeLocation(ctx context.Context, address string) (*spot.GeocodedLocation, error)
	ReverseGeocode(ctx context.Context, coords shared.Coordinates) (string, error)
	GenerateSpotImage(ctx context.Context, name, description string) (string, error)
	GenerateMoodImages(ctx context.Context, prompts []string) ([]*string, error)
	AnalyzeImage(ctx context.Context, imageBase64 string) (*spot.ImageAnalysis, error)
	GetFollowUpAnswer(ctx context.Context, plan *spot.PhotoshootPlan, question string) (string, error)
	GenerateCreativeIdeas(ctx context.Context, motivs []string) ([]spot.GeneratedIdea, error)
	Close() error
}

// Recorder receives operational metadata for every gateway call.
type Recorder interface {
	RecordMeta(meta shared.RequestMeta) error
}

// geminiGateway is a Client backed by the Google Gemini API.
type geminiGateway struct {
	client     *genai.Client
	textModel  string
	imageModel string
	recorder   Recorder
}

// NewGeminiClient creates a new Gemini-backed gateway. The recorder may be
// nil if no usage metrics are wanted.
func NewGeminiClient(ctx context.Context, cfg *config.Config, recorder Recorder) (Client, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.GeminiAPIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &geminiGateway{
		client:     client,
		textModel:  cfg.TextModel,
		imageModel: cfg.ImageModel,
		recorder:   recorder,
	}, nil
}

// Close closes the underlying Gemini client.
func (g *geminiGateway) Close() error {
	return g.client.Close()
}

// generateJSON runs a structured-output request against the text model and
// returns the raw JSON payload.
func (g *geminiGateway) generateJSON(ctx context.Context, call, prompt string, schema *genai.Schema, temperature float32) ([]byte, error) {
	model := g.client.GenerativeModel(g.textModel)
	model.ResponseMIMEType = "application/json"
	model.ResponseSchema = schema
	model.SetTemperature(temperature)

	text, err := g.generate(ctx, call, g.textModel, model, genai.Text(prompt))
	if err != nil {
		return nil, err
	}
	return []byte(text), nil
}

// generateText runs a plain-text request against the text model.
func (g *geminiGateway) generateText(ctx context.Context, call, prompt string) (string, error) {
	model := g.client.GenerativeModel(g.textModel)
	return g.generate(ctx, call, g.textModel, model, genai.Text(prompt))
}

func (g *geminiGateway) generate(ctx context.Context, call, modelName string, model *genai.GenerativeModel, parts ...genai.Part) (string, error) {
	start := time.Now()
	resp, err := model.GenerateContent(ctx, parts...)
	g.record(call, modelName, resp, start)
	if err != nil {
		return "", err
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content generated")
	}
	text, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return "", fmt.Errorf("generated content is not text")
	}
	return strings.TrimSpace(string(text)), nil
}

// generateImage runs a request against the image model and returns the raw
// image bytes of the first blob part.
func (g *geminiGateway) generateImage(ctx context.Context, call, prompt string) ([]byte, error) {
	model := g.client.GenerativeModel(g.imageModel)

	start := time.Now()
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	g.record(call, g.imageModel, resp, start)
	if err != nil {
		return nil, err
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("no content generated")
	}
	for _, part := range resp.Candidates[0].Content.Parts {
		if blob, ok := part.(genai.Blob); ok {
			return blob.Data, nil
		}
	}
	return nil, fmt.Errorf("no image data in response")
}

func (g *geminiGateway) record(call, modelName string, resp *genai.GenerateContentResponse, start time.Time) {
	if g.recorder == nil || resp == nil || resp.UsageMetadata == nil {
		return
	}
	meta := shared.RequestMeta{
		Call: call,
		Usage: shared.TokenUsage{
			PromptTokens:     int(resp.UsageMetadata.PromptTokenCount),
			CompletionTokens: int(resp.UsageMetadata.CandidatesTokenCount),
			TotalTokens:      int(resp.UsageMetadata.TotalTokenCount),
			Model:            modelName,
		},
		Latency: time.Since(start),
	}
	if err := g.recorder.RecordMeta(meta); err != nil {
		log.Warn().Err(err).Str("call", call).Msg("failed to record gateway metrics")
	}
}

// FindPhotoSpots asks the model for 5-7 spots matching the quick-search
// criteria around the given location.
func (g *geminiGateway) FindPhotoSpots(ctx context.Context, criteria spot.SearchCriteria, location shared.Coordinates) ([]spot.PhotoSpot, error) {
	data, err := g.generateJSON(ctx, "FindPhotoSpots", findSpotsPrompt(criteria, location), photoSpotSchema, 0.7)
	if err != nil {
		return nil, humanizeError(err, ctxFindSpots)
	}
	spots, err := parseSpots(data)
	if err != nil {
		return nil, humanizeError(err, ctxFindSpots)
	}
	return spots, nil
}

// GeneratePhotoshootPlan asks the model for a full shoot plan. When dateTime
// is non-empty the plan is pinned to that moment, otherwise the model picks
// the optimal one within the criteria's date range.
func (g *geminiGateway) GeneratePhotoshootPlan(ctx context.Context, criteria spot.PlannerCriteria, dateTime string) (*spot.PhotoshootPlan, error) {
	data, err := g.generateJSON(ctx, "GeneratePhotoshootPlan", planPrompt(criteria, dateTime), photoshootPlanSchema, 0.8)
	if err != nil {
		return nil, humanizeError(err, ctxPlan)
	}
	plan, err := parsePlan(data)
	if err != nil {
		return nil, humanizeError(err, ctxPlan)
	}
	return plan, nil
}

// GetTimeSlotSuggestions asks the model for shooting windows matching the
// planner's weather and light preferences.
func (g *geminiGateway) GetTimeSlotSuggestions(ctx context.Context, criteria spot.PlannerCriteria) ([]spot.TimeSlotSuggestion, error) {
	data, err := g.generateJSON(ctx, "GetTimeSlotSuggestions", suggestionsPrompt(criteria), suggestionSchema, 0.6)
	if err != nil {
		return nil, humanizeError(err, ctxSuggestions)
	}
	suggestions, err := parseSuggestions(data)
	if err != nil {
		return nil, humanizeError(err, ctxSuggestions)
	}
	return suggestions, nil
}

// GeocodeLocation resolves a free-text address to coordinates.
func (g *geminiGateway) GeocodeLocation(ctx context.Context, address string) (*spot.GeocodedLocation, error) {
	data, err := g.generateJSON(ctx, "GeocodeLocation", geocodePrompt(address), geocodeSchema, 0.1)
	if err != nil {
		return nil, humanizeError(err, ctxGeocode)
	}
	loc, err := parseGeocode(data)
	if err != nil {
		return nil, humanizeError(err, ctxGeocode)
	}
	return loc, nil
}

// ReverseGeocode names the nearest town for a pair of coordinates.
func (g *geminiGateway) ReverseGeocode(ctx context.Context, coords shared.Coordinates) (string, error) {
	name, err := g.generateText(ctx, "ReverseGeocode", reverseGeocodePrompt(coords))
	if err != nil {
		return "", humanizeError(err, ctxReverseGeocode)
	}
	if name == "" {
		return "", humanizeError(fmt.Errorf("empty location name"), ctxReverseGeocode)
	}
	return name, nil
}

// GenerateSpotImage renders a photorealistic preview of a spot and returns
// it base64 encoded.
func (g *geminiGateway) GenerateSpotImage(ctx context.Context, name, description string) (string, error) {
	data, err := g.generateImage(ctx, "GenerateSpotImage", spotImagePrompt(name, description))
	if err != nil {
		return "", humanizeError(err, ctxImage)
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

// GenerateMoodImages renders one image per prompt. Slots whose generation
// fails are nil; the call only errors if the context is cancelled.
func (g *geminiGateway) GenerateMoodImages(ctx context.Context, prompts []string) ([]*string, error) {
	images := make([]*string, len(prompts))
	var wg sync.WaitGroup
	for i, prompt := range prompts {
		wg.Add(1)
		go func(i int, prompt string) {
			defer wg.Done()
			data, err := g.generateImage(ctx, "GenerateMoodImages", prompt)
			if err != nil {
				log.Warn().Err(err).Int("slot", i).Msg("mood image generation failed")
				return
			}
			encoded := base64.StdEncoding.EncodeToString(data)
			images[i] = &encoded
		}(i, prompt)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, humanizeError(err, ctxMoodImage)
	}
	return images, nil
}

// AnalyzeImage extracts photographic elements and a color palette from a
// base64-encoded image.
func (g *geminiGateway) AnalyzeImage(ctx context.Context, imageBase64 string) (*spot.ImageAnalysis, error) {
	raw, err := base64.StdEncoding.DecodeString(imageBase64)
	if err != nil {
		return nil, humanizeError(fmt.Errorf("invalid image encoding: %w", err), ctxAnalyze)
	}

	model := g.client.GenerativeModel(g.textModel)
	model.ResponseMIMEType = "application/json"
	model.ResponseSchema = imageAnalysisSchema

	text, err := g.generate(ctx, "AnalyzeImage", g.textModel, model, genai.ImageData("jpeg", raw), genai.Text(analyzeImagePrompt))
	if err != nil {
		return nil, humanizeError(err, ctxAnalyze)
	}
	analysis, err := parseAnalysis([]byte(text))
	if err != nil {
		return nil, humanizeError(err, ctxAnalyze)
	}
	return analysis, nil
}

// GetFollowUpAnswer answers a question in the context of a generated plan.
func (g *geminiGateway) GetFollowUpAnswer(ctx context.Context, plan *spot.PhotoshootPlan, question string) (string, error) {
	prompt, err := followUpPrompt(plan, question)
	if err != nil {
		return "", humanizeError(err, ctxFollowUp)
	}
	answer, err := g.generateText(ctx, "GetFollowUpAnswer", prompt)
	if err != nil {
		return "", humanizeError(err, ctxFollowUp)
	}
	return answer, nil
}

// GenerateCreativeIdeas produces three shoot concepts for the given motifs.
func (g *geminiGateway) GenerateCreativeIdeas(ctx context.Context, motivs []string) ([]spot.GeneratedIdea, error) {
	data, err := g.generateJSON(ctx, "GenerateCreativeIdeas", ideasPrompt(motivs), creativeIdeaSchema, 0.9)
	if err != nil {
		return nil, humanizeError(err, ctxIdeas)
	}
	ideas, err := parseIdeas(data)
	if err != nil {
		return nil, humanizeError(err, ctxIdeas)
	}
	return ideas, nil
}

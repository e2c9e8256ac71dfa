package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sashabaranov/go-openai"
	"github.com/sashabaranov/go-openai/jsonschema"

	"github.com/Huzaifa-dev-Og/docmed-ai/internal/config"
	"github.com/Huzaifa-dev-Og/docmed-ai/internal/models"
	"github.com/Huzaifa-dev-Og/docmed-ai/internal/prompts"
	"github.com/Huzaifa-dev-Og/docmed-ai/internal/util"
)

// ChatCompletionClient is the slice of the OpenAI client the service needs.
// *openai.Client satisfies it; tests substitute a double.
type ChatCompletionClient interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// OpenAIService handles all interactions with the OpenAI API
type OpenAIService struct {
	client      ChatCompletionClient
	model       string
	temperature float32
	maxTokens   int
	logger      *util.Logger
}

// NewOpenAIService creates a new OpenAI service instance
func NewOpenAIService(cfg *config.Config) *OpenAIService {
	return NewOpenAIServiceWithClient(cfg, openai.NewClient(cfg.OpenAIAPIKey))
}

// NewOpenAIServiceWithClient creates a service backed by the given client
func NewOpenAIServiceWithClient(cfg *config.Config, client ChatCompletionClient) *OpenAIService {
	return &OpenAIService{
		client:      client,
		model:       cfg.OpenAIModel,
		temperature: cfg.OpenAITemperature,
		maxTokens:   cfg.OpenAIMaxTokens,
		logger:      util.NewLogger("OpenAIService"),
	}
}

// GenerateMedicalInfo generates structured medical information for a query.
// Single attempt: provider failures and malformed replies surface as errors,
// no retry.
func (os *OpenAIService) GenerateMedicalInfo(ctx context.Context, query string) (*models.MedicalInfo, error) {
	os.logger.Start("Medical Info Generation")

	prompt := prompts.MedicalPrompt(query)
	schema := prompts.MedicalInfoSchema()

	content, err := os.callOpenAI(ctx, prompt, schema)
	if err != nil {
		os.logger.Error("Failed to generate medical info", err)
		os.logger.End("Medical Info Generation")
		return nil, err
	}

	info, err := parseMedicalInfo(content)
	if err != nil {
		os.logger.Error("Failed to parse response", err)
		os.logger.End("Medical Info Generation")
		return nil, err
	}

	os.logger.Success("Medical info generated")
	os.logger.End("Medical Info Generation")
	return info, nil
}

// callOpenAI makes a structured-output call to the OpenAI API
func (os *OpenAIService) callOpenAI(ctx context.Context, prompt string, schema jsonschema.Definition) (string, error) {
	resp, err := os.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: os.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: os.temperature,
		MaxTokens:   os.maxTokens,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:        util.MedicalInfoSchemaName,
				Description: "Structured educational medical information",
				Schema:      &schema,
			},
		},
	})

	if err != nil {
		return "", fmt.Errorf("openai api call failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from openai")
	}

	return resp.Choices[0].Message.Content, nil
}

// parseMedicalInfo parses the model's reply into a MedicalInfo
func parseMedicalInfo(content string) (*models.MedicalInfo, error) {
	var info models.MedicalInfo
	if err := json.Unmarshal([]byte(content), &info); err != nil {
		return nil, fmt.Errorf("failed to parse medical info response json: %w", err)
	}
	return &info, nil
}

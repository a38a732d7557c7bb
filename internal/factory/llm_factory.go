package factory

import (
	"context"
	"fmt"

	"github.com/mikey/resume-screener/internal/adapters/bedrock"
	"github.com/mikey/resume-screener/internal/adapters/gemini"
	"github.com/mikey/resume-screener/internal/adapters/openai"
	"github.com/mikey/resume-screener/internal/config"
	"github.com/mikey/resume-screener/internal/core"
	"go.uber.org/zap"
)

// LLMFactory creates text-generation clients
type LLMFactory struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewLLMFactory creates a new LLM factory
func NewLLMFactory(cfg *config.Config, logger *zap.Logger) *LLMFactory {
	return &LLMFactory{
		cfg:    cfg,
		logger: logger,
	}
}

// CreateTextGenerator creates a new text generator based on the configuration
func (f *LLMFactory) CreateTextGenerator() (core.TextGenerator, error) {
	llmConfig := f.cfg.GetLLM()

	switch llmConfig.Provider {
	case "openai":
		oai := f.cfg.GetOpenAI()
		if oai.APIKey == "" {
			return nil, fmt.Errorf("openai.api_key is not set")
		}
		return openai.NewOpenAIClient(
			oai.APIKey,
			oai.BaseURL,
			oai.ModelName,
			oai.MaxTokens,
			oai.Temperature,
			oai.TopP,
			f.logger,
		), nil
	case "gemini":
		gem := f.cfg.GetGemini()
		if gem.APIKey == "" {
			return nil, fmt.Errorf("gemini.api_key is not set")
		}
		return gemini.NewGeminiClient(
			gem.APIKey,
			gem.ModelName,
			gem.MaxTokens,
			gem.Temperature,
			gem.TopP,
			f.logger,
		)
	case "bedrock":
		br := f.cfg.GetBedrock()
		return bedrock.NewBedrockClient(
			context.Background(),
			br.Region,
			br.ModelID,
			br.MaxTokens,
			br.Temperature,
			br.TopP,
			f.logger,
		)
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", llmConfig.Provider)
	}
}

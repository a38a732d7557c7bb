package di

import (
	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/mikey/resume-screener/internal/adapters/pdftext"
	"github.com/mikey/resume-screener/internal/adapters/store"
	"github.com/mikey/resume-screener/internal/config"
	"github.com/mikey/resume-screener/internal/core"
	"github.com/mikey/resume-screener/internal/factory"
	"github.com/mikey/resume-screener/internal/logging"
	"github.com/mikey/resume-screener/internal/utils"
)

// maxResumeSize returns the active provider's resume size cap.
func maxResumeSize(cfg *config.Config) int {
	switch cfg.GetLLM().Provider {
	case "gemini":
		return cfg.GetGemini().MaxResumeSize
	case "bedrock":
		return cfg.GetBedrock().MaxResumeSize
	default:
		return cfg.GetOpenAI().MaxResumeSize
	}
}

// BuildContainer creates and configures a dependency injection container
func BuildContainer() (*dig.Container, error) {
	container := dig.New()

	// Register configuration
	if err := container.Provide(config.New); err != nil {
		return nil, err
	}

	// Register logger
	if err := container.Provide(logging.InitLogger); err != nil {
		return nil, err
	}

	// Register factories
	if err := container.Provide(factory.NewLLMFactory); err != nil {
		return nil, err
	}
	if err := container.Provide(factory.NewCacheFactory); err != nil {
		return nil, err
	}
	if err := container.Provide(factory.NewSourceFactory); err != nil {
		return nil, err
	}

	// Register text generator. A failed provider setup degrades the pipeline
	// to its failure sentinel instead of aborting the run, so the error is
	// logged and a nil generator is handed downstream.
	if err := container.Provide(func(f *factory.LLMFactory, logger *zap.Logger) core.TextGenerator {
		generator, err := f.CreateTextGenerator()
		if err != nil {
			logger.Error("Failed to initialize text generator", zap.Error(err))
			return nil
		}
		return generator
	}); err != nil {
		return nil, err
	}

	// Register text processor
	if err := container.Provide(utils.NewTextProcessor); err != nil {
		return nil, err
	}

	// Register profile generator
	if err := container.Provide(func(llm core.TextGenerator, tp *utils.TextProcessor, cfg *config.Config, logger *zap.Logger) *core.ProfileGenerator {
		llmCfg := cfg.GetLLM()
		return core.NewProfileGenerator(llm, tp, logger, llmCfg.MaxAttempts, llmCfg.BackoffUnit, maxResumeSize(cfg))
	}); err != nil {
		return nil, err
	}

	// Register narrative cache
	if err := container.Provide(func(f *factory.CacheFactory) (core.NarrativeCache, error) {
		return f.CreateNarrativeCache()
	}); err != nil {
		return nil, err
	}

	// Register mail source
	if err := container.Provide(func(f *factory.SourceFactory) (core.MailSource, error) {
		return f.CreateMailSource()
	}); err != nil {
		return nil, err
	}

	// Register attachment store
	if err := container.Provide(func(cfg *config.Config, logger *zap.Logger) (core.AttachmentStore, error) {
		return store.NewFSStore(cfg.GetIngest().TempDir, logger)
	}); err != nil {
		return nil, err
	}

	// Register text extractor
	if err := container.Provide(func(logger *zap.Logger) core.TextExtractor {
		return pdftext.NewExtractor(logger)
	}); err != nil {
		return nil, err
	}

	// Register screening service
	if err := container.Provide(func(
		source core.MailSource,
		st core.AttachmentStore,
		extractor core.TextExtractor,
		generator *core.ProfileGenerator,
		cache core.NarrativeCache,
		cacheFactory *factory.CacheFactory,
		cfg *config.Config,
		logger *zap.Logger,
	) (*core.ScreeningService, error) {
		ttl, err := cacheFactory.GetCacheTTL()
		if err != nil {
			return nil, err
		}
		ingest := cfg.GetIngest()
		return core.NewScreeningService(
			source,
			st,
			extractor,
			generator,
			cache,
			logger,
			cacheFactory.IsCacheEnabled(),
			ttl,
			ingest.MaxMessages,
			ingest.DaysFilter,
		), nil
	}); err != nil {
		return nil, err
	}

	return container, nil
}

package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/viper"

	sqlitevec "github.com/bnema/course-tutor/internal/adapters/index/sqlitevec"
	"github.com/bnema/course-tutor/internal/adapters/llm"
	"github.com/bnema/course-tutor/internal/adapters/moodle"
	tomlrepo "github.com/bnema/course-tutor/internal/adapters/repo/toml"
	chainstore "github.com/bnema/course-tutor/internal/adapters/secrets/chain"
	"github.com/bnema/course-tutor/internal/application"
	"github.com/bnema/course-tutor/internal/config"
	"github.com/bnema/course-tutor/internal/ports"
)

type app struct {
	cfg         config.Config
	logger      *slog.Logger
	credentials *application.CredentialService
	metrics     ports.Metrics
}

// wireApp loads configuration and the secret store. Platform, reasoning and
// index adapters are built on demand by the commands that need them.
func wireApp(configFile string, logOutput io.Writer) (*app, error) {
	cfg, err := config.Load(viper.New(), configFile)
	if err != nil {
		return nil, err
	}

	logger, err := config.NewLogger(cfg.Log, logOutput)
	if err != nil {
		return nil, err
	}

	secretStore, err := chainstore.NewPassFirstWithFileFallback(cfg.Secrets.FileRoot)
	if err != nil {
		return nil, fmt.Errorf("wire secret store chain: %w", err)
	}

	return &app{
		cfg:         cfg,
		logger:      logger,
		credentials: application.NewCredentialService(secretStore),
		metrics:     ports.NoopMetrics{},
	}, nil
}

// wireResolvedApp is wireApp plus secret resolution, for commands that talk
// to the platform or the reasoning API.
func wireResolvedApp(ctx context.Context, configFile string, logOutput io.Writer) (*app, error) {
	a, err := wireApp(configFile, logOutput)
	if err != nil {
		return nil, err
	}
	if err := a.cfg.ResolveSecrets(ctx, a.credentials); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *app) platformConfig() moodle.Config {
	return moodle.Config{
		BaseURL:     a.cfg.Platform.BaseURL,
		LoginPath:   a.cfg.Platform.LoginPath,
		CatalogPath: a.cfg.Platform.CatalogPath,
		Username:    a.cfg.Platform.Username,
		Password:    a.cfg.Platform.Password,
		Timeout:     a.cfg.Platform.Timeout,
	}
}

func (a *app) catalogFetcher() *moodle.CatalogFetcher {
	return moodle.NewCatalogFetcher(a.platformConfig(), a.logger)
}

func (a *app) courseService() (*application.CourseService, error) {
	if err := a.cfg.RequirePlatform(); err != nil {
		return nil, err
	}

	platform := a.platformConfig()
	return application.NewCourseService(
		moodle.NewAuthenticator(platform, a.logger),
		moodle.NewCatalogFetcher(platform, a.logger),
		moodle.NewExtractor(a.cfg.Platform.SummaryKeywords, moodle.DefaultContentSelectors(), a.logger),
		a.metrics,
		a.logger,
	), nil
}

func (a *app) tutor() (*application.Tutor, error) {
	if err := a.cfg.RequireReasoning(); err != nil {
		return nil, err
	}
	courses, err := a.courseService()
	if err != nil {
		return nil, err
	}

	client := llm.NewClient(a.cfg.Reasoning.APIKey, a.cfg.Reasoning.BaseURL)
	tutorAgent := llm.NewAgent(client, llm.AgentOptions{
		Model:         a.cfg.Reasoning.Model,
		Temperature:   a.cfg.Reasoning.Temperature,
		MaxIterations: a.cfg.Reasoning.MaxIterations,
	}, a.logger.With(slog.String("agent", "tutor")))
	rewriter := llm.NewAgent(client, llm.AgentOptions{
		Model:         a.cfg.Reasoning.RewriteModel,
		Temperature:   a.cfg.Reasoning.Temperature,
		MaxIterations: a.cfg.Reasoning.MaxIterations,
	}, a.logger.With(slog.String("agent", "rewriter")))

	router := application.NewRouter(tutorAgent, rewriter, courses.Tools(), a.metrics, a.logger)
	return application.NewTutor(courses, router), nil
}

// suggestions wires the retrieval service. The returned close func releases
// the index database.
func (a *app) suggestions() (*application.SuggestionService, func() error, error) {
	if err := a.cfg.RequireReasoning(); err != nil {
		return nil, nil, err
	}

	faq, err := a.loadFAQ()
	if err != nil {
		return nil, nil, err
	}

	snapshots, err := tomlrepo.NewSnapshotRepository(a.cfg.Index.SnapshotPath)
	if err != nil {
		return nil, nil, fmt.Errorf("wire snapshot repository: %w", err)
	}

	client := llm.NewClient(a.cfg.Reasoning.APIKey, a.cfg.Reasoning.BaseURL)
	store, err := sqlitevec.Open(a.cfg.Index.Path, llm.NewEmbedder(client, a.cfg.Reasoning.EmbeddingModel), a.logger)
	if err != nil {
		return nil, nil, fmt.Errorf("open course index: %w", err)
	}

	reasoner := llm.NewAgent(client, llm.AgentOptions{
		Model:         a.cfg.Reasoning.SuggestModel,
		Temperature:   a.cfg.Reasoning.Temperature,
		MaxIterations: 1,
	}, a.logger.With(slog.String("agent", "suggest")))

	directory := &moodle.WebServiceClient{
		BaseURL: a.cfg.Platform.BaseURL,
		Path:    a.cfg.Platform.WebServicePath,
		Token:   a.cfg.Platform.WebServiceToken,
		Timeout: a.cfg.Platform.Timeout,
		Logger:  a.logger,
	}

	service := application.NewSuggestionService(directory, store, snapshots, reasoner, ports.SystemClock{}, a.metrics, a.logger,
		application.SuggestionOptions{FAQ: faq})
	return service, store.Close, nil
}

func (a *app) snapshotRepository() (*tomlrepo.SnapshotRepository, error) {
	return tomlrepo.NewSnapshotRepository(a.cfg.Index.SnapshotPath)
}

func (a *app) loadFAQ() (string, error) {
	if a.cfg.Index.FAQPath == "" {
		return "", nil
	}
	data, err := os.ReadFile(a.cfg.Index.FAQPath)
	if err != nil {
		return "", fmt.Errorf("read faq file: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

package cli

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/resumecoach/backend/auth"
	"github.com/resumecoach/backend/chat"
	"github.com/resumecoach/backend/coach"
	"github.com/resumecoach/backend/config"
	"github.com/resumecoach/backend/document"
	"github.com/resumecoach/backend/embedding"
	"github.com/resumecoach/backend/llm"
	"github.com/resumecoach/backend/rag"
	"github.com/resumecoach/backend/retrieval"
	"github.com/resumecoach/backend/storage"
	"github.com/resumecoach/backend/tools"
	"github.com/resumecoach/backend/trends"
)

// App holds the wired components shared by the HTTP server and the CLI commands
type App struct {
	Config    *config.Config
	Prompts   *llm.Prompts
	Generator llm.Generator
	Embedder  embedding.Embedder
	Extractor *document.Extractor
	Chunker   *document.Chunker
	Retriever *retrieval.Retriever
	Fetcher   trends.Fetcher
	Coach     *coach.Coach
	Docs      *rag.Service
	Chat      *chat.Store
	Sessions  *auth.JWTService
	Tools     *tools.ToolRegistry
}

// appFactory is replaced in tests to avoid building real model clients
var appFactory = NewApp

// NewApp builds the model clients selected by cfg and wires every component
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	prompts, err := llm.LoadPrompts(cfg.PromptsFile)
	if err != nil {
		return nil, err
	}

	gen, err := llm.New(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize generator: %w", err)
	}

	emb, err := embedding.New(ctx, cfg)
	if err != nil {
		gen.Close()
		return nil, fmt.Errorf("failed to initialize embedder: %w", err)
	}

	return Assemble(cfg, prompts, gen, emb, trends.New(cfg)), nil
}

// Assemble wires the components around already constructed clients
func Assemble(cfg *config.Config, prompts *llm.Prompts, gen llm.Generator, emb embedding.Embedder, fetcher trends.Fetcher) *App {
	if prompts == nil {
		prompts = llm.DefaultPrompts()
	}

	app := &App{
		Config:    cfg,
		Prompts:   prompts,
		Generator: gen,
		Embedder:  emb,
		Extractor: document.NewExtractor(),
		Chunker:   document.NewChunker(cfg.ChunkSize),
		Fetcher:   fetcher,
		Sessions:  auth.NewJWTService(cfg),
	}
	app.Retriever = retrieval.NewRetriever(emb, cfg.TopK)

	app.Coach = coach.NewCoach(gen, fetcher,
		coach.WithRetriever(app.Retriever, app.Chunker),
		coach.WithPrompts(prompts),
		coach.WithDefaultTrendQuery(cfg.DefaultTrendQuery),
	)
	app.Docs = rag.NewService(app.Extractor, app.Chunker, app.Retriever, gen, prompts)
	app.Chat = chat.NewStore(gen, prompts.ChatSystem, time.Duration(cfg.SessionTTLHours)*time.Hour)

	app.Tools = tools.NewToolRegistry()
	app.Tools.Register(tools.NewFetchTrendsTool(fetcher, cfg.DefaultTrendQuery))
	app.Tools.Register(tools.NewExtractSectionsTool())
	app.Tools.Register(tools.NewResumeFeedbackTool(app.Coach))
	if app.DocsEnabled() {
		app.Tools.Register(tools.NewAskDocumentsTool(app.Docs))
	}

	return app
}

// DocsEnabled reports whether a document folder or bucket is configured
func (a *App) DocsEnabled() bool {
	return a.Config.DocsDir != "" || a.Config.DocsBucket != ""
}

// IndexConfigured indexes the document folder and bucket named in the config
func (a *App) IndexConfigured(ctx context.Context) error {
	if a.Config.DocsDir != "" {
		if _, err := a.Docs.IndexDir(ctx, a.Config.DocsDir); err != nil {
			return err
		}
	}

	if a.Config.DocsBucket != "" {
		log.Printf("[App] Indexing gs://%s/%s", a.Config.DocsBucket, a.Config.DocsPrefix)
		client, err := storage.NewCloudStorageClient(ctx, a.Config.DocsBucket)
		if err != nil {
			return err
		}
		defer client.Close()

		if _, err := a.Docs.IndexBucket(ctx, client, a.Config.DocsPrefix); err != nil {
			return err
		}
	}
	return nil
}

// Close releases the model clients
func (a *App) Close() {
	if err := a.Generator.Close(); err != nil {
		log.Printf("[App] Failed to close generator: %v", err)
	}
	if err := a.Embedder.Close(); err != nil {
		log.Printf("[App] Failed to close embedder: %v", err)
	}
}

package app

import (
	"context"
	"fmt"
	"log"

	"github.com/anny12sstr/converter-analyses/internal/api/handlers"
	"github.com/anny12sstr/converter-analyses/internal/config"
	"github.com/anny12sstr/converter-analyses/internal/core/extraction_engine"
	"github.com/anny12sstr/converter-analyses/internal/core/llm"
	objectclient "github.com/anny12sstr/converter-analyses/internal/core/object-client"
)

type App struct {
	Completer *llm.GeminiCompleter
	Server    *Server
}

// NewApp constructs every client once and injects it into the handlers.
// Nothing here is a process-wide singleton; tests substitute mocks through
// the same constructors.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	completer, err := llm.NewGeminiCompleter(ctx, cfg.GeminiAPIKey, cfg.GenModel)
	if err != nil {
		return nil, fmt.Errorf("couldn't initialize the completion client, %w", err)
	}
	log.Println("Completion client initialized and ready.")

	extractor := extraction_engine.NewDocconvExtractor()

	var objects objectclient.ObjectClient
	var uploadHandler *handlers.UploadHandler
	if cfg.HasStorage() {
		objects, err = objectclient.NewR2Client(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("couldn't initialize the object client, %w", err)
		}
		uploadHandler = handlers.NewUploadHandler(objects, cfg.PresignTTL)
	} else {
		log.Println("Object storage not configured; pre-signed upload flow disabled.")
	}

	var intake handlers.Intake
	switch cfg.IntakeMode {
	case config.IntakeBase64:
		intake = &handlers.InlineIntake{MaxBytes: cfg.MaxUploadBytes}
	default:
		intake = &handlers.MultipartIntake{MaxBytes: cfg.MaxUploadBytes}
	}

	convertHandler := handlers.NewConvertHandler(intake, extractor, completer, objects, cfg.TableMode)
	server := NewServer(cfg, convertHandler, uploadHandler)

	return &App{Completer: completer, Server: server}, nil
}

func (a *App) Close() {
	if a.Completer != nil {
		_ = a.Completer.Close()
	}
}

package bootstrap

import (
	"strings"

	"github.com/gin-gonic/gin"

	"studybuddy-backend/internal/ai"
	"studybuddy-backend/internal/ai/hf"
	"studybuddy-backend/internal/auth"
	"studybuddy-backend/internal/documents"
	"studybuddy-backend/internal/extract"
	"studybuddy-backend/internal/shared/config"
	"studybuddy-backend/internal/shared/server"
	"studybuddy-backend/internal/shared/storage/object"
	localstore "studybuddy-backend/internal/shared/storage/object/local"
	"studybuddy-backend/internal/shared/telemetry"
)

// App holds the wired dependencies for main and for tests.
type App struct {
	Config        config.Config
	Router        *gin.Engine
	Blobs         object.Store
	DocumentsRepo *documents.MemoryRepo
	History       *ai.History
	AuthService   *auth.Service
	DocService    *documents.Service
	AIService     *ai.Service
}

// Options lets tests swap the external collaborators.
type Options struct {
	Extractor documents.Extractor
	Generator ai.Generator
}

// Build wires the application with its default collaborators.
func Build(cfg config.Config) (*App, error) {
	return BuildWith(cfg, Options{})
}

// BuildWith wires the application, using the provided collaborators where
// set. Document and history state start empty and live as long as the app.
func BuildWith(cfg config.Config, opts Options) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.UploadDir) == "" {
		cfg.UploadDir = "uploads"
	}

	extractor := opts.Extractor
	if extractor == nil {
		extractor = extract.PDF{}
	}

	generator := opts.Generator
	if generator == nil {
		client, err := hf.NewClient(cfg.HFAPIKey, cfg.HFModel, cfg.HFTimeout)
		if err != nil {
			return nil, err
		}
		generator = client
	}

	blobs := localstore.New(cfg.UploadDir)
	repo := documents.NewMemoryRepo()
	history := ai.NewHistory()

	authSvc := &auth.Service{
		Email:    cfg.AuthEmail,
		Password: cfg.AuthPassword,
		Name:     cfg.AuthName,
		TokenTTL: cfg.TokenTTL,
	}
	docSvc := &documents.Service{Repo: repo, Blobs: blobs, Extract: extractor}
	aiSvc := &ai.Service{
		Docs:            docSvc,
		Gen:             generator,
		History:         history,
		MaxContextChars: cfg.MaxContextChars,
	}

	app := &App{
		Config:        cfg,
		Blobs:         blobs,
		DocumentsRepo: repo,
		History:       history,
		AuthService:   authSvc,
		DocService:    docSvc,
		AIService:     aiSvc,
	}

	app.Router = server.NewRouter(cfg, server.Handlers{
		Auth:  auth.NewHandler(authSvc),
		Files: documents.NewHandler(docSvc),
		AI:    ai.NewHandler(aiSvc),
	})

	telemetry.Info("app built", map[string]any{
		"env":        cfg.Env,
		"upload_dir": cfg.UploadDir,
		"model":      cfg.HFModel,
	})
	return app, nil
}

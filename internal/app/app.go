package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/MikhailRaia/testpost/internal/codec"
	"github.com/MikhailRaia/testpost/internal/config"
	"github.com/MikhailRaia/testpost/internal/content"
	"github.com/MikhailRaia/testpost/internal/model"
	"github.com/MikhailRaia/testpost/internal/report"
	"github.com/MikhailRaia/testpost/internal/service"
	"github.com/MikhailRaia/testpost/internal/storage"
	"github.com/MikhailRaia/testpost/internal/storage/file"
)

type App struct {
	config  *config.Config
	service *service.FixtureService
	storage storage.FixtureStorage
	stdin   io.Reader
	stdout  io.Writer
}

// NewApp wires the application to the filesystem and the process streams.
func NewApp(cfg *config.Config) (*App, error) {
	return New(cfg, file.NewStorage(cfg.OutputPath, cfg.ReportPath), os.Stdin, os.Stdout)
}

// New wires the application with explicit storage and streams.
func New(cfg *config.Config, store storage.FixtureStorage, stdin io.Reader, stdout io.Writer) (*App, error) {
	encoding, err := codec.ParseEncoding(cfg.Encoding)
	if err != nil {
		return nil, err
	}

	return &App{
		config:  cfg,
		service: service.NewFixtureService(cfg.BaseURL, encoding),
		storage: store,
		stdin:   stdin,
		stdout:  stdout,
	}, nil
}

// Run generates one fixture, prints it and saves it.
func (a *App) Run(ctx context.Context) error {
	post, err := a.loadPost()
	if err != nil {
		return err
	}

	fixture, err := a.service.Generate(ctx, post)
	if err != nil {
		return fmt.Errorf("error generating fixture: %w", err)
	}

	if err := report.WriteSummary(a.stdout, fixture); err != nil {
		return fmt.Errorf("error writing summary: %w", err)
	}

	if err := a.storage.SaveURL(fixture.URL); err != nil {
		return fmt.Errorf("error saving url: %w", err)
	}

	if err := a.storage.SaveReport(model.NewReport(fixture)); err != nil {
		return fmt.Errorf("error saving report: %w", err)
	}

	log.Debug().
		Str("path", a.config.OutputPath).
		Int("length", len(fixture.URL)).
		Msg("URL saved")

	return report.WriteSaved(a.stdout, a.config.OutputPath)
}

func (a *App) loadPost() (model.Post, error) {
	post := content.Default()

	if a.config.InputPath != "" {
		loaded, err := content.Load(a.config.InputPath, a.stdin)
		if err != nil {
			return model.Post{}, err
		}
		post = loaded
	}

	if a.config.Title != "" {
		post.Title = a.config.Title
	}

	if a.config.Minify {
		body, err := content.Minify(post.Body)
		if err != nil {
			return model.Post{}, err
		}
		post.Body = body
	}

	return post, nil
}

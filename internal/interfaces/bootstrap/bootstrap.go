// Package bootstrap builds the news check service and its collaborators from
// the loaded configuration.
package bootstrap

import (
	"context"
	"fmt"
	"io"
	"log"

	"rssNotifier/internal/application"
	"rssNotifier/internal/domain/entity"
	"rssNotifier/internal/domain/repository"
	"rssNotifier/internal/domain/service"
	"rssNotifier/internal/infrastructure/awsclient"
	"rssNotifier/internal/infrastructure/console"
	"rssNotifier/internal/infrastructure/dynamo"
	"rssNotifier/internal/infrastructure/misskey"
	"rssNotifier/internal/infrastructure/postgres"
	"rssNotifier/internal/infrastructure/rss"
	"rssNotifier/internal/infrastructure/snstopic"
	"rssNotifier/internal/infrastructure/storage"
	"rssNotifier/internal/interfaces/config"
)

type Options struct {
	// DryRun prints the notification instead of delivering it and leaves the
	// stored checkpoint untouched.
	DryRun bool
	// Output receives dry-run and console notifications. Defaults to stdout.
	Output io.Writer
}

type App struct {
	Service *application.NewsCheckService
	closers []func()
}

// Close releases store connections. Safe to call more than once.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}

func Build(ctx context.Context, cfg *config.Config, opts Options) (*App, error) {
	app := &App{}

	extractor, err := service.NewIdentityExtractor(entity.IdentityStrategy(cfg.IdentityStrategy))
	if err != nil {
		return nil, err
	}
	order, err := service.ParseOutputOrder(cfg.OutputOrder)
	if err != nil {
		return nil, err
	}

	var clients *awsclient.Clients
	awsClients := func() (*awsclient.Clients, error) {
		if clients != nil {
			return clients, nil
		}
		c, err := awsclient.New(ctx, awsclient.Options{
			SAMLocal:    cfg.SAMLocal,
			EndpointURL: cfg.AWSEndpointURL,
		})
		if err != nil {
			return nil, err
		}
		clients = c
		return c, nil
	}

	checkpointRepo, err := buildCheckpointRepository(cfg, app, awsClients)
	if err != nil {
		app.Close()
		return nil, err
	}

	var notifier repository.NotifierRepository
	if opts.DryRun {
		checkpointRepo = storage.NewReadOnlyCheckpointRepository(checkpointRepo)
		notifier = console.NewNotifierRepository(opts.Output)
	} else {
		notifier, err = buildNotifier(cfg, opts, awsClients)
		if err != nil {
			app.Close()
			return nil, err
		}
	}

	svc, err := application.NewNewsCheckService(
		application.Settings{
			StoreName:   cfg.TableName,
			Destination: cfg.TopicARN,
			FeedURL:     cfg.FeedURL,
			SiteName:    cfg.FeedName,
		},
		rss.NewFeedRepository(cfg.GetFetchTimeout()),
		checkpointRepo,
		notifier,
		service.NewNewItemFilter(extractor, order),
		timeFormatter(cfg),
	)
	if err != nil {
		app.Close()
		return nil, err
	}

	app.Service = svc
	return app, nil
}

// sqlite and postgres stores are opened on first use, so a run that fails
// configuration validation never creates a file, table or connection.
func buildCheckpointRepository(
	cfg *config.Config,
	app *App,
	awsClients func() (*awsclient.Clients, error),
) (repository.CheckpointRepository, error) {
	switch cfg.CheckpointBackend {
	case "dynamodb":
		clients, err := awsClients()
		if err != nil {
			return nil, err
		}
		return dynamo.NewCheckpointRepository(clients.DynamoDB, cfg.TableName), nil
	case "sqlite":
		lazy := storage.NewLazyCheckpointRepository(func(ctx context.Context) (repository.CheckpointRepository, error) {
			return storage.NewSQLiteCheckpointRepository(cfg.SQLitePath, cfg.TableName)
		})
		app.closers = append(app.closers, closeLazy("sqlite database", lazy))
		return lazy, nil
	case "postgres":
		lazy := storage.NewLazyCheckpointRepository(func(ctx context.Context) (repository.CheckpointRepository, error) {
			repo, err := postgres.Connect(ctx, cfg.DatabaseURL, cfg.TableName)
			if err != nil {
				return nil, err
			}
			return repo, nil
		})
		app.closers = append(app.closers, closeLazy("postgres pool", lazy))
		return lazy, nil
	case "memory":
		log.Println("Using in-memory checkpoint store; the checkpoint is lost on exit")
		return storage.NewMemoryCheckpointRepository(), nil
	default:
		return nil, fmt.Errorf("unknown checkpoint backend: %q", cfg.CheckpointBackend)
	}
}

func closeLazy(name string, lazy *storage.LazyCheckpointRepository) func() {
	return func() {
		if err := lazy.Close(); err != nil {
			log.Printf("Failed to close %s: %v", name, err)
		}
	}
}

func buildNotifier(
	cfg *config.Config,
	opts Options,
	awsClients func() (*awsclient.Clients, error),
) (repository.NotifierRepository, error) {
	switch cfg.Notifier {
	case "sns":
		clients, err := awsClients()
		if err != nil {
			return nil, err
		}
		return snstopic.NewNotifierRepository(clients.SNS), nil
	case "misskey":
		return misskey.NewNotifierRepository(misskey.Config{
			Host:      cfg.MisskeyHost,
			AuthToken: cfg.AuthToken,
			LocalOnly: cfg.LocalOnly,
			Timeout:   cfg.GetFetchTimeout(),
		}), nil
	case "console":
		return console.NewNotifierRepository(opts.Output), nil
	default:
		return nil, fmt.Errorf("unknown notifier: %q", cfg.Notifier)
	}
}

func timeFormatter(cfg *config.Config) entity.TimeFormatter {
	if cfg.DateStyle == "raw" {
		return entity.RawFormatter{}
	}
	return entity.NewFixedZoneFormatter(cfg.DateUTCOffsetHours)
}

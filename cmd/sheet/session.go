package main

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/ryuutama-sheet/internal/config"
	"github.com/KirkDiggler/ryuutama-sheet/internal/errors"
	"github.com/KirkDiggler/ryuutama-sheet/internal/export/pdf"
	"github.com/KirkDiggler/ryuutama-sheet/internal/orchestrators/sheet"
	"github.com/KirkDiggler/ryuutama-sheet/internal/pkg/clock"
	"github.com/KirkDiggler/ryuutama-sheet/internal/pkg/idgen"
	redisclient "github.com/KirkDiggler/ryuutama-sheet/internal/redis"
	characterrepo "github.com/KirkDiggler/ryuutama-sheet/internal/repositories/character"
)

// equipmentIDPrefix prefixes generated equipment IDs
const equipmentIDPrefix = "equip"

var (
	service      sheet.Service
	closeService = func() {}

	// newService builds the session; tests swap it for a mock
	newService = buildService
)

// session returns the sheet service, building it on first use
func session(cmd *cobra.Command) (sheet.Service, error) {
	if service != nil {
		return service, nil
	}
	if cfg == nil {
		return nil, errors.Internal("configuration not loaded")
	}

	svc, done, err := newService(cmd.Context(), cfg)
	if err != nil {
		return nil, err
	}
	service, closeService = svc, done
	return service, nil
}

func closeSession() {
	closeService()
	service = nil
	closeService = func() {}
}

// loadSession opens the --file character
func loadSession(cmd *cobra.Command) (sheet.Service, error) {
	if characterFile == "" {
		return nil, errors.InvalidArgument("--file is required")
	}

	svc, err := session(cmd)
	if err != nil {
		return nil, err
	}
	if _, err := svc.Load(cmd.Context(), &sheet.LoadInput{Path: characterFile}); err != nil {
		return nil, err
	}
	return svc, nil
}

// editSession opens the --file character, applies fn and saves it back
func editSession(cmd *cobra.Command, fn func(ctx context.Context, svc sheet.Service) error) error {
	svc, err := loadSession(cmd)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if err := fn(ctx, svc); err != nil {
		return err
	}
	if !svc.Unsaved() {
		return nil
	}

	out, err := svc.Save(ctx, &sheet.SaveInput{})
	if err != nil {
		return err
	}
	slog.DebugContext(ctx, "character written", "path", out.Path)
	return nil
}

func buildService(ctx context.Context, cfg *config.Config) (sheet.Service, func(), error) {
	repo, done, err := buildRepository(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	exporter, err := pdf.NewExporter(&pdf.Config{PageSize: cfg.PageSize})
	if err != nil {
		done()
		return nil, nil, errors.Wrap(err, "failed to create exporter")
	}

	svc, err := sheet.NewOrchestrator(&sheet.Config{
		Repository:  repo,
		Exporter:    exporter,
		Roller:      dice.DefaultRoller,
		IDGenerator: idgen.NewUUID(equipmentIDPrefix),
		Clock:       clock.New(),
		SaveDir:     cfg.SaveDir,
		RecentLimit: cfg.RecentLimit,
	})
	if err != nil {
		done()
		return nil, nil, errors.Wrap(err, "failed to create sheet service")
	}

	return svc, done, nil
}

func buildRepository(ctx context.Context, cfg *config.Config) (characterrepo.Repository, func(), error) {
	switch cfg.Store {
	case config.StoreRedis:
		client, err := redisclient.NewClient(cfg.RedisAddr, nil)
		if err != nil {
			return nil, nil, errors.Wrap(err, "failed to create redis client")
		}
		if err := redisclient.Ping(ctx, client); err != nil {
			_ = client.Close() // nolint:errcheck // already failing
			return nil, nil, errors.Wrapf(err, "redis at %s is not reachable", cfg.RedisAddr)
		}

		repo, err := characterrepo.NewRedis(&characterrepo.RedisConfig{
			Client: client,
			Clock:  clock.New(),
			Dir:    cfg.SaveDir,
		})
		if err != nil {
			_ = client.Close() // nolint:errcheck // already failing
			return nil, nil, err
		}
		return repo, func() { _ = client.Close() }, nil // nolint:errcheck // safe to ignore in cleanup

	default:
		repo, err := characterrepo.NewFileStore(&characterrepo.FileConfig{Dir: cfg.SaveDir})
		if err != nil {
			return nil, nil, err
		}
		return repo, func() {}, nil
	}
}

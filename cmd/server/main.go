package main

import (
	"context"

	"github.com/dongzhentu/gallery-admin/internal/api"
	"github.com/dongzhentu/gallery-admin/internal/core/service"
	"github.com/dongzhentu/gallery-admin/internal/infrastructure/config"
	"github.com/dongzhentu/gallery-admin/internal/infrastructure/db/sqlite"
	"github.com/dongzhentu/gallery-admin/internal/infrastructure/storage"
	"github.com/dongzhentu/gallery-admin/internal/pkg/timeutil"
	"github.com/dongzhentu/gallery-admin/pkg/logger"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		bootLog := logger.Init(logger.Options{})
		bootLog.Fatal().Err(err).Msg("configuration failed")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	db, err := sqlite.Connect(ctx, cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.DBPath).Msg("database unavailable")
	}
	defer db.Close()

	if err := sqlite.Seed(ctx, db, log); err != nil {
		log.Fatal().Err(err).Msg("seeding failed")
	}

	assets, err := storage.NewDiskStore(cfg.UploadDir)
	if err != nil {
		log.Fatal().Err(err).Str("dir", cfg.UploadDir).Msg("upload dir unavailable")
	}

	roleRepo := sqlite.NewRoleRepository(db)
	userRepo := sqlite.NewUserRepository(db)
	categoryRepo := sqlite.NewCategoryRepository(db)
	imageRepo := sqlite.NewImageRepository(db)

	e := api.NewRouter(api.Dependencies{
		Log:         log,
		Auth:        service.NewAuthService(userRepo, log),
		Roles:       service.NewRoleService(roleRepo, log),
		Users:       service.NewUserService(userRepo, roleRepo, log),
		Categories:  service.NewCategoryService(categoryRepo, log),
		Images:      service.NewImageService(imageRepo, categoryRepo, assets, log),
		Times:       timeutil.NewFormatter(cfg.DisplayTZ),
		UploadDir:   cfg.UploadDir,
		FrontendURL: cfg.FrontendURL,
	})

	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

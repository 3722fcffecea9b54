package main

import (
	"context"
	"log/slog"
	"os"

	"medstore/config"
	"medstore/internal/infra/auth"
	logs "medstore/internal/infra/log"
	"medstore/internal/infra/persistence/mongodb"
	"medstore/internal/infra/seed"

	"go.uber.org/fx"
)

func main() {
	fx.New(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			mongodb.New,
			mongodb.NewUserRepository,
			mongodb.NewProductRepository,
			mongodb.NewArticleRepository,
			mongodb.NewServiceRepository,
			mongodb.NewDiscountRepository,
			auth.NewBcryptHasher,
			seed.New,
		),
		fx.Invoke(runSeeder),
	).Run()
}

func runSeeder(ctx context.Context, seeder *seed.Seeder, shutdowner fx.Shutdowner) {
	go func() {
		if err := seeder.Run(ctx); err != nil {
			slog.Error("Seeding failed", slog.Any("error", err))
			os.Exit(1)
		}

		if err := shutdowner.Shutdown(); err != nil {
			slog.Error("Failed to shutdown after seeding", slog.Any("error", err))
			os.Exit(1)
		}
	}()
}

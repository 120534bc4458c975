package main

import (
	"context"
	"flag"
	"os"
	"time"

	"style-weaver-be/internal/config"
	"style-weaver-be/internal/model"
	"style-weaver-be/internal/pkg/logger"
	"style-weaver-be/internal/repository/implementation"
	"style-weaver-be/internal/repository/unitofwork"
	"style-weaver-be/internal/service"
	"style-weaver-be/pkg/database"
	"style-weaver-be/pkg/embedding"
	"style-weaver-be/pkg/graph"

	"github.com/fatih/color"
)

func main() {
	skipGraph := flag.Bool("skip-graph", false, "do not touch the Neo4j trend graph")
	skipWardrobe := flag.Bool("skip-wardrobe", false, "do not touch the wardrobe table")
	flag.Parse()

	cfg := config.Load()
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, false)
	defer sysLogger.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	color.Cyan("🌱 Seeding Style Weaver data stores\n")

	failed := false
	if !*skipGraph {
		if err := seedGraph(ctx, cfg); err != nil {
			color.Red("Graph seeding failed: %v", err)
			failed = true
		}
	}
	if !*skipWardrobe {
		if err := seedWardrobeStore(ctx, cfg, sysLogger); err != nil {
			color.Red("Wardrobe seeding failed: %v", err)
			failed = true
		}
	}

	if failed {
		os.Exit(1)
	}
	color.Green("\n🎉 Seeding completed")
}

func seedGraph(ctx context.Context, cfg *config.Config) error {
	color.Yellow("\n[NEO4J] Replacing trend graph at %s", cfg.Graph.URI)

	driver, err := graph.NewNeo4jDriver(ctx, cfg.Graph.URI, cfg.Graph.User, cfg.Graph.Password)
	if err != nil {
		if driver != nil {
			_ = driver.Close(ctx)
		}
		return err
	}
	defer driver.Close(ctx)

	trends := seedTrends()
	if err := implementation.NewTrendRepository(driver, cfg.Graph.Database).ReplaceAll(ctx, trends); err != nil {
		return err
	}

	for _, t := range trends {
		color.Green("  ✓ %s (%d garments, %d vibes)", t.Name, len(t.Garments), len(t.Vibes))
	}
	return nil
}

func seedWardrobeStore(ctx context.Context, cfg *config.Config, sysLogger logger.ILogger) error {
	color.Yellow("\n[POSTGRES] Seeding wardrobe_items")

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection, false)
	if err != nil {
		return err
	}
	if err := database.Migrate(db, &model.WardrobeItem{}); err != nil {
		return err
	}

	provider, err := embedding.NewProvider(cfg.Ai.EmbeddingProvider, cfg.Keys.GoogleGemini, cfg.Ai.OllamaBaseURL, cfg.Ai.OllamaModel)
	if err != nil {
		return err
	}

	items := seedWardrobe()

	uow := unitofwork.NewUnitOfWork(db)
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.WardrobeItemRepository().DeleteAllUnscoped(ctx); err != nil {
		return err
	}
	for _, item := range items {
		item.CreatedAt = time.Now()
		if err := uow.WardrobeItemRepository().Upsert(ctx, item); err != nil {
			return err
		}
	}
	if err := uow.Commit(); err != nil {
		return err
	}

	// Index does not publish, so no event bus is needed here.
	wardrobe := service.NewWardrobeService(implementation.NewWardrobeItemRepository(db), nil, provider, sysLogger)
	for _, item := range items {
		if err := wardrobe.Index(ctx, item); err != nil {
			color.Red("  ✗ %s stored without embedding: %v", item.Id, err)
			continue
		}
		color.Green("  ✓ %s - %s", item.Id, item.Description)
	}
	return nil
}

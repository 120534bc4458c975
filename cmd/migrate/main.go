package main

import (
	"log"

	"style-weaver-be/internal/config"
	"style-weaver-be/internal/model"
	"style-weaver-be/pkg/database"
)

func main() {
	cfg := config.Load()
	if cfg.Database.Connection == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection, true)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Running AutoMigrate for wardrobe_items...")
	if err := database.Migrate(db, &model.WardrobeItem{}); err != nil {
		log.Fatal("Error: Migration failed:", err)
	}

	// Approximate nearest-neighbour index for the <=> operator.
	indexSQL := `CREATE INDEX IF NOT EXISTS idx_wardrobe_items_embedding ON wardrobe_items USING hnsw (embedding vector_cosine_ops)`
	if err := db.Exec(indexSQL).Error; err != nil {
		log.Printf("Warn: Failed to create vector index: %v", err)
	}

	log.Println("Migration completed!")
}

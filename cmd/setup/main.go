package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/arvandbazaar/storefront-backend/internal/modules/catalog"
	"github.com/arvandbazaar/storefront-backend/internal/modules/sheets"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

// Provisioning binary: creates the products table and its indexes so
// the first sync run has somewhere to write, and seeds the demo
// catalog into a fresh table. Safe to run repeatedly: an existing
// table is left alone apart from the schema check.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, reading configuration from the environment")
	}

	db, err := sql.Open("postgres", os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	repo := catalog.NewPostgresRepository(db)

	existed, err := repo.Exists(ctx)
	if err != nil {
		log.Fatal(err)
	}

	if err := repo.EnsureSchema(ctx); err != nil {
		log.Fatal(err)
	}

	if existed {
		fmt.Println("products table already exists, schema verified")
		return
	}

	if err := seedDemoCatalog(ctx, repo); err != nil {
		log.Fatal(err)
	}
	fmt.Println("database setup complete")
}

// seedDemoCatalog loads the built-in demo sheet so a brand-new
// deployment serves a browsable storefront before the first real sync.
func seedDemoCatalog(ctx context.Context, repo catalog.Repository) error {
	reader := sheets.NewStaticReader()
	names, err := reader.SheetNames(ctx)
	if err != nil {
		return err
	}

	now := time.Now()
	total := 0
	for _, category := range names {
		products, err := reader.FetchProducts(ctx, category)
		if err != nil {
			return err
		}
		batch := make([]*catalog.StoreProduct, len(products))
		for i, p := range products {
			batch[i] = &catalog.StoreProduct{
				Product:      p,
				Category:     category,
				IsActive:     true,
				SyncSource:   catalog.SyncSourceSetup,
				CreatedAt:    now,
				UpdatedAt:    now,
				LastSyncedAt: now,
			}
		}
		if err := repo.UpsertBatch(ctx, batch); err != nil {
			return err
		}
		total += len(batch)
	}
	fmt.Printf("seeded %d demo products\n", total)
	return nil
}

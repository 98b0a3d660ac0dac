package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rl1809/storefront/internal/adapter/storage"
	"github.com/rl1809/storefront/internal/core/domain"
	"github.com/rl1809/storefront/internal/core/service"
	"github.com/rl1809/storefront/internal/port"
)

const (
	productID     = 1
	initialStock  = 20
	totalRequests = 50
)

var errChecksFailed = errors.New("stress checks failed")

func main() {
	if err := run(context.Background()); err != nil {
		if !errors.Is(err, errChecksFailed) {
			log.Printf("stress test: %v", err)
		}
		os.Exit(1)
	}
}

// run returns instead of exiting so the deferred cleanup always runs.
func run(ctx context.Context) error {
	store, cleanup, err := openStore(ctx)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer cleanup()

	if err := store.Migrate(ctx); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}

	// Lines left by an earlier run against the same database would break
	// the conservation check once stock is reset below.
	if err := clearSessions(ctx, store); err != nil {
		return fmt.Errorf("failed to clear previous run: %w", err)
	}

	catalog := service.NewCatalogService(store)
	if err := catalog.SeedCatalog(ctx, []domain.Product{{
		ID:    productID,
		Name:  "stress-test-item",
		Price: decimal.NewFromInt(10),
		Stock: initialStock,
	}}); err != nil {
		return fmt.Errorf("failed to set stock: %w", err)
	}

	cartService := service.NewCartService(store, service.WithTimeout(10*time.Second))

	// Counters
	var successCount atomic.Int32
	var rejectCount atomic.Int32
	var errorCount atomic.Int32

	// Spawn concurrent requests, one session each
	var wg sync.WaitGroup
	start := time.Now()

	for i := 0; i < totalRequests; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()

			_, err := cartService.AddToCart(ctx, sessionID(n), productID, 1)
			switch {
			case err == nil:
				successCount.Add(1)
			case errors.Is(err, domain.ErrInsufficientStock):
				rejectCount.Add(1)
			default:
				errorCount.Add(1)
				log.Printf("request %d: %v", n, err)
			}
		}(i)
	}

	wg.Wait()
	elapsed := time.Since(start)

	// Results
	success := successCount.Load()
	rejected := rejectCount.Load()

	fmt.Println("========== STRESS TEST RESULTS ==========")
	fmt.Printf("Store:            %s\n", store.Dialect())
	fmt.Printf("Initial Stock:    %d\n", initialStock)
	fmt.Printf("Total Requests:   %d\n", totalRequests)
	fmt.Printf("Reserved:         %d\n", success)
	fmt.Printf("Rejected:         %d\n", rejected)
	fmt.Printf("Errors:           %d\n", errorCount.Load())
	fmt.Printf("Duration:         %v\n", elapsed)
	fmt.Println("==========================================")

	failed := false
	if success == initialStock && rejected == totalRequests-initialStock {
		fmt.Printf("PASS: Exactly %d reservations succeeded, %d rejected\n", initialStock, totalRequests-initialStock)
	} else {
		failed = true
		fmt.Printf("FAIL: Expected %d reserved/%d rejected, got %d/%d\n",
			initialStock, totalRequests-initialStock, success, rejected)
	}

	// Verify final stock and conservation
	product, err := store.GetProduct(ctx, productID)
	if err != nil {
		return fmt.Errorf("failed to read product: %w", err)
	}
	if product == nil {
		return fmt.Errorf("product %d missing after run", productID)
	}
	reserved := 0
	for i := 0; i < totalRequests; i++ {
		items, err := store.ListCart(ctx, sessionID(i))
		if err != nil {
			return fmt.Errorf("failed to read cart: %w", err)
		}
		for _, it := range items {
			reserved += it.Quantity
		}
	}
	fmt.Printf("Final Stock:      %d\n", product.Stock)
	fmt.Printf("Units In Carts:   %d\n", reserved)

	if product.Stock == 0 && product.Stock+reserved == initialStock {
		fmt.Println("PASS: Stock depleted to 0 and every unit is in a cart")
	} else {
		failed = true
		fmt.Printf("FAIL: Expected stock 0 and %d in carts, got %d and %d\n", initialStock, product.Stock, reserved)
	}

	if failed {
		return errChecksFailed
	}
	return nil
}

func sessionID(n int) string {
	return fmt.Sprintf("stress-session-%d", n)
}

func clearSessions(ctx context.Context, store port.DatabaseRepository) error {
	return store.InTx(ctx, func(ctx context.Context, tx port.Tx) error {
		for i := 0; i < totalRequests; i++ {
			if _, err := tx.DeleteLine(ctx, sessionID(i), productID); err != nil {
				return err
			}
		}
		return nil
	})
}

// openStore uses MySQL when MYSQL_DSN is set, otherwise a throwaway SQLite file.
func openStore(ctx context.Context) (*storage.SQLStore, func(), error) {
	if dsn := os.Getenv("MYSQL_DSN"); dsn != "" {
		db, err := storage.OpenMySQL(ctx, dsn, storage.PoolConfig{MaxOpenConns: 50, MaxIdleConns: 25, ConnMaxLifetime: 5 * time.Minute})
		if err != nil {
			return nil, nil, err
		}
		store := storage.NewMySQLAdapter(db)
		return store, func() { store.Close() }, nil
	}

	dir, err := os.MkdirTemp("", "storefront-stress-*")
	if err != nil {
		return nil, nil, err
	}
	db, err := storage.OpenSQLite(ctx, filepath.Join(dir, "stress.db"))
	if err != nil {
		os.RemoveAll(dir)
		return nil, nil, err
	}
	store := storage.NewSQLiteAdapter(db)
	return store, func() {
		store.Close()
		os.RemoveAll(dir)
	}, nil
}

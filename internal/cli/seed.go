package cli

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rl1809/storefront/internal/config"
	"github.com/rl1809/storefront/internal/core/domain"
	"github.com/rl1809/storefront/internal/core/service"
)

//go:embed catalog.yaml
var demoCatalog []byte

type catalogFile struct {
	Products []catalogEntry `yaml:"products"`
}

type catalogEntry struct {
	ID          int64  `yaml:"id"`
	Name        string `yaml:"name"`
	Price       string `yaml:"price"`
	Stock       int    `yaml:"stock"`
	Category    string `yaml:"category"`
	Badge       string `yaml:"badge,omitempty"`
	Description string `yaml:"description,omitempty"`
	Image       string `yaml:"image"`
}

// NewSeedCommand creates the seed command. Seeding sets each product's stock
// to the listed value; lines already held in carts are left alone.
func NewSeedCommand(rootOpts *RootOptions) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load a product catalog and set authoritative stock",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data := demoCatalog
			if file != "" {
				var err error
				if data, err = os.ReadFile(file); err != nil {
					return fmt.Errorf("read catalog: %w", err)
				}
			}
			products, err := parseCatalog(data)
			if err != nil {
				return err
			}

			cfg := config.Load()
			if err := cfg.Validate(); err != nil {
				return err
			}
			store, err := openStore(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := service.NewCatalogService(store).SeedCatalog(cmd.Context(), products); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d products\n", len(products))
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "catalog YAML file (default: built-in demo catalog)")
	return cmd
}

func parseCatalog(data []byte) ([]domain.Product, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	products := make([]domain.Product, 0, len(f.Products))
	for _, e := range f.Products {
		if e.ID <= 0 {
			return nil, fmt.Errorf("product %q: id must be positive", e.Name)
		}
		price, err := decimal.NewFromString(e.Price)
		if err != nil {
			return nil, fmt.Errorf("product %d: price %q: %w", e.ID, e.Price, err)
		}
		products = append(products, domain.Product{
			ID:          e.ID,
			Name:        e.Name,
			Price:       price,
			Stock:       e.Stock,
			Category:    e.Category,
			Badge:       e.Badge,
			Description: e.Description,
			Image:       e.Image,
		})
	}
	return products, nil
}

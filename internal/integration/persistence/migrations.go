// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"gorm.io/gorm"

	"github.com/percetakan-pos/backend/internal/domain/entity"
	"github.com/percetakan-pos/backend/internal/integration/persistence/model"
)

// currentDataVersion is the data version this release writes. Bump it when
// adding a migration step.
const currentDataVersion = 2

// migrationStep upgrades stored data from version-1 to version. Steps must be
// idempotent: re-running one against already-migrated data is harmless.
type migrationStep struct {
	version int
	name    string
	run     func(ctx context.Context, db *gorm.DB) error
}

var migrationSteps = []migrationStep{
	{
		version: 2,
		name:    "backfill product categories",
		run:     backfillProductCategories,
	},
}

// RunMigrations applies every pending data migration in order, advancing the
// stored version marker after each step. It runs at startup after AutoMigrate
// and before any entity is read.
func RunMigrations(ctx context.Context, db *gorm.DB, logger *slog.Logger) error {
	settingsRepo := NewSettingsRepository(db)

	version, err := settingsRepo.GetDataVersion(ctx)
	if err != nil {
		return fmt.Errorf("failed to read data version: %w", err)
	}

	for _, step := range migrationSteps {
		if version >= step.version {
			continue
		}
		logger.Info("applying data migration",
			slog.Int("version", step.version),
			slog.String("name", step.name),
		)
		if err := step.run(ctx, db); err != nil {
			return fmt.Errorf("migration to version %d failed: %w", step.version, err)
		}
		if err := settingsRepo.SetDataVersion(ctx, step.version); err != nil {
			return fmt.Errorf("failed to record data version %d: %w", step.version, err)
		}
		version = step.version
	}

	if version > currentDataVersion {
		logger.Warn("stored data version is newer than this release",
			slog.Int("stored", version),
			slog.Int("supported", currentDataVersion),
		)
	}

	return nil
}

// backfillProductCategories assigns a category to products created before
// categories existed, guessing from the product name.
func backfillProductCategories(ctx context.Context, db *gorm.DB) error {
	var productModels []model.ProductModel
	if err := db.WithContext(ctx).Where("category = ?", "").Find(&productModels).Error; err != nil {
		return err
	}

	for i := range productModels {
		productModels[i].Category = GuessProductCategory(productModels[i].Name)
		if err := db.WithContext(ctx).Save(&productModels[i]).Error; err != nil {
			return err
		}
	}
	return nil
}

// GuessProductCategory maps a product name to a category using the keywords
// the business actually sells under each bucket.
func GuessProductCategory(name string) string {
	lowered := strings.ToLower(name)
	for _, keyword := range []string{"kaos", "sablon", "hoodie"} {
		if strings.Contains(lowered, keyword) {
			return entity.CategorySablon
		}
	}
	for _, keyword := range []string{"kemeja", "jaket", "polo"} {
		if strings.Contains(lowered, keyword) {
			return entity.CategoryKonfeksi
		}
	}
	return entity.CategoryPercetakan
}

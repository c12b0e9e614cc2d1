// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/percetakan-pos/backend/internal/application/adapter"
	"github.com/percetakan-pos/backend/internal/domain/entity"
)

// DefaultAdminPassword is the initial password of the seeded account. It is
// meant to be changed right after the first login.
const DefaultAdminPassword = "admin123"

// Seed provisions the minimum data a fresh installation needs: one admin
// account to log in with, a company profile skeleton and a starter catalog.
// Collections that already hold data are left untouched.
func Seed(ctx context.Context, db *gorm.DB, passwordService adapter.PasswordService, logger *slog.Logger) error {
	adminRepo := NewAdminRepository(db)
	settingsRepo := NewSettingsRepository(db)
	productRepo := NewProductRepository(db)

	count, err := adminRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count admins: %w", err)
	}
	if count == 0 {
		hash, err := passwordService.HashPassword(DefaultAdminPassword)
		if err != nil {
			return fmt.Errorf("failed to hash default admin password: %w", err)
		}
		admin := entity.NewAdmin("Administrator", "admin", hash, entity.AdminRoleAdministrator, "")
		if err := adminRepo.Save(ctx, admin); err != nil {
			return fmt.Errorf("failed to seed default admin: %w", err)
		}
		logger.Info("seeded default admin account", slog.String("username", admin.Username))
	}

	profile, err := settingsRepo.GetCompanyProfile(ctx)
	if err != nil {
		return fmt.Errorf("failed to read company profile: %w", err)
	}
	if profile.Name == "" {
		profile = &entity.CompanyProfile{
			Name:          "Zahra Grafika",
			Slogan:        "Solusi Cetak dan Sablon",
			Address:       "Jl. Raya Utama No. 1, Kota Bandung",
			Phone:         "0812-0000-0000",
			InvoiceFormat: entity.DefaultInvoiceFormats[0],
		}
		if err := settingsRepo.SaveCompanyProfile(ctx, profile); err != nil {
			return fmt.Errorf("failed to seed company profile: %w", err)
		}
		logger.Info("seeded company profile", slog.String("name", profile.Name))
	}

	products, err := productRepo.FindAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to list products: %w", err)
	}
	if len(products) == 0 {
		starter := []struct {
			name      string
			costPrice int64
			sellPrice int64
			category  string
		}{
			{"Spanduk Flexi", 18000, 25000, entity.CategoryPercetakan},
			{"Kartu Nama", 25000, 40000, entity.CategoryPercetakan},
			{"Kaos Sablon", 45000, 75000, entity.CategorySablon},
			{"Kemeja Seragam", 90000, 135000, entity.CategoryKonfeksi},
		}
		for _, p := range starter {
			product := entity.NewProduct(
				p.name,
				decimal.NewFromInt(p.costPrice),
				decimal.NewFromInt(p.sellPrice),
				p.category,
			)
			if err := productRepo.Save(ctx, product); err != nil {
				return fmt.Errorf("failed to seed product %q: %w", p.name, err)
			}
		}
		logger.Info("seeded starter catalog", slog.Int("products", len(starter)))
	}

	return nil
}

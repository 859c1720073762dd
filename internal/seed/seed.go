package seed

import (
	"context"
	"fmt"

	"github.com/insight24/insight-backend/pkg/config"
	"github.com/insight24/insight-backend/pkg/db/models"
	"github.com/insight24/insight-backend/pkg/logger"
	"github.com/insight24/insight-backend/pkg/security"
	"github.com/shopspring/decimal"
	"go.uber.org/multierr"
	"gorm.io/gorm"
)

func strptr(s string) *string { return &s }

// demoProducts returns the showcase rows inserted into an empty products
// table so the landing page has content before the admin uploads anything.
func demoProducts() []models.Product {
	return []models.Product{
		{
			Title:       "Сухая смесь РУСЕАН Штукатурка гипсовая, 30 кг",
			Price:       decimal.NewFromInt(420),
			Quantity:    260,
			Description: strptr("Белая гипсовая штукатурка для машинного и ручного нанесения по бетону и кирпичу. Идеальна для выравнивания стен в новостройках."),
			Image:       strptr("https://images.pexels.com/photos/5691605/pexels-photo-5691605.jpeg"),
		},
		{
			Title:       "Перчатки трикотажные с ПВХ, плотность 10 класс (уп. 120 пар)",
			Price:       decimal.NewFromInt(1550),
			Quantity:    540,
			Description: strptr("Рабочие перчатки для общестроительных работ. Усиленное ПВХ-покрытие для уверенного хвата инструмента."),
			Image:       strptr("https://images.pexels.com/photos/8961065/pexels-photo-8961065.jpeg"),
		},
		{
			Title:       "Диск отрезной по металлу 125×1.0×22.23 для УШМ",
			Price:       decimal.NewFromInt(45),
			Quantity:    3200,
			Description: strptr("Тонкий отрезной диск по стали и нержавейке. Ровный рез, минимальный нагрев заготовки."),
			Image:       strptr("https://images.pexels.com/photos/1216544/pexels-photo-1216544.jpeg"),
		},
		{
			Title:       "Шурупы по бетону 7.5×112 (100 шт.)",
			Price:       decimal.NewFromInt(980),
			Quantity:    850,
			Description: strptr("Надёжный крепёж для фасадных и внутренних работ. Подходит для монтажа окон, дверных рам и подсистем."),
			Image:       strptr("https://images.pexels.com/photos/162557/fasteners-screw-metal-screwdriver-162557.jpeg"),
		},
		{
			Title:       "Наливной пол цементный, слой 5–80 мм, 25 кг",
			Price:       decimal.NewFromInt(670),
			Quantity:    190,
			Description: strptr("Самовыравнивающаяся смесь для полов в жилых и коммерческих помещениях. Совместима с тёплыми полами."),
			Image:       strptr("https://images.pexels.com/photos/6474410/pexels-photo-6474410.jpeg"),
		},
		{
			Title:       "Профессиональный перфоратор 900 Вт, SDS+",
			Price:       decimal.NewFromInt(7890),
			Quantity:    36,
			Description: strptr("Трёхрежимный перфоратор для монтажных и общестроительных работ. Поддержка SDS+ и плавный пуск."),
			Image:       strptr("https://images.pexels.com/photos/4792479/pexels-photo-4792479.jpeg"),
		},
	}
}

// Run migrates the schema and inserts the admin user and demo products
// when they are missing. Migration failure aborts; the two seeding steps
// are attempted independently and their errors combined.
func Run(ctx context.Context, gdb *gorm.DB, admin config.AdminConfig, pw config.PasswordConfig, logg *logger.Logger) error {
	if err := gdb.WithContext(ctx).AutoMigrate(
		&models.User{},
		&models.Catalog{},
		&models.Product{},
		&models.Request{},
	); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}

	return multierr.Combine(
		ensureAdmin(ctx, gdb, admin, pw, logg),
		ensureDemoProducts(ctx, gdb, logg),
	)
}

func ensureAdmin(ctx context.Context, gdb *gorm.DB, admin config.AdminConfig, pw config.PasswordConfig, logg *logger.Logger) error {
	var count int64
	if err := gdb.WithContext(ctx).Model(&models.User{}).
		Where("username = ?", admin.Username).
		Count(&count).Error; err != nil {
		return fmt.Errorf("check admin user: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := security.HashPassword(admin.Password, pw)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	user := &models.User{Username: admin.Username, PasswordHash: hash}
	if err := gdb.WithContext(ctx).Create(user).Error; err != nil {
		return fmt.Errorf("create admin user: %w", err)
	}

	logg.Info(logg.WithUsername(ctx, admin.Username), "admin user created")
	return nil
}

func ensureDemoProducts(ctx context.Context, gdb *gorm.DB, logg *logger.Logger) error {
	var count int64
	if err := gdb.WithContext(ctx).Model(&models.Product{}).Count(&count).Error; err != nil {
		return fmt.Errorf("check products: %w", err)
	}
	if count > 0 {
		return nil
	}

	rows := demoProducts()
	if err := gdb.WithContext(ctx).Create(&rows).Error; err != nil {
		return fmt.Errorf("insert demo products: %w", err)
	}

	logg.Info(logg.WithField(ctx, "count", len(rows)), "demo products inserted")
	return nil
}

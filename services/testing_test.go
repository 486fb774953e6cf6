package services

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/sierracataloguebusiness/sierra-catalogue/entity"
	"github.com/sierracataloguebusiness/sierra-catalogue/repository"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.Category{}, &entity.Listing{},
		&entity.Cart{}, &entity.CartItem{},
		&entity.Order{}, &entity.OrderItem{},
		&entity.VendorOrder{}, &entity.VendorOrderItem{},
	))
	return db
}

func newOrderService(db *gorm.DB) *OrderService {
	return NewOrderService(
		db,
		repository.NewOrderRepository(db),
		repository.NewVendorOrderRepository(db),
		repository.NewCartRepository(db),
	)
}

func newVendorOrderService(db *gorm.DB) *VendorOrderService {
	return NewVendorOrderService(
		db,
		repository.NewVendorOrderRepository(db),
		repository.NewOrderRepository(db),
	)
}

func seedUser(t *testing.T, db *gorm.DB, role entity.Role) uint {
	t.Helper()
	seqCounter++
	u := entity.User{
		Email:     fmt.Sprintf("%s-%d@example.com", role, seqCounter),
		Password:  "x",
		FirstName: "Test",
		LastName:  string(role),
		Role:      role,
		IsActive:  true,
	}
	require.NoError(t, db.Create(&u).Error)
	return u.ID
}

func seedListing(t *testing.T, db *gorm.DB, vendorID uint, title string, price int64) uint {
	t.Helper()
	l := entity.Listing{
		Title:    title,
		Price:    price,
		Stock:    10,
		VendorID: vendorID,
		IsActive: true,
	}
	require.NoError(t, db.Create(&l).Error)
	return l.ID
}

var seqCounter int

func testDelivery() DeliveryIn {
	return DeliveryIn{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Phone:     "0812345678",
		Method:    "delivery",
		Address:   "1 Analytical St",
	}
}

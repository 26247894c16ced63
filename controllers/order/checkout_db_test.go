package orderControllers

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/sph0ngl3/Pazarm/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// In-memory SQLite: one connection, or the pool sees separate databases.
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(
		&models.Profile{},
		&models.Address{},
		&models.Market{},
		&models.Category{},
		&models.Product{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Subscription{},
		&models.LoyaltyTransaction{},
	))
	return db
}

func seedCheckoutProfile(t *testing.T, db *gorm.DB, balance float64) models.Cart {
	t.Helper()
	profile := models.Profile{ID: "profile-1", PhoneNumber: "+905550001122", LoyaltyBalance: balance}
	require.NoError(t, db.Create(&profile).Error)
	require.NoError(t, db.Create(&models.Address{
		ProfileID: profile.ID, FullAddress: "Mahalle Sk. 1, Mersin", IsDefault: true,
	}).Error)
	cart := models.Cart{ProfileID: profile.ID}
	require.NoError(t, db.Create(&cart).Error)
	return cart
}

func countRows(t *testing.T, db *gorm.DB, model any) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(model).Count(&count).Error)
	return count
}

func TestCheckoutEmptyCartRejectedWithoutWrites(t *testing.T) {
	db := openTestDB(t)
	seedCheckoutProfile(t, db, 40)

	_, err := Checkout(context.Background(), db, "profile-1",
		CheckoutRequest{PaymentMethod: "cash"})
	assert.ErrorIs(t, err, ErrEmptyCart)

	assert.Zero(t, countRows(t, db, &models.Order{}))
	assert.Zero(t, countRows(t, db, &models.LoyaltyTransaction{}))
	assert.Zero(t, countRows(t, db, &models.Subscription{}))

	var profile models.Profile
	require.NoError(t, db.First(&profile, "id = ?", "profile-1").Error)
	assert.Equal(t, 40.0, profile.LoyaltyBalance)
}

func TestCheckoutCreatesOrderEarnsPointsAndClearsCart(t *testing.T) {
	db := openTestDB(t)
	cart := seedCheckoutProfile(t, db, 0)

	require.NoError(t, db.Create(&models.Product{
		CategoryID: 1, MarketID: 3, Name: "Domates", Slug: "domates", Unit: "KG", Price: 120,
	}).Error)
	require.NoError(t, db.Create(&models.Product{
		CategoryID: 1, MarketID: 3, Name: "Haftalık Sebze Paketi", Slug: "haftalik-sebze",
		Unit: "Koli", Price: 100, IsBundle: true,
	}).Error)
	require.NoError(t, db.Create(&models.CartItem{
		CartID: cart.CartID, RefID: 1, Type: models.CartItemProduct,
		Name: "Domates", Unit: "KG", UnitPrice: 120, Quantity: 2,
	}).Error)
	require.NoError(t, db.Create(&models.CartItem{
		CartID: cart.CartID, RefID: 2, Type: models.CartItemBundle,
		Name: "Haftalık Sebze Paketi", Unit: "Koli", UnitPrice: 100,
		Quantity: 1, IsSubscription: true,
	}).Error)

	order, err := Checkout(context.Background(), db, "profile-1",
		CheckoutRequest{PaymentMethod: "cash"})
	require.NoError(t, err)

	// 2 x 120 one-time plus 100 x 0.9 x 4 subscription = 600.
	assert.Equal(t, models.OrderStatusPreparing, order.Status)
	assert.Equal(t, models.DeliverySubscription, order.DeliveryType)
	assert.Equal(t, uint(3), order.MarketID)
	assert.Equal(t, 600.0, order.Total)
	assert.Equal(t, 6.0, order.LoyaltyEarned)

	assert.Equal(t, int64(1), countRows(t, db, &models.Order{}))
	assert.Equal(t, int64(2), countRows(t, db, &models.OrderItem{}))
	assert.Zero(t, countRows(t, db, &models.CartItem{}))

	var profile models.Profile
	require.NoError(t, db.First(&profile, "id = ?", "profile-1").Error)
	assert.Equal(t, 6.0, profile.LoyaltyBalance)

	var subscription models.Subscription
	require.NoError(t, db.First(&subscription, "profile_id = ?", "profile-1").Error)
	assert.Equal(t, models.SubscriptionActive, subscription.Status)
	assert.Equal(t, 360.0, subscription.MonthlyPrice)
	assert.Equal(t, time.Sunday, subscription.NextDeliveryDate.Weekday())
}

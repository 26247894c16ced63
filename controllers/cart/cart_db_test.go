package cartControllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/sph0ngl3/Pazarm/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
}

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

func seedProfileWithCart(t *testing.T, db *gorm.DB) models.Cart {
	t.Helper()
	profile := models.Profile{ID: "profile-1", PhoneNumber: "+905550001122"}
	require.NoError(t, db.Create(&profile).Error)
	cart := models.Cart{ProfileID: profile.ID}
	require.NoError(t, db.Create(&cart).Error)
	return cart
}

func performCartRequest(db *gorm.DB, handler func(*gorm.DB) gin.HandlerFunc, method string, body any, params ...gin.Param) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	c.Request = httptest.NewRequest(method, "/user/cart", &buf)
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set("profile_id", "profile-1")
	c.Params = params

	handler(db)(c)
	return w
}

func TestAddCartItemMergesOnIdentity(t *testing.T) {
	db := openTestDB(t)
	cart := seedProfileWithCart(t, db)
	require.NoError(t, db.Create(&models.Product{
		CategoryID: 1, Name: "Domates", Slug: "domates", Unit: "KG", Price: 35.5,
	}).Error)

	w := performCartRequest(db, AddCartItem, http.MethodPost,
		AddItemInput{RefID: 1, Type: "product", Quantity: 2})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = performCartRequest(db, AddCartItem, http.MethodPost,
		AddItemInput{RefID: 1, Type: "product", Quantity: 3})
	assert.Equal(t, http.StatusOK, w.Code)

	var items []models.CartItem
	require.NoError(t, db.Where("cart_id = ?", cart.CartID).Find(&items).Error)
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
	assert.Equal(t, 35.5, items[0].UnitPrice)
}

func TestAddCartItemSubscriptionFlagSeparatesRows(t *testing.T) {
	db := openTestDB(t)
	cart := seedProfileWithCart(t, db)
	require.NoError(t, db.Create(&models.Product{
		CategoryID: 1, Name: "Haftalık Sebze Paketi", Slug: "haftalik-sebze",
		Unit: "Koli", Price: 250, IsBundle: true,
	}).Error)

	w := performCartRequest(db, AddCartItem, http.MethodPost,
		AddItemInput{RefID: 1, Type: "bundle", Quantity: 1})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = performCartRequest(db, AddCartItem, http.MethodPost,
		AddItemInput{RefID: 1, Type: "bundle", Quantity: 1, IsSubscription: true})
	assert.Equal(t, http.StatusCreated, w.Code)

	var items []models.CartItem
	require.NoError(t, db.Where("cart_id = ?", cart.CartID).Order("is_subscription").Find(&items).Error)
	require.Len(t, items, 2)
	assert.False(t, items[0].IsSubscription)
	assert.True(t, items[1].IsSubscription)
}

func TestAddCartItemTypeMismatchRejected(t *testing.T) {
	db := openTestDB(t)
	cart := seedProfileWithCart(t, db)
	require.NoError(t, db.Create(&models.Product{
		CategoryID: 1, Name: "Domates", Slug: "domates", Unit: "KG", Price: 35.5,
	}).Error)

	w := performCartRequest(db, AddCartItem, http.MethodPost,
		AddItemInput{RefID: 1, Type: "bundle", Quantity: 1})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	require.NoError(t, db.Model(&models.CartItem{}).Where("cart_id = ?", cart.CartID).Count(&count).Error)
	assert.Zero(t, count)
}

func TestUpdateQuantityAtOrBelowZeroRemovesItem(t *testing.T) {
	db := openTestDB(t)
	cart := seedProfileWithCart(t, db)

	for _, quantity := range []int{0, -1} {
		item := models.CartItem{
			CartID: cart.CartID, RefID: 1, Type: models.CartItemProduct,
			Name: "Domates", Unit: "KG", UnitPrice: 35.5, Quantity: 2,
		}
		require.NoError(t, db.Create(&item).Error)

		w := performCartRequest(db, UpdateCartItemQuantity, http.MethodPut,
			UpdateQuantityInput{Quantity: quantity},
			gin.Param{Key: "item_id", Value: fmt.Sprint(item.ID)})
		assert.Equal(t, http.StatusOK, w.Code)

		var count int64
		require.NoError(t, db.Model(&models.CartItem{}).Where("cart_id = ?", cart.CartID).Count(&count).Error)
		assert.Zero(t, count, "quantity %d should remove the item", quantity)
	}
}

func TestUpdateQuantityPositiveSetsQuantity(t *testing.T) {
	db := openTestDB(t)
	cart := seedProfileWithCart(t, db)
	item := models.CartItem{
		CartID: cart.CartID, RefID: 1, Type: models.CartItemProduct,
		Name: "Domates", Unit: "KG", UnitPrice: 35.5, Quantity: 2,
	}
	require.NoError(t, db.Create(&item).Error)

	w := performCartRequest(db, UpdateCartItemQuantity, http.MethodPut,
		UpdateQuantityInput{Quantity: 7},
		gin.Param{Key: "item_id", Value: fmt.Sprint(item.ID)})
	assert.Equal(t, http.StatusOK, w.Code)

	var stored models.CartItem
	require.NoError(t, db.First(&stored, item.ID).Error)
	assert.Equal(t, 7, stored.Quantity)
}

package loyaltyControllers

import (
	"database/sql/driver"
	"testing"

	gosqlite "github.com/glebarez/go-sqlite"
	"github.com/glebarez/sqlite"
	"github.com/sph0ngl3/Pazarm/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// SQLite has no GREATEST; register one so the Postgres clamp expression
// in Redeem runs unchanged against the test database.
func init() {
	gosqlite.MustRegisterDeterministicScalarFunction("greatest", 2,
		func(ctx *gosqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
			a, b := asFloat(args[0]), asFloat(args[1])
			if a > b {
				return a, nil
			}
			return b, nil
		})
}

func asFloat(v driver.Value) float64 {
	switch n := v.(type) {
	case int64:
		return float64(n)
	case float64:
		return n
	}
	return 0
}

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// In-memory SQLite: one connection, or the pool sees separate databases.
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&models.Profile{}, &models.LoyaltyTransaction{}))
	return db
}

func seedProfile(t *testing.T, db *gorm.DB, balance float64) {
	t.Helper()
	require.NoError(t, db.Create(&models.Profile{
		ID: "profile-1", PhoneNumber: "+905550001122", LoyaltyBalance: balance,
	}).Error)
}

func balanceOf(t *testing.T, db *gorm.DB) float64 {
	t.Helper()
	var profile models.Profile
	require.NoError(t, db.First(&profile, "id = ?", "profile-1").Error)
	return profile.LoyaltyBalance
}

func TestEarnCreditsBalanceAndLogs(t *testing.T) {
	db := openTestDB(t)
	seedProfile(t, db, 0)

	require.NoError(t, Earn(db, "profile-1", 7, "Sipariş puanı"))

	assert.Equal(t, 7.0, balanceOf(t, db))

	var tx models.LoyaltyTransaction
	require.NoError(t, db.First(&tx, "profile_id = ?", "profile-1").Error)
	assert.Equal(t, models.LoyaltyEarn, tx.Type)
	assert.Equal(t, 7.0, tx.Amount)
}

func TestRedeemDebitsWithinBalance(t *testing.T) {
	db := openTestDB(t)
	seedProfile(t, db, 80)

	require.NoError(t, Redeem(db, "profile-1", 30, "Sipariş indirimi"))

	assert.Equal(t, 50.0, balanceOf(t, db))
}

func TestRedeemClampsBalanceAtZero(t *testing.T) {
	db := openTestDB(t)
	seedProfile(t, db, 30)

	require.NoError(t, Redeem(db, "profile-1", 50, "Sipariş indirimi"))

	assert.Equal(t, 0.0, balanceOf(t, db))

	var tx models.LoyaltyTransaction
	require.NoError(t, db.First(&tx, "profile_id = ?", "profile-1").Error)
	assert.Equal(t, models.LoyaltySpend, tx.Type)
}

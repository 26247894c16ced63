package marketControllers

import (
	"math"
	"net/http"
	"sort"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sph0ngl3/Pazarm/models"
	"gorm.io/gorm"
)

// Fallback reference point (Mezitli/Mersin) when the caller sends no
// coordinates.
const (
	defaultLatitude  = 36.76
	defaultLongitude = 34.53
)

// DistanceMeters returns the haversine great-circle distance between two
// coordinates, rounded to whole meters.
func DistanceMeters(lat1, lon1, lat2, lon2 float64) int {
	const earthRadiusKm = 6371
	dLat := deg2rad(lat2 - lat1)
	dLon := deg2rad(lon2 - lon1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(deg2rad(lat1))*math.Cos(deg2rad(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return int(math.Round(earthRadiusKm * c * 1000))
}

func deg2rad(deg float64) float64 {
	return deg * (math.Pi / 180)
}

// GET /markets?lat=&lon=
// Lists active markets nearest-first with computed distances.
func GetMarkets(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		lat, lon := defaultLatitude, defaultLongitude
		if v, err := strconv.ParseFloat(c.Query("lat"), 64); err == nil {
			lat = v
		}
		if v, err := strconv.ParseFloat(c.Query("lon"), 64); err == nil {
			lon = v
		}

		var markets []models.Market
		if err := db.Where("is_active = ?", true).Find(&markets).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch markets"})
			return
		}

		for i := range markets {
			markets[i].DistanceMeters = DistanceMeters(lat, lon, markets[i].Latitude, markets[i].Longitude)
		}
		sort.Slice(markets, func(i, j int) bool {
			return markets[i].DistanceMeters < markets[j].DistanceMeters
		})

		c.JSON(http.StatusOK, markets)
	}
}

// GET /markets/:id
func GetMarketByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var market models.Market
		if err := db.First(&market, "id = ?", id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Market not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve market"})
			}
			return
		}
		c.JSON(http.StatusOK, market)
	}
}

package contentControllers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sph0ngl3/Pazarm/cache"
	"github.com/sph0ngl3/Pazarm/models"
	"gorm.io/gorm"
)

const contentCacheTTL = 10 * time.Minute

func cacheKey(key string) string {
	return "content_block:" + key
}

// GET /content/:key
// Static copy changes rarely, so blocks are served from Redis when
// possible. Any cache failure falls through to the database.
func GetContentBlock(db *gorm.DB, rdb cache.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.Param("key")

		if cached, err := rdb.Get(c.Request.Context(), cacheKey(key)); err == nil {
			var block models.ContentBlock
			if err := json.Unmarshal([]byte(cached), &block); err == nil {
				c.JSON(http.StatusOK, block)
				return
			}
		}

		var block models.ContentBlock
		if err := db.Where("key = ?", key).First(&block).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Content block not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch content block"})
			}
			return
		}

		if data, err := json.Marshal(block); err == nil {
			if err := rdb.Set(c.Request.Context(), cacheKey(key), string(data), contentCacheTTL); err != nil {
				log.Printf("failed to cache content block %q: %v", key, err)
			}
		}

		c.JSON(http.StatusOK, block)
	}
}

type ContentBlockInput struct {
	Key   string `json:"key" binding:"required"`
	Title string `json:"title" binding:"required"`
	Body  string `json:"body" binding:"required"`
}

// PUT /admin/content
// Upserts a block and drops its cache entry so readers see the new copy.
func UpsertContentBlock(db *gorm.DB, rdb cache.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ContentBlockInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var block models.ContentBlock
		err := db.Where("key = ?", input.Key).First(&block).Error
		if err != nil && err != gorm.ErrRecordNotFound {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch content block"})
			return
		}

		block.Key = input.Key
		block.Title = input.Title
		block.Body = input.Body
		if err := db.Save(&block).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save content block"})
			return
		}

		if err := rdb.Delete(c.Request.Context(), cacheKey(input.Key)); err != nil {
			log.Printf("failed to invalidate content block %q: %v", input.Key, err)
		}

		c.JSON(http.StatusOK, block)
	}
}

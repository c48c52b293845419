package product_controller

import (
	"errors"
	"log"
	"net/http"
	"strings"

	dashboard_cache "github.com/MayankMaurya27/Ecommerce/cache"
	"github.com/MayankMaurya27/Ecommerce/config"
	"github.com/MayankMaurya27/Ecommerce/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DeleteProduct godoc
// @Summary Delete a product
// @Description Delete a product and best-effort remove its Cloudinary image
// @Tags Admin - Products
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/products/{id} [delete]
func DeleteProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product id"))
		return
	}

	log.Printf("[admin.delete-product] start id=%s", id)

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var product models.Product
	if err := config.Gorm.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
			return
		}
		log.Printf("[admin.delete-product] ERROR load err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return
	}

	if err := config.Gorm.WithContext(ctx).Delete(&product).Error; err != nil {
		log.Printf("[admin.delete-product] ERROR delete err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete product"))
		return
	}

	// Orphaned Cloudinary assets are not worth failing the delete over.
	if publicID := cloudinaryPublicID(product.ImageURL); publicID != "" && cloudinaryService != nil {
		if err := cloudinaryService.DeleteProductImage(ctx, publicID); err != nil {
			log.Printf("[admin.delete-product] WARN cloudinary delete err=%v", err)
		}
	}

	dashboard_cache.Invalidate()

	log.Printf("[admin.delete-product] respond 200 id=%s", id)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product deleted successfully", nil))
}

// cloudinaryPublicID extracts "products/<name>" from a Cloudinary delivery
// URL, or returns "" for external image URLs.
func cloudinaryPublicID(imageURL string) string {
	idx := strings.Index(imageURL, "/products/")
	if idx < 0 || !strings.Contains(imageURL, "res.cloudinary.com") {
		return ""
	}
	publicID := imageURL[idx+1:]
	if dot := strings.LastIndex(publicID, "."); dot > 0 {
		publicID = publicID[:dot]
	}
	return publicID
}

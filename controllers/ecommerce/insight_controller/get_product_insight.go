package insight_controller

import (
	"log"
	"net/http"

	"github.com/MayankMaurya27/Ecommerce/config"
	"github.com/MayankMaurya27/Ecommerce/models"
	"github.com/MayankMaurya27/Ecommerce/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var insightClient *services.InsightClient

// InitInsight wires the generation client used by the product insight endpoint.
func InitInsight(client *services.InsightClient) {
	insightClient = client
}

// GetProductInsight godoc
// @Summary Get AI-generated product insight
// @Description Generate a structured description of the product. Failures return a composed fallback text rather than an empty body.
// @Tags store
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.ApiResponse{data=models.ProductInsightResponse}
// @Failure 400 {object} models.ApiResponse "Invalid product ID"
// @Failure 404 {object} models.ApiResponse "Product not found"
// @Router /store/products/{id}/insight [get]
func GetProductInsight(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var product models.Product
	if err := config.Gorm.WithContext(ctx).
		Where("id = ?", productID).
		First(&product).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
			return
		}
		log.Printf("[store.insight] ERROR query failed id=%s err=%v", productID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch product"))
		return
	}

	insight, err := insightClient.ProductInsight(c.Request.Context(), product)
	if err != nil {
		// The generation backend failing is not the shopper's problem: return
		// a viewable fallback with the error folded into the text.
		log.Printf("[store.insight] WARN generation failed id=%s err=%v", productID, err)
		c.JSON(http.StatusOK, models.WarningResponse(c, "AI insight unavailable, returning fallback",
			models.ProductInsightResponse{
				ProductID: productID.String(),
				Insight:   services.InsightFallbackMessage(err),
				Fallback:  true,
			}))
		return
	}

	log.Printf("[store.insight] respond 200 id=%s chars=%d", productID, len(insight))
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Insight generated successfully",
		models.ProductInsightResponse{
			ProductID: productID.String(),
			Insight:   insight,
		}))
}

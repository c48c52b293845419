package search_controller

import (
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/MayankMaurya27/Ecommerce/models"
	"github.com/MayankMaurya27/Ecommerce/services"
	"github.com/gin-gonic/gin"
)

var visionClient *services.VisionClient

// InitVision wires the vision client used by image search.
func InitVision(client *services.VisionClient) {
	visionClient = client
}

// ImageSearch godoc
// @Summary Search products by image
// @Description Upload an image and receive a search-terms string derived from its labels, text and objects.
// @Tags store
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Image file (max 10MB)"
// @Success 200 {object} models.ApiResponse{data=models.ImageSearchResponse}
// @Failure 400 {object} models.ApiResponse "Not an image or too large"
// @Failure 502 {object} models.ApiResponse "Vision backend failure"
// @Router /store/search/image [post]
func ImageSearch(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "No image file provided"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Printf("[store.image-search] ERROR opening upload: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to read uploaded file"))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		log.Printf("[store.image-search] ERROR reading upload: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to read uploaded file"))
		return
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	log.Printf("[store.image-search] upload name=%q size=%d type=%q", fileHeader.Filename, len(data), mimeType)

	terms, err := visionClient.SearchTerms(c.Request.Context(), data, mimeType)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotAnImage):
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Please upload an image file"))
		case errors.Is(err, services.ErrImageTooLarge):
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Image size should be less than 10MB"))
		case errors.Is(err, services.ErrNothingIdentified):
			// Soft failure: the user can still type a query by hand.
			c.JSON(http.StatusOK, models.WarningResponse(c, "Could not identify the image. Please try a clearer photo.",
				models.ImageSearchResponse{SearchTerms: ""}))
		default:
			log.Printf("[store.image-search] ERROR vision call failed: %v", err)
			c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Failed to analyze image. Please try again."))
		}
		return
	}

	log.Printf("[store.image-search] respond 200 terms=%q", terms)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Image analyzed successfully",
		models.ImageSearchResponse{SearchTerms: terms}))
}

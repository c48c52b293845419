package product_controller

import (
	"log"
	"net/http"
	"strconv"

	dashboard_cache "github.com/MayankMaurya27/Ecommerce/cache"
	"github.com/MayankMaurya27/Ecommerce/config"
	"github.com/MayankMaurya27/Ecommerce/models"
	"github.com/MayankMaurya27/Ecommerce/services"
	"github.com/gin-gonic/gin"
)

var cloudinaryService *services.CloudinaryService

func InitCloudinary(cloudName, apiKey, apiSecret string) error {
	var err error
	cloudinaryService, err = services.NewCloudinaryService(cloudName, apiKey, apiSecret)
	return err
}

// CreateProduct godoc
// @Summary Create a new product
// @Description Create a product from a multipart form. An attached "image" file is uploaded to Cloudinary; otherwise the imageUrl field is used as-is.
// @Tags Admin - Products
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param title formData string true "Product title"
// @Param description formData string true "Product description"
// @Param price formData number true "Price"
// @Param category formData string true "Category"
// @Param quantity formData int false "Stock quantity"
// @Param imageUrl formData string false "Image URL (ignored when a file is attached)"
// @Param image formData file false "Product image"
// @Success 201 {object} models.ApiResponse{data=models.Product}
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/products [post]
func CreateProduct(c *gin.Context) {
	log.Printf("[admin.create-product] start")

	ctx, cancel := config.WithTimeout()
	defer cancel()

	title := c.PostForm("title")
	description := c.PostForm("description")
	category := c.PostForm("category")
	if title == "" || description == "" || category == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "title, description and category are required"))
		return
	}

	price, err := strconv.ParseFloat(c.PostForm("price"), 64)
	if err != nil || price < 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid price"))
		return
	}

	var quantity *int
	if q := c.PostForm("quantity"); q != "" {
		n, err := strconv.Atoi(q)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid quantity"))
			return
		}
		quantity = &n
	}

	imageURL := c.PostForm("imageUrl")
	if fileHeader, err := c.FormFile("image"); err == nil {
		file, err := fileHeader.Open()
		if err != nil {
			log.Printf("[admin.create-product] ERROR open image err=%v", err)
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Failed to read image file"))
			return
		}
		defer file.Close()

		uploadedURL, err := cloudinaryService.UploadProductImage(ctx, file, "")
		if err != nil {
			log.Printf("[admin.create-product] ERROR upload image err=%v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to upload image"))
			return
		}
		imageURL = uploadedURL
	}

	product := models.Product{
		Title:       title,
		Description: description,
		Price:       price,
		Category:    category,
		ImageURL:    imageURL,
		Quantity:    quantity,
	}

	if err := config.Gorm.WithContext(ctx).Create(&product).Error; err != nil {
		log.Printf("[admin.create-product] ERROR insert err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create product"))
		return
	}

	dashboard_cache.Invalidate()

	log.Printf("[admin.create-product] respond 201 id=%s", product.ID)
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Product created successfully", product))
}

package controllers

import (
	"log"
	"net/http"
	"net/url"
	"strings"

	"camptrade/models"
	"camptrade/productimage"

	"github.com/gin-gonic/gin"
)

const placeholderImage = "/product-placeholder.svg"

// GetProductImage redirects to the composed card for a bare product identity.
func (api *API) GetProductImage(c *gin.Context) {
	category := c.Query("category")
	name := c.Query("name")
	id := c.Query("id")

	if category == "" || name == "" || id == "" {
		sendError(c, http.StatusBadRequest, "Category, name, and id are required")
		return
	}

	c.Redirect(http.StatusTemporaryRedirect, productimage.DataURI(models.Product{
		Id:       id,
		Name:     name,
		Category: category,
	}))
}

func (api *API) ComposeProductImage(c *gin.Context) {
	var req struct {
		Product models.Product `json:"product"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Println(err)
		sendError(c, http.StatusBadRequest, err.Error())
		return
	}

	if req.Product.Name == "" || req.Product.Category == "" {
		sendError(c, http.StatusBadRequest, "missing-product")
		return
	}

	c.JSON(http.StatusOK, gin.H{"imageUrl": productimage.DataURI(req.Product)})
}

// GenerateImage redirects to a generated or cached image, or the placeholder.
func (api *API) GenerateImage(c *gin.Context) {
	category := c.Query("category")
	product := c.Query("product")

	if category == "" || product == "" {
		sendError(c, http.StatusBadRequest, "Category and product are required")
		return
	}

	key := productimage.CacheKey(category, product)
	if cached, ok := api.ImageCache.Get(key); ok {
		c.Redirect(http.StatusTemporaryRedirect, cached)
		return
	}

	imageUrl := placeholderImage
	if api.Images != nil {
		text, err := api.Images.GenerateImage(c.Request.Context(), category, product)
		if err != nil {
			log.Println(err)
		} else if text = strings.TrimSpace(text); isAbsoluteURL(text) {
			imageUrl = text
		}
	}

	api.ImageCache.Set(key, imageUrl)
	c.Redirect(http.StatusTemporaryRedirect, imageUrl)
}

func (api *API) RequestImage(c *gin.Context) {
	var req models.GenerateImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Println(err)
		sendError(c, http.StatusBadRequest, err.Error())
		return
	}

	if req.Category == "" || req.ProductName == "" {
		sendError(c, http.StatusBadRequest, "Category and product name are required")
		return
	}

	if api.Images == nil {
		sendError(c, http.StatusBadGateway, "Failed to generate image")
		return
	}

	text, err := api.Images.GenerateImage(c.Request.Context(), req.Category, req.ProductName)
	if err != nil {
		log.Println(err)
		sendError(c, http.StatusBadGateway, "Failed to generate image")
		return
	}

	resp := models.GenerateImageResponse{
		Success:     true,
		Category:    req.Category,
		ProductName: req.ProductName,
	}
	if text != "" {
		resp.ImageUrl = &text
	}

	c.JSON(http.StatusOK, resp)
}

func isAbsoluteURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

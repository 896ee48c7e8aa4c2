package controllers

import (
	"net/http"

	"camptrade/models"
	"camptrade/productimage"

	"github.com/gin-gonic/gin"
)

func (api *API) GetCategories(c *gin.Context) {
	var list models.CategoryList

	for _, name := range productimage.Categories {
		s := productimage.StyleFor(name)
		list.Categories = append(list.Categories, models.Category{
			Name:      name,
			Primary:   s.Primary,
			Secondary: s.Secondary,
			Accent:    s.Accent,
		})
	}

	c.JSON(http.StatusOK, list)
}

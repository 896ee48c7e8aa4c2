package controllers

import (
	"log"
	"net/http"

	"camptrade/descriptions"
	"camptrade/models"

	"github.com/gin-gonic/gin"
)

func (api *API) GetDescription(c *gin.Context) {
	name := c.Query("name")
	category := c.Query("category")

	if name == "" || category == "" {
		sendError(c, http.StatusBadRequest, "Name and category are required")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"description": api.Descriptions.Get(c.Request.Context(), name, category),
	})
}

func (api *API) BatchDescriptions(c *gin.Context) {
	var req models.BatchDescriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Println(err)
		sendError(c, http.StatusBadRequest, err.Error())
		return
	}

	if len(req.Products) == 0 {
		sendError(c, http.StatusBadRequest, "missing-products")
		return
	}

	items := make([]descriptions.Item, len(req.Products))
	for i, p := range req.Products {
		items[i] = descriptions.Item{Name: p.Name, Category: p.Category}
	}

	results, err := api.Descriptions.Batch(c.Request.Context(), items)
	if err != nil {
		log.Println(err)
		sendError(c, http.StatusInternalServerError, err.Error())
		return
	}

	out := make(map[string]string, len(results))
	for _, r := range results {
		out[r.Key] = r.Description
	}

	c.JSON(http.StatusOK, gin.H{"descriptions": out})
}

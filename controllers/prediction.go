package controllers

import (
	"errors"
	"log"
	"net/http"

	"camptrade/upstream"

	"github.com/gin-gonic/gin"
)

func (api *API) GetPricePrediction(c *gin.Context) {
	itemId := c.Query("itemId")
	timestamp := c.Query("timestamp")

	if itemId == "" || timestamp == "" {
		sendError(c, http.StatusBadRequest, "Item ID and timestamp are required")
		return
	}

	prediction, err := api.Backend.PricePrediction(c.Request.Context(), itemId, timestamp)
	if err != nil {
		if errors.Is(err, upstream.ErrNotFound) {
			c.JSON(http.StatusOK, nil)
			return
		}

		log.Println(err)
		var se *upstream.StatusError
		if errors.As(err, &se) {
			sendError(c, se.Code, "Failed to fetch price prediction from backend")
			return
		}
		sendError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", prediction)
}

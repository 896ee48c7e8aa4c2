package controllers

import (
	"log"
	"net/http"
	"strings"

	"camptrade/chatbot"
	"camptrade/models"

	"github.com/gin-gonic/gin"
)

func (api *API) Chat(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Println(err)
		sendError(c, http.StatusBadRequest, err.Error())
		return
	}

	if req.Message == "" {
		sendError(c, http.StatusBadRequest, "message is required")
		return
	}

	if reply, ok := chatbot.RouteContact(req.Message); ok {
		c.JSON(http.StatusOK, models.ChatResponse{Reply: reply})
		return
	}

	if api.Completer == nil {
		sendError(c, http.StatusInternalServerError, "Mistral API key not configured")
		return
	}

	content, err := api.Completer.Complete(c.Request.Context(), chatbot.SystemPrompt, req.Message)
	if err != nil {
		log.Println(err)
		sendError(c, http.StatusBadGateway, "AI service temporarily unavailable")
		return
	}

	if strings.TrimSpace(content) == "" {
		content = chatbot.FallbackReply
	}

	c.JSON(http.StatusOK, models.ChatResponse{Reply: chatbot.Sanitize(content)})
}

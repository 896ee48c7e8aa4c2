package controllers

import (
	"bytes"
	"encoding/json"
	"log"

	"github.com/gin-gonic/gin"
)

const testSessionKey = "c2VjcmV0LXNlc3Npb24ta2V5"

func init() {
	log.SetFlags(log.LstdFlags | log.LUTC | log.Lshortfile)
	gin.SetMode(gin.TestMode)
}

func parsePayload(p interface{}) *bytes.Buffer {
	data, _ := json.Marshal(p)
	return bytes.NewBuffer(data)
}

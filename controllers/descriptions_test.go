package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"camptrade/descriptions"
	"camptrade/models"

	"github.com/gin-gonic/gin"
	"gotest.tools/assert"
)

type fakeDescriber struct {
	mu    sync.Mutex
	calls int
}

func (f *fakeDescriber) Describe(ctx context.Context, name, category string) (string, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	return "Generated copy for " + name, nil
}

func TestGetDescription(t *testing.T) {
	api := NewAPI()
	var genericResp GenericResponse

	// missing name (400)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest("GET", "?category=books", nil)
	c.Request = req
	api.GetDescription(c)

	err := json.NewDecoder(w.Body).Decode(&genericResp)
	assert.Equal(t, nil, err)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Name and category are required", genericResp.Error)

	// template without a generator (200)
	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	req, _ = http.NewRequest("GET", "?name=Calculus&category=books", nil)
	c.Request = req
	api.GetDescription(c)

	var resp map[string]string
	err = json.NewDecoder(w.Body).Decode(&resp)
	assert.Equal(t, nil, err)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "This Calculus is in good condition and perfect for your studies. Great value for money.", resp["description"])

	// generated once, then cached
	gen := &fakeDescriber{}
	api.Descriptions = descriptions.New(gen)
	for i := 0; i < 2; i++ {
		w = httptest.NewRecorder()
		c, _ = gin.CreateTestContext(w)
		req, _ = http.NewRequest("GET", "?name=Hoodie&category=clothes", nil)
		c.Request = req
		api.GetDescription(c)

		err = json.NewDecoder(w.Body).Decode(&resp)
		assert.Equal(t, nil, err)
		assert.Equal(t, "Generated copy for Hoodie", resp["description"])
	}
	assert.Equal(t, 1, gen.calls)
}

func TestBatchDescriptions(t *testing.T) {
	api := NewAPI()
	api.Descriptions.Pause = 0
	var genericResp GenericResponse

	// no products (400)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest("POST", "", parsePayload(models.BatchDescriptionRequest{}))
	c.Request = req
	api.BatchDescriptions(c)

	err := json.NewDecoder(w.Body).Decode(&genericResp)
	assert.Equal(t, nil, err)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "missing-products", genericResp.Error)

	// 200
	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	req, _ = http.NewRequest("POST", "", parsePayload(models.BatchDescriptionRequest{Products: []models.DescriptionRequest{
		{Name: "Calculus", Category: "books"},
		{Name: "Laptop", Category: "electronics"},
		{Name: "Stapler", Category: "stationery"},
	}}))
	c.Request = req
	api.BatchDescriptions(c)

	var resp struct {
		Descriptions map[string]string `json:"descriptions"`
	}
	err = json.NewDecoder(w.Body).Decode(&resp)
	assert.Equal(t, nil, err)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 3, len(resp.Descriptions))
	assert.Equal(t, "A quality Laptop perfect for students and tech enthusiasts. Well-maintained and ready to use.", resp.Descriptions["electronics-Laptop"])
	assert.Equal(t, "Quality Stapler in good condition. Perfect for students.", resp.Descriptions["stationery-Stapler"])
}

package models

type ChatRequest struct {
	Message string `json:"message"`
}

type ChatResponse struct {
	Reply string `json:"reply"`
}

type DescriptionRequest struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

type BatchDescriptionRequest struct {
	Products []DescriptionRequest `json:"products"`
}

type GenerateImageRequest struct {
	Category    string `json:"category"`
	ProductName string `json:"productName"`
}

type GenerateImageResponse struct {
	Success     bool    `json:"success"`
	ImageUrl    *string `json:"imageUrl"`
	Category    string  `json:"category"`
	ProductName string  `json:"productName"`
}

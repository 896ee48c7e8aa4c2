package models

import "time"

// Product is the view-model served to the browse and product pages.
type Product struct {
	Id          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Image       string  `json:"image,omitempty"`
	Category    string  `json:"category"`
	Seller      string  `json:"seller"`
	Recommended bool    `json:"recommended"`
	Brand       string  `json:"brand,omitempty"`
	Model       string  `json:"model,omitempty"`
	Condition   string  `json:"condition,omitempty"`
	Location    string  `json:"location,omitempty"`
}

type ProductList struct {
	Items []Product `json:"items"`
}

// Item is a row of the items table.
type Item struct {
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
	ItemId          string     `json:"item_id"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	Price           float64    `json:"price"`
	Quantity        int        `json:"quantity"`
	Category        string     `json:"category"`
	Tags            []string   `json:"tags"`
	Images          []string   `json:"images"`
	Discount        *float64   `json:"discount"`
	DiscountEndDate *time.Time `json:"discount_end_date"`
	Status          string     `json:"status"`
	SellerId        string     `json:"seller_id"`
}

// CreateProductRequest accepts price, quantity and discount as numbers or numeric strings.
type CreateProductRequest struct {
	Title           string      `json:"title"`
	Description     string      `json:"description"`
	Price           interface{} `json:"price"`
	Quantity        interface{} `json:"quantity"`
	Discount        interface{} `json:"discount"`
	DiscountEndDate string      `json:"discountEndDate"`
	Category        string      `json:"category"`
	Tags            []string    `json:"tags"`
	Images          []string    `json:"images"`
	Status          string      `json:"status"`
	SellerId        string      `json:"seller_id"`
}

type CreateProductResponse struct {
	Success bool   `json:"success"`
	Product Item   `json:"product"`
	Message string `json:"message"`
}

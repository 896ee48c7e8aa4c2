package controllers

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"camptrade/models"
	"camptrade/productimage"

	"github.com/360EntSecGroup-Skylar/excelize/v2"
	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
)

const (
	recommendedCount = 3
	sellerSuffixLen  = 4
)

var errInvalidNumber = errors.New("invalid-number")

// GetProducts proxies the backend listing and falls back to published items.
func (api *API) GetProducts(c *gin.Context) {
	userId := c.Query("userId")
	if userId == "" {
		sendError(c, http.StatusBadRequest, "User ID is required")
		return
	}

	if api.Backend != nil {
		raw, err := api.Backend.Products(c.Request.Context(), userId)
		if err == nil {
			c.Data(http.StatusOK, "application/json; charset=utf-8", raw)
			return
		}
		log.Println("products backend unavailable, falling back to database:", err)
	}

	items, err := api.getItems(`
		SELECT item_id, title, description, price, quantity, category, tags, images, status, seller_id, created_at, updated_at
		FROM items
		WHERE status = 'published'
		ORDER BY created_at DESC`, nil)
	if err != nil {
		log.Println(err)
		sendError(c, http.StatusInternalServerError, "Failed to fetch products from database")
		return
	}

	products := make([]models.Product, 0, len(items))
	for i, item := range items {
		products = append(products, toProduct(item, i < recommendedCount))
	}

	c.JSON(http.StatusOK, models.ProductList{Items: products})
}

func toProduct(item models.Item, recommended bool) models.Product {
	p := models.Product{
		Id:          item.ItemId,
		Name:        item.Title,
		Price:       item.Price,
		Description: item.Description,
		Category:    item.Category,
		Seller:      "Seller Unknown",
		Recommended: recommended,
		Brand:       findTag(item.Tags, "Unknown", "brand"),
		Model:       findTag(item.Tags, "N/A", "model"),
		Condition:   findTag(item.Tags, "Good", "used", "new"),
		Location:    "Campus",
	}

	if p.Description == "" {
		p.Description = "No description available"
	}

	if item.SellerId != "" {
		id := []rune(item.SellerId)
		if len(id) > sellerSuffixLen {
			id = id[len(id)-sellerSuffixLen:]
		}
		p.Seller = "Seller " + string(id)
	}

	if len(item.Images) > 0 && item.Images[0] != "" {
		p.Image = item.Images[0]
	} else {
		p.Image = productimage.DataURI(p)
	}

	return p
}

func findTag(tags []string, fallback string, needles ...string) string {
	for _, tag := range tags {
		lower := strings.ToLower(tag)
		for _, n := range needles {
			if strings.Contains(lower, n) {
				return tag
			}
		}
	}
	return fallback
}

func (api *API) CreateProduct(c *gin.Context) {
	var payload models.CreateProductRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Println(err)
		sendError(c, http.StatusBadRequest, err.Error())
		return
	}

	if payload.Title == "" || payload.Description == "" || payload.Price == nil || payload.Quantity == nil {
		sendError(c, http.StatusBadRequest, "Missing required fields: title, description, price, quantity")
		return
	}

	if payload.SellerId == "" {
		sendError(c, http.StatusBadRequest, "Seller ID is required")
		return
	}

	item, err := newItem(payload, time.Now())
	if err != nil {
		log.Println(err)
		sendError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := api.Db.QueryRow(`
		INSERT INTO items
		(item_id, title, description, price, quantity, category, tags, images, discount, discount_end_date, status, seller_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		RETURNING created_at, updated_at
	`, item.ItemId, item.Title, item.Description, item.Price, item.Quantity, item.Category, pq.Array(item.Tags), pq.Array(item.Images),
		item.Discount, item.DiscountEndDate, item.Status, item.SellerId).Scan(&item.CreatedAt, &item.UpdatedAt); err != nil {
		log.Println(err)
		sendError(c, http.StatusInternalServerError, "Failed to create product in database")
		return
	}

	c.JSON(http.StatusOK, models.CreateProductResponse{
		Success: true,
		Product: item,
		Message: "Product created successfully",
	})
}

func newItem(payload models.CreateProductRequest, now time.Time) (models.Item, error) {
	item := models.Item{
		ItemId:      fmt.Sprintf("item_%d", now.UnixNano()/int64(time.Millisecond)),
		Title:       payload.Title,
		Description: payload.Description,
		Category:    payload.Category,
		Tags:        payload.Tags,
		Images:      payload.Images,
		Status:      payload.Status,
		SellerId:    payload.SellerId,
	}

	var err error
	if item.Price, err = parseNumber(payload.Price); err != nil {
		return item, errors.New("invalid-price")
	}

	quantity, err := parseNumber(payload.Quantity)
	if err != nil {
		return item, errors.New("invalid-quantity")
	}
	item.Quantity = int(quantity)

	if payload.Discount != nil && payload.Discount != "" {
		discount, err := parseNumber(payload.Discount)
		if err != nil {
			return item, errors.New("invalid-discount")
		}
		if discount != 0 {
			item.Discount = &discount
		}
	}

	if payload.DiscountEndDate != "" {
		end, err := parseDate(payload.DiscountEndDate)
		if err != nil {
			return item, errors.New("invalid-discount-end-date")
		}
		item.DiscountEndDate = &end
	}

	if item.Category == "" {
		item.Category = "general"
	}
	if item.Status == "" {
		item.Status = "published"
	}
	if item.Tags == nil {
		item.Tags = []string{}
	}
	if item.Images == nil {
		item.Images = []string{}
	}

	return item, nil
}

// parseNumber accepts a JSON number or a numeric string.
func parseNumber(v interface{}) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, errInvalidNumber
		}
		return f, nil
	default:
		return 0, errInvalidNumber
	}
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

func (api *API) DeleteProducts(c *gin.Context) {
	api.BatchDeletes(c, "items", "item_id")
}

// ExportProducts writes the caller's published listings as a spreadsheet.
func (api *API) ExportProducts(c *gin.Context) {
	u := ParsePayload(c)

	q := `
		SELECT item_id, title, description, price, quantity, category, tags, images, status, seller_id, created_at, updated_at
		FROM items
		WHERE status = 'published'`
	var stms []interface{}

	if u.Role != string(models.Admin) {
		q += " AND seller_id = $1"
		stms = append(stms, u.UserId)
	}

	items, err := api.getItems(q+" ORDER BY created_at DESC", stms)
	if err != nil {
		log.Println(err)
		sendError(c, http.StatusInternalServerError, err.Error())
		return
	}

	handleExcelProducts(c, items)
}

func handleExcelProducts(c *gin.Context, items []models.Item) {
	if len(items) == 0 {
		sendError(c, http.StatusNotFound, "products-not-found")
		return
	}

	f := excelize.NewFile()

	sheet := "List Products"
	f.NewSheet(sheet)
	// delete default sheet
	f.DeleteSheet("Sheet1")

	err := f.SetColWidth(sheet, "A", "G", 30)
	if err != nil {
		sendError(c, http.StatusInternalServerError, err.Error())
		return
	}

	headerStyle, err := f.NewStyle(s1)
	if err != nil {
		sendError(c, http.StatusInternalServerError, err.Error())
		return
	}

	dataStyle, err := f.NewStyle(s2)
	if err != nil {
		sendError(c, http.StatusInternalServerError, err.Error())
		return
	}

	streamWriter, err := f.NewStreamWriter(sheet)
	if err != nil {
		sendError(c, http.StatusInternalServerError, err.Error())
		return
	}

	header := []interface{}{}
	for _, h := range []string{"Item ID", "Title", "Category", "Price (Rs)", "Quantity", "Created At", "Updated At"} {
		header = append(header, excelize.Cell{StyleID: headerStyle, Value: h})
	}
	if err = streamWriter.SetRow("A1", header); err != nil {
		sendError(c, http.StatusInternalServerError, err.Error())
		return
	}

	loc := campusLocation()

	for n, item := range items {
		createdAt := item.CreatedAt.In(loc).Format("2006-01-02 15:04:05")
		updatedAt := item.UpdatedAt.In(loc).Format("2006-01-02 15:04:05")

		if updatedAt == createdAt {
			updatedAt = "-"
		}

		row := make([]interface{}, 7)
		row[0] = excelize.Cell{StyleID: dataStyle, Value: item.ItemId}
		row[1] = excelize.Cell{StyleID: dataStyle, Value: item.Title}
		row[2] = excelize.Cell{StyleID: dataStyle, Value: item.Category}
		row[3] = excelize.Cell{StyleID: dataStyle, Value: item.Price}
		row[4] = excelize.Cell{StyleID: dataStyle, Value: item.Quantity}
		row[5] = excelize.Cell{StyleID: dataStyle, Value: createdAt}
		row[6] = excelize.Cell{StyleID: dataStyle, Value: updatedAt}

		cell, _ := excelize.CoordinatesToCellName(1, n+2)
		if err = streamWriter.SetRow(cell, row); err != nil {
			sendError(c, http.StatusInternalServerError, err.Error())
			return
		}
	}

	if err := streamWriter.Flush(); err != nil {
		sendError(c, http.StatusInternalServerError, err.Error())
		return
	}

	fileName := fmt.Sprintf("report_products_%s.xlsx", time.Now().In(loc).Format("20060102_150405"))

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment;filename=\""+fileName+"\"")

	if _, err := f.WriteTo(c.Writer); err != nil {
		sendError(c, http.StatusInternalServerError, err.Error())
		return
	}
}

func campusLocation() *time.Location {
	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		log.Println(err)
		return time.UTC
	}
	return loc
}

func (api *API) getItems(q string, stms []interface{}) (items []models.Item, err error) {
	rows, err := api.Db.Query(q, stms...)
	if err != nil {
		log.Println(err)
		return
	}

	defer rows.Close()

	for rows.Next() {
		var item models.Item
		var description, category, sellerId sql.NullString
		err = rows.Scan(&item.ItemId, &item.Title, &description, &item.Price, &item.Quantity, &category,
			pq.Array(&item.Tags), pq.Array(&item.Images), &item.Status, &sellerId, &item.CreatedAt, &item.UpdatedAt)
		if err != nil {
			log.Println(err)
			return
		}

		item.Description = description.String
		item.Category = category.String
		item.SellerId = sellerId.String

		items = append(items, item)
	}

	err = rows.Err()
	return
}

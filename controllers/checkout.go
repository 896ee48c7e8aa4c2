package controllers

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"html"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"camptrade/models"
	"camptrade/utils"

	"github.com/dustin/go-humanize"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/shopspring/decimal"
	"gopkg.in/gomail.v2"
)

const (
	orderTTL     = 30 * time.Minute
	qrCodeURL    = "https://api.qrserver.com/v1/create-qr-code/?size=200x200&data="
	orderSubject = "Your CampTrade order %s"
)

//go:embed templates/order_confirmation.html
var orderTemplate string

var clock = time.Now

func orderKey(id string) string {
	return "order:" + id
}

func (api *API) Checkout(c *gin.Context) {
	u := ParsePayload(c)

	var req models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Println(err)
		sendError(c, http.StatusBadRequest, err.Error())
		return
	}

	if len(req.Items) == 0 {
		sendError(c, http.StatusBadRequest, "missing-items")
		return
	}

	if api.Payee.Address == "" {
		sendError(c, http.StatusInternalServerError, "upi-payee-not-configured")
		return
	}

	now := clock().UTC()
	order := models.Order{
		OrderId:   fmt.Sprintf("ORD%d", now.UnixNano()/int64(time.Millisecond)),
		Buyer:     u.Email,
		Status:    models.OrderPending,
		Timestamp: now,
		Total:     decimal.Zero,
	}

	for _, item := range req.Items {
		if item.Id == "" || item.Price.IsNegative() || item.Quantity < 0 {
			sendError(c, http.StatusBadRequest, "invalid-item")
			return
		}
		if item.Quantity == 0 {
			item.Quantity = 1
		}
		order.Items = append(order.Items, item)
		order.Total = order.Total.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	data, err := json.Marshal(order)
	if err != nil {
		log.Println(err)
		sendError(c, http.StatusInternalServerError, err.Error())
		return
	}

	if err := api.Redis.Set(c.Request.Context(), orderKey(order.OrderId), string(data), orderTTL).Err(); err != nil {
		log.Println(err)
		sendError(c, http.StatusInternalServerError, err.Error())
		return
	}

	upiUrl := UPIURL(api.Payee, order)
	c.JSON(http.StatusOK, models.CheckoutResponse{
		Order:     order,
		UpiUrl:    upiUrl,
		QrCodeUrl: qrCodeURL + utils.EncodeURIComponent(upiUrl),
	})
}

// UPIURL builds the pay link with its parameters in the order payment apps expect.
func UPIURL(payee Payee, order models.Order) string {
	params := [][2]string{
		{"pa", payee.Address},
		{"pn", payee.Name},
		{"am", order.Total.String()},
		{"cu", "INR"},
		{"tn", fmt.Sprintf("Order %s - CampTrade Purchase", order.OrderId)},
	}

	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = p[0] + "=" + url.QueryEscape(p[1])
	}
	return "upi://pay?" + strings.Join(parts, "&")
}

// ConfirmOrder records a simulated successful payment for a pending order.
func (api *API) ConfirmOrder(c *gin.Context) {
	u := ParsePayload(c)
	orderId := c.Param("orderId")

	raw, err := api.Redis.Get(c.Request.Context(), orderKey(orderId)).Result()
	if err != nil {
		if err == redis.Nil {
			sendError(c, http.StatusNotFound, "order-not-found")
			return
		}
		log.Println(err)
		sendError(c, http.StatusInternalServerError, err.Error())
		return
	}

	var order models.Order
	if err := json.Unmarshal([]byte(raw), &order); err != nil {
		log.Println(err)
		sendError(c, http.StatusInternalServerError, err.Error())
		return
	}

	if order.Buyer != u.Email {
		sendError(c, http.StatusNotFound, "order-not-found")
		return
	}

	order.Status = models.OrderPaid
	items, err := json.Marshal(order.Items)
	if err != nil {
		log.Println(err)
		sendError(c, http.StatusInternalServerError, err.Error())
		return
	}

	tx, err := api.Db.Begin()
	if err != nil {
		log.Println(err)
		sendError(c, http.StatusInternalServerError, err.Error())
		return
	}

	defer tx.Rollback()

	if _, err := tx.Exec(`
		INSERT INTO orders (order_id, buyer, items, total, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, order.OrderId, order.Buyer, string(items), order.Total.String(), order.Status, order.Timestamp); err != nil {
		log.Println(err)
		sendError(c, http.StatusInternalServerError, err.Error())
		return
	}

	if err := tx.Commit(); err != nil {
		log.Println(err)
		sendError(c, http.StatusInternalServerError, err.Error())
		return
	}

	if err := api.Redis.Del(c.Request.Context(), orderKey(orderId)).Err(); err != nil {
		log.Println(err)
	}

	if api.Mailer != nil {
		if err := api.sendOrderMail(order); err != nil {
			log.Println(err)
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "ok", "order": order})
}

func (api *API) GetOrders(c *gin.Context) {
	u := ParsePayload(c)

	rows, err := api.Db.Query(`
		SELECT order_id, buyer, items, total, status, created_at
		FROM orders
		WHERE buyer = $1 AND status = 'paid'
		ORDER BY created_at DESC
	`, u.Email)
	if err != nil {
		log.Println(err)
		sendError(c, http.StatusInternalServerError, err.Error())
		return
	}

	defer rows.Close()

	list := models.OrderList{Orders: []models.Order{}}
	for rows.Next() {
		var order models.Order
		var items []byte
		if err := rows.Scan(&order.OrderId, &order.Buyer, &items, &order.Total, &order.Status, &order.Timestamp); err != nil {
			log.Println(err)
			sendError(c, http.StatusInternalServerError, err.Error())
			return
		}

		if err := json.Unmarshal(items, &order.Items); err != nil {
			log.Println(err)
			sendError(c, http.StatusInternalServerError, err.Error())
			return
		}

		list.Orders = append(list.Orders, order)
	}

	c.JSON(http.StatusOK, list)
}

func (api *API) sendOrderMail(order models.Order) error {
	mailer := gomail.NewMessage()
	mailer.SetHeader("From", api.MailFrom)
	mailer.SetHeader("To", order.Buyer)
	mailer.SetHeader("Subject", fmt.Sprintf(orderSubject, order.OrderId))
	mailer.SetBody("text/html", orderMailBody(order))

	t := time.Now()
	err := api.Mailer.DialAndSend(mailer)
	log.Println("order mail", order.OrderId, time.Since(t))

	return err
}

func orderMailBody(order models.Order) string {
	var rows strings.Builder
	for _, item := range order.Items {
		fmt.Fprintf(&rows, `<tr><td>%s</td><td align="right">%d</td><td align="right">Rs %s</td></tr>`,
			html.EscapeString(item.Title), item.Quantity, formatAmount(item.Price))
	}

	return strings.NewReplacer(
		"%ORDER_ID%", html.EscapeString(order.OrderId),
		"%ITEMS%", rows.String(),
		"%TOTAL%", formatAmount(order.Total),
	).Replace(orderTemplate)
}

// formatAmount groups thousands and keeps at most two decimals.
func formatAmount(d decimal.Decimal) string {
	f, _ := d.Round(2).Float64()
	return humanize.CommafWithDigits(f, 2)
}

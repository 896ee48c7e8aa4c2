package controllers

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"camptrade/descriptions"
	"camptrade/models"
	"camptrade/productimage"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/lib/pq"
	"gopkg.in/gomail.v2"
)

var (
	s1 = `
	{
		"border": [
			{"type": "left", "color": "#000000", "style": 1},
			{"type": "top", "color": "#000000", "style": 1},
			{"type": "right", "color": "#000000", "style": 1},
			{"type": "bottom", "color": "#000000", "style": 1}
		],
		"fill": {
			"type": "pattern",
			"pattern": 1,
			"color": ["#8B5CF6"]
		},
		"font": {
			"bold": true,
			"color": "#FFFFFF"
		},
		"alignment": {
			"shrink_to_fit": true,
			"horizontal": "center"
		}
	}
	`
	s2 = `
	{
		"border": [
			{"type": "left", "color": "#000000", "style": 1},
			{"type": "top", "color": "#000000", "style": 1},
			{"type": "right", "color": "#000000", "style": 1},
			{"type": "bottom", "color": "#000000", "style": 1}
		],
		"alignment": {
			"shrink_to_fit": true
		}
	}
	`
)

var genericOK = map[string]string{"message": "ok"}

type GenericResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// Backend is the remote products and pricing service.
type Backend interface {
	Products(ctx context.Context, userID string) (json.RawMessage, error)
	PricePrediction(ctx context.Context, itemID, timestamp string) (json.RawMessage, error)
}

type ChatCompleter interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

type ImageGenerator interface {
	GenerateImage(ctx context.Context, category, product string) (string, error)
}

type Mailer interface {
	DialAndSend(m ...*gomail.Message) error
}

type Payee struct {
	Address string
	Name    string
}

// API carries the handlers' dependencies. Completer, Images and Mailer stay nil
// when their service is not configured.
type API struct {
	Db    *sql.DB
	Redis *redis.Client

	SessionKey string

	Backend      Backend
	Completer    ChatCompleter
	Images       ImageGenerator
	Descriptions *descriptions.Cache
	ImageCache   *productimage.URLCache

	Mailer   Mailer
	MailFrom string
	Payee    Payee
}

func NewAPI() *API {
	return &API{
		Descriptions: descriptions.New(nil),
		ImageCache:   productimage.NewURLCache(),
		Payee:        Payee{Name: "CampTrade"},
	}
}

func sendError(c *gin.Context, code int, msg string) {
	c.JSON(code, gin.H{
		"error": msg,
	})
}

// BatchDeletes soft-deletes the caller's own rows of table, keyed by column.
func (api *API) BatchDeletes(c *gin.Context, table, column string) {
	u := ParsePayload(c)
	var req models.BatchDeleteRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		log.Println(err)
		sendError(c, http.StatusBadRequest, err.Error())
		return
	}

	ids := req.Data
	if len(ids) == 0 {
		sendError(c, http.StatusBadRequest, "missing-data")
		return
	}

	var errInvalid []models.RowError
	for i, id := range ids {
		if id == "" {
			errInvalid = append(errInvalid, models.RowError{
				Row:     i,
				Message: "invalid-id",
			})
		}
	}

	if len(errInvalid) > 0 {
		c.JSON(http.StatusBadRequest, models.RowResponseError{
			Error:  "error",
			Detail: errInvalid,
		})
		return
	}

	tx, err := api.Db.Begin()
	if err != nil {
		log.Println(err)
		sendError(c, http.StatusInternalServerError, err.Error())
		return
	}

	defer tx.Rollback()
	var q string
	var stms = []interface{}{pq.Array(ids)}

	if u.Role != string(models.Admin) {
		q = " AND seller_id = $2"
		stms = append(stms, u.UserId)
	}

	tag, err := tx.Exec(`UPDATE `+table+` SET status = 'deleted', updated_at = CURRENT_TIMESTAMP WHERE `+column+` = ANY($1) AND status <> 'deleted'`+q, stms...)
	if err != nil {
		log.Println(err)
		sendError(c, http.StatusInternalServerError, err.Error())
		return
	}

	t, _ := tag.RowsAffected()
	if int(t) != len(ids) {
		sendError(c, http.StatusNotFound, fmt.Sprintf("expected-%d-deleted-but-got-%d", len(ids), t))
		return
	}

	if err := tx.Commit(); err != nil {
		log.Println(err)
		sendError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, genericOK)
}

func ParsePayload(c *gin.Context) (redis models.RedisPayload) {
	payload := c.Request.Header.Get("payload")

	err := json.Unmarshal([]byte(payload), &redis)
	if err != nil {
		log.Println(err)
	}

	return
}

package controllers

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"net/mail"
	"strings"

	"camptrade/models"

	"github.com/gin-gonic/gin"
	"github.com/gofrs/uuid"
)

type campusGroup struct {
	name    string
	domains []string
}

// faculty and staff share domains; the first group listed wins.
var campusGroups = []campusGroup{
	{name: "students", domains: []string{"gmail.com", "outlook.com", "yahoo.com"}},
	{name: "faculty", domains: []string{"university.edu", "college.edu", "institute.edu"}},
	{name: "staff", domains: []string{"university.edu", "college.edu", "institute.edu"}},
}

// GroupFromEmail maps an email domain to its campus group.
func GroupFromEmail(email string) (string, bool) {
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return "", false
	}
	domain := strings.ToLower(email[at+1:])

	for _, g := range campusGroups {
		for _, d := range g.domains {
			if d == domain {
				return g.name, true
			}
		}
	}
	return "", false
}

func GroupDisplayName(group string) string {
	switch group {
	case "students":
		return "Student Community"
	case "faculty":
		return "Faculty Members"
	case "staff":
		return "Staff Members"
	default:
		return "Campus Community"
	}
}

// GenerateUserID returns a public handle between user_0001 and user_0500.
func GenerateUserID() string {
	return fmt.Sprintf("user_%04d", rand.Intn(500)+1)
}

func (api *API) Register(c *gin.Context) {
	var user models.SignupRequest
	if err := c.ShouldBindJSON(&user); err != nil {
		log.Println(err)
		sendError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := validateUser(user); err != nil {
		log.Println(err)
		sendError(c, http.StatusBadRequest, err.Error())
		return
	}

	group, ok := GroupFromEmail(user.Email)
	if !ok {
		sendError(c, http.StatusBadRequest, "email-domain-not-allowed")
		return
	}

	if user.Name == "" {
		user.Name = user.Email[:strings.LastIndex(user.Email, "@")]
	}

	var exists bool
	if err := api.Db.QueryRow("SELECT EXISTS(SELECT 1 FROM users WHERE email = $1 AND NOT deleted)", user.Email).Scan(&exists); err != nil {
		log.Println(err)
		sendError(c, http.StatusInternalServerError, err.Error())
		return
	}

	if exists {
		sendError(c, http.StatusConflict, "email-already-exist")
		return
	}

	if _, err := api.Db.Exec(`
		INSERT INTO users (id, email, name, password, role, user_id, group_name, created_at, updated_at)
		VALUES ($1, $2, $3, crypt($4, gen_salt('bf', 8)), 'CUSTOMER', $5, $6, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
	`, uuid.Must(uuid.NewV4()).String(), user.Email, user.Name, user.Password, GenerateUserID(), group); err != nil {
		log.Println(err)
		sendError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, genericOK)
}

func (api *API) GetUser(c *gin.Context) {
	userId := ParsePayload(c).Id

	if userId == "" {
		sendError(c, http.StatusBadRequest, "missing-id")
		return
	}

	if _, err := uuid.FromString(userId); err != nil {
		sendError(c, http.StatusBadRequest, "invalid-id")
		return
	}

	var profile models.Profile
	user := &profile.User

	if err := api.Db.QueryRow("SELECT id, email, name, role, user_id, group_name, created_at, updated_at FROM users WHERE id = $1 AND NOT deleted", userId).
		Scan(&user.Id, &user.Email, &user.Name, &user.Role, &user.UserId, &user.GroupName, &user.CreatedAt, &user.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			sendError(c, http.StatusNotFound, "user-not-found")
			return
		}

		log.Println(err)
		sendError(c, http.StatusInternalServerError, err.Error())
		return
	}

	profile.Group = GroupDisplayName(user.GroupName)

	c.JSON(http.StatusOK, profile)
}

func validateUser(user models.SignupRequest) error {
	if user.Email == "" {
		return errors.New("missing-email")
	}

	if _, err := mail.ParseAddress(user.Email); err != nil {
		log.Println(err)
		return errors.New("invalid-email")
	}

	if user.Password == "" {
		return errors.New("missing-password")
	}

	if len(user.Password) < 8 {
		return errors.New("password-must-be-at-least-8-characters")
	}

	return nil
}

package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/Dr-Min/TalKR-Add-DB/middleware"
	"github.com/Dr-Min/TalKR-Add-DB/pkg/config"
	"github.com/Dr-Min/TalKR-Add-DB/pkg/store"
	tokenstore "github.com/Dr-Min/TalKR-Add-DB/pkg/token"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Signup handler. Uniqueness conflicts come back as HTTP 200 with an error
// code; a duplicate email is reported even when the username conflicts too.
func Signup(users *store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			Username string `json:"username"`
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := c.ShouldBindJSON(&body); err != nil || body.Username == "" || body.Email == "" || body.Password == "" {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "msg": "username, email and password are required"})
			return
		}

		_, err := users.Create(body.Username, body.Email, body.Password)
		switch {
		case errors.Is(err, store.ErrEmailTaken):
			c.JSON(http.StatusOK, gin.H{"success": false, "error": "email_taken"})
		case errors.Is(err, store.ErrUsernameTaken):
			c.JSON(http.StatusOK, gin.H{"success": false, "error": "username_taken"})
		case err != nil:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "msg": "failed to create user"})
		default:
			c.JSON(http.StatusOK, gin.H{"success": true, "message": "User created successfully"})
		}
	}
}

// Login issues a 24h bearer token. Unknown username and wrong password get the
// same response.
func Login(users *store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		if err := c.ShouldBindJSON(&body); err != nil || body.Username == "" || body.Password == "" {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "msg": "username and password are required"})
			return
		}

		user, err := users.FindByUsername(body.Username)
		if err != nil || !user.CheckPassword(body.Password) {
			c.JSON(http.StatusOK, gin.H{"success": false})
			return
		}

		jti := uuid.NewString()
		claims := jwt.MapClaims{
			"sub": strconv.Itoa(int(user.ID)),
			"exp": time.Now().Add(24 * time.Hour).Unix(),
			"jti": jti,
		}
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
		tokenStr, err := token.SignedString([]byte(config.JWTSecret))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "msg": "failed to create token"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "access_token": tokenStr, "username": user.Username})
	}
}

// Logout revokes the session token's jti.
func Logout() gin.HandlerFunc {
	return func(c *gin.Context) {
		jti, _ := c.Get(middleware.ContextJTIKey)
		if s, ok := jti.(string); ok && s != "" {
			tokenstore.RevokeToken(s)
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

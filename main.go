package main

import (
	"log"
	"time"

	"github.com/Dr-Min/TalKR-Add-DB/models"
	"github.com/Dr-Min/TalKR-Add-DB/pkg/config"
	"github.com/Dr-Min/TalKR-Add-DB/routes"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// openDatabase picks MySQL when a DSN is configured, otherwise a local
// sqlite file next to the binary.
func openDatabase() (*gorm.DB, error) {
	if config.MySQLDSN != "" {
		return gorm.Open(mysql.Open(config.MySQLDSN), &gorm.Config{})
	}
	return gorm.Open(sqlite.Open("users.db"), &gorm.Config{})
}

func main() {
	// config.Load happens in init of pkg/config

	db, err := openDatabase()
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	// auto-migrate
	if err := db.AutoMigrate(&models.User{}, &models.Conversation{}, &models.Message{}); err != nil {
		log.Fatalf("failed migrate: %v", err)
	}

	r := gin.Default()
	r.LoadHTMLGlob("templates/*")

	// CORS configuration
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000", "http://localhost:5173", "http://127.0.0.1:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r, db)
	r.Run(":" + config.Port)
}

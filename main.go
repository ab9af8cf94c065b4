package main

import (
	"os"
	"strings"

	"Evexia/CronJobs"
	"Evexia/FirebaseMessaging"
	"Evexia/Models"
	"Evexia/Routes"
	"Evexia/Utils/Logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

func main() {
	Logger.Init()
	Models.ConnectDataBase()
	FirebaseMessaging.Setup()

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(Logger.GinLogger())

	var allowedOrigins []string
	if origins := os.Getenv("CORS_ALLOWED_ORIGINS"); origins != "" {
		allowedOrigins = strings.Split(origins, ",")
	} else {
		allowedOrigins = []string{"http://localhost:3000"}
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	}))

	Routes.ConfigRoutes(router)

	workers := CronJobs.NewWorkers(Models.DB)
	workers.Start()

	port := os.Getenv("PORT")
	if port == "" {
		port = "3005"
	}
	if err := router.Run(":" + port); err != nil {
		log.Fatal().Err(err).Msg("Failed to start server")
	}
}

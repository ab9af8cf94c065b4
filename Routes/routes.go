package Routes

import (
	"Evexia/Controllers"
	"Evexia/Middleware"
	"Evexia/SSE"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

func ConfigRoutes(router *gin.Engine) {
	// Gzip Compression
	router.Use(gzip.Gzip(gzip.BestSpeed))

	// Public routes
	public := router.Group("/api")
	{
		public.POST("/login", Controllers.Login)
		public.POST("/register", Controllers.Register)
		public.POST("/register/Account", Controllers.RegisterAccount)
	}

	// Authorized routes
	authorized := router.Group("/api/protected")
	authorized.Use(Middleware.JwtAuthMiddleware())
	authorized.Use(Middleware.SetAccount())
	{
		// User-related routes
		authorized.GET("/user", Controllers.CurrentUser)
		authorized.POST("/SaveFcmToken", Controllers.SaveFCM)
		authorized.POST("/DeleteUser", Controllers.DeleteUser)

		// Client-related routes
		authorized.GET("/FetchClients", Controllers.FetchClients)
		authorized.POST("/FetchClient", Controllers.FetchClient)
		authorized.POST("/CreateClient", Controllers.CreateClient)
		authorized.POST("/UpdateClient", Controllers.UpdateClient)
		authorized.POST("/ArchiveClient", Controllers.ArchiveClient)

		// Appointment-related routes
		authorized.POST("/CreateAppointment", Controllers.CreateAppointment)
		authorized.POST("/FetchClientAppointments", Controllers.FetchClientAppointments)
		authorized.GET("/FetchWeekAppointments", Controllers.FetchWeekAppointments)
		authorized.POST("/CompleteAppointment", Controllers.CompleteAppointment)
		authorized.POST("/CancelAppointment", Controllers.CancelAppointment)
		authorized.POST("/MarkAppointmentAsNoShow", Controllers.MarkAppointmentAsNoShow)

		// Session-related routes
		authorized.POST("/CreateSession", Controllers.CreateSession)
		authorized.POST("/FetchClientSessions", Controllers.FetchClientSessions)

		// Package-related routes
		authorized.POST("/CreatePackage", Controllers.CreatePackage)
		authorized.POST("/FetchClientPackages", Controllers.FetchClientPackages)
		authorized.POST("/FetchClientActivePackage", Controllers.FetchClientActivePackage)

		// Payment-related routes
		authorized.POST("/CreatePayment", Controllers.CreatePayment)
		authorized.GET("/FetchRecentPayments", Controllers.FetchRecentPayments)
		authorized.POST("/FetchClientPayments", Controllers.FetchClientPayments)

		// Report-related routes
		authorized.GET("/Dashboard", Controllers.Dashboard)
		authorized.GET("/FetchClientBalances", Controllers.FetchClientBalances)
		authorized.POST("/FetchClientBalance", Controllers.FetchClientBalance)
		authorized.GET("/FetchSessionsPerDay", Controllers.FetchSessionsPerDay)
		authorized.GET("/FetchSessionsPerMonth", Controllers.FetchSessionsPerMonth)

		// SSE (Server-Sent Events) route
		authorized.GET("/RequestSSE", SSE.RequestSSE)

		// Export-related routes
		authorized.POST("/ExportPaymentsTable", Controllers.ExportPaymentsTable)
	}
}

package routes

import (
	"context"
	"net/http"
	"stayhub/config"
	"stayhub/constants"
	"stayhub/controllers"
	middlewares "stayhub/middleware"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"

	"github.com/redis/go-redis/v9"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"gorm.io/gorm"
)

func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client, cld *cloudinary.Cloudinary, m *melody.Melody) {

	controllers.SetWebSocketHub(m)

	router.Use(middlewares.ErrorHandler())

	v1 := router.Group("/api/v1.0")

	v1.POST("/auth/register", controllers.RegisterUser)
	v1.POST("/auth/login", controllers.Login)
	v1.POST("/auth/refresh", controllers.RefreshTokenData)
	v1.DELETE("/auth/logout", middlewares.AuthMiddleware(constants.RoleGuest, constants.RoleAdmin), controllers.Logout)
	v1.POST("/auth/google", controllers.AuthGoogle)

	v1.GET("/bookings", middlewares.AuthMiddleware(constants.RoleGuest, constants.RoleAdmin), controllers.GetBookings)
	v1.GET("/bookings/:id", middlewares.AuthMiddleware(constants.RoleGuest, constants.RoleAdmin), controllers.GetBookingDetail)
	v1.POST("/bookings", middlewares.AuthMiddleware(constants.RoleGuest, constants.RoleAdmin), controllers.CreateBooking)
	v1.PUT("/bookings/:id", middlewares.AuthMiddleware(constants.RoleAdmin), controllers.UpdateBooking)
	v1.POST("/bookings/:id/cancel", middlewares.AuthMiddleware(constants.RoleGuest, constants.RoleAdmin), controllers.CancelBooking)
	v1.DELETE("/bookings/:id", middlewares.AuthMiddleware(constants.RoleAdmin), controllers.DeleteBooking)

	v1.GET("/rooms", controllers.GetRooms)
	v1.GET("/rooms/:id", controllers.GetRoomDetail)
	v1.POST("/rooms", middlewares.AuthMiddleware(constants.RoleAdmin), controllers.CreateRoom)
	v1.PUT("/rooms/:id", middlewares.AuthMiddleware(constants.RoleAdmin), controllers.UpdateRoom)
	v1.DELETE("/rooms/:id", middlewares.AuthMiddleware(constants.RoleAdmin), controllers.DeleteRoom)

	v1.GET("/hotels", middlewares.AuthMiddleware(constants.RoleAdmin), controllers.GetHotels)
	v1.GET("/hotels/search", controllers.SearchHotels)
	v1.GET("/hotels/:id", controllers.GetHotelDetail)
	v1.POST("/hotels", middlewares.AuthMiddleware(constants.RoleAdmin), controllers.CreateHotel)
	v1.PUT("/hotels/:id", middlewares.AuthMiddleware(constants.RoleAdmin), controllers.UpdateHotel)
	v1.DELETE("/hotels/:id", middlewares.AuthMiddleware(constants.RoleAdmin), controllers.DeleteHotel)

	v1.GET("/clients", middlewares.AuthMiddleware(constants.RoleAdmin), controllers.GetClients)
	v1.GET("/clients/:id", middlewares.AuthMiddleware(constants.RoleAdmin), controllers.GetClientByID)
	v1.PUT("/clients/:id", middlewares.AuthMiddleware(constants.RoleAdmin), controllers.UpdateClient)

	v1.POST("/img/upload", middlewares.AuthMiddleware(constants.RoleAdmin), func(c *gin.Context) {
		file, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No file provided"})
			return
		}

		src, err := file.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to open file"})
			return
		}
		defer src.Close()

		ctx := context.Background()
		resp, err := cld.Upload.Upload(ctx, src, uploader.UploadParams{Folder: "rooms"})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Upload successful",
			"url":     resp.SecureURL,
		})
	})

	router.GET("/ping", func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err != nil || sqlDB.Ping() != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"message": "database unavailable"})
			return
		}
		if err := redisCli.Ping(config.Ctx).Err(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"message": "redis unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

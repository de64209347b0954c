// server/internal/api/routes/routes.go
package routes

import (
	"hadirkoe-api-server/config"
	"hadirkoe-api-server/internal/api/handlers"
	"hadirkoe-api-server/internal/api/middleware"
	"hadirkoe-api-server/internal/s3"
	"hadirkoe-api-server/internal/socket"
	"hadirkoe-api-server/internal/storage"
	"hadirkoe-api-server/internal/syncer"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

// SetupRouter wires the stores, handlers and middleware. uploader and
// forwarder may be nil when blob storage / external sync are not
// configured.
func SetupRouter(
	cfg config.Config,
	db *mongo.Database,
	uploader *s3.Uploader,
	forwarder *syncer.WebhookForwarder,
	hub *socket.Hub,
) *gin.Engine {
	router := gin.Default()
	router.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if len(cfg.CORS.AllowOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.CORS.AllowOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	attendanceStore := &storage.AttendanceStore{DB: db}
	configStore := &storage.ConfigStore{DB: db}

	attendanceHandler := &handlers.AttendanceHandler{Store: attendanceStore, Hub: hub}
	if forwarder != nil {
		attendanceHandler.Forwarder = forwarder
	}
	configHandler := &handlers.ConfigHandler{Store: configStore}
	passKeyHandler := &handlers.PassKeyHandler{Store: configStore, Auth: cfg.Auth}
	uploadHandler := &handlers.UploadHandler{}
	if uploader != nil {
		uploadHandler.Uploader = uploader
	}
	webSocketHandler := &handlers.WebSocketHandler{Hub: hub, Auth: cfg.Auth}

	// === ROUTES OPEN TO EVERYONE ===

	// The gate itself, and the live feed (which carries its token in the
	// query string when hardening is on).
	router.POST("/validate-key", passKeyHandler.ValidateKey)
	router.GET("/ws", webSocketHandler.ServeWs)

	// === FORM ROUTES ===
	// Open by default, matching the UI-only passkey gate of the form.
	// With auth.requireToken enabled they demand the session token
	// returned by validate-key.
	form := router.Group("/")
	if cfg.Auth.RequireToken && cfg.Auth.TokenSecret != "" {
		form.Use(middleware.RequireSession([]byte(cfg.Auth.TokenSecret)))
	}
	{
		form.GET("/config", configHandler.GetConfig)
		form.POST("/attendance", attendanceHandler.Submit)
		form.POST("/upload", uploadHandler.Upload)
	}

	return router
}

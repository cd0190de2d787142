// Package api contains all endpoints available
package api

import (
	"fmt"
	"time"

	"gtnotes/notes-api/aws"
	"gtnotes/notes-api/db"
	"gtnotes/notes-api/internal/service"
	"gtnotes/notes-api/internal/store"
	"gtnotes/notes-api/middleware"
	"gtnotes/notes-api/model"

	cache "github.com/chenyahui/gin-cache"
	"github.com/chenyahui/gin-cache/persist"
	ginzap "github.com/gin-contrib/zap"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	gray  = "\x1b[90m"
	reset = "\x1b[0m"
)

var cacheStore = persist.NewMemoryStore(time.Minute)

type API struct {
	Router  *gin.Engine
	Users   store.UserStore
	Notes   store.NoteStore
	Auth    *service.Authenticator
	Mod     *service.Moderation
	Google  *service.GoogleOAuth
	Storage service.FileStorage
}

func NewRouter() (*API, error) {
	makeLogger()

	conn, err := db.New()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database, %w", err)
	}

	s3, err := aws.NewS3()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize S3 client, %w", err)
	}

	users := store.NewGormUserStore(conn)
	notes := store.NewGormNoteStore(conn)

	a := &API{
		Users: users,
		Notes: notes,
		Auth: service.NewAuthenticator(
			users,
			[]byte(viper.GetString("jwt.secret")),
			viper.GetDuration("jwt.ttl"),
		),
		Mod:     service.NewModeration(notes),
		Storage: service.NewUploader(s3),
	}

	if viper.GetBool("google.enabled") {
		a.Google = service.NewGoogleOAuth()
	}

	a.setupRoutes()

	return a, nil
}

func (a *API) setupRoutes() {
	router := gin.New()
	a.Router = router

	router.Use(
		cors.New(cors.Config{
			AllowOrigins:     []string{"http://localhost:8080"},
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}),
		gin.Recovery(),
		middleware.NewRequestIDMiddleware(),
		ginzap.GinzapWithConfig(zap.L(), &ginzap.Config{
			TimeFormat: "15:04:05.000",
			UTC:        true,
			Skipper: func(c *gin.Context) bool {
				return c.Request.Method == "HEAD"
			},
			Context: func(c *gin.Context) []zapcore.Field {
				fields := []zapcore.Field{}

				if v := c.GetString("requestID"); v != "" {
					fields = append(fields, zap.String("request_id", v))
				}

				if v := c.GetString("userID"); v != "" {
					fields = append(fields, zap.String("userID", v))
				}

				return fields
			},
		}),
	)

	router.HandleMethodNotAllowed = true
	router.RedirectFixedPath = true
	router.MaxMultipartMemory = 5 << 20

	jwt := middleware.NewJWTMiddleware()
	admin := middleware.RequireRole(model.RoleAdmin)
	maxUploadSize := viper.GetInt64("upload.max_size")

	main := router.Group("/api")
	{
		// GET /api/health		-> Used to check if the server is alive
		main.GET("/health", a.Health)

		// HEAD /api/validate		-> Validates a session token
		main.HEAD("/validate", jwt, a.Validate)
	}

	auth := main.Group("/auth", middleware.BodySizeLimiter(1<<20))
	{
		// POST /api/auth/signup	-> Registers a new user
		auth.POST("/signup", a.AuthSignup)

		// POST /api/auth/login 	-> Logs in a user and returns a session token
		auth.POST("/login", a.AuthLogin)

		// GET /api/auth/google/failure	-> Terminal for failed Google flows
		auth.GET("/google/failure", a.GoogleFailure)

		if a.Google != nil {
			// GET /api/auth/google/signup	-> Starts the Google signup flow
			auth.GET("/google/signup", a.GoogleSignup)

			// GET /api/auth/google/login	-> Starts the Google login flow
			auth.GET("/google/login", a.GoogleLogin)

			// GET /api/auth/google/callback -> Completes the flow and redirects to the frontend
			auth.GET("/google/callback", a.GoogleCallback)
		}
	}

	notes := main.Group("/notes")
	{
		// GET /api/notes 		-> Lists approved notes for public browsing
		notes.GET("", cacheFor(30), a.NoteList)

		// GET /api/notes/my-notes	-> Lists the caller's own uploads
		notes.GET("/my-notes", jwt, a.NoteMine)

		// GET /api/notes/pending	-> Lists the admin review queue
		notes.GET("/pending", jwt, admin, a.NotePending)

		// GET /api/notes/:id 		-> Returns a single note
		notes.GET("/:id", a.NoteFetch)

		// GET /api/notes/:id/file	-> Redirects to a presigned file URL
		notes.GET("/:id/file", a.NoteFile)

		// POST /api/notes         	-> Uploads a new note
		notes.POST("", jwt, middleware.BodySizeLimiter(maxUploadSize), a.NoteUpload)

		// POST /api/notes/:id/approve	-> Approves a pending note
		notes.POST("/:id/approve", jwt, admin, a.NoteApprove)

		// POST /api/notes/:id/reject	-> Rejects a pending note
		notes.POST("/:id/reject", jwt, admin, a.NoteReject)
	}
}

func makeLogger() {
	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cfg.EncoderConfig.EncodeTime = func(t time.Time, pae zapcore.PrimitiveArrayEncoder) {
		pae.AppendString(gray + t.Format("15:04:05.000") + reset)
	}
	cfg.EncoderConfig.EncodeCaller = func(ec zapcore.EntryCaller, pae zapcore.PrimitiveArrayEncoder) {
		pae.AppendString(gray + ec.TrimmedPath() + reset)
	}

	cfg.DisableStacktrace = true

	log, _ := cfg.Build()
	zap.ReplaceGlobals(log)
}

func cacheFor(sec int) gin.HandlerFunc {
	return cache.CacheByRequestURI(cacheStore, time.Second*time.Duration(sec))
}

package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/arnavshah/shift-board-api/pkg/auth"
	"github.com/arnavshah/shift-board-api/pkg/board"
	"github.com/arnavshah/shift-board-api/pkg/config"
	"github.com/arnavshah/shift-board-api/pkg/database"
	"github.com/arnavshah/shift-board-api/pkg/handlers"
	"github.com/arnavshah/shift-board-api/pkg/logger"
	"github.com/arnavshah/shift-board-api/pkg/seed"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const Version = "1.0.0"

// NewHandler wires the board, its storage and auth from cfg
func NewHandler(ctx context.Context, cfg *config.Config) (*handlers.Handler, error) {
	data, err := seed.Load(cfg.SeedFile)
	if err != nil {
		return nil, err
	}
	initial := board.Snapshot{}
	if cfg.Seed {
		initial.Slots = data.Slots
		initial.Requests = data.Requests
	}
	opts := []board.Option{board.WithPattern(data.Pattern.Slots())}

	var db *gorm.DB
	if cfg.Storage == config.StorageSQL || cfg.AuthEnabled {
		db, err = database.InitDB(database.Options{
			DatabaseURL: cfg.DatabaseURL,
			DataPath:    cfg.DataPath,
			Debug:       cfg.LogLevel == "debug",
		})
		if err != nil {
			return nil, err
		}
	}

	var persister board.Persister
	if cfg.Storage == config.StorageSQL {
		persister = database.NewRepository(db)
	}

	b, err := board.Open(ctx, persister, initial, opts...)
	if err != nil {
		return nil, err
	}

	h := &handlers.Handler{
		Board:       b,
		DB:          db,
		ServiceName: cfg.ServiceName,
		AuthEnabled: cfg.AuthEnabled,
	}

	if cfg.AuthEnabled {
		h.Issuer = auth.NewIssuer(cfg.JWTSecret)
		created, err := auth.EnsureAdminExists(db, cfg.AdminUsername, cfg.AdminPassword)
		if err != nil {
			return nil, fmt.Errorf("failed to bootstrap admin: %w", err)
		}
		if created {
			logger.Info("default admin user created", "username", cfg.AdminUsername)
		}
	}

	logger.Info("board ready",
		"storage", cfg.Storage,
		"slots", len(b.Slots()),
		"requests", len(b.Requests()),
		"auth", cfg.AuthEnabled,
	)
	return h, nil
}

// NewRouter registers every route on a new gin engine
func NewRouter(h *handlers.Handler, corsOrigin string) *gin.Engine {
	r := gin.New()
	r.Use(logger.GinMiddleware(), gin.Recovery(), handlers.CORSMiddleware(corsOrigin))

	// Dashboard assets served from embedded FS
	r.StaticFS("/static", h.GetStaticFS())

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Shift Board API",
			"version": Version,
		})
	})
	r.GET("/health", h.Health)

	r.GET("/admin", h.AdminInterface)
	r.POST("/admin/login", h.Login)

	api := r.Group("/api")
	api.Use(h.AuthMiddleware())
	{
		api.GET("/slots", h.ListSlots)
		api.POST("/slots", h.AddSlot)
		api.PUT("/slots", h.ReplaceSlots)
		api.DELETE("/slots", h.ClearSlots)
		api.DELETE("/slots/:id", h.RemoveSlot)
		api.POST("/slots/default-pattern", h.GenerateDefaultPattern)
		api.GET("/slots/validate", h.ValidateSlots)

		api.GET("/requests", h.ListRequests)
		api.PUT("/requests/:id/status", h.SetRequestStatus)
		api.POST("/requests/:id/approve", h.ApproveRequest)
		api.POST("/requests/:id/reject", h.RejectRequest)

		api.GET("/coverage", h.Coverage)
		api.GET("/summary", h.Summary)

		api.GET("/schedule", h.GetSchedule)
		api.POST("/schedule/publish", h.Publish)
		api.POST("/schedule/reopen", h.Reopen)
	}

	return r
}

// New builds the full HTTP engine from cfg
func New(ctx context.Context, cfg *config.Config) (*gin.Engine, error) {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	h, err := NewHandler(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return NewRouter(h, cfg.CORSOrigin), nil
}

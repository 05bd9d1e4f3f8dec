package handler

import (
	"context"
	"net/http"

	"github.com/arnavshah/shift-board-api/pkg/config"
	"github.com/arnavshah/shift-board-api/pkg/logger"
	"github.com/arnavshah/shift-board-api/pkg/server"
	"github.com/gin-gonic/gin"
)

var r *gin.Engine

func init() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("invalid configuration", "err", err)
	}

	r, err = server.New(context.Background(), cfg)
	if err != nil {
		logger.Fatal("could not build server", "err", err)
	}
}

// Handler is the entry point for Vercel Go Runtime
func Handler(w http.ResponseWriter, r_req *http.Request) {
	r.ServeHTTP(w, r_req)
}

package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/saxenaaman628/proposal-voting-system/internal/controller"
	"github.com/saxenaaman628/proposal-voting-system/internal/middleware"
)

type Options struct {
	JWTSecret   []byte
	TokenTTL    time.Duration
	CORSOrigins []string
}

// NewRouter builds the engine with logging, recovery and CORS installed.
func NewRouter(registry controller.ProposalRegistry, opts Options) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestLogger(), gin.Recovery())
	if len(opts.CORSOrigins) > 0 {
		r.Use(middleware.CORS(opts.CORSOrigins))
	}
	RegisterRoutes(r, registry, opts)
	return r
}

func RegisterRoutes(r *gin.Engine, registry controller.ProposalRegistry, opts Options) {
	authH := AuthHandler{JWTSecret: opts.JWTSecret, TokenTTL: opts.TokenTTL}
	proposals := controller.NewProposalController(registry)

	r.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.POST("/login", authH.LoginHandler)

	auth := r.Group("/api")
	auth.Use(middleware.JWTAuthMiddleware(opts.JWTSecret))
	{
		auth.GET("/proposals", proposals.ListProposalsHandler)
		auth.GET("/proposals/:id", proposals.GetProposalHandler)
		auth.POST("/proposals", proposals.CreateProposalHandler)
		auth.PUT("/proposals/:id", proposals.UpdateProposalHandler)
		auth.DELETE("/proposals/:id", proposals.DeleteProposalHandler)
		auth.POST("/proposals/:id/vote/yes", proposals.VoteYesHandler)
		auth.POST("/proposals/:id/vote/no", proposals.VoteNoHandler)
	}
}

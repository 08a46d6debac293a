package controller

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/saxenaaman628/proposal-voting-system/internal/middleware"
	"github.com/saxenaaman628/proposal-voting-system/internal/models"
	"github.com/saxenaaman628/proposal-voting-system/internal/registry"
)

// ProposalRegistry is the set of registry operations the HTTP layer serves.
type ProposalRegistry interface {
	GetProposals(ctx context.Context) ([]models.Proposal, error)
	ProposalsByOwner(ctx context.Context, owner string) ([]models.Proposal, error)
	GetProposal(ctx context.Context, id string) (models.Proposal, error)
	CreateProposal(ctx context.Context, caller, title, description string) (models.Proposal, error)
	VoteYes(ctx context.Context, caller, id string) (models.Proposal, error)
	VoteNo(ctx context.Context, caller, id string) (models.Proposal, error)
	UpdateProposal(ctx context.Context, caller, id, title, description string) (models.Proposal, error)
	DeleteProposal(ctx context.Context, caller, id string) (models.Proposal, error)
}

type ProposalController struct {
	registry ProposalRegistry
}

func NewProposalController(r ProposalRegistry) *ProposalController {
	return &ProposalController{registry: r}
}

// ProposalInput is the body of create and update requests.
type ProposalInput struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
}

func (pc *ProposalController) ListProposalsHandler(c *gin.Context) {
	var (
		proposals []models.Proposal
		err       error
	)
	if owner := c.Query("owner"); owner != "" {
		proposals, err = pc.registry.ProposalsByOwner(c.Request.Context(), owner)
	} else {
		proposals, err = pc.registry.GetProposals(c.Request.Context())
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"proposals": proposals})
}

func (pc *ProposalController) GetProposalHandler(c *gin.Context) {
	p, err := pc.registry.GetProposal(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": p})
}

func (pc *ProposalController) CreateProposalHandler(c *gin.Context) {
	var input ProposalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p, err := pc.registry.CreateProposal(c.Request.Context(), c.GetString(middleware.UserIDKey), input.Title, input.Description)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": p})
}

func (pc *ProposalController) UpdateProposalHandler(c *gin.Context) {
	var input ProposalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p, err := pc.registry.UpdateProposal(c.Request.Context(), c.GetString(middleware.UserIDKey), c.Param("id"), input.Title, input.Description)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": p})
}

func (pc *ProposalController) DeleteProposalHandler(c *gin.Context) {
	p, err := pc.registry.DeleteProposal(c.Request.Context(), c.GetString(middleware.UserIDKey), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": p})
}

// respondError maps registry errors onto HTTP statuses. Anything unknown
// is a storage failure and is not echoed to the client.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, registry.ErrInvalidInput):
		status = http.StatusBadRequest
	case errors.Is(err, registry.ErrUnauthenticated):
		status = http.StatusUnauthorized
	case errors.Is(err, registry.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, registry.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, registry.ErrAlreadyVoted):
		status = http.StatusConflict
	}

	if status == http.StatusInternalServerError {
		slog.Error("proposal request failed", "path", c.FullPath(), "error", err)
		c.Error(err)
		c.JSON(status, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/saxenaaman628/proposal-voting-system/internal/middleware"
)

func (pc *ProposalController) VoteYesHandler(c *gin.Context) {
	p, err := pc.registry.VoteYes(c.Request.Context(), c.GetString(middleware.UserIDKey), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": p})
}

func (pc *ProposalController) VoteNoHandler(c *gin.Context) {
	p, err := pc.registry.VoteNo(c.Request.Context(), c.GetString(middleware.UserIDKey), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": p})
}

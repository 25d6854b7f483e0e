package server

import (
	"net/http"
	"strings"

	proposaldomain "github.com/brushworkslabs/brushworks/internal/proposal/domain"
	"github.com/gin-gonic/gin"
)

func (s *Server) CreateProposalFromLead(c *gin.Context) {
	leadID := strings.TrimSpace(c.Param("id"))

	resp, err := s.proposalSvc.CreateFromLead(c.Request.Context(), leadID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListProposals(c *gin.Context) {
	resp, err := s.proposalSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetProposalByID(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	resp, err := s.proposalSvc.Get(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) UpdateProposalPricing(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))

	var req proposaldomain.PricingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.proposalSvc.UpdatePricing(c.Request.Context(), id, req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) TransitionProposal(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))

	var req transitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.proposalSvc.Transition(c.Request.Context(), id, proposaldomain.Status(strings.TrimSpace(req.Status)))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

package server

import (
	"context"
	"net/http"
	"strings"

	leaddomain "github.com/brushworkslabs/brushworks/internal/lead/domain"
	"github.com/brushworkslabs/brushworks/internal/routing"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type transitionRequest struct {
	Status string `json:"status"`
}

func (s *Server) CreateLead(c *gin.Context) {
	var req leaddomain.UpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.leadSvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListLeads(c *gin.Context) {
	resp, err := s.leadSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetLeadByID(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	resp, err := s.leadSvc.Get(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) UpdateLead(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))

	var req leaddomain.UpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.leadSvc.Update(c.Request.Context(), id, req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) TransitionLead(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))

	var req transitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.leadSvc.Transition(c.Request.Context(), id, leaddomain.Status(strings.TrimSpace(req.Status)))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

// EstimateLeadTransport kicks off a background drive-time lookup for the
// lead's site address. The current transport hours are returned immediately;
// the estimate lands on the record when (and if) the lookup succeeds.
func (s *Server) EstimateLeadTransport(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))

	lead, err := s.leadSvc.Get(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	destination := strings.TrimSpace(lead.Address)
	if destination == "" {
		destination = strings.TrimSpace(lead.Zip)
	}
	if destination == "" {
		AbortWithError(c, newValidationError("address", "missing_address", "lead has no address or zip"))
		return
	}

	leadID := lead.ID.String()
	routing.EstimateAsync(s.log, s.estimator, destination, func(hours float64) {
		if err := s.leadSvc.SetTransportEstimate(context.Background(), leadID, hours); err != nil {
			s.log.Warn("failed to store transport estimate",
				zap.String("lead_id", leadID),
				zap.Error(err),
			)
		}
	})

	c.JSON(http.StatusAccepted, gin.H{"data": gin.H{
		"transport_hours": lead.TransportHours,
		"pending":         true,
	}})
}

package server

import (
	"net/http"
	"strings"

	workorderdomain "github.com/brushworkslabs/brushworks/internal/workorder/domain"
	"github.com/gin-gonic/gin"
)

func (s *Server) CreateWorkOrderFromProposal(c *gin.Context) {
	proposalID := strings.TrimSpace(c.Param("id"))

	resp, err := s.workOrderSvc.CreateFromProposal(c.Request.Context(), proposalID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListWorkOrders(c *gin.Context) {
	resp, err := s.workOrderSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetWorkOrderByID(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	resp, err := s.workOrderSvc.Get(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) UpdateWorkOrderWork(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))

	var req workorderdomain.WorkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.workOrderSvc.UpdateWork(c.Request.Context(), id, req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) TransitionWorkOrder(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))

	var req transitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.workOrderSvc.Transition(c.Request.Context(), id, workorderdomain.Status(strings.TrimSpace(req.Status)))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

package server

import (
	"net/http"
	"strings"

	loadoutdomain "github.com/brushworkslabs/brushworks/internal/loadout/domain"
	"github.com/gin-gonic/gin"
)

func (s *Server) CreateLoadout(c *gin.Context) {
	var req loadoutdomain.UpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.loadoutSvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListLoadouts(c *gin.Context) {
	resp, err := s.loadoutSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetLoadoutByID(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	resp, err := s.loadoutSvc.Get(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) UpdateLoadout(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))

	var req loadoutdomain.UpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.loadoutSvc.Update(c.Request.Context(), id, req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) DeleteLoadout(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if err := s.loadoutSvc.Delete(c.Request.Context(), id); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"deleted": true}})
}

func (s *Server) GetLoadoutCalculation(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	resp, err := s.loadoutSvc.Calculation(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

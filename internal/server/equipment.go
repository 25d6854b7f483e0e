package server

import (
	"net/http"
	"strings"

	equipmentdomain "github.com/brushworkslabs/brushworks/internal/equipment/domain"
	"github.com/gin-gonic/gin"
)

func (s *Server) CreateEquipment(c *gin.Context) {
	var req equipmentdomain.UpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.equipmentSvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListEquipment(c *gin.Context) {
	resp, err := s.equipmentSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetEquipmentByID(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	resp, err := s.equipmentSvc.Get(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) UpdateEquipment(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))

	var req equipmentdomain.UpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.equipmentSvc.Update(c.Request.Context(), id, req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) DeleteEquipment(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if err := s.equipmentSvc.Delete(c.Request.Context(), id); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"deleted": true}})
}

func (s *Server) GetEquipmentInsights(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	resp, err := s.equipmentSvc.Insights(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

package server

import (
	"net/http"

	"github.com/brushworkslabs/brushworks/internal/reference"
	"github.com/gin-gonic/gin"
)

func (s *Server) ListTierOptions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": reference.TierOptions()})
}

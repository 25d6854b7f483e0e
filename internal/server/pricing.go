package server

import (
	"net/http"
	"strings"

	quotedomain "github.com/brushworkslabs/brushworks/internal/quote/domain"
	ratebookdomain "github.com/brushworkslabs/brushworks/internal/ratebook/domain"
	"github.com/gin-gonic/gin"
)

type setBaseRateRequest struct {
	Rate float64 `json:"rate"`
}

type overrideRateRequest struct {
	Rate float64 `json:"rate"`
}

type calculateQuoteRequest struct {
	Acres            float64 `json:"acres"`
	Tier             string  `json:"tier"`
	TransportHours   float64 `json:"transport_hours"`
	ManualDebrisYard float64 `json:"manual_debris_yards"`
}

func (s *Server) GetRateBook(c *gin.Context) {
	book, err := s.rateBookSvc.Get(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": book})
}

func (s *Server) SetBaseRate(c *gin.Context) {
	var req setBaseRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	if req.Rate <= 0 {
		AbortWithError(c, newValidationError("rate", "invalid_rate", "rate must be positive"))
		return
	}

	book, err := s.rateBookSvc.SetBaseRate(c.Request.Context(), req.Rate)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": book})
}

func (s *Server) OverrideTierRate(c *gin.Context) {
	tier := ratebookdomain.PackageTier(strings.TrimSpace(c.Param("tier")))

	var req overrideRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	if req.Rate <= 0 {
		AbortWithError(c, newValidationError("rate", "invalid_rate", "rate must be positive"))
		return
	}

	book, err := s.rateBookSvc.Override(c.Request.Context(), tier, req.Rate)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": book})
}

func (s *Server) ResetTierRate(c *gin.Context) {
	tier := ratebookdomain.PackageTier(strings.TrimSpace(c.Param("tier")))

	book, err := s.rateBookSvc.ResetToAuto(c.Request.Context(), tier)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": book})
}

func (s *Server) CalculateQuote(c *gin.Context) {
	var req calculateQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	if req.Acres < 0 || req.TransportHours < 0 || req.ManualDebrisYard < 0 {
		AbortWithError(c, newValidationError("request", "invalid_input", "inputs must not be negative"))
		return
	}

	breakdown, err := s.quoteSvc.Calculate(c.Request.Context(), quotedomain.Input{
		Acres:            req.Acres,
		Tier:             ratebookdomain.PackageTier(strings.TrimSpace(req.Tier)),
		TransportHours:   req.TransportHours,
		ManualDebrisYard: req.ManualDebrisYard,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": breakdown})
}

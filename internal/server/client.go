package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	clientdomain "github.com/kossaiRedou/EasInvoice/internal/client/domain"
	profiledomain "github.com/kossaiRedou/EasInvoice/internal/profile/domain"
)

type CreateClientRequest struct {
	Name    string `json:"name" form:"name"`
	Address string `json:"address" form:"address"`
	City    string `json:"city" form:"city"`
	Email   string `json:"email" form:"email"`
	Phone   string `json:"phone" form:"phone"`
	Notes   string `json:"notes" form:"notes"`
}

// CreateClient stores a recurring client for later invoice prefill.
func (s *Server) CreateClient(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	var req CreateClientRequest
	if err := c.ShouldBind(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	created, err := s.clientSvc.Create(c.Request.Context(), userID, clientdomain.CreateRequest{
		Name:    req.Name,
		Address: req.Address,
		City:    req.City,
		Email:   req.Email,
		Phone:   req.Phone,
		Notes:   req.Notes,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (s *Server) ListClients(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	clients, err := s.clientSvc.List(c.Request.Context(), userID)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"clients": clients})
}

func (s *Server) GetClient(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	client, err := s.clientSvc.GetByID(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, client)
}

func (s *Server) DeleteClient(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	if err := s.clientSvc.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		AbortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type UpdateProfileRequest struct {
	CompanyName string `json:"company_name" form:"company_name"`
	Address     string `json:"address" form:"address"`
	City        string `json:"city" form:"city"`
	Email       string `json:"email" form:"email"`
	SIRET       string `json:"siret" form:"siret"`
	RCS         string `json:"rcs" form:"rcs"`
	IsEI        bool   `json:"is_ei" form:"is_ei"`
	Phone       string `json:"phone" form:"phone"`
}

// GetProfile returns the saved issuer profile, or an empty object when
// the user never saved one.
func (s *Server) GetProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	profile, err := s.profileSvc.Get(c.Request.Context(), userID)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	if profile == nil {
		c.JSON(http.StatusOK, gin.H{})
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (s *Server) UpdateProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBind(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	profile, err := s.profileSvc.Upsert(c.Request.Context(), userID, profiledomain.UpdateRequest{
		CompanyName: req.CompanyName,
		Address:     req.Address,
		City:        req.City,
		Email:       req.Email,
		SIRET:       req.SIRET,
		RCS:         req.RCS,
		IsEI:        req.IsEI,
		Phone:       req.Phone,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

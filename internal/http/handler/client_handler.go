package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/MiguelSerea/TCC-Espaco-BK-Backend/internal/domain"
	"github.com/MiguelSerea/TCC-Espaco-BK-Backend/internal/service"
)

// ClientHandler exposes client contact CRUD. Reads are public; mutations sit
// behind the session middleware in the router.
type ClientHandler struct {
	Clients *service.ClientService
}

// NewClientHandler creates the handler set.
func NewClientHandler(clients *service.ClientService) *ClientHandler {
	return &ClientHandler{Clients: clients}
}

type clientRequest struct {
	CompanyName string     `json:"company_name"`
	Name        string     `json:"name"`
	Phone       string     `json:"phone"`
	Mobile      string     `json:"mobile"`
	Email       string     `json:"email"`
	City        string     `json:"city"`
	Company     string     `json:"company"`
	TaxID       string     `json:"tax_id"`
	IDCard      string     `json:"id_card"`
	BirthDate   *time.Time `json:"birth_date"`
	Address     string     `json:"address"`
	Notes       string     `json:"notes"`
	Salesperson string     `json:"salesperson"`
}

// List returns clients, filtered by ?q= when present and capped by ?limit=.
func (h *ClientHandler) List(c *gin.Context) {
	var limit int64
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed < 0 {
			respondError(c, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = parsed
	}

	clients, err := h.Clients.List(c.Request.Context(), c.Query("q"), limit)
	if err != nil {
		respondServiceError(c, err, "client")
		return
	}
	if clients == nil {
		clients = []domain.Client{}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"clients": clients,
		"total":   len(clients),
	})
}

// Get returns one client.
func (h *ClientHandler) Get(c *gin.Context) {
	client, err := h.Clients.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "client")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "client": client})
}

// Create inserts a new client.
func (h *ClientHandler) Create(c *gin.Context) {
	var req clientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.Clients.Create(c.Request.Context(), domain.Client{
		CompanyName: req.CompanyName,
		Name:        req.Name,
		Phone:       req.Phone,
		Mobile:      req.Mobile,
		Email:       req.Email,
		City:        req.City,
		Company:     req.Company,
		TaxID:       req.TaxID,
		IDCard:      req.IDCard,
		BirthDate:   req.BirthDate,
		Address:     req.Address,
		Notes:       req.Notes,
		Salesperson: req.Salesperson,
	})
	if err != nil {
		respondServiceError(c, err, "client")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "client created",
		"client":  created,
	})
}

// Update applies a partial update; only supplied fields change.
func (h *ClientHandler) Update(c *gin.Context) {
	var req struct {
		CompanyName *string    `json:"company_name"`
		Name        *string    `json:"name"`
		Phone       *string    `json:"phone"`
		Mobile      *string    `json:"mobile"`
		Email       *string    `json:"email"`
		City        *string    `json:"city"`
		Company     *string    `json:"company"`
		TaxID       *string    `json:"tax_id"`
		IDCard      *string    `json:"id_card"`
		BirthDate   *time.Time `json:"birth_date"`
		Address     *string    `json:"address"`
		Notes       *string    `json:"notes"`
		Salesperson *string    `json:"salesperson"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.Clients.Update(c.Request.Context(), c.Param("id"), domain.ClientPatch{
		CompanyName: req.CompanyName,
		Name:        req.Name,
		Phone:       req.Phone,
		Mobile:      req.Mobile,
		Email:       req.Email,
		City:        req.City,
		Company:     req.Company,
		TaxID:       req.TaxID,
		IDCard:      req.IDCard,
		BirthDate:   req.BirthDate,
		Address:     req.Address,
		Notes:       req.Notes,
		Salesperson: req.Salesperson,
	})
	if err != nil {
		respondServiceError(c, err, "client")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "client updated",
		"client":  updated,
	})
}

// Delete removes a client.
func (h *ClientHandler) Delete(c *gin.Context) {
	if err := h.Clients.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err, "client")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "client deleted"})
}

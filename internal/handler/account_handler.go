package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/Dylan1021/WeScholarly/internal/model"
	"github.com/Dylan1021/WeScholarly/internal/repository"
	"github.com/gin-gonic/gin"
)

type AccountStore interface {
	List() ([]model.Account, error)
	Add(name, fakeid string) (*model.Account, error)
	Remove(id int64) error
	FindByFakeID(fakeid string) (*model.Account, error)
}

type AccountHandler struct {
	repository AccountStore
}

func NewAccountHandler(repository AccountStore) *AccountHandler {
	return &AccountHandler{repository: repository}
}

func (h *AccountHandler) GetAccounts(c *gin.Context) {
	accounts, err := h.repository.List()
	if err != nil {
		slog.Error("error fetching accounts", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch accounts"})
		return
	}

	res := make([]AccountResponse, 0, len(accounts))
	for _, a := range accounts {
		res = append(res, AccountResponse{
			ID:      a.ID,
			Name:    a.Name,
			FakeID:  a.FakeID,
			AddedAt: a.AddedAt.Format(time.RFC3339),
		})
	}

	c.JSON(http.StatusOK, res)
}

func (h *AccountHandler) AddAccount(c *gin.Context) {
	var req AddAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" || req.FakeID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name and fakeid are required"})
		return
	}

	existing, err := h.repository.FindByFakeID(req.FakeID)
	if err != nil {
		slog.Error("error checking for existing account", "fakeid", req.FakeID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add account"})
		return
	}

	if existing != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Account already exists"})
		return
	}

	if _, err := h.repository.Add(req.Name, req.FakeID); err != nil {
		// the pre-check races with the insert; the UNIQUE constraint settles it
		if errors.Is(err, repository.ErrDuplicateAccount) {
			c.JSON(http.StatusConflict, gin.H{"error": "Account already exists"})
			return
		}
		slog.Error("error adding account", "fakeid", req.FakeID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add account"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *AccountHandler) RemoveAccount(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid account id"})
		return
	}

	if err := h.repository.Remove(id); err != nil {
		slog.Error("error deleting account", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete account"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *AccountHandler) GetHealth(c *gin.Context) {
	if _, err := h.repository.List(); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": "disconnected",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"database": "connected",
	})
}

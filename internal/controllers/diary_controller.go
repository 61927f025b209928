package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"traveldiary-be/internal/entities"
	"traveldiary-be/internal/middleware"
	"traveldiary-be/internal/models"
	"traveldiary-be/internal/service"

	"github.com/gin-gonic/gin"
)

type DiaryController struct {
	diaryService service.DiaryService
}

func NewDiaryController(diaryService service.DiaryService) *DiaryController {
	return &DiaryController{
		diaryService: diaryService,
	}
}

// ownerID returns the authenticated user's ID set by the auth middleware.
// A missing value means the route was wired without the middleware.
func ownerID(c *gin.Context) (int, bool) {
	v, exists := c.Get(middleware.ContextUserIDKey)
	if !exists {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "User ID not found in token",
		})
		return 0, false
	}
	return v.(int), true
}

// CreateEntry handles POST /diary-entries
func (dc *DiaryController) CreateEntry(c *gin.Context) {
	userID, ok := ownerID(c)
	if !ok {
		return
	}

	var req models.EntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request body",
		})
		return
	}

	entry, err := dc.diaryService.Create(c.Request.Context(), userID, &req)
	if err != nil {
		log.Printf("Create diary entry error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to create diary entry",
		})
		return
	}

	c.JSON(http.StatusCreated, models.CreateEntryResponse{
		Message: "Diary entry created successfully",
		ID:      entry.ID,
	})
}

// GetEntries handles GET /diary-entries
func (dc *DiaryController) GetEntries(c *gin.Context) {
	userID, ok := ownerID(c)
	if !ok {
		return
	}

	entries, err := dc.diaryService.GetAll(c.Request.Context(), userID)
	if err != nil {
		log.Printf("Get all diary entries error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to get diary entries",
		})
		return
	}

	// An owner with no entries gets an empty list, not null
	if entries == nil {
		entries = []*entities.DiaryEntry{}
	}

	c.JSON(http.StatusOK, entries)
}

// GetEntryByID handles GET /diary-entries/:id
func (dc *DiaryController) GetEntryByID(c *gin.Context) {
	userID, ok := ownerID(c)
	if !ok {
		return
	}

	entryID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Diary entry not found",
		})
		return
	}

	entry, err := dc.diaryService.GetByID(c.Request.Context(), userID, entryID)
	if err != nil {
		if errors.Is(err, service.ErrEntryNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Diary entry not found",
			})
			return
		}
		log.Printf("Get diary entry by ID error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to get diary entry",
		})
		return
	}

	c.JSON(http.StatusOK, entry)
}

// UpdateEntry handles PUT /diary-entries/:id
func (dc *DiaryController) UpdateEntry(c *gin.Context) {
	userID, ok := ownerID(c)
	if !ok {
		return
	}

	entryID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Diary entry not found",
		})
		return
	}

	var req models.EntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request body",
		})
		return
	}

	if err := dc.diaryService.Update(c.Request.Context(), userID, entryID, &req); err != nil {
		if errors.Is(err, service.ErrEntryNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Diary entry not found",
			})
			return
		}
		log.Printf("Update diary entry error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to update diary entry",
		})
		return
	}

	c.JSON(http.StatusOK, models.MessageResponse{
		Message: "Diary entry updated successfully",
	})
}

// DeleteEntry handles DELETE /diary-entries/:id
func (dc *DiaryController) DeleteEntry(c *gin.Context) {
	userID, ok := ownerID(c)
	if !ok {
		return
	}

	entryID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Diary entry not found",
		})
		return
	}

	if err := dc.diaryService.Delete(c.Request.Context(), userID, entryID); err != nil {
		if errors.Is(err, service.ErrEntryNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Diary entry not found",
			})
			return
		}
		log.Printf("Delete diary entry error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to delete diary entry",
		})
		return
	}

	c.JSON(http.StatusOK, models.MessageResponse{
		Message: "Diary entry deleted successfully",
	})
}

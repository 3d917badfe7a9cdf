package handlers

import (
	"errors"
	"net/http"

	"studyhub/models"
	catalogService "studyhub/services/catalog"
	"studyhub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CatalogHandler serves subjects, notes and past-year question papers.
type CatalogHandler struct {
	CatalogService catalogService.CatalogService
}

// ListSubjectsHandler handles GET /api/subjects.
func (h *CatalogHandler) ListSubjectsHandler(c *gin.Context) {
	subjects, err := h.CatalogService.ListSubjects()
	if err != nil {
		utils.GetLogger().Error("Failed to list subjects", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list subjects"})
		return
	}
	c.JSON(http.StatusOK, subjects)
}

// CreateSubjectHandler handles POST /api/admin/subjects.
func (h *CatalogHandler) CreateSubjectHandler(c *gin.Context) {
	var req struct {
		Name     string `json:"name" binding:"required"`
		Code     string `json:"code"`
		Semester string `json:"semester"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	subject, err := h.CatalogService.CreateSubject(req.Name, req.Code, req.Semester)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, subject)
}

// DeleteSubjectHandler handles DELETE /api/admin/subjects/:id.
func (h *CatalogHandler) DeleteSubjectHandler(c *gin.Context) {
	if err := h.CatalogService.DeleteSubject(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete subject"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Subject deleted"})
}

// ListNotesHandler handles GET /api/notes. An optional subjectId query
// parameter filters the listing.
func (h *CatalogHandler) ListNotesHandler(c *gin.Context) {
	notes, err := h.CatalogService.ListNotes(c.Query("subjectId"))
	if err != nil {
		utils.GetLogger().Error("Failed to list notes", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list notes"})
		return
	}
	c.JSON(http.StatusOK, notes)
}

// CreateNoteHandler handles POST /api/admin/notes.
func (h *CatalogHandler) CreateNoteHandler(c *gin.Context) {
	var note models.Note
	if err := c.ShouldBindJSON(&note); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	note.CreatedBy = c.GetString("userID")

	created, err := h.CatalogService.CreateNote(&note)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateNoteHandler handles PUT /api/admin/notes/:id.
func (h *CatalogHandler) UpdateNoteHandler(c *gin.Context) {
	var note models.Note
	if err := c.ShouldBindJSON(&note); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	note.ID = c.Param("id")

	if err := h.CatalogService.UpdateNote(&note); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, note)
}

// DeleteNoteHandler handles DELETE /api/admin/notes/:id.
func (h *CatalogHandler) DeleteNoteHandler(c *gin.Context) {
	if err := h.CatalogService.DeleteNote(c.Param("id")); err != nil {
		if errors.Is(err, catalogService.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Note not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete note"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Note deleted"})
}

// ListPYQsHandler handles GET /api/pyqs.
func (h *CatalogHandler) ListPYQsHandler(c *gin.Context) {
	pyqs, err := h.CatalogService.ListPYQs(c.Query("subjectId"))
	if err != nil {
		utils.GetLogger().Error("Failed to list question papers", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list question papers"})
		return
	}
	c.JSON(http.StatusOK, pyqs)
}

// CreatePYQHandler handles POST /api/admin/pyqs.
func (h *CatalogHandler) CreatePYQHandler(c *gin.Context) {
	var pyq models.PYQ
	if err := c.ShouldBindJSON(&pyq); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	pyq.CreatedBy = c.GetString("userID")

	created, err := h.CatalogService.CreatePYQ(&pyq)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdatePYQHandler handles PUT /api/admin/pyqs/:id.
func (h *CatalogHandler) UpdatePYQHandler(c *gin.Context) {
	var pyq models.PYQ
	if err := c.ShouldBindJSON(&pyq); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	pyq.ID = c.Param("id")

	if err := h.CatalogService.UpdatePYQ(&pyq); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, pyq)
}

// DeletePYQHandler handles DELETE /api/admin/pyqs/:id.
func (h *CatalogHandler) DeletePYQHandler(c *gin.Context) {
	if err := h.CatalogService.DeletePYQ(c.Param("id")); err != nil {
		if errors.Is(err, catalogService.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Question paper not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete question paper"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Question paper deleted"})
}

// SearchHandler handles GET /api/search?q=. Results span notes, question
// papers and the caller's own assignments.
func (h *CatalogHandler) SearchHandler(c *gin.Context) {
	userID := c.GetString("userID")

	results, err := h.CatalogService.Search(userID, c.Query("q"))
	if err != nil {
		utils.GetLogger().Error("Search failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Search failed"})
		return
	}
	c.JSON(http.StatusOK, results)
}

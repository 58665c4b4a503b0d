package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"standcast-backend/internal/features/gallery/models"
	"standcast-backend/internal/features/gallery/service"
)

type GalleryHandler struct {
	service service.GalleryService
}

func NewGalleryHandler(service service.GalleryService) *GalleryHandler {
	return &GalleryHandler{
		service: service,
	}
}

func (h *GalleryHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/stands", h.SaveStand)
	router.GET("/stands/:fid", h.GetStand)
	router.GET("/gallery", h.ListStands)
}

// @Summary Save a stand
// @Description Saves the caller's generated stand for the gallery. Each user keeps a single stand; saving again replaces it.
// @Tags gallery
// @Accept json
// @Produce json
// @Param request body models.SaveStandRequest true "Stand data and owner"
// @Success 200 {object} models.Stand "Saved stand"
// @Failure 400 {object} map[string]string "Missing standData or farcasterUser"
// @Failure 500 {object} map[string]string "Storage failure"
// @Router /stands [post]
func (h *GalleryHandler) SaveStand(c *gin.Context) {
	var req models.SaveStandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Missing standData or farcasterUser"})
		return
	}

	stand, err := h.service.SaveStand(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidStand) {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to save stand"})
		return
	}

	c.JSON(http.StatusOK, stand)
}

// @Summary Get a stand by fid
// @Tags gallery
// @Produce json
// @Param fid path int true "Farcaster user id"
// @Success 200 {object} models.Stand "Stand"
// @Failure 400 {object} map[string]string "Malformed fid"
// @Failure 404 {object} map[string]string "No stand saved for this fid"
// @Router /stands/{fid} [get]
func (h *GalleryHandler) GetStand(c *gin.Context) {
	fid, err := strconv.ParseInt(c.Param("fid"), 10, 64)
	if err != nil || fid <= 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid fid parameter"})
		return
	}

	stand, err := h.service.GetStand(c.Request.Context(), fid)
	if err != nil {
		if errors.Is(err, service.ErrStandNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Stand not found"})
			return
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch stand"})
		return
	}

	c.JSON(http.StatusOK, stand)
}

// @Summary List the gallery
// @Description Returns saved stands newest-first.
// @Tags gallery
// @Produce json
// @Param limit query int false "Page size (default 50, max 100)"
// @Param offset query int false "Page offset"
// @Success 200 {object} models.GalleryPage "One page of stands"
// @Failure 500 {object} map[string]string "Storage failure"
// @Router /gallery [get]
func (h *GalleryHandler) ListStands(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	page, err := h.service.ListStands(c.Request.Context(), limit, offset)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch gallery"})
		return
	}

	c.JSON(http.StatusOK, page)
}

package http

import (
	"net/http"

	"stylefeed/internal/usecase"
	"stylefeed/pkg/logger"

	"github.com/gin-gonic/gin"
)

// AdminHandler serves the Basic-Auth gated back office. Routes behind it trust
// the gate middleware completely and never consult session state.
type AdminHandler struct {
	contentUseCase usecase.ContentUseCase
	logger         *logger.Logger
}

func NewAdminHandler(contentUseCase usecase.ContentUseCase, logger *logger.Logger) *AdminHandler {
	return &AdminHandler{
		contentUseCase: contentUseCase,
		logger:         logger,
	}
}

// ListCreators godoc
// @Summary      List creator profiles
// @Tags         admin
// @Produce      json
// @Security     BasicAuth
// @Param        limit query int false "Page size" default(20)
// @Param        offset query int false "Page offset" default(0)
// @Success      200  {array}   models.Creator
// @Router       /admin/creators [get]
func (h *AdminHandler) ListCreators(c *gin.Context) {
	limit, offset := paginationParams(c)
	creators, err := h.contentUseCase.ListCreators(limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"creators": creators, "limit": limit, "offset": offset})
}

// CreateCreator godoc
// @Summary      Create a creator profile without onboarding a user
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BasicAuth
// @Param        request body usecase.CreateCreatorInput true "Creator profile"
// @Success      201  {object}  models.Creator
// @Failure      409  {object}  map[string]string
// @Router       /admin/creators [post]
func (h *AdminHandler) CreateCreator(c *gin.Context) {
	var input usecase.CreateCreatorInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	creator, err := h.contentUseCase.AdminCreateCreator(input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, creator)
}

// CreatePost godoc
// @Summary      Create a post on behalf of a creator
// @Description  The admin path skips membership checks and requires a cover image.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BasicAuth
// @Param        request body usecase.CreatePostInput true "Post payload"
// @Success      201  {object}  models.Post
// @Failure      400  {object}  map[string]string
// @Router       /admin/posts [post]
func (h *AdminHandler) CreatePost(c *gin.Context) {
	var input usecase.CreatePostInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := h.contentUseCase.CreatePost("", input, true, true)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, post)
}

package http

import (
	"net/http"

	"stylefeed/internal/usecase"
	"stylefeed/pkg/logger"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	contentUseCase usecase.ContentUseCase
	logger         *logger.Logger
}

func NewPostHandler(contentUseCase usecase.ContentUseCase, logger *logger.Logger) *PostHandler {
	return &PostHandler{
		contentUseCase: contentUseCase,
		logger:         logger,
	}
}

// Create godoc
// @Summary      Create a post for a creator
// @Description  Products may arrive as a structured array or as raw JSON text in products_json; sloppy quoting and trailing commas are repaired.
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body usecase.CreatePostInput true "Post payload"
// @Success      201  {object}  models.Post
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /posts [post]
func (h *PostHandler) Create(c *gin.Context) {
	var input usecase.CreatePostInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := h.contentUseCase.CreatePost(c.GetString("user_id"), input, false, false)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, post)
}

// Get godoc
// @Summary      Get a post with its reconciled product list
// @Tags         posts
// @Produce      json
// @Param        id path string true "Post id"
// @Success      200  {object}  usecase.PostView
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id} [get]
func (h *PostHandler) Get(c *gin.Context) {
	view, err := h.contentUseCase.GetPostView(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// ListByCreator godoc
// @Summary      List a creator's posts
// @Tags         posts
// @Produce      json
// @Param        slug path string true "Creator slug"
// @Param        limit query int false "Page size" default(20)
// @Param        offset query int false "Page offset" default(0)
// @Success      200  {array}   models.Post
// @Failure      404  {object}  map[string]string
// @Router       /creators/{slug}/posts [get]
func (h *PostHandler) ListByCreator(c *gin.Context) {
	limit, offset := paginationParams(c)
	posts, err := h.contentUseCase.ListCreatorPosts(c.Param("slug"), limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"posts": posts, "limit": limit, "offset": offset})
}

// Update godoc
// @Summary      Update a post
// @Description  Partial update. Supplying products (structured or raw JSON) rewrites both the inline list and the relational links.
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Post id"
// @Param        request body usecase.UpdatePostInput true "Fields to update"
// @Success      200  {object}  models.Post
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id} [put]
func (h *PostHandler) Update(c *gin.Context) {
	var input usecase.UpdatePostInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := h.contentUseCase.UpdatePost(c.GetString("user_id"), c.Param("id"), input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

// Delete godoc
// @Summary      Delete a post
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Post id"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id} [delete]
func (h *PostHandler) Delete(c *gin.Context) {
	if err := h.contentUseCase.DeletePost(c.GetString("user_id"), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Post deleted"})
}

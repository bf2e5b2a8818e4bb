package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"autopaint_quotation/internal/domain/entities"
	"autopaint_quotation/internal/domain/pricing"
	"autopaint_quotation/internal/domain/quote"
	"autopaint_quotation/internal/usecase/interfaces"

	"golang.org/x/sync/errgroup"
)

var (
	ErrReferenceDataUnavailable = errors.New("reference data unavailable")
	ErrInvalidSegmentID         = errors.New("invalid car segment id")
	ErrSegmentNotFound          = errors.New("car segment not found")
	ErrInvalidItemType          = errors.New("invalid item type")
)

// IReferenceDataUseCase serves the reference tables and the price resolver
// built on top of them.
//
// The five tables are loaded together; a failure in any of them fails the
// whole load and nothing partial is cached.

type IReferenceDataUseCase interface {
	Catalog(ctx context.Context) (*quote.Catalog, error)
	ResolvePrice(ctx context.Context, segmentID string, itemType entities.ItemType, itemID string) (int64, error)
	PricingOverview(ctx context.Context) (pricing.Overview, error)
	Invalidate()
}

type ReferenceDataUseCase struct {
	repo interfaces.IReferenceDataRepository
	sink pricing.DiagnosticsSink
	ttl  time.Duration
	now  func() time.Time

	mu       sync.Mutex
	catalog  *quote.Catalog
	loadedAt time.Time
}

var _ IReferenceDataUseCase = (*ReferenceDataUseCase)(nil)

// NewReferenceDataUseCase caches the loaded catalog for ttl. A ttl <= 0 keeps
// it until Invalidate is called.
func NewReferenceDataUseCase(repo interfaces.IReferenceDataRepository, sink pricing.DiagnosticsSink, ttl time.Duration) *ReferenceDataUseCase {
	return &ReferenceDataUseCase{
		repo: repo,
		sink: sink,
		ttl:  ttl,
		now:  time.Now,
	}
}

func (u *ReferenceDataUseCase) Catalog(ctx context.Context) (*quote.Catalog, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.catalog != nil && (u.ttl <= 0 || u.now().Sub(u.loadedAt) < u.ttl) {
		return u.catalog, nil
	}

	data, err := u.load(ctx)
	if err != nil {
		log.Printf("[reference][usecase] load failed err=%v", err)
		return nil, fmt.Errorf("%w: %w", ErrReferenceDataUnavailable, err)
	}

	u.catalog = quote.NewCatalog(data, u.sink)
	u.loadedAt = u.now()
	log.Printf("[reference][usecase] loaded segments=%d parts=%d services=%d removable=%d prices=%d",
		len(data.CarSegments), len(data.CarParts), len(data.Services), len(data.RemovableParts), len(data.Pricing))
	return u.catalog, nil
}

func (u *ReferenceDataUseCase) load(ctx context.Context) (entities.ReferenceData, error) {
	var data entities.ReferenceData
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		v, err := u.repo.ListCarSegments(gctx)
		data.CarSegments = v
		return err
	})
	g.Go(func() error {
		v, err := u.repo.ListCarParts(gctx)
		data.CarParts = v
		return err
	})
	g.Go(func() error {
		v, err := u.repo.ListServices(gctx)
		data.Services = v
		return err
	})
	g.Go(func() error {
		v, err := u.repo.ListRemovableParts(gctx)
		data.RemovableParts = v
		return err
	})
	g.Go(func() error {
		v, err := u.repo.ListPricing(gctx)
		data.Pricing = v
		return err
	})

	if err := g.Wait(); err != nil {
		return entities.ReferenceData{}, err
	}
	return data, nil
}

func (u *ReferenceDataUseCase) ResolvePrice(ctx context.Context, segmentID string, itemType entities.ItemType, itemID string) (int64, error) {
	segmentID = strings.TrimSpace(segmentID)
	if segmentID == "" {
		return 0, ErrInvalidSegmentID
	}
	if !itemType.Valid() {
		return 0, ErrInvalidItemType
	}

	c, err := u.Catalog(ctx)
	if err != nil {
		return 0, err
	}
	if !c.HasSegment(segmentID) {
		return 0, ErrSegmentNotFound
	}
	if itemType == entities.ItemTypePanelPainting {
		itemID = ""
	}
	return c.Price(segmentID, itemType, strings.TrimSpace(itemID)), nil
}

func (u *ReferenceDataUseCase) PricingOverview(ctx context.Context) (pricing.Overview, error) {
	c, err := u.Catalog(ctx)
	if err != nil {
		return pricing.Overview{}, err
	}
	return pricing.BuildOverview(c.Data()), nil
}

// Invalidate drops the cached catalog; the next call reloads it.
func (u *ReferenceDataUseCase) Invalidate() {
	u.mu.Lock()
	u.catalog = nil
	u.mu.Unlock()
}

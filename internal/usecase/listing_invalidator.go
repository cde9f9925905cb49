package usecase

import (
	"context"

	"github.com/mikiasgoitom/Catalog/internal/domain/contract"
	"github.com/mikiasgoitom/Catalog/internal/infrastructure/metrics"
	usecasecontract "github.com/mikiasgoitom/Catalog/internal/usecase/contract"
)

// ListingInvalidator drops every cached listing page after a mutation that
// changes listing payloads. It never fails the caller: the store is the
// source of truth and the cache TTL bounds staleness if a purge is lost.
type ListingInvalidator struct {
	cache  contract.IProductCache
	logger usecasecontract.IAppLogger
}

// NewListingInvalidator accepts a nil cache, in which case it is a no-op.
func NewListingInvalidator(cache contract.IProductCache, logger usecasecontract.IAppLogger) *ListingInvalidator {
	return &ListingInvalidator{cache: cache, logger: logger}
}

// InvalidateListings purges the listing namespace. reason is only logged.
func (i *ListingInvalidator) InvalidateListings(ctx context.Context, reason string) {
	if i == nil || i.cache == nil {
		return
	}
	if err := i.cache.InvalidateProductLists(ctx); err != nil {
		metrics.IncInvalidation(false)
		if i.logger != nil {
			i.logger.Warningf("cache invalidation failed (%s): %v", reason, err)
		}
		return
	}
	metrics.IncInvalidation(true)
	if i.logger != nil {
		i.logger.Debugf("cache invalidated: product lists (%s)", reason)
	}
}

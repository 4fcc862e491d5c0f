// Package cache provides read-through caches for the portfolio preference store.
package cache

import (
	"github.com/aishwary11/portfolio"
)

// Cache is re-exported so callers can depend on this package alone.
type Cache = portfolio.Cache

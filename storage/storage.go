// Package storage provides durable backends for the portfolio preference store.
package storage

import (
	"github.com/aishwary11/portfolio"
)

// Storage is re-exported so callers can depend on this package alone.
type Storage = portfolio.Storage

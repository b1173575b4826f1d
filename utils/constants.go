package utils

import "time"

// CatalogCachePrefix is the prefix used for per-experience cache keys.
const CatalogCachePrefix = "experiences:id:"

// CatalogListCacheKey holds the cached full catalog listing.
const CatalogListCacheKey = "experiences:all"

// CatalogCacheTTL is the time-to-live for catalog cache entries.
const CatalogCacheTTL = 5 * time.Minute

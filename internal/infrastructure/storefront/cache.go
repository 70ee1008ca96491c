package storefront

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// CacheStrategy selects how long a query response may be reused.
type CacheStrategy int

const (
	CacheNone CacheStrategy = iota
	CacheShort
	CacheLong
)

func (s CacheStrategy) String() string {
	switch s {
	case CacheShort:
		return "short"
	case CacheLong:
		return "long"
	default:
		return "none"
	}
}

// responseCache keeps GraphQL data payloads, one LRU per strategy.
type responseCache struct {
	short *expirable.LRU[string, []byte]
	long  *expirable.LRU[string, []byte]
}

func newResponseCache(size int, shortTTL, longTTL time.Duration) *responseCache {
	if size <= 0 {
		size = 1
	}
	return &responseCache{
		short: expirable.NewLRU[string, []byte](size, nil, shortTTL),
		long:  expirable.NewLRU[string, []byte](size, nil, longTTL),
	}
}

func (c *responseCache) lru(strategy CacheStrategy) *expirable.LRU[string, []byte] {
	switch strategy {
	case CacheShort:
		return c.short
	case CacheLong:
		return c.long
	default:
		return nil
	}
}

func (c *responseCache) get(strategy CacheStrategy, key string) ([]byte, bool) {
	if l := c.lru(strategy); l != nil {
		return l.Get(key)
	}
	return nil, false
}

func (c *responseCache) add(strategy CacheStrategy, key string, data []byte) {
	if l := c.lru(strategy); l != nil {
		l.Add(key, data)
	}
}

func (c *responseCache) purge() {
	c.short.Purge()
	c.long.Purge()
}

func (c *responseCache) len() int {
	return c.short.Len() + c.long.Len()
}

func cacheKey(endpoint, document string, variables []byte) string {
	h := sha256.New()
	h.Write([]byte(endpoint))
	h.Write([]byte{0})
	h.Write([]byte(document))
	h.Write([]byte{0})
	h.Write(variables)
	return hex.EncodeToString(h.Sum(nil))
}

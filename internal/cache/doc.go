// Package cache provides a small generic LRU cache.
//
//	c := cache.New[string, []uint32](8)
//	words, err := c.GetOrCreate(src, func() ([]uint32, error) { return compile(src) })
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache

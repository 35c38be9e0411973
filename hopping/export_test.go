package hopping

// SetCacheLoader swaps the loader behind c so tests can count file reads.
func SetCacheLoader(c *Cache, load func(string) (*Model, error)) {
	c.load = load
}

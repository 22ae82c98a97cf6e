package labels

import "github.com/BrandonKowalski/pathrouter/pkg/pathrouter/constants"

// labelCache is a small LRU of localized strings. Not safe for concurrent use;
// the Localizer guards it.
type labelCache struct {
	labels  map[string]string
	order   []string // tracks insertion order for LRU eviction
	maxSize int
}

func newLabelCache(maxSize int) *labelCache {
	if maxSize <= 0 {
		maxSize = constants.DefaultLabelCacheSize
	}
	return &labelCache{
		labels:  make(map[string]string),
		order:   make([]string, 0, maxSize),
		maxSize: maxSize,
	}
}

func (c *labelCache) Get(key string) (string, bool) {
	if label, exists := c.labels[key]; exists {
		// Move to end (most recently used)
		c.moveToEnd(key)
		return label, true
	}
	return "", false
}

func (c *labelCache) Set(key, label string) {
	if _, exists := c.labels[key]; exists {
		c.labels[key] = label
		c.moveToEnd(key)
		return
	}

	if len(c.order) >= c.maxSize {
		c.evictOldest()
	}

	c.labels[key] = label
	c.order = append(c.order, key)
}

func (c *labelCache) Len() int {
	return len(c.order)
}

func (c *labelCache) moveToEnd(key string) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			c.order = append(c.order, key)
			return
		}
	}
}

func (c *labelCache) evictOldest() {
	if len(c.order) == 0 {
		return
	}

	oldest := c.order[0]
	c.order = c.order[1:]
	delete(c.labels, oldest)
}

func (c *labelCache) Clear() {
	c.labels = make(map[string]string)
	c.order = c.order[:0]
}

package variant

import (
	"container/list"
	"sort"
	"strconv"
	"strings"
	"sync"
)

// DefaultCacheSize bounds a Cache built without WithMaxEntries. Override
// text is free-form, so the table needs a cap even though the schema's own
// combinations are few.
const DefaultCacheSize = 1024

// CacheOption configures a Cache.
type CacheOption func(*Cache)

// WithMaxEntries caps the number of memoized results. Values below one are
// ignored.
func WithMaxEntries(n int) CacheOption {
	return func(c *Cache) {
		if n > 0 {
			c.maxSize = n
		}
	}
}

// Cache memoizes a Resolver's output per selection and override value,
// evicting the least recently used entry once full. Failed resolutions are
// not stored.
type Cache struct {
	resolver *Resolver

	mu      sync.Mutex
	maxSize int
	entries map[string]*list.Element
	lru     *list.List // front is most recently used
}

type cacheEntry struct {
	key   string
	class string
}

// NewCache wraps r with a concurrency-safe LRU memo table.
func NewCache(r *Resolver, opts ...CacheOption) *Cache {
	c := &Cache{
		resolver: r,
		maxSize:  DefaultCacheSize,
		entries:  make(map[string]*list.Element),
		lru:      list.New(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Resolver returns the wrapped resolver.
func (c *Cache) Resolver() *Resolver {
	return c.resolver
}

// Resolve returns the cached class string for sel and overrides, computing
// it on first use.
func (c *Cache) Resolve(sel Selection, overrides ...string) (string, error) {
	key := c.key(sel, overrides)

	if class, ok := c.get(key); ok {
		return class, nil
	}

	resolved, err := c.resolver.Resolve(sel, overrides...)
	if err != nil {
		return "", err
	}

	c.put(key, resolved)
	return resolved, nil
}

func (c *Cache) get(key string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.entries[key]; ok {
		c.lru.MoveToFront(elem)
		return elem.Value.(*cacheEntry).class, true
	}
	return "", false
}

func (c *Cache) put(key, class string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Another goroutine may have stored the same key meanwhile.
	if elem, ok := c.entries[key]; ok {
		c.lru.MoveToFront(elem)
		return
	}

	for c.lru.Len() >= c.maxSize {
		oldest := c.lru.Back()
		c.lru.Remove(oldest)
		delete(c.entries, oldest.Value.(*cacheEntry).key)
	}

	c.entries[key] = c.lru.PushFront(&cacheEntry{key: key, class: class})
}

// Len reports the number of memoized entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.Len()
}

// Cap reports the maximum number of memoized entries.
func (c *Cache) Cap() int {
	return c.maxSize
}

// Reset drops every memoized entry.
func (c *Cache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*list.Element)
	c.lru.Init()
}

// key only considers axes the schema knows so extra hints share entries.
// Names are quoted because axis and option names may contain any rune.
func (c *Cache) key(sel Selection, overrides []string) string {
	pairs := make([]string, 0, len(sel))
	for axis, option := range sel {
		if option == "" || !c.resolver.schema.HasAxis(axis) {
			continue
		}
		pairs = append(pairs, strconv.Quote(axis)+"="+strconv.Quote(option))
	}
	sort.Strings(pairs)

	var b strings.Builder
	b.WriteString(strings.Join(pairs, ","))
	b.WriteByte('|')
	b.WriteString(strconv.Quote(Join(Split(overrides...))))
	return b.String()
}

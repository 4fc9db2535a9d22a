package comic

import (
	"context"
	"strconv"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"xkcdterm/internal/log"
)

// Cache keeps the most recently loaded comics and collapses concurrent
// fetches of the same id into one request. Cached comics are shared and
// must not be modified.
type Cache struct {
	src     Source
	size    int
	timeout time.Duration

	mu    sync.Mutex
	items map[int]*Comic
	order []int // least recently used first

	group singleflight.Group
}

// NewCache wraps src with room for size comics. A shared fetch runs for at
// most timeout (0 means no limit) whatever happens to the callers waiting
// on it.
func NewCache(src Source, size int, timeout time.Duration) *Cache {
	return &Cache{
		src:     src,
		size:    max(1, size),
		timeout: timeout,
		items:   make(map[int]*Comic),
	}
}

// Fetch returns a cached comic or joins the fetch already running for id.
// Cancelling ctx only stops this caller from waiting.
func (c *Cache) Fetch(ctx context.Context, id int) (*Comic, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if id > 0 {
		if cm, ok := c.get(id); ok {
			log.Debug("cache hit %d", id)
			return cm, nil
		}
	}
	ch := c.group.DoChan(strconv.Itoa(id), func() (any, error) {
		fctx := context.WithoutCancel(ctx)
		if c.timeout > 0 {
			var cancel context.CancelFunc
			fctx, cancel = context.WithTimeout(fctx, c.timeout)
			defer cancel()
		}
		cm, err := c.src.Fetch(fctx, id)
		if err != nil {
			return nil, err
		}
		c.put(cm)
		return cm, nil
	})
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case r := <-ch:
		if r.Err != nil {
			return nil, r.Err
		}
		return r.Val.(*Comic), nil
	}
}

// Random is never served from the cache, but its result is stored.
func (c *Cache) Random(ctx context.Context) (*Comic, error) {
	cm, err := c.src.Random(ctx)
	if err != nil {
		return nil, err
	}
	c.put(cm)
	return cm, nil
}

// Prefetch loads the given comics concurrently. Zero ids and comics already
// cached are skipped. One failure does not stop the other fetches; the
// first error is returned.
func (c *Cache) Prefetch(ctx context.Context, ids ...int) error {
	var g errgroup.Group
	for _, id := range ids {
		if id <= 0 || c.cached(id) {
			continue
		}
		g.Go(func() error {
			_, err := c.Fetch(ctx, id)
			return err
		})
	}
	return g.Wait()
}

func (c *Cache) cached(id int) bool {
	_, ok := c.peek(id)
	return ok
}

func (c *Cache) peek(id int) (*Comic, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	cm, ok := c.items[id]
	return cm, ok
}

func (c *Cache) get(id int) (*Comic, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	cm, ok := c.items[id]
	if ok {
		c.touch(id)
	}
	return cm, ok
}

func (c *Cache) put(cm *Comic) {
	if cm == nil || cm.ID <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.items[cm.ID]; ok {
		c.items[cm.ID] = cm
		c.touch(cm.ID)
		return
	}
	if len(c.order) >= c.size {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.items, oldest)
	}
	c.items[cm.ID] = cm
	c.order = append(c.order, cm.ID)
}

// touch moves id to the most recently used end. Callers hold mu.
func (c *Cache) touch(id int) {
	for i, v := range c.order {
		if v == id {
			c.order = append(append(c.order[:i:i], c.order[i+1:]...), id)
			return
		}
	}
}

package descriptions

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

const (
	BatchSize    = 5
	DefaultPause = time.Second
)

// Describer generates listing text for a product.
type Describer interface {
	Describe(ctx context.Context, name, category string) (string, error)
}

type Item struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

func (i Item) Key() string {
	return Key(i.Name, i.Category)
}

type Result struct {
	Key         string
	Description string
}

// Cache memoises descriptions per category and name for the life of the
// process. Fallback text is cached as well, so a failing key is tried once.
type Cache struct {
	gen   Describer
	Pause time.Duration

	mu    sync.RWMutex
	texts map[string]string
}

// New accepts a nil Describer, in which case every miss uses the template.
func New(gen Describer) *Cache {
	return &Cache{
		gen:   gen,
		Pause: DefaultPause,
		texts: make(map[string]string),
	}
}

func Key(name, category string) string {
	return category + "-" + name
}

func (c *Cache) Get(ctx context.Context, name, category string) string {
	key := Key(name, category)

	c.mu.RLock()
	text, ok := c.texts[key]
	c.mu.RUnlock()
	if ok {
		return text
	}

	text = c.generate(ctx, name, category)

	// an abandoned request is not a generator failure, leave the key for the next caller
	if ctx.Err() != nil {
		return text
	}

	c.mu.Lock()
	c.texts[key] = text
	c.mu.Unlock()
	return text
}

func (c *Cache) generate(ctx context.Context, name, category string) string {
	if c.gen == nil {
		return Default(name, category)
	}

	text, err := c.gen.Describe(ctx, name, category)
	if err != nil {
		log.Println(err)
		return Default(name, category)
	}
	if text = strings.TrimSpace(text); text == "" {
		return Default(name, category)
	}
	return text
}

// Batch runs groups of BatchSize lookups concurrently, pausing between groups.
// Results keep the input order. A cancelled context stops before the next group.
func (c *Cache) Batch(ctx context.Context, items []Item) ([]Result, error) {
	results := make([]Result, len(items))

	for start := 0; start < len(items); start += BatchSize {
		end := start + BatchSize
		if end > len(items) {
			end = len(items)
		}

		g, gctx := errgroup.WithContext(ctx)
		for i := start; i < end; i++ {
			g.Go(func() error {
				results[i] = Result{
					Key:         items[i].Key(),
					Description: c.Get(gctx, items[i].Name, items[i].Category),
				}
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}

		if end < len(items) {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(c.Pause):
			}
		}
	}

	return results, nil
}

// Count returns the number of cached entries.
func (c *Cache) Count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.texts)
}

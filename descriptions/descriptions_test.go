package descriptions

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"gotest.tools/assert"
)

type fakeDescriber struct {
	calls int32
	err   error
	text  string

	mu       sync.Mutex
	inFlight int
	maxSeen  int
}

func (f *fakeDescriber) Describe(ctx context.Context, name, category string) (string, error) {
	atomic.AddInt32(&f.calls, 1)

	f.mu.Lock()
	f.inFlight++
	if f.inFlight > f.maxSeen {
		f.maxSeen = f.inFlight
	}
	f.mu.Unlock()

	time.Sleep(5 * time.Millisecond)

	f.mu.Lock()
	f.inFlight--
	f.mu.Unlock()

	if f.err != nil {
		return "", f.err
	}
	if f.text != "" {
		return f.text, nil
	}
	return "generated " + name, nil
}

func TestGetCachesGenerated(t *testing.T) {
	gen := &fakeDescriber{}
	c := New(gen)

	first := c.Get(context.Background(), "Used Lamp", "general")
	second := c.Get(context.Background(), "Used Lamp", "general")

	assert.Equal(t, "generated Used Lamp", first)
	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), atomic.LoadInt32(&gen.calls))
	assert.Equal(t, 1, c.Count())
}

func TestGetFallsBackAndCaches(t *testing.T) {
	gen := &fakeDescriber{err: errors.New("quota exceeded")}
	c := New(gen)

	text := c.Get(context.Background(), "Calculus", "books")
	assert.Assert(t, strings.Contains(text, "good condition"))
	assert.Assert(t, strings.Contains(text, "studies"))

	assert.Equal(t, text, c.Get(context.Background(), "Calculus", "books"))
	assert.Equal(t, int32(1), atomic.LoadInt32(&gen.calls))
}

func TestGetCancelledIsNotCached(t *testing.T) {
	gen := &fakeDescriber{err: context.Canceled}
	c := New(gen)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Equal(t, "Quality Lamp in good condition. Great value for students and campus community.", c.Get(ctx, "Lamp", "general"))
	assert.Equal(t, 0, c.Count())

	gen.err = nil
	assert.Equal(t, "generated Lamp", c.Get(context.Background(), "Lamp", "general"))
	assert.Equal(t, int32(2), atomic.LoadInt32(&gen.calls))
	assert.Equal(t, 1, c.Count())
}

func TestGetBlankTextUsesTemplate(t *testing.T) {
	c := New(&fakeDescriber{text: "   "})
	assert.Equal(t, Default("Hoodie", "clothes"), c.Get(context.Background(), "Hoodie", "clothes"))
}

func TestGetWithoutGenerator(t *testing.T) {
	c := New(nil)
	assert.Equal(t, "Quality Kettle in good condition. Perfect for students.", c.Get(context.Background(), "Kettle", "kitchen"))
}

func TestDefault(t *testing.T) {
	assert.Equal(t, "A quality Laptop perfect for students and tech enthusiasts. Well-maintained and ready to use.", Default("Laptop", "Electronics"))
	assert.Equal(t, "This Calculus is in good condition and perfect for your studies. Great value for money.", Default("Calculus", "books"))
	assert.Equal(t, "Stylish Hoodie in excellent condition. Perfect for campus life and casual wear.", Default("Hoodie", "clothes"))
	assert.Equal(t, "Quality Lamp in good condition. Great value for students and campus community.", Default("Lamp", "general"))
	assert.Equal(t, "Quality Lamp in good condition. Perfect for students.", Default("Lamp", ""))
}

func TestBatch(t *testing.T) {
	gen := &fakeDescriber{}
	c := New(gen)
	c.Pause = 10 * time.Millisecond

	var items []Item
	for i := 0; i < 12; i++ {
		items = append(items, Item{Name: fmt.Sprintf("Item %d", i), Category: "general"})
	}

	start := time.Now()
	results, err := c.Batch(context.Background(), items)
	assert.NilError(t, err)

	assert.Equal(t, 12, len(results))
	for i, r := range results {
		assert.Equal(t, "general-"+items[i].Name, r.Key)
		assert.Equal(t, "generated "+items[i].Name, r.Description)
	}
	assert.Equal(t, int32(12), atomic.LoadInt32(&gen.calls))
	assert.Assert(t, gen.maxSeen <= BatchSize)
	// three groups, two pauses
	assert.Assert(t, time.Since(start) >= 20*time.Millisecond)
}

func TestBatchCancelled(t *testing.T) {
	c := New(&fakeDescriber{})
	c.Pause = time.Hour

	ctx, cancel := context.WithCancel(context.Background())
	items := make([]Item, 6)
	for i := range items {
		items[i] = Item{Name: fmt.Sprintf("Item %d", i), Category: "books"}
	}

	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	_, err := c.Batch(ctx, items)
	assert.Assert(t, errors.Is(err, context.Canceled))
}

func TestBatchEmpty(t *testing.T) {
	results, err := New(nil).Batch(context.Background(), nil)
	assert.NilError(t, err)
	assert.Equal(t, 0, len(results))
}

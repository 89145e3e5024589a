// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package cache implements a write-through software cache in front of a
// backing memory.
//
// The cache holds one entry per address, has no capacity limit and never
// evicts. Reads fill on miss; writes update the entry and always propagate to
// the backing store.
package cache

import (
	"iter"
	"log"

	"github.com/ezrec/mipsim/internal"
	"github.com/ezrec/mipsim/memory"
	"github.com/ezrec/mipsim/trace"
)

// Backing is the next level of the memory hierarchy.
type Backing interface {
	Read(addr memory.Address) memory.Word
	Write(addr memory.Address, value memory.Word)
}

var _ Backing = (*memory.Memory)(nil)

// Entry is the last known value of an address.
type Entry struct {
	Address memory.Address
	Value   memory.Word
}

// Statistics holds cache access counters.
type Statistics struct {
	Reads  int
	Writes int
	Hits   int
	Misses int
}

// Cache is a write-through cache with one entry per address.
type Cache struct {
	Verbose bool         // If set, enables verbose logging.
	Tracer  trace.Tracer // Receives hit, miss and write events.

	backing Backing
	entries map[memory.Address]Entry
	stats   Statistics
}

// NewCache creates an empty cache in front of backing.
func NewCache(backing Backing) (c *Cache) {
	c = &Cache{
		Tracer:  trace.Discard,
		backing: backing,
		entries: make(map[memory.Address]Entry),
	}

	return
}

// Backing returns the backing store.
func (c *Cache) Backing() Backing {
	return c.backing
}

// Read returns the value at addr, filling from the backing store on a miss.
func (c *Cache) Read(addr memory.Address) (value memory.Word) {
	c.stats.Reads++

	entry, ok := c.entries[addr]
	if ok {
		c.stats.Hits++
		if c.Verbose {
			log.Printf("cache: hit %#x -> %v", uint64(addr), entry.Value)
		}
		c.Tracer.Trace(trace.Event{Kind: trace.KIND_HIT, Address: addr, Value: entry.Value})
		value = entry.Value
		return
	}

	c.stats.Misses++
	if c.Verbose {
		log.Printf("cache: miss %#x", uint64(addr))
	}
	c.Tracer.Trace(trace.Event{Kind: trace.KIND_MISS, Address: addr})

	value = c.backing.Read(addr)
	c.entries[addr] = Entry{Address: addr, Value: value}

	return
}

// Write updates the entry for addr, then writes through to the backing store.
func (c *Cache) Write(addr memory.Address, value memory.Word) {
	c.stats.Writes++

	if c.Verbose {
		log.Printf("cache: write %#x <- %v", uint64(addr), value)
	}
	c.Tracer.Trace(trace.Event{Kind: trace.KIND_WRITE, Address: addr, Value: value})

	c.entries[addr] = Entry{Address: addr, Value: value}
	c.backing.Write(addr, value)
}

// Lookup probes the cache without side effects.
func (c *Cache) Lookup(addr memory.Address) (value memory.Word, ok bool) {
	entry, ok := c.entries[addr]
	value = entry.Value
	return
}

// Len returns the number of cached addresses.
func (c *Cache) Len() int {
	return len(c.entries)
}

// All iterates over the cache entries in address order.
func (c *Cache) All() iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		for _, entry := range internal.IterSorted(c.entries) {
			if !yield(entry) {
				return
			}
		}
	}
}

// Stats returns the access counters.
func (c *Cache) Stats() Statistics {
	return c.stats
}

// Reset drops every entry and zeros the counters.
// The backing store is not touched.
func (c *Cache) Reset() {
	clear(c.entries)
	c.stats = Statistics{}
}

package components

import (
	"sort"

	"reactlint/internal/jsast"
)

// Confidence grades how certain the detector is that a node is a React
// component. Zero is a hard veto, not a low score: once a node is banned
// no later evidence revives it.
type Confidence int

const (
	Banned    Confidence = 0
	Maybe     Confidence = 1
	Confirmed Confidence = 2
)

// Candidate is one tracked component candidate. Extra holds per-node
// facts rules accumulate during the pass (e.g. usage flags).
type Candidate struct {
	Node       *jsast.Node
	Confidence Confidence
	Extra      map[string]any

	banned bool
}

// Registry accumulates component candidates over a single file pass,
// keyed by arena index. A Registry belongs to one pass and is never
// shared across files.
type Registry struct {
	byIndex map[int]*Candidate
}

func NewRegistry() *Registry {
	return &Registry{byIndex: make(map[int]*Candidate)}
}

// Add records node at the given confidence. Confidence only ever rises:
// re-adding at a lower grade keeps the higher one. Adding at Banned
// permanently vetoes the node regardless of earlier or later grades.
func (r *Registry) Add(node *jsast.Node, conf Confidence) *Candidate {
	if node == nil {
		return nil
	}
	c, ok := r.byIndex[node.Index]
	if !ok {
		c = &Candidate{Node: node, Confidence: conf}
		r.byIndex[node.Index] = c
	} else if conf > c.Confidence {
		c.Confidence = conf
	}
	if conf == Banned {
		c.banned = true
		c.Confidence = Banned
	}
	if c.banned {
		c.Confidence = Banned
	}
	return c
}

// Get returns the candidate registered for node, or nil.
func (r *Registry) Get(node *jsast.Node) *Candidate {
	if node == nil {
		return nil
	}
	return r.byIndex[node.Index]
}

// Set merges extra facts into the candidate for node, or for the nearest
// registered ancestor when node itself is not tracked. A silent no-op
// when no candidate exists on the path to the root.
func (r *Registry) Set(node *jsast.Node, key string, value any) {
	for cur := node; cur != nil; cur = cur.Parent {
		if c, ok := r.byIndex[cur.Index]; ok {
			if c.Extra == nil {
				c.Extra = make(map[string]any)
			}
			c.Extra[key] = value
			return
		}
	}
}

// All returns the confirmed candidates in document order. Maybes and
// banned nodes never escape the registry.
func (r *Registry) All() []*Candidate {
	out := make([]*Candidate, 0, len(r.byIndex))
	for _, c := range r.byIndex {
		if !c.banned && c.Confidence >= Confirmed {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Node.Index < out[j].Node.Index
	})
	return out
}

// Count returns the number of confirmed candidates.
func (r *Registry) Count() int {
	n := 0
	for _, c := range r.byIndex {
		if !c.banned && c.Confidence >= Confirmed {
			n++
		}
	}
	return n
}

package server

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/katalvlaran/dijkstar/core"
	"github.com/katalvlaran/dijkstar/graphio"
)

// ErrNoGraphFile indicates a reload was requested but the served graph was
// not loaded from a file.
var ErrNoGraphFile = errors.New("server: graph was not loaded from a file")

// ErrInvalidWeight indicates a served graph or annex carries a negative or NaN
// edge weight. The search only terminates on non-negative costs.
var ErrInvalidWeight = errors.New("server: edge weight must be a non-negative number")

// GraphInfo summarizes the served graph.
type GraphInfo struct {
	File      string `json:"file,omitempty"`
	NodeCount int    `json:"node_count"`
	EdgeCount int    `json:"edge_count"`
}

// Store holds the served graph and the file it came from.
//
// Queries run under the read lock; loads parse outside the lock and swap the
// graph in under the write lock, so a slow load never blocks queries.
// loadMu orders loads, reloads and replacements so a reload of an old file
// cannot overwrite a newer graph.
type Store struct {
	loadMu sync.Mutex
	mu     sync.RWMutex
	graph  *core.Graph[string]
	file   string
}

// NewStore returns a store serving an empty graph.
func NewStore() *Store {
	return &Store{graph: core.NewGraph[string]()}
}

// LoadFile parses path and serves the result. Documents with negative or NaN
// weights are rejected with ErrInvalidWeight. On error the current graph is kept.
func (s *Store) LoadFile(path string) (GraphInfo, error) {
	s.loadMu.Lock()
	defer s.loadMu.Unlock()

	return s.loadFileLocked(path)
}

// Reload re-reads the file the current graph was loaded from.
func (s *Store) Reload() (GraphInfo, error) {
	s.loadMu.Lock()
	defer s.loadMu.Unlock()

	s.mu.RLock()
	file := s.file
	s.mu.RUnlock()

	if file == "" {
		return GraphInfo{}, ErrNoGraphFile
	}

	return s.loadFileLocked(file)
}

// loadFileLocked requires loadMu.
func (s *Store) loadFileLocked(path string) (GraphInfo, error) {
	g, err := graphio.Load(path)
	if err != nil {
		return GraphInfo{}, err
	}
	if err = CheckWeights(g); err != nil {
		return GraphInfo{}, fmt.Errorf("%s: %w", path, err)
	}

	return s.swap(g, path), nil
}

// Replace serves g, remembering file as its origin ("" for uploaded data).
// Callers validate g with CheckWeights first.
func (s *Store) Replace(g *core.Graph[string], file string) GraphInfo {
	s.loadMu.Lock()
	defer s.loadMu.Unlock()

	return s.swap(g, file)
}

// swap requires loadMu.
func (s *Store) swap(g *core.Graph[string], file string) GraphInfo {
	if g == nil {
		g = core.NewGraph[string]()
	}

	s.mu.Lock()
	s.graph = g
	s.file = file
	info := s.infoLocked()
	s.mu.Unlock()

	return info
}

// Info describes the served graph.
func (s *Store) Info() GraphInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.infoLocked()
}

func (s *Store) infoLocked() GraphInfo {
	return GraphInfo{
		File:      s.file,
		NodeCount: s.graph.NodeCount(),
		EdgeCount: s.graph.EdgeCount(),
	}
}

// View calls fn with the served graph under the read lock. fn must not
// mutate g or retain it after returning.
func (s *Store) View(fn func(g *core.Graph[string])) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	fn(s.graph)
}

// CheckWeights returns ErrInvalidWeight if any edge of g is negative or NaN.
// +Inf is accepted and marks an impassable edge.
func CheckWeights(g *core.Graph[string]) error {
	if g == nil {
		return nil
	}
	for e := range g.Edges() {
		if e.Weight < 0 || math.IsNaN(e.Weight) {
			return fmt.Errorf("%w: %q→%q has weight %g", ErrInvalidWeight, e.From, e.To, e.Weight)
		}
	}

	return nil
}

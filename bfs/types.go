package bfs

import (
	"context"
	"errors"
	"fmt"
	"slices"
)

// Unreachable is the hop count ShortestPath reports when no route exists.
const Unreachable = -1

var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("bfs: graph is nil")

	// ErrStartNotFound indicates that the start node is not in the graph.
	ErrStartNotFound = errors.New("bfs: start node not found")

	// ErrStartDisabled indicates that the start node is disabled.
	ErrStartDisabled = errors.New("bfs: start node is disabled")

	// ErrBadMaxDepth indicates a negative depth limit.
	ErrBadMaxDepth = errors.New("bfs: MaxDepth must be non-negative")
)

// Options configures a traversal.
//
//	Ctx      – checked once per dequeued node; cancellation aborts the walk.
//	OnVisit  – called for every dequeued node; a non-nil error aborts.
//	MaxDepth – nodes deeper than this are not enqueued; 0 means unlimited.
type Options struct {
	Ctx      context.Context
	OnVisit  func(id string, depth int) error
	MaxDepth int

	err error
}

// Option configures Options.
type Option func(*Options)

// WithContext aborts the traversal with ctx.Err() once ctx is done.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers fn as the visit hook.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth limits the walk to d hops from the start. A negative d makes
// BFS fail with ErrBadMaxDepth.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: got %d", ErrBadMaxDepth, d)
			return
		}
		o.MaxDepth = d
	}
}

// DefaultOptions returns a background context, no hook and no depth limit.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnVisit: func(string, int) error { return nil },
	}
}

// Result is what a traversal reached.
//
//	Order  – nodes in visit sequence, start first.
//	Depth  – hop count of every reached node.
//	Parent – predecessor of every reached node except the start.
type Result struct {
	Order  []string
	Depth  map[string]int
	Parent map[string]string
}

// PathTo follows Parent links back from dest and returns the route from the
// start to dest, or an error when dest was never reached.
func (r *Result) PathTo(dest string) ([]string, error) {
	d, ok := r.Depth[dest]
	if !ok {
		return nil, fmt.Errorf("bfs: %q not reached", dest)
	}
	path := make([]string, 0, d+1)
	for cur := dest; ; cur = r.Parent[cur] {
		path = append(path, cur)
		if _, ok := r.Parent[cur]; !ok {
			break
		}
	}
	slices.Reverse(path)

	return path, nil
}

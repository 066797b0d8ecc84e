package story

import (
	"fmt"
	"sort"
	"sync"

	"github.com/fvbommel/sortorder"
)

// Stories maps story names to their definitions.
type Stories map[string]*Story

var (
	stories = make(Stories)
	mx      sync.RWMutex
)

// Register adds a story to the global catalog.
func Register(s *Story) {
	mx.Lock()
	defer mx.Unlock()

	if _, ok := stories[s.Name]; ok {
		panic(fmt.Sprintf("story %q already registered", s.Name))
	}
	stories[s.Name] = s
}

// Get returns the story registered under name.
func Get(name string) (*Story, error) {
	mx.RLock()
	defer mx.RUnlock()

	s, ok := stories[name]
	if !ok {
		return nil, fmt.Errorf("no story named %q", name)
	}
	return s, nil
}

// Names returns all registered story names in natural order.
func Names() []string {
	mx.RLock()
	defer mx.RUnlock()

	names := make([]string, 0, len(stories))
	for name := range stories {
		names = append(names, name)
	}
	sort.Sort(sortorder.Natural(names))

	return names
}

// All returns all registered stories in natural name order.
func All() []*Story {
	names := Names()

	mx.RLock()
	defer mx.RUnlock()

	out := make([]*Story, 0, len(names))
	for _, name := range names {
		out = append(out, stories[name])
	}
	return out
}

// Package catalog is the story registry: every component scenario the kit
// ships is described declaratively here and exercised by the runner, the
// gallery TUI and the test suite from the same definitions.
package catalog

import (
	"fmt"
	"sort"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/laststance/plume/internal/ui/components"
)

// Story describes how to render one component in one scenario, with an
// optional scripted interaction for stateful components.
type Story struct {
	// Component groups stories in listings, e.g. "button".
	Component string
	// Scenario names the variation, e.g. "focused". Unique per component.
	Scenario string
	// Render produces the story output for a static component.
	Render func(components.RenderContext) string
	// Model constructs a fresh bubbletea model for an interactive story.
	// When set, Render may be nil and the script drives the model instead.
	Model func(components.RenderContext) tea.Model
	// Script is the ordered interaction applied to Model.
	Script []Step
}

// ID returns the component/scenario key.
func (s Story) ID() string {
	return s.Component + "/" + s.Scenario
}

// Interactive reports whether the story drives a model.
func (s Story) Interactive() bool {
	return s.Model != nil
}

// Registry holds stories keyed by component and scenario.
type Registry struct {
	mu      sync.RWMutex
	stories map[string]Story
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{stories: make(map[string]Story)}
}

// Register adds a story. Duplicate component/scenario pairs and stories with
// neither a Render nor a Model are rejected.
func (r *Registry) Register(story Story) error {
	if story.Component == "" || story.Scenario == "" {
		return fmt.Errorf("story needs component and scenario, got %q/%q", story.Component, story.Scenario)
	}
	if story.Render == nil && story.Model == nil {
		return fmt.Errorf("story %s defines neither Render nor Model", story.ID())
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.stories[story.ID()]; exists {
		return fmt.Errorf("story %s already registered", story.ID())
	}
	r.stories[story.ID()] = story
	return nil
}

// MustRegister panics on registration failure; for package-level story sets
// whose keys are fixed at compile time.
func (r *Registry) MustRegister(stories ...Story) {
	for _, story := range stories {
		if err := r.Register(story); err != nil {
			panic(err)
		}
	}
}

// Get returns the story for a component/scenario pair.
func (r *Registry) Get(component, scenario string) (Story, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	story, ok := r.stories[component+"/"+scenario]
	return story, ok
}

// List returns all stories ordered by component then scenario.
func (r *Registry) List() []Story {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stories := make([]Story, 0, len(r.stories))
	for _, story := range r.stories {
		stories = append(stories, story)
	}
	sort.Slice(stories, func(i, j int) bool {
		if stories[i].Component != stories[j].Component {
			return stories[i].Component < stories[j].Component
		}
		return stories[i].Scenario < stories[j].Scenario
	})
	return stories
}

// Components returns the distinct component names, sorted.
func (r *Registry) Components() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]bool)
	var names []string
	for _, story := range r.stories {
		if !seen[story.Component] {
			seen[story.Component] = true
			names = append(names, story.Component)
		}
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered stories.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.stories)
}

package filter

import (
	"strings"

	"github.com/hunterjackson/todoer-sub002/task"
)

// Context holds case-insensitive name-to-id lookup tables for projects and
// labels, used to resolve "#name" and "@name" predicates. Callers build a
// fresh Context from the current catalogs before evaluating; the engine
// never mutates or caches it, and staleness (say, a renamed project) is
// the caller's problem.
type Context struct {
	projects map[string]string
	labels   map[string]string
}

// NewContext indexes the given catalogs by lowercased name.
func NewContext(projects []task.Project, labels []task.Label) *Context {
	c := &Context{
		projects: make(map[string]string, len(projects)),
		labels:   make(map[string]string, len(labels)),
	}
	for _, p := range projects {
		c.projects[strings.ToLower(p.Name)] = p.ID
	}
	for _, l := range labels {
		c.labels[strings.ToLower(l.Name)] = l.ID
	}
	return c
}

// Project resolves a project name to its ID.
func (c *Context) Project(name string) (string, bool) {
	id, ok := c.projects[strings.ToLower(name)]
	return id, ok
}

// Label resolves a label name to its ID.
func (c *Context) Label(name string) (string, bool) {
	id, ok := c.labels[strings.ToLower(name)]
	return id, ok
}

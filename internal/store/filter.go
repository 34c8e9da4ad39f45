package store

import (
	"github.com/ryanuber/go-glob"
)

// MatchName reports if name matches the glob pattern of the filter.
// An empty pattern matches every name.
func (f TemplateFilter) MatchName(name string) bool {
	if f.Name == "" {
		return true
	}
	return glob.Glob(f.Name, name)
}

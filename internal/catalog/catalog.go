// Package catalog lists the APIs with generated bindings in this module.
package catalog

import (
	"sort"

	content "gapi/content/v2.1"
	factchecktools "gapi/factchecktools/v1alpha1"
	"gapi/internal/canonical"
	"gapi/internal/discovery"
	sasportal "gapi/sasportal/v1alpha1"
	vmmigration "gapi/vmmigration/v1"
)

// Entry describes one bound API.
type Entry struct {
	Name         string
	Version      string
	Title        string
	Scopes       []string
	DiscoveryURL string
	Catalog      func() *canonical.Service
}

var entries = []Entry{
	newEntry(content.Catalog, content.ContentScope),
	newEntry(factchecktools.Catalog, factchecktools.UserinfoEmailScope),
	newEntry(sasportal.Catalog, sasportal.SasportalScope, sasportal.CloudPlatformScope),
	newEntry(vmmigration.Catalog, vmmigration.CloudPlatformScope),
}

func newEntry(fn func() *canonical.Service, scopes ...string) Entry {
	svc := fn()
	return Entry{
		Name:         svc.Name,
		Version:      svc.Version,
		Title:        svc.Title,
		Scopes:       scopes,
		DiscoveryURL: discovery.DirectoryURL(svc.Name, svc.Version),
		Catalog:      fn,
	}
}

// All returns every entry sorted by name.
func All() []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Lookup returns the entry for name.
func Lookup(name string) (Entry, bool) {
	for _, e := range entries {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}

// Names returns the names of all entries, sorted.
func Names() []string {
	all := All()
	names := make([]string, len(all))
	for i, e := range all {
		names[i] = e.Name
	}
	return names
}

package discovery

import (
	"fmt"
	"sort"
	"strings"

	"gapi/internal/canonical"
)

// DriftKind classifies a difference between a bound method and the live
// Discovery document.
type DriftKind string

const (
	DriftMissing    DriftKind = "missing"     // bound, not upstream
	DriftHTTPMethod DriftKind = "http-method" // verb changed
	DriftPath       DriftKind = "path"        // path template changed
	DriftRequest    DriftKind = "request"     // request schema renamed
	DriftResponse   DriftKind = "response"    // response schema renamed
	DriftUnbound    DriftKind = "unbound"     // upstream, not bound
)

// Drift is one reported difference.
type Drift struct {
	API    string    `json:"api"`
	Method string    `json:"method"`
	Kind   DriftKind `json:"kind"`
	Bound  string    `json:"bound,omitempty"`
	Live   string    `json:"live,omitempty"`
}

// Breaking reports whether the drift affects a bound method.
func (d Drift) Breaking() bool {
	return d.Kind != DriftUnbound
}

func (d Drift) String() string {
	switch d.Kind {
	case DriftMissing:
		return fmt.Sprintf("%s.%s: missing upstream", d.API, d.Method)
	case DriftUnbound:
		return fmt.Sprintf("%s.%s: not bound", d.API, d.Method)
	default:
		return fmt.Sprintf("%s.%s: %s %q -> %q", d.API, d.Method, d.Kind, d.Bound, d.Live)
	}
}

// Diff compares the bound methods with a live service description. Results
// are ordered by method ID, bound-method drift before unbound methods.
func Diff(bound, live *canonical.Service) []Drift {
	api := bound.Name
	var out []Drift
	for _, b := range bound.SortedOperations() {
		l := live.Find(b.ID)
		if l == nil {
			out = append(out, Drift{API: api, Method: b.ID, Kind: DriftMissing})
			continue
		}
		if !strings.EqualFold(b.Method, l.Method) {
			out = append(out, Drift{API: api, Method: b.ID, Kind: DriftHTTPMethod, Bound: b.Method, Live: strings.ToUpper(l.Method)})
		}
		if b.Path != l.Path {
			out = append(out, Drift{API: api, Method: b.ID, Kind: DriftPath, Bound: b.Path, Live: l.Path})
		}
		if b.RequestRef != l.RequestRef {
			out = append(out, Drift{API: api, Method: b.ID, Kind: DriftRequest, Bound: b.RequestRef, Live: l.RequestRef})
		}
		if b.ResponseRef != l.ResponseRef {
			out = append(out, Drift{API: api, Method: b.ID, Kind: DriftResponse, Bound: b.ResponseRef, Live: l.ResponseRef})
		}
	}

	var unbound []Drift
	for _, l := range live.Operations {
		if bound.Find(l.ID) == nil {
			unbound = append(unbound, Drift{API: api, Method: l.ID, Kind: DriftUnbound})
		}
	}
	sort.Slice(unbound, func(i, j int) bool { return unbound[i].Method < unbound[j].Method })
	return append(out, unbound...)
}

// HasBreaking reports whether any drift affects a bound method.
func HasBreaking(drifts []Drift) bool {
	for _, d := range drifts {
		if d.Breaking() {
			return true
		}
	}
	return false
}

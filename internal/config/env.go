package config

import (
	"fmt"
	"regexp"
	"strings"
)

// envRef matches ${NAME}. A bare $NAME is not a reference.
var envRef = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// MissingEnvRef is one ${VAR} reference that had no value.
type MissingEnvRef struct {
	Setting string
	Var     string
}

// MissingEnvError reports every unresolved reference found while expanding
// a config, in setting order.
type MissingEnvError struct {
	Refs []MissingEnvRef
}

func (e *MissingEnvError) Error() string {
	msgs := make([]string, len(e.Refs))
	for i, r := range e.Refs {
		msgs[i] = fmt.Sprintf("%s: missing env var %s", r.Setting, r.Var)
	}
	return strings.Join(msgs, "; ")
}

// envExpander rewrites settings in place. A setting with an unresolved
// reference keeps its original text.
type envExpander struct {
	lookup  func(string) (string, bool)
	missing []MissingEnvRef
}

func (x *envExpander) expand(setting string, v *string) {
	if !strings.Contains(*v, "${") {
		return
	}
	resolved := true
	seen := map[string]bool{}
	out := envRef.ReplaceAllStringFunc(*v, func(ref string) string {
		name := ref[2 : len(ref)-1]
		val, ok := x.lookup(name)
		if !ok {
			resolved = false
			if !seen[name] {
				seen[name] = true
				x.missing = append(x.missing, MissingEnvRef{Setting: setting, Var: name})
			}
		}
		return val
	})
	if resolved {
		*v = out
	}
}

func (x *envExpander) err() error {
	if len(x.missing) == 0 {
		return nil
	}
	return &MissingEnvError{Refs: x.missing}
}

/*
registry.go - Explicit country profile registry

PURPOSE:
  Maps country codes and aliases to profile constructors. Country files
  register themselves from init(), so importing this package is enough to
  make every built-in country available. Lookup is case-insensitive.

DESIGN NOTE:
  The registry is a plain map populated at startup and read-only
  afterwards - deliberately no reflection or type scanning, and no
  locking: registration happens during package init, before any lookup.

USAGE:
  profile, err := countries.Get("de")
  if errors.Is(err, countries.ErrUnknownCountry) { ... }

  for _, d := range countries.List() {
      fmt.Println(d.Code, d.Name)
  }
*/
package countries

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownCountry is returned when no profile is registered for the
// requested code or alias.
var ErrUnknownCountry = errors.New("unknown country")

// UnknownCountryError reports the code that failed to resolve.
type UnknownCountryError struct {
	Code string
}

func (e *UnknownCountryError) Error() string {
	return fmt.Sprintf("unknown country %q", e.Code)
}

func (e *UnknownCountryError) Unwrap() error { return ErrUnknownCountry }

// Constructor builds a fresh profile, applying the given customization.
// Every call returns independent rule groups, so customizing one profile
// never leaks into another.
type Constructor func(opts ...Option) (*Profile, error)

// Descriptor identifies one registered country profile.
type Descriptor struct {
	Code    string
	Name    string
	Aliases []string
}

var registry = struct {
	constructors map[string]Constructor
	descriptors  []Descriptor
}{
	constructors: make(map[string]Constructor),
}

// Register makes a country profile available under its code and aliases.
// Called from country file init() functions; panics on alias collisions
// because that is a programming error, not a runtime condition.
func Register(desc Descriptor, ctor Constructor) {
	keys := append([]string{desc.Code}, desc.Aliases...)
	for _, key := range keys {
		upper := strings.ToUpper(key)
		if _, exists := registry.constructors[upper]; exists {
			panic(fmt.Sprintf("countries: alias %s registered twice", upper))
		}
		registry.constructors[upper] = ctor
	}
	registry.descriptors = append(registry.descriptors, desc)
}

// Get builds the profile for the given country code or alias,
// case-insensitive. Customization options apply to the fresh profile.
func Get(code string, opts ...Option) (*Profile, error) {
	ctor, ok := registry.constructors[strings.ToUpper(code)]
	if !ok {
		return nil, &UnknownCountryError{Code: code}
	}
	return ctor(opts...)
}

// List enumerates the registered profiles, sorted by code.
func List() []Descriptor {
	out := append([]Descriptor(nil), registry.descriptors...)
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

package registry

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Registry is the static API key to partner mapping. It is parsed once at
// startup, validated, and read-only for the process lifetime.
type Registry struct {
	partners map[string]string
}

// Parse builds a Registry from a JSON object of API key -> partner id, e.g.
// {"YBJD1FRUY45THJ":"CM"}. Duplicate keys, empty keys and empty partner ids
// are rejected up front; a registry that parses is safe to serve with.
func Parse(raw string) (*Registry, error) {
	dec := json.NewDecoder(strings.NewReader(raw))

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("parsing partner registry: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("partner registry must be a JSON object")
	}

	partners := make(map[string]string)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("parsing partner registry: %w", err)
		}
		key := keyTok.(string)
		if strings.TrimSpace(key) == "" {
			return nil, fmt.Errorf("partner registry contains an empty API key")
		}
		if _, exists := partners[key]; exists {
			return nil, fmt.Errorf("partner registry contains duplicate API key %q", key)
		}

		valTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("parsing partner registry: %w", err)
		}
		partner, ok := valTok.(string)
		if !ok {
			return nil, fmt.Errorf("partner id for API key %q must be a string", key)
		}
		if strings.TrimSpace(partner) == "" {
			return nil, fmt.Errorf("partner id for API key %q is empty", key)
		}

		partners[key] = partner
	}

	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("parsing partner registry: %w", err)
	}

	return &Registry{partners: partners}, nil
}

// Partner returns the partner id bound to an API key. The match is exact and
// case-sensitive.
func (r *Registry) Partner(apiKey string) (string, bool) {
	partner, ok := r.partners[apiKey]
	return partner, ok
}

// Len returns the number of registered API keys.
func (r *Registry) Len() int {
	return len(r.partners)
}

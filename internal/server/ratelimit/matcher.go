package ratelimit

import (
	"strings"
)

// MatchEndpoint resolves a request path and method to an endpoint
// configuration. Exact matches win over prefix matches; prefix matching only
// applies to configured paths ending in "/" (so "/users/" covers
// "/users/{id}/activities"). Returns nil when nothing matches, in which case
// the caller falls back to the default limit.
func MatchEndpoint(path string, method string, configs []EndpointConfig) *EndpointConfig {
	// The health check is never rate limited.
	if path == "/health" && method == "GET" {
		return &EndpointConfig{Limit: 0}
	}

	var prefixMatch *EndpointConfig
	for i := range configs {
		cfg := &configs[i]
		if cfg.Method != method {
			continue
		}
		if cfg.Path == path {
			return cfg
		}
		if prefixMatch == nil && strings.HasSuffix(cfg.Path, "/") && strings.HasPrefix(path, cfg.Path) {
			prefixMatch = cfg
		}
	}

	return prefixMatch
}

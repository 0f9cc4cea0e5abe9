// SPDX-License-Identifier: Apache-2.0

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// The server refuses to start without a token signing key: running without
// one would mean issuing unsigned identity tokens. A missing Last.fm API key
// is NOT fatal here; the search pipeline reports it per call, so deployments
// without search still serve playlists.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return ErrMissingTokenSignKey
	}

	if cfg.App.FuzzyThreshold < 0 || cfg.App.FuzzyThreshold > 1 {
		return ErrInvalidFuzzyThreshold
	}

	return nil
}

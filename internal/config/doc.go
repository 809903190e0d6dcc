// Package config loads and merges go-folio configuration from a .env file,
// environment variables, command-line flags, and an optional JSON file.
//
// The merge order is fixed: env values are read first, flags override them,
// and a JSON file (whose path may itself come from env or flags) is merged
// last for fields still unset. Merging is performed with dario.cat/mergo,
// which only fills zero-valued fields, so earlier sources win.
//
// [GetStructuredConfig] returns the full merged configuration used by the
// server binary; [GetClientConfig] derives the narrower view needed by the
// admin client, applying the local-development defaults (base URL, session
// file, refresh interval) the client is expected to start with.
package config

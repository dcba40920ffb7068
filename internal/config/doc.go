// Package config loads the six-cities client configuration from
// ~/.config/sixcities/config.toml. Every field has a working default, so a
// missing file is normal: base_url points at the hosted backend, the request
// timeout is 5 seconds, and the session token lives next to the config.
package config

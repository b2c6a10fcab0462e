// Package config handles configuration management for promptline.
// It layers the embedded defaults, the user's TOML file and PROMPTLINE_*
// environment variables with koanf, and decodes per-module sections over
// each module's Go defaults.
package config

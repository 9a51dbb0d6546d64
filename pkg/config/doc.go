// Package config loads ipydisplay settings.
//
// Settings are layered with koanf. Later layers override earlier ones:
//
//  1. Built-in defaults (embedded/defaults.toml)
//  2. The user config file, config.toml or config.yaml under
//     $XDG_CONFIG_HOME/ipydisplay
//  3. An explicit file passed with --config
//  4. IPYDISPLAY_* environment variables, where the first underscore after
//     the prefix separates section and key (IPYDISPLAY_FETCH_USER_AGENT sets
//     fetch.user_agent)
//  5. Command-line overrides
package config

// Package config loads the optional operator config file,
// $HOME/.container-runtime/config.yaml, which carries tunables the
// spec's hardcoded defaults don't cover: the fallback default network
// interface and cgroup resource limit overrides.
package config

// Package env resolves environment references against the registry and
// validates environment layouts. A reference is either a bare name, looked
// up across the configured envs directories, or a filesystem path. An
// environment counts as valid when its prefix contains the conda-meta
// marker directory.
package env

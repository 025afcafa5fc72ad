// Package cgroup manages the per-container cgroup (§4.2): v1/v2
// autodetection, hierarchy creation, fixed resource limits, process
// membership, and teardown.
package cgroup

// Package toolexec wraps os/exec invocations of the external tools the
// runtime deliberately does not reimplement — tar, curl, ip, iptables,
// chroot, and the container's own shell. Every invocation logs its
// argv, exit status, and captured stdout/stderr through slog, matching
// the verbosity the original forge-container's run_iptables helper
// applies to every network-tool call.
package toolexec

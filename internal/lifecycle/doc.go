// Package lifecycle implements the double-fork container lifecycle
// engine (§4.4): the host sets up the cgroup and networking
// plumbing around a child process that pivots into its own rootfs and
// execs the container's entrypoint.
//
// Go's runtime cannot safely fork() a multithreaded process — only the
// calling thread survives the fork, while every other goroutine's
// thread disappears out from under the runtime. The idiomatic Go
// substitute, the one libcontainer/runc use, is a self-reexec: instead
// of fork()+exec() inside one process, the host spawns a fresh copy of
// its own binary (via /proc/self/exe) with CLONE_NEWPID|CLONE_NEWNS|
// CLONE_NEWUTS set on the child's SysProcAttr.Cloneflags, and that
// child recognises itself as the container init by inspecting
// os.Args[0]/argv[1] the way Init below does. The child process is
// then free to unshare its own network namespace, join its cgroup,
// pivot its rootfs, and exec the entrypoint — all single-threaded,
// single-process operations Go handles natively.
package lifecycle

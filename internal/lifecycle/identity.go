package lifecycle

// ContainerIdentity is the ephemeral identity of one container
// invocation (§3): it exists only for the lifetime of a single
// build/run, never persisted.
type ContainerIdentity struct {
	Name       string
	RootfsPath string
	CgroupName string
	NetnsPID   int
}

// Config is the runtime configuration applied inside the container,
// mirroring internal/store.ImageConfig without importing it (the
// child process receives this via a serialized handoff file, not a Go
// value, so the two types are kept independent).
type Config struct {
	Entrypoint []string `json:"entrypoint"`
	Env        []string `json:"env"`
	WorkingDir string   `json:"working_dir"`
}

// handoff is the JSON payload written to a temp file and passed to
// the reexec'd init process, since argv is a poor fit for carrying a
// full Config.
type handoff struct {
	RootfsPath string `json:"rootfs_path"`
	CgroupName string `json:"cgroup_name"`
	Config     Config `json:"config"`
}

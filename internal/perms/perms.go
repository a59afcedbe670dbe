// Package perms holds the file and directory modes actuatord creates files with.
package perms

import "os"

const (
	// RegularFile is used for configuration and log files.
	// Mode 0644: owner read/write, group read, others read.
	RegularFile os.FileMode = 0o644

	// RegularDir is used when a parent directory for a log file must be created.
	// Mode 0755: owner read/write/execute, group read/execute, others read/execute.
	RegularDir os.FileMode = 0o755
)

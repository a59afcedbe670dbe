package perms

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCreatedModes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		create   func(path string) error
		expected os.FileMode
	}{
		{
			name: "regular file",
			create: func(path string) error {
				return os.WriteFile(path, []byte("x"), RegularFile)
			},
			expected: 0o644,
		},
		{
			name: "regular directory",
			create: func(path string) error {
				return os.Mkdir(path, RegularDir)
			},
			expected: 0o755,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), "target")
			require.NoError(t, tc.create(path))

			info, err := os.Stat(path)
			require.NoError(t, err)

			// The process umask can only remove bits.
			require.Zero(t, info.Mode().Perm()&^tc.expected)
		})
	}
}

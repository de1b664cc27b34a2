package platform

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDetect(t *testing.T) {
	t.Parallel()

	cases := []struct {
		signal string
		want   Platform
	}{
		{"darwin", Darwin},
		{"darwin23", Darwin},
		{"DARWIN22.6.0", Darwin},
		{"linux", Linux},
		{"linux-gnu", Linux},
		{"linux-musl", Linux},
		{" linux-gnu ", Linux},
		{"windows", Unknown},
		{"msys", Unknown},
		{"freebsd13.2", Unknown},
		{"solaris", Unknown},
		{"", Unknown},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, Detect(tc.signal), "signal %q", tc.signal)
	}
}

func TestInstallPath(t *testing.T) {
	t.Parallel()

	home := "/home/alex"

	p, ok := InstallPath(Darwin, home, "quickdeck")
	require.True(t, ok)
	require.Equal(t, filepath.Join(home, "Applications", "quickdeck"), p)

	p, ok = InstallPath(Linux, home, "quickdeck")
	require.True(t, ok)
	require.Equal(t, filepath.Join(home, ".quickdeck"), p)

	_, ok = InstallPath(Unknown, home, "quickdeck")
	require.False(t, ok)
}

func TestInstallPathDeterministic(t *testing.T) {
	t.Parallel()

	// Same platform and home must always resolve to the same path.
	for i := 0; i < 3; i++ {
		first, _ := InstallPath(Linux, "/home/alex", "quickdeck")
		second, _ := InstallPath(Linux, "/home/alex", "quickdeck")
		require.Equal(t, first, second)
	}
}

func TestString(t *testing.T) {
	t.Parallel()

	require.Equal(t, "macOS", Darwin.String())
	require.Equal(t, "Linux", Linux.String())
	require.Equal(t, "unsupported", Unknown.String())
}

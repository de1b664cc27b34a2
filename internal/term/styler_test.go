package term

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStylerNoColor(t *testing.T) {
	t.Parallel()

	s := NewStyler(Capabilities{IsTTY: true, NoColor: true})
	require.Equal(t, "done", s.Success("done"))
	require.Equal(t, "careful", s.Warn("careful"))
	require.Equal(t, "broken", s.Fail("broken"))
	require.Equal(t, "step 3", s.Accent("step %d", 3))
}

func TestStylerColored(t *testing.T) {
	t.Parallel()

	s := NewStyler(Capabilities{IsTTY: true, NoColor: false})
	out := s.Success("done")
	require.True(t, strings.HasPrefix(out, "\x1b["), "expected ANSI escape, got %q", out)
	require.Contains(t, out, "done")
}

func TestStylerStateless(t *testing.T) {
	t.Parallel()

	// Two stylers built from different descriptors must not influence each
	// other: styling is a pure function of the descriptor.
	plain := NewStyler(Capabilities{NoColor: true})
	colored := NewStyler(Capabilities{IsTTY: true})

	require.Equal(t, "x", plain.Fail("x"))
	require.NotEqual(t, "x", colored.Fail("x"))
	require.Equal(t, "x", plain.Fail("x"))
}

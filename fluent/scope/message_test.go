package scope

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewReason_Empty(t *testing.T) {
	t.Parallel()

	require.Equal(t, "", NewReason().String())
	require.Equal(t, "", NewReason("").String())
	require.Equal(t, "", NewReason("   ").String())
}

func TestReason_Formatting(t *testing.T) {
	t.Parallel()

	require.Equal(t, " because the fixture seeds 3 items",
		NewReason("the fixture seeds %d items", 3).String())
}

func TestReason_ExistingBecausePrefix(t *testing.T) {
	t.Parallel()

	require.Equal(t, " because I said so", NewReason("because I said so").String())
	require.Equal(t, " Because I said so", NewReason("Because I said so").String())
}

func TestReason_NonStringFirstArgument(t *testing.T) {
	t.Parallel()

	require.Equal(t, " because 42 items", NewReason(42, "items").String())
}

func TestExpand(t *testing.T) {
	t.Parallel()

	out := expand("Expected collection {0} to contain {1}{reason}.",
		" because it matters", []string{"[1, 2, 3]", "5"})

	require.Equal(t, "Expected collection [1, 2, 3] to contain 5 because it matters.", out)
}

func TestExpand_ArgumentContainingToken(t *testing.T) {
	t.Parallel()

	// A rendered argument that happens to contain a placeholder token must
	// be emitted verbatim, not substituted again.
	out := expand("Expected collection {0} to contain {1}{reason}.",
		"", []string{`["{1}"]`, `"x"`})

	require.Equal(t, `Expected collection ["{1}"] to contain "x".`, out)
}

func TestExpand_ReasonContainingToken(t *testing.T) {
	t.Parallel()

	out := expand("Expected collection {0} to contain {1}{reason}.",
		" because {0} is special", []string{"[1]", "2"})

	require.Equal(t, "Expected collection [1] to contain 2 because {0} is special.", out)
}

func TestExpand_UnknownTokensLeftVerbatim(t *testing.T) {
	t.Parallel()

	require.Equal(t, "{9} {foo} stays", expand("{9} {foo} stays", "", []string{"a"}))
	require.Equal(t, "dangling {", expand("dangling {", "", nil))
}

func TestExpand_NoReason(t *testing.T) {
	t.Parallel()

	out := expand("Expected collection {0} to contain {1}{reason}.",
		"", []string{"[1, 2, 3]", "5"})

	require.Equal(t, "Expected collection [1, 2, 3] to contain 5.", out)
}

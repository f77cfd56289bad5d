package generator

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExportListOrderAndDuplicates(t *testing.T) {
	t.Parallel()
	exports := &ExportList{}
	require.True(t, exports.Empty())
	exports.Append("schema")
	exports.Append("color", "red")
	exports.Append("color")
	require.False(t, exports.Empty())
	require.Equal(t, []string{"schema", "color", "red", "color"}, exports.Symbols())
}

func TestPackageSet(t *testing.T) {
	t.Parallel()
	packages := NewPackageSet()
	require.Empty(t, packages.Names())

	packages.Add("P")
	packages.Add("FOREIGN.PKG")
	packages.Add("P-RPC")
	packages.Add("P")

	require.True(t, packages.Contains("P"))
	require.False(t, packages.Contains("Q"))
	// Deterministic lexicographic order, duplicates collapsed.
	require.Equal(t, []string{"FOREIGN.PKG", "P", "P-RPC"}, packages.Names())
}

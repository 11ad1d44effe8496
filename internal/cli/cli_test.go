package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/umami-mobile/umark/internal/batch"
)

func TestCommandWiring(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["generate"], "generate subcommand registered")
	assert.True(t, names["preview"], "preview subcommand registered")

	// Bare invocation runs the full batch.
	require.NotNil(t, rootCmd.RunE)
}

func TestGenerateFlagDefaults(t *testing.T) {
	out, err := generateCmd.Flags().GetString("out")
	require.NoError(t, err)
	assert.Equal(t, batch.DefaultDir, out)

	ico, err := generateCmd.Flags().GetBool("ico")
	require.NoError(t, err)
	assert.False(t, ico)
}

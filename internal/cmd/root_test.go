package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandTree(t *testing.T) {
	tests := []struct {
		path []string
	}{
		{[]string{"auth", "register"}},
		{[]string{"auth", "login"}},
		{[]string{"auth", "logout"}},
		{[]string{"auth", "whoami"}},
		{[]string{"profile", "show"}},
		{[]string{"profile", "update"}},
		{[]string{"todo", "list"}},
		{[]string{"todo", "show"}},
		{[]string{"todo", "add"}},
		{[]string{"todo", "toggle"}},
		{[]string{"todo", "rm"}},
		{[]string{"todo", "comment"}},
		{[]string{"todo", "uncomment"}},
		{[]string{"ticket", "list"}},
		{[]string{"ticket", "show"}},
		{[]string{"ticket", "add"}},
		{[]string{"ticket", "status"}},
		{[]string{"ticket", "rm"}},
		{[]string{"ticket", "comment"}},
		{[]string{"ticket", "clients"}},
		{[]string{"track"}},
		{[]string{"dashboard"}},
		{[]string{"analytics"}},
		{[]string{"activity"}},
		{[]string{"ai", "suggest"}},
		{[]string{"ai", "analyze"}},
		{[]string{"ai", "plan"}},
		{[]string{"ai", "optimize"}},
		{[]string{"ai", "smart"}},
		{[]string{"export"}},
		{[]string{"completion"}},
		{[]string{"version"}},
	}

	for _, tt := range tests {
		found, rest, err := rootCmd.Find(tt.path)
		require.NoError(t, err, "%v", tt.path)
		assert.Empty(t, rest, "%v", tt.path)
		assert.Equal(t, tt.path[len(tt.path)-1], found.Name(), "%v", tt.path)
	}
}

func TestAliases(t *testing.T) {
	found, _, err := rootCmd.Find([]string{"todos", "ls"})
	require.NoError(t, err)
	assert.Equal(t, "list", found.Name())

	found, _, err = rootCmd.Find([]string{"auth", "me"})
	require.NoError(t, err)
	assert.Equal(t, "whoami", found.Name())
}

func TestPersistentFlags(t *testing.T) {
	for _, name := range []string{"verbose", "config", "output"} {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(name), name)
	}
	assert.Equal(t, "text", rootCmd.PersistentFlags().Lookup("output").DefValue)
}

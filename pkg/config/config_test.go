package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestInitWithCustomPath validates custom config path
func TestInitWithCustomPath(t *testing.T) {
	tempDir := t.TempDir()
	customConfigPath := filepath.Join(tempDir, "custom", "path", "config.toml")

	require.NoError(t, Init(customConfigPath))

	assert.Equal(t, filepath.Join(tempDir, "custom", "path"), GetConfigDir())
	assert.Equal(t, customConfigPath, GetConfigFilePath())

	info, err := os.Stat(GetConfigDir())
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestInitWithoutPathHonoursXDG(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tempDir)

	require.NoError(t, Init(""))
	assert.Equal(t, filepath.Join(tempDir, "streamline"), GetConfigDir())
}

func TestDefaults(t *testing.T) {
	require.NoError(t, Init(filepath.Join(t.TempDir(), "config.toml")))

	assert.Equal(t, "http://localhost:5000/api", GetString("api.base_url"))
	assert.Equal(t, 30, GetInt("api.timeout"))
	assert.Equal(t, "text", GetString("output.format"))
	assert.Equal(t, "info", GetString("log.level"))
	assert.Equal(t, 10, GetInt("dashboard.feed_size"))
	assert.Equal(t, 5, GetInt("dashboard.recent_todos"))
	assert.Equal(t, 5, GetInt("dashboard.recent_tickets"))
	assert.Equal(t, 20, GetInt("activities.limit"))
	assert.False(t, GetBool("some.bool.key"))

	assert.True(t, filepath.IsAbs(GetString("output.download_dir")))
}

func TestUserConfigOverridesDefaults(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")
	body := "[api]\nbase_url = \"https://tasks.example.com/api\"\ntimeout = 5\n"
	require.NoError(t, os.WriteFile(configPath, []byte(body), 0600))

	require.NoError(t, Init(configPath))

	assert.Equal(t, "https://tasks.example.com/api", GetString("api.base_url"))
	assert.Equal(t, 5, GetInt("api.timeout"))
	assert.Equal(t, "text", GetString("output.format"))
}

func TestEnvironmentOverridesConfig(t *testing.T) {
	t.Setenv("STREAMLINE_API_BASE_URL", "http://env.example.com/api")

	require.NoError(t, Init(filepath.Join(t.TempDir(), "config.toml")))
	assert.Equal(t, "http://env.example.com/api", GetString("api.base_url"))
}

func TestInitRejectsBrokenConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(configPath, []byte("[api\nbase_url ="), 0600))

	assert.Error(t, Init(configPath))
}

// TestCredentialsPathStructure validates credentials path structure
func TestCredentialsPathStructure(t *testing.T) {
	tempDir := t.TempDir()
	require.NoError(t, Init(filepath.Join(tempDir, "config.toml")))

	credsPath := GetCredentialsPath()
	assert.True(t, filepath.IsAbs(credsPath))
	assert.Equal(t, filepath.Join(GetConfigDir(), "credentials.json"), credsPath)
}

func TestSetStringPersists(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, Init(configPath))

	require.NoError(t, SetString("output.format", "json"))
	assert.Equal(t, "json", GetString("output.format"))

	require.NoError(t, Init(configPath))
	assert.Equal(t, "json", GetString("output.format"))
}

func TestSetDoesNotPersist(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, Init(configPath))

	Set("output.format", "table")
	assert.Equal(t, "table", GetString("output.format"))

	_, err := os.Stat(configPath)
	assert.True(t, os.IsNotExist(err))
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, "Downloads"), expandPath("~/Downloads"))
	assert.Equal(t, "/tmp/x", expandPath("/tmp/x"))
	assert.Equal(t, "", expandPath(""))
}

package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRootFlags(t *testing.T) {
	t.Cleanup(func() { syncCommands, configPath = false, "config.toml" })

	require.NoError(t, rootCmd.ParseFlags([]string{"--sync-commands", "--config", "custom.toml"}))
	require.True(t, syncCommands)
	require.Equal(t, "custom.toml", configPath)
}

func TestSubcommandsRegistered(t *testing.T) {
	for _, name := range []string{"migrate", "backup"} {
		sub, _, err := rootCmd.Find([]string{name})
		require.NoError(t, err)
		require.Equal(t, name, sub.Name())
	}
}

func TestMigrateCreatesSchema(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.toml")
	require.NoError(t, writeFile(cfgPath, "[db]\ndriver = \"sqlite\"\npath = \""+filepath.ToSlash(filepath.Join(dir, "quiz.db"))+"\"\n"))
	t.Cleanup(func() { configPath = "config.toml" })

	rootCmd.SetArgs([]string{"migrate", "--config", cfgPath})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })
	require.NoError(t, rootCmd.Execute())
	require.FileExists(t, filepath.Join(dir, "quiz.db"))
}

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o600)
}

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetFlags restores the root flag variables after a test mutates them.
func resetFlags(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		configPath = ""
		catalogPath = ""
		skillTarget = 0
	})
	configPath = ""
	catalogPath = ""
	skillTarget = 0
	t.Setenv("SKILL_CATALOG", "")
}

// writeTestConfig writes a catalog CSV and a JSON config file pointing at it,
// returning both paths.
func writeTestConfig(t *testing.T) (cfgFile, catalogFile string) {
	t.Helper()
	dir := t.TempDir()

	catalogFile = filepath.Join(dir, "skills.csv")
	require.NoError(t, os.WriteFile(catalogFile, []byte("skill,category,weight\nGo,programming,0.9\n"), 0644))

	cfgFile = filepath.Join(dir, "config.json")
	body := fmt.Sprintf(`{"catalog": %q, "port": 9090, "skill_target": 15}`, catalogFile)
	require.NoError(t, os.WriteFile(cfgFile, []byte(body), 0644))
	return cfgFile, catalogFile
}

func TestLoadSettingsBuiltinDefaults(t *testing.T) {
	resetFlags(t)

	settings, err := loadSettings()
	require.NoError(t, err)
	assert.Equal(t, "data/skills.csv", settings.Catalog)
	assert.Equal(t, 8080, settings.Port)
	assert.Equal(t, 0, settings.SkillTarget)
}

func TestLoadSettingsConfigFileFillsUnsetFlags(t *testing.T) {
	resetFlags(t)
	cfgFile, catalogFile := writeTestConfig(t)
	configPath = cfgFile

	settings, err := loadSettings()
	require.NoError(t, err)
	assert.Equal(t, catalogFile, settings.Catalog)
	assert.Equal(t, 9090, settings.Port)
	assert.Equal(t, 15, settings.SkillTarget)
}

func TestLoadSettingsFlagsWinOverConfigFile(t *testing.T) {
	resetFlags(t)
	cfgFile, _ := writeTestConfig(t)
	configPath = cfgFile
	catalogPath = "flag/skills.csv"
	skillTarget = 3

	settings, err := loadSettings()
	require.NoError(t, err)
	assert.Equal(t, "flag/skills.csv", settings.Catalog)
	assert.Equal(t, 3, settings.SkillTarget)
	assert.Equal(t, 9090, settings.Port, "port has no flag here, so the file value holds")
}

func TestLoadSettingsEnvCatalogWhenNoFlagOrFile(t *testing.T) {
	resetFlags(t)
	t.Setenv("SKILL_CATALOG", "env/skills.csv")

	settings, err := loadSettings()
	require.NoError(t, err)
	assert.Equal(t, "env/skills.csv", settings.Catalog)
}

func TestLoadSettingsRejectsInvalidConfig(t *testing.T) {
	resetFlags(t)
	dir := t.TempDir()
	cfgFile := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(cfgFile, []byte(`{"port": 70000}`), 0644))
	configPath = cfgFile

	_, err := loadSettings()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "port")
}

func TestNewAnalyzerUsesConfiguredCatalog(t *testing.T) {
	resetFlags(t)
	cfgFile, _ := writeTestConfig(t)
	configPath = cfgFile

	a, settings, err := newAnalyzer()
	require.NoError(t, err)
	assert.Equal(t, 1, a.Catalog().Len())
	assert.Equal(t, 15, settings.SkillTarget)
}

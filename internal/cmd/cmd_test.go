package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "atelier version dev")
}

func TestClassifyColor(t *testing.T) {
	out, err := execute(t, "classify-color", "#fafafa", "000080", "zz")
	require.NoError(t, err)
	assert.Contains(t, out, "#FAFAFA\tWhites\n")
	assert.Contains(t, out, "#000080\tLights/Colors\n")
	assert.Contains(t, out, "zz\tLights/Colors\t(malformed, treated as gray)\n")
}

func TestNormalize(t *testing.T) {
	out, err := execute(t, "normalize", "30C", "DN_wash", "steam", "30C")
	require.NoError(t, err)
	assert.Contains(t, out, "machine_wash_cold\t")
	assert.Contains(t, out, "do_not_machine_wash\t")
	assert.Contains(t, out, "unmapped: steam\n")
}

func TestPlan(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garments.json")
	require.NoError(t, os.WriteFile(path, []byte(`[
		{"name": "Towel", "color": "#FFFFFF", "category": "other", "subCategory": "None",
		 "composition": [{"fabric": "Cotton", "percentage": 100}], "careSymbols": ["machine_wash_very_hot"]},
		{"name": "Silk blouse", "color": "#F0E0D0", "category": "top", "subCategory": "Blouses",
		 "composition": [{"fabric": "Silk", "percentage": 100}], "careSymbols": ["hand_wash"]},
		{"name": "Lace bra", "color": "#000000", "category": "lingerie", "subCategory": "Bras",
		 "careSymbols": ["machine_wash_delicate"]}
	]`), 0o600))

	out, err := execute(t, "plan", "--initial-temp", "90", "--default-temp", "40", path)
	require.NoError(t, err)
	assert.Contains(t, out, "White & Hot")
	assert.Contains(t, out, "90°C")
	assert.Contains(t, out, "Silk blouse, Lace bra")
	assert.Contains(t, out, "30°C")
	assert.Contains(t, out, "Delicates / Wool")
	assert.Contains(t, out, "Use mesh bag")
}

func TestPlan_InvalidGarment(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garments.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"name": "Mystery", "color": "nope", "category": "top", "subCategory": "Shirts"}]`), 0o600))

	_, err := execute(t, "plan", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "garment 1 (Mystery)")
}

func TestPlan_MissingFile(t *testing.T) {
	_, err := execute(t, "plan", filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}

func TestServe_RequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("DATABASE_PATH", filepath.Join(t.TempDir(), "serve.db"))

	_, err := execute(t, "serve", "--config", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET is required")
}

func TestMigrate(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "closet.db")
	t.Cleanup(func() { migrateStatus = false })

	out, err := execute(t, "migrate", "--database", dbPath, "--status")
	require.NoError(t, err)
	assert.Contains(t, out, "pending\t001_closet.sql")

	migrateStatus = false
	out, err = execute(t, "migrate", "--database", dbPath)
	require.NoError(t, err)
	assert.Contains(t, out, "applied 1 migration(s)")

	out, err = execute(t, "migrate", "--database", dbPath, "--status")
	require.NoError(t, err)
	assert.Contains(t, out, "schema is up to date")
}

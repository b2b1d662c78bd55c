package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// unsetEnv clears keys for the test and restores them afterwards.
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	r := require.New(t)
	home := t.TempDir()
	unsetEnv(t, "MLSBRIDGE_STORE", "MLSBRIDGE_PASSPHRASE", "MLSBRIDGE_LOG_LEVEL",
		"MLSBRIDGE_KP_CACHE", "MLSBRIDGE_DEFER_MERGE")
	t.Setenv("MLSBRIDGE_HOME", home)

	cfg, err := LoadConfig()
	r.NoError(err)
	r.Equal(home, cfg.Home)
	r.Equal(StoreFile, cfg.Store)
	r.Equal(256, cfg.KeyPackageCache)
	r.False(cfg.DeferMerge)
}

func TestLoadConfig_Dotenv(t *testing.T) {
	r := require.New(t)
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	r.NoError(os.WriteFile(path, []byte("MLSBRIDGE_STORE=sqlite\nMLSBRIDGE_DEFER_MERGE=true\n"), 0o600))
	// godotenv never overrides variables that are already set.
	unsetEnv(t, "MLSBRIDGE_STORE", "MLSBRIDGE_PASSPHRASE", "MLSBRIDGE_LOG_LEVEL",
		"MLSBRIDGE_KP_CACHE", "MLSBRIDGE_DEFER_MERGE")
	t.Setenv("MLSBRIDGE_HOME", dir)

	cfg, err := LoadConfig(path, filepath.Join(dir, "missing.env"))
	r.NoError(err)
	r.Equal(StoreSQLite, cfg.Store)
	r.True(cfg.DeferMerge)
}

func TestConfig_Validate(t *testing.T) {
	cases := []struct {
		name string
		cfg  Config
		ok   bool
	}{
		{"memory without home", Config{Store: StoreMemory}, true},
		{"file without home", Config{Store: StoreFile}, false},
		{"unknown store", Config{Store: "etcd", Home: "/tmp/x"}, false},
		{"negative cache", Config{Store: StoreMemory, KeyPackageCache: -1}, false},
		{"strong passphrase", Config{Store: StoreMemory, Passphrase: "Tr0ub4dor&3-horse"}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.ok {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
			}
		})
	}
}

func TestConfig_WeakPassphrase(t *testing.T) {
	err := Config{Store: StoreMemory, Passphrase: "password"}.Validate()
	require.ErrorIs(t, err, ErrWeakPassphrase)
}

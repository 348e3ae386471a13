package root

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/PxGnome/hyperlane-interpreter/domains"
	"github.com/PxGnome/hyperlane-interpreter/router"
	"github.com/stretchr/testify/require"
	"github.com/umbracle/ethgo"
)

func execute(t *testing.T, args ...string) (string, string) {
	t.Helper()

	var stdout, stderr bytes.Buffer

	rc := NewRootCommand()
	rc.baseCmd.SetOut(&stdout)
	rc.baseCmd.SetErr(&stderr)
	rc.baseCmd.SetArgs(args)

	require.NoError(t, rc.baseCmd.Execute())

	return stdout.String(), stderr.String()
}

func TestVersionCommand_JSON(t *testing.T) {
	stdout, _ := execute(t, "version", "--json")

	var res struct {
		Version  string   `json:"version"`
		Networks int      `json:"networks"`
		Groups   []string `json:"groups"`
	}

	require.NoError(t, json.Unmarshal([]byte(stdout), &res))
	require.NotEmpty(t, res.Version)
	require.Positive(t, res.Networks)
	require.NotEmpty(t, res.Groups)
}

func TestStatusCommand(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "state.db")

	store, err := router.NewBoltStore(dbPath)
	require.NoError(t, err)

	instance := router.NewRouterInstance(ethgo.HexToAddress("0xdddd"),
		domains.NetworkIdentity{Name: "sepolia", PrimaryDomainID: 10161, SecondaryDomainID: 11155111})
	instance.Initialized = true
	instance.MappedDomains[80001] = true

	require.NoError(t, store.Put(instance))
	require.NoError(t, store.Close())

	cfgPath := filepath.Join(dir, "lzrouter.json")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`{"state_db": "`+dbPath+`"}`), 0600))

	stdout, _ := execute(t, "lzrouter", "status", instance.Address.String(),
		"--config", cfgPath, "--network", "sepolia", "--json")

	var res map[string]interface{}

	require.NoError(t, json.Unmarshal([]byte(stdout), &res))
	require.Equal(t, "mapped", res["stage"])
	require.Equal(t, "sepolia", res["network"])
	require.Equal(t, instance.Address.String(), res["address"])
}

func TestStatusCommand_UnknownHost(t *testing.T) {
	_, stderr := execute(t, "lzrouter", "status", "0xDddD17bDeF830103846f89cF61d362A689195c29",
		"--network", "atlantis", "--json")

	require.Contains(t, stderr, "unknown network")
}

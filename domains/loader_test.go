package domains

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	return path
}

func TestDefaultRegistry(t *testing.T) {
	t.Parallel()

	r, err := DefaultRegistry()
	require.NoError(t, err)

	sepolia, err := r.Resolve("sepolia")
	require.NoError(t, err)
	assert.Equal(t, uint16(10161), sepolia.PrimaryDomainID)
	assert.Equal(t, uint32(11155111), sepolia.SecondaryDomainID)

	testnet, err := r.ResolveGroup("testnet")
	require.NoError(t, err)
	require.NotEmpty(t, testnet)
	assert.Equal(t, "sepolia", testnet[0].Name)
	assert.Equal(t, "mumbai", testnet[1].Name)

	_, err = r.ResolveGroup("mainnet")
	require.NoError(t, err)
}

func TestDecodeJSONRegistry_Flat(t *testing.T) {
	t.Parallel()

	r, err := DecodeJSONRegistry([]byte(`{
		"sepolia": {"layerzero": 10161, "hyperlane": 11155111},
		"mumbai": {"layerzero": 10109, "hyperlane": 80001},
		"testnet": ["sepolia", "mumbai"]
	}`))
	require.NoError(t, err)

	group, err := r.ResolveGroup("testnet")
	require.NoError(t, err)
	require.Len(t, group, 2)
	assert.Equal(t, uint32(80001), group[1].SecondaryDomainID)
}

func TestDecodeJSONRegistry_Invalid(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		input    string
		contains string
	}{
		{
			name:     "ScalarValue",
			input:    `{"sepolia": 5}`,
			contains: `key "sepolia" is neither a network nor a group`,
		},
		{
			name:     "PrimaryOutOfRange",
			input:    `{"sepolia": {"layerzero": 70000, "hyperlane": 11155111}}`,
			contains: "does not fit in 16 bits",
		},
		{
			name:     "NegativeSecondary",
			input:    `{"sepolia": {"layerzero": 10161, "hyperlane": -1}}`,
			contains: "must not be negative",
		},
		{
			name:     "UnknownMember",
			input:    `{"sepolia": {"layerzero": 10161, "hyperlane": 11155111}, "testnet": ["sepolia", "mumbai"]}`,
			contains: `group "testnet": unknown network: "mumbai"`,
		},
		{
			name:     "NotJSON",
			input:    `sepolia`,
			contains: "failed to decode domain registry",
		},
	}

	for _, c := range cases {
		c := c

		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			_, err := DecodeJSONRegistry([]byte(c.input))
			require.ErrorContains(t, err, c.contains)
		})
	}
}

func TestReadRegistryFile(t *testing.T) {
	t.Parallel()

	t.Run("StructuredJSON", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "domains.json", `{
			"networks": {
				"sepolia": {"layerzero": 10161, "hyperlane": 11155111},
				"mumbai": {"layerzero": 10109, "hyperlane": 80001}
			},
			"groups": {"testnet": ["mumbai", "sepolia"]}
		}`)

		r, err := ReadRegistryFile(path)
		require.NoError(t, err)

		group, err := r.ResolveGroup("testnet")
		require.NoError(t, err)
		assert.Equal(t, "mumbai", group[0].Name)
		assert.Equal(t, "sepolia", group[1].Name)
	})

	t.Run("YAML", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "domains.yaml", `
networks:
  sepolia:
    layerzero: 10161
    hyperlane: 11155111
  mumbai:
    layerzero: 10109
    hyperlane: 80001
groups:
  testnet:
    - sepolia
    - mumbai
`)

		r, err := ReadRegistryFile(path)
		require.NoError(t, err)

		mumbai, err := r.Resolve("mumbai")
		require.NoError(t, err)
		assert.Equal(t, uint16(10109), mumbai.PrimaryDomainID)
	})

	t.Run("TOML", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "domains.toml", `
[groups]
testnet = ["sepolia", "mumbai"]

[networks.sepolia]
layerzero = 10161
hyperlane = 11155111

[networks.mumbai]
layerzero = 10109
hyperlane = 80001
`)

		r, err := ReadRegistryFile(path)
		require.NoError(t, err)

		group, err := r.ResolveGroup("testnet")
		require.NoError(t, err)
		require.Len(t, group, 2)
	})

	t.Run("HCL", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "domains.hcl", `
networks {
  sepolia {
    layerzero = 10161
    hyperlane = 11155111
  }

  mumbai {
    layerzero = 10109
    hyperlane = 80001
  }
}

groups {
  testnet = ["sepolia", "mumbai"]
}
`)

		r, err := ReadRegistryFile(path)
		require.NoError(t, err)

		group, err := r.ResolveGroup("testnet")
		require.NoError(t, err)
		require.Len(t, group, 2)
		assert.Equal(t, NetworkIdentity{Name: "sepolia", PrimaryDomainID: 10161, SecondaryDomainID: 11155111}, group[0])
		assert.Equal(t, NetworkIdentity{Name: "mumbai", PrimaryDomainID: 10109, SecondaryDomainID: 80001}, group[1])
	})

	t.Run("HCLInvalidIDs", func(t *testing.T) {
		t.Parallel()

		cases := map[string]struct {
			body     string
			contains string
		}{
			"NegativePrimary": {
				"layerzero = -1\n    hyperlane = 11155111", "must not be negative",
			},
			"NegativeSecondary": {
				"layerzero = 10161\n    hyperlane = -5", "must not be negative",
			},
			"PrimaryOutOfRange": {
				"layerzero = 65536\n    hyperlane = 11155111", "does not fit in 16 bits",
			},
			"SecondaryOutOfRange": {
				"layerzero = 10161\n    hyperlane = 4294967296", "does not fit in 32 bits",
			},
		}

		for name, c := range cases {
			c := c

			t.Run(name, func(t *testing.T) {
				t.Parallel()

				path := writeFile(t, "domains.hcl",
					"networks {\n  sepolia {\n    "+c.body+"\n  }\n}\n\ngroups {\n  testnet = [\"sepolia\"]\n}\n")

				_, err := ReadRegistryFile(path)
				require.ErrorContains(t, err, c.contains)
			})
		}
	})

	t.Run("UnsupportedSuffix", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "domains.txt", "")

		_, err := ReadRegistryFile(path)
		require.ErrorContains(t, err, "neither json, hcl, yaml, yml nor toml")
	})

	t.Run("MissingFile", func(t *testing.T) {
		t.Parallel()

		_, err := ReadRegistryFile(filepath.Join(t.TempDir(), "missing.json"))
		require.ErrorContains(t, err, "failed to read domain registry")
	})
}

package domains

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/hashicorp/go-multierror"
	"github.com/hashicorp/hcl"
	"gopkg.in/yaml.v3"
)

//go:embed data/*
var defaultData embed.FS

const defaultRegistryFile = "data/domains.json"

// networkEntry is the on-disk representation of a network.
// Identifiers are read as signed 64-bit integers (hcl decodes no unsigned kinds)
// so negative and out of range values can be reported.
type networkEntry struct {
	LayerZero int64 `json:"layerzero" yaml:"layerzero" hcl:"layerzero" toml:"layerzero"`
	Hyperlane int64 `json:"hyperlane" yaml:"hyperlane" hcl:"hyperlane" toml:"hyperlane"`
}

// registryFile is the structured layout:
//
//	networks:
//	  sepolia: {layerzero: 10161, hyperlane: 11155111}
//	groups:
//	  testnet: [sepolia, mumbai]
type registryFile struct {
	Networks map[string]networkEntry `json:"networks" yaml:"networks" hcl:"networks" toml:"networks"`
	Groups   map[string][]string     `json:"groups" yaml:"groups" hcl:"groups" toml:"groups"`
}

// DefaultRegistry returns the registry embedded in the binary (mainnet and testnet cohorts)
func DefaultRegistry() (*Registry, error) {
	data, err := defaultData.ReadFile(defaultRegistryFile)
	if err != nil {
		return nil, err
	}

	return DecodeJSONRegistry(data)
}

// ReadRegistryFile reads the domain registry from the specified path.
//
// Supported file types: .json, .hcl, .yaml, .yml, .toml
func ReadRegistryFile(path string) (*Registry, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read domain registry '%s': %w", path, err)
	}

	var unmarshalFunc func([]byte, interface{}) error

	switch {
	case strings.HasSuffix(path, ".json"):
		return DecodeJSONRegistry(data)
	case strings.HasSuffix(path, ".hcl"):
		unmarshalFunc = hcl.Unmarshal
	case strings.HasSuffix(path, ".yaml"), strings.HasSuffix(path, ".yml"):
		unmarshalFunc = yaml.Unmarshal
	case strings.HasSuffix(path, ".toml"):
		unmarshalFunc = toml.Unmarshal
	default:
		return nil, fmt.Errorf("suffix of %s is neither json, hcl, yaml, yml nor toml", path)
	}

	file := &registryFile{}
	if err := unmarshalFunc(data, file); err != nil {
		return nil, fmt.Errorf("failed to decode domain registry '%s': %w", path, err)
	}

	return file.build()
}

// DecodeJSONRegistry decodes a JSON registry. Both the structured layout and the flat
// layout are accepted. In the flat layout every top-level key is either a network
// ({"layerzero": .., "hyperlane": ..}) or a group (array of network names).
func DecodeJSONRegistry(data []byte) (*Registry, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		return nil, fmt.Errorf("failed to decode domain registry: %w", err)
	}

	if _, structured := top["networks"]; structured {
		file := &registryFile{}
		if err := json.Unmarshal(data, file); err != nil {
			return nil, fmt.Errorf("failed to decode domain registry: %w", err)
		}

		return file.build()
	}

	var errs *multierror.Error

	file := &registryFile{
		Networks: make(map[string]networkEntry),
		Groups:   make(map[string][]string),
	}

	for key, raw := range top {
		raw = bytes.TrimSpace(raw)

		switch {
		case len(raw) > 0 && raw[0] == '[':
			var members []string
			if err := json.Unmarshal(raw, &members); err != nil {
				errs = multierror.Append(errs, fmt.Errorf("group %q: %w", key, err))

				continue
			}

			file.Groups[key] = members
		case len(raw) > 0 && raw[0] == '{':
			var entry networkEntry
			if err := json.Unmarshal(raw, &entry); err != nil {
				errs = multierror.Append(errs, fmt.Errorf("network %q: %w", key, err))

				continue
			}

			file.Networks[key] = entry
		default:
			errs = multierror.Append(errs, fmt.Errorf("key %q is neither a network nor a group", key))
		}
	}

	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}

	return file.build()
}

func (f *registryFile) build() (*Registry, error) {
	var errs *multierror.Error

	names := make([]string, 0, len(f.Networks))
	for name := range f.Networks {
		names = append(names, name)
	}

	sort.Strings(names)

	networks := make([]NetworkIdentity, 0, len(names))

	for _, name := range names {
		entry := f.Networks[name]

		if entry.LayerZero < 0 || entry.Hyperlane < 0 {
			errs = multierror.Append(errs,
				fmt.Errorf("network %q: domain ids must not be negative (layerzero %d, hyperlane %d)",
					name, entry.LayerZero, entry.Hyperlane))

			continue
		}

		if entry.LayerZero > math.MaxUint16 {
			errs = multierror.Append(errs,
				fmt.Errorf("network %q: layerzero id %d does not fit in 16 bits", name, entry.LayerZero))

			continue
		}

		if entry.Hyperlane > math.MaxUint32 {
			errs = multierror.Append(errs,
				fmt.Errorf("network %q: hyperlane id %d does not fit in 32 bits", name, entry.Hyperlane))

			continue
		}

		networks = append(networks, NetworkIdentity{
			Name:              name,
			PrimaryDomainID:   uint16(entry.LayerZero),
			SecondaryDomainID: uint32(entry.Hyperlane),
		})
	}

	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}

	return NewRegistry(networks, f.Groups)
}

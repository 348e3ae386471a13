package addressbook

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/hashicorp/go-multierror"
	"github.com/hashicorp/hcl"
	"github.com/umbracle/ethgo"
	"gopkg.in/yaml.v3"
)

// ErrUnknownHost is returned when the address book has no entry for a host network
var ErrUnknownHost = errors.New("no transport addresses for host network")

// TransportAddresses are the local messaging transport contracts a router is wired to
type TransportAddresses struct {
	Mailbox ethgo.Address `json:"mailbox"`
	IGP     ethgo.Address `json:"igp"`
	ISM     ethgo.Address `json:"ism"`
}

type rawEntry struct {
	Mailbox string `json:"mailbox" yaml:"mailbox" hcl:"mailbox" toml:"mailbox"`
	IGP     string `json:"igp" yaml:"igp" hcl:"igp" toml:"igp"`
	ISM     string `json:"ism" yaml:"ism" hcl:"ism" toml:"ism"`
}

// AddressBook maps a host network name to its transport addresses. Read-only after load.
type AddressBook struct {
	entries map[string]TransportAddresses
}

// New builds an address book out of already parsed entries
func New(entries map[string]TransportAddresses) (*AddressBook, error) {
	var errs *multierror.Error

	book := &AddressBook{entries: make(map[string]TransportAddresses, len(entries))}

	for _, network := range sortedKeys(entries) {
		addrs := entries[network]

		for _, field := range []struct {
			name string
			addr ethgo.Address
		}{
			{"mailbox", addrs.Mailbox},
			{"igp", addrs.IGP},
			{"ism", addrs.ISM},
		} {
			if field.addr == ethgo.ZeroAddress {
				errs = multierror.Append(errs, fmt.Errorf("network %q: %s address is zero", network, field.name))
			}
		}

		book.entries[network] = addrs
	}

	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}

	return book, nil
}

// Lookup returns the transport addresses of the given host network
func (b *AddressBook) Lookup(network string) (TransportAddresses, error) {
	addrs, ok := b.entries[network]
	if !ok {
		return TransportAddresses{}, fmt.Errorf("%w: %q", ErrUnknownHost, network)
	}

	return addrs, nil
}

// Networks returns every host network present in the book, sorted
func (b *AddressBook) Networks() []string {
	return sortedKeys(b.entries)
}

// ReadFile loads the address book from the specified path.
//
// Supported file types: .json, .hcl, .yaml, .yml, .toml
func ReadFile(path string) (*AddressBook, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read address book '%s': %w", path, err)
	}

	var unmarshalFunc func([]byte, interface{}) error

	switch {
	case strings.HasSuffix(path, ".json"):
		unmarshalFunc = json.Unmarshal
	case strings.HasSuffix(path, ".hcl"):
		unmarshalFunc = hcl.Unmarshal
	case strings.HasSuffix(path, ".yaml"), strings.HasSuffix(path, ".yml"):
		unmarshalFunc = yaml.Unmarshal
	case strings.HasSuffix(path, ".toml"):
		unmarshalFunc = toml.Unmarshal
	default:
		return nil, fmt.Errorf("suffix of %s is neither json, hcl, yaml, yml nor toml", path)
	}

	raw := map[string]rawEntry{}
	if err := unmarshalFunc(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode address book '%s': %w", path, err)
	}

	return fromRaw(raw)
}

func fromRaw(raw map[string]rawEntry) (*AddressBook, error) {
	var errs *multierror.Error

	entries := make(map[string]TransportAddresses, len(raw))

	for _, network := range sortedKeys(raw) {
		entry := raw[network]

		mailbox, err := ParseAddress(entry.Mailbox)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("network %q: mailbox: %w", network, err))
		}

		igp, err := ParseAddress(entry.IGP)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("network %q: igp: %w", network, err))
		}

		ism, err := ParseAddress(entry.ISM)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("network %q: ism: %w", network, err))
		}

		entries[network] = TransportAddresses{Mailbox: mailbox, IGP: igp, ISM: ism}
	}

	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}

	return New(entries)
}

// ParseAddress strictly parses a 0x prefixed, 20 byte hex address
// (unlike ethgo.HexToAddress, which pads or truncates malformed input)
func ParseAddress(str string) (ethgo.Address, error) {
	if !strings.HasPrefix(str, "0x") && !strings.HasPrefix(str, "0X") {
		return ethgo.ZeroAddress, fmt.Errorf("address %q is missing 0x prefix", str)
	}

	buf, err := hex.DecodeString(str[2:])
	if err != nil {
		return ethgo.ZeroAddress, fmt.Errorf("address %q is not valid hex: %w", str, err)
	}

	if len(buf) != len(ethgo.Address{}) {
		return ethgo.ZeroAddress, fmt.Errorf("address %q has %d bytes, expected 20", str, len(buf))
	}

	var addr ethgo.Address

	copy(addr[:], buf)

	return addr, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}

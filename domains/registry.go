package domains

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrUnknownNetwork is returned when a network name is not present in the registry
	ErrUnknownNetwork = errors.New("unknown network")
	// ErrUnknownGroup is returned when a group name is not present in the registry
	ErrUnknownGroup = errors.New("unknown group")
)

// NetworkIdentity identifies a single chain in both messaging namespaces.
// PrimaryDomainID lives in the LayerZero chain id space,
// SecondaryDomainID lives in the Hyperlane domain space.
type NetworkIdentity struct {
	Name              string `json:"name"`
	PrimaryDomainID   uint16 `json:"primaryDomainId"`
	SecondaryDomainID uint32 `json:"secondaryDomainId"`
}

func (n NetworkIdentity) String() string {
	return fmt.Sprintf("%s (primary=%d, secondary=%d)", n.Name, n.PrimaryDomainID, n.SecondaryDomainID)
}

// Registry is the read-only lookup table of known networks and deployment cohorts.
// It is built once (see NewRegistry and the loaders) and never mutated afterwards,
// so it is safe to share between goroutines.
type Registry struct {
	networks    map[string]NetworkIdentity
	groups      map[string][]string
	byPrimary   map[uint16]string
	bySecondary map[uint32]string
}

// NewRegistry validates the provided reference data and builds a registry out of it.
// Group member order is preserved as given.
func NewRegistry(networks []NetworkIdentity, groups map[string][]string) (*Registry, error) {
	if err := validate(networks, groups); err != nil {
		return nil, err
	}

	r := &Registry{
		networks:    make(map[string]NetworkIdentity, len(networks)),
		groups:      make(map[string][]string, len(groups)),
		byPrimary:   make(map[uint16]string, len(networks)),
		bySecondary: make(map[uint32]string, len(networks)),
	}

	for _, n := range networks {
		r.networks[n.Name] = n
		r.byPrimary[n.PrimaryDomainID] = n.Name
		r.bySecondary[n.SecondaryDomainID] = n.Name
	}

	for name, members := range groups {
		r.groups[name] = append([]string(nil), members...)
	}

	return r, nil
}

// Resolve returns the identity registered under the given network name
func (r *Registry) Resolve(networkName string) (NetworkIdentity, error) {
	n, ok := r.networks[networkName]
	if !ok {
		return NetworkIdentity{}, fmt.Errorf("%w: %q", ErrUnknownNetwork, networkName)
	}

	return n, nil
}

// ResolveGroup returns the ordered members of the given group.
// Either every member resolves or an error is returned, a partial group is never returned.
func (r *Registry) ResolveGroup(groupName string) ([]NetworkIdentity, error) {
	members, ok := r.groups[groupName]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownGroup, groupName)
	}

	result := make([]NetworkIdentity, 0, len(members))

	for _, member := range members {
		n, err := r.Resolve(member)
		if err != nil {
			return nil, fmt.Errorf("group %q: %w", groupName, err)
		}

		result = append(result, n)
	}

	return result, nil
}

// ByPrimary does the reverse lookup from a primary namespace identifier
func (r *Registry) ByPrimary(id uint16) (NetworkIdentity, error) {
	name, ok := r.byPrimary[id]
	if !ok {
		return NetworkIdentity{}, fmt.Errorf("%w: primary domain id %d", ErrUnknownNetwork, id)
	}

	return r.networks[name], nil
}

// BySecondary does the reverse lookup from a secondary namespace identifier
func (r *Registry) BySecondary(id uint32) (NetworkIdentity, error) {
	name, ok := r.bySecondary[id]
	if !ok {
		return NetworkIdentity{}, fmt.Errorf("%w: secondary domain id %d", ErrUnknownNetwork, id)
	}

	return r.networks[name], nil
}

// Networks returns all registered network names sorted alphabetically
func (r *Registry) Networks() []string {
	names := make([]string, 0, len(r.networks))
	for name := range r.networks {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// Groups returns all registered group names sorted alphabetically
func (r *Registry) Groups() []string {
	names := make([]string, 0, len(r.groups))
	for name := range r.groups {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

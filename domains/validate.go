package domains

import (
	"fmt"
	"sort"

	"github.com/hashicorp/go-multierror"
)

// validate checks reference data eagerly so malformed files fail at load time
// instead of in the middle of a workflow. All violations are reported at once.
func validate(networks []NetworkIdentity, groups map[string][]string) error {
	var errs *multierror.Error

	names := make(map[string]struct{}, len(networks))
	primaries := make(map[uint16]string, len(networks))
	secondaries := make(map[uint32]string, len(networks))

	for _, n := range networks {
		if n.Name == "" {
			errs = multierror.Append(errs, fmt.Errorf("network with empty name"))

			continue
		}

		if _, exists := names[n.Name]; exists {
			errs = multierror.Append(errs, fmt.Errorf("network %q is defined more than once", n.Name))

			continue
		}

		names[n.Name] = struct{}{}

		if n.PrimaryDomainID == 0 {
			errs = multierror.Append(errs, fmt.Errorf("network %q: primary domain id must be non-zero", n.Name))
		} else if other, exists := primaries[n.PrimaryDomainID]; exists {
			errs = multierror.Append(errs, fmt.Errorf("network %q: primary domain id %d already used by %q",
				n.Name, n.PrimaryDomainID, other))
		} else {
			primaries[n.PrimaryDomainID] = n.Name
		}

		if n.SecondaryDomainID == 0 {
			errs = multierror.Append(errs, fmt.Errorf("network %q: secondary domain id must be non-zero", n.Name))
		} else if other, exists := secondaries[n.SecondaryDomainID]; exists {
			errs = multierror.Append(errs, fmt.Errorf("network %q: secondary domain id %d already used by %q",
				n.Name, n.SecondaryDomainID, other))
		} else {
			secondaries[n.SecondaryDomainID] = n.Name
		}
	}

	// iterate groups in a stable order so error output is reproducible
	groupNames := make([]string, 0, len(groups))
	for name := range groups {
		groupNames = append(groupNames, name)
	}

	sort.Strings(groupNames)

	for _, group := range groupNames {
		members := groups[group]

		if group == "" {
			errs = multierror.Append(errs, fmt.Errorf("group with empty name"))

			continue
		}

		if _, clash := names[group]; clash {
			errs = multierror.Append(errs, fmt.Errorf("group %q clashes with a network of the same name", group))
		}

		if len(members) == 0 {
			errs = multierror.Append(errs, fmt.Errorf("group %q has no members", group))

			continue
		}

		seen := make(map[string]struct{}, len(members))

		for _, member := range members {
			if _, known := names[member]; !known {
				errs = multierror.Append(errs, fmt.Errorf("group %q: %w: %q", group, ErrUnknownNetwork, member))
			}

			if _, dup := seen[member]; dup {
				errs = multierror.Append(errs, fmt.Errorf("group %q: member %q listed more than once", group, member))
			}

			seen[member] = struct{}{}
		}
	}

	return errs.ErrorOrNil()
}

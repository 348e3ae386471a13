package router

import (
	"fmt"

	"github.com/PxGnome/hyperlane-interpreter/contractsapi"
	"github.com/PxGnome/hyperlane-interpreter/domains"
	"github.com/PxGnome/hyperlane-interpreter/txrelayer"
	"github.com/hashicorp/go-hclog"
	"github.com/umbracle/ethgo"
)

// Mapper registers the LayerZero -> Hyperlane domain translations of a group on a router
type Mapper struct {
	relayer  txrelayer.TxRelayer
	registry *domains.Registry
	logger   hclog.Logger
}

func NewMapper(relayer txrelayer.TxRelayer, registry *domains.Registry, logger hclog.Logger) *Mapper {
	return &Mapper{
		relayer:  relayer,
		registry: registry,
		logger:   logger.Named("mapper"),
	}
}

// BuildDomainLists returns the positionally paired primary and secondary ids of the members,
// in member order. Each member contributes exactly one pair.
func BuildDomainLists(members []domains.NetworkIdentity) ([]uint16, []uint32) {
	primary := make([]uint16, len(members))
	secondary := make([]uint32, len(members))

	for i, m := range members {
		primary[i] = m.PrimaryDomainID
		secondary[i] = m.SecondaryDomainID
	}

	return primary, secondary
}

// MapGroup submits the domain pairs of every member of the group in one mapDomains transaction.
// Already mapped domains are submitted again, conflict handling is left to the contract.
func (m *Mapper) MapGroup(instance *RouterInstance, group string, key ethgo.Key) error {
	members, err := m.registry.ResolveGroup(group)
	if err != nil {
		return err
	}

	lzDomains, hlDomains := BuildDomainLists(members)

	input, err := (&contractsapi.MapDomainsRouterFn{
		LzDomains: lzDomains,
		HlDomains: hlDomains,
	}).EncodeAbi()
	if err != nil {
		return fmt.Errorf("failed to encode mapDomains call: %w", err)
	}

	m.logger.Info("mapping domains", "address", instance.Address, "group", group,
		"layerzero", lzDomains, "hyperlane", hlDomains)

	receipt, err := sendTransaction(m.relayer, "map_domains", &instance.Address, input, nil, key)
	if err != nil {
		return err
	}

	instance.ensureMaps()

	for _, id := range hlDomains {
		instance.MappedDomains[id] = true
	}

	m.logger.Info("domains mapped", "address", instance.Address, "group", group, "tx", receipt.TransactionHash)

	return nil
}

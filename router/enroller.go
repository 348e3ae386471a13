package router

import (
	"fmt"

	"github.com/PxGnome/hyperlane-interpreter/contractsapi"
	"github.com/PxGnome/hyperlane-interpreter/domains"
	"github.com/PxGnome/hyperlane-interpreter/txrelayer"
	"github.com/hashicorp/go-hclog"
	"github.com/umbracle/ethgo"
)

// Enroller registers trusted remote routers on an origin router
type Enroller struct {
	relayer  txrelayer.TxRelayer
	registry *domains.Registry
	logger   hclog.Logger
}

func NewEnroller(relayer txrelayer.TxRelayer, registry *domains.Registry, logger hclog.Logger) *Enroller {
	return &Enroller{
		relayer:  relayer,
		registry: registry,
		logger:   logger.Named("enroller"),
	}
}

// Enroll trusts remote as the router of the destination network on the origin router.
// Enrolling the same pair twice submits two transactions and leaves the mirror unchanged.
func (e *Enroller) Enroll(origin *RouterInstance, destination string, remote ethgo.Address, key ethgo.Key) error {
	dest, err := e.registry.Resolve(destination)
	if err != nil {
		return err
	}

	peer := AddressToBytes32(remote)

	input, err := (&contractsapi.EnrollRemoteRouterRouterFn{
		Domain: dest.SecondaryDomainID,
		Router: [32]byte(peer),
	}).EncodeAbi()
	if err != nil {
		return fmt.Errorf("failed to encode enrollRemoteRouter call: %w", err)
	}

	e.logger.Info("enrolling remote router", "origin", origin.Address, "destination", dest.Name,
		"domain", dest.SecondaryDomainID, "remote", peer)

	receipt, err := sendTransaction(e.relayer, "enroll", &origin.Address, input, nil, key)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEnrollmentRejected, err)
	}

	origin.ensureMaps()
	origin.EnrolledPeers[dest.SecondaryDomainID] = peer

	e.logger.Info("remote router enrolled", "origin", origin.Address, "domain", dest.SecondaryDomainID,
		"tx", receipt.TransactionHash)

	return nil
}

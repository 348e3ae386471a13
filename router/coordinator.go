package router

import (
	"fmt"

	"github.com/PxGnome/hyperlane-interpreter/addressbook"
	"github.com/PxGnome/hyperlane-interpreter/contractsapi"
	"github.com/PxGnome/hyperlane-interpreter/domains"
	"github.com/PxGnome/hyperlane-interpreter/txrelayer"
	"github.com/hashicorp/go-hclog"
	"github.com/umbracle/ethgo"
)

// Coordinator deploys router contracts and wires them to the local transport endpoint
type Coordinator struct {
	relayer  txrelayer.TxRelayer
	registry *domains.Registry
	book     *addressbook.AddressBook
	artifact *contractsapi.Artifact
	logger   hclog.Logger
}

func NewCoordinator(relayer txrelayer.TxRelayer, registry *domains.Registry, book *addressbook.AddressBook,
	artifact *contractsapi.Artifact, logger hclog.Logger) *Coordinator {
	return &Coordinator{
		relayer:  relayer,
		registry: registry,
		book:     book,
		artifact: artifact,
		logger:   logger.Named("coordinator"),
	}
}

// Deploy submits the router creation transaction on the host network
// and returns an uninitialized instance for the new contract
func (c *Coordinator) Deploy(hostNetwork string, key ethgo.Key) (*RouterInstance, error) {
	host, err := c.registry.Resolve(hostNetwork)
	if err != nil {
		return nil, err
	}

	c.logger.Info("deploying router", "network", host.Name, "deployer", key.Address())

	receipt, err := sendTransaction(c.relayer, "deploy", nil, c.artifact.Bytecode, nil, key)
	if err != nil {
		return nil, err
	}

	if receipt.ContractAddress == ethgo.ZeroAddress {
		return nil, fmt.Errorf("deploy: %w: receipt of %s carries no contract address",
			ErrTransactionRejected, receipt.TransactionHash)
	}

	c.logger.Info("router deployed", "network", host.Name, "address", receipt.ContractAddress,
		"tx", receipt.TransactionHash)

	return NewRouterInstance(receipt.ContractAddress, host), nil
}

// Initialize calls the router initialization entry point with the transport addresses
// of the instance host network. A rejected call (for example a duplicate initialization)
// is returned as is and leaves the instance unchanged.
func (c *Coordinator) Initialize(instance *RouterInstance, key ethgo.Key) error {
	transport, err := c.book.Lookup(instance.Network.Name)
	if err != nil {
		return err
	}

	input, err := (&contractsapi.InitializeRouterFn{
		Mailbox:                  transport.Mailbox,
		InterchainGasPaymaster:   transport.IGP,
		InterchainSecurityModule: transport.ISM,
	}).EncodeAbi()
	if err != nil {
		return fmt.Errorf("failed to encode initialize call: %w", err)
	}

	if instance.Initialized {
		c.logger.Warn("router is already marked initialized, submitting anyway", "address", instance.Address)
	}

	receipt, err := sendTransaction(c.relayer, "initialize", &instance.Address, input, nil, key)
	if err != nil {
		return err
	}

	instance.Initialized = true

	c.logger.Info("router initialized", "address", instance.Address, "mailbox", transport.Mailbox,
		"igp", transport.IGP, "ism", transport.ISM, "tx", receipt.TransactionHash)

	return nil
}

package helper

import (
	"errors"
	"fmt"
	"time"

	"github.com/PxGnome/hyperlane-interpreter/addressbook"
	"github.com/PxGnome/hyperlane-interpreter/command"
	cmdHelper "github.com/PxGnome/hyperlane-interpreter/command/helper"
	"github.com/PxGnome/hyperlane-interpreter/config"
	"github.com/PxGnome/hyperlane-interpreter/contractsapi"
	"github.com/PxGnome/hyperlane-interpreter/domains"
	"github.com/PxGnome/hyperlane-interpreter/router"
	"github.com/PxGnome/hyperlane-interpreter/txrelayer"
	"github.com/armon/go-metrics"
	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"github.com/umbracle/ethgo"
)

// Runtime holds everything a command needs, built once from the configuration
type Runtime struct {
	Config   *config.Config
	Logger   hclog.Logger
	Registry *domains.Registry
	Host     domains.NetworkIdentity
	Relayer  txrelayer.TxRelayer
	Store    router.InstanceStore

	closeStore func() error
	inmem      *metrics.InmemSink
}

// NewRuntime loads the configuration and the reference data and connects to the host network
func NewRuntime(cmd *cobra.Command) (*Runtime, error) {
	cfg, err := LoadConfig(cmd)
	if err != nil {
		return nil, err
	}

	logger := cmdHelper.NewLogger("lzrouter", cfg.LogLevel, cfg.JSONLogFormat, cmd.ErrOrStderr())

	registry, err := loadRegistry(cfg.DomainsFile)
	if err != nil {
		return nil, err
	}

	host, err := registry.Resolve(cfg.Network)
	if err != nil {
		return nil, fmt.Errorf("host network: %w", err)
	}

	interval, err := cfg.PollInterval()
	if err != nil {
		return nil, err
	}

	relayer, err := txrelayer.NewTxRelayer(
		txrelayer.WithIPAddress(cfg.JSONRPCAddr),
		txrelayer.WithLogger(logger.Named("txrelayer")),
		txrelayer.WithReceiptPolling(interval, uint64(cfg.ReceiptMaxAttempts)),
	)
	if err != nil {
		return nil, err
	}

	store, err := router.NewBoltStore(cfg.StateDB)
	if err != nil {
		return nil, err
	}

	rt := &Runtime{
		Config:     cfg,
		Logger:     logger,
		Registry:   registry,
		Host:       host,
		Relayer:    relayer,
		Store:      store,
		closeStore: store.Close,
	}

	if cfg.Telemetry {
		if rt.inmem, err = setupTelemetry(); err != nil {
			_ = store.Close()

			return nil, err
		}
	}

	logger.Debug("runtime ready", "network", host.Name, "jsonrpc", cfg.JSONRPCAddr, "state", cfg.StateDB)

	return rt, nil
}

func loadRegistry(path string) (*domains.Registry, error) {
	if path == "" {
		return domains.DefaultRegistry()
	}

	return domains.ReadRegistryFile(path)
}

func setupTelemetry() (*metrics.InmemSink, error) {
	inm := metrics.NewInmemSink(10*time.Second, time.Minute)

	metricsConf := metrics.DefaultConfig("lzrouter")
	metricsConf.EnableHostname = false
	metricsConf.EnableRuntimeMetrics = false

	if _, err := metrics.NewGlobal(metricsConf, inm); err != nil {
		return nil, fmt.Errorf("failed to set up telemetry: %w", err)
	}

	return inm, nil
}

// Key decodes the configured signer
func (r *Runtime) Key() (ethgo.Key, error) {
	return cmdHelper.DecodePrivateKey(r.Config.PrivateKey)
}

// AddressBook loads the transport address book
func (r *Runtime) AddressBook() (*addressbook.AddressBook, error) {
	return addressbook.ReadFile(r.Config.AddressesFile)
}

// Artifact loads the compiled router
func (r *Runtime) Artifact() (*contractsapi.Artifact, error) {
	return contractsapi.LoadRouterArtifact(r.Config.ArtifactFile)
}

// LoadInstance returns the mirrored router at the given address on the host network.
// A router missing from the mirror is attached when the address holds code on chain.
func (r *Runtime) LoadInstance(rawAddr string) (*router.RouterInstance, error) {
	addr, err := addressbook.ParseAddress(rawAddr)
	if err != nil {
		return nil, fmt.Errorf("router address: %w", err)
	}

	instance, err := r.Store.Get(r.Host.Name, addr)
	if err == nil {
		return instance, nil
	}

	if !errors.Is(err, router.ErrInstanceNotFound) {
		return nil, err
	}

	code, err := r.Relayer.Client().Eth().GetCode(addr, ethgo.Latest)
	if err != nil {
		return nil, fmt.Errorf("failed to check router code at %s: %w", addr, err)
	}

	if code == "0x" || code == "" {
		return nil, fmt.Errorf("no contract deployed at %s on %s", addr, r.Host.Name)
	}

	r.Logger.Warn("router is not in the local state, attaching it", "address", addr, "network", r.Host.Name)

	instance = router.NewRouterInstance(addr, r.Host)
	if err := r.Store.Put(instance); err != nil {
		return nil, err
	}

	return instance, nil
}

// SaveInstance folds the instance into its mirrored record
func (r *Runtime) SaveInstance(instance *router.RouterInstance) error {
	return r.Store.Update(instance.Network.Name, instance.Address, func(stored *router.RouterInstance) error {
		stored.Merge(instance)

		return nil
	})
}

// WriteTelemetry writes the gathered counters when telemetry is enabled
func (r *Runtime) WriteTelemetry(outputter command.OutputFormatter) {
	if r.inmem == nil {
		return
	}

	outputter.WriteCommandResult(NewTelemetryResult(r.inmem))
}

func (r *Runtime) Close() error {
	if r.closeStore == nil {
		return nil
	}

	return r.closeStore()
}

package router

import (
	"fmt"

	"github.com/PxGnome/hyperlane-interpreter/domains"
	"github.com/hashicorp/go-hclog"
	"github.com/umbracle/ethgo"
)

// Stage is the position of a router instance in the setup sequence
// Deploy -> Initialize -> Map -> Enroll* -> Send*
type Stage int

const (
	StageUndeployed Stage = iota
	StageDeployed
	StageInitialized
	StageMapped
	StageReady
)

func (s Stage) String() string {
	switch s {
	case StageUndeployed:
		return "undeployed"
	case StageDeployed:
		return "deployed"
	case StageInitialized:
		return "initialized"
	case StageMapped:
		return "mapped"
	case StageReady:
		return "ready"
	default:
		return fmt.Sprintf("stage(%d)", int(s))
	}
}

// StageOf derives the stage from the mirrored instance data.
// An instance is ready once it has at least one enrolled peer.
func StageOf(instance *RouterInstance) Stage {
	switch {
	case instance == nil || instance.Address == ethgo.ZeroAddress:
		return StageUndeployed
	case !instance.Initialized:
		return StageDeployed
	case len(instance.MappedDomains) == 0:
		return StageInitialized
	case len(instance.EnrolledPeers) == 0:
		return StageMapped
	default:
		return StageReady
	}
}

// Workflow sequences deploy, initialize and map for one host network,
// persisting the instance after every step that succeeds
type Workflow struct {
	coordinator *Coordinator
	mapper      *Mapper
	registry    *domains.Registry
	store       InstanceStore
	logger      hclog.Logger
}

func NewWorkflow(coordinator *Coordinator, mapper *Mapper, registry *domains.Registry,
	store InstanceStore, logger hclog.Logger) *Workflow {
	return &Workflow{
		coordinator: coordinator,
		mapper:      mapper,
		registry:    registry,
		store:       store,
		logger:      logger.Named("workflow"),
	}
}

// Setup deploys a new router on the host network, then initializes it and maps the group.
// On failure the returned instance (when not nil) holds every step that succeeded
// and can be passed to Resume.
func (w *Workflow) Setup(hostNetwork, group string, key ethgo.Key) (*RouterInstance, error) {
	// fail before deploying when the group can not be mapped anyway
	if _, err := w.registry.ResolveGroup(group); err != nil {
		return nil, err
	}

	instance, err := w.coordinator.Deploy(hostNetwork, key)
	if err != nil {
		return nil, err
	}

	if err := w.store.Put(instance); err != nil {
		return instance, fmt.Errorf("failed to persist deployed router %s: %w", instance.Address, err)
	}

	return instance, w.Resume(instance, group, key)
}

// Resume runs the remaining steps for the instance, skipping the ones already done.
// The group is mapped unless every one of its domains is already mapped.
func (w *Workflow) Resume(instance *RouterInstance, group string, key ethgo.Key) error {
	members, err := w.registry.ResolveGroup(group)
	if err != nil {
		return err
	}

	w.logger.Debug("resuming router setup", "address", instance.Address, "stage", StageOf(instance))

	if !instance.Initialized {
		if err := w.coordinator.Initialize(instance, key); err != nil {
			return err
		}

		if err := w.store.Put(instance); err != nil {
			return fmt.Errorf("failed to persist initialized router %s: %w", instance.Address, err)
		}
	}

	if _, hlDomains := BuildDomainLists(members); !instance.IsMapped(hlDomains...) {
		if err := w.mapper.MapGroup(instance, group, key); err != nil {
			return err
		}

		if err := w.store.Put(instance); err != nil {
			return fmt.Errorf("failed to persist mapped router %s: %w", instance.Address, err)
		}
	} else {
		w.logger.Info("group already mapped, skipping", "address", instance.Address, "group", group)
	}

	return nil
}

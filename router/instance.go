package router

import (
	"encoding/hex"
	"fmt"
	"sort"
	"strings"

	"github.com/PxGnome/hyperlane-interpreter/domains"
	"github.com/umbracle/ethgo"
)

// Bytes32 is a 32 byte value as used by the Hyperlane addressing convention
type Bytes32 [32]byte

func (b Bytes32) String() string {
	return "0x" + hex.EncodeToString(b[:])
}

func (b Bytes32) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

func (b *Bytes32) UnmarshalText(input []byte) error {
	raw, err := hex.DecodeString(strings.TrimPrefix(string(input), "0x"))
	if err != nil {
		return err
	}

	if len(raw) != len(b) {
		return fmt.Errorf("expected 32 bytes but got %d", len(raw))
	}

	copy(b[:], raw)

	return nil
}

// AddressToBytes32 right aligns a 20 byte address in a zero padded 32 byte slot
func AddressToBytes32(addr ethgo.Address) Bytes32 {
	var res Bytes32

	copy(res[len(res)-len(addr):], addr[:])

	return res
}

// RoutingKey is the packed (origin, destination) address pair attached to a send.
// The receiving side splits it back at the 20 byte boundary.
func RoutingKey(origin, destination ethgo.Address) []byte {
	key := make([]byte, 0, 2*len(origin))
	key = append(key, origin[:]...)

	return append(key, destination[:]...)
}

// RouterInstance is the local mirror of a router contract deployed on one host network.
// It is best effort: the contract state on chain is authoritative.
type RouterInstance struct {
	Address       ethgo.Address           `json:"address"`
	Network       domains.NetworkIdentity `json:"network"`
	Initialized   bool                    `json:"initialized"`
	MappedDomains map[uint32]bool         `json:"mappedDomains"`
	EnrolledPeers map[uint32]Bytes32      `json:"enrolledPeers"`
}

// NewRouterInstance creates an uninitialized instance for a freshly deployed router
func NewRouterInstance(addr ethgo.Address, network domains.NetworkIdentity) *RouterInstance {
	return &RouterInstance{
		Address:       addr,
		Network:       network,
		MappedDomains: map[uint32]bool{},
		EnrolledPeers: map[uint32]Bytes32{},
	}
}

// Mapped returns the sorted secondary domain ids mapped by this instance
func (r *RouterInstance) Mapped() []uint32 {
	res := make([]uint32, 0, len(r.MappedDomains))
	for id := range r.MappedDomains {
		res = append(res, id)
	}

	sort.Slice(res, func(i, j int) bool { return res[i] < res[j] })

	return res
}

// IsMapped reports whether every given secondary domain id was mapped
func (r *RouterInstance) IsMapped(ids ...uint32) bool {
	for _, id := range ids {
		if !r.MappedDomains[id] {
			return false
		}
	}

	return true
}

// Merge folds the state recorded in other into r. Mapped domains only grow,
// enrolled peers of other take precedence.
func (r *RouterInstance) Merge(other *RouterInstance) {
	r.ensureMaps()
	r.Initialized = r.Initialized || other.Initialized

	for id := range other.MappedDomains {
		r.MappedDomains[id] = true
	}

	for id, peer := range other.EnrolledPeers {
		r.EnrolledPeers[id] = peer
	}
}

func (r *RouterInstance) ensureMaps() {
	if r.MappedDomains == nil {
		r.MappedDomains = map[uint32]bool{}
	}

	if r.EnrolledPeers == nil {
		r.EnrolledPeers = map[uint32]Bytes32{}
	}
}

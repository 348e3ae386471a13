package helper

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	cmdHelper "github.com/PxGnome/hyperlane-interpreter/command/helper"
	"github.com/PxGnome/hyperlane-interpreter/router"
	"github.com/armon/go-metrics"
)

// MessageResult is a single progress line
type MessageResult struct {
	Message string `json:"message"`
}

func (r MessageResult) GetOutput() string {
	return r.Message
}

// InstanceResult renders the mirrored state of a router instance
type InstanceResult struct {
	Title         string            `json:"-"`
	Address       string            `json:"address"`
	Network       string            `json:"network"`
	Stage         string            `json:"stage"`
	Initialized   bool              `json:"initialized"`
	MappedDomains []uint32          `json:"mappedDomains"`
	EnrolledPeers map[uint32]string `json:"enrolledPeers"`
}

func NewInstanceResult(title string, instance *router.RouterInstance) *InstanceResult {
	peers := make(map[uint32]string, len(instance.EnrolledPeers))
	for domain, peer := range instance.EnrolledPeers {
		peers[domain] = peer.String()
	}

	return &InstanceResult{
		Title:         title,
		Address:       instance.Address.String(),
		Network:       instance.Network.Name,
		Stage:         router.StageOf(instance).String(),
		Initialized:   instance.Initialized,
		MappedDomains: instance.Mapped(),
		EnrolledPeers: peers,
	}
}

func (r *InstanceResult) GetOutput() string {
	var buffer bytes.Buffer

	buffer.WriteString(fmt.Sprintf("\n%s\n", r.Title))

	mapped := make([]string, len(r.MappedDomains))
	for i, domain := range r.MappedDomains {
		mapped[i] = fmt.Sprintf("%d", domain)
	}

	vals := []string{
		fmt.Sprintf("Router (address)|%s", r.Address),
		fmt.Sprintf("Network|%s", r.Network),
		fmt.Sprintf("Stage|%s", r.Stage),
		fmt.Sprintf("Initialized|%t", r.Initialized),
		fmt.Sprintf("Mapped domains|%s", strings.Join(mapped, ", ")),
	}

	buffer.WriteString(cmdHelper.FormatKV(vals))
	buffer.WriteString("\n")

	if len(r.EnrolledPeers) > 0 {
		domains := make([]uint32, 0, len(r.EnrolledPeers))
		for domain := range r.EnrolledPeers {
			domains = append(domains, domain)
		}

		sort.Slice(domains, func(i, j int) bool { return domains[i] < domains[j] })

		rows := []string{"Domain|Remote router"}
		for _, domain := range domains {
			rows = append(rows, fmt.Sprintf("%d|%s", domain, r.EnrolledPeers[domain]))
		}

		buffer.WriteString("\n[ENROLLED PEERS]\n")
		buffer.WriteString(cmdHelper.FormatList(rows))
		buffer.WriteString("\n")
	}

	return buffer.String()
}

// TelemetryResult holds the counters gathered during the run
type TelemetryResult struct {
	Counters map[string]float64 `json:"counters"`
}

func NewTelemetryResult(inm *metrics.InmemSink) *TelemetryResult {
	res := &TelemetryResult{Counters: map[string]float64{}}

	for _, interval := range inm.Data() {
		for name, value := range interval.Counters {
			res.Counters[name] += value.Sum
		}
	}

	return res
}

func (r *TelemetryResult) GetOutput() string {
	var buffer bytes.Buffer

	buffer.WriteString("\n[TELEMETRY]\n")

	names := make([]string, 0, len(r.Counters))
	for name := range r.Counters {
		names = append(names, name)
	}

	sort.Strings(names)

	vals := make([]string, 0, len(names))
	for _, name := range names {
		vals = append(vals, fmt.Sprintf("%s|%v", name, r.Counters[name]))
	}

	buffer.WriteString(cmdHelper.FormatKV(vals))
	buffer.WriteString("\n")

	return buffer.String()
}

package router

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"

	"github.com/PxGnome/hyperlane-interpreter/contractsapi"
	"github.com/PxGnome/hyperlane-interpreter/domains"
	"github.com/PxGnome/hyperlane-interpreter/txrelayer"
	"github.com/hashicorp/go-hclog"
	"github.com/umbracle/ethgo"
)

// PayloadEncoding selects how a message string is turned into payload bytes
type PayloadEncoding string

const (
	// EncodingUTF8 sends the message text as is
	EncodingUTF8 PayloadEncoding = "utf8"
	// EncodingHex sends the 0x prefixed hex decoded message
	EncodingHex PayloadEncoding = "hex"
)

// Encode converts the message into payload bytes
func (p PayloadEncoding) Encode(message string) ([]byte, error) {
	switch p {
	case EncodingUTF8, "":
		return []byte(message), nil
	case EncodingHex:
		raw, err := hex.DecodeString(strings.TrimPrefix(message, "0x"))
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
		}

		return raw, nil
	default:
		return nil, fmt.Errorf("%w: unknown encoding %q", ErrInvalidPayload, string(p))
	}
}

// DispatchRequest describes one outbound message
type DispatchRequest struct {
	Origin             ethgo.Address
	DestinationNetwork string
	DestinationAddress ethgo.Address
	Message            string
	Encoding           PayloadEncoding
}

// DispatchReceipt is the outcome of a successful send
type DispatchReceipt struct {
	MessageID         ethgo.Hash
	TxHash            ethgo.Hash
	Fee               *big.Int
	DestinationDomain uint16
}

// Dispatcher sends payloads through an origin router, paying the relay fee it quotes
type Dispatcher struct {
	relayer  txrelayer.TxRelayer
	registry *domains.Registry
	logger   hclog.Logger
}

func NewDispatcher(relayer txrelayer.TxRelayer, registry *domains.Registry, logger hclog.Logger) *Dispatcher {
	return &Dispatcher{
		relayer:  relayer,
		registry: registry,
		logger:   logger.Named("dispatcher"),
	}
}

// Send resolves the destination, quotes the native fee and submits the send transaction
// with the quoted fee attached. Nothing is queried on chain when the destination or the
// payload is invalid.
func (d *Dispatcher) Send(req DispatchRequest, key ethgo.Key) (*DispatchReceipt, error) {
	dest, err := d.registry.Resolve(req.DestinationNetwork)
	if err != nil {
		return nil, err
	}

	payload, err := req.Encoding.Encode(req.Message)
	if err != nil {
		return nil, err
	}

	fee, err := d.estimateFee(req.Origin, dest.PrimaryDomainID, req.DestinationAddress, payload, key.Address())
	if err != nil {
		return nil, err
	}

	d.logger.Info("sending message", "origin", req.Origin, "destination", dest.Name,
		"domain", dest.PrimaryDomainID, "to", req.DestinationAddress, "fee", fee.NativeFee)

	input, err := (&contractsapi.SendRouterFn{
		DstChainID:        dest.PrimaryDomainID,
		Destination:       RoutingKey(req.Origin, req.DestinationAddress),
		Payload:           payload,
		RefundAddress:     key.Address(),
		ZroPaymentAddress: ethgo.ZeroAddress,
		AdapterParams:     []byte{},
	}).EncodeAbi()
	if err != nil {
		return nil, fmt.Errorf("failed to encode send call: %w", err)
	}

	receipt, err := sendTransaction(d.relayer, "send", &req.Origin, input, fee.NativeFee, key)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDispatchFailed, err)
	}

	res := &DispatchReceipt{
		MessageID:         messageID(receipt),
		TxHash:            receipt.TransactionHash,
		Fee:               fee.NativeFee,
		DestinationDomain: dest.PrimaryDomainID,
	}

	d.logger.Info("message sent", "id", res.MessageID, "tx", res.TxHash)

	return res, nil
}

func (d *Dispatcher) estimateFee(origin ethgo.Address, dstChainID uint16, destination ethgo.Address,
	payload []byte, from ethgo.Address) (*contractsapi.FeeEstimate, error) {
	input, err := (&contractsapi.EstimateFeesRouterFn{
		DstChainID:      dstChainID,
		UserApplication: destination,
		Payload:         payload,
		PayInZRO:        false,
		AdapterParams:   []byte{},
	}).EncodeAbi()
	if err != nil {
		return nil, fmt.Errorf("failed to encode estimateFees call: %w", err)
	}

	res, err := d.relayer.Call(from, origin, input)
	if err != nil {
		return nil, fmt.Errorf("%w: fee estimation: %w", ErrDispatchFailed, err)
	}

	raw, err := decodeCallResult(res)
	if err != nil {
		return nil, fmt.Errorf("%w: fee estimation result: %w", ErrDispatchFailed, err)
	}

	fee, err := contractsapi.DecodeFeeEstimate(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: fee estimation result: %w", ErrDispatchFailed, err)
	}

	return fee, nil
}

// messageID picks the DispatchId of the mailbox log, falling back to the transaction hash
func messageID(receipt *ethgo.Receipt) ethgo.Hash {
	var event contractsapi.DispatchIDEvent

	for _, log := range receipt.Logs {
		if ok, err := event.ParseLog(log); ok && err == nil {
			return ethgo.Hash(event.MessageID)
		}
	}

	return receipt.TransactionHash
}

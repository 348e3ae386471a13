package contractsapi

import (
	"math/big"

	"github.com/umbracle/ethgo"
	"github.com/umbracle/ethgo/abi"
)

var (
	initializeRouterMethodType         = abi.MustNewMethod("function initialize(address _mailbox,address _interchainGasPaymaster,address _interchainSecurityModule)")              //nolint:all
	mapDomainsRouterMethodType         = abi.MustNewMethod("function mapDomains(uint16[] _lzDomains,uint32[] _hlDomains)")                                                          //nolint:all
	enrollRemoteRouterRouterMethodType = abi.MustNewMethod("function enrollRemoteRouter(uint32 _domain,bytes32 _router)")                                                          //nolint:all
	estimateFeesRouterMethodType       = abi.MustNewMethod("function estimateFees(uint16 _dstChainId,address _userApplication,bytes _payload,bool _payInZRO,bytes _adapterParams) returns (uint256 nativeFee,uint256 zroFee)") //nolint:all
	sendRouterMethodType               = abi.MustNewMethod("function send(uint16 _dstChainId,bytes _destination,bytes _payload,address _refundAddress,address _zroPaymentAddress,bytes _adapterParams)") //nolint:all
)

type InitializeRouterFn struct {
	Mailbox                  ethgo.Address `abi:"_mailbox"`
	InterchainGasPaymaster   ethgo.Address `abi:"_interchainGasPaymaster"`
	InterchainSecurityModule ethgo.Address `abi:"_interchainSecurityModule"`
}

func (i *InitializeRouterFn) Sig() []byte {
	return initializeRouterMethodType.ID()
}

func (i *InitializeRouterFn) EncodeAbi() ([]byte, error) {
	return initializeRouterMethodType.Encode(i)
}

func (i *InitializeRouterFn) DecodeAbi(buf []byte) error {
	return decodeMethod(initializeRouterMethodType, buf, i)
}

// MapDomainsRouterFn registers (LayerZero chain id, Hyperlane domain) pairs positionally
type MapDomainsRouterFn struct {
	LzDomains []uint16 `abi:"_lzDomains"`
	HlDomains []uint32 `abi:"_hlDomains"`
}

func (m *MapDomainsRouterFn) Sig() []byte {
	return mapDomainsRouterMethodType.ID()
}

func (m *MapDomainsRouterFn) EncodeAbi() ([]byte, error) {
	return mapDomainsRouterMethodType.Encode(m)
}

func (m *MapDomainsRouterFn) DecodeAbi(buf []byte) error {
	return decodeMethod(mapDomainsRouterMethodType, buf, m)
}

type EnrollRemoteRouterRouterFn struct {
	Domain uint32   `abi:"_domain"`
	Router [32]byte `abi:"_router"`
}

func (e *EnrollRemoteRouterRouterFn) Sig() []byte {
	return enrollRemoteRouterRouterMethodType.ID()
}

func (e *EnrollRemoteRouterRouterFn) EncodeAbi() ([]byte, error) {
	return enrollRemoteRouterRouterMethodType.Encode(e)
}

func (e *EnrollRemoteRouterRouterFn) DecodeAbi(buf []byte) error {
	return decodeMethod(enrollRemoteRouterRouterMethodType, buf, e)
}

type EstimateFeesRouterFn struct {
	DstChainID      uint16        `abi:"_dstChainId"`
	UserApplication ethgo.Address `abi:"_userApplication"`
	Payload         []byte        `abi:"_payload"`
	PayInZRO        bool          `abi:"_payInZRO"`
	AdapterParams   []byte        `abi:"_adapterParams"`
}

func (e *EstimateFeesRouterFn) Sig() []byte {
	return estimateFeesRouterMethodType.ID()
}

func (e *EstimateFeesRouterFn) EncodeAbi() ([]byte, error) {
	return estimateFeesRouterMethodType.Encode(e)
}

func (e *EstimateFeesRouterFn) DecodeAbi(buf []byte) error {
	return decodeMethod(estimateFeesRouterMethodType, buf, e)
}

// FeeEstimate is the return value of estimateFees
type FeeEstimate struct {
	NativeFee *big.Int `abi:"nativeFee"`
	ZroFee    *big.Int `abi:"zroFee"`
}

// DecodeFeeEstimate decodes the raw eth_call output of estimateFees
func DecodeFeeEstimate(buf []byte) (*FeeEstimate, error) {
	raw, err := estimateFeesRouterMethodType.Outputs.Decode(buf)
	if err != nil {
		return nil, err
	}

	out := &FeeEstimate{}
	if err := decodeImpl(raw, out); err != nil {
		return nil, err
	}

	return out, nil
}

// EncodeFeeEstimate encodes an estimateFees return value, as the router would
func EncodeFeeEstimate(fee *FeeEstimate) ([]byte, error) {
	return estimateFeesRouterMethodType.Outputs.Encode(fee)
}

type SendRouterFn struct {
	DstChainID        uint16        `abi:"_dstChainId"`
	Destination       []byte        `abi:"_destination"`
	Payload           []byte        `abi:"_payload"`
	RefundAddress     ethgo.Address `abi:"_refundAddress"`
	ZroPaymentAddress ethgo.Address `abi:"_zroPaymentAddress"`
	AdapterParams     []byte        `abi:"_adapterParams"`
}

func (s *SendRouterFn) Sig() []byte {
	return sendRouterMethodType.ID()
}

func (s *SendRouterFn) EncodeAbi() ([]byte, error) {
	return sendRouterMethodType.Encode(s)
}

func (s *SendRouterFn) DecodeAbi(buf []byte) error {
	return decodeMethod(sendRouterMethodType, buf, s)
}

var (
	DispatchIDEventType = abi.MustNewEvent("event DispatchId(bytes32 indexed messageId)") //nolint:all
)

// DispatchIDEvent is emitted by the mailbox once per dispatched message
type DispatchIDEvent struct {
	MessageID [32]byte `abi:"messageId"`
}

func (*DispatchIDEvent) Sig() ethgo.Hash {
	return DispatchIDEventType.ID()
}

// ParseLog decodes the log into the event. The returned flag is false
// when the log is not a DispatchId log.
func (d *DispatchIDEvent) ParseLog(log *ethgo.Log) (bool, error) {
	if !DispatchIDEventType.Match(log) {
		return false, nil
	}

	return true, decodeEvent(DispatchIDEventType, log, d)
}

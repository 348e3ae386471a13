package router

import (
	"encoding/hex"
	"testing"

	"github.com/PxGnome/hyperlane-interpreter/addressbook"
	"github.com/PxGnome/hyperlane-interpreter/contractsapi"
	"github.com/PxGnome/hyperlane-interpreter/domains"
	"github.com/PxGnome/hyperlane-interpreter/txrelayer"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/umbracle/ethgo"
	"github.com/umbracle/ethgo/jsonrpc"
	"github.com/umbracle/ethgo/wallet"
)

var (
	sepolia = domains.NetworkIdentity{Name: "sepolia", PrimaryDomainID: 10161, SecondaryDomainID: 11155111}
	mumbai  = domains.NetworkIdentity{Name: "mumbai", PrimaryDomainID: 10109, SecondaryDomainID: 80001}

	sepoliaTransport = addressbook.TransportAddresses{
		Mailbox: ethgo.HexToAddress("0x1001"),
		IGP:     ethgo.HexToAddress("0x1002"),
		ISM:     ethgo.HexToAddress("0x1003"),
	}

	routerBytecode = []byte{0x60, 0x80, 0x60, 0x40, 0x52}
)

var _ txrelayer.TxRelayer = (*dummyTxRelayer)(nil)

type dummyTxRelayer struct {
	mock.Mock
}

func newDummyTxRelayer(t *testing.T) *dummyTxRelayer {
	t.Helper()

	return &dummyTxRelayer{}
}

func (d *dummyTxRelayer) Call(from ethgo.Address, to ethgo.Address, input []byte) (string, error) {
	args := d.Called(from, to, input)

	return args.String(0), args.Error(1)
}

func (d *dummyTxRelayer) SendTransaction(transaction *ethgo.Transaction, key ethgo.Key) (*ethgo.Receipt, error) {
	args := d.Called(transaction, key)

	receipt, _ := args.Get(0).(*ethgo.Receipt)

	return receipt, args.Error(1)
}

func (d *dummyTxRelayer) Client() *jsonrpc.Client {
	return nil
}

func newTestRegistry(t *testing.T) *domains.Registry {
	t.Helper()

	registry, err := domains.NewRegistry(
		[]domains.NetworkIdentity{sepolia, mumbai},
		map[string][]string{"testnet": {"sepolia", "mumbai"}},
	)
	require.NoError(t, err)

	return registry
}

func newTestAddressBook(t *testing.T) *addressbook.AddressBook {
	t.Helper()

	book, err := addressbook.New(map[string]addressbook.TransportAddresses{"sepolia": sepoliaTransport})
	require.NoError(t, err)

	return book
}

func newTestKey(t *testing.T) ethgo.Key {
	t.Helper()

	key, err := wallet.GenerateKey()
	require.NoError(t, err)

	return key
}

func newTestArtifact() *contractsapi.Artifact {
	return &contractsapi.Artifact{ContractName: "LayerZeroRouter", Bytecode: routerBytecode}
}

// txTo matches transactions sent to the given address whose input starts with the selector
func txTo(to ethgo.Address, selector []byte) interface{} {
	return mock.MatchedBy(func(txn *ethgo.Transaction) bool {
		return txn.To != nil && *txn.To == to && len(txn.Input) >= 4 &&
			hex.EncodeToString(txn.Input[:4]) == hex.EncodeToString(selector)
	})
}

func successReceipt(hash ethgo.Hash) *ethgo.Receipt {
	return &ethgo.Receipt{Status: 1, TransactionHash: hash}
}

func failedReceipt(hash ethgo.Hash) *ethgo.Receipt {
	return &ethgo.Receipt{Status: 0, TransactionHash: hash}
}

// sentTransaction returns the transaction of the n-th SendTransaction call recorded by the relayer
func sentTransaction(t *testing.T, relayer *dummyTxRelayer, n int) *ethgo.Transaction {
	t.Helper()

	var calls []mock.Call

	for _, c := range relayer.Calls {
		if c.Method == "SendTransaction" {
			calls = append(calls, c)
		}
	}

	require.Greater(t, len(calls), n)

	txn, ok := calls[n].Arguments.Get(0).(*ethgo.Transaction)
	require.True(t, ok)

	return txn
}

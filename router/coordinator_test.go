package router

import (
	"errors"
	"testing"

	"github.com/PxGnome/hyperlane-interpreter/addressbook"
	"github.com/PxGnome/hyperlane-interpreter/contractsapi"
	"github.com/PxGnome/hyperlane-interpreter/domains"
	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/umbracle/ethgo"
)

func newTestCoordinator(t *testing.T, relayer *dummyTxRelayer) *Coordinator {
	t.Helper()

	return NewCoordinator(relayer, newTestRegistry(t), newTestAddressBook(t), newTestArtifact(), hclog.NewNullLogger())
}

func TestCoordinator_Deploy(t *testing.T) {
	t.Parallel()

	key := newTestKey(t)
	routerAddr := ethgo.HexToAddress("0xdddd")

	relayer := newDummyTxRelayer(t)
	relayer.On("SendTransaction", mock.MatchedBy(func(txn *ethgo.Transaction) bool {
		return txn.To == nil
	}), key).Return(&ethgo.Receipt{
		Status:          1,
		ContractAddress: routerAddr,
		TransactionHash: ethgo.Hash{0x1},
	}, nil).Once()

	instance, err := newTestCoordinator(t, relayer).Deploy("sepolia", key)
	require.NoError(t, err)
	require.Equal(t, routerAddr, instance.Address)
	require.Equal(t, sepolia, instance.Network)
	require.False(t, instance.Initialized)
	require.Empty(t, instance.MappedDomains)
	require.Empty(t, instance.EnrolledPeers)

	require.Equal(t, routerBytecode, sentTransaction(t, relayer, 0).Input)
	relayer.AssertExpectations(t)
}

func TestCoordinator_Deploy_Errors(t *testing.T) {
	t.Parallel()

	t.Run("UnknownNetwork", func(t *testing.T) {
		t.Parallel()

		relayer := newDummyTxRelayer(t)

		_, err := newTestCoordinator(t, relayer).Deploy("unknown", newTestKey(t))
		require.ErrorIs(t, err, domains.ErrUnknownNetwork)
		relayer.AssertNotCalled(t, "SendTransaction", mock.Anything, mock.Anything)
	})

	t.Run("Reverted", func(t *testing.T) {
		t.Parallel()

		relayer := newDummyTxRelayer(t)
		relayer.On("SendTransaction", mock.Anything, mock.Anything).Return(failedReceipt(ethgo.Hash{0x2}), nil).Once()

		_, err := newTestCoordinator(t, relayer).Deploy("sepolia", newTestKey(t))
		require.ErrorIs(t, err, ErrTransactionRejected)
		require.ErrorContains(t, err, "reverted")
	})

	t.Run("SubmissionFailed", func(t *testing.T) {
		t.Parallel()

		relayer := newDummyTxRelayer(t)
		relayer.On("SendTransaction", mock.Anything, mock.Anything).Return(nil, errors.New("insufficient funds")).Once()

		_, err := newTestCoordinator(t, relayer).Deploy("sepolia", newTestKey(t))
		require.ErrorIs(t, err, ErrTransactionRejected)
		require.ErrorContains(t, err, "insufficient funds")
	})

	t.Run("NoContractAddress", func(t *testing.T) {
		t.Parallel()

		relayer := newDummyTxRelayer(t)
		relayer.On("SendTransaction", mock.Anything, mock.Anything).Return(successReceipt(ethgo.Hash{0x3}), nil).Once()

		_, err := newTestCoordinator(t, relayer).Deploy("sepolia", newTestKey(t))
		require.ErrorIs(t, err, ErrTransactionRejected)
		require.ErrorContains(t, err, "no contract address")
	})
}

func TestCoordinator_Initialize(t *testing.T) {
	t.Parallel()

	key := newTestKey(t)
	instance := NewRouterInstance(ethgo.HexToAddress("0xdddd"), sepolia)

	relayer := newDummyTxRelayer(t)
	relayer.On("SendTransaction", txTo(instance.Address, (&contractsapi.InitializeRouterFn{}).Sig()), key).
		Return(successReceipt(ethgo.Hash{0x4}), nil).Once()

	require.NoError(t, newTestCoordinator(t, relayer).Initialize(instance, key))
	require.True(t, instance.Initialized)

	var initFn contractsapi.InitializeRouterFn

	require.NoError(t, initFn.DecodeAbi(sentTransaction(t, relayer, 0).Input))
	require.Equal(t, sepoliaTransport.Mailbox, initFn.Mailbox)
	require.Equal(t, sepoliaTransport.IGP, initFn.InterchainGasPaymaster)
	require.Equal(t, sepoliaTransport.ISM, initFn.InterchainSecurityModule)
	relayer.AssertExpectations(t)
}

func TestCoordinator_Initialize_Errors(t *testing.T) {
	t.Parallel()

	t.Run("UnknownHost", func(t *testing.T) {
		t.Parallel()

		relayer := newDummyTxRelayer(t)
		instance := NewRouterInstance(ethgo.HexToAddress("0xdddd"), mumbai)

		err := newTestCoordinator(t, relayer).Initialize(instance, newTestKey(t))
		require.ErrorIs(t, err, addressbook.ErrUnknownHost)
		require.False(t, instance.Initialized)
		relayer.AssertNotCalled(t, "SendTransaction", mock.Anything, mock.Anything)
	})

	t.Run("DuplicateInitializationIsNotRetried", func(t *testing.T) {
		t.Parallel()

		relayer := newDummyTxRelayer(t)
		relayer.On("SendTransaction", mock.Anything, mock.Anything).
			Return(nil, errors.New("execution reverted: Initializable: contract is already initialized")).Once()

		instance := NewRouterInstance(ethgo.HexToAddress("0xdddd"), sepolia)
		instance.Initialized = true

		err := newTestCoordinator(t, relayer).Initialize(instance, newTestKey(t))
		require.ErrorIs(t, err, ErrTransactionRejected)
		require.ErrorContains(t, err, "already initialized")
		require.True(t, instance.Initialized)
		relayer.AssertNumberOfCalls(t, "SendTransaction", 1)
	})

	t.Run("RejectedLeavesInstanceUninitialized", func(t *testing.T) {
		t.Parallel()

		relayer := newDummyTxRelayer(t)
		relayer.On("SendTransaction", mock.Anything, mock.Anything).Return(failedReceipt(ethgo.Hash{0x5}), nil).Once()

		instance := NewRouterInstance(ethgo.HexToAddress("0xdddd"), sepolia)

		err := newTestCoordinator(t, relayer).Initialize(instance, newTestKey(t))
		require.ErrorIs(t, err, ErrTransactionRejected)
		require.False(t, instance.Initialized)
	})
}

package txrelayer

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/sethvargo/go-retry"
	"github.com/umbracle/ethgo"
	"github.com/umbracle/ethgo/jsonrpc"
	"github.com/umbracle/ethgo/wallet"
)

const (
	DefaultRPCAddress = "http://127.0.0.1:8545"

	defaultReceiptPollInterval = 500 * time.Millisecond
	defaultReceiptMaxAttempts  = 600
	gasLimitPercentageBuffer   = 20
)

// TxRelayer submits transactions to a single host chain and performs read-only calls
type TxRelayer interface {
	// Call executes a message call against the pending state and returns the hex encoded output
	Call(from ethgo.Address, to ethgo.Address, input []byte) (string, error)
	// SendTransaction signs the transaction with the given key, submits it
	// and blocks until its receipt is available
	SendTransaction(txn *ethgo.Transaction, key ethgo.Key) (*ethgo.Receipt, error)
	// Client returns the underlying JSON RPC client
	Client() *jsonrpc.Client
}

var _ TxRelayer = (*txRelayer)(nil)

type txRelayer struct {
	ipAddress           string
	client              *jsonrpc.Client
	logger              hclog.Logger
	receiptPollInterval time.Duration
	receiptMaxAttempts  uint64
}

func NewTxRelayer(opts ...TxRelayerOption) (TxRelayer, error) {
	t := &txRelayer{
		ipAddress:           DefaultRPCAddress,
		logger:              hclog.NewNullLogger(),
		receiptPollInterval: defaultReceiptPollInterval,
		receiptMaxAttempts:  defaultReceiptMaxAttempts,
	}
	for _, opt := range opts {
		opt(t)
	}

	if t.client == nil {
		client, err := jsonrpc.NewClient(t.ipAddress)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize JSON RPC client for %s: %w", t.ipAddress, err)
		}

		t.client = client
	}

	return t, nil
}

// Call function is used to query a smart contract on given 'to' address
func (t *txRelayer) Call(from, to ethgo.Address, input []byte) (string, error) {
	callMsg := &ethgo.CallMsg{
		From: from,
		To:   &to,
		Data: input,
	}

	return t.client.Eth().Call(callMsg, ethgo.Pending)
}

func (t *txRelayer) SendTransaction(txn *ethgo.Transaction, key ethgo.Key) (*ethgo.Receipt, error) {
	txnHash, err := t.submit(txn, key)
	if err != nil {
		return nil, err
	}

	return t.waitForReceipt(txnHash)
}

func (t *txRelayer) submit(txn *ethgo.Transaction, key ethgo.Key) (ethgo.Hash, error) {
	nonce, err := t.client.Eth().GetNonce(key.Address(), ethgo.Pending)
	if err != nil {
		return ethgo.Hash{}, fmt.Errorf("failed to get nonce: %w", err)
	}

	chainID, err := t.client.Eth().ChainID()
	if err != nil {
		return ethgo.Hash{}, fmt.Errorf("failed to get chain id: %w", err)
	}

	if txn.GasPrice == 0 {
		gasPrice, err := t.client.Eth().GasPrice()
		if err != nil {
			return ethgo.Hash{}, fmt.Errorf("failed to get gas price: %w", err)
		}

		txn.GasPrice = gasPrice
	}

	txn.From = key.Address()
	txn.Nonce = nonce

	if txn.Gas == 0 {
		gasLimit, err := t.client.Eth().EstimateGas(&ethgo.CallMsg{
			From:     txn.From,
			To:       txn.To,
			Data:     txn.Input,
			Value:    txn.Value,
			GasPrice: txn.GasPrice,
		})
		if err != nil {
			return ethgo.Hash{}, fmt.Errorf("failed to estimate gas: %w", err)
		}

		txn.Gas = gasLimit + (gasLimit * gasLimitPercentageBuffer / 100)
	}

	signer := wallet.NewEIP155Signer(chainID.Uint64())
	if txn, err = signer.SignTx(txn, key); err != nil {
		return ethgo.Hash{}, fmt.Errorf("failed to sign transaction: %w", err)
	}

	data, err := txn.MarshalRLPTo(nil)
	if err != nil {
		return ethgo.Hash{}, err
	}

	t.logger.Debug("sending transaction", "from", txn.From, "to", txn.To, "nonce", txn.Nonce,
		"gas", txn.Gas, "gasPrice", txn.GasPrice, "value", txn.Value)

	return t.client.Eth().SendRawTransaction(data)
}

func (t *txRelayer) Client() *jsonrpc.Client {
	return t.client
}

// waitForReceipt polls for the receipt of an already submitted transaction.
// A missing receipt is retried, any other RPC failure is returned as is.
func (t *txRelayer) waitForReceipt(hash ethgo.Hash) (*ethgo.Receipt, error) {
	var receipt *ethgo.Receipt

	backoff := retry.WithMaxRetries(t.receiptMaxAttempts, retry.NewConstant(t.receiptPollInterval))

	err := retry.Do(context.Background(), backoff, func(_ context.Context) error {
		r, err := t.client.Eth().GetTransactionReceipt(hash)
		if err != nil && !strings.Contains(err.Error(), "not found") {
			return err
		}

		if r == nil {
			return retry.RetryableError(errReceiptNotFound)
		}

		receipt = r

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("transaction %s: %w", hash, err)
	}

	t.logger.Debug("transaction included", "hash", hash, "block", receipt.BlockNumber,
		"status", receipt.Status, "gasUsed", receipt.GasUsed)

	return receipt, nil
}

var errReceiptNotFound = errors.New("timeout while waiting for transaction receipt")

// ConvertWeiToEth converts a wei amount to a human readable ether string
func ConvertWeiToEth(wei *big.Int) string {
	if wei == nil {
		return "0"
	}

	eth := new(big.Float).Quo(new(big.Float).SetInt(wei), big.NewFloat(1e18))

	return eth.Text('f', 18)
}

type TxRelayerOption func(*txRelayer)

func WithClient(client *jsonrpc.Client) TxRelayerOption {
	return func(t *txRelayer) {
		t.client = client
	}
}

func WithIPAddress(ipAddress string) TxRelayerOption {
	return func(t *txRelayer) {
		t.ipAddress = ipAddress
	}
}

func WithLogger(logger hclog.Logger) TxRelayerOption {
	return func(t *txRelayer) {
		t.logger = logger
	}
}

// WithReceiptPolling configures how often and how many times a receipt is polled
func WithReceiptPolling(interval time.Duration, maxAttempts uint64) TxRelayerOption {
	return func(t *txRelayer) {
		t.receiptPollInterval = interval
		t.receiptMaxAttempts = maxAttempts
	}
}

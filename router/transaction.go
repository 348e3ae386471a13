package router

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/PxGnome/hyperlane-interpreter/txrelayer"
	"github.com/armon/go-metrics"
	"github.com/umbracle/ethgo"
)

const (
	metricsPrefix = "router"

	receiptSuccess uint64 = 1
)

// sendTransaction submits a single router transaction and checks its receipt status.
// A submission failure or a reverted receipt is reported as ErrTransactionRejected,
// the transaction is never resubmitted.
func sendTransaction(relayer txrelayer.TxRelayer, op string, to *ethgo.Address, input []byte,
	value *big.Int, key ethgo.Key) (*ethgo.Receipt, error) {
	defer metrics.MeasureSince([]string{metricsPrefix, op, "duration"}, time.Now())

	txn := &ethgo.Transaction{
		To:    to,
		Input: input,
		Value: value,
	}

	receipt, err := relayer.SendTransaction(txn, key)
	if err != nil {
		metrics.IncrCounter([]string{metricsPrefix, op, "failed"}, 1)

		return nil, fmt.Errorf("%s: %w: %w", op, ErrTransactionRejected, err)
	}

	if receipt == nil || receipt.Status != receiptSuccess {
		metrics.IncrCounter([]string{metricsPrefix, op, "failed"}, 1)

		var hash ethgo.Hash
		if receipt != nil {
			hash = receipt.TransactionHash
		}

		return nil, fmt.Errorf("%s: %w: transaction %s reverted", op, ErrTransactionRejected, hash)
	}

	metrics.IncrCounter([]string{metricsPrefix, op, "succeeded"}, 1)

	return receipt, nil
}

// decodeCallResult converts a hex encoded eth_call result into bytes
func decodeCallResult(res string) ([]byte, error) {
	return hex.DecodeString(strings.TrimPrefix(res, "0x"))
}

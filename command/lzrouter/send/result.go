package send

import (
	"bytes"
	"fmt"
	"math/big"

	cmdHelper "github.com/PxGnome/hyperlane-interpreter/command/helper"
	"github.com/PxGnome/hyperlane-interpreter/router"
	"github.com/PxGnome/hyperlane-interpreter/txrelayer"
)

type sendResult struct {
	Origin            string `json:"origin"`
	Destination       string `json:"destination"`
	DestinationDomain uint16 `json:"destinationDomain"`
	MessageID         string `json:"messageId"`
	TxHash            string `json:"txHash"`
	Fee               string `json:"fee"`

	feeWei *big.Int
}

func newSendResult(req router.DispatchRequest, receipt *router.DispatchReceipt) *sendResult {
	return &sendResult{
		Origin:            req.Origin.String(),
		Destination:       fmt.Sprintf("%s@%s", req.DestinationAddress, req.DestinationNetwork),
		DestinationDomain: receipt.DestinationDomain,
		MessageID:         receipt.MessageID.String(),
		TxHash:            receipt.TxHash.String(),
		Fee:               receipt.Fee.String(),
		feeWei:            receipt.Fee,
	}
}

func (r *sendResult) GetOutput() string {
	var buffer bytes.Buffer

	buffer.WriteString("\n[LZROUTER - SEND MESSAGE]\n")

	vals := []string{
		fmt.Sprintf("Origin router|%s", r.Origin),
		fmt.Sprintf("Destination|%s", r.Destination),
		fmt.Sprintf("Destination chain id|%d", r.DestinationDomain),
		fmt.Sprintf("Message ID|%s", r.MessageID),
		fmt.Sprintf("Transaction (hash)|%s", r.TxHash),
		fmt.Sprintf("Fee (wei)|%s", r.Fee),
		fmt.Sprintf("Fee (eth)|%s", txrelayer.ConvertWeiToEth(r.feeWei)),
	}

	buffer.WriteString(cmdHelper.FormatKV(vals))
	buffer.WriteString("\n")

	return buffer.String()
}

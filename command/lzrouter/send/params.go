package send

import (
	"fmt"

	"github.com/PxGnome/hyperlane-interpreter/addressbook"
	"github.com/PxGnome/hyperlane-interpreter/router"
	"github.com/umbracle/ethgo"
)

const encodingFlag = "encoding"

type sendParams struct {
	encoding string
}

func (sp *sendParams) validateFlags() error {
	switch router.PayloadEncoding(sp.encoding) {
	case router.EncodingUTF8, router.EncodingHex:
		return nil
	default:
		return fmt.Errorf("unsupported payload encoding %q, use %s or %s",
			sp.encoding, router.EncodingUTF8, router.EncodingHex)
	}
}

// request builds the dispatch request out of the positional arguments
// <origin-router> <destination-network> <destination-address> <message>
func (sp *sendParams) request(args []string) (router.DispatchRequest, error) {
	var (
		origin, destination ethgo.Address
		err                 error
	)

	if origin, err = addressbook.ParseAddress(args[0]); err != nil {
		return router.DispatchRequest{}, fmt.Errorf("origin router address: %w", err)
	}

	if destination, err = addressbook.ParseAddress(args[2]); err != nil {
		return router.DispatchRequest{}, fmt.Errorf("destination address: %w", err)
	}

	return router.DispatchRequest{
		Origin:             origin,
		DestinationNetwork: args[1],
		DestinationAddress: destination,
		Message:            args[3],
		Encoding:           router.PayloadEncoding(sp.encoding),
	}, nil
}

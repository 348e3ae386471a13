package send

import (
	"math/big"
	"testing"

	"github.com/PxGnome/hyperlane-interpreter/router"
	"github.com/stretchr/testify/require"
	"github.com/umbracle/ethgo"
)

const (
	originAddr      = "0xDddD17bDeF830103846f89cF61d362A689195c29"
	destinationAddr = "0x695b3e0da6823093d4A7d6628CdDFb37aa8CA907"
)

func TestSendParams_Request(t *testing.T) {
	t.Parallel()

	p := &sendParams{encoding: string(router.EncodingUTF8)}
	require.NoError(t, p.validateFlags())

	req, err := p.request([]string{originAddr, "mumbai", destinationAddr, "abc"})
	require.NoError(t, err)
	require.Equal(t, router.DispatchRequest{
		Origin:             ethgo.HexToAddress(originAddr),
		DestinationNetwork: "mumbai",
		DestinationAddress: ethgo.HexToAddress(destinationAddr),
		Message:            "abc",
		Encoding:           router.EncodingUTF8,
	}, req)

	_, err = p.request([]string{"0x1", "mumbai", destinationAddr, "abc"})
	require.ErrorContains(t, err, "origin router address")

	_, err = p.request([]string{originAddr, "mumbai", "mumbai", "abc"})
	require.ErrorContains(t, err, "destination address")

	require.ErrorContains(t, (&sendParams{encoding: "base64"}).validateFlags(), "unsupported payload encoding")
}

func TestSendResult(t *testing.T) {
	t.Parallel()

	res := newSendResult(router.DispatchRequest{
		Origin:             ethgo.HexToAddress(originAddr),
		DestinationNetwork: "mumbai",
		DestinationAddress: ethgo.HexToAddress(destinationAddr),
	}, &router.DispatchReceipt{
		MessageID:         ethgo.Hash{0x1},
		TxHash:            ethgo.Hash{0x2},
		Fee:               big.NewInt(1500000000000000000),
		DestinationDomain: 10109,
	})

	require.Equal(t, "1500000000000000000", res.Fee)

	out := res.GetOutput()
	require.Contains(t, out, "1.500000000000000000")
	require.Contains(t, out, "@mumbai")
	require.Contains(t, out, "10109")
}

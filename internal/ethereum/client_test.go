package ethereum

import (
	"bytes"
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testContract = common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3")

// fakeCaller 按方法选择器返回预先编码的结果
type fakeCaller struct {
	t      *testing.T
	abi    abi.ABI
	count  int64
	err    error
	lastTo *common.Address
}

func (f *fakeCaller) CallContract(ctx context.Context, call ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
	f.lastTo = call.To
	if f.err != nil {
		return nil, f.err
	}

	count := f.abi.Methods["campaignCount"]
	get := f.abi.Methods["getCampaign"]
	switch {
	case bytes.Equal(call.Data[:4], count.ID):
		return count.Outputs.Pack(big.NewInt(f.count))
	case bytes.Equal(call.Data[:4], get.ID):
		args, err := get.Inputs.Unpack(call.Data[4:])
		require.NoError(f.t, err)
		id := args[0].(*big.Int)
		return get.Outputs.Pack(
			"Campaign "+id.String(),
			"description",
			"ipfs://image",
			"Technology",
			big.NewInt(1500000000000000),
			new(big.Int).Mul(id, big.NewInt(100000000000000)),
			big.NewInt(1684166400),
		)
	}
	f.t.Fatalf("unexpected call data %x", call.Data)
	return nil, nil
}

func newTestClient(t *testing.T, caller *fakeCaller) *Client {
	t.Helper()
	parsed, err := ContractABI()
	require.NoError(t, err)
	caller.t = t
	caller.abi = parsed

	c, err := NewClient(caller, testContract)
	require.NoError(t, err)
	return c
}

func TestClientCampaignCount(t *testing.T) {
	caller := &fakeCaller{count: 12}
	c := newTestClient(t, caller)

	n, err := c.CampaignCount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(12), n)
	require.NotNil(t, caller.lastTo)
	assert.Equal(t, testContract, *caller.lastTo)
}

func TestClientGetCampaign(t *testing.T) {
	c := newTestClient(t, &fakeCaller{})

	campaign, err := c.GetCampaign(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, int64(3), campaign.ID)
	assert.Equal(t, "Campaign 3", campaign.Title)
	assert.Equal(t, "1500000000000000", campaign.Goal)
	assert.Equal(t, "300000000000000", campaign.Raised)
	assert.Equal(t, int64(1684166400), campaign.Deadline)
	assert.Equal(t, "ipfs://image", campaign.Image)
	assert.Equal(t, "Technology", campaign.Category)
}

func TestClientCallError(t *testing.T) {
	c := newTestClient(t, &fakeCaller{err: errors.New("execution reverted")})

	_, err := c.CampaignCount(context.Background())
	assert.ErrorContains(t, err, "call campaignCount")
}

func TestDialValidation(t *testing.T) {
	_, err := Dial("", testContract.Hex())
	assert.Error(t, err)

	_, err = Dial("http://localhost:8545", "not-an-address")
	assert.Error(t, err)
}

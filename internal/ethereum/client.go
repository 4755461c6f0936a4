package ethereum

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"github.com/blues/decentrafund/internal/model"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
)

// Client 众筹合约只读客户端
type Client struct {
	caller       ethereum.ContractCaller
	closer       func()
	ContractAddr common.Address
	contractABI  abi.ABI
}

// 众筹合约ABI定义（只读部分）
const contractABI = `[
	{
		"inputs": [],
		"name": "campaignCount",
		"outputs": [{"name": "", "type": "uint256"}],
		"stateMutability": "view",
		"type": "function"
	},
	{
		"inputs": [{"name": "id", "type": "uint256"}],
		"name": "getCampaign",
		"outputs": [
			{"name": "title", "type": "string"},
			{"name": "description", "type": "string"},
			{"name": "image", "type": "string"},
			{"name": "category", "type": "string"},
			{"name": "goal", "type": "uint256"},
			{"name": "raised", "type": "uint256"},
			{"name": "deadline", "type": "uint256"}
		],
		"stateMutability": "view",
		"type": "function"
	}
]`

// Dial 连接RPC节点并创建合约客户端
func Dial(rpcURL, contractAddr string) (*Client, error) {
	if rpcURL == "" {
		return nil, fmt.Errorf("no RPC URL configured")
	}
	if !common.IsHexAddress(contractAddr) {
		return nil, fmt.Errorf("invalid contract address: %q", contractAddr)
	}

	client, err := ethclient.Dial(rpcURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to ethereum client: %w", err)
	}

	c, err := NewClient(client, common.HexToAddress(contractAddr))
	if err != nil {
		client.Close()
		return nil, err
	}
	c.closer = client.Close
	return c, nil
}

// NewClient 使用已有的合约调用器创建客户端
func NewClient(caller ethereum.ContractCaller, contractAddr common.Address) (*Client, error) {
	parsedABI, err := ContractABI()
	if err != nil {
		return nil, err
	}

	return &Client{
		caller:       caller,
		ContractAddr: contractAddr,
		contractABI:  parsedABI,
	}, nil
}

// ContractABI 解析众筹合约ABI
func ContractABI() (abi.ABI, error) {
	parsedABI, err := abi.JSON(strings.NewReader(contractABI))
	if err != nil {
		return abi.ABI{}, fmt.Errorf("failed to parse contract ABI: %w", err)
	}
	return parsedABI, nil
}

// Close 关闭底层连接
func (c *Client) Close() {
	if c.closer != nil {
		c.closer()
	}
}

// CampaignCount 读取合约中的活动数量
func (c *Client) CampaignCount(ctx context.Context) (uint64, error) {
	out, err := c.call(ctx, "campaignCount")
	if err != nil {
		return 0, err
	}

	count, ok := out[0].(*big.Int)
	if !ok || !count.IsUint64() {
		return 0, fmt.Errorf("unexpected campaignCount result: %v", out[0])
	}
	return count.Uint64(), nil
}

// GetCampaign 读取指定索引的活动
func (c *Client) GetCampaign(ctx context.Context, index uint64) (model.RawCampaign, error) {
	out, err := c.call(ctx, "getCampaign", new(big.Int).SetUint64(index))
	if err != nil {
		return model.RawCampaign{}, err
	}
	if len(out) != 7 {
		return model.RawCampaign{}, fmt.Errorf("unexpected getCampaign result length: %d", len(out))
	}

	title, _ := out[0].(string)
	description, _ := out[1].(string)
	image, _ := out[2].(string)
	category, _ := out[3].(string)
	goal, okGoal := out[4].(*big.Int)
	raised, okRaised := out[5].(*big.Int)
	deadline, okDeadline := out[6].(*big.Int)
	if !okGoal || !okRaised || !okDeadline {
		return model.RawCampaign{}, fmt.Errorf("invalid getCampaign result for campaign %d", index)
	}
	if !deadline.IsInt64() {
		return model.RawCampaign{}, fmt.Errorf("deadline out of range for campaign %d", index)
	}

	return model.RawCampaign{
		ID:          int64(index),
		Title:       title,
		Goal:        goal.String(),
		Raised:      raised.String(),
		Deadline:    deadline.Int64(),
		Description: description,
		Image:       image,
		Category:    category,
	}, nil
}

func (c *Client) call(ctx context.Context, method string, args ...interface{}) ([]interface{}, error) {
	data, err := c.contractABI.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("pack %s: %w", method, err)
	}

	addr := c.ContractAddr
	result, err := c.caller.CallContract(ctx, ethereum.CallMsg{To: &addr, Data: data}, nil)
	if err != nil {
		return nil, fmt.Errorf("call %s: %w", method, err)
	}

	out, err := c.contractABI.Unpack(method, result)
	if err != nil {
		return nil, fmt.Errorf("unpack %s: %w", method, err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("empty %s result", method)
	}
	return out, nil
}

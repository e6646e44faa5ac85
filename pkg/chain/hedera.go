package chain

import (
	"encoding/json"
	"fmt"
	"strings"

	"hedera-bridge/pkg/errno"
	"hedera-bridge/pkg/hederarpc"
	"hedera-bridge/pkg/jsonrpc"
)

const HederaLogoURL = "/chain-logos/hedera-hbar-logo.png"

// Metadata 链的展示信息, 只读
type Metadata struct {
	Name    string   `json:"name"`
	ID      string   `json:"id"`
	RPC     []string `json:"rpc"`
	Slip44  int      `json:"slip44"`
	Testnet bool     `json:"testnet"`
	Logo    string   `json:"logo"`
	RGB     string   `json:"rgb"`
}

// Hedera 交易直接走 Hedera 网络 (SDK), 不经过 JSON-RPC relay, 所以 rpc 为空
var hederaChains = map[string]Metadata{
	"testnet": {
		Name:    "Hedera Testnet",
		ID:      hederarpc.ChainTestnet,
		RPC:     []string{},
		Slip44:  hederarpc.Slip44,
		Testnet: true,
		Logo:    HederaLogoURL,
		RGB:     "118, 90, 234",
	},
}

// UnknownChainError 链标识在注册表中不存在
type UnknownChainError struct {
	ChainID string
}

func (e *UnknownChainError) Error() string {
	return fmt.Sprintf("No chain metadata found for chainId: %s", e.ChainID)
}

// Errno 转为 errno, 便于 HTTP 层统一返回
func (e *UnknownChainError) Errno() errno.Errno {
	return errno.ErrUnknownChain.WithMessage(e.Error())
}

// GetChainMetadata 按 "hedera:<reference>" 的第二段查找
func GetChainMetadata(chainID string) (Metadata, error) {
	parts := strings.Split(chainID, ":")
	if len(parts) < 2 {
		return Metadata{}, &UnknownChainError{ChainID: chainID}
	}
	metadata, ok := hederaChains[parts[1]]
	if !ok {
		return Metadata{}, &UnknownChainError{ChainID: chainID}
	}
	metadata.RPC = append([]string{}, metadata.RPC...)
	return metadata, nil
}

// Chains 返回所有已注册的链标识
func Chains() []string {
	ids := make([]string, 0, len(hederaChains))
	for _, m := range hederaChains {
		ids = append(ids, m.ID)
	}
	return ids
}

// RequestRender 请求详情中的一行
type RequestRender struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// RenderRequest 输出 Method 与格式化后的 params
func RenderRequest(request jsonrpc.Request) []RequestRender {
	renders := []RequestRender{
		{Label: "Method", Value: request.Method},
	}

	params := "undefined"
	if len(request.Params) > 0 {
		var v interface{}
		if err := json.Unmarshal(request.Params, &v); err == nil {
			if pretty, err := json.MarshalIndent(v, "", "\t"); err == nil {
				params = string(pretty)
			}
		} else {
			params = string(request.Params)
		}
	}
	renders = append(renders, RequestRender{Label: "params", Value: params})
	return renders
}

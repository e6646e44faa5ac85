package hederarpc

// Hedera JSON-RPC 方法名, 线上大小写敏感, 不能改写
const (
	MethodSignAndExecuteTransaction = "hedera_signAndExecuteTransaction"
	MethodSignAndReturnTransaction  = "hedera_signAndReturnTransaction"
	MethodSignMessage               = "hedera_signMessage"
)

// SigningMethods 钱包支持的全部签名方法
var SigningMethods = []string{
	MethodSignAndExecuteTransaction,
	MethodSignAndReturnTransaction,
	MethodSignMessage,
}

// IsSigningMethod 判断 method 是否为受支持的签名方法
func IsSigningMethod(method string) bool {
	for _, m := range SigningMethods {
		if m == method {
			return true
		}
	}
	return false
}

const (
	// ChainTestnet 唯一定义的链标识
	ChainTestnet = "hedera:testnet"
	// Slip44 Hedera 在 SLIP-0044 中的币种编号
	Slip44 = 3030
	// DefaultNodeAccount 未指定节点时默认发往 0.0.3
	DefaultNodeAccount uint64 = 3
)

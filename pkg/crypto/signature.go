package crypto

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
)

var (
	ErrInvalidSignatureLength = errors.New("signature must be 65 bytes")
	ErrSignatureMismatch      = errors.New("signature does not match address")
)

// ValidateEthereumAddress 校验 0x 开头的 20 字节十六进制地址
func ValidateEthereumAddress(address string) bool {
	return common.IsHexAddress(address) && strings.HasPrefix(address, "0x")
}

// NormalizeAddress 地址统一为小写
func NormalizeAddress(address string) string {
	return strings.ToLower(strings.TrimSpace(address))
}

// RecoverAddress 从 personal_sign 签名中恢复签名地址（小写）
func RecoverAddress(message, signature string) (string, error) {
	sig, err := hexutil.Decode(signature)
	if err != nil {
		return "", fmt.Errorf("failed to decode signature: %w", err)
	}
	if len(sig) != 65 {
		return "", ErrInvalidSignatureLength
	}
	// 钱包返回的 v 为 27/28
	if sig[64] >= 27 {
		sig[64] -= 27
	}

	pub, err := ethcrypto.SigToPub(accounts.TextHash([]byte(message)), sig)
	if err != nil {
		return "", fmt.Errorf("failed to recover public key: %w", err)
	}
	return NormalizeAddress(ethcrypto.PubkeyToAddress(*pub).Hex()), nil
}

// VerifySignature 校验签名是否由 address 产生
func VerifySignature(message, signature, address string) error {
	recovered, err := RecoverAddress(message, signature)
	if err != nil {
		return err
	}
	if recovered != NormalizeAddress(address) {
		return ErrSignatureMismatch
	}
	return nil
}

// SignMessage 使用私钥对消息做 personal_sign，v 为 27/28。本地开发与测试使用。
func SignMessage(message string, key []byte) (string, error) {
	priv, err := ethcrypto.ToECDSA(key)
	if err != nil {
		return "", fmt.Errorf("failed to load private key: %w", err)
	}
	sig, err := ethcrypto.Sign(accounts.TextHash([]byte(message)), priv)
	if err != nil {
		return "", fmt.Errorf("failed to sign message: %w", err)
	}
	sig[64] += 27
	return hexutil.Encode(sig), nil
}

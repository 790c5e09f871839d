package crypto

import (
	"testing"

	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEthereumAddress(t *testing.T) {
	assert.True(t, ValidateEthereumAddress("0x52908400098527886E0F7030069857D2E4169EE7"))
	assert.False(t, ValidateEthereumAddress("52908400098527886E0F7030069857D2E4169EE7"))
	assert.False(t, ValidateEthereumAddress("0x1234"))
	assert.Equal(t, "0xabcdef0000000000000000000000000000000001", NormalizeAddress(" 0xABCDEF0000000000000000000000000000000001 "))
}

func TestSignAndRecover(t *testing.T) {
	key, err := ethcrypto.GenerateKey()
	require.NoError(t, err)
	address := ethcrypto.PubkeyToAddress(key.PublicKey).Hex()

	sig, err := SignMessage("login to ogre", ethcrypto.FromECDSA(key))
	require.NoError(t, err)

	recovered, err := RecoverAddress("login to ogre", sig)
	require.NoError(t, err)
	assert.Equal(t, NormalizeAddress(address), recovered)
	assert.NoError(t, VerifySignature("login to ogre", sig, address))

	assert.ErrorIs(t, VerifySignature("another message", sig, address), ErrSignatureMismatch)

	_, err = RecoverAddress("login to ogre", "0x1234")
	assert.ErrorIs(t, err, ErrInvalidSignatureLength)
}

package credential

import (
	"ogre-backend/internal/contracts/ogreabi"
	"ogre-backend/internal/ledger"

	"github.com/ethereum/go-ethereum/common"
)

// Send 由当前合约（tx.Self）经 safeTransferFrom 转出自己持有的凭证，并以自身地址发出 ERC721Sent。
// 调用方负责权限检查。
func Send(tx *ledger.Tx, to common.Address, tokenID uint64, nft common.Address) error {
	holder := tx.Self()
	calldata, err := ogreabi.PackMethod(ogreabi.ERC721, "safeTransferFrom", holder, to, ogreabi.BigUint(tokenID))
	if err != nil {
		return err
	}
	if err := tx.Call(nft, nil, calldata); err != nil {
		return err
	}

	log, err := ogreabi.PackEvent(ogreabi.Governance, "ERC721Sent", holder, to, ogreabi.BigUint(tokenID), nft)
	if err != nil {
		return err
	}
	tx.Emit(log)
	return nil
}

// SendArgs 解码 sendERC721(address,uint256,address) 的参数
func SendArgs(values []interface{}) (to common.Address, tokenID uint64, nft common.Address, err error) {
	tokenID, err = tokenIDArg(values[1])
	if err != nil {
		return common.Address{}, 0, common.Address{}, err
	}
	return values[0].(common.Address), tokenID, values[2].(common.Address), nil
}

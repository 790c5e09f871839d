package governance

import (
	"context"
	"fmt"
	"math/big"

	"ogre-backend/internal/contracts/credential"
	"ogre-backend/internal/contracts/feetoken"
	"ogre-backend/internal/contracts/hopper"
	"ogre-backend/internal/ledger"
	"ogre-backend/internal/types"

	"github.com/ethereum/go-ethereum/common"
)

// CreateCredential 通过凭证工厂部署 OGRE721，调用者为合约所有者
func (s *Service) CreateCredential(ctx context.Context, caller common.Address, req *types.CreateCredentialRequest) (*types.TxResult, error) {
	var created common.Address
	_, result, err := s.submit(ctx, "CreateCredential", caller, func(tx *ledger.Tx) error {
		factory, err := contractAt[*credential.Factory](tx, s.credentialFactory)
		if err != nil {
			return err
		}
		token, err := factory.ProduceNFT(tx, req.Name, req.Symbol, caller)
		if err != nil {
			return err
		}
		created = token.Address()
		return nil
	})
	if err != nil {
		return nil, err
	}
	result.Contract = created.Hex()
	return result, nil
}

// MintCredential 合约所有者铸造凭证
func (s *Service) MintCredential(ctx context.Context, caller, nft common.Address, req *types.MintCredentialRequest) (*types.TxResult, error) {
	to, err := ParseAddress(req.To)
	if err != nil {
		return nil, err
	}
	_, result, err := s.submit(ctx, "MintCredential", caller, func(tx *ledger.Tx) error {
		token, err := contractAt[*credential.Token](tx, nft)
		if err != nil {
			return err
		}
		return token.Mint(tx, to, req.TokenID)
	})
	return result, err
}

// TransferCredential 持有人或被授权人安全转移凭证，合约接收方须能接收凭证
func (s *Service) TransferCredential(ctx context.Context, caller, nft, to common.Address, tokenID uint64) (*types.TxResult, error) {
	_, result, err := s.submit(ctx, "TransferCredential", caller, func(tx *ledger.Tx) error {
		token, err := contractAt[*credential.Token](tx, nft)
		if err != nil {
			return err
		}
		owner, err := token.OwnerOf(tokenID)
		if err != nil {
			return err
		}
		return token.SafeTransferFrom(tx, owner, to, tokenID)
	})
	return result, err
}

// CredentialOwner 凭证持有人：账本上的合约直接读取，否则查询远端链
func (s *Service) CredentialOwner(ctx context.Context, nft common.Address, tokenID uint64) (*types.CredentialOwnerResponse, error) {
	resp := &types.CredentialOwnerResponse{NFTAddress: nft.Hex(), TokenID: tokenID}

	var local bool
	err := s.ledger.View(ctx, func(tx *ledger.Tx) error {
		c, ok := tx.Contract(nft)
		if !ok {
			return nil
		}
		reader, ok := c.(credential.OwnershipReader)
		if !ok {
			return fmt.Errorf("%w: %s is not a credential", ErrContractNotFound, nft.Hex())
		}
		local = true
		owner, err := reader.OwnerOf(tokenID)
		if err != nil {
			return err
		}
		resp.Owner, resp.Source = owner.Hex(), "local"
		return nil
	})
	if err != nil || local {
		return resp, err
	}

	if s.remote == nil {
		return nil, ErrRemoteDisabled
	}
	owner, err := s.remote.OwnerOf(ctx, nft, new(big.Int).SetUint64(tokenID))
	if err != nil {
		return nil, err
	}
	resp.Owner, resp.Source = owner.Hex(), "remote"
	return resp, nil
}

// CreateFeeToken 部署 OGRE20 起草费代币
func (s *Service) CreateFeeToken(ctx context.Context, caller common.Address, req *types.CreateFeeTokenRequest) (*types.TxResult, error) {
	var created common.Address
	_, result, err := s.submit(ctx, "CreateFeeToken", caller, func(tx *ledger.Tx) error {
		token, err := feetoken.Deploy(tx, req.Name, req.Symbol, caller)
		if err != nil {
			return err
		}
		created = token.Address()
		return nil
	})
	if err != nil {
		return nil, err
	}
	result.Contract = created.Hex()
	return result, nil
}

// MintFeeToken 代币所有者增发
func (s *Service) MintFeeToken(ctx context.Context, caller, token common.Address, req *types.TokenAmountRequest) (*types.TxResult, error) {
	return s.feeTokenOp(ctx, "MintFeeToken", caller, token, req, func(tx *ledger.Tx, t *feetoken.Token, account common.Address, amount *big.Int) error {
		return t.Mint(tx, account, amount)
	})
}

// ApproveFeeToken 授权 spender（通常是 DAO）扣取起草费
func (s *Service) ApproveFeeToken(ctx context.Context, caller, token common.Address, req *types.TokenAmountRequest) (*types.TxResult, error) {
	return s.feeTokenOp(ctx, "ApproveFeeToken", caller, token, req, func(tx *ledger.Tx, t *feetoken.Token, account common.Address, amount *big.Int) error {
		return t.Approve(tx, account, amount)
	})
}

func (s *Service) feeTokenOp(ctx context.Context, op string, caller, token common.Address, req *types.TokenAmountRequest,
	fn func(tx *ledger.Tx, t *feetoken.Token, account common.Address, amount *big.Int) error) (*types.TxResult, error) {
	account, err := ParseAddress(req.Account)
	if err != nil {
		return nil, err
	}
	amount, err := ParseAmount(req.Amount)
	if err != nil {
		return nil, err
	}
	_, result, err := s.submit(ctx, op, caller, func(tx *ledger.Tx) error {
		t, err := contractAt[*feetoken.Token](tx, token)
		if err != nil {
			return err
		}
		return fn(tx, t, account, amount)
	})
	return result, err
}

// FeeTokenBalance 代币余额
func (s *Service) FeeTokenBalance(ctx context.Context, token, account common.Address) (*big.Int, error) {
	var balance *big.Int
	err := s.ledger.View(ctx, func(tx *ledger.Tx) error {
		t, err := contractAt[*feetoken.Token](tx, token)
		if err != nil {
			return err
		}
		balance = t.BalanceOf(account)
		return nil
	})
	return balance, err
}

// DeployHopper 部署独立的延时队列
func (s *Service) DeployHopper(ctx context.Context, caller common.Address, delay uint64) (*types.TxResult, error) {
	var created common.Address
	_, result, err := s.submit(ctx, "DeployHopper", caller, func(tx *ledger.Tx) error {
		stub, err := hopper.DeployStub(tx, delay)
		if err != nil {
			return err
		}
		created = stub.Address()
		return nil
	})
	if err != nil {
		return nil, err
	}
	result.Contract = created.Hex()
	return result, nil
}

// LoadHopperAction 动作入队
func (s *Service) LoadHopperAction(ctx context.Context, caller, addr common.Address, info *types.ActionInfo) (*types.HopperActionResponse, error) {
	action, err := ParseAction(info)
	if err != nil {
		return nil, err
	}
	var (
		key   common.Hash
		ready uint64
	)
	_, result, err := s.submit(ctx, "LoadHopperAction", caller, func(tx *ledger.Tx) error {
		stub, err := contractAt[*hopper.StubHopper](tx, addr)
		if err != nil {
			return err
		}
		key, ready, err = stub.LoadAction(tx, action)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &types.HopperActionResponse{TxResult: *result, Key: key.Hex(), Ready: ready}, nil
}

// ExecuteHopperAction 执行已就绪动作，ready 必须与入队时一致
func (s *Service) ExecuteHopperAction(ctx context.Context, caller, addr common.Address, req *types.HopperActionRequest) (*types.TxResult, error) {
	action, err := ParseAction(&req.ActionInfo)
	if err != nil {
		return nil, err
	}
	_, result, err := s.submit(ctx, "ExecuteHopperAction", caller, func(tx *ledger.Tx) error {
		stub, err := contractAt[*hopper.StubHopper](tx, addr)
		if err != nil {
			return err
		}
		return stub.ExecuteAction(tx, action, req.Ready)
	})
	return result, err
}

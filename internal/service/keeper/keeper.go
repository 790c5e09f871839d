package keeper

import (
	"context"
	"errors"
	"time"

	"ogre-backend/internal/contracts/dao"
	"ogre-backend/internal/contracts/hopper"
	"ogre-backend/internal/types"
	"ogre-backend/pkg/logger"

	"github.com/ethereum/go-ethereum/common"
)

// Executor 执行已就绪的提案
type Executor interface {
	ExecuteProposal(ctx context.Context, caller, daoAddr, proposalAddr common.Address) (*types.TxResult, error)
}

// Keeper 轮询就绪队列并以 keeper 账户执行到期提案。
// 执行失败的提案保留在队列中，下一轮重试。
type Keeper struct {
	queue    ReadyQueue
	executor Executor
	now      func() uint64
	account  common.Address
	interval time.Duration
	batch    int64
}

func New(queue ReadyQueue, executor Executor, now func() uint64, account common.Address, interval time.Duration, batch int64) *Keeper {
	if batch <= 0 {
		batch = 50
	}
	return &Keeper{
		queue:    queue,
		executor: executor,
		now:      now,
		account:  account,
		interval: interval,
		batch:    batch,
	}
}

// Run 阻塞运行直到 ctx 取消
func (k *Keeper) Run(ctx context.Context) {
	defer logger.Info("Keeper stopped")

	ticker := time.NewTicker(k.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := k.Tick(ctx); err != nil {
				logger.Error("Keeper Tick Error: ", err)
			}
		}
	}
}

// Tick 执行一轮，返回成功执行的提案数
func (k *Keeper) Tick(ctx context.Context) (int, error) {
	due, err := k.queue.Due(ctx, k.now(), k.batch)
	if err != nil {
		return 0, err
	}

	executed := 0
	for _, entry := range due {
		if ctx.Err() != nil {
			return executed, ctx.Err()
		}

		result, err := k.executor.ExecuteProposal(ctx, k.account, entry.DAO, entry.Proposal)
		switch {
		case err == nil:
			executed++
			logger.Info("Keeper: executed proposal", "proposal", entry.Proposal.Hex(), "tx_hash", result.TxHash)
		case errors.Is(err, dao.ErrProposalNotPassed), errors.Is(err, dao.ErrNotProposal), errors.Is(err, hopper.ErrActionNotLoaded):
			// 已被他人执行或不再可执行
			logger.Warn("Keeper: dropping proposal", "proposal", entry.Proposal.Hex(), "error", err)
		case errors.Is(err, hopper.ErrActionNotReady):
			continue
		default:
			logger.Error("Keeper ExecuteProposal Error: ", err, "proposal", entry.Proposal.Hex())
			continue
		}
		if err := k.queue.Remove(ctx, entry); err != nil {
			logger.Error("Keeper Remove Error: ", err, "proposal", entry.Proposal.Hex())
		}
	}
	return executed, nil
}

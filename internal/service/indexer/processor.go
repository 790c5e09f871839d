package indexer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"

	"ogre-backend/internal/contracts/ogreabi"
	"ogre-backend/internal/ledger"
	"ogre-backend/internal/repository/event"
	"ogre-backend/internal/repository/proposal"
	"ogre-backend/internal/types"
	"ogre-backend/pkg/logger"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/samber/lo"
)

var ErrUnknownEventSignature = errors.New("unknown event signature")

// 提案合约自身发出的事件
var proposalEmitted = map[string]bool{
	"StatusUpdated":   true,
	"VoteCast":        true,
	"VotingPeriodSet": true,
	"ActionAdded":     true,
}

// DecodedLog 按 ABI 解码后的日志
type DecodedLog struct {
	Contract common.Address
	Name     string
	Args     map[string]interface{}
}

// ProposalReader 读取提案当前快照，地址不是提案时返回 nil, nil
type ProposalReader interface {
	ProposalSnapshot(ctx context.Context, addr common.Address) (*types.ProposalRecord, error)
}

// Processor 把账本回执写入事件表并刷新提案投影
type Processor struct {
	events    event.Repository
	proposals proposal.Repository
	reader    ProposalReader
}

func NewProcessor(events event.Repository, proposals proposal.Repository, reader ProposalReader) *Processor {
	return &Processor{
		events:    events,
		proposals: proposals,
		reader:    reader,
	}
}

// ProcessReceipt 索引一笔回执，返回受影响的提案投影
func (p *Processor) ProcessReceipt(ctx context.Context, receipt *ledger.Receipt) ([]types.ProposalRecord, error) {
	rows := make([]types.GovernanceEvent, 0, len(receipt.Logs))
	touched := make([]common.Address, 0)

	for _, log := range receipt.Logs {
		decoded, err := p.Decode(log)
		if err != nil {
			logger.Warn("ProcessReceipt: skip log", "tx_hash", receipt.TxHash.Hex(), "index", log.Index, "error", err)
			continue
		}
		args, err := json.Marshal(decoded.Args)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal event args: %w", err)
		}
		rows = append(rows, types.GovernanceEvent{
			LedgerID:        receipt.LedgerID,
			TxHash:          receipt.TxHash.Hex(),
			BlockNumber:     receipt.BlockNumber,
			LogIndex:        log.Index,
			BlockTimestamp:  receipt.Timestamp,
			ContractAddress: decoded.Contract.Hex(),
			EventName:       decoded.Name,
			Args:            string(args),
		})
		touched = append(touched, affectedProposals(decoded)...)
	}

	if err := p.events.BatchCreate(ctx, rows); err != nil {
		return nil, fmt.Errorf("failed to store events: %w", err)
	}

	var records []types.ProposalRecord
	for _, addr := range lo.Uniq(touched) {
		record, err := p.reader.ProposalSnapshot(ctx, addr)
		if err != nil {
			return nil, fmt.Errorf("failed to read proposal %s: %w", addr.Hex(), err)
		}
		if record == nil {
			continue
		}
		if err := p.proposals.Upsert(ctx, record); err != nil {
			return nil, fmt.Errorf("failed to store proposal %s: %w", addr.Hex(), err)
		}
		records = append(records, *record)
	}

	logger.Debug("ProcessReceipt: ", "block", receipt.BlockNumber, "events", len(rows), "proposals", len(records))
	return records, nil
}

// Decode 按事件签名解码日志，indexed 参数取自 topic
func (p *Processor) Decode(log *ethtypes.Log) (*DecodedLog, error) {
	if len(log.Topics) == 0 {
		return nil, errors.New("log has no topics")
	}

	abiEvent, ok := ogreabi.LookupEvent(log)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownEventSignature, log.Topics[0].Hex())
	}

	args := make(map[string]interface{})
	if err := abiEvent.Inputs.UnpackIntoMap(args, log.Data); err != nil {
		return nil, fmt.Errorf("failed to unpack %s: %w", abiEvent.Name, err)
	}

	topic := 1
	for _, input := range abiEvent.Inputs {
		if !input.Indexed {
			continue
		}
		if topic >= len(log.Topics) {
			return nil, fmt.Errorf("%s: missing topic for %s", abiEvent.Name, input.Name)
		}
		args[input.Name] = decodeTopic(input.Type, log.Topics[topic])
		topic++
	}
	for k, v := range args {
		args[k] = normalize(v)
	}

	return &DecodedLog{Contract: log.Address, Name: abiEvent.Name, Args: args}, nil
}

func decodeTopic(typ abi.Type, topic common.Hash) interface{} {
	switch typ.T {
	case abi.AddressTy:
		return common.BytesToAddress(topic.Bytes())
	case abi.UintTy, abi.IntTy:
		return new(big.Int).SetBytes(topic.Bytes())
	case abi.BoolTy:
		return topic.Big().Sign() != 0
	default:
		return topic
	}
}

// normalize 转为可稳定 JSON 序列化的值
func normalize(v interface{}) interface{} {
	switch x := v.(type) {
	case *big.Int:
		return x.String()
	case common.Address:
		return x.Hex()
	case common.Hash:
		return x.Hex()
	case [32]byte:
		return common.Hash(x).Hex()
	case []byte:
		return hexutil.Encode(x)
	default:
		return v
	}
}

func affectedProposals(d *DecodedLog) []common.Address {
	if proposalEmitted[d.Name] {
		return []common.Address{d.Contract}
	}
	switch d.Name {
	case "ProposalCreated", "ProposalEvaluated", "ProposalExecuted":
		if s, ok := d.Args["proposal"].(string); ok {
			return []common.Address{common.HexToAddress(s)}
		}
	case "ActionLoaded", "ActionExecuted":
		// 执行标记动作的目标是提案本身
		if s, ok := d.Args["target"].(string); ok {
			return []common.Address{common.HexToAddress(s)}
		}
	}
	return nil
}

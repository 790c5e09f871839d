package indexer

import (
	"context"
	"encoding/json"
	"errors"
	"math/big"
	"testing"

	"ogre-backend/internal/contracts/ogreabi"
	"ogre-backend/internal/ledger"
	"ogre-backend/internal/types"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	daoAddr  = common.HexToAddress("0x0000000000000000000000000000000000000d00")
	propAddr = common.HexToAddress("0x0000000000000000000000000000000000000a01")
	creator  = common.HexToAddress("0x00000000000000000000000000000000000000aa")
)

type fakeEvents struct {
	rows []types.GovernanceEvent
	err  error
}

func (f *fakeEvents) BatchCreate(_ context.Context, events []types.GovernanceEvent) error {
	if f.err != nil {
		return f.err
	}
	f.rows = append(f.rows, events...)
	return nil
}

func (f *fakeEvents) ListByContract(context.Context, string, string, int) ([]types.GovernanceEvent, error) {
	return f.rows, nil
}

func (f *fakeEvents) ListByTxHash(context.Context, string) ([]types.GovernanceEvent, error) {
	return f.rows, nil
}

func (f *fakeEvents) LatestBlock(context.Context) (uint64, error) {
	return 0, nil
}

type fakeProposals struct {
	upserts []types.ProposalRecord
}

func (f *fakeProposals) Upsert(_ context.Context, record *types.ProposalRecord) error {
	f.upserts = append(f.upserts, *record)
	return nil
}

func (f *fakeProposals) GetByAddress(context.Context, string) (*types.ProposalRecord, error) {
	return nil, nil
}

func (f *fakeProposals) ListByDAO(context.Context, string, string, int, int) ([]types.ProposalRecord, int64, error) {
	return nil, 0, nil
}

func (f *fakeProposals) ListAwaitingExecution(context.Context, int) ([]types.ProposalRecord, error) {
	return nil, nil
}

type fakeReader struct {
	reads []common.Address
}

func (f *fakeReader) ProposalSnapshot(_ context.Context, addr common.Address) (*types.ProposalRecord, error) {
	f.reads = append(f.reads, addr)
	if addr != propAddr {
		return nil, nil
	}
	return &types.ProposalRecord{Address: addr.Hex(), DAOAddress: daoAddr.Hex(), Status: "Proposed"}, nil
}

func mustLog(t *testing.T, contractABI abi.ABI, name string, contract common.Address, args ...interface{}) *ethtypes.Log {
	t.Helper()
	log, err := ogreabi.PackEvent(contractABI, name, contract, args...)
	require.NoError(t, err)
	return log
}

func TestDecodeIndexedAndDataArgs(t *testing.T) {
	p := NewProcessor(&fakeEvents{}, &fakeProposals{}, &fakeReader{})

	decoded, err := p.Decode(mustLog(t, ogreabi.Governance, "ProposalCreated", daoAddr, daoAddr, creator, propAddr))
	require.NoError(t, err)
	assert.Equal(t, "ProposalCreated", decoded.Name)
	assert.Equal(t, daoAddr, decoded.Contract)
	assert.Equal(t, daoAddr.Hex(), decoded.Args["daoAddress"])
	assert.Equal(t, creator.Hex(), decoded.Args["creator"])
	assert.Equal(t, propAddr.Hex(), decoded.Args["proposal"])

	decoded, err = p.Decode(mustLog(t, ogreabi.Governance, "VotingPeriodSet", propAddr, big.NewInt(100), big.NewInt(200)))
	require.NoError(t, err)
	assert.Equal(t, "100", decoded.Args["startTime"])
	assert.Equal(t, "200", decoded.Args["endTime"])
}

func TestDecodeSplitsTokenTransfers(t *testing.T) {
	p := NewProcessor(&fakeEvents{}, &fakeProposals{}, &fakeReader{})
	token := common.HexToAddress("0x0000000000000000000000000000000000000777")

	nft, err := p.Decode(mustLog(t, ogreabi.ERC721, "Transfer", token, common.Address{}, creator, big.NewInt(5)))
	require.NoError(t, err)
	assert.Equal(t, "5", nft.Args["tokenId"])
	assert.NotContains(t, nft.Args, "value")

	fee, err := p.Decode(mustLog(t, ogreabi.ERC20, "Transfer", token, common.Address{}, creator, big.NewInt(5)))
	require.NoError(t, err)
	assert.Equal(t, "5", fee.Args["value"])
	assert.NotContains(t, fee.Args, "tokenId")
}

func TestDecodeUnknownEvent(t *testing.T) {
	p := NewProcessor(&fakeEvents{}, &fakeProposals{}, &fakeReader{})
	_, err := p.Decode(&ethtypes.Log{Topics: []common.Hash{common.HexToHash("0xdead")}})
	assert.ErrorIs(t, err, ErrUnknownEventSignature)
}

func receiptOf(logs ...*ethtypes.Log) *ledger.Receipt {
	for i, log := range logs {
		log.Index = uint(i)
	}
	return &ledger.Receipt{
		LedgerID:    "ledger-1",
		TxHash:      common.HexToHash("0xabc"),
		BlockNumber: 7,
		Timestamp:   1_700_000_000,
		From:        creator,
		Logs:        logs,
	}
}

func TestProcessReceipt(t *testing.T) {
	events, proposals, reader := &fakeEvents{}, &fakeProposals{}, &fakeReader{}
	p := NewProcessor(events, proposals, reader)

	receipt := receiptOf(
		mustLog(t, ogreabi.Governance, "StatusUpdated", propAddr, "Proposed"),
		&ethtypes.Log{Address: daoAddr, Topics: []common.Hash{common.HexToHash("0xdead")}},
		mustLog(t, ogreabi.Governance, "ProposalCreated", daoAddr, daoAddr, creator, propAddr),
		mustLog(t, ogreabi.Governance, "MemberRegistered", daoAddr, daoAddr, creator, big.NewInt(1), creator),
	)

	records, err := p.ProcessReceipt(context.Background(), receipt)
	require.NoError(t, err)

	require.Len(t, events.rows, 3)
	assert.Equal(t, "StatusUpdated", events.rows[0].EventName)
	assert.Equal(t, uint(2), events.rows[1].LogIndex)
	assert.Equal(t, uint64(7), events.rows[1].BlockNumber)
	assert.Equal(t, receipt.TxHash.Hex(), events.rows[1].TxHash)
	assert.Equal(t, "ledger-1", events.rows[1].LedgerID)

	var args map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(events.rows[1].Args), &args))
	assert.Equal(t, propAddr.Hex(), args["proposal"])

	// 同一提案只刷新一次
	assert.Equal(t, []common.Address{propAddr}, reader.reads)
	require.Len(t, records, 1)
	assert.Equal(t, propAddr.Hex(), proposals.upserts[0].Address)
}

func TestProcessReceiptSkipsNonProposals(t *testing.T) {
	events, proposals, reader := &fakeEvents{}, &fakeProposals{}, &fakeReader{}
	p := NewProcessor(events, proposals, reader)
	other := common.HexToAddress("0x0000000000000000000000000000000000000bbb")

	records, err := p.ProcessReceipt(context.Background(), receiptOf(
		mustLog(t, ogreabi.Governance, "ActionLoaded", daoAddr, common.HexToHash("0x01"), other, big.NewInt(0), "", []byte{}, big.NewInt(10)),
	))
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.Equal(t, []common.Address{other}, reader.reads)
	assert.Empty(t, proposals.upserts)
}

func TestProcessReceiptStoreError(t *testing.T) {
	p := NewProcessor(&fakeEvents{err: errors.New("db down")}, &fakeProposals{}, &fakeReader{})
	_, err := p.ProcessReceipt(context.Background(), receiptOf(
		mustLog(t, ogreabi.Governance, "ProposalExecuted", daoAddr, propAddr),
	))
	assert.ErrorContains(t, err, "db down")
}

package proposal

import (
	"context"
	"math/big"
	"testing"

	"ogre-backend/internal/contracts/hopper"
	"ogre-backend/internal/contracts/ogreabi"
	"ogre-backend/internal/ledger"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	userA = common.HexToAddress("0x00000000000000000000000000000000000000aa")
	userB = common.HexToAddress("0x00000000000000000000000000000000000000bb")
)

// stubDAO 测试用协调者
type stubDAO struct {
	address    common.Address
	owners     map[uint64]common.Address
	registered map[uint64]bool
	minPeriod  uint64
}

func (d *stubDAO) Address() common.Address { return d.address }

func (d *stubDAO) Invoke(tx *ledger.Tx, selector [4]byte, args []byte) error {
	return ledger.ErrUnknownSelector
}

func (d *stubDAO) IsTokenOwner(tokenID uint64, account common.Address) bool {
	return d.owners[tokenID] == account
}

func (d *stubDAO) IsRegistered(tokenID uint64) bool { return d.registered[tokenID] }

func (d *stubDAO) MinVotePeriod() uint64 { return d.minPeriod }

type fixture struct {
	clock    *ledger.ManualClock
	l        *ledger.Ledger
	dao      *stubDAO
	proposal *Proposal
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{clock: ledger.NewManualClock(1_700_000_000)}
	f.l = ledger.New(f.clock)

	receipt, err := f.send(userA, func(tx *ledger.Tx) error {
		_, err := tx.Deploy(func(addr common.Address) (ledger.Contract, error) {
			f.dao = &stubDAO{
				address:    addr,
				owners:     map[uint64]common.Address{0: userA, 1: userA, 2: userB, 3: userB},
				registered: map[uint64]bool{0: true, 1: true, 2: true},
				minPeriod:  300,
			}
			return f.dao, nil
		})
		if err != nil {
			return err
		}
		f.proposal, err = Deploy(tx, "Test Proposal", f.dao.Address(), userA)
		return err
	})
	require.NoError(t, err)
	require.Len(t, receipt.Logs, 1)
	assert.Equal(t, ogreabi.Governance.Events["StatusUpdated"].ID, receipt.Logs[0].Topics[0])
	return f
}

func (f *fixture) send(from common.Address, fn func(tx *ledger.Tx) error) (*ledger.Receipt, error) {
	return f.l.Transact(context.Background(), from, fn)
}

// asDAO 以 DAO 合约身份调用
func (f *fixture) asDAO(fn func(tx *ledger.Tx) error) error {
	_, err := f.send(userA, func(tx *ledger.Tx) error {
		defer tx.Enter(f.dao.Address())()
		return fn(tx)
	})
	return err
}

func (f *fixture) openVoting(t *testing.T) (uint64, uint64) {
	t.Helper()
	start := f.clock.Now() + 1
	end := start + 300
	_, err := f.send(userA, func(tx *ledger.Tx) error { return f.proposal.SetVotingPeriod(tx, start, end) })
	require.NoError(t, err)
	f.clock.Set(start)
	return start, end
}

func (f *fixture) vote(from common.Address, tokenID uint64, choice Choice) error {
	_, err := f.send(from, func(tx *ledger.Tx) error { return f.proposal.CastVote(tx, tokenID, choice) })
	return err
}

func TestOwnerConfiguration(t *testing.T) {
	f := newFixture(t)
	p := f.proposal

	assert.Equal(t, userA, p.Owner())
	assert.Equal(t, f.dao.Address(), p.DAOAddress())
	assert.Equal(t, 0, p.GetActionCount())

	_, err := f.send(userA, func(tx *ledger.Tx) error {
		if err := p.SetProposalTitle(tx, "Test Proposal 2.0"); err != nil {
			return err
		}
		if err := p.ConfigureProposal(tx, true); err != nil {
			return err
		}
		return p.AddAction(tx, hopper.Action{Target: userA, Value: big.NewInt(1)})
	})
	require.NoError(t, err)
	assert.Equal(t, "Test Proposal 2.0", p.Title())
	assert.True(t, p.Revotable())
	assert.Equal(t, 1, p.GetActionCount())

	action, ok := p.GetAction(0)
	require.True(t, ok)
	assert.Equal(t, userA, action.Target)
	assert.Equal(t, []byte{}, action.Data)

	_, err = f.send(userB, func(tx *ledger.Tx) error { return p.SetProposalTitle(tx, "hijack") })
	assert.ErrorIs(t, err, ErrNotOwner)
}

func TestSetVotingPeriod(t *testing.T) {
	f := newFixture(t)
	p := f.proposal
	now := f.clock.Now()

	cases := []struct {
		name       string
		start, end uint64
		err        error
	}{
		{"start in past", now, now + 300, ErrStartNotInFuture},
		{"end before start", now + 10, now + 10, ErrEndBeforeStart},
		{"too short", now + 1, now + 200, ErrVotePeriodTooShort},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.send(userA, func(tx *ledger.Tx) error { return p.SetVotingPeriod(tx, tc.start, tc.end) })
			assert.ErrorIs(t, err, tc.err)
		})
	}

	start, end := f.openVoting(t)
	assert.Equal(t, start, p.StartTime())
	assert.Equal(t, end, p.EndTime())
	assert.Equal(t, StatusActive, p.Status(f.clock.Now()))
	assert.Equal(t, StatusProposed, p.StoredStatus())

	_, err := f.send(userA, func(tx *ledger.Tx) error {
		return p.AddAction(tx, hopper.Action{Target: userB})
	})
	assert.ErrorIs(t, err, ErrProposalLocked)
}

func TestCastVote(t *testing.T) {
	f := newFixture(t)

	assert.ErrorIs(t, f.vote(userA, 0, ChoiceYes), ErrVotingPeriodUnset)

	_, end := f.openVoting(t)

	require.NoError(t, f.vote(userA, 0, ChoiceYes))
	assert.ErrorIs(t, f.vote(userA, 0, ChoiceNo), ErrAlreadyVoted)
	assert.ErrorIs(t, f.vote(userA, 2, ChoiceYes), ErrNotTokenOwner)
	assert.ErrorIs(t, f.vote(userB, 3, ChoiceYes), ErrNotMember)
	assert.ErrorIs(t, f.vote(userB, 2, Choice(7)), ErrInvalidChoice)
	require.NoError(t, f.vote(userB, 2, ChoiceAbstain))

	tally := f.proposal.Tally()
	assert.Equal(t, Tally{Yes: 1, Abstain: 1}, tally)
	assert.Equal(t, uint64(2), tally.Total())

	f.clock.Set(end)
	assert.ErrorIs(t, f.vote(userA, 1, ChoiceYes), ErrVotingClosed)
	assert.Equal(t, StatusProposed, f.proposal.Status(f.clock.Now()))
}

func TestRevoteAdjustsTally(t *testing.T) {
	f := newFixture(t)
	_, err := f.send(userA, func(tx *ledger.Tx) error { return f.proposal.ConfigureProposal(tx, true) })
	require.NoError(t, err)
	f.openVoting(t)

	require.NoError(t, f.vote(userA, 0, ChoiceYes))
	require.NoError(t, f.vote(userA, 1, ChoiceYes))
	require.NoError(t, f.vote(userA, 0, ChoiceNo))
	require.NoError(t, f.vote(userA, 0, ChoiceNo))

	assert.Equal(t, Tally{Yes: 1, No: 1}, f.proposal.Tally())
	choice, ok := f.proposal.VoteOf(0)
	require.True(t, ok)
	assert.Equal(t, ChoiceNo, choice)
}

func TestCancelProposal(t *testing.T) {
	f := newFixture(t)
	f.openVoting(t)

	_, err := f.send(userB, func(tx *ledger.Tx) error { return f.proposal.CancelProposal(tx) })
	assert.ErrorIs(t, err, ErrNotOwner)

	_, err = f.send(userA, func(tx *ledger.Tx) error { return f.proposal.CancelProposal(tx) })
	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, f.proposal.Status(f.clock.Now()))
	assert.Equal(t, uint8(1), uint8(f.proposal.StoredStatus()))

	assert.ErrorIs(t, f.vote(userA, 0, ChoiceYes), ErrInvalidStatus)
}

func TestEvaluateAndMarkExecuted(t *testing.T) {
	f := newFixture(t)
	_, end := f.openVoting(t)

	_, err := f.send(userA, func(tx *ledger.Tx) error { return f.proposal.Evaluate(tx, true) })
	assert.ErrorIs(t, err, ErrNotCoordinator)

	assert.ErrorIs(t, f.asDAO(func(tx *ledger.Tx) error { return f.proposal.Evaluate(tx, true) }), ErrVotingNotClosed)
	assert.ErrorIs(t, f.asDAO(func(tx *ledger.Tx) error { return f.proposal.MarkExecuted(tx) }), ErrInvalidStatus)

	f.clock.Set(end)
	require.NoError(t, f.asDAO(func(tx *ledger.Tx) error { return f.proposal.Evaluate(tx, true) }))
	assert.Equal(t, StatusPassed, f.proposal.Status(f.clock.Now()))

	_, err = f.send(userA, func(tx *ledger.Tx) error { return f.proposal.CancelProposal(tx) })
	assert.ErrorIs(t, err, ErrInvalidStatus)

	require.NoError(t, f.asDAO(func(tx *ledger.Tx) error { return f.proposal.MarkExecuted(tx) }))
	assert.Equal(t, StatusExecuted, f.proposal.StoredStatus())
}

func TestStatusNames(t *testing.T) {
	for s := StatusProposed; s <= StatusFailed; s++ {
		parsed, ok := ParseStatus(s.String())
		require.True(t, ok)
		assert.Equal(t, s, parsed)
	}
	_, ok := ParseStatus("Unknown")
	assert.False(t, ok)
}

func TestFactoryProducesProposal(t *testing.T) {
	l := ledger.New(nil)
	var (
		f *Factory
		p *Proposal
	)
	receipt, err := l.Transact(context.Background(), userA, func(tx *ledger.Tx) error {
		var err error
		if f, err = DeployFactory(tx); err != nil {
			return err
		}
		p, err = f.ProduceProposal(tx, "Title", userB, userA)
		return err
	})
	require.NoError(t, err)
	require.Len(t, receipt.Logs, 2)
	assert.Equal(t, ogreabi.Governance.Events["ContractProduced"].ID, receipt.Logs[1].Topics[0])
	assert.Equal(t, common.BytesToHash(userA.Bytes()), receipt.Logs[1].Topics[2])
	assert.Equal(t, []common.Address{p.Address()}, f.Produced())
}

package jackpot

import (
	"math/rand"
	"testing"

	"github.com/example/modular-calculator-demo/domain/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *Service {
	return NewServiceWithRand(game.NewStore(), rand.New(rand.NewSource(1)))
}

func TestStartSession(t *testing.T) {
	svc := newTestService()

	session, err := svc.StartSession("alice")
	require.NoError(t, err)

	assert.NotEmpty(t, session.ID)
	assert.Equal(t, "alice", session.Player)
	assert.Equal(t, InitialBalance, session.Balance)
	assert.Equal(t, 0, session.Rounds)
	assert.Equal(t, 0, session.Wins)
}

func TestStartSession_DefaultPlayerName(t *testing.T) {
	svc := newTestService()

	session, err := svc.StartSession("")
	require.NoError(t, err)
	assert.Equal(t, "player", session.Player)
}

func TestPlay_StakeValidation(t *testing.T) {
	svc := newTestService()
	session, err := svc.StartSession("bob")
	require.NoError(t, err)

	for _, stake := range []int64{0, -10, MaxStake + 1, InitialBalance + 1} {
		_, err := svc.Play(session.ID, stake, 3)
		assert.ErrorIs(t, err, game.ErrInvalidStake, "stake %d should be rejected", stake)
	}
}

func TestPlay_GuessValidation(t *testing.T) {
	svc := newTestService()
	session, err := svc.StartSession("bob")
	require.NoError(t, err)

	for _, guess := range []int{-1, JackpotMax + 1, 100} {
		_, err := svc.Play(session.ID, 100, guess)
		assert.ErrorIs(t, err, game.ErrInvalidGuess, "guess %d should be rejected", guess)
	}
}

func TestPlay_UnknownSession(t *testing.T) {
	svc := newTestService()
	_, err := svc.Play("no-such-session", 100, 3)
	assert.ErrorIs(t, err, game.ErrSessionNotFound)
}

// A win pays double the stake; a loss forfeits it. The balance must track
// exactly across many rounds.
func TestPlay_BalanceAccounting(t *testing.T) {
	svc := newTestService()
	session, err := svc.StartSession("carol")
	require.NoError(t, err)

	const stake int64 = 10
	balance := session.Balance
	wins := 0

	for i := 0; i < 50; i++ {
		result, err := svc.Play(session.ID, stake, 3)
		require.NoError(t, err)

		assert.GreaterOrEqual(t, result.Jackpot, JackpotMin)
		assert.LessOrEqual(t, result.Jackpot, JackpotMax)

		if result.Won {
			assert.Equal(t, 3, result.Jackpot, "a win means the draw matched the guess")
			assert.Equal(t, stake*2, result.Payout)
			balance += stake
			wins++
		} else {
			assert.NotEqual(t, 3, result.Jackpot)
			assert.Zero(t, result.Payout)
			balance -= stake
		}

		assert.Equal(t, balance, result.Session.Balance)
		assert.Equal(t, i+1, result.Session.Rounds)
		assert.Equal(t, wins, result.Session.Wins)
	}

	stored, err := svc.GetSession(session.ID)
	require.NoError(t, err)
	assert.Equal(t, balance, stored.Balance)
	assert.Equal(t, 50, stored.Rounds)
}

func TestPlay_StakeAboveBalance(t *testing.T) {
	store := game.NewStore()
	svc := NewServiceWithRand(store, rand.New(rand.NewSource(1)))

	session, err := svc.StartSession("dave")
	require.NoError(t, err)

	// Drain the balance below the maximum stake, then overbet.
	fetched, err := store.GetByID(session.ID)
	require.NoError(t, err)
	fetched.Balance = 50
	require.NoError(t, store.Update(fetched))

	_, err = svc.Play(session.ID, 100, 3)
	assert.ErrorIs(t, err, game.ErrInvalidStake)

	// Betting the entire remaining balance is allowed.
	_, err = svc.Play(session.ID, 50, 3)
	assert.NoError(t, err)
}

func TestGetSession_ReturnsCopy(t *testing.T) {
	svc := newTestService()
	session, err := svc.StartSession("erin")
	require.NoError(t, err)

	fetched, err := svc.GetSession(session.ID)
	require.NoError(t, err)

	fetched.Balance = 0

	again, err := svc.GetSession(session.ID)
	require.NoError(t, err)
	assert.Equal(t, InitialBalance, again.Balance)
}

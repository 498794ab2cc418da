// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"testing"

	"github.com/33cn/gawibawibo/types"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseChoice(t *testing.T) {
	for in, want := range map[string]Choice{
		"rock": ChoiceRock, "R": ChoiceRock, "147": ChoiceRock,
		"Paper": ChoicePaper, "p": ChoicePaper, "258": ChoicePaper,
		"scissors": ChoiceScissors, " s ": ChoiceScissors, "369": ChoiceScissors,
	} {
		c, err := ParseChoice(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, c, in)
	}
	_, err := ParseChoice("lizard")
	assert.Equal(t, ErrInvalidChoice, errors.Cause(err))
	assert.False(t, ChoiceNone.Valid())
	assert.True(t, ChoicePaper.Valid())
}

func TestParseSequence(t *testing.T) {
	seq, err := ParseSequence("rock-paper-scissors")
	require.NoError(t, err)
	assert.Equal(t, BlendSequence{ChoiceRock, ChoicePaper, ChoiceScissors}, seq)
	assert.Equal(t, "rock-paper-scissors", seq.String())

	seq, err = ParseSequence("s,s,r")
	require.NoError(t, err)
	assert.Equal(t, BlendSequence{ChoiceScissors, ChoiceScissors, ChoiceRock}, seq)

	_, err = ParseSequence("r-p")
	assert.Equal(t, ErrInvalidChoice, errors.Cause(err))
	_, err = ParseSequence("r-p-x")
	assert.Equal(t, ErrInvalidChoice, errors.Cause(err))
	assert.Equal(t, "none-none-none", NoneSequence.String())
}

func TestStatus(t *testing.T) {
	assert.Equal(t, "unplayed", StatusUnplayed.String())
	assert.Equal(t, "played", StatusPlayed.String())
	assert.Equal(t, "tied", StatusTied.String())
	assert.Equal(t, "cancelled", StatusCancelled.String())
	assert.Equal(t, "unknown", MoveStatus(9).String())
	assert.False(t, StatusUnplayed.Terminal())
	assert.True(t, StatusCancelled.Terminal())

	s, err := ParseStatus("tied")
	require.NoError(t, err)
	assert.Equal(t, StatusTied, s)
	_, err = ParseStatus("lost")
	assert.Equal(t, ErrInvalidStatus, err)
}

func TestBlendTypeTransaction(t *testing.T) {
	ety := types.LoadExecutorType(BlendX)
	require.NotNil(t, ety)

	tx, err := ety.CreateTransaction("Challenge", &BlendChallenge{ID: 7, Fingerprint: "ab"})
	require.NoError(t, err)
	assert.Equal(t, []byte(BlendX), tx.Execer)
	assert.Equal(t, "Challenge", ety.ActionName(tx))

	name, value, err := ety.DecodePayloadValue(tx)
	require.NoError(t, err)
	assert.Equal(t, "Challenge", name)
	assert.Equal(t, uint32(7), value.Interface().(*BlendChallenge).ID)

	_, err = ety.CreateTransaction("Open", &BlendCancel{ID: 1})
	assert.Equal(t, types.ErrInvalidParam, errors.Cause(err))

	msg, err := ety.DecodeReceiptLog(TyLogBlendChallenge, types.Encode(&ReceiptBlend{ID: 7, Status: StatusTied}))
	require.NoError(t, err)
	assert.Equal(t, StatusTied, msg.(*ReceiptBlend).Status)
}

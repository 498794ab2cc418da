// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"testing"

	"github.com/33cn/gawibawibo/common/address"
	"github.com/33cn/gawibawibo/common/crypto"
	"github.com/33cn/gawibawibo/executor"
	bt "github.com/33cn/gawibawibo/plugin/dapp/blend/types"
	"github.com/33cn/gawibawibo/system/dapp"
	"github.com/33cn/gawibawibo/types"
	"github.com/33cn/gawibawibo/util"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	dapp.Register(bt.BlendX, newBlend)
}

var (
	alice = addrOf(util.TestPrivkeyList[0])
	bob   = addrOf(util.TestPrivkeyList[1])
	carol = addrOf(util.TestPrivkeyList[2])

	privs = map[string]crypto.PrivKey{
		alice: util.TestPrivkeyList[0],
		bob:   util.TestPrivkeyList[1],
		carol: util.TestPrivkeyList[2],
	}
)

func addrOf(priv crypto.PrivKey) string {
	return address.PubKeyToAddress(priv.PubKey().Bytes()).String()
}

type testEnv struct {
	t     *testing.T
	exec  *executor.Executor
	r     *Resolver
	nonce int64
}

func newTestEnv(t *testing.T, sub *subConfig) *testEnv {
	conf, err := newBlendConfig(sub)
	require.NoError(t, err)
	setConfig(conf)
	dir, kvdb := util.CreateTestDB()
	t.Cleanup(func() {
		util.CloseTestDB(dir, kvdb)
		setConfig(nil)
	})
	return &testEnv{t: t, exec: executor.New(nil, kvdb), r: conf.resolver}
}

func (e *testEnv) send(action string, data types.Message, from string) (*types.Receipt, error) {
	tx, err := bt.NewType().CreateTransaction(action, data)
	require.NoError(e.t, err)
	e.nonce++
	tx.Nonce = e.nonce
	tx.Sign(types.SECP256K1, privs[from])
	return e.exec.Exec(tx)
}

func (e *testEnv) fp(from string, seq bt.BlendSequence) string {
	f, err := e.r.Fingerprint(from, seq)
	require.NoError(e.t, err)
	return f
}

func (e *testEnv) open(id uint32, from string, seq bt.BlendSequence) (*types.Receipt, error) {
	return e.send("Open", &bt.BlendOpen{ID: id, Fingerprint: e.fp(from, seq)}, from)
}

func (e *testEnv) challenge(id uint32, from string, seq bt.BlendSequence) (*types.Receipt, error) {
	return e.send("Challenge", &bt.BlendChallenge{ID: id, Fingerprint: e.fp(from, seq)}, from)
}

func (e *testEnv) cancel(id uint32, from string) (*types.Receipt, error) {
	return e.send("Cancel", &bt.BlendCancel{ID: id}, from)
}

func (e *testEnv) move(id uint32) (*bt.Move, error) {
	msg, err := e.exec.Query(bt.BlendX, bt.FuncNameGetMove, &bt.ReqMoveID{ID: id})
	if err != nil {
		return nil, err
	}
	return msg.(*bt.Move), nil
}

func (e *testEnv) mustMove(id uint32) *bt.Move {
	m, err := e.move(id)
	require.NoError(e.t, err)
	return m
}

func (e *testEnv) query(fn string, in types.Message) types.Message {
	msg, err := e.exec.Query(bt.BlendX, fn, in)
	require.NoError(e.t, err)
	return msg
}

func ids(moves []*bt.Move) []uint32 {
	var list []uint32
	for _, m := range moves {
		list = append(list, m.ID)
	}
	return list
}

func seq(c0, c1, c2 bt.Choice) bt.BlendSequence {
	return bt.BlendSequence{c0, c1, c2}
}

func decodeReceipt(t *testing.T, receipt *types.Receipt) *bt.ReceiptBlend {
	require.Len(t, receipt.Logs, 1)
	var r bt.ReceiptBlend
	require.NoError(t, types.Decode(receipt.Logs[0].Log, &r))
	return &r
}

func TestOpen(t *testing.T) {
	env := newTestEnv(t, nil)
	receipt, err := env.open(1, alice, seq(rock, rock, rock))
	require.NoError(t, err)
	assert.Equal(t, int32(types.ExecOk), receipt.Ty)
	assert.Equal(t, int32(bt.TyLogBlendOpen), receipt.Logs[0].Ty)
	require.Len(t, receipt.KV, 1)
	assert.Equal(t, Key(1), receipt.KV[0].Key)

	m := env.mustMove(1)
	assert.Equal(t, uint32(1), m.ID)
	assert.Equal(t, alice, m.Owner)
	assert.Equal(t, env.fp(alice, seq(rock, rock, rock)), m.OwnerFingerprint)
	assert.Equal(t, bt.StatusUnplayed, m.Status)
	assert.Equal(t, "", m.Adversary)
	assert.Equal(t, "", m.AdversaryFingerprint)
	assert.Equal(t, "", m.Winner)
	assert.NotEmpty(t, m.CreateTxHash)
}

func TestOpenDuplicate(t *testing.T) {
	env := newTestEnv(t, nil)
	_, err := env.open(1, alice, seq(rock, rock, rock))
	require.NoError(t, err)
	before := env.mustMove(1)

	_, err = env.open(1, bob, seq(paper, paper, paper))
	assert.Equal(t, bt.ErrDuplicateKey, errors.Cause(err))
	_, err = env.open(1, alice, seq(paper, paper, paper))
	assert.Equal(t, bt.ErrDuplicateKey, errors.Cause(err))

	assert.Equal(t, before, env.mustMove(1))
	reply := env.query(bt.FuncNameListUnplayed, &types.ReqNil{}).(*bt.ReplyUnplayed)
	assert.Equal(t, []*bt.MoveIndex{{ID: 1, Owner: alice}}, reply.Moves)
	moves := env.query(bt.FuncNameListByIdentity, &bt.ReqIdentity{Identity: bob}).(*bt.ReplyMoves)
	assert.Empty(t, moves.Moves)
}

func TestOwnerWins(t *testing.T) {
	env := newTestEnv(t, nil)
	_, err := env.open(1, alice, seq(rock, rock, rock))
	require.NoError(t, err)
	receipt, err := env.challenge(1, bob, seq(scissors, scissors, scissors))
	require.NoError(t, err)

	r := decodeReceipt(t, receipt)
	assert.Equal(t, int32(bt.TyLogBlendChallenge), receipt.Logs[0].Ty)
	assert.Equal(t, bt.StatusPlayed, r.Status)
	assert.Equal(t, bt.StatusUnplayed, r.PrevStatus)
	assert.Equal(t, alice, r.Winner)
	assert.Equal(t, 3, r.OwnerWins)
	assert.Equal(t, 0, r.AdversaryWins)

	m := env.mustMove(1)
	assert.Equal(t, bt.StatusPlayed, m.Status)
	assert.Equal(t, alice, m.Winner)
	assert.Equal(t, bob, m.Adversary)
	assert.Equal(t, env.fp(bob, seq(scissors, scissors, scissors)), m.AdversaryFingerprint)
	assert.NotEmpty(t, m.CloseTxHash)
}

func TestAdversaryWins(t *testing.T) {
	env := newTestEnv(t, nil)
	_, err := env.open(2, alice, seq(rock, rock, paper))
	require.NoError(t, err)
	receipt, err := env.challenge(2, bob, seq(paper, paper, scissors))
	require.NoError(t, err)
	r := decodeReceipt(t, receipt)
	assert.Equal(t, 0, r.OwnerWins)
	assert.Equal(t, 3, r.AdversaryWins)

	m := env.mustMove(2)
	assert.Equal(t, bt.StatusPlayed, m.Status)
	assert.Equal(t, bob, m.Winner)
}

func TestTie(t *testing.T) {
	env := newTestEnv(t, nil)
	_, err := env.open(3, alice, seq(rock, rock, rock))
	require.NoError(t, err)
	_, err = env.challenge(3, bob, seq(rock, rock, rock))
	require.NoError(t, err)

	m := env.mustMove(3)
	assert.Equal(t, bt.StatusTied, m.Status)
	assert.Equal(t, "", m.Winner)
	assert.Equal(t, bob, m.Adversary)
}

func TestUnrecognizedFallback(t *testing.T) {
	env := newTestEnv(t, nil)
	// [paper,scissors,rock] 不在目录中, 挑战者只能提交无法识别的指纹
	_, err := env.open(2, alice, seq(rock, paper, scissors))
	require.NoError(t, err)
	_, err = env.send("Challenge", &bt.BlendChallenge{ID: 2, Fingerprint: "not-a-fingerprint"}, bob)
	require.NoError(t, err)
	m := env.mustMove(2)
	assert.Equal(t, bt.StatusTied, m.Status)
	assert.Equal(t, "", m.Winner)

	// 重放别人的指纹同样无法识别
	_, err = env.open(4, alice, seq(rock, rock, rock))
	require.NoError(t, err)
	_, err = env.send("Challenge", &bt.BlendChallenge{ID: 4, Fingerprint: env.fp(alice, seq(paper, paper, paper))}, bob)
	require.NoError(t, err)
	assert.Equal(t, bt.StatusTied, env.mustMove(4).Status)
}

func TestSelfChallenge(t *testing.T) {
	env := newTestEnv(t, nil)
	_, err := env.open(1, alice, seq(rock, rock, rock))
	require.NoError(t, err)
	_, err = env.challenge(1, alice, seq(rock, rock, rock))
	assert.Equal(t, bt.ErrPermissionDenied, errors.Cause(err))
	_, err = env.send("Challenge", &bt.BlendChallenge{ID: 1, Fingerprint: "x"}, alice)
	assert.Equal(t, bt.ErrPermissionDenied, errors.Cause(err))
	assert.Equal(t, bt.StatusUnplayed, env.mustMove(1).Status)
}

func TestChallengeTerminal(t *testing.T) {
	env := newTestEnv(t, nil)
	_, err := env.open(1, alice, seq(rock, rock, rock))
	require.NoError(t, err)
	_, err = env.challenge(1, bob, seq(paper, rock, rock))
	require.NoError(t, err)
	played := env.mustMove(1)
	assert.Equal(t, bob, played.Winner)

	_, err = env.challenge(1, carol, seq(paper, paper, paper))
	assert.Equal(t, bt.ErrInvalidArgument, errors.Cause(err))
	assert.Equal(t, played, env.mustMove(1))

	_, err = env.open(2, alice, seq(rock, rock, rock))
	require.NoError(t, err)
	_, err = env.cancel(2, alice)
	require.NoError(t, err)
	_, err = env.challenge(2, bob, seq(paper, paper, paper))
	assert.Equal(t, bt.ErrInvalidArgument, errors.Cause(err))
}

func TestCancel(t *testing.T) {
	env := newTestEnv(t, nil)
	_, err := env.open(1, alice, seq(rock, rock, rock))
	require.NoError(t, err)

	_, err = env.cancel(1, bob)
	assert.Equal(t, bt.ErrPermissionDenied, errors.Cause(err))

	receipt, err := env.cancel(1, alice)
	require.NoError(t, err)
	r := decodeReceipt(t, receipt)
	assert.Equal(t, bt.StatusCancelled, r.Status)
	assert.False(t, r.Deleted)

	m := env.mustMove(1)
	assert.Equal(t, bt.StatusCancelled, m.Status)
	assert.Equal(t, "", m.Winner)

	_, err = env.cancel(1, alice)
	assert.Equal(t, bt.ErrInvalidArgument, errors.Cause(err))

	reply := env.query(bt.FuncNameListUnplayed, &types.ReqNil{}).(*bt.ReplyUnplayed)
	assert.Empty(t, reply.Moves)
	moves := env.query(bt.FuncNameListByIdentity, &bt.ReqIdentity{Identity: alice}).(*bt.ReplyMoves)
	assert.Equal(t, []uint32{1}, ids(moves.Moves))
}

func TestCancelForgedOwner(t *testing.T) {
	env := newTestEnv(t, nil)
	_, err := env.open(1, alice, seq(rock, rock, rock))
	require.NoError(t, err)

	// bob 签名, 但交易里声称是 alice
	tx, err := bt.NewType().CreateTransaction("Cancel", &bt.BlendCancel{ID: 1})
	require.NoError(t, err)
	tx.Nonce = 100
	tx.Sign(types.SECP256K1, privs[bob])
	tx.From = alice
	_, err = env.exec.Exec(tx)
	assert.Equal(t, types.ErrSign, err)

	// 未签名的交易
	tx, err = bt.NewType().CreateTransaction("Cancel", &bt.BlendCancel{ID: 1})
	require.NoError(t, err)
	tx.From = alice
	_, err = env.exec.Exec(tx)
	assert.Equal(t, types.ErrSign, err)

	// 换上 alice 的公钥, 签名仍是 bob 的
	tx, err = bt.NewType().CreateTransaction("Cancel", &bt.BlendCancel{ID: 1})
	require.NoError(t, err)
	tx.Sign(types.SECP256K1, privs[bob])
	tx.From = alice
	tx.Signature.Pubkey = privs[alice].PubKey().Bytes()
	_, err = env.exec.Exec(tx)
	assert.Equal(t, types.ErrSign, err)

	assert.Equal(t, bt.StatusUnplayed, env.mustMove(1).Status)
	_, err = env.cancel(1, alice)
	require.NoError(t, err)
	assert.Equal(t, bt.StatusCancelled, env.mustMove(1).Status)
}

func TestChallengeForgedAdversary(t *testing.T) {
	env := newTestEnv(t, nil)
	_, err := env.open(1, alice, seq(rock, rock, rock))
	require.NoError(t, err)

	// alice 冒充 bob 挑战自己的对局, 指纹按 bob 的身份生成
	tx, err := bt.NewType().CreateTransaction("Challenge", &bt.BlendChallenge{ID: 1, Fingerprint: env.fp(bob, seq(paper, paper, paper))})
	require.NoError(t, err)
	tx.Sign(types.SECP256K1, privs[alice])
	tx.From = bob
	_, err = env.exec.Exec(tx)
	assert.Equal(t, types.ErrSign, err)
	assert.Equal(t, bt.StatusUnplayed, env.mustMove(1).Status)
}

func TestCancelAfterChallenge(t *testing.T) {
	env := newTestEnv(t, nil)
	_, err := env.open(1, alice, seq(rock, rock, rock))
	require.NoError(t, err)
	_, err = env.challenge(1, bob, seq(scissors, scissors, scissors))
	require.NoError(t, err)
	before := env.mustMove(1)

	_, err = env.cancel(1, alice)
	assert.Equal(t, bt.ErrPermissionDenied, errors.Cause(err))
	assert.Equal(t, before, env.mustMove(1))
	assert.Equal(t, bt.StatusPlayed, before.Status)
}

func TestMoveNotFound(t *testing.T) {
	env := newTestEnv(t, nil)
	_, err := env.cancel(9, alice)
	assert.Equal(t, bt.ErrMoveNotFound, errors.Cause(err))
	_, err = env.challenge(9, alice, seq(rock, rock, rock))
	assert.Equal(t, bt.ErrMoveNotFound, errors.Cause(err))
	_, err = env.move(9)
	assert.Equal(t, bt.ErrMoveNotFound, errors.Cause(err))
}

func TestDeleteOnCancel(t *testing.T) {
	env := newTestEnv(t, &subConfig{DeleteOnCancel: true})
	_, err := env.open(1, alice, seq(rock, rock, rock))
	require.NoError(t, err)
	receipt, err := env.cancel(1, alice)
	require.NoError(t, err)
	assert.True(t, decodeReceipt(t, receipt).Deleted)
	require.Len(t, receipt.KV, 1)
	assert.Nil(t, receipt.KV[0].Value)

	_, err = env.move(1)
	assert.Equal(t, bt.ErrMoveNotFound, errors.Cause(err))
	moves := env.query(bt.FuncNameListByIdentity, &bt.ReqIdentity{Identity: alice}).(*bt.ReplyMoves)
	assert.Empty(t, moves.Moves)
	history := env.query(bt.FuncNameHistory, &bt.ReqIdentity{Identity: alice}).(*bt.ReplyMoves)
	assert.Empty(t, history.Moves)
	cancelled := env.query(bt.FuncNameListByStatus, &bt.ReqMovesByStatus{Status: bt.StatusCancelled}).(*bt.ReplyMoves)
	assert.Empty(t, cancelled.Moves)

	// 删除后 id 可以重新使用
	_, err = env.open(1, bob, seq(paper, paper, paper))
	require.NoError(t, err)
	assert.Equal(t, bob, env.mustMove(1).Owner)
}

func TestStrict(t *testing.T) {
	env := newTestEnv(t, &subConfig{Strict: true})
	_, err := env.send("Open", &bt.BlendOpen{ID: 1, Fingerprint: "bad"}, alice)
	assert.Equal(t, bt.ErrUnrecognizedFingerprint, errors.Cause(err))
	_, err = env.move(1)
	assert.Equal(t, bt.ErrMoveNotFound, errors.Cause(err))

	_, err = env.open(1, alice, seq(rock, rock, rock))
	require.NoError(t, err)
	_, err = env.send("Challenge", &bt.BlendChallenge{ID: 1, Fingerprint: "bad"}, bob)
	assert.Equal(t, bt.ErrUnrecognizedFingerprint, errors.Cause(err))
	assert.Equal(t, bt.StatusUnplayed, env.mustMove(1).Status)

	_, err = env.challenge(1, bob, seq(paper, paper, paper))
	require.NoError(t, err)
	assert.Equal(t, bob, env.mustMove(1).Winner)
}

func TestRawScheme(t *testing.T) {
	env := newTestEnv(t, &subConfig{Scheme: SchemeRaw})
	assert.Equal(t, SchemeRaw, getConfig().resolver.Scheme())
	r, err := NewResolverFromSub([]byte(`{"scheme":"raw"}`))
	require.NoError(t, err)
	f, err := r.Fingerprint(alice, seq(rock, rock, rock))
	require.NoError(t, err)
	assert.Equal(t, env.fp(alice, seq(rock, rock, rock)), f)
	_, err = env.open(1, alice, seq(scissors, scissors, scissors))
	require.NoError(t, err)
	_, err = env.challenge(1, bob, seq(paper, paper, paper))
	require.NoError(t, err)
	assert.Equal(t, alice, env.mustMove(1).Winner)
}

func TestQueries(t *testing.T) {
	env := newTestEnv(t, nil)
	_, err := env.open(1, alice, seq(rock, rock, rock))
	require.NoError(t, err)
	_, err = env.open(2, alice, seq(paper, paper, paper))
	require.NoError(t, err)
	_, err = env.open(3, bob, seq(scissors, scissors, scissors))
	require.NoError(t, err)
	_, err = env.open(4, alice, seq(rock, paper, scissors))
	require.NoError(t, err)
	_, err = env.open(5, carol, seq(rock, rock, rock))
	require.NoError(t, err)

	_, err = env.challenge(1, bob, seq(scissors, rock, rock))
	require.NoError(t, err)
	_, err = env.challenge(3, alice, seq(scissors, scissors, scissors))
	require.NoError(t, err)
	_, err = env.cancel(4, alice)
	require.NoError(t, err)

	moves := env.query(bt.FuncNameListByIdentity, &bt.ReqIdentity{Identity: alice}).(*bt.ReplyMoves)
	assert.Equal(t, []uint32{1, 2, 4}, ids(moves.Moves))
	for _, m := range moves.Moves {
		assert.Equal(t, alice, m.Owner)
	}

	unplayed := env.query(bt.FuncNameListUnplayed, &types.ReqNil{}).(*bt.ReplyUnplayed)
	assert.Equal(t, []*bt.MoveIndex{{ID: 2, Owner: alice}, {ID: 5, Owner: carol}}, unplayed.Moves)

	history := env.query(bt.FuncNameHistory, &bt.ReqIdentity{Identity: alice}).(*bt.ReplyMoves)
	assert.Equal(t, []uint32{1, 3, 4}, ids(history.Moves))
	history = env.query(bt.FuncNameHistory, &bt.ReqIdentity{Identity: bob}).(*bt.ReplyMoves)
	assert.Equal(t, []uint32{1, 3}, ids(history.Moves))
	history = env.query(bt.FuncNameHistory, &bt.ReqIdentity{Identity: carol}).(*bt.ReplyMoves)
	assert.Empty(t, history.Moves)

	played := env.query(bt.FuncNameListByStatus, &bt.ReqMovesByStatus{Status: bt.StatusPlayed}).(*bt.ReplyMoves)
	assert.Equal(t, []uint32{1}, ids(played.Moves))
	tied := env.query(bt.FuncNameListByStatus, &bt.ReqMovesByStatus{Status: bt.StatusTied}).(*bt.ReplyMoves)
	assert.Equal(t, []uint32{3}, ids(tied.Moves))

	_, err = env.exec.Query(bt.BlendX, bt.FuncNameListByIdentity, &bt.ReqIdentity{})
	assert.Equal(t, types.ErrInvalidParam, err)
	_, err = env.exec.Query(bt.BlendX, bt.FuncNameListByStatus, &bt.ReqMovesByStatus{Status: 7})
	assert.Equal(t, bt.ErrInvalidStatus, err)
}

func TestListByStatusPaging(t *testing.T) {
	env := newTestEnv(t, nil)
	for id := uint32(10); id < 15; id++ {
		_, err := env.open(id, alice, seq(rock, rock, rock))
		require.NoError(t, err)
	}
	list := func(key uint32, count, direction int32) []uint32 {
		msg := env.query(bt.FuncNameListByStatus, &bt.ReqMovesByStatus{
			Status: bt.StatusUnplayed, PrimaryKey: key, Count: count, Direction: direction,
		})
		return ids(msg.(*bt.ReplyMoves).Moves)
	}
	assert.Equal(t, []uint32{10, 11}, list(0, 2, bt.ListASC))
	assert.Equal(t, []uint32{12, 13}, list(11, 2, bt.ListASC))
	assert.Equal(t, []uint32{14}, list(13, 2, bt.ListASC))
	assert.Equal(t, []uint32{14, 13}, list(0, 2, bt.ListDESC))
	assert.Equal(t, []uint32{12, 11, 10}, list(13, 0, bt.ListDESC))
	assert.Nil(t, list(14, 2, bt.ListASC))
}

func TestNewBlendDriver(t *testing.T) {
	conf, err := newBlendConfig(nil)
	require.NoError(t, err)
	b := newBlendWithConfig(conf)
	assert.Equal(t, bt.BlendX, b.GetDriverName())
	assert.Equal(t, bt.BlendX, b.GetName())
	assert.NotNil(t, b.GetExecutorType())
	for _, name := range []string{"Exec_Open", "Exec_Cancel", "Exec_Challenge", "ExecLocal_Open",
		"Query_GetMove", "Query_ListByIdentity", "Query_ListUnplayed", "Query_History", "Query_ListByStatus"} {
		_, ok := b.GetFuncMap()[name]
		assert.True(t, ok, name)
	}
	assert.False(t, conf.strict)
	assert.False(t, conf.deleteOnCancel)
	assert.Equal(t, SchemeBytesrepr, conf.resolver.Scheme())
}

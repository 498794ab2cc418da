// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	bt "github.com/33cn/gawibawibo/plugin/dapp/blend/types"
)

//MatchOutcome 对局结果, Tie 时 Winner 为空
type MatchOutcome struct {
	Tie           bool
	Winner        string
	OwnerWins     int
	AdversaryWins int
}

//Status 结果对应的对局状态
func (m MatchOutcome) Status() bt.MoveStatus {
	if m.Tie {
		return bt.StatusTied
	}
	return bt.StatusPlayed
}

//ResolveSequences 根据双方序列决定胜负
func ResolveSequences(owner string, ownerSeq bt.BlendSequence, adversary string, adversarySeq bt.BlendSequence) MatchOutcome {
	wo, wa := Score(ownerSeq, adversarySeq)
	out := MatchOutcome{OwnerWins: wo, AdversaryWins: wa}
	switch {
	case wo == wa:
		out.Tie = true
	case wo > wa:
		out.Winner = owner
	default:
		out.Winner = adversary
	}
	return out
}

//ResolveMatch 还原双方指纹后结算, 无法识别的指纹按 [0,0,0] 参与
func ResolveMatch(r *Resolver, owner, ownerFp, adversary, adversaryFp string) MatchOutcome {
	return ResolveSequences(owner, r.ResolveOrNone(owner, ownerFp), adversary, r.ResolveOrNone(adversary, adversaryFp))
}

//ResolveMatchStrict 任何一方指纹无法识别都返回错误
func ResolveMatchStrict(r *Resolver, owner, ownerFp, adversary, adversaryFp string) (MatchOutcome, error) {
	ownerSeq, err := r.ResolveStrict(owner, ownerFp)
	if err != nil {
		return MatchOutcome{}, err
	}
	adversarySeq, err := r.ResolveStrict(adversary, adversaryFp)
	if err != nil {
		return MatchOutcome{}, err
	}
	return ResolveSequences(owner, ownerSeq, adversary, adversarySeq), nil
}

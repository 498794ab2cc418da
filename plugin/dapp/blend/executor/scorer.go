// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	bt "github.com/33cn/gawibawibo/plugin/dapp/blend/types"
)

type round [2]bt.Choice

// 石头胜剪刀, 剪刀胜布, 布胜石头; 相同或者包含无效标记时都不得分
var beats = map[round]bool{
	{bt.ChoiceRock, bt.ChoiceScissors}:  true,
	{bt.ChoicePaper, bt.ChoiceRock}:     true,
	{bt.ChoiceScissors, bt.ChoicePaper}: true,
}

//Score 逐轮比较, 返回双方各赢了几轮
func Score(a, b bt.BlendSequence) (winsA, winsB int) {
	for i := 0; i < bt.Rounds; i++ {
		if beats[round{a[i], b[i]}] {
			winsA++
		} else if beats[round{b[i], a[i]}] {
			winsB++
		}
	}
	return winsA, winsB
}

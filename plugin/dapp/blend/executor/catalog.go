// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	bt "github.com/33cn/gawibawibo/plugin/dapp/blend/types"
)

//FingerprintEntry 目录项: 暗号以及它代表的出拳序列
type FingerprintEntry struct {
	Token    string
	Sequence bt.BlendSequence
}

const (
	rck = bt.ChoiceRock
	ppr = bt.ChoicePaper
	scs = bt.ChoiceScissors
)

// 27 种组合中只收录了 23 种, 顺序固定
var catalog = [...]FingerprintEntry{
	{"a8241dee1b", bt.BlendSequence{rck, rck, rck}},
	{"9c3ef738a5", bt.BlendSequence{ppr, rck, rck}},
	{"9c4bea65e9", bt.BlendSequence{scs, rck, rck}},
	{"038e16cdf9", bt.BlendSequence{rck, ppr, rck}},
	{"481ddbfbe9", bt.BlendSequence{rck, scs, rck}},
	{"69343e02fa", bt.BlendSequence{rck, rck, ppr}},
	{"1af577cdd3", bt.BlendSequence{rck, rck, scs}},
	{"f070fae536", bt.BlendSequence{ppr, ppr, ppr}},
	{"686690db1f", bt.BlendSequence{rck, ppr, ppr}},
	{"f611d744c5", bt.BlendSequence{scs, ppr, ppr}},
	{"444c34bf26", bt.BlendSequence{ppr, rck, ppr}},
	{"5463570d5e", bt.BlendSequence{ppr, scs, ppr}},
	{"8aa9d396ea", bt.BlendSequence{ppr, ppr, rck}},
	{"76a27a71ee", bt.BlendSequence{ppr, ppr, scs}},
	{"41f3de6eed", bt.BlendSequence{scs, scs, scs}},
	{"d999fb7fe8", bt.BlendSequence{rck, scs, scs}},
	{"8792ba8121", bt.BlendSequence{ppr, scs, scs}},
	{"68d0ea14ef", bt.BlendSequence{scs, rck, scs}},
	{"c11af4a478", bt.BlendSequence{scs, ppr, scs}},
	{"823f07b380", bt.BlendSequence{scs, scs, rck}},
	{"4432146540", bt.BlendSequence{scs, scs, ppr}},
	{"0f1514d671", bt.BlendSequence{rck, ppr, scs}},
	{"62d63583cb", bt.BlendSequence{scs, ppr, rck}},
}

//CatalogSize 目录项个数
const CatalogSize = len(catalog)

//AllEntries 目录的拷贝
func AllEntries() []FingerprintEntry {
	entries := make([]FingerprintEntry, len(catalog))
	copy(entries, catalog[:])
	return entries
}

func tokenOf(seq bt.BlendSequence) (string, bool) {
	for _, e := range catalog {
		if e.Sequence == seq {
			return e.Token, true
		}
	}
	return "", false
}

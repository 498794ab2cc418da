// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

//Choice 单轮的出拳, 数值只是互不相同的标记
type Choice uint64

// choices
const (
	ChoiceNone     Choice = 0
	ChoiceRock     Choice = 147
	ChoicePaper    Choice = 258
	ChoiceScissors Choice = 369
)

//Rounds 每局的轮数
const Rounds = 3

func (c Choice) String() string {
	switch c {
	case ChoiceRock:
		return "rock"
	case ChoicePaper:
		return "paper"
	case ChoiceScissors:
		return "scissors"
	case ChoiceNone:
		return "none"
	}
	return strconv.FormatUint(uint64(c), 10)
}

//Valid 石头剪刀布之一
func (c Choice) Valid() bool {
	return c == ChoiceRock || c == ChoicePaper || c == ChoiceScissors
}

//ParseChoice 支持名字, 首字母以及数值标记
func ParseChoice(s string) (Choice, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "rock", "r", "147":
		return ChoiceRock, nil
	case "paper", "p", "258":
		return ChoicePaper, nil
	case "scissors", "s", "369":
		return ChoiceScissors, nil
	}
	return ChoiceNone, errors.Wrapf(ErrInvalidChoice, "choice %q", s)
}

//BlendSequence 一局三轮的出拳
type BlendSequence [Rounds]Choice

//NoneSequence 无法识别的指纹退化成的序列
var NoneSequence = BlendSequence{ChoiceNone, ChoiceNone, ChoiceNone}

func (s BlendSequence) String() string {
	names := make([]string, Rounds)
	for i, c := range s {
		names[i] = c.String()
	}
	return strings.Join(names, "-")
}

//ParseSequence 解析 rock-paper-scissors 或者 r,p,s 形式的序列
func ParseSequence(s string) (BlendSequence, error) {
	var seq BlendSequence
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == '-' || r == ',' || r == ' '
	})
	if len(parts) != Rounds {
		return seq, errors.Wrapf(ErrInvalidChoice, "sequence %q need %d choices", s, Rounds)
	}
	for i, p := range parts {
		c, err := ParseChoice(p)
		if err != nil {
			return seq, err
		}
		seq[i] = c
	}
	return seq, nil
}

// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"encoding/json"

	"github.com/pkg/errors"
)

//Message 可编码的消息
type Message interface{}

//Encode 编码，失败时 panic，只用于确定可编码的结构体
func Encode(data Message) []byte {
	b, err := json.Marshal(data)
	if err != nil {
		panic(err)
	}
	return b
}

//Size 编码后的长度
func Size(data Message) int {
	return len(Encode(data))
}

//Decode 解码
func Decode(data []byte, msg Message) error {
	if err := json.Unmarshal(data, msg); err != nil {
		return errors.Wrap(ErrDecode, err.Error())
	}
	return nil
}

//MustDecode 解码，失败时 panic
func MustDecode(data []byte, v interface{}) {
	if data == nil {
		return
	}
	err := json.Unmarshal(data, v)
	if err != nil {
		panic(err)
	}
}

//FormatJSON 输出缩进的 json，用于 cli 显示
func FormatJSON(r Message) ([]byte, error) {
	return json.MarshalIndent(r, "", "    ")
}

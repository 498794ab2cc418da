// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import "errors"

var (
	//ErrDuplicateKey 对局 id 已经存在
	ErrDuplicateKey = errors.New("ErrDuplicateKey")
	//ErrMoveNotFound 对局不存在
	ErrMoveNotFound = errors.New("ErrMoveNotFound")
	//ErrPermissionDenied 非创建者撤销, 已被挑战后撤销, 或者挑战自己的对局
	ErrPermissionDenied = errors.New("ErrPermissionDenied")
	//ErrInvalidArgument 对局已经结束
	ErrInvalidArgument = errors.New("ErrInvalidArgument")
	//ErrUnrecognizedFingerprint 指纹不属于任何一个目录项
	ErrUnrecognizedFingerprint = errors.New("ErrUnrecognizedFingerprint")
	//ErrSequenceNotInCatalog 目录中没有这个出拳序列
	ErrSequenceNotInCatalog = errors.New("ErrSequenceNotInCatalog")
	//ErrInvalidChoice 出拳无法解析
	ErrInvalidChoice = errors.New("ErrInvalidChoice")
	//ErrInvalidStatus 状态无法解析
	ErrInvalidStatus = errors.New("ErrInvalidStatus")
	//ErrUnknownScheme 指纹编码方式不支持
	ErrUnknownScheme = errors.New("ErrUnknownScheme")
)

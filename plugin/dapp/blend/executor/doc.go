// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

/*
石头剪刀布, 三轮同时出拳

玩法:

1. 在 23 个暗号中选一个, 暗号对应一个固定的三轮出拳序列
2. 指纹 = hex(blake2b256(encode(token) ++ encode(identity))), 不同身份同一个暗号得到不同的指纹
   bytesrepr (默认): 每个字符串前加 u32 小端长度, 与前端一致
   raw: 直接拼接 token ++ identity
3. 发起: id, 指纹 (open)
4. 挑战: id, 指纹, 挑战时立即还原双方序列并结算 (challenge)
5. 撤销: 只有发起者, 并且还没有人挑战 (cancel)

status: Unplayed 1 -> Played 2 | Tied 3 | Cancelled 4

无法识别的指纹按 [0,0,0] 参与结算, 永远不得分; strict 模式下直接报错

对外查询接口
1. 某个身份发起的所有对局 ListByIdentity
2. 所有等待挑战的对局 ListUnplayed
3. 单个对局 GetMove, 某个身份参与过并已结束的对局 History
4. 按照状态分页 ListByStatus
*/

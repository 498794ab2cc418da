// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package commands 系统命令行
package commands

import (
	"encoding/json"
	"fmt"

	"github.com/33cn/gawibawibo/common"
	"github.com/33cn/gawibawibo/common/address"
	"github.com/33cn/gawibawibo/system/crypto/secp256k1"
	"github.com/spf13/cobra"
)

// AccountCmd account command
func AccountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Account management",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.AddCommand(
		NewRandAccountCmd(),
		PrivToAddrCmd(),
		ExecAddrCmd(),
		CheckAddrCmd(),
	)
	return cmd
}

// KeyPair account rand 的输出
type KeyPair struct {
	Privkey string `json:"privkey"`
	Pubkey  string `json:"pubkey"`
	Addr    string `json:"addr"`
}

// NewRandAccountCmd 生成随机 secp256k1 私钥, 地址即对局身份
func NewRandAccountCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rand",
		Short: "Generate a random key pair, its address is the player identity",
		Run: func(cmd *cobra.Command, args []string) {
			priv, err := (&secp256k1.Driver{}).GenKey()
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), err)
				return
			}
			pub := priv.PubKey().Bytes()
			data, _ := json.MarshalIndent(&KeyPair{
				Privkey: common.ToHex(priv.Bytes()),
				Pubkey:  common.ToHex(pub),
				Addr:    address.PubKeyToAddress(pub).String(),
			}, "", "    ")
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
		},
	}
}

// PrivToAddrCmd 私钥对应的地址
func PrivToAddrCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "addr",
		Short: "Get address of a private key",
		Run: func(cmd *cobra.Command, args []string) {
			key, _ := cmd.Flags().GetString("key")
			b, err := common.FromHex(key)
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), err)
				return
			}
			priv, err := (&secp256k1.Driver{}).PrivKeyFromBytes(b)
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), err)
				return
			}
			fmt.Fprintln(cmd.OutOrStdout(), address.PubKeyToAddress(priv.PubKey().Bytes()).String())
		},
	}
	cmd.Flags().StringP("key", "k", "", "private key in hex")
	cmd.MarkFlagRequired("key")
	return cmd
}

// ExecAddrCmd 执行器地址
func ExecAddrCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exec_addr",
		Short: "Get address of an executor",
		Run: func(cmd *cobra.Command, args []string) {
			name, _ := cmd.Flags().GetString("exec")
			fmt.Fprintln(cmd.OutOrStdout(), address.ExecAddress(name))
		},
	}
	cmd.Flags().StringP("exec", "e", "", "executor name")
	cmd.MarkFlagRequired("exec")
	return cmd
}

// CheckAddrCmd 检查地址格式
func CheckAddrCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check an address",
		Run: func(cmd *cobra.Command, args []string) {
			addr, _ := cmd.Flags().GetString("addr")
			if err := address.CheckAddress(addr); err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), err)
				return
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ok")
		},
	}
	cmd.Flags().StringP("addr", "a", "", "address")
	cmd.MarkFlagRequired("addr")
	return cmd
}

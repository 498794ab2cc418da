// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package commands blend 命令行
package commands

import (
	"fmt"

	"github.com/33cn/gawibawibo/client"
	"github.com/33cn/gawibawibo/common"
	"github.com/33cn/gawibawibo/plugin/dapp/blend/executor"
	bt "github.com/33cn/gawibawibo/plugin/dapp/blend/types"
	"github.com/33cn/gawibawibo/types"
	"github.com/spf13/cobra"
)

//Cmd blend 命令
func Cmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "blend",
		Short: "blend game management",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.AddCommand(
		OpenCmd(),
		CancelCmd(),
		ChallengeCmd(),
		GetMoveCmd(),
		ListByIdentityCmd(),
		ListUnplayedCmd(),
		HistoryCmd(),
		ListByStatusCmd(),
		FingerprintCmd(),
		CatalogCmd(),
	)
	return cmd
}

func confPath(cmd *cobra.Command) string {
	conf, _ := cmd.Flags().GetString("conf")
	return conf
}

func runCtx(cmd *cobra.Command, ctx *client.Ctx) {
	ctx.SetOutput(cmd.OutOrStdout(), cmd.ErrOrStderr())
	ctx.Run()
}

func signer(cmd *cobra.Command) (*client.Signer, error) {
	key, _ := cmd.Flags().GetString("key")
	return client.NewSigner(confPath(cmd), key)
}

func sendTx(cmd *cobra.Command, action string, data types.Message, s *client.Signer) {
	ety := types.LoadExecutorType(bt.BlendX)
	tx, err := ety.CreateTransaction(action, data)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		return
	}
	tx.Nonce = int64(common.RandUint32())
	s.Sign(tx)
	runCtx(cmd, client.NewTxCtx(confPath(cmd), tx))
}

func addKeyFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("key", "k", "", "private key in hex, the identity is its address")
	cmd.MarkFlagRequired("key")
}

func query(cmd *cobra.Command, funcName string, params types.Message) {
	runCtx(cmd, client.NewQueryCtx(confPath(cmd), bt.BlendX, funcName, params))
}

// fingerprint 优先使用 -f, 否则根据 -s 计算
func fingerprint(cmd *cobra.Command, from string) (string, error) {
	fp, _ := cmd.Flags().GetString("fingerprint")
	if fp != "" {
		return fp, nil
	}
	seqStr, _ := cmd.Flags().GetString("seq")
	if seqStr == "" {
		return "", fmt.Errorf("need --fingerprint or --seq")
	}
	seq, err := bt.ParseSequence(seqStr)
	if err != nil {
		return "", err
	}
	r, err := resolver(cmd)
	if err != nil {
		return "", err
	}
	return r.Fingerprint(from, seq)
}

func resolver(cmd *cobra.Command) (*executor.Resolver, error) {
	_, sub, err := client.LoadConfig(confPath(cmd))
	if err != nil {
		return nil, err
	}
	return executor.NewResolverFromSub(sub.Exec[bt.BlendX])
}

func addFingerprintFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("fingerprint", "f", "", "fingerprint")
	cmd.Flags().StringP("seq", "s", "", "choices used to compute the fingerprint, e.g. rock-paper-scissors")
}

//OpenCmd 创建对局
func OpenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "open",
		Short: "Open a new move",
		Run:   openMove,
	}
	cmd.Flags().Uint32P("id", "i", 0, "move id, random when omitted")
	addKeyFlags(cmd)
	addFingerprintFlags(cmd)
	return cmd
}

func openMove(cmd *cobra.Command, args []string) {
	id, _ := cmd.Flags().GetUint32("id")
	if id == 0 {
		id = common.RandUint32()
	}
	s, err := signer(cmd)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		return
	}
	fp, err := fingerprint(cmd, s.Addr())
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		return
	}
	fmt.Fprintln(cmd.ErrOrStderr(), "move id:", id)
	sendTx(cmd, "Open", &bt.BlendOpen{ID: id, Fingerprint: fp}, s)
}

//CancelCmd 撤销对局
func CancelCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cancel",
		Short: "Cancel an unplayed move",
		Run:   cancelMove,
	}
	cmd.Flags().Uint32P("id", "i", 0, "move id")
	cmd.MarkFlagRequired("id")
	addKeyFlags(cmd)
	return cmd
}

func cancelMove(cmd *cobra.Command, args []string) {
	id, _ := cmd.Flags().GetUint32("id")
	s, err := signer(cmd)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		return
	}
	sendTx(cmd, "Cancel", &bt.BlendCancel{ID: id}, s)
}

//ChallengeCmd 挑战对局
func ChallengeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "challenge",
		Short: "Challenge an unplayed move and resolve it",
		Run:   challengeMove,
	}
	cmd.Flags().Uint32P("id", "i", 0, "move id")
	cmd.MarkFlagRequired("id")
	addKeyFlags(cmd)
	addFingerprintFlags(cmd)
	return cmd
}

func challengeMove(cmd *cobra.Command, args []string) {
	id, _ := cmd.Flags().GetUint32("id")
	s, err := signer(cmd)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		return
	}
	fp, err := fingerprint(cmd, s.Addr())
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		return
	}
	sendTx(cmd, "Challenge", &bt.BlendChallenge{ID: id, Fingerprint: fp}, s)
}

//GetMoveCmd 查询对局
func GetMoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get",
		Short: "Show a move",
		Run: func(cmd *cobra.Command, args []string) {
			id, _ := cmd.Flags().GetUint32("id")
			query(cmd, bt.FuncNameGetMove, &bt.ReqMoveID{ID: id})
		},
	}
	cmd.Flags().Uint32P("id", "i", 0, "move id")
	cmd.MarkFlagRequired("id")
	return cmd
}

//ListByIdentityCmd 某个身份发起的对局
func ListByIdentityCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "moves",
		Short: "List moves opened by an identity",
		Run: func(cmd *cobra.Command, args []string) {
			addr, _ := cmd.Flags().GetString("addr")
			query(cmd, bt.FuncNameListByIdentity, &bt.ReqIdentity{Identity: addr})
		},
	}
	cmd.Flags().StringP("addr", "a", "", "identity")
	cmd.MarkFlagRequired("addr")
	return cmd
}

//ListUnplayedCmd 等待挑战的对局
func ListUnplayedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unplayed",
		Short: "List unplayed moves",
		Run: func(cmd *cobra.Command, args []string) {
			query(cmd, bt.FuncNameListUnplayed, &types.ReqNil{})
		},
	}
}

//HistoryCmd 已结束的对局
func HistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List finished moves an identity opened or challenged",
		Run: func(cmd *cobra.Command, args []string) {
			addr, _ := cmd.Flags().GetString("addr")
			query(cmd, bt.FuncNameHistory, &bt.ReqIdentity{Identity: addr})
		},
	}
	cmd.Flags().StringP("addr", "a", "", "identity")
	cmd.MarkFlagRequired("addr")
	return cmd
}

//ListByStatusCmd 按状态分页
func ListByStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "List moves by status",
		Run:   listByStatus,
	}
	cmd.Flags().StringP("status", "t", "unplayed", "unplayed, played, tied or cancelled")
	cmd.Flags().Uint32P("primary", "p", 0, "last move id of the previous page")
	cmd.Flags().Int32P("count", "c", bt.DefaultCount, "page size")
	cmd.Flags().Int32P("direction", "d", bt.ListDESC, "0: desc, 1: asc")
	return cmd
}

func listByStatus(cmd *cobra.Command, args []string) {
	name, _ := cmd.Flags().GetString("status")
	primary, _ := cmd.Flags().GetUint32("primary")
	count, _ := cmd.Flags().GetInt32("count")
	direction, _ := cmd.Flags().GetInt32("direction")
	status, err := bt.ParseStatus(name)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		return
	}
	query(cmd, bt.FuncNameListByStatus, &bt.ReqMovesByStatus{
		Status:     status,
		PrimaryKey: primary,
		Count:      count,
		Direction:  direction,
	})
}

//FingerprintCmd 计算指纹
func FingerprintCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fingerprint",
		Short: "Compute the fingerprint an identity submits for a sequence",
		Run:   computeFingerprint,
	}
	cmd.Flags().StringP("addr", "a", "", "identity")
	cmd.MarkFlagRequired("addr")
	cmd.Flags().StringP("seq", "s", "", "e.g. rock-paper-scissors")
	cmd.MarkFlagRequired("seq")
	return cmd
}

func computeFingerprint(cmd *cobra.Command, args []string) {
	addr, _ := cmd.Flags().GetString("addr")
	seqStr, _ := cmd.Flags().GetString("seq")
	seq, err := bt.ParseSequence(seqStr)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		return
	}
	r, err := resolver(cmd)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		return
	}
	fp, err := r.Fingerprint(addr, seq)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		return
	}
	fmt.Fprintln(cmd.OutOrStdout(), fp)
}

type catalogItem struct {
	Token       string `json:"token"`
	Sequence    string `json:"sequence"`
	Fingerprint string `json:"fingerprint,omitempty"`
}

//CatalogCmd 列出目录
func CatalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List the recognized sequences",
		Run:   showCatalog,
	}
	cmd.Flags().StringP("addr", "a", "", "also show fingerprints of this identity")
	return cmd
}

func showCatalog(cmd *cobra.Command, args []string) {
	addr, _ := cmd.Flags().GetString("addr")
	var r *executor.Resolver
	if addr != "" {
		var err error
		if r, err = resolver(cmd); err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), err)
			return
		}
	}
	var items []*catalogItem
	for _, e := range executor.AllEntries() {
		item := &catalogItem{Token: e.Token, Sequence: e.Sequence.String()}
		if r != nil {
			item.Fingerprint, _ = r.Fingerprint(addr, e.Sequence)
		}
		items = append(items, item)
	}
	data, err := types.FormatJSON(items)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		return
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
}

// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"os"

	"github.com/33cn/gawibawibo/common/log"
	"github.com/33cn/gawibawibo/pluginmgr"
	"github.com/33cn/gawibawibo/system/dapp/commands"
	"github.com/spf13/cobra"
)

// NewRootCmd 命令行根命令, 插件命令通过 pluginmgr 加入
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gawibawibo-cli",
		Short: "gawibawibo client tools",
	}
	rootCmd.PersistentFlags().String("conf", "", "config file, default config when empty")
	rootCmd.AddCommand(
		commands.AccountCmd(),
	)
	pluginmgr.AddCmd(rootCmd)
	return rootCmd
}

//Run :
func Run() {
	log.SetLogLevel("error")
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package log

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/33cn/gawibawibo/types"
	log15 "github.com/inconshreveable/log15"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLevel(t *testing.T) {
	require.Equal(t, log15.LvlDebug, getLevel("debug"))
	require.Equal(t, log15.LvlInfo, getLevel("info"))
	require.Equal(t, log15.LvlError, getLevel("nosuchlevel"))
}

func TestModuleLevels(t *testing.T) {
	l := newLevels("error", map[string]string{"execs": "info", "execs.blend": "debug", "db": "crit"})
	assert.Equal(t, log15.LvlDebug, l.of("execs.blend"))
	assert.Equal(t, log15.LvlDebug, l.of("execs.blend.action"))
	assert.Equal(t, log15.LvlInfo, l.of("execs.base"))
	assert.Equal(t, log15.LvlCrit, l.of("db.goleveldb"))
	assert.Equal(t, log15.LvlError, l.of("client"))
	assert.Equal(t, log15.LvlError, l.of(""))

	var buf bytes.Buffer
	logger := log15.New()
	logger.SetHandler(filtered(l, &buf, log15.LogfmtFormat()))
	logger.New("module", "execs.blend").Debug("blend debug")
	logger.New("module", "client").Info("client info")
	logger.New("module", "db.memdb").Error("db error")
	logger.Error("no module")
	assert.Contains(t, buf.String(), "blend debug")
	assert.NotContains(t, buf.String(), "client info")
	assert.NotContains(t, buf.String(), "db error")
	assert.Contains(t, buf.String(), "no module")
}

func TestSetFileLog(t *testing.T) {
	dir, err := os.MkdirTemp("", "logtest")
	require.NoError(t, err)
	defer os.RemoveAll(dir)
	defer SetLogLevel("crit")

	cfg := &types.Log{
		LogFile:     filepath.Join(dir, "test.log"),
		Loglevel:    "info",
		MaxFileSize: 1,
		CallerFile:  true,
		Module:      map[string]string{"execs.blend": "debug"},
	}
	SetFileLog(cfg)
	require.Equal(t, "eror", cfg.LogConsoleLevel)
	New("module", "test").Info("hello", "key", 1)
	New("module", "test").Debug("quiet")
	New("module", "execs.blend").Debug("verbose")

	data, err := os.ReadFile(cfg.LogFile)
	require.NoError(t, err)
	require.Contains(t, string(data), "hello")
	require.Contains(t, string(data), "module=test")
	require.Contains(t, string(data), "verbose")
	require.NotContains(t, string(data), "quiet")
}

// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"strings"
	"testing"

	bt "github.com/33cn/gawibawibo/plugin/dapp/blend/types"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var identities = []string{
	"account-hash-8a3f2c0b1d7e",
	"account-hash-0000000000000000000000000000000000000000000000000000000000000000",
	"1KSBd17H7ZK8iT37aJztFB22XGwsPTdwE4",
	"alice",
	"",
}

func TestCatalog(t *testing.T) {
	entries := AllEntries()
	require.Len(t, entries, 23)
	assert.Equal(t, CatalogSize, len(entries))
	assert.Equal(t, "a8241dee1b", entries[0].Token)
	assert.Equal(t, bt.BlendSequence{bt.ChoiceRock, bt.ChoiceRock, bt.ChoiceRock}, entries[0].Sequence)
	assert.Equal(t, "62d63583cb", entries[22].Token)

	tokens := make(map[string]bool)
	seqs := make(map[bt.BlendSequence]bool)
	for _, e := range entries {
		assert.False(t, tokens[e.Token], e.Token)
		assert.False(t, seqs[e.Sequence], e.Sequence.String())
		tokens[e.Token] = true
		seqs[e.Sequence] = true
		for _, c := range e.Sequence {
			assert.True(t, c.Valid())
		}
	}

	// 返回的是拷贝
	entries[0].Token = "changed"
	assert.Equal(t, "a8241dee1b", AllEntries()[0].Token)
}

func TestCatalogUnreachable(t *testing.T) {
	missing := []bt.BlendSequence{
		{bt.ChoiceRock, bt.ChoiceScissors, bt.ChoicePaper},
		{bt.ChoicePaper, bt.ChoiceRock, bt.ChoiceScissors},
		{bt.ChoicePaper, bt.ChoiceScissors, bt.ChoiceRock},
		{bt.ChoiceScissors, bt.ChoiceRock, bt.ChoicePaper},
	}
	r, err := NewResolver("", 0)
	require.NoError(t, err)
	for _, seq := range missing {
		_, ok := tokenOf(seq)
		assert.False(t, ok, seq.String())
		_, err := r.Fingerprint("alice", seq)
		assert.Equal(t, bt.ErrSequenceNotInCatalog, errors.Cause(err))
	}
}

func TestEncodeBytesrepr(t *testing.T) {
	assert.Equal(t, []byte{2, 0, 0, 0, 'a', 'b'}, encodeBytesrepr("ab"))
	assert.Equal(t, []byte{0, 0, 0, 0}, encodeBytesrepr(""))
	assert.Equal(t, []byte("ab"), encodeRaw("ab"))
}

func TestResolveRoundTrip(t *testing.T) {
	for _, scheme := range []string{SchemeBytesrepr, SchemeRaw} {
		r, err := NewResolver(scheme, 4)
		require.NoError(t, err)
		assert.Equal(t, scheme, r.Scheme())
		for _, id := range identities {
			for _, e := range AllEntries() {
				fp, err := r.Fingerprint(id, e.Sequence)
				require.NoError(t, err)
				assert.Len(t, fp, 64)
				assert.Equal(t, r.hashToken(e.Token, id), fp)

				seq, ok := r.Resolve(id, fp)
				require.True(t, ok, "%s %s %s", scheme, id, e.Token)
				assert.Equal(t, e.Sequence, seq)
			}
		}
	}
}

func TestFingerprintBindsIdentity(t *testing.T) {
	r, err := NewResolver(SchemeBytesrepr, 0)
	require.NoError(t, err)
	seen := make(map[string]string)
	for _, id := range identities {
		for _, e := range AllEntries() {
			fp := r.hashToken(e.Token, id)
			_, dup := seen[fp]
			require.False(t, dup, "collision %s", fp)
			seen[fp] = id + "/" + e.Token
		}
	}

	fp, err := r.Fingerprint("alice", bt.BlendSequence{bt.ChoiceRock, bt.ChoiceRock, bt.ChoiceRock})
	require.NoError(t, err)
	seq, ok := r.Resolve("bob", fp)
	assert.False(t, ok)
	assert.Equal(t, bt.NoneSequence, seq)
}

func TestSchemesDiffer(t *testing.T) {
	br, err := NewResolver(SchemeBytesrepr, 0)
	require.NoError(t, err)
	raw, err := NewResolver(SchemeRaw, 0)
	require.NoError(t, err)
	seq := bt.BlendSequence{bt.ChoicePaper, bt.ChoicePaper, bt.ChoicePaper}
	fp1, _ := br.Fingerprint("alice", seq)
	fp2, _ := raw.Fingerprint("alice", seq)
	assert.NotEqual(t, fp1, fp2)
	_, ok := raw.Resolve("alice", fp1)
	assert.False(t, ok)
}

func TestResolveUnrecognized(t *testing.T) {
	r, err := NewResolver("", 0)
	require.NoError(t, err)
	fp, err := r.Fingerprint("alice", bt.BlendSequence{bt.ChoiceScissors, bt.ChoicePaper, bt.ChoiceRock})
	require.NoError(t, err)

	for _, bad := range []string{"", "00", strings.ToUpper(fp), fp + "0"} {
		seq, ok := r.Resolve("alice", bad)
		assert.False(t, ok, bad)
		assert.Equal(t, bt.NoneSequence, seq)
		assert.Equal(t, bt.NoneSequence, r.ResolveOrNone("alice", bad))
		_, err := r.ResolveStrict("alice", bad)
		assert.Equal(t, bt.ErrUnrecognizedFingerprint, errors.Cause(err))
	}
	seq, err := r.ResolveStrict("alice", fp)
	require.NoError(t, err)
	assert.Equal(t, bt.BlendSequence{bt.ChoiceScissors, bt.ChoicePaper, bt.ChoiceRock}, seq)
}

func TestResolverCache(t *testing.T) {
	r, err := NewResolver("", 2)
	require.NoError(t, err)
	r.Resolve("a", "x")
	r.Resolve("b", "x")
	r.Resolve("a", "x")
	assert.Equal(t, 2, r.cache.Len())
	r.Resolve("c", "x")
	assert.Equal(t, 2, r.cache.Len())
	assert.True(t, r.cache.Contains("a"))
	assert.False(t, r.cache.Contains("b"))
}

func TestUnknownScheme(t *testing.T) {
	_, err := NewResolver("base64", 0)
	assert.Equal(t, bt.ErrUnknownScheme, errors.Cause(err))
}

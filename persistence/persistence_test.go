// SPDX-License-Identifier: GPL-3.0-or-later
package persistence

import (
	"testing"

	"github.com/mailmig/go-uidl-sync/log"

	"github.com/stretchr/testify/assert"
)

func setupPersistence(t *testing.T) *Persistence {
	log.InitLogging("error")
	p, err := NewPersistence(":memory:")
	assert.NoError(t, err)
	return p
}

func TestUidlRoundtrip(t *testing.T) {
	p := setupPersistence(t)
	defer p.Close()

	assert.NoError(t, p.OpenMailbox("INBOX", 1))

	_, ok, err := p.GetUIDL("INBOX", 10)
	assert.NoError(t, err)
	assert.False(t, ok)

	assert.NoError(t, p.PutUIDL("INBOX", 10, "u1"))

	uidl, ok, err := p.GetUIDL("INBOX", 10)
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "u1", uidl)

	// overwrite
	assert.NoError(t, p.PutUIDL("INBOX", 10, "u2"))
	uidl, ok, err = p.GetUIDL("INBOX", 10)
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "u2", uidl)
}

func TestUidlAndDigestShareRow(t *testing.T) {
	p := setupPersistence(t)
	defer p.Close()

	assert.NoError(t, p.OpenMailbox("INBOX", 1))

	assert.NoError(t, p.PutUIDL("INBOX", 10, "u1"))
	assert.NoError(t, p.PutImapDigest("INBOX", 10, []byte{1, 2, 3}))

	uidl, ok, err := p.GetUIDL("INBOX", 10)
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "u1", uidl)

	digest, ok, err := p.GetImapDigest("INBOX", 10)
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte{1, 2, 3}, digest)

	// the digest-only row has no uidl
	assert.NoError(t, p.PutImapDigest("INBOX", 20, []byte{4, 5, 6}))
	_, ok, err = p.GetUIDL("INBOX", 20)
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestUidValidityChangeDropsAttributes(t *testing.T) {
	p := setupPersistence(t)
	defer p.Close()

	assert.NoError(t, p.OpenMailbox("INBOX", 1))
	assert.NoError(t, p.PutUIDL("INBOX", 10, "u1"))
	assert.NoError(t, p.PutImapDigest("INBOX", 10, []byte{1, 2, 3}))
	assert.NoError(t, p.PutPopDigest("u1", []byte{7, 8, 9}))

	// same uidvalidity, everything stays
	assert.NoError(t, p.OpenMailbox("INBOX", 1))
	_, ok, err := p.GetUIDL("INBOX", 10)
	assert.NoError(t, err)
	assert.True(t, ok)

	// changed uidvalidity, the uids refer to different messages now
	assert.NoError(t, p.OpenMailbox("INBOX", 2))

	_, ok, err = p.GetUIDL("INBOX", 10)
	assert.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = p.GetImapDigest("INBOX", 10)
	assert.NoError(t, err)
	assert.False(t, ok)

	// POP3 digests are keyed by UIDL and survive
	digest, ok, err := p.GetPopDigest("u1")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte{7, 8, 9}, digest)
}

func TestUidValidityScopedPerMailbox(t *testing.T) {
	p := setupPersistence(t)
	defer p.Close()

	assert.NoError(t, p.OpenMailbox("INBOX", 1))
	assert.NoError(t, p.OpenMailbox("Archive", 1))
	assert.NoError(t, p.PutUIDL("INBOX", 10, "u1"))
	assert.NoError(t, p.PutUIDL("Archive", 10, "u2"))

	// only INBOX's attributes are dropped
	assert.NoError(t, p.OpenMailbox("INBOX", 2))

	_, ok, err := p.GetUIDL("INBOX", 10)
	assert.NoError(t, err)
	assert.False(t, ok)

	uidl, ok, err := p.GetUIDL("Archive", 10)
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "u2", uidl)
}

func TestPopDigestRoundtrip(t *testing.T) {
	p := setupPersistence(t)
	defer p.Close()

	_, ok, err := p.GetPopDigest("u1")
	assert.NoError(t, err)
	assert.False(t, ok)

	assert.NoError(t, p.PutPopDigest("u1", []byte{1, 2, 3}))

	digest, ok, err := p.GetPopDigest("u1")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte{1, 2, 3}, digest)

	assert.NoError(t, p.PutPopDigest("u1", []byte{4, 5, 6}))
	digest, ok, err = p.GetPopDigest("u1")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte{4, 5, 6}, digest)
}

// SPDX-License-Identifier: GPL-3.0-or-later

// Package uidlsync reconciles message identities between a legacy POP3
// mailbox and a migrated IMAP mailbox: for every IMAP message it
// determines the originating POP3 UIDL and ordinal position, so POP3
// clients keep their "already downloaded" bookkeeping across the
// migration.
package uidlsync

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/mailmig/go-uidl-sync/domain"
	"github.com/mailmig/go-uidl-sync/headerhash"
	"github.com/mailmig/go-uidl-sync/log"

	"github.com/sirupsen/logrus"
)

// ErrSyncFailed is returned for every lookup of a session whose sync
// attempt failed. The failure is remembered, repeated lookups don't
// retry the network work.
var ErrSyncFailed = errors.New("POP3 UIDLs could not be synced")

type popEntry struct {
	seq  uint32
	uidl string
	size int64

	// uid of the matched IMAP message, 0 while unmatched
	imapUID uint32

	hdrHash    [headerhash.Size]byte
	hdrHashSet bool
}

type imapEntry struct {
	uid  uint32
	size int64

	// POP3 identity, either read back from the attribute cache during
	// map building or filled in by the matcher
	uidl    string
	pop3Seq uint32

	hdrHash    [headerhash.Size]byte
	hdrHashSet bool
}

type match struct {
	uidl string
	seq  uint32
}

// Syncer holds the state shared by all mailbox sessions against one
// legacy POP3 mailbox. The POP3 connection is opened lazily, after the
// first session has finished its IMAP traffic.
type Syncer struct {
	resolver domain.NamespaceResolver
	cache    domain.AttributeCache

	configuration *configuration

	pop3   domain.Pop3Source
	popMap []*popEntry
	// every POP3 digest is known, further mailboxes skip the whole
	// digest pass
	popDigestsComplete bool

	l *logrus.Logger
}

func NewSyncer(resolver domain.NamespaceResolver, cache domain.AttributeCache, configFunc ...ConfigFunc) (*Syncer, error) {
	config := &configuration{Mailbox: "INBOX"}
	for _, f := range configFunc {
		err := f(config)
		if err != nil {
			return nil, fmt.Errorf("error applying configuration: %w", err)
		}
	}

	return &Syncer{
		resolver:      resolver,
		cache:         cache,
		configuration: config,
		l:             log.Logger(log.LOG_SYNC),
	}, nil
}

func (s *Syncer) Close() error {
	if s.pop3 == nil {
		return nil
	}
	return s.pop3.Close()
}

// Mailbox starts a matching session against one IMAP mailbox. inner, if
// non-nil, answers lookups for messages without a POP3 match.
func (s *Syncer) Mailbox(imap domain.ImapSource, name string, inner domain.SpecialFieldSource) *Mailbox {
	return &Mailbox{
		syncer: s,
		imap:   imap,
		name:   name,
		inner:  inner,
		l:      s.l,
	}
}

// Mailbox is one matching session. The reconciliation runs on the first
// lookup that needs POP3-derived metadata; all later lookups are
// answered from the in-memory match table.
type Mailbox struct {
	syncer *Syncer
	imap   domain.ImapSource
	name   string
	inner  domain.SpecialFieldSource

	imapMap         []*imapEntry
	mapBuilt        bool
	cacheUsable     bool
	firstUnfoundIdx int

	synced  bool
	syncErr error
	matches map[uint32]match

	l *logrus.Logger
}

var _ domain.SpecialFieldSource = (*Mailbox)(nil)

// UIDL returns the POP3 UIDL assigned to an IMAP message.
func (m *Mailbox) UIDL(uid uint32) (string, error) {
	if err := m.SyncIfNeeded(); err != nil {
		return "", err
	}
	if mt, ok := m.matches[uid]; ok {
		return mt.uidl, nil
	}
	// not found on the POP3 server, fall back
	if m.inner != nil {
		return m.inner.UIDL(uid)
	}
	return "", domain.ErrNotFound
}

// Order returns the POP3 sequence number assigned to an IMAP message,
// formatted as a decimal string.
func (m *Mailbox) Order(uid uint32) (string, error) {
	if err := m.SyncIfNeeded(); err != nil {
		return "", err
	}
	if mt, ok := m.matches[uid]; ok && mt.seq != 0 {
		return strconv.FormatUint(uint64(mt.seq), 10), nil
	}
	if m.inner != nil {
		return m.inner.Order(uid)
	}
	return "", domain.ErrNotFound
}

// Matched reports how many IMAP messages carry a POP3 identity. Only
// meaningful after a successful SyncIfNeeded.
func (m *Mailbox) Matched() int {
	return len(m.matches)
}

// SyncIfNeeded runs the reconciliation once per session. A failed
// attempt is remembered and every later call short-circuits to the same
// error without touching the network again.
func (m *Mailbox) SyncIfNeeded() error {
	if m.synced {
		return nil
	}
	if m.syncErr != nil {
		return m.syncErr
	}

	if err := m.sync(); err != nil {
		m.l.WithFields(logrus.Fields{"mailbox": m.name, "error": err}).Error("POP3 UIDL sync failed")
		m.syncErr = fmt.Errorf("%w: %v", ErrSyncFailed, err)
		return m.syncErr
	}
	m.synced = true
	return nil
}

func (m *Mailbox) sync() error {
	// Handle all IMAP traffic before the POP3 connection is opened, so
	// the POP3 server won't disconnect an idling session.
	if err := m.imapMapRead(); err != nil {
		return err
	}
	if err := m.syncer.popMapRead(); err != nil {
		return err
	}

	m.assignCached()

	sortPopBySeq(m.syncer.popMap)
	sortImapByUID(m.imapMap)

	if !m.assignBySize() {
		// everything wasn't assigned, figure out the rest with header
		// digests
		if err := m.assignByHdrHash(); err != nil {
			return err
		}
	}

	if !m.syncer.configuration.SkipUidlCache {
		m.storeUidls()
	}
	m.buildMatchTable()

	m.l.WithFields(logrus.Fields{
		"mailbox": m.name,
		"matched": len(m.matches),
		"imap":    len(m.imapMap),
		"pop3":    len(m.syncer.popMap),
	}).Info("POP3 UIDLs synced")
	return nil
}

// storeUidls persists the assigned UIDLs so the next session can join
// them without any network traffic. Best-effort: a failed write only
// costs a redo next session.
func (m *Mailbox) storeUidls() {
	if !m.cacheUsable {
		return
	}
	for _, e := range m.imapMap {
		if e.uidl == "" {
			continue
		}
		if err := m.syncer.cache.PutUIDL(m.name, e.uid, e.uidl); err != nil {
			m.l.WithFields(logrus.Fields{"mailbox": m.name, "uid": e.uid, "error": err}).Debug("Could not cache UIDL")
		}
	}
}

func (m *Mailbox) buildMatchTable() {
	m.matches = make(map[uint32]match, len(m.imapMap))
	for _, e := range m.imapMap {
		if e.uidl == "" {
			continue
		}
		m.matches[e.uid] = match{uidl: e.uidl, seq: e.pop3Seq}
	}
}

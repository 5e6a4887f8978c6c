// SPDX-License-Identifier: GPL-3.0-or-later
package uidlsync

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/mailmig/go-uidl-sync/domain"
	"github.com/mailmig/go-uidl-sync/headerhash"

	"github.com/sirupsen/logrus"
)

// popMapRead enumerates the legacy mailbox once per Syncer. The POP3
// mailbox is assumed static within the session, so a repeated call only
// resets the match annotations for the next mailbox.
func (s *Syncer) popMapRead() error {
	if s.popMap != nil {
		for _, e := range s.popMap {
			e.imapUID = 0
		}
		return nil
	}

	if s.pop3 == nil {
		pop3, err := s.resolver.ResolveMailbox(s.configuration.Mailbox)
		if err != nil {
			return fmt.Errorf("could not resolve POP3 mailbox %s: %w", s.configuration.Mailbox, err)
		}
		s.pop3 = pop3
	}

	msgs, err := s.pop3.Enumerate(!s.configuration.SkipSizeCheck)
	if err != nil {
		return fmt.Errorf("could not list POP3 mailbox: %w", err)
	}

	popMap := make([]*popEntry, 0, len(msgs))
	for _, msg := range msgs {
		if msg.UIDL == "" {
			// never matchable
			s.l.WithFields(logrus.Fields{"seq": msg.Seq}).Warn("UIDL for POP3 message is empty")
			continue
		}
		popMap = append(popMap, &popEntry{seq: msg.Seq, uidl: msg.UIDL, size: msg.Size})
	}
	s.popMap = popMap

	s.l.WithFields(logrus.Fields{"messages": len(popMap)}).Debug("Built POP3 message map")
	return nil
}

// imapMapRead enumerates the target mailbox and annotates each entry
// with the UIDL a previous session may have cached for it. Built
// exactly once per session.
func (m *Mailbox) imapMapRead() error {
	if m.mapBuilt {
		return fmt.Errorf("imap message map for %s built twice", m.name)
	}
	m.mapBuilt = true

	cfg := m.syncer.configuration
	uidValidity, err := m.imap.Select(m.name)
	if err != nil {
		return fmt.Errorf("could not select mailbox %s: %w", m.name, err)
	}

	m.cacheUsable = !cfg.SkipUidlCache
	if m.cacheUsable {
		if err := m.syncer.cache.OpenMailbox(m.name, uidValidity); err != nil {
			// degrade to an empty cache, the sync just does more work
			m.l.WithFields(logrus.Fields{"mailbox": m.name, "error": err}).Warn("Could not open attribute cache for mailbox")
			m.cacheUsable = false
		}
	}

	msgs, err := m.imap.Enumerate(!cfg.SkipSizeCheck)
	if err != nil {
		return fmt.Errorf("could not list IMAP mailbox %s: %w", m.name, err)
	}

	m.imapMap = make([]*imapEntry, 0, len(msgs))
	for _, msg := range msgs {
		entry := &imapEntry{uid: msg.UID, size: msg.Size}
		if m.cacheUsable {
			uidl, ok, err := m.syncer.cache.GetUIDL(m.name, msg.UID)
			if err != nil {
				// tolerated as "no cached value"
				m.l.WithFields(logrus.Fields{"mailbox": m.name, "uid": msg.UID, "error": err}).Debug("Cached UIDL lookup failed")
			} else if ok {
				entry.uidl = uidl
			}
		}
		m.imapMap = append(m.imapMap, entry)
	}

	m.l.WithFields(logrus.Fields{"mailbox": m.name, "messages": len(m.imapMap)}).Debug("Built IMAP message map")
	return nil
}

// popMapReadHdrHashes fills in header digests for POP3 entries from
// firstSeq onward, cache first, fetching only what the cache misses.
// With AllMailboxes the whole mailbox is digested in one go so further
// matching sessions get it for free.
func (s *Syncer) popMapReadHdrHashes(firstSeq uint32) error {
	if s.popDigestsComplete {
		return nil
	}
	cfg := s.configuration
	if cfg.AllMailboxes {
		firstSeq = 1
	}

	for _, e := range s.popMap {
		if e.seq < firstSeq || e.hdrHashSet {
			continue
		}

		if !cfg.SkipUidlCache {
			digest, ok, err := s.cache.GetPopDigest(e.uidl)
			if err == nil && ok && len(digest) == headerhash.Size {
				copy(e.hdrHash[:], digest)
				e.hdrHashSet = true
				continue
			}
		}

		seq := e.seq
		sum, ok, err := fetchDigest(s.l, fmt.Sprintf("POP3 msg %d", seq),
			func() ([]byte, error) { return s.pop3.FetchHeader(seq) },
			func() ([]byte, error) { return s.pop3.FetchFull(seq) },
		)
		if err != nil {
			return err
		}
		if !ok {
			// erased from the server, cannot be matched by hash
			continue
		}
		e.hdrHash = sum
		e.hdrHashSet = true

		if !cfg.SkipUidlCache {
			if err := s.cache.PutPopDigest(e.uidl, sum[:]); err != nil {
				s.l.WithFields(logrus.Fields{"seq": seq, "error": err}).Debug("Could not cache POP3 header digest")
			}
		}
	}

	if firstSeq <= 1 {
		s.popDigestsComplete = true
	}
	return nil
}

// imapMapReadHdrHashes fills in header digests for the IMAP entries
// that are still unmatched. Entries before firstUnfoundIdx were all
// matched positionally and never need a digest.
func (m *Mailbox) imapMapReadHdrHashes() error {
	for i := m.firstUnfoundIdx; i < len(m.imapMap); i++ {
		e := m.imapMap[i]
		if e.hdrHashSet || e.uidl != "" {
			continue
		}

		if m.cacheUsable {
			digest, ok, err := m.syncer.cache.GetImapDigest(m.name, e.uid)
			if err == nil && ok && len(digest) == headerhash.Size {
				copy(e.hdrHash[:], digest)
				e.hdrHashSet = true
				continue
			}
		}

		uid := e.uid
		sum, ok, err := fetchDigest(m.l, fmt.Sprintf("imap uid %d", uid),
			func() ([]byte, error) { return m.imap.FetchHeader(uid) },
			func() ([]byte, error) { return m.imap.FetchFull(uid) },
		)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		e.hdrHash = sum
		e.hdrHashSet = true

		if m.cacheUsable {
			if err := m.syncer.cache.PutImapDigest(m.name, uid, sum[:]); err != nil {
				m.l.WithFields(logrus.Fields{"mailbox": m.name, "uid": uid, "error": err}).Debug("Could not cache IMAP header digest")
			}
		}
	}
	return nil
}

// fetchDigest computes the canonical header digest of one message. A
// header-only fetch without an end-of-headers marker means the server
// truncates headers it cannot parse; the full body is fetched instead
// and the header section hashed out of that, which works around such
// server bugs. ok=false means the message is gone from the server,
// which is tolerated.
func fetchDigest(l *logrus.Logger, what string, header, full func() ([]byte, error)) (sum [headerhash.Size]byte, ok bool, err error) {
	raw, err := header()
	if errors.Is(err, domain.ErrExpunged) {
		return sum, false, nil
	}
	if err != nil {
		return sum, false, fmt.Errorf("could not fetch header for %s: %w", what, err)
	}

	sum, haveEOH, err := headerhash.Digest(bytes.NewReader(raw))
	if err != nil {
		return sum, false, fmt.Errorf("could not hash header for %s: %w", what, err)
	}
	if haveEOH {
		return sum, true, nil
	}

	raw, err = full()
	if errors.Is(err, domain.ErrExpunged) {
		return sum, false, nil
	}
	if err != nil {
		return sum, false, fmt.Errorf("could not fetch body for %s: %w", what, err)
	}

	sum, haveEOH, err = headerhash.Digest(bytes.NewReader(raw))
	if err != nil {
		return sum, false, fmt.Errorf("could not hash body for %s: %w", what, err)
	}
	if !haveEOH {
		l.WithFields(logrus.Fields{"message": what}).Warn("Truncated email stored as truncated")
	}
	return sum, true, nil
}

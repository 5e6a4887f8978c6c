// SPDX-License-Identifier: GPL-3.0-or-later
package uidlsync

import (
	"bytes"
	"sort"

	"github.com/sirupsen/logrus"
)

// The maps are re-sorted by different keys across the phases; sorting
// is a transient view, enumeration order (pop3 seq, imap uid) is
// restored between phases.

func sortPopBySeq(entries []*popEntry) {
	sort.Slice(entries, func(i, j int) bool { return entries[i].seq < entries[j].seq })
}

func sortImapByUID(entries []*imapEntry) {
	sort.Slice(entries, func(i, j int) bool { return entries[i].uid < entries[j].uid })
}

func sortPopByUIDL(entries []*popEntry) {
	sort.Slice(entries, func(i, j int) bool { return entries[i].uidl < entries[j].uidl })
}

func sortImapByUIDL(entries []*imapEntry) {
	sort.Slice(entries, func(i, j int) bool { return entries[i].uidl < entries[j].uidl })
}

func sortPopByHash(entries []*popEntry) {
	sort.Slice(entries, func(i, j int) bool {
		return bytes.Compare(entries[i].hdrHash[:], entries[j].hdrHash[:]) < 0
	})
}

func sortImapByHash(entries []*imapEntry) {
	sort.Slice(entries, func(i, j int) bool {
		return bytes.Compare(entries[i].hdrHash[:], entries[j].hdrHash[:]) < 0
	})
}

// assignCached joins IMAP entries that already carry a UIDL from a
// previous session's cache: sort both sides by UIDL and merge-join in
// lockstep, advancing the side with the smaller key.
func (m *Mailbox) assignCached() {
	if m.syncer.configuration.SkipUidlCache {
		return
	}

	pop := m.syncer.popMap
	imap := m.imapMap
	sortPopByUIDL(pop)
	sortImapByUIDL(imap)

	matched := 0
	popIdx := 0
	for _, ie := range imap {
		if ie.uidl == "" {
			continue
		}
		for popIdx < len(pop) && pop[popIdx].uidl < ie.uidl {
			popIdx++
		}
		if popIdx == len(pop) {
			break
		}
		if pop[popIdx].uidl == ie.uidl && pop[popIdx].imapUID == 0 {
			ie.pop3Seq = pop[popIdx].seq
			pop[popIdx].imapUID = ie.uid
			matched++
		}
	}

	if matched > 0 {
		m.l.WithFields(logrus.Fields{"mailbox": m.name, "matched": matched}).Debug("Matched messages by cached UIDLs")
	}
}

// assignBySize walks both maps in enumeration order and matches
// positionally as long as the sizes agree. This is the cheap common
// case of an unmodified mailbox. The walk stops at the first
// divergence: a cached UIDL disagreeing with the aligned POP3 entry, a
// size mismatch, or two adjacent POP3 messages with the same size - a
// tie must not be guessed. Returns true only if everything on both
// sides was assigned.
func (m *Mailbox) assignBySize() bool {
	cfg := m.syncer.configuration
	pop := m.syncer.popMap
	imap := m.imapMap

	count := len(pop)
	if len(imap) < count {
		count = len(imap)
	}

	sizeMatch, uidlMatch := 0, 0
	i := 0
	for ; i < count; i++ {
		if imap[i].uidl != "" {
			// some of the UIDLs were already found cached
			if pop[i].uidl == imap[i].uidl {
				uidlMatch++
				continue
			}
			// mismatch - can't trust the sizes
			break
		}

		if cfg.SkipSizeCheck || pop[i].size != imap[i].size {
			break
		}
		if i+1 < count && pop[i].size == pop[i+1].size {
			// two messages with the same size, don't trust them
			break
		}

		sizeMatch++
		pop[i].imapUID = imap[i].uid
		imap[i].uidl = pop[i].uidl
		imap[i].pop3Seq = pop[i].seq
	}
	m.firstUnfoundIdx = i

	m.l.WithFields(logrus.Fields{
		"mailbox":     m.name,
		"cacheduidls": uidlMatch,
		"sizematches": sizeMatch,
		"total":       count,
	}).Debug("Positional size matching done")

	return i == count && len(imap) == len(pop)
}

// assignByHdrHash matches the remaining messages by canonical header
// digest: compute the missing digests on both sides, sort by digest and
// merge-join on exact equality. Afterwards the residual counts are run
// through the policy gate and enumeration order is restored.
func (m *Mailbox) assignByHdrHash() error {
	s := m.syncer

	firstSeq := uint32(m.firstUnfoundIdx) + 1
	if err := s.popMapReadHdrHashes(firstSeq); err != nil {
		return err
	}
	if err := m.imapMapReadHdrHashes(); err != nil {
		return err
	}

	pop := s.popMap
	imap := m.imapMap
	sortPopByHash(pop)
	sortImapByHash(imap)

	popIdx, imapIdx := 0, 0
	for popIdx < len(pop) && imapIdx < len(imap) {
		pe, ie := pop[popIdx], imap[imapIdx]
		if !pe.hdrHashSet || pe.imapUID != 0 {
			popIdx++
			continue
		}
		if !ie.hdrHashSet || ie.uidl != "" {
			imapIdx++
			continue
		}

		switch bytes.Compare(pe.hdrHash[:], ie.hdrHash[:]) {
		case -1:
			popIdx++
		case 1:
			imapIdx++
		default:
			pe.imapUID = ie.uid
			ie.uidl = pe.uidl
			ie.pop3Seq = pe.seq
			popIdx++
			imapIdx++
		}
	}

	missing := 0
	var firstMissing *popEntry
	for _, pe := range pop {
		switch {
		case pe.imapUID != 0:
			// matched
		case !pe.hdrHashSet:
			// treated as expunged - ignore
		default:
			if firstMissing == nil || pe.seq < firstMissing.seq {
				firstMissing = pe
			}
			missing++
		}
	}

	err := m.applyPolicy(missing, firstMissing, len(pop), len(imap))

	sortPopBySeq(pop)
	sortImapByUID(imap)
	return err
}

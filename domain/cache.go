// SPDX-License-Identifier: GPL-3.0-or-later
package domain

//go:generate mockgen -destination=mocks/cache.go -package=mocks . AttributeCache

// AttributeCache persists small per-message attributes across sessions:
// the POP3 UIDL assigned to an IMAP message and header digests for both
// sides. IMAP attributes are scoped to a mailbox and are only valid for
// the UIDVALIDITY they were written under; POP3 digests are keyed by
// UIDL, the only POP3 identifier stable across sessions.
//
// Get methods report a miss with ok=false; a returned error means the
// cache itself misbehaved and callers should degrade to a miss. Put
// failures are never fatal, they only cost a recompute next session.
type AttributeCache interface {
	// OpenMailbox registers the mailbox's current UIDVALIDITY and
	// drops all IMAP attributes recorded under a previous one.
	OpenMailbox(mailbox string, uidValidity uint32) error

	GetUIDL(mailbox string, uid uint32) (uidl string, ok bool, err error)
	PutUIDL(mailbox string, uid uint32, uidl string) error

	GetImapDigest(mailbox string, uid uint32) (digest []byte, ok bool, err error)
	PutImapDigest(mailbox string, uid uint32, digest []byte) error

	GetPopDigest(uidl string) (digest []byte, ok bool, err error)
	PutPopDigest(uidl string, digest []byte) error
}

// SPDX-License-Identifier: GPL-3.0-or-later
package uidlsync

import "fmt"

type ConfigFunc func(c *configuration) error

type configuration struct {
	// Mailbox is the legacy POP3 mailbox identifier, resolved through
	// the namespace resolver.
	Mailbox string

	AllMailboxes       bool
	IgnoreMissingUidls bool
	IgnoreExtraUidls   bool
	SkipSizeCheck      bool
	SkipUidlCache      bool
}

// LegacyMailbox sets the POP3 mailbox identifier, default "INBOX".
func LegacyMailbox(mailbox string) ConfigFunc {
	return func(c *configuration) error {
		if len(mailbox) == 0 {
			return fmt.Errorf("LegacyMailbox cannot be empty")
		}

		c.Mailbox = mailbox
		return nil
	}
}

// AllMailboxes marks the legacy mailbox as the source for several IMAP
// mailboxes. POP3 messages without a match are then expected and never
// fail the sync, and POP3 header digests are read for the whole mailbox
// at once instead of per matching session.
func AllMailboxes() ConfigFunc {
	return func(c *configuration) error {
		c.AllMailboxes = true
		return nil
	}
}

// IgnoreMissingUidls downgrades unmatched POP3 messages from a hard
// failure to a warning.
func IgnoreMissingUidls() ConfigFunc {
	return func(c *configuration) error {
		c.IgnoreMissingUidls = true
		return nil
	}
}

// IgnoreExtraUidls tolerates the legacy mailbox being a strict superset
// of the IMAP mailbox, e.g. when new mail arrived on the POP3 side
// during the migration.
func IgnoreExtraUidls() ConfigFunc {
	return func(c *configuration) error {
		c.IgnoreExtraUidls = true
		return nil
	}
}

// SkipSizeCheck disables size lookups on both sides. Matching then
// relies on cached UIDLs and header digests only.
func SkipSizeCheck() ConfigFunc {
	return func(c *configuration) error {
		c.SkipSizeCheck = true
		return nil
	}
}

// SkipUidlCache disables the attribute cache entirely: no cached UIDL
// join, no cached digests, nothing persisted.
func SkipUidlCache() ConfigFunc {
	return func(c *configuration) error {
		c.SkipUidlCache = true
		return nil
	}
}

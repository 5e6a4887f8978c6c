// SPDX-License-Identifier: GPL-3.0-or-later
package domain

//go:generate mockgen -destination=mocks/imap.go -package=mocks . ImapSource

// ImapSource is a connected IMAP account. Select must be called before
// the per-mailbox operations.
type ImapSource interface {
	// Select opens a mailbox read-only and returns its UIDVALIDITY.
	Select(mailbox string) (uint32, error)
	// Enumerate lists every message of the selected mailbox in
	// ascending UID order. When withSize is false the size lookup is
	// skipped and Size is -1.
	Enumerate(withSize bool) ([]ImapMessage, error)
	// FetchHeader returns the raw header section (BODY.PEEK[HEADER]).
	// Returns ErrExpunged if the message is gone.
	FetchHeader(uid uint32) ([]byte, error)
	// FetchFull returns the complete raw message (BODY.PEEK[]).
	FetchFull(uid uint32) ([]byte, error)
	Close() error
}

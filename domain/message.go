// SPDX-License-Identifier: GPL-3.0-or-later
package domain

import "errors"

var (
	// ErrExpunged is returned by fetch calls when the message has been
	// removed from the server since it was enumerated.
	ErrExpunged = errors.New("message expunged on server")

	// ErrNotFound is returned by lookups that have no value for the
	// requested message.
	ErrNotFound = errors.New("not found")
)

// PopMessage is one entry of a POP3 mailbox listing. Seq is the 1-based
// sequence number of the current session, the only handle the protocol
// offers. Size is -1 when size lookups are skipped.
type PopMessage struct {
	Seq  uint32
	UIDL string
	Size int64
}

// ImapMessage is one entry of an IMAP mailbox listing. Size is -1 when
// size lookups are skipped.
type ImapMessage struct {
	UID  uint32
	Size int64
}

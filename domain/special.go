// SPDX-License-Identifier: GPL-3.0-or-later
package domain

//go:generate mockgen -destination=mocks/special.go -package=mocks . SpecialFieldSource

// SpecialFieldSource answers POP3-style identity lookups for IMAP
// messages. The sync engine implements it and can wrap an inner source
// that it falls back to for messages without a POP3 match.
type SpecialFieldSource interface {
	// UIDL returns the POP3 UIDL of the message, or ErrNotFound.
	UIDL(uid uint32) (string, error)
	// Order returns the POP3 sequence number of the message formatted
	// as a decimal string, or ErrNotFound.
	Order(uid uint32) (string, error)
}

// SPDX-License-Identifier: GPL-3.0-or-later
package domain

//go:generate mockgen -destination=mocks/pop3.go -package=mocks . Pop3Source,NamespaceResolver

// Pop3Source is a connected legacy POP3 mailbox. The mailbox is assumed
// static for the lifetime of the source; sequence numbers returned by
// Enumerate stay valid for fetches on the same source.
type Pop3Source interface {
	// Enumerate lists every message in ascending sequence order. When
	// withSize is false the size lookup is skipped and Size is -1.
	Enumerate(withSize bool) ([]PopMessage, error)
	// FetchHeader returns the raw header section of a message. Returns
	// ErrExpunged if the message is gone from the server.
	FetchHeader(seq uint32) ([]byte, error)
	// FetchFull returns the complete raw message, for servers whose
	// header-only fetch is truncated.
	FetchFull(seq uint32) ([]byte, error)
	Close() error
}

// NamespaceResolver turns a configured legacy mailbox identifier into a
// connected Pop3Source. Returns ErrNotFound for an unknown identifier.
type NamespaceResolver interface {
	ResolveMailbox(identifier string) (Pop3Source, error)
}

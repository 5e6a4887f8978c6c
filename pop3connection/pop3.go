// SPDX-License-Identifier: GPL-3.0-or-later
package pop3connection

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mailmig/go-uidl-sync/domain"
	"github.com/mailmig/go-uidl-sync/log"

	"github.com/knadh/go-pop3"
	"github.com/sirupsen/logrus"
)

// Resolver maps mailbox identifiers to POP3 connections. POP3 exposes a
// single mailbox, so only INBOX resolves; the connection is dialed
// lazily on first resolve, keeping IMAP traffic strictly ahead of the
// POP3 login.
type Resolver struct {
	client *pop3.Client

	user, password string

	l *logrus.Logger
}

var _ domain.NamespaceResolver = (*Resolver)(nil)

func NewResolver(host string, port int, tlsEnabled bool, user string, password string) *Resolver {
	return &Resolver{
		client: pop3.New(pop3.Opt{
			Host:       host,
			Port:       port,
			TLSEnabled: tlsEnabled,
		}),
		user:     user,
		password: password,
		l:        log.Logger(log.LOG_POP3),
	}
}

func (r *Resolver) ResolveMailbox(identifier string) (domain.Pop3Source, error) {
	if !strings.EqualFold(identifier, "INBOX") {
		return nil, fmt.Errorf("POP3 mailbox %s: %w", identifier, domain.ErrNotFound)
	}

	conn, err := r.client.NewConn()
	if err != nil {
		return nil, fmt.Errorf("could not dial to pop3: %w", err)
	}
	err = conn.Auth(r.user, r.password)
	if err != nil {
		conn.Quit()
		return nil, fmt.Errorf("could not login to pop3: %w", err)
	}

	r.l.WithFields(logrus.Fields{"user": r.user}).Debug("Logged in to server")
	return &Pop3Connection{conn: conn, l: r.l}, nil
}

// Pop3Connection implements domain.Pop3Source on a logged-in session.
// Retrieval uses TOP and RETR only, the maildrop is never altered.
type Pop3Connection struct {
	conn *pop3.Conn
	l    *logrus.Logger
}

var _ domain.Pop3Source = (*Pop3Connection)(nil)

func (pc *Pop3Connection) Enumerate(withSize bool) ([]domain.PopMessage, error) {
	uidls, err := pc.conn.Uidl(0)
	if err != nil {
		return nil, fmt.Errorf("could not list uidls: %w", err)
	}

	msgs := make(map[int]*domain.PopMessage, len(uidls))
	for _, id := range uidls {
		msgs[id.ID] = &domain.PopMessage{Seq: uint32(id.ID), UIDL: id.UID, Size: -1}
	}

	if withSize {
		sizes, err := pc.conn.List(0)
		if err != nil {
			return nil, fmt.Errorf("could not list sizes: %w", err)
		}
		for _, id := range sizes {
			if msg, ok := msgs[id.ID]; ok {
				msg.Size = int64(id.Size)
			}
		}
	}

	result := make([]domain.PopMessage, 0, len(msgs))
	for _, msg := range msgs {
		result = append(result, *msg)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Seq < result[j].Seq })
	return result, nil
}

func (pc *Pop3Connection) FetchHeader(seq uint32) ([]byte, error) {
	buf, err := pc.conn.Cmd("TOP", true, seq, 0)
	if err != nil {
		return nil, fmt.Errorf("could not fetch header of msg %d: %w", seq, wrapGone(err))
	}
	return buf.Bytes(), nil
}

func (pc *Pop3Connection) FetchFull(seq uint32) ([]byte, error) {
	buf, err := pc.conn.RetrRaw(int(seq))
	if err != nil {
		return nil, fmt.Errorf("could not fetch msg %d: %w", seq, wrapGone(err))
	}
	return buf.Bytes(), nil
}

func (pc *Pop3Connection) Close() error {
	return pc.conn.Quit()
}

// wrapGone recognizes the -ERR reply servers give for a deleted or
// unknown message number.
func wrapGone(err error) error {
	if strings.Contains(strings.ToLower(err.Error()), "no such message") {
		return fmt.Errorf("%v: %w", err, domain.ErrExpunged)
	}
	return err
}

// SPDX-License-Identifier: GPL-3.0-or-later
package imapconnection

import (
	"fmt"
	"io"
	"sort"

	"github.com/mailmig/go-uidl-sync/domain"
	"github.com/mailmig/go-uidl-sync/log"

	"github.com/emersion/go-imap"
	"github.com/emersion/go-imap/client"
	"github.com/sirupsen/logrus"
)

// ImapConnection implements domain.ImapSource over a live IMAP
// connection. All access is read-only; the migration never mutates the
// target mailbox.
type ImapConnection struct {
	connection *client.Client

	server, user string

	selectedFolder string
	messages       uint32

	l *logrus.Logger
}

var _ domain.ImapSource = (*ImapConnection)(nil)

func NewImapConnection(server string, user string, password string) (*ImapConnection, error) {
	imapClient, err := client.DialTLS(server, nil)
	if err != nil {
		return nil, fmt.Errorf("could not dial to imap: %w", err)
	}

	err = imapClient.Login(user, password)
	if err != nil {
		return nil, fmt.Errorf("could not login to imap: %w", err)
	}

	conn := &ImapConnection{
		connection: imapClient,
		server:     server,
		user:       user,
		l:          log.Logger(log.LOG_IMAP),
	}

	conn.l.WithFields(logrus.Fields{"server": server}).Debug("Logged in to server")
	return conn, nil
}

func (ic *ImapConnection) Select(folder string) (uint32, error) {
	m, err := ic.connection.Select(folder, true)
	if err != nil {
		return 0, fmt.Errorf("could not select folder: %w", err)
	}

	ic.selectedFolder = folder
	ic.messages = m.Messages
	return m.UidValidity, nil
}

func (ic *ImapConnection) Enumerate(withSize bool) ([]domain.ImapMessage, error) {
	if ic.messages == 0 {
		return []domain.ImapMessage{}, nil
	}

	seqset := &imap.SeqSet{}
	seqset.AddRange(1, ic.messages)

	fetchItems := []imap.FetchItem{imap.FetchUid}
	if withSize {
		fetchItems = append(fetchItems, imap.FetchRFC822Size)
	}

	messages := make(chan *imap.Message, 10)
	done := make(chan error, 1)
	go func() {
		done <- ic.connection.Fetch(seqset, fetchItems, messages)
	}()

	result := []domain.ImapMessage{}
	for msg := range messages {
		size := int64(-1)
		if withSize {
			size = int64(msg.Size)
		}
		result = append(result, domain.ImapMessage{UID: msg.Uid, Size: size})
	}

	err := <-done
	if err != nil {
		return nil, fmt.Errorf("could not list folder: %w", err)
	}

	sort.Slice(result, func(i, j int) bool { return result[i].UID < result[j].UID })
	return result, nil
}

func (ic *ImapConnection) FetchHeader(uid uint32) ([]byte, error) {
	section := &imap.BodySectionName{
		BodyPartName: imap.BodyPartName{
			Specifier: imap.HeaderSpecifier,
		},
		Peek: true,
	}
	return ic.fetchSection(uid, section)
}

func (ic *ImapConnection) FetchFull(uid uint32) ([]byte, error) {
	section := &imap.BodySectionName{
		Peek: true,
	}
	return ic.fetchSection(uid, section)
}

func (ic *ImapConnection) fetchSection(uid uint32, section *imap.BodySectionName) ([]byte, error) {
	seqset := &imap.SeqSet{}
	seqset.AddNum(uid)

	fetchItems := []imap.FetchItem{section.FetchItem()}
	messages := make(chan *imap.Message, 1)
	done := make(chan error, 1)
	go func() {
		done <- ic.connection.UidFetch(seqset, fetchItems, messages)
	}()

	var raw []byte
	found := false
	for msg := range messages {
		r := msg.GetBody(section)
		if r == nil {
			continue
		}
		body, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("could not read mail body: %w", err)
		}
		raw = body
		found = true
	}

	err := <-done
	if err != nil {
		return nil, fmt.Errorf("could not fetch mail: %w", err)
	}
	if !found {
		// the message disappeared between enumeration and fetch
		return nil, fmt.Errorf("imap uid %d: %w", uid, domain.ErrExpunged)
	}

	return raw, nil
}

func (ic *ImapConnection) Close() error {
	return ic.connection.Logout()
}

// SPDX-License-Identifier: GPL-3.0-or-later
package uidlsync

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

// applyPolicy turns the residual mismatch counts into success, a
// warning or a hard failure, per the configured thresholds.
func (m *Mailbox) applyPolicy(missing int, firstMissing *popEntry, popCount, imapCount int) error {
	cfg := m.syncer.configuration

	if missing == 0 {
		m.l.WithFields(logrus.Fields{"mailbox": m.name, "count": popCount}).Debug("All POP3 messages matched")
		return nil
	}

	if cfg.AllMailboxes {
		// routinely expected, the unmatched messages most likely live
		// in other mailboxes
		m.l.WithFields(logrus.Fields{"mailbox": m.name, "missing": missing}).Debug("POP3 messages without a match in this mailbox")
		return nil
	}

	msg := fmt.Sprintf("%d POP3 messages have no matching IMAP messages (first POP3 msg %d UIDL %s)",
		missing, firstMissing.seq, firstMissing.uidl)

	allImapFound := imapCount+missing == popCount
	if allImapFound {
		msg += " - all IMAP messages were found (POP3 contains more than the IMAP mailbox, consider AllMailboxes)"
	}

	if allImapFound && cfg.IgnoreExtraUidls {
		// POP3 had more mails than IMAP. Maybe a new mail was just
		// delivered.
	} else if !cfg.IgnoreMissingUidls {
		return errors.New(msg + " - set IgnoreMissingUidls to continue anyway")
	}

	m.l.WithFields(logrus.Fields{"mailbox": m.name}).Warn(msg)
	return nil
}

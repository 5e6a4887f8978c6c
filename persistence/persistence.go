// SPDX-License-Identifier: GPL-3.0-or-later
package persistence

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/mailmig/go-uidl-sync/domain"
	"github.com/mailmig/go-uidl-sync/log"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	migrate "github.com/rubenv/sql-migrate"
	"github.com/sirupsen/logrus"
)

var migrations = &migrate.MemoryMigrationSource{
	Migrations: []*migrate.Migration{
		{
			Id: "1_initial",
			Up: []string{
				`CREATE TABLE mailboxes (
					name TEXT PRIMARY KEY,
					uidvalidity INTEGER NOT NULL
				)`,
				`CREATE TABLE imap_attrs (
					mailbox TEXT NOT NULL,
					uid INTEGER NOT NULL,
					uidl TEXT,
					hdrhash BLOB,
					PRIMARY KEY (mailbox, uid)
				)`,
				`CREATE TABLE pop3_hashes (
					uidl TEXT PRIMARY KEY,
					hdrhash BLOB NOT NULL
				)`,
			},
			Down: []string{
				`DROP TABLE pop3_hashes`,
				`DROP TABLE imap_attrs`,
				`DROP TABLE mailboxes`,
			},
		},
	},
}

// Persistence is the sqlite-backed attribute cache: per IMAP message
// the assigned UIDL and header digest, scoped to the mailbox's
// UIDVALIDITY, and per POP3 message the header digest keyed by UIDL.
type Persistence struct {
	db *sqlx.DB
	l  *logrus.Logger
}

var _ domain.AttributeCache = (*Persistence)(nil)

func NewPersistence(datasource string) (*Persistence, error) {
	db, err := sqlx.Connect("sqlite3", datasource)
	if err != nil {
		return nil, fmt.Errorf("could not open db: %w", err)
	}
	db.SetMaxOpenConns(1)

	l := log.Logger(log.LOG_CACHE)
	l.WithField("file", datasource).Info("Connected")

	_, err = db.Exec(`PRAGMA journal_mode=WAL`)
	if err != nil {
		return nil, fmt.Errorf("could not set journal mode: %w", err)
	}
	_, err = db.Exec(`PRAGMA synchronous=normal`)
	if err != nil {
		return nil, fmt.Errorf("could not set synchronous mode: %w", err)
	}

	appliedMigrations, err := migrate.Exec(db.DB, "sqlite3", migrations, migrate.Up)
	if err != nil {
		return nil, fmt.Errorf("could not migrate to newest version: %w", err)
	}

	l.WithField("migrations", appliedMigrations).Debug("Executed migrations")

	return &Persistence{
		db: db,
		l:  l,
	}, nil
}

func (p *Persistence) Close() error {
	err := p.db.Close()
	if err != nil {
		return fmt.Errorf("could not close db: %w", err)
	}
	p.l.Info("Disconnected")
	return nil
}

// OpenMailbox registers the mailbox's current UIDVALIDITY. Attributes
// written under a previous UIDVALIDITY refer to different messages and
// are dropped.
func (p *Persistence) OpenMailbox(mailbox string, uidValidity uint32) error {
	var known uint32
	err := p.db.Get(&known, `SELECT uidvalidity FROM mailboxes WHERE name = ?`, mailbox)
	if errors.Is(err, sql.ErrNoRows) {
		_, err = p.db.Exec(
			`INSERT INTO mailboxes (name, uidvalidity) VALUES (?, ?)`,
			mailbox, uidValidity,
		)
		if err != nil {
			return fmt.Errorf("could not register mailbox: %w", err)
		}
		p.l.WithFields(logrus.Fields{"mailbox": mailbox, "uidvalidity": uidValidity}).Debug("Registered mailbox")
		return nil
	}
	if err != nil {
		return fmt.Errorf("could not query mailbox: %w", err)
	}
	if known == uidValidity {
		return nil
	}

	tx, err := p.db.Beginx()
	if err != nil {
		return fmt.Errorf("could not start transaction: %w", err)
	}
	_, err = tx.Exec(`DELETE FROM imap_attrs WHERE mailbox = ?`, mailbox)
	if err != nil {
		return txEnd(tx, fmt.Errorf("could not drop stale attributes: %w", err))
	}
	_, err = tx.Exec(`UPDATE mailboxes SET uidvalidity = ? WHERE name = ?`, uidValidity, mailbox)
	if err != nil {
		return txEnd(tx, fmt.Errorf("could not update uidvalidity: %w", err))
	}

	p.l.WithFields(logrus.Fields{"mailbox": mailbox, "old": known, "new": uidValidity}).Info("UIDVALIDITY changed, dropped cached attributes")
	return txEnd(tx, nil)
}

func (p *Persistence) GetUIDL(mailbox string, uid uint32) (string, bool, error) {
	var uidl sql.NullString
	err := p.db.Get(
		&uidl,
		`SELECT uidl FROM imap_attrs WHERE mailbox = ? AND uid = ?`,
		mailbox, uid,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("could not query uidl: %w", err)
	}
	if !uidl.Valid || uidl.String == "" {
		return "", false, nil
	}
	return uidl.String, true, nil
}

func (p *Persistence) PutUIDL(mailbox string, uid uint32, uidl string) error {
	_, err := p.db.Exec(
		`INSERT INTO imap_attrs (mailbox, uid, uidl) VALUES (?, ?, ?)
		 ON CONFLICT (mailbox, uid) DO UPDATE SET uidl = excluded.uidl`,
		mailbox, uid, uidl,
	)
	if err != nil {
		return fmt.Errorf("could not save uidl: %w", err)
	}
	return nil
}

func (p *Persistence) GetImapDigest(mailbox string, uid uint32) ([]byte, bool, error) {
	var digest []byte
	err := p.db.Get(
		&digest,
		`SELECT hdrhash FROM imap_attrs WHERE mailbox = ? AND uid = ?`,
		mailbox, uid,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("could not query digest: %w", err)
	}
	if len(digest) == 0 {
		return nil, false, nil
	}
	return digest, true, nil
}

func (p *Persistence) PutImapDigest(mailbox string, uid uint32, digest []byte) error {
	_, err := p.db.Exec(
		`INSERT INTO imap_attrs (mailbox, uid, hdrhash) VALUES (?, ?, ?)
		 ON CONFLICT (mailbox, uid) DO UPDATE SET hdrhash = excluded.hdrhash`,
		mailbox, uid, digest,
	)
	if err != nil {
		return fmt.Errorf("could not save digest: %w", err)
	}
	return nil
}

func (p *Persistence) GetPopDigest(uidl string) ([]byte, bool, error) {
	var digest []byte
	err := p.db.Get(
		&digest,
		`SELECT hdrhash FROM pop3_hashes WHERE uidl = ?`,
		uidl,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("could not query digest: %w", err)
	}
	return digest, true, nil
}

func (p *Persistence) PutPopDigest(uidl string, digest []byte) error {
	_, err := p.db.Exec(
		`INSERT OR REPLACE INTO pop3_hashes (uidl, hdrhash) VALUES (?, ?)`,
		uidl, digest,
	)
	if err != nil {
		return fmt.Errorf("could not save digest: %w", err)
	}
	return nil
}

func txEnd(tx *sqlx.Tx, err error) error {
	if err == nil {
		err = tx.Commit()
		if err != nil {
			return fmt.Errorf("could not commit tx: %w", err)
		}
	} else {
		rollbackErr := tx.Rollback()
		if rollbackErr != nil {
			errStr := err.Error()
			return fmt.Errorf("%s, could not rollback tx: %w", errStr, rollbackErr)
		} else {
			return err
		}
	}

	return nil
}

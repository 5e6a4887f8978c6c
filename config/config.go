// SPDX-License-Identifier: GPL-3.0-or-later
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Database string

	Pop3Host     string
	Pop3User     string
	Pop3Password string
	Pop3TLS      bool

	ImapHost     string
	ImapUser     string
	ImapPassword string

	// Pop3Mailbox is the legacy mailbox identifier handed to the
	// namespace resolver, usually "INBOX".
	Pop3Mailbox string

	// Mailboxes are the IMAP mailboxes that get POP3 identities
	// assigned. Matching against mailboxes other than the first only
	// makes sense together with AllMailboxes.
	Mailboxes []string

	AllMailboxes       bool
	IgnoreMissingUidls bool
	IgnoreExtraUidls   bool
	SkipSizeCheck      bool
	SkipUidlCache      bool

	Loglevel *string
}

func ReadConfig(filename string) (*Config, error) {
	config := &Config{
		Database:    "uidlcache.db",
		Pop3Mailbox: "INBOX",
		Mailboxes:   []string{"INBOX"},
	}

	_, err := toml.DecodeFile(filename, config)
	if err != nil {
		return nil, fmt.Errorf("could not read config file: %w", err)
	}

	err = config.validate()
	if err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) validate() error {
	if err := validateNonEmptyStringField(c.Database, "Database name must not be empty, set to a filename for the sqlite uidl cache"); err != nil {
		return err
	}

	if err := validateNonEmptyStringField(c.Pop3Host, "Pop3Host must not be empty, set to host:port of the legacy pop3 server"); err != nil {
		return err
	}

	if err := validateNonEmptyStringField(c.Pop3User, "Pop3User must not be empty, set to username on the pop3 server"); err != nil {
		return err
	}

	if err := validateNonEmptyStringField(c.ImapHost, "ImapHost must not be empty, set to host:port of the imap server"); err != nil {
		return err
	}

	if err := validateNonEmptyStringField(c.ImapUser, "ImapUser must not be empty, set to username on the imap server"); err != nil {
		return err
	}

	if err := validateNonEmptyStringField(c.Pop3Mailbox, "Pop3Mailbox must not be empty, set to the legacy mailbox identifier"); err != nil {
		return err
	}

	if len(c.Mailboxes) == 0 {
		return errors.New("Mailboxes must not be empty, set to the imap mailboxes to assign uidls in")
	}

	if len(c.Mailboxes) > 1 && !c.AllMailboxes {
		return errors.New("matching more than one mailbox requires AllMailboxes")
	}

	return nil
}

func validateNonEmptyStringField(field string, err string) error {
	if len(strings.TrimSpace(field)) == 0 {
		return errors.New(err)
	}

	return nil
}

// SPDX-License-Identifier: GPL-3.0-or-later
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

const minimalConfig = `
Pop3Host = "pop.example.com:995"
Pop3User = "user"
Pop3Password = "secret"
ImapHost = "imap.example.com:993"
ImapUser = "user"
ImapPassword = "secret"
`

func writeConfig(t *testing.T, content string) string {
	filename := filepath.Join(t.TempDir(), "config.toml")
	assert.NoError(t, os.WriteFile(filename, []byte(content), 0o600))
	return filename
}

func TestReadConfigDefaults(t *testing.T) {
	conf, err := ReadConfig(writeConfig(t, minimalConfig))
	assert.NoError(t, err)

	assert.Equal(t, "uidlcache.db", conf.Database)
	assert.Equal(t, "INBOX", conf.Pop3Mailbox)
	assert.Equal(t, []string{"INBOX"}, conf.Mailboxes)
	assert.False(t, conf.AllMailboxes)
	assert.False(t, conf.IgnoreMissingUidls)
}

func TestReadConfigOverrides(t *testing.T) {
	conf, err := ReadConfig(writeConfig(t, minimalConfig+`
Database = "other.db"
Mailboxes = ["INBOX", "Archive"]
AllMailboxes = true
IgnoreExtraUidls = true
Loglevel = "warn"
`))
	assert.NoError(t, err)

	assert.Equal(t, "other.db", conf.Database)
	assert.Equal(t, []string{"INBOX", "Archive"}, conf.Mailboxes)
	assert.True(t, conf.AllMailboxes)
	assert.True(t, conf.IgnoreExtraUidls)
	assert.Equal(t, "warn", *conf.Loglevel)
}

func TestReadConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		err     string
	}{
		{
			"missingpop3host",
			`
Pop3User = "user"
ImapHost = "imap.example.com:993"
ImapUser = "user"
`,
			"Pop3Host must not be empty, set to host:port of the legacy pop3 server",
		},
		{
			"missingimapuser",
			`
Pop3Host = "pop.example.com:995"
Pop3User = "user"
ImapHost = "imap.example.com:993"
`,
			"ImapUser must not be empty, set to username on the imap server",
		},
		{
			"severalmailboxes",
			minimalConfig + `Mailboxes = ["INBOX", "Archive"]`,
			"matching more than one mailbox requires AllMailboxes",
		},
		{
			"emptymailboxes",
			minimalConfig + `Mailboxes = []`,
			"Mailboxes must not be empty, set to the imap mailboxes to assign uidls in",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			conf, err := ReadConfig(writeConfig(t, tc.content))
			assert.Nil(t, conf)
			assert.EqualError(t, err, tc.err)
		})
	}
}

func TestReadConfigMissingFile(t *testing.T) {
	conf, err := ReadConfig(filepath.Join(t.TempDir(), "doesnotexist.toml"))
	assert.Nil(t, conf)
	assert.ErrorContains(t, err, "could not read config file")
}

// SPDX-License-Identifier: GPL-3.0-or-later
package uidlsync

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLegacyMailbox(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		expected      *configuration
		expectedError error
	}{
		{"ok", "legacy/INBOX", &configuration{Mailbox: "legacy/INBOX"}, nil},
		{"lenvalidation", "", nil, fmt.Errorf("LegacyMailbox cannot be empty")},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := &configuration{}
			err := LegacyMailbox(tc.input)(cfg)
			if tc.expected != nil {
				assert.Equal(t, tc.expected, cfg)
				assert.Nil(t, err)
			} else {
				assert.Equal(t, tc.expectedError, err)
			}
		})
	}
}

func TestAllMailboxes(t *testing.T) {
	cfg := &configuration{}
	err := AllMailboxes()(cfg)

	assert.Equal(t, cfg, &configuration{AllMailboxes: true})
	assert.Nil(t, err)
}

func TestIgnoreMissingUidls(t *testing.T) {
	cfg := &configuration{}
	err := IgnoreMissingUidls()(cfg)

	assert.Equal(t, cfg, &configuration{IgnoreMissingUidls: true})
	assert.Nil(t, err)
}

func TestIgnoreExtraUidls(t *testing.T) {
	cfg := &configuration{}
	err := IgnoreExtraUidls()(cfg)

	assert.Equal(t, cfg, &configuration{IgnoreExtraUidls: true})
	assert.Nil(t, err)
}

func TestSkipSizeCheck(t *testing.T) {
	cfg := &configuration{}
	err := SkipSizeCheck()(cfg)

	assert.Equal(t, cfg, &configuration{SkipSizeCheck: true})
	assert.Nil(t, err)
}

func TestSkipUidlCache(t *testing.T) {
	cfg := &configuration{}
	err := SkipUidlCache()(cfg)

	assert.Equal(t, cfg, &configuration{SkipUidlCache: true})
	assert.Nil(t, err)
}

// SPDX-License-Identifier: GPL-3.0-or-later
package pop3connection

import (
	"errors"
	"testing"

	"github.com/mailmig/go-uidl-sync/domain"
	"github.com/mailmig/go-uidl-sync/log"

	"github.com/stretchr/testify/assert"
)

func TestResolveMailboxUnknown(t *testing.T) {
	log.InitLogging("error")
	r := NewResolver("pop.example.com", 995, true, "user", "secret")

	tests := []struct {
		name       string
		identifier string
	}{
		{"other", "Archive"},
		{"empty", ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			source, err := r.ResolveMailbox(tc.identifier)
			assert.Nil(t, source)
			assert.ErrorIs(t, err, domain.ErrNotFound)
		})
	}
}

func TestWrapGone(t *testing.T) {
	gone := wrapGone(errors.New("-ERR no such message"))
	assert.ErrorIs(t, gone, domain.ErrExpunged)

	other := errors.New("-ERR server busy")
	assert.Equal(t, other, wrapGone(other))
	assert.False(t, errors.Is(wrapGone(other), domain.ErrExpunged))
}

// SPDX-License-Identifier: GPL-3.0-or-later

// Package headerhash computes a digest over a canonical view of a
// message's header section. Two header streams that represent the same
// logical message as seen through different POP3 and IMAP server
// implementations hash identically, despite the formatting quirks those
// implementations are known for.
package headerhash

import (
	"bufio"
	"crypto/sha1"
	"io"
	"sort"
	"strings"
)

// Size is the width of a digest in bytes.
const Size = sha1.Size

// Headers that change between protocols or over time. Sorted, compared
// case-insensitively.
var skipHeaders = []string{
	"content-length",
	"return-path", // Yahoo IMAP has Return-Path, Yahoo POP3 doesn't
	"status",
	"x-imap",
	"x-imapbase",
	"x-keywords",
	"x-message-flag",
	"x-status",
	"x-uid",
	"x-uidl",
	"x-yahoo-newman-property",
}

type state struct {
	h io.Writer

	// all further header lines are excluded once a CR-only line was
	// seen, some servers truncate their header output there
	stop bool
	// the current header was dropped, its continuation lines go with it
	dropCurrent bool
}

// Digest canonicalizes the header section read from r and returns its
// SHA-1. haveEOH reports whether the empty end-of-headers line was
// present; if it wasn't, the input was truncated and the caller should
// retry with a full-body fetch. Anything after the end-of-headers line
// is ignored.
func Digest(r io.Reader) (sum [Size]byte, haveEOH bool, err error) {
	h := sha1.New()
	st := &state{h: h}

	br := bufio.NewReader(r)
	for {
		line, readErr := br.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return sum, false, readErr
		}

		if len(line) > 0 {
			body := strings.TrimSuffix(line, "\n")
			body = strings.TrimSuffix(body, "\r")
			if body == "" {
				// end of headers, the body is not part of the digest
				h.Write([]byte{'\n'})
				copy(sum[:], h.Sum(nil))
				return sum, true, nil
			}
			st.line(body)
		}

		if readErr == io.EOF {
			break
		}
	}

	if st.stop {
		// truncated below the CR-only line; force the end-of-headers
		// line so both server views hash the same
		h.Write([]byte{'\n'})
	}
	copy(sum[:], h.Sum(nil))
	return sum, false, nil
}

func (st *state) line(body string) {
	if body[0] == ' ' || body[0] == '\t' {
		// continuation of the previous header
		if st.stop || st.dropCurrent {
			return
		}
		if strings.Trim(body, " \t") == "" {
			// "header: \r\n \r\n" - Zimbra's BODY[HEADER] strips this
			// line away
			return
		}
		st.emit(body)
		return
	}

	st.dropCurrent = false
	if strings.Trim(body, "\r") == "" {
		// CR+CR+LF - some servers stop the header processing here
		// while others don't. Stop entirely so both can be matched.
		st.stop = true
		return
	}
	colon := strings.IndexByte(body, ':')
	if colon < 0 {
		// not a valid "name: value" header - Zimbra's BODY[HEADER]
		// strips this line away
		st.dropCurrent = true
		return
	}
	if st.stop {
		return
	}
	name := body[:colon]
	if !headerNameValid(name) {
		// Yahoo IMAP drops headers with invalid names while Yahoo
		// POP3 preserves them. Drop them all.
		st.dropCurrent = true
		return
	}
	if headerSkipped(name) {
		st.dropCurrent = true
		return
	}
	st.emit(body)
}

// emit writes the normalized line into the digest: trailing whitespace
// stripped, control and non-ASCII bytes folded into one '?' per run,
// LF line terminator.
func (st *state) emit(body string) {
	body = strings.TrimRight(body, " \t")

	out := make([]byte, 0, len(body)+1)
	folded := false
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c < 0x20 || c >= 0x7f {
			if !folded {
				out = append(out, '?')
				folded = true
			}
			continue
		}
		out = append(out, c)
		folded = false
	}
	out = append(out, '\n')
	st.h.Write(out)
}

func headerNameValid(name string) bool {
	for i := 0; i < len(name); i++ {
		if name[i] <= 0x20 || name[i] >= 0x7f {
			return false
		}
	}
	return true
}

func headerSkipped(name string) bool {
	lower := strings.ToLower(name)
	i := sort.SearchStrings(skipHeaders, lower)
	return i < len(skipHeaders) && skipHeaders[i] == lower
}

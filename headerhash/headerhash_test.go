// SPDX-License-Identifier: GPL-3.0-or-later
package headerhash

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func digest(t *testing.T, input string) ([Size]byte, bool) {
	sum, haveEOH, err := Digest(strings.NewReader(input))
	assert.NoError(t, err)
	return sum, haveEOH
}

func TestDigestEquivalentViews(t *testing.T) {
	tests := []struct {
		name string
		a, b string
	}{
		{
			"lineendings",
			"From: a@example.com\r\nSubject: hello\r\n\r\nbody",
			"From: a@example.com\nSubject: hello\n\nbody",
		},
		{
			"skippedheader",
			"From: a@example.com\r\nStatus: RO\r\nSubject: hello\r\n\r\n",
			"From: a@example.com\r\nSubject: hello\r\n\r\n",
		},
		{
			"skippedheadervalue",
			"From: a@example.com\r\nX-UIDL: abc\r\n\r\n",
			"From: a@example.com\r\nX-UIDL: def\r\n\r\n",
		},
		{
			"skippedheadercase",
			"From: a@example.com\r\nRETURN-PATH: <x>\r\n\r\n",
			"From: a@example.com\r\nReturn-Path: <y>\r\n\r\n",
		},
		{
			"trailingwhitespace",
			"Subject: hello   \r\n\r\n",
			"Subject: hello\r\n\r\n",
		},
		{
			"eightbitfolded",
			"Subject: h\xc3\xa9llo\r\n\r\n",
			"Subject: h?llo\r\n\r\n",
		},
		{
			"whitespacecontinuation",
			"X-A: v\r\n \r\nSubject: hello\r\n\r\n",
			"X-A: v\r\nSubject: hello\r\n\r\n",
		},
		{
			"nocolondropped",
			"From: a@example.com\r\nnot a header line\r\nSubject: hello\r\n\r\n",
			"From: a@example.com\r\nSubject: hello\r\n\r\n",
		},
		{
			"nocolondroppedwithcontinuation",
			"From: a@example.com\r\nnot a header line\r\n\tcontinued\r\nSubject: hello\r\n\r\n",
			"From: a@example.com\r\nSubject: hello\r\n\r\n",
		},
		{
			"invalidnamedropped",
			"From: a@example.com\r\nBad Name: x\r\nSubject: hello\r\n\r\n",
			"From: a@example.com\r\nSubject: hello\r\n\r\n",
		},
		{
			"bodyignored",
			"Subject: hello\r\n\r\nfirst body",
			"Subject: hello\r\n\r\nsecond body",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sumA, _ := digest(t, tc.a)
			sumB, _ := digest(t, tc.b)
			assert.Equal(t, sumA, sumB)
		})
	}
}

func TestDigestDiffers(t *testing.T) {
	sumA, _ := digest(t, "Subject: hello\r\n\r\n")
	sumB, _ := digest(t, "Subject: goodbye\r\n\r\n")
	assert.NotEqual(t, sumA, sumB)
}

func TestDigestContinuationPreserved(t *testing.T) {
	joined, _ := digest(t, "Subject: hello world\r\n\r\n")
	split, _ := digest(t, "Subject: hello\r\n world\r\n\r\n")
	assert.NotEqual(t, joined, split)
}

func TestDigestEndOfHeaders(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		haveEOH bool
	}{
		{"present", "Subject: hello\r\n\r\nbody", true},
		{"presentnobody", "Subject: hello\r\n\r\n", true},
		{"truncated", "Subject: hello\r\n", false},
		{"truncatednonewline", "Subject: hello", false},
		{"empty", "", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, haveEOH := digest(t, tc.input)
			assert.Equal(t, tc.haveEOH, haveEOH)
		})
	}
}

// A CR-only line makes some servers cut the header output short while
// others keep going. Both views must land on the same digest.
func TestDigestCrLineAligns(t *testing.T) {
	full, haveEOH := digest(t, "Subject: hello\r\n\r\r\nX-After: dropped\r\n\r\nbody")
	assert.True(t, haveEOH)

	truncated, haveEOH := digest(t, "Subject: hello\r\n\r\r\n")
	assert.False(t, haveEOH)

	assert.Equal(t, full, truncated)
}

package runeio_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jcorbin/goscratch/internal/runeio"
)

func TestWriteANSIString(t *testing.T) {
	for _, tc := range []struct {
		name string
		in   string
		out  string
	}{
		{"ascii", "hello", "hello"},
		{"utf8", "héllo ☃", "héllo ☃"},
		{"NEL", "a\u0085b", "a\r\nb"},
		{"CSI", "\u009b1m", "\x1b[1m"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			n, err := runeio.WriteANSIString(&buf, tc.in)
			assert.NoError(t, err)
			assert.Equal(t, tc.out, buf.String())
			assert.Equal(t, len(tc.out), n)
		})
	}
}

func TestWriteANSILine(t *testing.T) {
	var sb strings.Builder
	_, err := runeio.WriteANSILine(&sb, "[ 1 2 ]")
	assert.NoError(t, err)
	_, err = runeio.WriteANSILine(&sb, "")
	assert.NoError(t, err)
	assert.Equal(t, "[ 1 2 ]\n\n", sb.String())
}

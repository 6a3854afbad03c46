package fileinput_test

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcorbin/goscratch/internal/fileinput"
)

type named struct {
	io.Reader
	name string
}

func (n named) Name() string { return n.name }

func TestInput(t *testing.T) {
	in := fileinput.Input{Queue: []io.Reader{
		named{strings.NewReader("1 2\n3"), "a"},
		named{strings.NewReader("4"), "b"},
	}}

	var runes []rune
	var locs []string
	for {
		r, _, err := in.ReadRune()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		runes = append(runes, r)
		locs = append(locs, in.Location().String())
	}

	assert.Equal(t, []rune{'1', ' ', '2', '\n', '3', 0, '4'}, runes,
		"expected a zero rune between inputs")
	assert.Equal(t, []string{
		"a:1", "a:1", "a:1", // 1 2
		"a:1", // line feed rolls over to Last
		"a:2", // 3
		"a:2", // boundary
		"b:1", // 4
	}, locs)
	assert.Equal(t, "b:1", in.Location().String(), "expected end of input to stay on the last line")
}

func TestInput_unnamed(t *testing.T) {
	in := fileinput.Input{Queue: []io.Reader{strings.NewReader("x\ny")}}
	for _, want := range []rune{'x', '\n'} {
		r, _, err := in.ReadRune()
		require.NoError(t, err)
		assert.Equal(t, want, r)
	}
	assert.Equal(t, "<unnamed *strings.Reader>:1", in.Location().String())
	assert.Equal(t, `<unnamed *strings.Reader>:1 "x"`, in.Last.String())
}

type closeCounter struct {
	io.Reader
	closed int
}

func (cc *closeCounter) Close() error {
	cc.closed++
	return nil
}

func TestInput_closes(t *testing.T) {
	a := &closeCounter{Reader: strings.NewReader("a")}
	b := &closeCounter{Reader: strings.NewReader("b")}
	in := fileinput.Input{Queue: []io.Reader{a, b}}

	r, _, err := in.ReadRune()
	require.NoError(t, err)
	assert.Equal(t, 'a', r)
	assert.Equal(t, 0, a.closed, "expected first input open while read")

	r, _, err = in.ReadRune()
	require.NoError(t, err)
	assert.Equal(t, rune(0), r)
	assert.Equal(t, 1, a.closed, "expected first input closed at its end")

	for err == nil {
		_, _, err = in.ReadRune()
	}
	assert.Equal(t, io.EOF, err)
	assert.Equal(t, 1, a.closed)
	assert.Equal(t, 1, b.closed)
}

package output

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingSink struct{ err error }

func (f failingSink) Emit(string) error { return f.err }

func TestCollector(t *testing.T) {
	var c Collector
	_, ok := c.Last()
	assert.False(t, ok)

	var buf bytes.Buffer
	n, err := c.WriteTo(&buf)
	require.NoError(t, err)
	assert.Zero(t, n)

	require.NoError(t, c.Emit("kubectl get pods"))
	require.NoError(t, c.Emit("git status"))

	line, ok := c.Last()
	assert.True(t, ok)
	assert.Equal(t, "git status", line)

	_, err = c.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, "git status\n", buf.String())
}

func TestMulti_EmitsToAllAndJoinsErrors(t *testing.T) {
	var a, b Collector
	boom := errors.New("boom")
	m := Multi{&a, failingSink{boom}, &b}

	err := m.Emit("ls")
	assert.ErrorIs(t, err, boom)

	la, _ := a.Last()
	lb, _ := b.Last()
	assert.Equal(t, "ls", la)
	assert.Equal(t, "ls", lb)

	assert.NoError(t, Multi{&a}.Emit("pwd"))
	assert.NoError(t, Multi{}.Emit("pwd"))
}

func TestClipboard_WrapsWriteError(t *testing.T) {
	c := &Clipboard{write: func(string) error { return errors.New("no display") }}
	err := c.Emit("ls")
	require.Error(t, err)
	assert.EqualError(t, err, "clipboard: no display")
}

func TestClipboard_WritesLine(t *testing.T) {
	var got string
	c := &Clipboard{write: func(s string) error { got = s; return nil }}
	require.NoError(t, c.Emit("make deploy"))
	assert.Equal(t, "make deploy", got)
}

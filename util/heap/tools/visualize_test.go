package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/navijation/njheap/util/heap/tools/config"
)

func TestVisualizeHelper(t *testing.T) {
	cfg := config.Default()
	cfg.Ordering = config.OrderingNumeric

	var out bytes.Buffer
	require.NoError(t, visualizeHelper(cfg, []string{"5", "3", "8", "1", "4"}, &out))

	lines := bytes.Split(bytes.TrimSpace(out.Bytes()), []byte("\n"))
	require.Len(t, lines, 13)
	assert.Equal(t, "Adds", string(lines[0]))
	assert.Contains(t, string(lines[5]), "size=5")
	assert.Contains(t, string(lines[5]), "capacity=11")
	assert.Contains(t, string(lines[5]), "[ 1 3 8 5 4 ]")
	assert.Equal(t, "Removes", string(lines[7]))
	assert.Contains(t, string(lines[8]), "- 1 ")
	assert.Contains(t, string(lines[12]), "- 8 ")
	assert.Contains(t, string(lines[12]), "[ ]")
}

type failingWriter struct {
	err       error
	remaining int
}

func (me *failingWriter) Write(b []byte) (int, error) {
	if me.remaining == 0 {
		return 0, me.err
	}
	me.remaining--
	return len(b), nil
}

func TestVisualizeHelper_WriteErrors(t *testing.T) {
	errWrite := errors.New("broken pipe")
	cfg := config.Default()

	// header, then 2 adds, then the removes header, then 2 removes
	for written := range 6 {
		out := &failingWriter{err: errWrite, remaining: written}
		err := visualizeHelper(cfg, []string{"b", "a"}, out)
		assert.ErrorIs(t, err, errWrite, "failing after %d writes", written)
	}

	require.NoError(t, visualizeHelper(cfg, []string{"b", "a"}, &failingWriter{err: errWrite, remaining: 6}))
}

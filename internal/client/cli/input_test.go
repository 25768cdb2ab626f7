package cli

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rdr(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func stubTerminal(t *testing.T, terminal bool, pw []byte, err error) {
	t.Helper()
	origTerm, origRead := isTerminal, readPassword
	isTerminal = func(int) bool { return terminal }
	readPassword = func(int) ([]byte, error) { return pw, err }
	t.Cleanup(func() {
		isTerminal = origTerm
		readPassword = origRead
	})
}

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("  ada@x.com \n"), "Enter email", &out)
	require.NoError(t, err)
	assert.Equal(t, "ada@x.com", got)
	assert.Equal(t, "Enter email\n> ", out.String())
}

func TestGetSimpleText_LastLineWithoutNewline(t *testing.T) {
	got, err := GetSimpleText(rdr("Ada"), "Name", &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, "Ada", got)
}

func TestGetSimpleText_EmptyEOF(t *testing.T) {
	_, err := GetSimpleText(rdr(""), "Name", &bytes.Buffer{})
	require.Error(t, err)
}

func TestGetPassword_Terminal(t *testing.T) {
	stubTerminal(t, true, []byte("secret1"), nil)

	var out bytes.Buffer
	pw, err := GetPassword(rdr("ignored\n"), &out)
	require.NoError(t, err)
	assert.Equal(t, []byte("secret1"), pw)
	assert.Equal(t, "Enter password: \n", out.String())
}

func TestGetPassword_TerminalError(t *testing.T) {
	stubTerminal(t, true, nil, errors.New("boom"))

	_, err := GetPassword(rdr(""), &bytes.Buffer{})
	require.Error(t, err)
}

func TestGetPassword_PipedInput(t *testing.T) {
	stubTerminal(t, false, nil, errors.New("must not be called"))

	pw, err := GetPassword(rdr("secret1\r\nnext\n"), &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, []byte("secret1"), pw)
}

func TestGetPassword_PipedKeepsSpaces(t *testing.T) {
	stubTerminal(t, false, nil, nil)

	pw, err := GetPassword(rdr(" pass word \n"), &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, []byte(" pass word "), pw)
}

func TestGetPassword_PipedEOF(t *testing.T) {
	stubTerminal(t, false, nil, nil)

	_, err := GetPassword(rdr(""), &bytes.Buffer{})
	require.Error(t, err)
}

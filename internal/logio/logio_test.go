package logio_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jcorbin/goforth/internal/logio"
)

func Test_Logger(t *testing.T) {
	var out strings.Builder
	var log logio.Logger
	log.SetOutput(&out)

	trace := log.Leveledf("TRACE")
	trace("define %v", "FOO")
	log.Printf("", "3 4 ok")
	assert.Equal(t, 0, log.ExitCode(), "expected zero exit code before any error")

	log.ErrorIf(nil)
	log.ErrorIf(errors.New("bang"))
	log.Errorf("script.fs:%v: %v", 2, "nope: unknown word")
	assert.Equal(t, 1, log.ExitCode(), "expected non-zero exit code after error")

	assert.Equal(t, strings.Join([]string{
		"TRACE: define FOO",
		"3 4 ok",
		"ERROR: bang",
		"ERROR: script.fs:2: nope: unknown word",
	}, "\n")+"\n", out.String())
}

func Test_Writer(t *testing.T) {
	var got []string
	lw := logio.Writer{Logf: func(mess string, args ...interface{}) {
		got = append(got, fmt.Sprintf(mess, args...))
	}}
	fmt.Fprintf(&lw, "# Forth Dump\n  stack: ")
	fmt.Fprintf(&lw, "[1 2]\n  dict: 8 words")
	assert.Equal(t, []string{"# Forth Dump", "  stack: [1 2]"}, got)
	lw.Close()
	assert.Equal(t, []string{"# Forth Dump", "  stack: [1 2]", "  dict: 8 words"}, got)
}

package flushio_test

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcorbin/goforth/internal/flushio"
)

func Test_NewWriteFlusher(t *testing.T) {
	var sb strings.Builder
	wf := flushio.NewWriteFlusher(&sb)
	io.WriteString(wf, "1 2 ok\n")
	assert.Equal(t, "1 2 ok\n", sb.String(), "expected buffers to be written through")
	assert.NoError(t, wf.Flush())

	bw := bufio.NewWriter(&bytes.Buffer{})
	assert.Equal(t, flushio.WriteFlusher(bw), flushio.NewWriteFlusher(bw), "expected existing flusher to be reused")

	assert.NoError(t, flushio.NewWriteFlusher(io.Discard).Flush())

	path := filepath.Join(t.TempDir(), "out")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	wf = flushio.NewWriteFlusher(f)
	io.WriteString(wf, "3 ok\n")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "", string(data), "expected file writes to be buffered")
	require.NoError(t, wf.Flush())
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "3 ok\n", string(data), "expected flush to write")
}

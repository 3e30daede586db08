package ndjson

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

type line struct {
	API    string `json:"api"`
	Method string `json:"method"`
}

func TestReaderSkipsBlankLines(t *testing.T) {
	in := "{\"api\":\"content\",\"method\":\"accounts.get\"}\n\n  \n{\"api\":\"sasportal\",\"method\":\"nodes.get\"}"
	r := NewReader[line](strings.NewReader(in))

	first, n, err := r.Next()
	require.NoError(t, err)
	require.Equal(t, 1, n)
	require.Equal(t, "accounts.get", first.Method)

	second, n, err := r.Next()
	require.NoError(t, err)
	require.Equal(t, 4, n)
	require.Equal(t, "sasportal", second.API)

	_, _, err = r.Next()
	require.True(t, errors.Is(err, io.EOF))
}

func TestReaderReportsBadLine(t *testing.T) {
	in := "{\"api\":\"content\"}\nnot json\n"
	items, err := ReadAll[line](strings.NewReader(in))
	require.Error(t, err)
	require.Contains(t, err.Error(), "line 2")
	require.Len(t, items, 1)
}

func TestReaderLongLine(t *testing.T) {
	long := strings.Repeat("x", 10000)
	in := "{\"api\":\"" + long + "\"}\n"
	items, err := ReadAll[line](strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, long, items[0].API)
}

func TestWriterOneRecordPerLine(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = w.Write(line{API: "content", Method: "products.list"})
		}()
	}
	wg.Wait()

	items, err := ReadAll[line](&buf)
	require.NoError(t, err)
	require.Len(t, items, 20)

	var nilWriter *Writer
	require.NoError(t, nilWriter.Write(line{}))
}

package json

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalRoundTrip(t *testing.T) {
	in := map[string]interface{}{"name": "alice", "age": 30}

	data, err := Marshal(in)
	require.NoError(t, err)

	var out map[string]interface{}
	require.NoError(t, Unmarshal(data, &out))
	assert.Equal(t, "alice", out["name"])
}

func TestMarshalToWriterNoHTMLEscaping(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, MarshalToWriter(&buf, map[string]string{"q": "a < b"}))
	assert.Contains(t, buf.String(), "a < b")
}

func TestBufferPool(t *testing.T) {
	buf := GetBuffer()
	require.NotNil(t, buf)
	assert.Zero(t, buf.Len())

	buf.WriteString("scratch")
	PutBuffer(buf)

	again := GetBuffer()
	assert.Zero(t, again.Len(), "pooled buffers come back reset")
	PutBuffer(again)
}

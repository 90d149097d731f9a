package recordset

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colkit/colkit/pkg/column"
	"github.com/colkit/colkit/pkg/json"
)

func boolColumn(name string, pos uint, values ...bool) column.Column {
	return column.NewBool(
		column.MetaColumn{Name: name, Position: pos, Type: column.TypeBool},
		column.NewBitset(values...),
	)
}

func TestWriteCSV(t *testing.T) {
	rs, err := New(
		intColumn("id", 0, 1, 2),
		stringColumn("name", 1, "alice", "bob"),
		boolColumn("active", 2, true, false),
	)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, rs.WriteCSV(&buf))

	assert.Equal(t, "id,name,active\n1,alice,true\n2,bob,false\n", buf.String())
}

func TestWriteCSVQuoting(t *testing.T) {
	rs, err := New(stringColumn("note", 0, `say "hi", ok`))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, rs.WriteCSV(&buf))

	assert.Equal(t, "note\n\"say \"\"hi\"\", ok\"\n", buf.String())
}

func TestWriteJSON(t *testing.T) {
	rs, err := New(
		intColumn("id", 0, 1, 2),
		stringColumn("name", 1, "alice", "bob"),
		boolColumn("active", 2, true, false),
	)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, rs.WriteJSON(&buf))

	var out []map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))

	require.Len(t, out, 2)
	assert.Equal(t, "alice", out[0]["name"])
	assert.Equal(t, true, out[0]["active"])
	assert.Equal(t, "bob", out[1]["name"])
	assert.Equal(t, false, out[1]["active"])
}

func TestWriteJSONEmpty(t *testing.T) {
	rs, err := New(intColumn("id", 0))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, rs.WriteJSON(&buf))

	var out []map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Empty(t, out)
}

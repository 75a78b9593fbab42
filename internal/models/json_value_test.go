package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONValueValueDefaultsToEmptyObject(t *testing.T) {
	var j JSONValue

	v, err := j.Value()
	require.NoError(t, err)
	assert.Equal(t, "{}", v)
}

func TestJSONValueScanKeepsRawText(t *testing.T) {
	var j JSONValue

	// 数组、对象、标量都原样往返,不强行解析成map
	require.NoError(t, j.Scan(`["a","b"]`))
	assert.Equal(t, `["a","b"]`, string(j))

	require.NoError(t, j.Scan([]byte(`{"k":1}`)))
	assert.Equal(t, `{"k":1}`, string(j))

	require.NoError(t, j.Scan(nil))
	assert.Empty(t, j)
}

func TestJSONValueMarshalEmptyAsObject(t *testing.T) {
	var j JSONValue

	out, err := j.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, "{}", string(out))

	j = JSONValue(`["a"]`)
	out, err = j.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `["a"]`, string(out))
}

func TestJSONValueUnmarshalRoundTrip(t *testing.T) {
	var j JSONValue
	require.NoError(t, j.UnmarshalJSON([]byte(`{"tags":["a","b"]}`)))
	assert.Equal(t, `{"tags":["a","b"]}`, string(j))
}

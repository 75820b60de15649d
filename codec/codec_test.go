package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByName(t *testing.T) {
	c, ok := ByName("json")
	require.True(t, ok)
	assert.Equal(t, "json", c.Name())

	c, ok = ByName("go-json")
	require.True(t, ok)
	assert.Equal(t, "go-json", c.Name())

	_, ok = ByName("msgpack")
	assert.False(t, ok)
}

func TestCodecsAgree(t *testing.T) {
	type sample struct {
		Name  string  `json:"name"`
		Value float64 `json:"value"`
	}
	in := sample{Name: "MaxHP", Value: 485.1}

	// go-json output must be readable by encoding/json and vice versa, so
	// snapshots stay portable across codec choices.
	data, err := GoJSON{}.Marshal(in)
	require.NoError(t, err)

	var out sample
	require.NoError(t, JSON{}.Unmarshal(data, &out))
	assert.Equal(t, in, out)

	data, err = JSON{}.Marshal(in)
	require.NoError(t, err)

	out = sample{}
	require.NoError(t, GoJSON{}.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}

package endian

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetLittleEndianEngine(t *testing.T) {
	engine := GetLittleEndianEngine()
	require.Equal(t, binary.LittleEndian, engine)

	buf := engine.AppendUint32(nil, 0x04030201)
	require.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, buf)
}

func TestUint24(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want uint32
	}{
		{"zero", []byte{0, 0, 0}, 0},
		{"small", []byte{3, 0, 0}, 3},
		{"all bytes", []byte{0x01, 0x02, 0x03}, 0x030201},
		{"max", []byte{0xFF, 0xFF, 0xFF}, MaxUint24},
		{"ignores fourth byte", []byte{0x05, 0x00, 0x00, 0xFF}, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Uint24(tt.data))
		})
	}
}

func TestUint24_Short(t *testing.T) {
	require.Panics(t, func() { Uint24([]byte{1, 2}) })
}

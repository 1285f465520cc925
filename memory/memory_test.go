package memory

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRAM(t *testing.T) {
	for _, size := range []int{0, -1, 3, 100, 1 << 17} {
		_, err := NewRAM(size)
		assert.Error(t, err, "size %d", size)
	}
	for _, size := range []int{1, 256, 1 << 15, 1 << 16} {
		r, err := NewRAM(size)
		assert.NoError(t, err, "size %d", size)
		assert.NotNil(t, r)
	}
}

func TestRAMAliasing(t *testing.T) {
	r, err := NewRAM(256)
	assert.NoError(t, err)

	r.Write(0x0010, 0x42)
	assert.Equal(t, uint8(0x42), r.Read(0x0010))
	// A 256 byte bank aliases across every page.
	assert.Equal(t, uint8(0x42), r.Read(0x1210))

	r.Write(0xFF10, 0x43)
	assert.Equal(t, uint8(0x43), r.Read(0x0010))
}

func TestMapROMWritesIgnored(t *testing.T) {
	m := NewMap()

	m.Write(0x1234, 0x42)
	assert.Equal(t, uint8(0x42), m.Read(0x1234))

	m.Write(0x9000, 0x42)
	assert.Equal(t, uint8(0x00), m.Read(0x9000))
}

func TestLoadImage(t *testing.T) {
	t.Run("full 64k", func(t *testing.T) {
		img := make([]byte, 1<<16)
		img[0x0000] = 0x11
		img[0x7FFF] = 0x22
		img[0x8000] = 0x33
		img[0xFFFF] = 0x44

		m := NewMap()
		n, err := m.LoadImage(bytes.NewReader(img))
		assert.NoError(t, err)
		assert.Equal(t, 1<<16, n)
		assert.Equal(t, uint8(0x11), m.Read(0x0000))
		assert.Equal(t, uint8(0x22), m.Read(0x7FFF))
		assert.Equal(t, uint8(0x33), m.Read(0x8000))
		assert.Equal(t, uint8(0x44), m.Read(0xFFFF))
	})
	t.Run("short image stays in ram", func(t *testing.T) {
		m := NewMap()
		n, err := m.LoadImage(bytes.NewReader([]byte{0xAA, 0xBB}))
		assert.NoError(t, err)
		assert.Equal(t, 2, n)
		assert.Equal(t, uint8(0xAA), m.Read(0x0000))
		assert.Equal(t, uint8(0xBB), m.Read(0x0001))
		assert.Equal(t, uint8(0x00), m.Read(0x8000))
	})
	t.Run("oversized image rejected", func(t *testing.T) {
		m := NewMap()
		_, err := m.LoadImage(bytes.NewReader(make([]byte, 1<<16+1)))
		assert.Error(t, err)
	})
}

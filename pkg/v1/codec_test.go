package v1

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCodecDefaults(t *testing.T) {
	codec, err := NewCodec()
	require.NoError(t, err)

	assert.Equal(t, Float64, codec.Typecode())
	assert.Equal(t, "(1.0, 2.0)", codec.Display(New(1, 2)))
	assert.Equal(t, "Vector([0.0, 1.0, 2.0, 3.0, 4.0, ...])", codec.Repr(New(0, 1, 2, 3, 4, 5)))
}

func TestCodecRoundTrip(t *testing.T) {
	codec, err := NewCodec()
	require.NoError(t, err)

	for _, v := range []Vector{New(), New(3, 4), New(0.1, 0.2, 0.3)} {
		data, err := codec.Encode(v)
		require.NoError(t, err)

		got, err := codec.Decode(data)
		require.NoError(t, err)
		assert.True(t, got.Equal(v), "%v != %v", got, v)
	}
}

func TestCodecFloat32(t *testing.T) {
	codec, err := NewCodec(WithTypecode(Float32))
	require.NoError(t, err)

	data, err := codec.Encode(New(1.5, 0.1))
	require.NoError(t, err)
	require.Len(t, data, 9)
	assert.Equal(t, byte('f'), data[0])

	got, err := codec.Decode(data)
	require.NoError(t, err)
	assert.True(t, got.Equal(New(1.5, float64(float32(0.1)))))
}

func TestCodecDecodeAnyTypecode(t *testing.T) {
	codec, err := NewCodec(WithTypecode(Float32))
	require.NoError(t, err)

	got, err := codec.Decode(New(3, 4).Bytes())
	require.NoError(t, err)
	assert.True(t, got.Equal(New(3, 4)))

	_, err = codec.Decode([]byte{'d', 0, 0})
	assert.ErrorIs(t, err, ErrDecode)
}

func TestCodecOptions(t *testing.T) {
	codec, err := NewCodec(WithPreview(2), WithPrecision(2))
	require.NoError(t, err)

	assert.Equal(t, "Vector([1.0, 2.0, ...])", codec.Repr(New(1, 2, 3)))
	assert.Equal(t, "(3.00, 4.00)", codec.Display(New(3, 4)))
}

func TestCodecDisplaySingleComponent(t *testing.T) {
	plain, err := NewCodec()
	require.NoError(t, err)
	fixed, err := NewCodec(WithPrecision(2))
	require.NoError(t, err)

	assert.Equal(t, "(1.0,)", plain.Display(New(1)))
	assert.Equal(t, "(1.00,)", fixed.Display(New(1)))
	assert.Equal(t, "()", fixed.Display(New()))
}

func TestCodecInvalidOptions(t *testing.T) {
	for name, opt := range map[string]Option{
		"typecode":  WithTypecode(Typecode('q')),
		"preview":   WithPreview(-1),
		"precision": WithPrecision(-3),
	} {
		t.Run(name, func(t *testing.T) {
			_, err := NewCodec(opt)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestCodecWithConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Format.ReprPreview = 1

	codec, err := NewCodec(WithConfig(cfg), WithTypecode(Float32))
	require.NoError(t, err)

	assert.Equal(t, Float32, codec.Typecode())
	assert.Equal(t, "Vector([1.0, ...])", codec.Repr(New(1, 2)))
	assert.Equal(t, "d", cfg.Format.Typecode, "caller's config must not be modified")
}

func TestCodecWithConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vectors.yaml")
	doc := "format:\n  typecode: f\n  display_precision: 1\n"
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	codec, err := NewCodec(WithConfigFile(path))
	if err != nil {
		t.Fatalf("new codec: %v", err)
	}

	if codec.Typecode() != Float32 {
		t.Errorf("typecode = %v, want %v", codec.Typecode(), Float32)
	}
	if got := codec.Display(New(1, 2)); got != "(1.0, 2.0)" {
		t.Errorf("display = %q, want %q", got, "(1.0, 2.0)")
	}
}

func TestSaveConfigThenCodec(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vectors.yaml")

	cfg := DefaultConfig()
	cfg.Format.Typecode = "f"
	cfg.Format.ReprPreview = 2
	require.NoError(t, SaveConfig(path, cfg))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.Format, loaded.Format)

	codec, err := NewCodec(WithConfigFile(path))
	require.NoError(t, err)
	assert.Equal(t, Float32, codec.Typecode())
	assert.Equal(t, "Vector([1.0, 2.0, ...])", codec.Repr(New(1, 2, 3)))

	bad := DefaultConfig()
	bad.Format.ReprPreview = -1
	assert.ErrorIs(t, SaveConfig(path, bad), ErrInvalidConfig)
}

func TestCodecWithBadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vectors.yaml")
	if err := os.WriteFile(path, []byte("format:\n  typecode: z\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	_, err := NewCodec(WithConfigFile(path))
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestFacadeVector(t *testing.T) {
	v := New(1, 2, 3, 4, 5)

	odd, err := v.Slice(Full().Step(2))
	require.NoError(t, err)
	assert.True(t, odd.Equal(New(1, 3, 5)))

	tail, err := v.Slice(From(3))
	require.NoError(t, err)
	assert.True(t, tail.Equal(New(4, 5)))

	head, err := v.Slice(To(1))
	require.NoError(t, err)
	assert.Equal(t, Equal, head.Compare(New(1)))

	mid, err := v.Slice(Span(1, 3))
	require.NoError(t, err)
	assert.Equal(t, NotEqual, mid.Compare(New(1)))
	assert.Equal(t, Incomparable, mid.Compare(42))

	_, err = New(1).Add(New(1, 2))
	assert.ErrorIs(t, err, ErrDimensionMismatch)

	decoded, err := FromBytes(v.Bytes())
	require.NoError(t, err)
	assert.True(t, decoded.Equal(v))
}

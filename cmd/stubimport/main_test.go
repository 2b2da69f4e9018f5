package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/izu-co/espflash"
	"github.com/izu-co/espflash/chip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const stub = `{"entry": 1077411842, "text": "AQIDBA==", "text_start": 1077411840, "data": "BQY=", "data_start": 1070178304}`

func TestLoadStubList(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "stubs.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"esp32": "a.json", "ESP32-S3": "b.json"}`), 0644))

	list, err := LoadStubList(path)
	require.NoError(t, err)
	assert.Equal(t, StubList{chip.Esp32: "a.json", chip.Esp32s3: "b.json"}, list)

	require.NoError(t, os.WriteFile(path, []byte(`{"esp8266": "a.json"}`), 0644))
	_, err = LoadStubList(path)
	assert.Error(t, err)

	_, err = LoadStubList(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}

func TestRun(t *testing.T) {
	src := t.TempDir()
	out := t.TempDir()

	in := filepath.Join(src, "stub.json")
	require.NoError(t, os.WriteFile(in, []byte(stub), 0644))
	list := filepath.Join(src, "stubs.json")
	require.NoError(t, os.WriteFile(list, []byte(`{"esp32c6": "`+filepath.ToSlash(in)+`"}`), 0644))

	err := run(CommandLine{Chip: "esp32c3", In: in, StubMap: list, OutDir: out}, zap.NewNop())
	require.NoError(t, err)

	for _, name := range []string{"esp32c3.json", "esp32c6.json"} {
		b, err := os.ReadFile(filepath.Join(out, name))
		require.NoError(t, err)
		s, err := espflash.ParseStub(b)
		require.NoError(t, err)
		assert.Equal(t, uint32(0x40380002), s.Entry())
	}
}

func TestRun_unknownChip(t *testing.T) {
	err := run(CommandLine{Chip: "esp8266", In: "stub.json", OutDir: t.TempDir()}, zap.NewNop())
	var unknown *chip.UnknownChipError
	assert.True(t, errors.As(err, &unknown))
}

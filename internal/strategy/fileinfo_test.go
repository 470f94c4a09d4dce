package strategy

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFileInfoExtension(t *testing.T) {
	tests := []struct {
		path     string
		expected string
	}{
		{"main.py", ".py"},
		{"src/deep/main.GO", ".go"},
		{"archive.tar.gz", ".gz"},
		{".bashrc", ""},
		{"Makefile", ""},
		{"dir.with.dots/noext", ""},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			file := &FileInfo{Path: tt.path}
			assert.Equal(t, tt.expected, file.Extension())
		})
	}
}

func TestFileInfoBasename(t *testing.T) {
	file := &FileInfo{Path: "a/b/c.rb"}
	assert.Equal(t, "c.rb", file.Basename())
}

func TestFileInfoSampleBounded(t *testing.T) {
	small := &FileInfo{Content: []byte("tiny")}
	assert.Equal(t, []byte("tiny"), small.Sample())

	big := &FileInfo{Content: bytes.Repeat([]byte("x"), SampleSize+100)}
	assert.Len(t, big.Sample(), SampleSize)
}

func TestFileInfoLines(t *testing.T) {
	file := &FileInfo{Content: []byte("one\r\ntwo\nthree\nfour\n")}

	assert.Equal(t, "one", file.FirstLine())
	assert.Equal(t, []string{"one", "two"}, file.HeadLines(2))
	assert.Equal(t, []string{"three", "four"}, file.TailLines(2))
	assert.Equal(t, []string{"one", "two", "three", "four"}, file.HeadLines(10))

	empty := &FileInfo{}
	assert.Equal(t, "", empty.FirstLine())
	assert.Empty(t, empty.HeadLines(5))
}

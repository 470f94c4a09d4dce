package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseInterpreter(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected string
	}{
		{"absolute path", "#!/usr/bin/perl\n", "perl"},
		{"with flags", "#!/usr/bin/perl -w\n", "perl"},
		{"env wrapper", "#!/usr/bin/env python3\n", "python3"},
		{"env with option args", "#!/usr/bin/env -S node --harmony\n", "node"},
		{"env with variable ref", "#!/usr/bin/env $INTERP ruby\n", "ruby"},
		{"versioned collapses at dot", "#!/usr/local/bin/python2.7\n", "python2"},
		{"versioned via env", "#!/usr/bin/env ruby1.9\n", "ruby1"},
		{"bare env", "#!/usr/bin/env\n", ""},
		{"osascript", "#!/usr/bin/osascript\n", "osascript"},
		{"osascript language flag", "#!/usr/bin/osascript -l JavaScript\n", ""},
		{"no shebang", "package main\n", ""},
		{"empty shebang", "#!\n", ""},
		{"whitespace after bang", "#! /bin/awk -f\n", "awk"},
		{"empty file", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file := &FileInfo{Path: "script", Content: []byte(tt.content)}
			assert.Equal(t, tt.expected, ParseInterpreter(file))
		})
	}
}

func TestParseInterpreterExecTrampoline(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected string
	}{
		{
			"sh exec perl",
			"#!/bin/sh\nexec perl -x \"$0\" \"$@\"\n",
			"perl",
		},
		{
			"bash exec with flags",
			"#!/bin/bash\n# wrapper\nexec -a tclsh /usr/bin/tclsh \"$0\"\n",
			"tclsh",
		},
		{
			"plain shell stays shell",
			"#!/bin/sh\necho hello\n",
			"sh",
		},
		{
			"exec too far down is ignored",
			"#!/bin/sh\n\n\n\n\n\nexec perl \"$0\"\n",
			"sh",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file := &FileInfo{Path: "script", Content: []byte(tt.content)}
			assert.Equal(t, tt.expected, ParseInterpreter(file))
		})
	}
}

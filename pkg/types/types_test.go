package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntryNameParts(t *testing.T) {
	tests := []struct {
		name string
		ext  string
		stem string
	}{
		{"report.pdf", "pdf", "report"},
		{"archive.tar.gz", "gz", "archive.tar"},
		{"Makefile", "", "Makefile"},
		{".bashrc", "", ".bashrc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := Entry{Name: tt.name}
			assert.Equal(t, tt.ext, e.Extension())
			assert.Equal(t, tt.stem, e.Stem())
		})
	}
}

func TestParseTarget(t *testing.T) {
	tests := []struct {
		in      string
		want    Target
		wantErr bool
	}{
		{"", TargetFiles, false},
		{"files", TargetFiles, false},
		{"Dirs", TargetDirs, false},
		{"both", TargetBoth, false},
		{"everything", TargetFiles, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTarget(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTargetAccepts(t *testing.T) {
	assert.True(t, TargetFiles.Accepts(File))
	assert.True(t, TargetFiles.Accepts(Symlink))
	assert.False(t, TargetFiles.Accepts(Dir))

	assert.True(t, TargetDirs.Accepts(Dir))
	assert.False(t, TargetDirs.Accepts(File))

	for _, ft := range []FileType{File, Dir, Symlink} {
		assert.True(t, TargetBoth.Accepts(ft), ft.String())
	}
}

func TestLocationString(t *testing.T) {
	assert.Equal(t, "/tmp/x (files)", Location{Path: "/tmp/x"}.String())
	assert.Equal(t, "/tmp/x (both, recursive)", Location{Path: "/tmp/x", Recursive: true, Target: TargetBoth}.String())
	assert.Equal(t, "/tmp/x (dirs, recursive to depth 2)",
		Location{Path: "/tmp/x", Recursive: true, MaxDepth: 2, Target: TargetDirs}.String())
}

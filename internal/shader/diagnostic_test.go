package shader

import (
	"errors"
	"io"
	"io/fs"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnosticString(t *testing.T) {
	tests := []struct {
		d    Diagnostic
		want string
	}{
		{
			d:    Diagnostic{Kind: FileRead, Stage: Vertex, Path: "a.vert", Err: fs.ErrNotExist},
			want: `read: vertex "a.vert": file does not exist`,
		},
		{
			d:    Diagnostic{Kind: Compile, Stage: Fragment, Detail: "0:1(1): error: boom\n"},
			want: "compile: fragment: 0:1(1): error: boom",
		},
		{
			d:    Diagnostic{Kind: Link, Detail: "error: no main\n"},
			want: "link: error: no main",
		},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.d.String())
	}
}

func TestBuildError(t *testing.T) {
	err := &BuildError{Diagnostics: []Diagnostic{
		{Kind: FileRead, Stage: Vertex, Path: "a.vert", Err: fs.ErrPermission},
		{Kind: Link, Detail: "error: no main"},
	}}
	assert.Equal(t, `shader program: read: vertex "a.vert": permission denied; link: error: no main`, err.Error())
	assert.True(t, errors.Is(err, fs.ErrPermission))
	assert.False(t, errors.Is(err, fs.ErrNotExist))
}

func TestLinkDiagnosticHasNoStage(t *testing.T) {
	ctx := newFakeContext()
	p := Build(ctx, passthroughVertex, brokenFragment, WithLogger(log.New(io.Discard, "", 0)))

	diags := p.Diagnostics()
	require.Len(t, diags, 2)
	assert.Equal(t, Compile, diags[0].Kind)
	assert.Equal(t, Fragment, diags[0].Stage)
	assert.Equal(t, Link, diags[1].Kind)
	assert.Equal(t, NoStage, diags[1].Stage)
	for _, d := range diags {
		if d.Stage == Vertex {
			t.Errorf("unexpected vertex diagnostic: %s", d)
		}
	}
}

func TestStageAndKindNames(t *testing.T) {
	assert.Equal(t, "vertex", Vertex.String())
	assert.Equal(t, "fragment", Fragment.String())
	assert.Equal(t, "none", NoStage.String())
	assert.Equal(t, "unknown", Stage(7).String())
	assert.Equal(t, "compile", Compile.String())
	assert.Equal(t, "unknown", Kind(9).String())
}

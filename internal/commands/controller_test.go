package commands

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestController_projectDir(t *testing.T) {
	dir := t.TempDir()

	c := &Controller{Flags: &Flags{Project: dir}}
	got, err := c.projectDir()
	require.NoError(t, err)
	assert.Equal(t, dir, got)

	// Test: the working directory is the default
	c = &Controller{Flags: &Flags{}}
	got, err = c.projectDir()
	require.NoError(t, err)
	wd, _ := filepath.Abs(".")
	assert.Equal(t, wd, got)
}

func TestController_MissingProject(t *testing.T) {
	c := &Controller{Flags: &Flags{Project: filepath.Join(t.TempDir(), "missing")}}

	// Test: every command rejects a missing project directory
	assert.Error(t, c.MakeCrud(context.Background(), CrudOptions{Name: "Post"}))
	assert.Error(t, c.MakeYaml(context.Background(), YamlOptions{Name: "Post"}))
	assert.Error(t, c.Watch(context.Background(), CrudOptions{Name: "Post"}))
}

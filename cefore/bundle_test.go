package cefore_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/named-data/cefsim/cefore"
	"github.com/named-data/cefsim/core"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// makeTemplates writes a template directory whose files hold distinct contents.
func makeTemplates(t *testing.T, files ...string) cefore.Layout {
	root := t.TempDir()
	l := cefore.Layout{
		WorkDir:     filepath.Join(root, "work"),
		TemplateDir: filepath.Join(root, "CeforeDefaultConfigFile"),
	}
	require.NoError(t, os.MkdirAll(l.TemplateDir, 0755))
	for _, file := range files {
		content := []byte("template " + file + "\n\x00\x01binary\n")
		require.NoError(t, os.WriteFile(l.TemplatePath(file), content, 0644))
	}
	return l
}

func TestLayout(t *testing.T) {
	l := cefore.Layout{WorkDir: ".", TemplateDir: "./CeforeDefaultConfigFile"}
	assert.Equal(t, "files-3", l.NodeDir(3))
	assert.Equal(t, filepath.Join("files-3", "usr", "local", "cefore", "cefnetd.fib"), l.NodePath(3, cefore.CefnetdFib))
	assert.Equal(t, filepath.Join("CeforeDefaultConfigFile", "plugin.conf"), l.TemplatePath(cefore.PluginConf))
	assert.Equal(t, 8, len(cefore.BundleFiles))
}

func TestCopyConfigBundle(t *testing.T) {
	l := makeTemplates(t, cefore.BundleFiles...)

	written, err := cefore.CopyConfigBundle(l, 1)
	require.NoError(t, err)
	require.Equal(t, len(cefore.BundleFiles), len(written))

	for i, file := range cefore.BundleFiles {
		assert.Equal(t, l.NodePath(1, file), written[i])
		want, err := os.ReadFile(l.TemplatePath(file))
		require.NoError(t, err)
		got, err := os.ReadFile(l.NodePath(1, file))
		require.NoError(t, err)
		assert.Equal(t, want, got, file)
	}
}

func TestCopyConfigBundleTruncates(t *testing.T) {
	l := makeTemplates(t, cefore.BundleFiles...)
	require.NoError(t, os.MkdirAll(l.ConfigDir(2), 0755))
	long := make([]byte, 4096)
	require.NoError(t, os.WriteFile(l.NodePath(2, cefore.CsmgrdConf), long, 0644))

	_, err := cefore.CopyConfigBundle(l, 2)
	require.NoError(t, err)
	// running twice is harmless
	_, err = cefore.CopyConfigBundle(l, 2)
	require.NoError(t, err)

	want, _ := os.ReadFile(l.TemplatePath(cefore.CsmgrdConf))
	got, _ := os.ReadFile(l.NodePath(2, cefore.CsmgrdConf))
	assert.Equal(t, want, got)
}

func TestCopyConfigBundleStopsAtMissingTemplate(t *testing.T) {
	// csmgrd.conf, the third file, is missing
	l := makeTemplates(t, cefore.CefnetdConf, cefore.CefnetdFib, cefore.CcorePublicKey,
		cefore.DefaultPublicKey, cefore.CefnetdKey, cefore.DefaultPrivateKey, cefore.PluginConf)

	written, err := cefore.CopyConfigBundle(l, 1)
	assert.True(t, errors.Is(err, core.ErrMissingTemplateOrOutputPath))
	assert.Equal(t, []string{l.NodePath(1, cefore.CefnetdConf), l.NodePath(1, cefore.CefnetdFib)}, written)

	for _, file := range cefore.BundleFiles[:2] {
		assert.FileExists(t, l.NodePath(1, file))
	}
	for _, file := range cefore.BundleFiles[2:] {
		_, err := os.Stat(l.NodePath(1, file))
		assert.True(t, os.IsNotExist(err), file)
	}
}

func TestCopyConfigBundleInvalidNode(t *testing.T) {
	l := makeTemplates(t, cefore.BundleFiles...)
	_, err := cefore.CopyConfigBundle(l, -1)
	assert.True(t, errors.Is(err, core.ErrMissingTemplateOrOutputPath))
}

func TestCopyConfigBundleUnwritableOutput(t *testing.T) {
	l := makeTemplates(t, cefore.BundleFiles...)
	// a regular file where the node directory should be
	require.NoError(t, os.MkdirAll(l.WorkDir, 0755))
	require.NoError(t, os.WriteFile(l.NodeDir(4), []byte("x"), 0644))

	_, err := cefore.CopyConfigBundle(l, 4)
	assert.True(t, errors.Is(err, core.ErrMissingTemplateOrOutputPath))
}

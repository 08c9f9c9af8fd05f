package vpn_test

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"switch-openvpn/internal/vpn"
)

func TestListProfiles(t *testing.T) {
	fsys := fstest.MapFS{
		"alpha.conf":      {Data: []byte("client\n")},
		"beta.conf":       {Data: []byte("client\n")},
		"notes.txt":       {Data: []byte("todo\n")},
		"gamma.conf.bak":  {Data: []byte("client\n")},
		"update-resolv":   {Data: []byte("#!/bin/sh\n")},
		"keys/delta.conf": {Data: []byte("client\n")},
	}

	profiles, err := vpn.ListProfiles(fsys)

	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "beta"}, profiles)
}

func TestListProfilesIsStable(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"beta.conf", "alpha.conf", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("client\n"), 0o600))
	}
	fsys := os.DirFS(dir)

	first, err := vpn.ListProfiles(fsys)
	require.NoError(t, err)
	second, err := vpn.ListProfiles(fsys)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"alpha", "beta"}, first)
	assert.Equal(t, first, second)
}

func TestListProfilesEmptyDirectory(t *testing.T) {
	profiles, err := vpn.ListProfiles(os.DirFS(t.TempDir()))

	require.NoError(t, err)
	assert.Empty(t, profiles)
}

func TestListProfilesMissingDirectory(t *testing.T) {
	_, err := vpn.ListProfiles(os.DirFS(filepath.Join(t.TempDir(), "missing")))

	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

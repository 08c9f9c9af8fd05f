package vpn

import (
	"fmt"
	"io/fs"
	"strings"
)

const ProfileSuffix = ".conf"

// ListProfiles returns the name of every entry in the root of fsys ending in
// .conf, with the suffix removed, in directory listing order.
func ListProfiles(fsys fs.FS) ([]string, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to read profile directory: %w", err)
	}

	profiles := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasSuffix(name, ProfileSuffix) {
			continue
		}
		profiles = append(profiles, strings.TrimSuffix(name, ProfileSuffix))
	}
	return profiles, nil
}

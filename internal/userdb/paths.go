package userdb

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"

	"github.com/techhome/techhome/internal/config"
)

// HashUsername returns the hex SHA-256 digest of a username. The digest
// is the lookup key for credential records and the stem of per-user data
// filenames; the plaintext username never reaches the filesystem.
func HashUsername(username string) string {
	sum := sha256.Sum256([]byte(username))
	return hex.EncodeToString(sum[:])
}

// SharedDBPath returns the path of the shared users database.
func SharedDBPath(dataDir string) string {
	return filepath.Join(dataDir, config.UsersDatabaseFile)
}

// UserDBPath maps a username to its database file. The filename embeds
// the SHA-256 digest of the username, so crafted usernames cannot escape
// dataDir. Installations that predate the hashing scheme used the literal
// username in the filename; when such a file already exists it keeps
// being used.
func UserDBPath(dataDir, username string) string {
	if isBareFilename(username) {
		legacy := filepath.Join(dataDir, config.UserDataFilePrefix+username+config.UserDataFileExt)
		if fileExists(legacy) {
			return legacy
		}
	}
	return filepath.Join(dataDir, config.UserDataFilePrefix+HashUsername(username)+config.UserDataFileExt)
}

// isBareFilename reports whether the username can be embedded in a
// filename without changing which directory the path points at.
func isBareFilename(username string) bool {
	if username == "" || username == "." || username == ".." {
		return false
	}
	if strings.ContainsAny(username, `/\`) {
		return false
	}
	return username == filepath.Base(username)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

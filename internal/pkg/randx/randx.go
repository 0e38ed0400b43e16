/*
Package randx provides functions for generating unique identifiers.

It covers UUID identifiers for entities created at runtime (consultations,
messages, programs, posts) and object storage keys for uploaded images.
*/
package randx

import (
	"fmt"
	"path"
	"strings"

	"github.com/google/uuid"
)

// ID generates a standard UUID v4 string to serve as a unique entity identifier.
func ID() string {
	return uuid.New().String()
}

// ImageKey builds an object storage key for a draft image, scoped under the
// owning user's id so download presigning can verify ownership by prefix.
func ImageKey(userID, fileName string) string {
	ext := strings.ToLower(path.Ext(fileName))
	return fmt.Sprintf("drafts/%s/%s%s", userID, uuid.New().String(), ext)
}

// OwnsImageKey reports whether the given object key belongs to the user's draft prefix.
func OwnsImageKey(userID, key string) bool {
	return strings.HasPrefix(key, fmt.Sprintf("drafts/%s/", userID))
}

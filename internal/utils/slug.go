package utils

import (
	"strings"

	"github.com/gosimple/slug"
	"k8s.io/apimachinery/pkg/util/rand"
)

func init() {
	slug.MaxLength = 180
}

// Slugify produces a URL slug with Turkish transliteration (ı -> i, ş -> s, ğ -> g ...)
func Slugify(s string) string {
	return slug.MakeLang(strings.TrimSpace(s), "tr")
}

// IsSlug reports whether s is already a valid slug
func IsSlug(s string) bool {
	return slug.IsSlug(s)
}

// SlugWithSuffix appends a random 5 character suffix, used after a collision
func SlugWithSuffix(base string) string {
	return base + "-" + rand.String(5)
}

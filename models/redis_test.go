package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCacheKeyUsesPrefix(t *testing.T) {
	prev := cachePrefix
	defer func() { cachePrefix = prev }()

	assert.Equal(t, "resto-admin:menu_items_p1_l10", CacheKey("menu_items_p1_l10"))

	cachePrefix = "staging:"
	assert.Equal(t, "staging:menu_items_p1_l10", CacheKey("menu_items_p1_l10"))
}

package slug_test

import (
	"testing"

	"nupo-consult/internal/shared/slug"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	assert.Equal(t, "building-structural-design", slug.Make("", "Building Structural Design"))
	assert.Equal(t, "bridge-design-and-analysis", slug.Make("", "Bridge Design & Analysis"))
	assert.Equal(t, "custom-slug", slug.Make("Custom Slug", "ignored"))
	assert.True(t, slug.IsValid("road-construction"))
	assert.False(t, slug.IsValid("Road Construction"))
}

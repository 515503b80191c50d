package route

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMethodOf(t *testing.T) {
	assert.Equal(t, MethodGet, MethodOf("GET"))
	assert.Equal(t, MethodTrace, MethodOf("TRACE"))
	assert.Equal(t, Method{other: "get"}, MethodOf("get"))
	assert.Equal(t, Method{other: "PURGE"}, MethodOf("PURGE"))
}

func TestMethodEqual(t *testing.T) {
	assert.True(t, MethodGet.equal(MethodOf("GET")))
	assert.False(t, MethodGet.equal(MethodPost))

	// Named verbs match by tag only; a lowercase spelling is a tagged method.
	assert.False(t, MethodGet.equal(MethodOf("get")))

	assert.True(t, MethodOf("purge").equal(MethodOf("PuRgE")))
	assert.False(t, MethodOf("purge").equal(MethodOf("purgex")))
}

func TestMethodString(t *testing.T) {
	assert.Equal(t, "DELETE", MethodDelete.String())
	assert.Equal(t, "purge", MethodOf("purge").String())
}

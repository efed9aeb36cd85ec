package plural

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlural(t *testing.T) {
	assert.Equal(t, "s", Slice([]string{}, "s"))
	assert.Equal(t, "", Slice([]string{"a"}, "s"))
	assert.Equal(t, "es", Int(int64(2), "es"))
	assert.Equal(t, "", Int(uint64(1), "s"))
}

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNonEmptyStringPtr(t *testing.T) {
	assert.Nil(t, NonEmptyStringPtr(""))
	assert.Nil(t, NonEmptyStringPtr("   "))
	assert.Equal(t, "abc", *NonEmptyStringPtr(" abc "))
}

func TestFirstNonEmpty(t *testing.T) {
	empty := ""
	a := "a"
	b := "b"

	assert.Equal(t, &a, FirstNonEmpty(nil, &empty, &a, &b))
	assert.Nil(t, FirstNonEmpty(nil, &empty))
	assert.Nil(t, FirstNonEmpty())
}

func TestSafeString(t *testing.T) {
	assert.Equal(t, "", SafeString(nil))
	assert.Equal(t, "x", SafeString(StringPtr("x")))
}

func TestParseInt64Ptr(t *testing.T) {
	assert.Nil(t, ParseInt64Ptr(""))
	assert.Nil(t, ParseInt64Ptr("1.5"))
	assert.Equal(t, int64(42), *ParseInt64Ptr("42"))
}

package providers

import (
	"context"
	"errors"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedactKey(t *testing.T) {
	in := &url.Error{
		Op:  "Get",
		URL: "https://api.example.com/search?key=s%2Fcr+t&q=Goa",
		Err: context.DeadlineExceeded,
	}
	err := RedactKey(in, "s/cr t")
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "s%2Fcr+t")
	assert.Contains(t, err.Error(), "key=REDACTED&q=Goa")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestRedactKeyPassesThrough(t *testing.T) {
	plain := errors.New("decode error")
	assert.Same(t, plain, RedactKey(plain, "k"))
	assert.NoError(t, RedactKey(nil, "k"))

	in := &url.Error{Op: "Get", URL: "https://x?key=abc", Err: context.Canceled}
	assert.Equal(t, in, RedactKey(in, ""))
}

package initdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataCheckStringIgnoresOrder(t *testing.T) {
	pairs := [][2]string{
		{"query_id", "AAH"},
		{"auth_date", "1700000000"},
		{"user", `{"id":1}`},
		{"start_param", "retro_sprint12"},
	}
	perms := [][]int{{0, 1, 2, 3}, {3, 2, 1, 0}, {1, 3, 0, 2}, {2, 0, 3, 1}}

	var first string
	for i, p := range perms {
		f := Fields{}
		for _, idx := range p {
			f[pairs[idx][0]] = pairs[idx][1]
		}
		got := f.DataCheckString()
		if i == 0 {
			first = got
			continue
		}
		assert.Equal(t, first, got)
	}
	assert.Equal(t, "auth_date=1700000000\nquery_id=AAH\nstart_param=retro_sprint12\nuser={\"id\":1}", first)
}

func TestCanonicalize(t *testing.T) {
	msgA, hashA, _, err := Canonicalize("b=2&hash=abc&a=1")
	require.NoError(t, err)
	msgB, hashB, _, err := Canonicalize("a=1&b=2&hash=abc")
	require.NoError(t, err)

	assert.Equal(t, "a=1\nb=2", msgA)
	assert.Equal(t, msgA, msgB)
	assert.Equal(t, "abc", hashA)
	assert.Equal(t, hashA, hashB)
}

func TestCanonicalizeEdgeCases(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		msg     string
		hash    string
		wantErr error
	}{
		{name: "missing hash", raw: "a=1&b=2", wantErr: ErrMissingHash},
		{name: "empty hash", raw: "a=1&hash=", wantErr: ErrMissingHash},
		{name: "only hash", raw: "hash=ff", msg: "", hash: "ff"},
		{name: "last duplicate wins", raw: "a=1&a=2&hash=ff", msg: "a=2", hash: "ff"},
		{name: "whole string encoded", raw: "a%3D1%26hash%3Dff", msg: "a=1", hash: "ff"},
		{name: "component decoding", raw: "user=%7B%22id%22%3A1%7D&hash=ff", msg: `user={"id":1}`, hash: "ff"},
		{name: "plus is space", raw: "a=x+y&hash=ff", msg: "a=x y", hash: "ff"},
		{name: "key without value", raw: "flag&hash=ff", msg: "flag=", hash: "ff"},
		{name: "empty segments skipped", raw: "&&a=1&&hash=ff&", msg: "a=1", hash: "ff"},
		{name: "bad escape kept raw", raw: "a=100%&hash=ff", msg: "a=100%", hash: "ff"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, hash, fields, err := Canonicalize(tt.raw)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.msg, msg)
			assert.Equal(t, tt.hash, hash)
			assert.NotContains(t, fields, "hash")
		})
	}
}

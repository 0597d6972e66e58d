package revision

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNext(t *testing.T) {
	cases := []struct {
		current string
		kind    Kind
		want    string
	}{
		{"1.0", Minor, "1.1"},
		{"1.0", Major, "2.0"},
		{"1.9", Minor, "1.10"},
		{"3.4", Major, "4.0"},
		{"Rev A", Minor, "Rev A.1"},
		{"Rev A", Major, "Rev B"},
		{"Rev A.3", Minor, "Rev A.1"},
		{"Rev C.2", Major, "Rev D"},
		{"rev b", Major, "Rev C"},
		{"REV Z", Major, "Rev AA"},
		{"Rev AZ", Major, "Rev BA"},
		{"Rev", Minor, "Rev A.1"},
		{"Rev 7", Major, "Rev B"},
		{"garbage", Minor, "1.1"},
		{"garbage", Major, "2.0"},
		{"Reviewed", Minor, "1.1"},
		{"Reviewed", Major, "2.0"},
		{"Revamp", Minor, "1.1"},
		{"Revamp", Major, "2.0"},
		{"Rev\tC", Major, "Rev D"},
		{"", Minor, "1.1"},
		{"1.2.3", Major, "2.0"},
		{"4.x", Minor, "4.1"},
		{"x.4", Minor, "1.5"},
		{"-2.1", Major, "2.0"},
	}

	for _, tc := range cases {
		t.Run(tc.current+"/"+string(tc.kind), func(t *testing.T) {
			assert.Equal(t, tc.want, Next(tc.current, tc.kind))
		})
	}
}

func TestNext_PreservesFamily(t *testing.T) {
	rev := "Rev A"
	for i := 0; i < 30; i++ {
		rev = Next(rev, Major)
		assert.Regexp(t, `^Rev [A-Z]+$`, rev)
	}
	assert.Equal(t, "Rev AE", rev)

	dotted := "1.0"
	for i := 0; i < 5; i++ {
		dotted = Next(dotted, Minor)
	}
	assert.Equal(t, "1.5", dotted)
	assert.Equal(t, "2.0", Next(dotted, Major))
}

func TestParseKind(t *testing.T) {
	assert.Equal(t, Major, ParseKind(" MAJOR "))
	assert.Equal(t, Minor, ParseKind("minor"))
	assert.Equal(t, Minor, ParseKind(""))
}

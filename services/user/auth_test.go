package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerifyPasswordComplexity(t *testing.T) {
	cases := []struct {
		name     string
		password string
		ok       bool
	}{
		{"valid", "Str0ng#pass", true},
		{"too short", "S7#a", false},
		{"no uppercase", "str0ng#pass", false},
		{"no lowercase", "STR0NG#PASS", false},
		{"no digit", "Strong#pass", false},
		{"no symbol", "Str0ngpass1", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := verifyPasswordComplexity(tc.password)
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

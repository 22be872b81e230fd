package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidAddress(t *testing.T) {
	tests := []struct {
		name string
		addr string
		want bool
	}{
		{name: "simple address", addr: "a@b.com", want: true},
		{name: "domain without dot", addr: "user@localhost", want: true},
		{name: "plus addressing", addr: "user+tag@example.com", want: true},
		{name: "no at sign", addr: "not-an-email", want: false},
		{name: "empty string", addr: "", want: false},
		{name: "empty local part", addr: "@example.com", want: false},
		{name: "empty domain", addr: "user@", want: false},
		{name: "only at sign", addr: "@", want: false},
		{name: "two at signs", addr: "a@b@c.com", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidAddress(tt.addr))
		})
	}
}

package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type emailFixture struct {
	Email string `validate:"required,checkout_email"`
}

func TestCheckoutEmailRule(t *testing.T) {
	v := NewValidator()

	valid := []string{"a@b.com", "user.name@sub.example.org", "x+tag@y.co"}
	for _, email := range valid {
		assert.NoError(t, v.Struct(emailFixture{Email: email}), email)
	}

	invalid := []string{"", "plain", "a@b", "@b.com", "a@.", "a b@c.com", "a@b .com"}
	for _, email := range invalid {
		assert.Error(t, v.Struct(emailFixture{Email: email}), email)
	}
}

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCategory(t *testing.T) {
	testCases := []struct {
		code         string
		expectedName string
	}{
		{code: "electronics", expectedName: "Electronics"},
		{code: "men's clothing", expectedName: "Men's clothing"},
		{code: "Jewelery", expectedName: "Jewelery"},
		{code: "", expectedName: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.code, func(t *testing.T) {
			c := NewCategory(tc.code)
			assert.Equal(t, tc.code, c.Code)
			assert.Equal(t, tc.expectedName, c.Name)
		})
	}
}

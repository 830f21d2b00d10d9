package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestCurrentUser(t *testing.T) {
	t.Run("defaults when unset", func(t *testing.T) {
		viper.Reset()
		user := CurrentUser()
		assert.Equal(t, "Shubham Khatri", user.Name)
		assert.Equal(t, "SK", user.Initials)
	})

	t.Run("configured name derives initials", func(t *testing.T) {
		viper.Reset()
		viper.Set("user.name", "Priya Sharma")
		user := CurrentUser()
		assert.Equal(t, "Priya Sharma", user.Name)
		assert.Equal(t, "PS", user.Initials)
	})

	t.Run("explicit initials win", func(t *testing.T) {
		viper.Reset()
		viper.Set("user.name", "Priya Sharma")
		viper.Set("user.avatar_initials", "PX")
		assert.Equal(t, "PX", CurrentUser().Initials)
	})
}

func TestDeriveInitials(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "two names", in: "Rahul Verma", want: "RV"},
		{name: "single name", in: "Rahul", want: "R"},
		{name: "three names uses first two", in: "A B C", want: "AB"},
		{name: "empty", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, deriveInitials(tt.in))
		})
	}
}

func TestImportCategory(t *testing.T) {
	viper.Reset()
	assert.Equal(t, "Other", ImportCategory())

	viper.Set("import.category", "Shopping")
	assert.Equal(t, "Shopping", ImportCategory())
}

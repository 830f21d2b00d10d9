// Package config provides configuration utilities for the application.
package config

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/Shubham-Khatrii/budgetwise/internal/model"
)

// Defaults applied when neither the config file nor environment set a value.
const (
	defaultUserName       = "Shubham Khatri"
	defaultImportCategory = "Other"
)

// CurrentUser loads the identity posts are attributed to. It follows this
// precedence: viper configuration (config file or BUDGETWISE_ env vars),
// then defaults.
func CurrentUser() model.Author {
	name := viper.GetString("user.name")
	if name == "" {
		name = defaultUserName
	}

	initials := viper.GetString("user.avatar_initials")
	if initials == "" {
		initials = deriveInitials(name)
	}

	return model.Author{
		Name:     name,
		Avatar:   viper.GetString("user.avatar"),
		Initials: initials,
	}
}

// ImportCategory returns the expense category assigned to statement imports
// when no --category flag is given.
func ImportCategory() string {
	if v := viper.GetString("import.category"); v != "" {
		return v
	}
	return defaultImportCategory
}

// deriveInitials builds avatar initials from the first letters of up to two
// name parts.
func deriveInitials(name string) string {
	parts := strings.Fields(name)
	if len(parts) == 0 {
		return ""
	}

	var b strings.Builder
	for i, part := range parts {
		if i == 2 {
			break
		}
		b.WriteString(strings.ToUpper(part[:1]))
	}
	return b.String()
}

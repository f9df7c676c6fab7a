package app

import (
	"errors"
	"strings"
)

// Fallback messages for failures that carry no text.
const (
	msgLoadFailed   = "failed to load projects"
	msgDeleteFailed = "failed to delete project"
	msgOpenFailed   = "failed to open project folder"
	msgCreateFailed = "failed to create project"
)

// Validation errors of the creation form, in check order.
var (
	errNameRequired = errors.New("project name is required")
	errPathRequired = errors.New("project path is required")
)

// userMessage converts err into the text shown to the user.
func userMessage(err error, fallback string) string {
	if err == nil {
		return ""
	}
	if msg := strings.TrimSpace(err.Error()); msg != "" {
		return msg
	}
	return fallback
}

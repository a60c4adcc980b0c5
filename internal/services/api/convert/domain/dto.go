// Package domain defines the convert endpoint's request and response types
package domain

import (
	"bbcenglish/internal/core/rewrite"
	fixer "bbcenglish/internal/services/fixer/domain"
)

// DefaultPath labels changes when the request names no file
const DefaultPath = "input"

// ConvertRequest is the POST /convert body
type ConvertRequest struct {
	Text string `json:"text" validate:"required"`
	Path string `json:"path,omitempty" validate:"omitempty,max=512"`
}

// ConvertResponse is the rewritten document and what changed
type ConvertResponse struct {
	Text    string           `json:"text"`
	Changed bool             `json:"changed"`
	Changes []rewrite.Change `json:"changes"`
	Report  []string         `json:"report"`
}

// ConverterPort is the fixer port the endpoint runs on
type ConverterPort = fixer.ConverterPort

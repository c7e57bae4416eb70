package server

import (
	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/notify"
	"github.com/goliatone/go-formbuilder/pkg/validation"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type PaletteEntry struct {
	Type  model.FieldType `json:"type"`
	Label string          `json:"label"`
}

type DropRequest struct {
	Type string `json:"type" binding:"required"`
}

type EditRequest struct {
	Label       string `json:"label"`
	Placeholder string `json:"placeholder"`
	Required    bool   `json:"required"`
	Options     string `json:"options"`
}

type ClearRequest struct {
	Confirm bool `json:"confirm"`
}

type EventResponse struct {
	OK     bool           `json:"ok"`
	Notice *notify.Notice `json:"notice,omitempty"`
}

type SubmitResponse struct {
	Result validation.Result `json:"result"`
	Notice *notify.Notice    `json:"notice,omitempty"`
}

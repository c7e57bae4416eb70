package model

import internalmodel "github.com/goliatone/go-formbuilder/internal/model"

// FieldType re-exports the internal FieldType enumeration.
type FieldType = internalmodel.FieldType

const (
	FieldTypeText     = internalmodel.FieldTypeText
	FieldTypeEmail    = internalmodel.FieldTypeEmail
	FieldTypePassword = internalmodel.FieldTypePassword
	FieldTypeNumber   = internalmodel.FieldTypeNumber
	FieldTypeTextarea = internalmodel.FieldTypeTextarea
	FieldTypeRadio    = internalmodel.FieldTypeRadio
	FieldTypeCheckbox = internalmodel.FieldTypeCheckbox
	FieldTypeSelect   = internalmodel.FieldTypeSelect
	FieldTypeDate     = internalmodel.FieldTypeDate
	FieldTypeFile     = internalmodel.FieldTypeFile
	FieldTypeSubmit   = internalmodel.FieldTypeSubmit
)

const (
	FallbackLabel      = internalmodel.FallbackLabel
	DefaultPlaceholder = internalmodel.DefaultPlaceholder
)

var (
	ErrUnknownFieldType = internalmodel.ErrUnknownFieldType
	ErrFieldNotFound    = internalmodel.ErrFieldNotFound
	ErrDuplicateField   = internalmodel.ErrDuplicateField
)

type Field = internalmodel.Field
type Document = internalmodel.Document
type Patch = internalmodel.Patch
type Model = internalmodel.Model

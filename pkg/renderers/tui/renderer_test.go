package tui

import (
	"context"
	"errors"
	"net/url"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/render"
	"github.com/goliatone/go-formbuilder/pkg/validation"
)

type stubDriver struct {
	inputs       []string
	selectIdx    []int
	multiIdx     [][]int
	textAreas    []string
	passwords    []string
	infoMessages []string
	messages     []string
	selectCfgs   []SelectConfig
	inputPos     int
	selectPos    int
	multiPos     int
	textPos      int
	passPos      int
	failWith     error
}

func (s *stubDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	if s.failWith != nil {
		return "", s.failWith
	}
	s.messages = append(s.messages, cfg.Message)
	if s.inputPos >= len(s.inputs) {
		return "", errors.New("no input scripted")
	}
	val := s.inputs[s.inputPos]
	s.inputPos++
	if cfg.Validator != nil {
		if err := cfg.Validator(val); err != nil {
			return "", err
		}
	}
	return val, nil
}

func (s *stubDriver) Password(_ context.Context, cfg InputConfig) (string, error) {
	s.messages = append(s.messages, cfg.Message)
	if s.passPos >= len(s.passwords) {
		return "", errors.New("no password scripted")
	}
	val := s.passwords[s.passPos]
	s.passPos++
	return val, nil
}

func (s *stubDriver) Confirm(_ context.Context, _ ConfirmConfig) (bool, error) {
	return false, errors.New("no confirm scripted")
}

func (s *stubDriver) Select(_ context.Context, cfg SelectConfig) (int, error) {
	s.messages = append(s.messages, cfg.Message)
	s.selectCfgs = append(s.selectCfgs, cfg)
	if s.selectPos >= len(s.selectIdx) {
		return -1, errors.New("no select scripted")
	}
	val := s.selectIdx[s.selectPos]
	s.selectPos++
	return val, nil
}

func (s *stubDriver) MultiSelect(_ context.Context, cfg SelectConfig) ([]int, error) {
	s.messages = append(s.messages, cfg.Message)
	if s.multiPos >= len(s.multiIdx) {
		return nil, errors.New("no multiselect scripted")
	}
	val := s.multiIdx[s.multiPos]
	s.multiPos++
	return val, nil
}

func (s *stubDriver) TextArea(_ context.Context, cfg TextAreaConfig) (string, error) {
	s.messages = append(s.messages, cfg.Message)
	if s.textPos >= len(s.textAreas) {
		return "", errors.New("no textarea scripted")
	}
	val := s.textAreas[s.textPos]
	s.textPos++
	return val, nil
}

func (s *stubDriver) Info(_ context.Context, msg string) error {
	s.infoMessages = append(s.infoMessages, msg)
	return nil
}

func paletteDocument() model.Document {
	var doc model.Document
	for i, t := range model.FieldTypes() {
		doc = append(doc, model.NewField(string(t), i))
	}
	return doc
}

func TestFill_PromptsEveryControlInOrder(t *testing.T) {
	driver := &stubDriver{
		inputs:    []string{"Ada", "ada@example.com", "42", "2024-01-02", "cv.pdf"},
		passwords: []string{"secret"},
		textAreas: []string{"line one\nline two"},
		selectIdx: []int{1, 3},
		multiIdx:  [][]int{{0, 2}},
	}
	r := New(WithPromptDriver(driver))

	values, err := r.Fill(context.Background(), paletteDocument())
	if err != nil {
		t.Fatalf("fill: %v", err)
	}

	want := url.Values{
		"field_0": {"Ada"},
		"field_1": {"ada@example.com"},
		"field_2": {"secret"},
		"field_3": {"42"},
		"field_4": {"line one\nline two"},
		"field_5": {"Option 2"},
		"field_6": {"Option 1", "Option 3"},
		"field_7": {"Option 3"},
		"field_8": {"2024-01-02"},
		"field_9": {"cv.pdf"},
	}
	if diff := cmp.Diff(want, values); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}

	wantMessages := []string{
		"Text Input", "Email Address", "Password", "Number", "Text Area",
		"Radio Buttons", "Checkboxes", "Dropdown", "Date", "File Upload",
	}
	if diff := cmp.Diff(wantMessages, driver.messages); diff != "" {
		t.Fatalf("prompt order mismatch (-want +got):\n%s", diff)
	}
}

func TestFill_SelectPromptAndOptionalRadioLeaveValueEmpty(t *testing.T) {
	doc := model.Document{
		model.NewField("radio", 0),
		model.NewField("select", 1),
	}
	driver := &stubDriver{selectIdx: []int{3, 0}}
	r := New(WithPromptDriver(driver))

	values, err := r.Fill(context.Background(), doc)
	if err != nil {
		t.Fatalf("fill: %v", err)
	}
	if len(values) != 0 {
		t.Fatalf("expected no values, got %v", values)
	}

	radioChoices := driver.selectCfgs[0].Options
	if radioChoices[len(radioChoices)-1] != NoneChoice {
		t.Fatalf("optional radio should offer %q, got %v", NoneChoice, radioChoices)
	}
	if got := driver.selectCfgs[1].Options[0]; got != "Select an option" {
		t.Fatalf("dropdown prompt = %q", got)
	}
}

func TestFill_RequiredRadioOffersNoNone(t *testing.T) {
	field := model.NewField("radio", 0)
	field.Required = true
	driver := &stubDriver{selectIdx: []int{0}}
	r := New(WithPromptDriver(driver))

	if _, err := r.Fill(context.Background(), model.Document{field}); err != nil {
		t.Fatalf("fill: %v", err)
	}
	if diff := cmp.Diff(field.Options, driver.selectCfgs[0].Options); diff != "" {
		t.Fatalf("choices mismatch (-want +got):\n%s", diff)
	}
	if driver.messages[0] != "Radio Buttons *" {
		t.Fatalf("required label = %q", driver.messages[0])
	}
}

func TestCollect_RepromptsEmptyRequiredFields(t *testing.T) {
	name := model.NewField("text", 0)
	name.Required = true
	note := model.NewField("text", 1)
	driver := &stubDriver{inputs: []string{"", "", "Ada"}}
	r := New(WithPromptDriver(driver), WithTheme(Theme{ErrorPrefix: "! "}))

	values, err := r.Collect(context.Background(), model.Document{name, note})
	if err != nil {
		t.Fatalf("collect: %v", err)
	}
	if got := values.Get("field_0"); got != "Ada" {
		t.Fatalf("field_0 = %q", got)
	}
	if diff := cmp.Diff([]string{"! " + MsgFillRequired}, driver.infoMessages); diff != "" {
		t.Fatalf("info mismatch (-want +got):\n%s", diff)
	}
	if driver.inputPos != 3 {
		t.Fatalf("expected only the required field to be prompted again, inputs used %d", driver.inputPos)
	}
}

func TestCollect_GivesUpAfterMaxAttempts(t *testing.T) {
	field := model.NewField("textarea", 0)
	field.Required = true
	driver := &stubDriver{textAreas: []string{"", ""}}
	r := New(WithPromptDriver(driver), WithMaxAttempts(2))

	values, err := r.Collect(context.Background(), model.Document{field})
	if !errors.Is(err, validation.ErrValidationFailed) {
		t.Fatalf("expected ErrValidationFailed, got %v", err)
	}
	if values.Get("field_0") != "" {
		t.Fatalf("expected empty value, got %v", values)
	}
	if len(driver.infoMessages) != 1 {
		t.Fatalf("expected one retry message, got %v", driver.infoMessages)
	}
}

func TestCollect_CheckboxRequiredIsNotEnforced(t *testing.T) {
	field := model.NewField("checkbox", 0)
	field.Required = true
	driver := &stubDriver{multiIdx: [][]int{{}}}
	r := New(WithPromptDriver(driver))

	if _, err := r.Collect(context.Background(), model.Document{field}); err != nil {
		t.Fatalf("collect: %v", err)
	}
}

func TestRender_OutputFormats(t *testing.T) {
	doc := model.Document{
		model.NewField("text", 0),
		model.NewField("checkbox", 1),
		model.NewField("submit", 2),
	}
	opts := render.RenderOptions{}.WithHidden(render.CSRFToken("_csrf", "tok"))

	tests := []struct {
		name        string
		format      OutputFormat
		contentType string
		want        string
	}{
		{
			name:        "json",
			format:      OutputFormatJSON,
			contentType: "application/json",
			want:        `{"_csrf":"tok","field_0":"Ada","field_1":[]}`,
		},
		{
			name:        "form",
			format:      OutputFormatFormURLEncoded,
			contentType: "application/x-www-form-urlencoded",
			want:        "_csrf=tok&field_0=Ada",
		},
		{
			name:        "pretty",
			format:      OutputFormatPrettyText,
			contentType: "text/plain; charset=utf-8",
			want:        "Text Input: Ada\nCheckboxes: \n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			driver := &stubDriver{inputs: []string{"Ada"}, multiIdx: [][]int{nil}}
			r := New(WithPromptDriver(driver), WithOutputFormat(tt.format))

			out, err := r.Render(context.Background(), doc, opts)
			if err != nil {
				t.Fatalf("render: %v", err)
			}
			if got := r.ContentType(); got != tt.contentType {
				t.Fatalf("content type = %q", got)
			}
			if diff := cmp.Diff(tt.want, string(out)); diff != "" {
				t.Fatalf("output mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFill_PrefillSeedsDefaults(t *testing.T) {
	doc := model.Document{model.NewField("select", 0)}
	driver := &stubDriver{selectIdx: []int{2}}
	r := New(WithPromptDriver(driver), WithPrefill(url.Values{"field_0": {"Option 2"}}))

	values, err := r.Fill(context.Background(), doc)
	if err != nil {
		t.Fatalf("fill: %v", err)
	}
	if got := driver.selectCfgs[0].DefaultIndex; got != 2 {
		t.Fatalf("default index = %d, want 2", got)
	}
	if got := values.Get("field_0"); got != "Option 2" {
		t.Fatalf("field_0 = %q", got)
	}
}

func TestFill_AbortPropagates(t *testing.T) {
	driver := &stubDriver{failWith: ErrAborted}
	r := New(WithPromptDriver(driver))

	_, err := r.Fill(context.Background(), model.Document{model.NewField("email", 0)})
	if !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
}

func TestRenderer_Name(t *testing.T) {
	if got := New().Name(); got != Name {
		t.Fatalf("name = %q", got)
	}
}

package server

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/goliatone/go-formbuilder/pkg/delivery"
	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/notify"
)

const htmlContentType = "text/html; charset=utf-8"

// Preview serves the standalone page for the current form.
func (s *Server) Preview(c *gin.Context) {
	page, err := s.orch.Standalone(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.Data(http.StatusOK, htmlContentType, page)
}

// Canvas serves the interactive canvas fragment.
func (s *Server) Canvas(c *gin.Context) {
	fragment, err := s.orch.CanvasHTML(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.Data(http.StatusOK, htmlContentType, fragment)
}

func (s *Server) Palette(c *gin.Context) {
	types := model.FieldTypes()
	out := make([]PaletteEntry, 0, len(types))
	for _, t := range types {
		out = append(out, PaletteEntry{Type: t, Label: model.DefaultLabel(t)})
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) Fields(c *gin.Context) {
	c.JSON(http.StatusOK, s.orch.Document())
}

// Drop appends a field for the posted type token.
func (s *Server) Drop(c *gin.Context) {
	var input DropRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	field, err := s.orch.Drop(c.Request.Context(), input.Type)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, field)
}

// Edit applies the patch and returns the updated field. A stale id is a
// no-op answered with ok=false.
func (s *Server) Edit(c *gin.Context) {
	id, ok := fieldID(c)
	if !ok {
		return
	}
	var input EditRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	updated, err := s.orch.Edit(c.Request.Context(), id, model.Patch{
		Label:       input.Label,
		Placeholder: input.Placeholder,
		Required:    input.Required,
		Options:     input.Options,
	})
	if err != nil {
		s.fail(c, err)
		return
	}
	if !updated {
		c.JSON(http.StatusOK, EventResponse{OK: false})
		return
	}
	field, _ := s.orch.Field(id)
	c.JSON(http.StatusOK, field)
}

func (s *Server) Delete(c *gin.Context) {
	id, ok := fieldID(c)
	if !ok {
		return
	}
	deleted, err := s.orch.Delete(c.Request.Context(), id)
	if err != nil {
		s.fail(c, err)
		return
	}
	if !deleted {
		c.JSON(http.StatusOK, EventResponse{OK: false})
		return
	}
	c.Status(http.StatusNoContent)
}

// Clear empties the form when the request body confirms it. The confirm flag
// stands in for the confirmation prompt.
func (s *Server) Clear(c *gin.Context) {
	var input ClearRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	cleared, err := s.orch.Clear(c.Request.Context(), notify.Answer(input.Confirm))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, EventResponse{OK: cleared})
}

func (s *Server) Save(c *gin.Context) {
	if err := s.orch.Save(c.Request.Context()); err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, EventResponse{OK: true, Notice: s.current()})
}

func (s *Server) Load(c *gin.Context) {
	loaded, err := s.orch.Load(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, EventResponse{OK: loaded, Notice: s.current()})
}

// Submit validates posted form values against the canvas. Missing required
// values answer 422 with the validation result.
func (s *Server) Submit(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	submission, err := s.orch.Submit(c.Request.Context(), c.Request.PostForm)
	if err != nil {
		s.fail(c, err)
		return
	}
	status := http.StatusOK
	if !submission.Result.Valid {
		status = http.StatusUnprocessableEntity
	}
	c.JSON(status, SubmitResponse{Result: submission.Result, Notice: s.current()})
}

// Notice reports the visible notice, or 204 when none is showing.
func (s *Server) Notice(c *gin.Context) {
	notice := s.current()
	if notice == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, notice)
}

func (s *Server) ExportJSON(c *gin.Context) {
	s.export(c, s.orch.ExportJSON)
}

func (s *Server) ExportYAML(c *gin.Context) {
	s.export(c, s.orch.ExportYAML)
}

func (s *Server) ExportHTML(c *gin.Context) {
	s.export(c, s.orch.ExportHTML)
}

func (s *Server) export(c *gin.Context, run func(context.Context, delivery.Sink) error) {
	if err := run(c.Request.Context(), delivery.ResponseSink{W: c.Writer}); err != nil {
		s.fail(c, err)
	}
}

func (s *Server) current() *notify.Notice {
	if s.notices == nil {
		return nil
	}
	notice, ok := s.notices.Current()
	if !ok {
		return nil
	}
	return &notice
}

func (s *Server) fail(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, context.Canceled) {
		status = 499
	}
	s.logger.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
	if c.Writer.Written() {
		return
	}
	c.JSON(status, ErrorResponse{Error: err.Error()})
}

func fieldID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid field id"})
		return 0, false
	}
	return id, true
}

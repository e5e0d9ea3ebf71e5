package domain

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrBranchNotFound is returned when a branch id cannot be found in a branch-set.
var ErrBranchNotFound = errors.New("branch not found")

// ErrCollapseUnsupported is returned when branch-set collapsing is requested
// over a source whose rupture surface is a multi-surface composite.
var ErrCollapseUnsupported = errors.New("collapsing of the logic tree is not implemented")

// ErrUnknownFilter is returned when a branch-set carries a filter key the
// engine does not recognise. Filters are never silently ignored.
var ErrUnknownFilter = errors.New("unknown filter")

// ErrUnknownSourceType is returned when an applyToSourceType filter names a
// source-type class outside the known hierarchy.
var ErrUnknownSourceType = errors.New("unknown source type")

// LogicTreeError reports a logic error in an uncertainty-model node, carrying
// enough context to point the user at the offending file location.
type LogicTreeError struct {
	// Line is the 1-based line number of the offending node, 0 when unknown.
	Line     int
	Filename string
	Message  string
}

// NewLogicTreeError builds a LogicTreeError from the offending node. A nil
// node, or a node without location information, renders its line as '?'.
func NewLogicTreeError(node *Node, filename, message string) *LogicTreeError {
	e := &LogicTreeError{Filename: filename, Message: message}
	if node != nil {
		e.Line = node.Line
	}
	return e
}

func (e *LogicTreeError) Error() string {
	line := "?"
	if e.Line > 0 {
		line = strconv.Itoa(e.Line)
	}
	return fmt.Sprintf("filename '%s', line %s: %s", e.Filename, line, e.Message)
}

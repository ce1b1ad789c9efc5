// seehuhn.de/go/canvas - a fluent 2D drawing surface
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package canvas

import (
	"errors"
	"fmt"
	"runtime/debug"
)

// ErrorCode identifies a class of failure.
type ErrorCode struct {
	Code int
	Key  string
	Msg  string
}

// Error codes reported by this package.
var (
	Undefined      = ErrorCode{Code: -1, Key: "undefined_error", Msg: "Undefined error"}
	NoRootElement  = ErrorCode{Code: 1000, Key: "no_root_element", Msg: "No root element found!"}
	InvalidStyle   = ErrorCode{Code: 1001, Key: "invalid_style", Msg: "Invalid style value"}
	DegeneratePath = ErrorCode{Code: 1002, Key: "degenerate_path", Msg: "Degenerate path"}
	HandlerPanic   = ErrorCode{Code: 1003, Key: "handler_panic", Msg: "Event handler panicked"}
)

// Error is a failure with a code from the table above and an optional
// detail string.
type Error struct {
	ErrorCode
	Detail string
	Err    error
}

// NewError returns an error for the given code.
func NewError(code ErrorCode, detail string) *Error {
	return &Error{ErrorCode: code, Detail: detail}
}

func (e *Error) Error() string {
	msg := e.Msg
	if msg == "" {
		msg = e.Key
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error with the same code, so that
// errors.Is(err, canvas.ErrNoRootElement) works for any detail string.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

// Sentinel values for use with errors.Is.
var (
	ErrUndefined      = &Error{ErrorCode: Undefined}
	ErrNoRootElement  = &Error{ErrorCode: NoRootElement}
	ErrInvalidStyle   = &Error{ErrorCode: InvalidStyle}
	ErrDegeneratePath = &Error{ErrorCode: DegeneratePath}
	ErrHandlerPanic   = &Error{ErrorCode: HandlerPanic}
)

// CodeOf returns the error code carried by err, or Undefined.
func CodeOf(err error) ErrorCode {
	var e *Error
	if errors.As(err, &e) {
		return e.ErrorCode
	}
	return Undefined
}

// PanicError describes a panic recovered from an event handler.
type PanicError struct {
	// Op names the event being dispatched, for example "mousedown".
	Op string
	// Value is the value passed to panic().
	Value any
	// Stack is the goroutine stack at the time of recovery.
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic in %s handler: %v", e.Op, e.Value)
}

// Unwrap returns the panic value if it is an error.
func (e *PanicError) Unwrap() error {
	err, _ := e.Value.(error)
	return err
}

func newPanicError(op string, value any) *Error {
	return &Error{
		ErrorCode: HandlerPanic,
		Detail:    op,
		Err:       &PanicError{Op: op, Value: value, Stack: debug.Stack()},
	}
}

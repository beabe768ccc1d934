// Package http provides helpers for writing JSON and problem responses
package http

import (
	"encoding/json"
	stdhttp "net/http"

	perr "peopledex/internal/platform/errors"
	"peopledex/internal/platform/logger"
)

// JSON writes v as application/json with the given status
func JSON(w stdhttp.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Text writes s as text/plain with the given status
func Text(w stdhttp.ResponseWriter, status int, s string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(s))
}

// RespondError maps a project error into a problem body and writes it
// internals of 5xx errors are logged, never sent to the client
func RespondError(w stdhttp.ResponseWriter, r *stdhttp.Request, err error) {
	status, problem := perr.HTTP(err)
	if status >= stdhttp.StatusInternalServerError {
		logger.C(r.Context()).Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
	}
	JSON(w, status, problem)
}

//
// Return-style helpers for early returns in handlers
//

// Response is a functional response object for return-style handlers
type Response struct {
	Status int
	Body   any
	// optional headers if a handler wants to add any
	Header stdhttp.Header
}

// textBody marks a Response body that must be written as text/plain
type textBody string

// Handle adapts a Response-returning handler to net/http
func Handle(h func(r *stdhttp.Request) Response) stdhttp.HandlerFunc {
	return func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		h(r).write(w, r)
	}
}

func (resp Response) write(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	status := resp.Status
	if status == 0 {
		status = stdhttp.StatusOK
	}
	// allow header overrides
	if resp.Header != nil {
		for k, vv := range resp.Header {
			for _, v := range vv {
				w.Header().Add(k, v)
			}
		}
	}
	if status == stdhttp.StatusNoContent {
		w.WriteHeader(stdhttp.StatusNoContent)
		return
	}

	// if Body is an error, derive status and a problem body from it
	if err, ok := resp.Body.(error); ok && err != nil {
		RespondError(w, r, err)
		return
	}

	if txt, ok := resp.Body.(textBody); ok {
		Text(w, status, string(txt))
		return
	}

	JSON(w, status, resp.Body)
}

// OK returns a 200 response
func OK(data any) Response { return Response{Status: stdhttp.StatusOK, Body: data} }

// CreatedAt returns a 201 response with a Location header
func CreatedAt(location string, data any) Response {
	h := stdhttp.Header{}
	h.Set("Location", location)
	return Response{Status: stdhttp.StatusCreated, Body: data, Header: h}
}

// NoContent returns a 204 response
func NoContent() Response { return Response{Status: stdhttp.StatusNoContent} }

// PlainText returns a 200 text/plain response
func PlainText(s string) Response {
	return Response{Status: stdhttp.StatusOK, Body: textBody(s)}
}

// Error returns a response that maps the error to status and problem body
func Error(err error) Response { return Response{Body: err} }

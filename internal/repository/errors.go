// Package repository contains the data access layer: hand-written SQL over
// database/sql.  Sentinel errors defined here let handlers translate
// failure scenarios into HTTP statuses without inspecting driver errors.
package repository

import "errors"

// ErrForbidden is returned when the caller attempts an operation on a
// resource they do not own.  Handlers translate it into HTTP 403.
var ErrForbidden = errors.New("forbidden")

// ErrConflict is returned when an operation cannot proceed because of
// dependent state, such as deleting a session that already has tickets.
// Handlers translate it into HTTP 409.
var ErrConflict = errors.New("conflict")

// ErrNoChange indicates an UPDATE attempted to set fields equal to the
// current values.
var ErrNoChange = errors.New("no change")

// ErrFilmNotFound indicates a film was not located in the DB.
var ErrFilmNotFound = errors.New("film not found")

// ErrRoomNotFound indicates a room was not located in the DB.
var ErrRoomNotFound = errors.New("room not found")

// ErrSessionNotFound indicates a session was not located in the DB.
var ErrSessionNotFound = errors.New("session not found")

// ErrTicketNotFound indicates a ticket was not located in the DB.
var ErrTicketNotFound = errors.New("ticket not found")

// ErrEmailExists indicates a registration attempt with a taken email.
var ErrEmailExists = errors.New("email already exists")

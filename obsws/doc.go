// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package obsws implements the low-level obs-websocket v5 client used by the
// go-obs-remote managers.
//
// The primary abstraction is [Caller], a single-method interface that
// decouples the manager layer from the underlying connection. The package
// ships one implementation, [Client], which speaks the obs-websocket v5
// framing over a gorilla/websocket connection: the Hello/Identify handshake
// (including challenge/salt authentication), request/response correlation by
// request id, and event fan-out to registered handlers.
//
// Error values defined in errors.go are mapped from obs-websocket
// RequestStatus codes (with a keyword fallback on the status comment) by
// mapRequestError so that callers can use [errors.Is] for protocol-agnostic
// error handling (e.g. [ErrResourceNotFound] for code 600,
// [ErrOutputRunning] for code 500).
package obsws

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the kph command-line application.
//
// It maps commands onto the session and protocol services and renders the
// results. It never terminates the process: every failure is returned to
// cmd/kph, which decides how to exit.
package client

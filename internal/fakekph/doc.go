// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package fakekph implements the service side of the KeePassHTTP protocol.
//
// It is a small in-memory stand-in for the KeePass plugin: it accepts
// associations, checks request verifiers and answers get-logins with
// entries encrypted under a fresh response nonce. It is used by the
// integration tests of the client and by cmd/fakekph for local
// development. It never persists anything and never prompts: every
// associate request is accepted unless [Options.DeclineAssociate] is set.
package fakekph

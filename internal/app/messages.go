// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing message strings of the kph
// command-line client.
//
// Keeping them in one place keeps the wording consistent between command
// output and the errors returned to cmd/kph.
package app

const (
	// MsgUsage is printed when no command or an unknown command is given.
	MsgUsage = "usage: kph [flags] associate | test | get <url> | forget | version"

	// MsgAssociated is printed after a successful association. The
	// argument is the Id issued by KeePass.
	MsgAssociated = "associated with KeePassHttp as %q"

	// MsgAssociationValid is printed when test-associate succeeds.
	MsgAssociationValid = "association is valid"

	// MsgAssociationRejected is printed when KeePass no longer trusts the
	// stored association.
	MsgAssociationRejected = "association was rejected by KeePassHttp, run 'kph associate'"

	// MsgNotAssociated is used when a command needs a stored association
	// and there is none.
	MsgNotAssociated = "not associated with KeePassHttp, run 'kph associate'"

	// MsgForgotten is printed after the stored association is removed.
	MsgForgotten = "association removed"

	// MsgNothingToForget is printed when forget finds no association.
	MsgNothingToForget = "no association stored"

	// MsgNoEntries is printed when get-logins returns nothing. The
	// argument is the URL looked up.
	MsgNoEntries = "no entries found for %s"

	// MsgPasswordCopied is printed after the first password was copied to
	// the clipboard. The argument is the entry name.
	MsgPasswordCopied = "password of %q copied to clipboard"

	// MsgMissingURL is returned when get is called without a URL.
	MsgMissingURL = "get needs exactly one url"
)

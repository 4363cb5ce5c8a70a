// Package cli implements the tokenlocker command line: wallet key
// management plus one subcommand per LockerService call.
//
// Output is human-readable on a terminal and JSON otherwise; --output
// forces either. Passphrases are read without echo from a terminal, from
// $TOKENLOCKER_PASSPHRASE, or as a single line from piped stdin.
package cli

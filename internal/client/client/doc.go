// Package client is the gRPC client of the tokenlocker service.
//
// A Client holds the wallet key of its owner. Protected calls carry an
// access token obtained by signing an authentication challenge; when the
// server reports the token as missing, expired or invalid the client signs
// a fresh challenge and retries the call once.
//
// Domain errors come back as the sentinels of package common (and token),
// so callers can match them with errors.Is. Transport conditions map to
// ErrUnavailable and ErrUnauthorized.
package client

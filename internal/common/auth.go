package common

import "fmt"

// AuthChallenge is the message a wallet signs with its ed25519 key to obtain
// an access token. ownerHex is the hex-encoded wallet address and timestamp
// is unix milliseconds.
func AuthChallenge(ownerHex string, timestamp int64) []byte {
	return fmt.Appendf(nil, "tokenlocker-auth:%s:%d", ownerHex, timestamp)
}

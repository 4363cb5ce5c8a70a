package models

import "github.com/dmitrijs2005/tokenlocker/internal/pubkey"

// Holding is a token balance account. Only Authority may move funds out.
type Holding struct {
	Address   pubkey.Address
	Asset     pubkey.Address
	Authority pubkey.Address
	Balance   uint64
}

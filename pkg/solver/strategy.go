package solver

import (
	"fmt"
	"strings"
)

// DefaultThreshold is the query length at which signature filtering starts to
// beat permutation enumeration. It was measured against a ~58k word list and is
// meant to be tuned through config, not treated as derived.
const DefaultThreshold = 9

// Strategy names a matching approach.
type Strategy int

const (
	Auto Strategy = iota
	Permutation
	Signature
)

var strategyNames = map[Strategy]string{
	Auto:        "auto",
	Permutation: "permutation",
	Signature:   "signature",
}

func (s Strategy) String() string {
	if name, ok := strategyNames[s]; ok {
		return name
	}
	return fmt.Sprintf("strategy(%d)", int(s))
}

// ParseStrategy accepts the names printed by String, case-insensitively,
// plus the short forms "perm" and "sig". Empty means Auto.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "auto":
		return Auto, nil
	case "permutation", "perm":
		return Permutation, nil
	case "signature", "sig":
		return Signature, nil
	}
	return Auto, fmt.Errorf("unknown strategy %q (want auto, permutation or signature)", name)
}

// Select picks Permutation for queries shorter than threshold and Signature
// for everything else.
func Select(length, threshold int) Strategy {
	if length < threshold {
		return Permutation
	}
	return Signature
}

// Resolve returns forced unless it is Auto, in which case Select decides.
func Resolve(forced Strategy, length, threshold int) Strategy {
	if forced != Auto {
		return forced
	}
	return Select(length, threshold)
}

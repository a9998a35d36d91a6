// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package seed14

import (
	"sort"

	"github.com/tyler-smith/go-bip39/wordlists"
)

// LangSize is the number of words in the fixed wordlist.
const LangSize = gfSize

// Wordlist is the read-only collaborator described by the external
// interfaces section: word-to-index lookup (-1 if absent) and
// index-to-word lookup for indices 0..LangSize-1. The specific words and
// their ordering are part of the on-wire format.
type Wordlist struct {
	words [LangSize]string
}

// englishWordlist is the process-wide singleton backing every phrase
// operation. It is built once at package init and never mutated
// afterwards.
var englishWordlist = newEnglishWordlist()

func newEnglishWordlist() *Wordlist {
	wl := &Wordlist{}
	copy(wl.words[:], wordlists.English)
	return wl
}

// Word returns the word at index i, or "" if i is out of range.
func (wl *Wordlist) Word(i int) string {
	if i < 0 || i >= LangSize {
		return ""
	}
	return wl.words[i]
}

// Index returns the index of word in the list, or -1 if absent. The
// underlying table is lexicographically sorted, so lookup is a binary
// search rather than a linear scan.
func (wl *Wordlist) Index(word string) int {
	i := sort.SearchStrings(wl.words[:], word)
	if i < LangSize && wl.words[i] == word {
		return i
	}
	return -1
}

package main

import (
	"strings"

	"github.com/emirpasic/gods/maps/treemap"
)

// dictionary maps upper-cased names to words. Entries are only ever added or
// replaced. Names are kept in order, so listing them needs no sorting.
type dictionary struct {
	words *treemap.Map
}

func (dict *dictionary) define(name string, word Word) {
	if dict.words == nil {
		dict.words = treemap.NewWithStringComparator()
	}
	dict.words.Put(strings.ToUpper(name), word)
}

func (dict dictionary) lookup(name string) (Word, bool) {
	if dict.words == nil {
		return nil, false
	}
	if word, found := dict.words.Get(strings.ToUpper(name)); found {
		return word.(Word), true
	}
	return nil, false
}

func (dict dictionary) names() []string {
	if dict.words == nil {
		return nil
	}
	keys := dict.words.Keys()
	names := make([]string, len(keys))
	for i, key := range keys {
		names[i] = key.(string)
	}
	return names
}

func (dict dictionary) size() int {
	if dict.words == nil {
		return 0
	}
	return dict.words.Size()
}

package main

import (
	"sort"
	"strings"

	"github.com/jcorbin/myforth/internal/token"
)

// dictionary maps lower-cased word names to their bodies.
type dictionary map[string][]token.Token

// define stores a copy of body under name, reporting whether it replaced an
// existing definition.
func (dict *dictionary) define(name string, body []token.Token) (redefined bool) {
	if *dict == nil {
		*dict = make(dictionary)
	}
	name = strings.ToLower(name)
	_, redefined = (*dict)[name]
	(*dict)[name] = append([]token.Token(nil), body...)
	return redefined
}

func (dict dictionary) lookup(name string) ([]token.Token, error) {
	body, ok := dict[strings.ToLower(name)]
	if !ok {
		return nil, unknownWordError(name)
	}
	return body, nil
}

// remove deletes name; absent names are ignored.
func (dict dictionary) remove(name string) {
	delete(dict, strings.ToLower(name))
}

func (dict dictionary) names() []string {
	names := make([]string, 0, len(dict))
	for name := range dict {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

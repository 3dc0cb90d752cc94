package query

import (
	"net/url"
	"strings"
)

// Param is one query parameter name with every value supplied for it.
type Param struct {
	Name   string
	Values []string
}

// Params holds query parameters in order of first appearance. A parameter
// given once and one given many times share the same representation.
type Params []Param

// ParseParams normalizes a raw query string. Repeated names are merged into
// a single Param. Pairs with broken escapes are skipped, as url.ParseQuery
// does.
func ParseParams(rawQuery string) Params {
	var params Params
	index := make(map[string]int)

	for rawQuery != "" {
		var pair string
		pair, rawQuery, _ = strings.Cut(rawQuery, "&")
		if pair == "" || strings.Contains(pair, ";") {
			continue
		}
		rawName, rawValue, _ := strings.Cut(pair, "=")
		name, err := url.QueryUnescape(rawName)
		if err != nil {
			continue
		}
		value, err := url.QueryUnescape(rawValue)
		if err != nil {
			continue
		}
		params = params.add(index, name, value)
	}
	return params
}

func (p Params) add(index map[string]int, name, value string) Params {
	if i, ok := index[name]; ok {
		p[i].Values = append(p[i].Values, value)
		return p
	}
	index[name] = len(p)
	return append(p, Param{Name: name, Values: []string{value}})
}

// Lookup returns the values of name and whether it was supplied.
func (p Params) Lookup(name string) ([]string, bool) {
	for _, param := range p {
		if param.Name == name {
			return param.Values, true
		}
	}
	return nil, false
}

// Names returns parameter names in order of first appearance.
func (p Params) Names() []string {
	names := make([]string, len(p))
	for i, param := range p {
		names[i] = param.Name
	}
	return names
}

package main

//
// Utility functions
//

import (
	"errors"
	"strings"

	"github.com/vkbind/vk/pkg/vkapi"
)

// errInvalidPair indicates that an argument is not NAME=VALUE.
var errInvalidPair = errors.New("invalid NAME=VALUE pair")

// splitPair takes in input a string in the form KEY=VALUE and splits it. This
// function returns an error if it cannot find the = character to split the string.
func splitPair(s string) (string, string, error) {
	v := strings.SplitN(s, "=", 2)
	if len(v) != 2 || v[0] == "" {
		return "", "", errInvalidPair
	}
	return v[0], v[1], nil
}

// makeParams makes the method params from a list of NAME=VALUE pairs.
func makeParams(input []string) (*vkapi.Params, error) {
	params := vkapi.NewParams()
	for _, arg := range input {
		name, value, err := splitPair(arg)
		if err != nil {
			return nil, err
		}
		params.Set(name, value)
	}
	return params, nil
}

// Package model contains the interfaces shared by the VK client, the
// command line tools, and the test helpers.
//
// This package should not contain logic. The files are:
//
// - http.go: the HTTP client abstraction used to send VK method calls;
//
// - logger.go: an apex/log compatible logger definition.
package model

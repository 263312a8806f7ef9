// Package utils provides general-purpose helpers shared by the mikud
// packages: the resty HTTP client wrapper, trace id generation and
// inspection of bearer tokens.
package utils

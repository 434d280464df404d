// Package utils provides general-purpose helpers shared by the wallet client,
// the coordinator and the HTTP boundary: the resty-based HTTP client, JSON
// response writing, request id generation, hex quantity parsing and EIP-55
// address formatting.
package utils

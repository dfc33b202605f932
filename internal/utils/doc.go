// Package utils provides small helpers shared by the fake KeePassHTTP
// service: JSON response writing and identifier generation.
package utils

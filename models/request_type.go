package models

// RequestType is the operation tag carried in every request.
type RequestType string

const (
	// RequestTestAssociate checks that a stored association is still valid.
	RequestTestAssociate RequestType = "test-associate"
	// RequestAssociate registers a new shared key with the service.
	RequestAssociate RequestType = "associate"
	// RequestGetLogins looks up credential entries matching a URL.
	RequestGetLogins RequestType = "get-logins"
)

// String returns the wire form of the tag.
func (t RequestType) String() string {
	return string(t)
}

package atomspace

import (
	stderrors "errors"

	"github.com/pkg/errors"
)

// BadNode is returned by AddNode when the supplied parameters are
// missing a required field.
type BadNode struct {
	Message string
	Details any
	cause   error
}

func (e *BadNode) Error() string { return e.Message }
func (e *BadNode) Unwrap() error { return e.cause }

func newBadNode(message string, details any) *BadNode {
	return &BadNode{Message: message, Details: details, cause: errors.New(message)}
}

// BadLink is returned by AddLink when the supplied parameters are
// missing a required field.
type BadLink struct {
	Message string
	Details any
	cause   error
}

func (e *BadLink) Error() string { return e.Message }
func (e *BadLink) Unwrap() error { return e.cause }

func newBadLink(message string, details any) *BadLink {
	return &BadLink{Message: message, Details: details, cause: errors.New(message)}
}

// NodeMissing is returned by lookups for a node that was never added.
type NodeMissing struct {
	Message string
	Details any
	cause   error
}

func (e *NodeMissing) Error() string { return e.Message }
func (e *NodeMissing) Unwrap() error { return e.cause }

func newNodeMissing(message string, details any) *NodeMissing {
	return &NodeMissing{Message: message, Details: details, cause: errors.New(message)}
}

// LinkMissing is returned by lookups for a link that was never added.
type LinkMissing struct {
	Message string
	Details any
	cause   error
}

func (e *LinkMissing) Error() string { return e.Message }
func (e *LinkMissing) Unwrap() error { return e.cause }

func newLinkMissing(message string, details any) *LinkMissing {
	return &LinkMissing{Message: message, Details: details, cause: errors.New(message)}
}

// isNodeMissing reports whether err is (or wraps) a NodeMissing.
func isNodeMissing(err error) bool {
	var target *NodeMissing
	return stderrors.As(err, &target)
}

// isLinkMissing reports whether err is (or wraps) a LinkMissing.
func isLinkMissing(err error) bool {
	var target *LinkMissing
	return stderrors.As(err, &target)
}

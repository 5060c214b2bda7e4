package errors

// Code represents an error code
type Code string

// Error codes
const (
	CodeOK               Code = "OK"
	CodeCanceled         Code = "CANCELED"
	CodeInvalidArgument  Code = "INVALID_ARGUMENT"
	CodeDeadlineExceeded Code = "DEADLINE_EXCEEDED"
	CodeNotFound         Code = "NOT_FOUND"
	CodeAborted          Code = "ABORTED"
	CodeUnimplemented    Code = "UNIMPLEMENTED"
	CodeInternal         Code = "INTERNAL"
	CodeUnavailable      Code = "UNAVAILABLE"
)

// MetaReason is the metadata key holding a Reason
const MetaReason = "reason"

// Reason narrows down why an Unavailable error happened
type Reason string

// Reasons for network failures
const (
	ReasonTransport Reason = "transport"
	ReasonDecode    Reason = "decode"
	ReasonStatus    Reason = "status"
	ReasonAggregate Reason = "aggregate"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

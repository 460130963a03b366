// Package client talks to the gophnotes gRPC service.
//
// GRPCClient attaches the session token to every outbound call and folds
// each response into a common.Result: the payload plus a user-facing message
// on success, the error Kind plus message on failure. The Kind travels in the
// errdetails.ErrorInfo of the gRPC status.
package client

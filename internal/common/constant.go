package common

// SessionTokenHeaderName is the gRPC metadata key used to carry the
// identity provider session token on outbound requests.
const SessionTokenHeaderName = "session_token"

// ErrorDomain is reported in errdetails.ErrorInfo next to the error Kind.
const ErrorDomain = "gophnotes"

// Package errors provides coded errors for the pokedex service.
//
// Every failure leaving the core carries a Code. The codes line up with the
// lookup flow:
//   - InvalidArgument: the query was empty
//   - NotFound: the remote lookup answered with a non-success status
//   - Unavailable: transport failure, undecodable body, or a failed move batch;
//     the Reason metadata tells them apart
//   - Aborted: a newer search in the same session superseded this one
//
// Creating and inspecting errors:
//
//	err := errors.NotFoundf(`could not find pokemon: "%s"`, query)
//	if errors.IsUnavailable(err) && errors.GetReason(err) == errors.ReasonDecode {
//	    // malformed body
//	}
//
// Handlers convert with ToGRPCError, clients convert back with FromGRPCError.
package errors

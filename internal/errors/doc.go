// Package errors provides structured errors for the fight tracker.
//
// Every error carries a Code (mapped 1:1 onto gRPC codes and HTTP statuses),
// a caller-facing Message, an optional Cause and free-form Meta. Combat
// conditions are further narrowed by a Reason stored in Meta:
//
//	err := errors.FightNotFound(fightID)
//	errors.IsNotFound(err)      // true
//	errors.IsFightNotFound(err) // true
//
// Wrapping keeps the code and metadata of the wrapped error:
//
//	if err := repo.FinishFight(ctx, input); err != nil {
//	    return nil, errors.Wrap(err, "failed to finish fight")
//	}
//
// Driver failures that are not already structured become StoreError:
//
//	if err != nil {
//	    return errors.StoreError(err, "failed to list participants")
//	}
//
// # gRPC
//
// Handlers return errors.ToGRPCError(err). The reason and metadata travel as a
// google.rpc.ErrorInfo detail, so errors.FromGRPCError on the client side
// restores both and the Is* reason helpers keep working across the wire.
//
// # Layers
//
// Repositories return NotFound, AlreadyExists or StoreError. Orchestrators
// validate input (InvalidArgument), check roles (PermissionDenied) and
// lifecycle preconditions (FightNotFound, ParticipantNotFound,
// MissingCharacterData). Nothing is retried or compensated; errors propagate
// to the caller.
package errors

// Package errors provides structured errors for the tactics engine.
//
// Errors carry a Code, a player-facing Message, an optional Cause and
// metadata:
//
//	err := errors.OutOfRangef("target is %d cells away, range is %d", dist, rng)
//	err := errors.NotFound("saved game not found").WithMeta("game_id", id)
//
// Wrapping keeps the original code:
//
//	if err := repo.Save(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to save game")
//	}
//
// # Rejections
//
// A refused click is not a fault. The turn controller reports it with
// PermissionDenied (selecting a unit the player does not own), OutOfRange
// (target too far to move or attack) or Aborted (an action is already in
// flight). IsRejection groups these so callers can show the message to the
// player instead of logging a failure.
//
// # Validation
//
//	vb := errors.NewValidationBuilder()
//	if c.Renderer == nil {
//	    vb.RequiredField("Renderer")
//	}
//	errors.ValidateRange("MaxLevel", c.MaxLevel, 1, 4, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// Geometry contract violations (a cell index outside the board) are
// programming errors and panic with an OutOfRange *Error; boundaries that
// accept raw indices validate them first and return InvalidArgument.
package errors

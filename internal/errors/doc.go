// Package errors provides structured errors for the dungeon game.
//
// Every error carries a Code, which maps onto transport status codes, and a
// human readable Message. Failures raised while resolving a player action
// additionally carry a Kind from a closed taxonomy together with the
// identifier that caused them:
//
//	err := errors.NpcNotFound(npcID)
//	errors.GetKind(err) // KindNpcNotFound
//	errors.GetMeta(err)["id"] // npcID
//
// Wrapping preserves both the code and the kind:
//
//	if err := repo.Get(ctx, id); err != nil {
//	    return errors.Wrap(err, "failed to load game")
//	}
//
// Configuration validation goes through the ValidationBuilder:
//
//	vb := errors.NewValidationBuilder()
//	if cfg.Roller == nil {
//	    vb.RequiredField("Roller")
//	}
//	return vb.Build()
package errors

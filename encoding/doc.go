// Package encoding provides CoapContext, the state object behind incremental CBOR
// payload builds.
//
// Every encode step follows the same protocol: resolve the target encoder, stage
// the key or value as a NUL-terminated string, call the primitive with the staged
// string and its logical length, then pass the returned status to Check.
//
//	ctx, _ := encoding.NewCoapContext()
//	defer ctx.Release()
//
//	payload, err := ctx.Encode(func(ctx *encoding.CoapContext) error {
//	    root := ctx.ResolveEncoder("root", "_map")
//	    if err := ctx.Check(ctx.GlobalEncoder().CreateMap(root)); err != nil {
//	        return err
//	    }
//	    key := ctx.StageKey(bytestr.Of("t"))
//	    if err := ctx.Check(root.EncodeTextString(key, key.Len())); err != nil {
//	        return err
//	    }
//	    if err := ctx.Check(root.EncodeUint(2870)); err != nil {
//	        return err
//	    }
//	    return ctx.Check(ctx.GlobalEncoder().CloseContainer(root))
//	})
//
// Check and Fail return errors so a caller can drop the current message and keep
// running. MustCheck and MustFail panic with an *errs.Fault instead; Encode turns
// such faults back into errors for the payload being built.
package encoding

package groupsig

import (
	"fmt"
	"io"
	"sync"

	"golang.org/x/sync/errgroup"
)

// syncReader serializes concurrent reads against an underlying io.Reader.
// §5 notes the RNG is the only resource whose concurrent use needs
// discipline ("callers must not share a single RNG instance across threads
// without their own serialization"); SetupGroup fans three GMs' sampling
// out across goroutines, so it supplies that serialization itself rather
// than pushing the requirement onto its caller.
type syncReader struct {
	mu    sync.Mutex
	inner io.Reader
}

func (r *syncReader) Read(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.inner.Read(p)
}

// SetupGroup brings up a fresh three-GM group end to end: it samples all
// three GMs and runs the setup rotation of §4.3 to produce their joint
// public key.
//
// Sampling each GM's own (xi, gamma) pair is independent work, so this
// helper uses errgroup to fan it out concurrently (OpenSignature is the
// package's only other errgroup fan-out); the rotation step itself is still the straight-line,
// order-dependent sequence SetupGroupPubkey implements synchronously, since
// each of its four products depends on a GM published by the previous
// step.
func SetupGroup(rng io.Reader) (*CombinedGPK, [3]*GM, error) {
	var gms [3]*GM
	safeRNG := &syncReader{inner: rng}

	var g errgroup.Group
	ids := [3]GMID{GMOne, GMTwo, GMThree}
	for i := range ids {
		i, id := i, ids[i]
		g.Go(func() error {
			gm, err := SetupGM(id, safeRNG)
			if err != nil {
				return fmt.Errorf("groupsig: setting up %s: %w", id, err)
			}
			gms[i] = gm
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, [3]*GM{}, err
	}

	gpk, err := SetupGroupPubkey(gms[0], gms[1], gms[2])
	if err != nil {
		return nil, [3]*GM{}, err
	}
	return gpk, gms, nil
}

// OpenSignature fans out the three GMs' OpenShare calls concurrently and
// returns their shares in GM-id order, ready to be passed to OpenCombine.
func OpenSignature(gms [3]*GM, sig *Signature) ([3]OpenShare, error) {
	var shares [3]OpenShare

	var g errgroup.Group
	for i := range gms {
		i := i
		g.Go(func() error {
			share, err := gms[i].OpenShare(sig)
			if err != nil {
				return fmt.Errorf("groupsig: opening share from %s: %w", gms[i].ID, err)
			}
			shares[i] = share
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return [3]OpenShare{}, err
	}
	return shares, nil
}

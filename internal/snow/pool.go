package snow

// FlakePool recycles expired flake records so steady-state frames allocate
// nothing. At most PoolRetain records are kept; extra releases are dropped
// for the GC.
type FlakePool struct {
	free []*Flake
}

func NewFlakePool() *FlakePool {
	return &FlakePool{free: make([]*Flake, 0, PoolRetain)}
}

// Acquire returns a recycled record if one is available, else a fresh one.
// Recycled records keep their old field values; callers reassign everything.
func (fp *FlakePool) Acquire() *Flake {
	if n := len(fp.free); n > 0 {
		f := fp.free[n-1]
		fp.free[n-1] = nil
		fp.free = fp.free[:n-1]
		return f
	}
	return &Flake{}
}

// Release returns a record to the pool, or drops it once PoolRetain are held.
func (fp *FlakePool) Release(f *Flake) {
	if f == nil {
		return
	}
	if len(fp.free) < PoolRetain {
		fp.free = append(fp.free, f)
	}
}

func (fp *FlakePool) Len() int { return len(fp.free) }

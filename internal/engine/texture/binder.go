package texture

import "github.com/go-gl/gl/v4.1-core/gl"

// Binder hands out texture units sequentially within one draw batch.
// Reset it at the start of each framebuffer pass so every pass starts
// from unit 0 and no stale binding leaks across passes.
type Binder struct {
	next uint32
}

// Reset returns the allocator to unit 0.
func (b *Binder) Reset() {
	b.next = 0
}

// Bind activates the next free unit, binds id to target on it, and
// returns the unit index for the sampler uniform.
func (b *Binder) Bind(target, id uint32) int32 {
	unit := b.next
	b.next++
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(target, id)
	return int32(unit)
}

// Units reports how many units have been handed out since the last
// reset.
func (b *Binder) Units() int {
	return int(b.next)
}

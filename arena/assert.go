package arena

import "github.com/jdbrandon/segheap/heapmeta"

// var assertion that *Arena satisfies the engine's narrow storage
// interface; keeps the two packages decoupled while catching drift at
// compile time instead of at first use.
var _ heapmeta.ArenaProvider = (*Arena)(nil)

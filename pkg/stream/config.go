package stream

// ============================================================================
// SYSTEM CONFIGURATION
// ============================================================================

// GeneratorBuffer is the channel buffer between a FromGenerator producer
// goroutine and its consumer. It bounds how far the producer may run ahead
// of the pull side.
const GeneratorBuffer = 64

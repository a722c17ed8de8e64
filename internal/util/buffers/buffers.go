package buffers

// BufferSize is the size of the buffers used when copying between streams, and the default chunk
// size of the dispatcher
const BufferSize = 32 * 1024

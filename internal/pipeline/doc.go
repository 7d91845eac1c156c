// Package pipeline orchestrates the lecture retrieval-summarization sequence
// with real-time progress reporting.
//
// # State Machine
//
// [Engine.Run] executes one strict sequence per invocation, each stage a
// precondition gate for the next, with no backward transitions and no loop:
//
//  1. Subject resolution: the subject must exist and have a linked playlist
//  2. Video resolution: newest playlist item via [services.VideoService]
//  3. Transcript resolution: via [services.TranscriptService]
//  4. Summarization: via [services.Summarizer]
//  5. Cache commit: writes the lecture into the subject registry
//
// Each stage classifies its own failure and terminates the run immediately;
// a later stage never executes on a failed prior stage's output. The
// terminal [Outcome] tags which stage produced a failure and carries the
// upstream detail, so the command layer can render an actionable message
// rather than a generic one. A transcript failure still surfaces the
// already-resolved video URL because the link is independently useful.
//
// # Progress Reporting
//
// Stages emit [ProgressUpdate] values over a non-blocking channel so the
// command layer can narrate long-running runs without ever stalling the
// pipeline. Updates use select with default and are safe to drop.
//
// # Concurrency
//
// Runs for distinct (user, subject) pairs proceed concurrently without
// coordination. Runs for the same pair are serialized by a per-pair mutex
// held around the whole sequence, so interleaved cache writes cannot occur.
// There is no cancellation beyond the context plumbed into each upstream
// call, and no timeout beyond what the underlying transports enforce.
package pipeline

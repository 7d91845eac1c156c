// Package store implements the per-user subject registry.
//
// The [SubjectStore] interface is the single owner of all Subject and
// LectureCache data; the pipeline and command layers hold a store handle and
// never retain independent copies. Two implementations exist:
//
//   - [MemoryStore] : the default. A process-wide registry of user profiles
//     held in memory; all state is lost on process restart.
//   - [SQLiteStore] : an opt-in durable backing store over the subjects
//     table, using the shared migration runner. It satisfies the identical
//     contract so the pipeline never distinguishes the two.
//
// Subject names are case-folded on every operation, so "CS101" and "cs101"
// address the same subject within a user's profile.
package store
